package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"herosheet/internal/application/commands"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a character",
	Long: `Permanently delete a character with its items and notes.

Examples:
  herosheet-cli delete 1700000000000`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		deleteCmd := commands.NewDeleteCharacterCommand(GetRepo(), args[0])
		result, err := deleteCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
