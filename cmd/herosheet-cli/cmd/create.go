package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"herosheet/internal/application/commands"
)

var (
	createProfession         string
	createAdvancedProfession string
)

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new character",
	Long: `Create a character with every grade at F and no items or notes.

Examples:
  herosheet-cli create "Aldric"
  herosheet-cli create "Aldric" --profession Knight --advanced-profession Paladin`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		createCmd := commands.NewCreateCharacterCommand(GetRepo(), args[0], createProfession, createAdvancedProfession, nil)
		result, err := createCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVarP(&createProfession, "profession", "p", "", "profession")
	createCmd.Flags().StringVarP(&createAdvancedProfession, "advanced-profession", "a", "", "advanced profession")
}
