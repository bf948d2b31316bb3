package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"herosheet/internal/application/commands"
)

var updateCmd = &cobra.Command{
	Use:   "update <id> <field> <value>",
	Short: "Change a character's name or professions",
	Long: fmt.Sprintf(`Change one text field of a character.

Fields: %s

Examples:
  herosheet-cli update 1700000000000 name "Aldric the Bold"
  herosheet-cli update 1700000000000 advanced-profession Paladin`, strings.Join(commands.Fields(), ", ")),
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		updateCmd := commands.NewUpdateCharacterCommand(GetRepo(), args[0], args[1], args[2])
		result, err := updateCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
}
