package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"herosheet/internal/application"
	"herosheet/internal/application/commands"
)

var modifierCmd = &cobra.Command{
	Use:   "modifier",
	Short: "Manage stat modifiers on items and notes",
}

var modifierAddCmd = &cobra.Command{
	Use:   "add <id> <item|note> <index> <heroic|meat> <category> <value>",
	Short: "Add a modifier between -2 and +2",
	Long: `Add a stat modifier to an item or note. Each source holds at most one
modifier per category and stat set.

Examples:
  herosheet-cli modifier add 1700000000000 item 0 heroic Stealth +2
  herosheet-cli modifier add 1700000000000 note 1 meat Likeability -1`,
	Args: cobra.ExactArgs(6),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[2])
		if err != nil {
			return err
		}
		value, err := strconv.Atoi(strings.TrimPrefix(args[5], "+"))
		if err != nil {
			return &application.ValidationError{Field: "modifier", Message: fmt.Sprintf("not a number: %q", args[5])}
		}

		addCmd := commands.NewAddModifierCommand(GetRepo(), args[0], args[1], index, args[3], args[4], value)
		result, err := addCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var modifierRemoveCmd = &cobra.Command{
	Use:   "remove <id> <item|note> <index> <heroic|meat> <category>",
	Short: "Remove a modifier",
	Args:  cobra.ExactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[2])
		if err != nil {
			return err
		}

		removeCmd := commands.NewRemoveModifierCommand(GetRepo(), args[0], args[1], index, args[3], args[4])
		result, err := removeCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modifierCmd)
	modifierCmd.AddCommand(modifierAddCmd, modifierRemoveCmd)
}
