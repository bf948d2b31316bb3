package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"herosheet/internal/application"
	"herosheet/internal/application/commands"
)

func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, &application.ValidationError{Field: "index", Message: fmt.Sprintf("not a number: %q", s)}
	}
	return i, nil
}

// newSourceCmd builds the add/remove command group for items or notes
func newSourceCmd(kind, labelName, textName string, add func(repoID, label, text string) (string, error)) *cobra.Command {
	group := &cobra.Command{
		Use:   kind,
		Short: fmt.Sprintf("Manage a character's %ss", kind),
	}

	addCmd := &cobra.Command{
		Use:   fmt.Sprintf("add <id> <%s> [%s]", labelName, textName),
		Short: fmt.Sprintf("Add a %s", kind),
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := ""
			if len(args) == 3 {
				text = args[2]
			}
			msg, err := add(args[0], args[1], text)
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove <id> <index>",
		Short: fmt.Sprintf("Remove a %s and its modifiers", kind),
		Long: fmt.Sprintf(`Remove a %s by its 0-based position, as printed by show.

Examples:
  herosheet-cli %s remove 1700000000000 0`, kind, kind),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[1])
			if err != nil {
				return err
			}
			removeCmd := commands.NewRemoveSourceCommand(GetRepo(), args[0], kind, index)
			result, err := removeCmd.Execute(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(result.Message)
			return nil
		},
	}

	group.AddCommand(addCmd, removeCmd)
	return group
}

func init() {
	rootCmd.AddCommand(newSourceCmd("item", "name", "description", func(id, name, desc string) (string, error) {
		result, err := commands.NewAddItemCommand(GetRepo(), id, name, desc).Execute(context.Background())
		if err != nil {
			return "", err
		}
		return result.Message, nil
	}))
	rootCmd.AddCommand(newSourceCmd("note", "title", "content", func(id, title, content string) (string, error) {
		result, err := commands.NewAddNoteCommand(GetRepo(), id, title, content).Execute(context.Background())
		if err != nil {
			return "", err
		}
		return result.Message, nil
	}))
}
