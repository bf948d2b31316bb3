package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"herosheet/internal/application/commands"
	"herosheet/internal/domain"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a character profile",
	Long: `Show both stat profiles of a character, with display grades including
item and note modifiers, followed by its magical items and notes.

Examples:
  herosheet-cli show 1700000000000`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		showCmd := commands.NewShowProfileCommand(GetRepo(), args[0])
		result, err := showCmd.Execute(ctx)
		if err != nil {
			return err
		}

		c := result.Character
		fmt.Printf("%d %s\n", c.ID, c.DisplayName())
		fmt.Printf("  profession: %s\n  advanced profession: %s\n", c.Profession, c.AdvancedProfession)

		for _, p := range result.Profiles {
			fmt.Printf("\n%s (overall %s)\n", p.Set.Title(), p.Overall)
			display := p.DisplayGrades()
			for i, cat := range p.Axes {
				line := fmt.Sprintf("  %-22s %-3s", cat, display[i])
				if p.Modifiers[i] != 0 {
					line += fmt.Sprintf(" base %s %+d", p.Base[i], p.Modifiers[i])
				}
				fmt.Println(line)
			}
		}

		fmt.Println("\nMagical items")
		for i := range c.Items {
			printSource(i, &c.Items[i])
		}
		fmt.Println("\nNotes")
		for i := range c.Notes {
			printSource(i, &c.Notes[i])
		}
		return nil
	},
}

func printSource(index int, s domain.Modifiable) {
	fmt.Printf("  %d. %s", index, s.Label())
	if s.Text() != "" {
		fmt.Printf(": %s", s.Text())
	}
	fmt.Println()
	for _, set := range domain.StatSets() {
		mods := s.Modifiers(set)
		for _, cat := range set.Categories() {
			if v, ok := mods[cat]; ok {
				fmt.Printf("     %s %s %+d\n", set, cat, v)
			}
		}
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
}
