package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"herosheet/internal/application/commands"
	"herosheet/internal/domain"
)

var listSort string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all characters",
	Long: `List every character with its id, professions and overall ratings.

Examples:
  herosheet-cli list
  herosheet-cli list --sort profession`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		sortKey := listSort
		if sortKey == "" {
			sortKey = env.Config.UI.Sort
		}
		listCmd := commands.NewListCharactersCommand(GetRepo(), sortKey, env.Config.UI.Locale)
		chars, err := listCmd.Execute(ctx)
		if err != nil {
			return err
		}

		if len(chars) == 0 {
			fmt.Println("No characters.")
			return nil
		}
		for _, c := range chars {
			fmt.Printf("%d %s [%s / %s] heroic %s meat %s\n",
				c.ID, c.DisplayName(), c.Profession, c.AdvancedProfession,
				domain.AverageGrade(c.Heroic), domain.AverageGrade(c.Meat))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listSort, "sort", "s", "", "sort by name, profession or advancedProfession")
}
