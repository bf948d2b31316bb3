package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"herosheet/internal/application/commands"
	"herosheet/internal/domain"
)

var gradeCmd = &cobra.Command{
	Use:   "grade <id> <heroic|meat> <category> <grade>",
	Short: "Set the base grade of a stat",
	Long: `Set the base grade of one category in a stat set.

Examples:
  herosheet-cli grade 1700000000000 heroic Stealth A
  herosheet-cli grade 1700000000000 meat "Fighting Prowess" SS`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		gradeCmd := commands.NewSetGradeCommand(GetRepo(), args[0], args[1], args[2], args[3])
		result, err := gradeCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var gradesCmd = &cobra.Command{
	Use:   "grades",
	Short: "Show the grade scale and stat categories",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, g := range domain.Grades() {
			v, _ := domain.GradeToValue(g)
			fmt.Printf("%-3s %d  %s\n", g, v, g.Description())
		}
		fmt.Printf("\nModifiers range from %+d to %+d per item or note.\n", domain.MinModifier, domain.MaxModifier)
		for _, set := range domain.StatSets() {
			fmt.Printf("\n%s\n", set.Title())
			for _, c := range set.Categories() {
				fmt.Printf("  %-22s %s\n", c, c.Kind())
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(gradesCmd)
}
