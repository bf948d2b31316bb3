package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"herosheet/internal/application/commands"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export a character profile to Markdown",
	Long: `Write a Markdown document with YAML front matter describing the
character's profiles, items, and notes.

Examples:
  herosheet-cli export 1700000000000
  herosheet-cli export 1700000000000 --dir ./sheets`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		exportCmd := commands.NewExportCommand(GetRepo(), env.Exporter, args[0], exportDir)
		result, err := exportCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportDir, "dir", "d", "", "output directory (defaults to export.dir)")
}
