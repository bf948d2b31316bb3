package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"herosheet/internal/bootstrap"
	"herosheet/internal/ports"
)

var (
	configPath string
	env        *bootstrap.Env
)

var rootCmd = &cobra.Command{
	Use:   "herosheet-cli",
	Short: "CLI for managing character sheets",
	Long: `herosheet-cli is a command-line interface for the herosheet character
collection.

It provides commands to list, create, edit, grade, and export characters,
and to manage their magical items, notes, and stat modifiers.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "grades" {
			return nil
		}
		var err error
		env, err = bootstrap.Open(context.Background(), configPath, bootstrap.ModeConsole)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if env == nil {
			return nil
		}
		return env.Close()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
}

// GetRepo returns the loaded character repository
func GetRepo() ports.CharacterRepository {
	return env.Repo
}
