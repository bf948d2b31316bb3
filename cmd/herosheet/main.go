package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"herosheet/internal/adapters/chart"
	"herosheet/internal/adapters/editor"
	"herosheet/internal/adapters/tui"
	"herosheet/internal/adapters/viewer"
	"herosheet/internal/application"
	"herosheet/internal/bootstrap"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	ctx := context.Background()

	env, err := bootstrap.Open(ctx, configPath, bootstrap.ModeFullScreen)
	if err != nil {
		return err
	}
	defer env.Close()

	session := application.NewSession(env.Repo, env.Logger)

	app := tui.NewApp(tui.Options{
		Session:       session,
		Repo:          env.Repo,
		Exporter:      env.Exporter,
		Editor:        editor.NewOpener(),
		Viewer:        viewer.NewOpener(env.Config.Export.Dir),
		Chart:         chart.NewBarChart(4),
		Logger:        env.Logger,
		AutosaveDelay: env.Config.UI.AutosaveDelay,
		Sort:          application.ParseSortKey(env.Config.UI.Sort),
		Locale:        env.Config.UI.Locale,
	})

	env.Logger.Info("starting", zap.Int("characters", len(env.Repo.ListAll())))

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	return session.Flush(ctx)
}
