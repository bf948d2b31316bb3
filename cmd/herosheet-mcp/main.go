package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "herosheet/internal/adapters/mcp"
	"herosheet/internal/bootstrap"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	env, err := bootstrap.Open(context.Background(), *configPath, bootstrap.ModeConsole)
	if err != nil {
		log.Fatalf("herosheet-mcp: %v", err)
	}
	defer env.Close()

	mcpServer := server.NewMCPServer(
		"herosheet-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, env.Repo, env.Config.UI.Locale)
	mcpadapter.RegisterWriteTools(mcpServer, env.Repo, env.Exporter)

	if err := server.ServeStdio(mcpServer); err != nil {
		env.Logger.Sugar().Errorf("serve: %v", err)
	}
}
