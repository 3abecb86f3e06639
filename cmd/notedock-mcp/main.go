package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"notedock/internal/adapters/filesystem"
	mcpadapter "notedock/internal/adapters/mcp"
	"notedock/internal/adapters/preview"
	"notedock/internal/adapters/restart"
	"notedock/internal/config"
)

func main() {
	rootFlag := flag.String("root", config.Root(), "site root containing docs/ and .vitepress/")
	reload := flag.Bool("reload", false, "restart the dev server after structural changes")
	flag.Parse()

	// stdout carries the MCP protocol, so logs go to stderr only
	logger := config.NewLogger(config.LogLevel())

	opts := []filesystem.Option{filesystem.WithLogger(logger)}
	var restarter *restart.Signal
	if *reload {
		restarter = restart.NewSignal(*rootFlag, config.RestartStop(), config.RestartStart(), restart.WithLogger(logger))
		opts = append(opts, filesystem.WithReloader(restarter))
	}
	repo := filesystem.NewRepository(*rootFlag, opts...)

	mcpServer := server.NewMCPServer(
		"notedock-mcp",
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

	mcpadapter.RegisterReadTools(mcpServer, repo, preview.NewRenderer())
	mcpadapter.RegisterWriteTools(mcpServer, repo)

	err := server.ServeStdio(mcpServer)
	repo.Wait()
	if restarter != nil {
		restarter.Wait()
	}
	if err != nil {
		log.Fatalf("notedock-mcp: %v", err)
	}
}
