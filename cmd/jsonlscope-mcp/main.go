package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"jsonlscope/internal/adapters/jsonl"
	mcpadapter "jsonlscope/internal/adapters/mcp"
	"jsonlscope/internal/adapters/storage"
	"jsonlscope/internal/application"
	"jsonlscope/internal/application/commands"
	"jsonlscope/internal/config"
	"jsonlscope/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("jsonlscope-mcp: invalid configuration", "error", err)
		os.Exit(1)
	}

	labelFlag := flag.String("list-label", cfg.ListLabel, "display label of list segments in the tree")
	verboseFlag := flag.Bool("verbose", cfg.Debug, "log skipped lines and failures to stderr")
	flag.Parse()

	if err := application.ValidateListLabel(*labelFlag); err != nil {
		slog.Error("jsonlscope-mcp: invalid flag", "error", err)
		os.Exit(1)
	}

	// stdout carries the protocol
	logger := logging.New(os.Stderr, *verboseFlag)

	factory := commands.NewAnalyzeFactory(storage.NewSource(), jsonl.NewCodecs(), jsonl.NewDecoder(), logger)

	mcpServer := server.NewMCPServer(
		"jsonlscope-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpadapter.RegisterTools(mcpServer, factory, *labelFlag)

	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Error("jsonlscope-mcp: server stopped", "error", err)
		os.Exit(1)
	}
}
