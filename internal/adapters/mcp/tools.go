package mcp

import (
	"context"
	"errors"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"jsonlscope/internal/adapters/report"
	"jsonlscope/internal/application"
	"jsonlscope/internal/application/commands"
)

// section writes one part of a completed report
type section func(*report.Renderer, *application.Report) error

// RegisterTools adds the analysis tools to the MCP server.
func RegisterTools(s *server.MCPServer, factory *commands.AnalyzeFactory, listLabel string) {
	opts := report.Options{ListLabel: listLabel, NoColor: true}

	s.AddTool(pingTool(), pingHandler)
	s.AddTool(analyzeTool(), analysisHandler(factory, opts, (*report.Renderer).Full))
	s.AddTool(structureTool(), analysisHandler(factory, opts, (*report.Renderer).Structure))
	s.AddTool(emptyFieldsTool(), analysisHandler(factory, opts, (*report.Renderer).EmptyFields))
}

func pathArgument() mcp.ToolOption {
	return mcp.WithString("path",
		mcp.Required(),
		mcp.Description("Path of the JSONL file, optionally gzip, zstd or lz4 compressed. A leading ~ is expanded."),
	)
}

// --- ping ---

func pingTool() mcp.Tool {
	return mcp.NewTool("ping",
		mcp.WithDescription("Health check, returns pong"),
	)
}

func pingHandler(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText("pong"), nil
}

// --- analyze ---

func analyzeTool() mcp.Tool {
	return mcp.NewTool("analyze",
		mcp.WithDescription("Analyze a JSONL file. Returns the invalid line warnings, the field structure tree, file statistics and the count of empty or null fields."),
		pathArgument(),
	)
}

// --- structure ---

func structureTool() mcp.Tool {
	return mcp.NewTool("structure",
		mcp.WithDescription("Return the tree of field paths seen in a JSONL file, in order of first appearance. List elements share one [] segment."),
		pathArgument(),
	)
}

// --- empty_fields ---

func emptyFieldsTool() mcp.Tool {
	return mcp.NewTool("empty_fields",
		mcp.WithDescription("Count how many times each field of a JSONL file held null, \"\", [] or {}. Fields are grouped by name at any depth."),
		pathArgument(),
	)
}

func analysisHandler(factory *commands.AnalyzeFactory, opts report.Options, write section) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		if path == "" {
			return toolError(errors.New("path is required"))
		}

		rep, err := factory.Execute(ctx, path)
		if err != nil {
			return toolError(errors.New(report.DiagnosticMessage(path, err)))
		}

		var sb strings.Builder
		if err := write(report.NewRenderer(&sb, opts), rep); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(strings.TrimLeft(sb.String(), "\n")), nil
	}
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
