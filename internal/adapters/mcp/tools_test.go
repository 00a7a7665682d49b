package mcp

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"jsonlscope/internal/adapters/jsonl"
	"jsonlscope/internal/adapters/report"
	"jsonlscope/internal/adapters/storage"
	"jsonlscope/internal/application/commands"
	"jsonlscope/internal/domain"
)

func newFactory() *commands.AnalyzeFactory {
	return commands.NewAnalyzeFactory(storage.NewSource(), jsonl.NewCodecs(), jsonl.NewDecoder(), nil)
}

func callTool(t *testing.T, write section, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	var req mcp.CallToolRequest
	req.Params.Arguments = args

	opts := report.Options{ListLabel: domain.DefaultListLabel, NoColor: true}
	result, err := analysisHandler(newFactory(), opts, write)(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return result
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) != 1 {
		t.Fatalf("expected one content item, got %d", len(result.Content))
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text
}

func TestPingHandler(t *testing.T) {
	result, err := pingHandler(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("ping failed: %v", err)
	}
	if got := resultText(t, result); got != "pong" {
		t.Errorf("ping = %q, want pong", got)
	}
}

func TestAnalysisHandlers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.jsonl")
	content := `{"user":{"id":1,"email":""}}` + "\n" + `{"tags":[{"name":null}]}` + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	tests := []struct {
		name  string
		write section
		want  []string
	}{
		{
			name:  "analyze",
			write: (*report.Renderer).Full,
			want:  []string{"├── user\n│   ├── id\n│   └── email\n", "- Total lines read: 2", "- Field 'email': 1"},
		},
		{
			name:  "structure",
			write: (*report.Renderer).Structure,
			want:  []string{"└── tags\n    └── [] (List of Objects)\n        └── name\n"},
		},
		{
			name:  "empty_fields",
			write: (*report.Renderer).EmptyFields,
			want:  []string{"- Field 'email': 1 time(s) without a value\n- Field 'name': 1 time(s) without a value\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := callTool(t, tt.write, map[string]any{"path": path})
			if result.IsError {
				t.Fatalf("unexpected tool error: %s", resultText(t, result))
			}
			text := resultText(t, result)
			if strings.HasPrefix(text, "\n") {
				t.Errorf("text should not start with a blank line: %q", text)
			}
			if strings.Contains(text, "\x1b[") {
				t.Errorf("tool output should be unstyled: %q", text)
			}
			for _, w := range tt.want {
				if !strings.Contains(text, w) {
					t.Errorf("output missing %q:\n%s", w, text)
				}
			}
		})
	}
}

func TestAnalysisHandler_Errors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.jsonl")

	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{name: "no path", args: map[string]any{}, want: "path is required"},
		{name: "missing file", args: map[string]any{"path": missing}, want: "was not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := callTool(t, (*report.Renderer).Full, tt.args)
			if !result.IsError {
				t.Fatal("expected tool error")
			}
			if text := resultText(t, result); !strings.Contains(text, tt.want) {
				t.Errorf("error = %q, want containing %q", text, tt.want)
			}
		})
	}
}
