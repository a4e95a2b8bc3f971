package mcpserver_test

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/cardrender/pkg/mcpserver"
	"github.com/arthur-debert/cardrender/pkg/types"
)

const card = `{
  "type": "AdaptiveCard",
  "body": [{"type": "TextBlock", "text": "Hello from MCP"}],
  "actions": [
    {"type": "Action.Submit", "title": "One"},
    {"type": "Action.Submit", "title": "Two"}
  ]
}`

func newServer(t *testing.T) *mcpserver.Server {
	t.Helper()
	s, err := mcpserver.New(mcpserver.Options{Version: "test"})
	require.NoError(t, err)
	return s
}

func call(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text
}

func TestToolsRegistered(t *testing.T) {
	s := newServer(t)
	tools := s.MCP().ListTools()
	assert.Contains(t, tools, "render_card")
	assert.Contains(t, tools, "validate_card")
}

func TestRenderCard(t *testing.T) {
	s := newServer(t)

	tests := []struct {
		name   string
		args   map[string]any
		want   string
		isErr  bool
	}{
		{
			name: "text by default",
			args: map[string]any{"card": card},
			want: "Hello from MCP",
		},
		{
			name: "json format",
			args: map[string]any{"card": card, "format": "json"},
			want: `"kind": "Card"`,
		},
		{
			name: "xaml format",
			args: map[string]any{"card": card, "format": "xaml"},
			want: "<TextBlock",
		},
		{
			name: "yaml card",
			args: map[string]any{"card": "type: AdaptiveCard\nbody:\n  - type: TextBlock\n    text: From YAML\n"},
			want: "From YAML",
		},
		{
			name: "host config limits actions",
			args: map[string]any{"card": card, "format": "tree", "hostConfig": `{"actions": {"maxActions": 1}}`},
			want: "MaxActionsExceeded",
		},
		{
			name:  "missing card",
			args:  map[string]any{},
			isErr: true,
		},
		{
			name:  "unknown format",
			args:  map[string]any{"card": card, "format": "pdf"},
			want:  "unknown format",
			isErr: true,
		},
		{
			name:  "invalid host config",
			args:  map[string]any{"card": card, "hostConfig": "{not json"},
			isErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := s.HandleRenderCard(context.Background(), call(tt.args))
			require.NoError(t, err)
			assert.Equal(t, tt.isErr, res.IsError)
			assert.Contains(t, resultText(t, res), tt.want)
		})
	}
}

func TestValidateCard(t *testing.T) {
	s := newServer(t)

	t.Run("valid with warnings", func(t *testing.T) {
		res, err := s.HandleValidateCard(context.Background(), call(map[string]any{
			"card": `{"type": "AdaptiveCard", "body": [{"type": "Mystery", "fallback": "drop"}]}`,
		}))
		require.NoError(t, err)
		assert.False(t, res.IsError)

		var report mcpserver.ValidationReport
		require.NoError(t, yaml.Unmarshal([]byte(resultText(t, res)), &report))
		assert.True(t, report.Valid)
		require.NotEmpty(t, report.Warnings)
		assert.Equal(t, types.WarnUnknownElementType, report.Warnings[0].StatusCode)
	})

	t.Run("unknown element without fallback", func(t *testing.T) {
		res, err := s.HandleValidateCard(context.Background(), call(map[string]any{
			"card": `{"type": "AdaptiveCard", "body": [{"type": "Mystery"}]}`,
		}))
		require.NoError(t, err)
		assert.True(t, res.IsError)

		var report mcpserver.ValidationReport
		require.NoError(t, yaml.Unmarshal([]byte(resultText(t, res)), &report))
		assert.False(t, report.Valid)
		assert.Contains(t, report.Error, "UNSUPPORTED_ELEMENT")
		require.NotEmpty(t, report.Warnings)
		assert.Equal(t, types.WarnUnknownElementType, report.Warnings[0].StatusCode)
	})

	t.Run("invalid card", func(t *testing.T) {
		res, err := s.HandleValidateCard(context.Background(), call(map[string]any{
			"card": `{"body": []}`,
		}))
		require.NoError(t, err)
		assert.True(t, res.IsError)

		var report mcpserver.ValidationReport
		require.NoError(t, yaml.Unmarshal([]byte(resultText(t, res)), &report))
		assert.False(t, report.Valid)
		assert.NotEmpty(t, report.Error)
	})
}
