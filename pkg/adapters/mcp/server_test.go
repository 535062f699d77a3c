package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/jsonml"
	"github.com/aretw0/jsonml/pkg/prefs"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callRender(t *testing.T, s *Server, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Name = ToolRenderMarkup
	req.Params.Arguments = args

	result, err := s.handleRenderMarkup(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text
}

func TestRenderMarkup(t *testing.T) {
	s := NewServer(jsonml.New(), prefs.Defaults().Names())

	result := callRender(t, s, map[string]any{"markup": `[["b", null], "hi", ["reference", null]]`})
	assert.False(t, result.IsError)

	var node []any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &node))
	assert.Equal(t, []any{
		"b", map[string]any{}, "hi",
		[]any{"span", map[string]any{"style": "color: #808080"}, "nil"},
	}, node)
}

func TestRenderMarkup_Errors(t *testing.T) {
	s := NewServer(jsonml.New(), nil)

	result := callRender(t, s, map[string]any{})
	assert.True(t, result.IsError)

	result = callRender(t, s, map[string]any{"markup": `{`})
	assert.True(t, result.IsError)

	result = callRender(t, s, map[string]any{"markup": `["bogus"]`})
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "bogus")
}
