package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aretw0/jsonml"
	"github.com/aretw0/jsonml/pkg/codec"
	"github.com/aretw0/jsonml/pkg/domain"
	"github.com/aretw0/jsonml/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ToolRenderMarkup is the name of the render tool.
const ToolRenderMarkup = "render_markup"

// TokensResourceURI exposes the engine's default token table.
const TokensResourceURI = "jsonml://tokens"

// Server wraps a renderer and exposes it as an MCP Server.
type Server struct {
	engine    ports.Renderer
	tokens    []string
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance. tokens lists the token names
// published through the tokens resource.
func NewServer(engine ports.Renderer, tokens []string) *Server {
	s := &Server{
		engine:    engine,
		tokens:    tokens,
		mcpServer: server.NewMCPServer("jsonml-mcp", strings.TrimSpace(jsonml.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying server, mostly for in-process clients.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	renderTool := mcp.NewTool(ToolRenderMarkup,
		mcp.WithDescription("Render a JSON markup document into a template, surrogate or reference node."),
		mcp.WithString("markup", mcp.Required(), mcp.Description("The markup document as JSON. Tokens are written as \":name\".")),
	)
	s.mcpServer.AddTool(renderTool, s.handleRenderMarkup)
}

func (s *Server) handleRenderMarkup(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, _ := request.GetArguments()["markup"].(string)
	if raw == "" {
		return mcp.NewToolResultError("markup is required"), nil
	}

	markup, err := codec.DecodeJSON([]byte(raw))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	node, err := s.engine.Render(ctx, markup)
	if err != nil {
		var markupErr *domain.MarkupError
		if errors.As(err, &markupErr) {
			slog.Debug("MCP Render: markup rejected", "reason", markupErr.Reason)
		} else {
			slog.Warn("MCP Render failed", "error", err)
		}
		return mcp.NewToolResultError(err.Error()), nil
	}

	data, err := codec.Encode(node)
	if err != nil {
		return nil, fmt.Errorf("failed to encode node: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(TokensResourceURI, "Token Table",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		table := make(map[string]any, len(s.tokens))
		for _, name := range s.tokens {
			table[name] = s.engine.Resolve(domain.Token(name))
		}
		data, err := codec.Encode(table)
		if err != nil {
			return nil, fmt.Errorf("failed to encode tokens: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      TokensResourceURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	})
}
