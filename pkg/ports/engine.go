package ports

import (
	"context"

	"github.com/aretw0/jsonml/pkg/domain"
)

// Renderer is the interface used by adapters (HTTP, MCP) to render markup.
type Renderer interface {
	// Render reduces markup until it reaches a Template, Surrogate or Reference.
	Render(ctx context.Context, markup any) (domain.Node, error)

	// Resolve looks a token up in the engine's token table.
	Resolve(token domain.Token) any
}
