package ports

import (
	"context"

	"github.com/aretw0/jsonml/pkg/domain"
)

// TableStore persists named token tables so several renderers can share them.
type TableStore interface {
	// Save replaces the table stored under name.
	Save(ctx context.Context, name string, tokens map[domain.Token]any) error

	// Load retrieves the table stored under name.
	// Returns domain.ErrTableNotFound if no such table exists.
	Load(ctx context.Context, name string) (map[domain.Token]any, error)

	// Delete removes the table stored under name.
	Delete(ctx context.Context, name string) error

	// List returns the names of all stored tables.
	List(ctx context.Context) ([]string, error)
}
