package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/jsonml/pkg/domain"
	"github.com/aretw0/jsonml/pkg/ports"
)

var _ ports.TableStore = (*Store)(nil)

// Store implements ports.TableStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]map[domain.Token]any
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]map[domain.Token]any),
	}
}

// Save copies tokens into the store. Values themselves are shared.
func (s *Store) Save(ctx context.Context, name string, tokens map[domain.Token]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[name] = copyTokens(tokens)
	return nil
}

// Load returns a copy of the table stored under name.
func (s *Store) Load(ctx context.Context, name string) (map[domain.Token]any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tokens, ok := s.data[name]
	if !ok {
		return nil, domain.ErrTableNotFound
	}
	return copyTokens(tokens), nil
}

// Delete removes the table.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, name)
	return nil
}

// List returns stored table names in sorted order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.data))
	for name := range s.data {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func copyTokens(tokens map[domain.Token]any) map[domain.Token]any {
	out := make(map[domain.Token]any, len(tokens))
	for k, v := range tokens {
		out[k] = v
	}
	return out
}
