package prefs

import (
	"sort"
	"sync"

	"github.com/aretw0/jsonml/pkg/domain"
)

// Table is a concurrency-safe token table. It implements ports.Resolver.
type Table struct {
	mu     sync.RWMutex
	tokens map[domain.Token]any
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		tokens: make(map[domain.Token]any),
	}
}

// NewTableFrom creates a table holding a copy of tokens.
func NewTableFrom(tokens map[domain.Token]any) *Table {
	t := NewTable()
	for k, v := range tokens {
		t.tokens[k] = v
	}
	return t
}

// Defaults returns a table holding the built-in tokens.
func Defaults() *Table {
	return NewTableFrom(defaultTokens)
}

var defaultTokens = map[domain.Token]any{
	domain.TokenNilTag:   "span",
	domain.TokenNilStyle: "color: #808080",
	domain.TokenNilLabel: "nil",
}

// Set registers value under token, overwriting any previous value.
func (t *Table) Set(token domain.Token, value any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tokens[token] = value
}

// Merge copies every entry of tokens into the table.
func (t *Table) Merge(tokens map[domain.Token]any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for k, v := range tokens {
		t.tokens[k] = v
	}
}

// Lookup returns the raw value registered under token.
func (t *Table) Lookup(token domain.Token) (any, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.tokens[token]
	return v, ok
}

// Resolve returns the value registered under token, following chains of
// tokens until a non-token value is reached. Unknown tokens resolve to nil.
func (t *Table) Resolve(token domain.Token) any {
	t.mu.RLock()
	defer t.mu.RUnlock()

	seen := make(map[domain.Token]struct{})
	current := token
	for {
		if _, loop := seen[current]; loop {
			return nil
		}
		seen[current] = struct{}{}

		v, ok := t.tokens[current]
		if !ok {
			return nil
		}
		next, isToken := v.(domain.Token)
		if !isToken {
			return v
		}
		current = next
	}
}

// Snapshot returns a copy of the table contents.
func (t *Table) Snapshot() map[domain.Token]any {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[domain.Token]any, len(t.tokens))
	for k, v := range t.tokens {
		out[k] = v
	}
	return out
}

// Names returns the sorted token names.
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	names := make([]string, 0, len(t.tokens))
	for k := range t.tokens {
		names = append(names, string(k))
	}
	sort.Strings(names)
	return names
}
