package dsl

import (
	"fmt"

	"github.com/aretw0/jsonml/pkg/domain"
)

// Builder collects named markup fragments that are published as tokens.
type Builder struct {
	fragments map[domain.Token]any
}

// New creates a new fragment builder.
func New() *Builder {
	return &Builder{
		fragments: make(map[domain.Token]any),
	}
}

// Define registers value under name, replacing any earlier definition.
// Builders are converted to markup.
func (b *Builder) Define(name string, value any) *Builder {
	b.fragments[domain.Token(name)] = toMarkup(value)
	return b
}

// Tokens returns the fragments as a token table.
func (b *Builder) Tokens() map[domain.Token]any {
	out := make(map[domain.Token]any, len(b.fragments))
	for k, v := range b.fragments {
		out[k] = v
	}
	return out
}

// Check reports fragments whose value is a token that no fragment defines,
// looking names up in known first.
func (b *Builder) Check(known map[domain.Token]any) error {
	for name, value := range b.fragments {
		ref, ok := value.(domain.Token)
		if !ok {
			continue
		}
		if _, defined := b.fragments[ref]; defined {
			continue
		}
		if _, defined := known[ref]; defined {
			continue
		}
		return fmt.Errorf("fragment %q refers to undefined token %q", name, ref)
	}
	return nil
}
