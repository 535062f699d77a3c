package state

import (
	"fmt"
	"sync"

	"github.com/aretw0/jsonml/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// Provider holds the current state. It implements ports.StateProvider and is
// safe for concurrent use.
type Provider struct {
	mu      sync.RWMutex
	current domain.State
}

// NewProvider creates a provider starting at initial.
func NewProvider(initial domain.State) *Provider {
	return &Provider{current: initial}
}

// CurrentState returns a copy of the current state.
func (p *Provider) CurrentState() domain.State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current.Clone()
}

// Set replaces the current state.
func (p *Provider) Set(s domain.State) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = s.Clone()
}

// Decode builds a state from loosely typed data such as a decoded YAML
// section or an HTTP request body. Unknown keys are kept in Extra.
func Decode(raw map[string]any) (domain.State, error) {
	st := domain.NewState()

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &st,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return domain.State{}, fmt.Errorf("failed to create state decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return domain.State{}, fmt.Errorf("failed to decode state: %w", err)
	}
	return st, nil
}

// WithHistory returns an override appending obj to the state history.
func WithHistory(obj any) domain.StateOverride {
	return func(s domain.State) domain.State {
		next := s.Clone()
		next.History = append(next.History, obj)
		return next
	}
}

// WithDepthBudget returns an override replacing the depth budget.
func WithDepthBudget(budget int) domain.StateOverride {
	return func(s domain.State) domain.State {
		next := s.Clone()
		next.DepthBudget = budget
		return next
	}
}
