package runtime

import (
	"io"
	"log/slog"

	"github.com/aretw0/jsonml/pkg/domain"
	"github.com/aretw0/jsonml/pkg/ports"
	"github.com/aretw0/jsonml/pkg/prefs"
)

// Engine is the markup interpreter.
// It holds no per-render state, so a single Engine can serve concurrent renders.
type Engine struct {
	resolver ports.Resolver
	states   ports.StateProvider
	hooks    domain.RenderHooks
	logger   *slog.Logger
}

// EngineOption defines a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithLifecycleHooks registers render observability hooks.
func WithLifecycleHooks(hooks domain.RenderHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates a new engine with dependencies.
// A nil resolver falls back to the built-in token table and a nil state
// provider always hands out an empty state.
func NewEngine(resolver ports.Resolver, states ports.StateProvider, opts ...EngineOption) *Engine {
	if resolver == nil {
		resolver = prefs.Defaults()
	}
	if states == nil {
		states = ports.StateProviderFunc(domain.NewState)
	}

	e := &Engine{
		resolver: resolver,
		states:   states,
		logger:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Resolve looks token up, following chains of tokens.
func (e *Engine) Resolve(token domain.Token) any {
	return e.pref(token)
}

// pref resolves v through the token table when it is a token and returns
// every other value unchanged.
func (e *Engine) pref(v any) any {
	for {
		token, ok := v.(domain.Token)
		if !ok {
			return v
		}
		v = e.resolver.Resolve(token)
	}
}
