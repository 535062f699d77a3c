package jsonml

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/jsonml/internal/runtime"
	"github.com/aretw0/jsonml/pkg/codec"
	"github.com/aretw0/jsonml/pkg/domain"
	"github.com/aretw0/jsonml/pkg/ports"
	"github.com/aretw0/jsonml/pkg/prefs"
	"github.com/aretw0/jsonml/pkg/state"
)

// Engine is the high-level entry point for the jsonml library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime  *runtime.Engine
	resolver ports.Resolver
	states   ports.StateProvider
	hooks    domain.RenderHooks
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithResolver replaces the token table. Defaults to prefs.Defaults().
func WithResolver(r ports.Resolver) Option {
	return func(e *Engine) {
		e.resolver = r
	}
}

// WithTokens layers tokens over the built-in defaults.
func WithTokens(tokens map[domain.Token]any) Option {
	return func(e *Engine) {
		table := prefs.Defaults()
		table.Merge(tokens)
		e.resolver = table
	}
}

// WithStateProvider sets where references read the current state from.
func WithStateProvider(p ports.StateProvider) Option {
	return func(e *Engine) {
		e.states = p
	}
}

// WithState fixes the state handed to every reference.
func WithState(s domain.State) Option {
	return func(e *Engine) {
		e.states = state.NewProvider(s)
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.RenderHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New initializes a new Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	runtimeOpts := []runtime.EngineOption{runtime.WithLifecycleHooks(eng.hooks)}
	if eng.logger != nil {
		runtimeOpts = append(runtimeOpts, runtime.WithLogger(eng.logger))
	}
	eng.runtime = runtime.NewEngine(eng.resolver, eng.states, runtimeOpts...)
	return eng
}

// NewFromFile initializes an Engine from a preferences file (YAML or JSON).
// Options are applied after the file, so they take precedence.
func NewFromFile(path string, opts ...Option) (*Engine, error) {
	cfg, err := prefs.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load prefs: %w", err)
	}

	base := []Option{WithResolver(cfg.Tokens), WithState(cfg.State)}
	return New(append(base, opts...)...), nil
}

// Render reduces markup until it reaches a Template, Surrogate or Reference.
// Failures are *domain.MarkupError, *domain.InvariantViolation or a wrapped
// context error.
func (e *Engine) Render(ctx context.Context, markup any) (domain.Node, error) {
	return e.runtime.Render(ctx, markup)
}

// RenderJSON decodes a JSON markup document and renders it.
func (e *Engine) RenderJSON(ctx context.Context, data []byte) (domain.Node, error) {
	markup, err := codec.DecodeJSON(data)
	if err != nil {
		return nil, err
	}
	return e.Render(ctx, markup)
}

// RenderYAML decodes a YAML markup document and renders it.
func (e *Engine) RenderYAML(ctx context.Context, data []byte) (domain.Node, error) {
	markup, err := codec.DecodeYAML(data)
	if err != nil {
		return nil, err
	}
	return e.Render(ctx, markup)
}

// Resolve looks token up, following chains of tokens.
func (e *Engine) Resolve(token domain.Token) any {
	return e.runtime.Resolve(token)
}

// MakeGroup builds a Group, splicing plain []any items one level deep and
// skipping nils.
func (e *Engine) MakeGroup(items []any) domain.Group {
	return e.runtime.MakeGroup(items)
}

// MakeTemplate builds a normalized [tag, attributes, ...children] Template.
func (e *Engine) MakeTemplate(tag, style any, children []any) domain.Template {
	return e.runtime.MakeTemplate(tag, style, children)
}

// ConcatTemplates returns template followed by the elements of others.
func (e *Engine) ConcatTemplates(template domain.Template, others []any) domain.Template {
	return e.runtime.ConcatTemplates(template, others)
}

// ExtendTemplate is ConcatTemplates.
func (e *Engine) ExtendTemplate(template domain.Template, others []any) domain.Template {
	return e.runtime.ExtendTemplate(template, others)
}

// MakeSurrogate builds a collapsed placeholder for target. A nil startIndex
// means 0.
func (e *Engine) MakeSurrogate(target, header, body any, startIndex *int) *domain.Surrogate {
	return e.runtime.MakeSurrogate(target, header, body, startIndex)
}

// MakeReference builds a Reference to target, or the nil template when
// target is nil.
func (e *Engine) MakeReference(target any, override domain.StateOverride) domain.Node {
	return e.runtime.MakeReference(target, override)
}
