package runtime

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/jsonml/pkg/domain"
)

// Render reduces value until it reaches a Template, Surrogate or Reference.
// Deferred values are called, tokens resolved and markup interpreted, in a
// loop with no iteration bound; ctx is checked before every step.
func (e *Engine) Render(ctx context.Context, value any) (domain.Node, error) {
	started := time.Now()
	if e.hooks.OnRenderStart != nil {
		e.hooks.OnRenderStart(ctx, &domain.RenderEvent{
			Timestamp: started,
			Type:      domain.EventRenderStart,
		})
	}

	rc := &renderContext{}
	node, err := e.renderMarkup(ctx, rc, value)

	event := &domain.RenderEvent{
		Timestamp: time.Now(),
		Type:      domain.EventRenderEnd,
		Steps:     rc.steps,
		Duration:  time.Since(started),
		Err:       err,
	}
	if node != nil {
		event.Kind = node.Kind()
	}
	if e.hooks.OnRenderEnd != nil {
		e.hooks.OnRenderEnd(ctx, event)
	}

	if err != nil {
		var markupErr *domain.MarkupError
		if errors.As(err, &markupErr) {
			e.logger.Warn("Markup rendering failed", "reason", markupErr.Reason, "steps", rc.steps)
		} else {
			e.logger.Warn("Render failed", "error", err, "steps", rc.steps)
		}
		return nil, err
	}

	e.logger.Debug("Markup rendered", "kind", event.Kind, "steps", rc.steps, "duration", event.Duration)
	return node, nil
}

// renderMarkup is the resolution trampoline.
func (e *Engine) renderMarkup(ctx context.Context, rc *renderContext, initial any) (domain.Node, error) {
	value := initial
	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("render aborted after %d steps: %w", rc.steps, err)
		}
		rc.steps++

		switch v := value.(type) {
		case domain.Deferred:
			if v != nil {
				value = v()
				continue
			}
		case func() any:
			if v != nil {
				value = v()
				continue
			}
		case domain.Token:
			value = e.pref(v)
			continue
		case []any:
			next, err := e.renderTopLevel(rc, v)
			if err != nil {
				return nil, err
			}
			value = next
			continue
		}

		if domain.IsTemplate(value) || domain.IsSurrogate(value) || domain.IsReference(value) {
			return value.(domain.Node), nil
		}
		return nil, &domain.MarkupError{
			Reason: fmt.Sprintf("result of markup rendering must be a template,\nresolved to %s\ninitial value: %s",
				pprint(value), pprint(initial)),
		}
	}
}

// renderTopLevel records markup as a stack frame for the duration of its
// interpretation.
func (e *Engine) renderTopLevel(rc *renderContext, markup []any) (any, error) {
	defer rc.pushStack(markup)()
	defer rc.pushPath(topLevelCrumb)()
	return e.renderTree(rc, markup)
}
