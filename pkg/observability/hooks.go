package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/jsonml/pkg/domain"
)

// Chain fans every event out to each of hooks in order.
func Chain(hooks ...domain.RenderHooks) domain.RenderHooks {
	return domain.RenderHooks{
		OnRenderStart: func(ctx context.Context, e *domain.RenderEvent) {
			for _, h := range hooks {
				if h.OnRenderStart != nil {
					h.OnRenderStart(ctx, e)
				}
			}
		},
		OnRenderEnd: func(ctx context.Context, e *domain.RenderEvent) {
			for _, h := range hooks {
				if h.OnRenderEnd != nil {
					h.OnRenderEnd(ctx, e)
				}
			}
		},
	}
}

// LogHooks writes one line per finished render.
func LogHooks(logger *slog.Logger) domain.RenderHooks {
	return domain.RenderHooks{
		OnRenderEnd: func(ctx context.Context, e *domain.RenderEvent) {
			attrs := []any{
				"kind", e.Kind,
				"steps", e.Steps,
				"duration", e.Duration,
				"result", Result(e.Err),
			}
			if e.Err != nil {
				logger.WarnContext(ctx, "render_end", attrs...)
				return
			}
			logger.InfoContext(ctx, "render_end", attrs...)
		},
	}
}
