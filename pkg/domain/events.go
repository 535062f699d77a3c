package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventRenderStart EventType = "render_start"
	EventRenderEnd   EventType = "render_end"
)

// RenderEvent describes one top-level render call.
type RenderEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	Type      EventType     `json:"type"`
	Steps     int           `json:"steps,omitempty"`
	Kind      Kind          `json:"kind,omitempty"`
	Duration  time.Duration `json:"duration,omitempty"`
	Err       error         `json:"-"`
}

// RenderHooks defines callbacks for engine observability.
type RenderHooks struct {
	OnRenderStart func(context.Context, *RenderEvent)
	OnRenderEnd   func(context.Context, *RenderEvent)
}
