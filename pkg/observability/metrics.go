package observability

import (
	"context"
	"errors"

	"github.com/aretw0/jsonml/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Result labels for jsonml_renders_total.
const (
	ResultOK        = "ok"
	ResultMarkup    = "markup_error"
	ResultInvariant = "invariant_violation"
	ResultCanceled  = "canceled"
	ResultError     = "error"
)

// Metrics holds the render collectors.
type Metrics struct {
	Renders  *prometheus.CounterVec
	Steps    prometheus.Histogram
	Duration *prometheus.HistogramVec
}

// NewMetrics creates the render collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jsonml_renders_total",
				Help: "Total number of top-level renders by result",
			},
			[]string{"result"},
		),
		Steps: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "jsonml_render_steps",
				Help:    "Resolution loop iterations per render",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "jsonml_render_duration_seconds",
				Help: "Duration of top-level renders",
			},
			[]string{"kind"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Renders, m.Steps, m.Duration)
	}
	return m
}

// Hooks returns render hooks that record every finished render.
func (m *Metrics) Hooks() domain.RenderHooks {
	return domain.RenderHooks{
		OnRenderEnd: func(_ context.Context, e *domain.RenderEvent) {
			m.Renders.WithLabelValues(Result(e.Err)).Inc()
			m.Steps.Observe(float64(e.Steps))

			kind := string(e.Kind)
			if kind == "" {
				kind = "none"
			}
			m.Duration.WithLabelValues(kind).Observe(e.Duration.Seconds())
		},
	}
}

// Result classifies a render error into a result label.
func Result(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, domain.ErrMarkup):
		return ResultMarkup
	case errors.Is(err, domain.ErrInvariant):
		return ResultInvariant
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ResultCanceled
	}
	return ResultError
}
