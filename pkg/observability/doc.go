/*
Package observability turns render lifecycle events into Prometheus metrics
and structured log lines.

Metrics and loggers are both delivered as domain.RenderHooks, so they can be
combined with Chain and handed to the engine through jsonml.WithHooks.
*/
package observability
