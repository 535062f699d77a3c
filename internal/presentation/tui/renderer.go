package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/jsonml/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// An empty style selects a light or dark theme from the terminal background.
func NewRenderer(style string) (func(string) (string, error), error) {
	opt := glamour.WithAutoStyle()
	if style != "" {
		opt = glamour.WithStandardStyle(style)
	}

	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(100))
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return r.Render, nil
}

// ErrorReport describes a render failure as markdown. Markup errors get their
// render path and stack in separate sections.
func ErrorReport(err error) string {
	var sb strings.Builder
	sb.WriteString("# Render failed\n\n")

	var markupErr *domain.MarkupError
	if !errors.As(err, &markupErr) {
		fmt.Fprintf(&sb, "```\n%s\n```\n", err)
		return sb.String()
	}

	fmt.Fprintf(&sb, "```\n%s\n```\n", markupErr.Reason)
	if markupErr.Path != "" {
		fmt.Fprintf(&sb, "\n## Render path\n\n`%s`\n", markupErr.Path)
	}
	if markupErr.Stack != "" {
		fmt.Fprintf(&sb, "\n## Render stack\n\n```\n%s\n```\n", markupErr.Stack)
	}
	return sb.String()
}

// RenderErrorReport renders ErrorReport(err) for the terminal.
func RenderErrorReport(err error, style string) (string, error) {
	render, rerr := NewRenderer(style)
	if rerr != nil {
		return "", rerr
	}
	return render(ErrorReport(err))
}
