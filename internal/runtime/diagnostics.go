package runtime

import (
	"strings"

	"github.com/aretw0/jsonml/pkg/codec"
	"github.com/aretw0/jsonml/pkg/domain"
	"github.com/davecgh/go-spew/spew"
)

const (
	// topLevelCrumb marks a top-level descent in the render path.
	topLevelCrumb  = "<render-markup>"
	stackSeparator = "-------------"
	// maxMarkupDepth bounds markup nesting within one render, which stops
	// self-referencing tokens before they exhaust the goroutine stack.
	maxMarkupDepth = 1000
)

var (
	prettyConfig = spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}
	previewConfig = spew.ConfigState{
		MaxDepth:                1,
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}
)

// renderContext carries the diagnostic state of one top-level render.
// Every push is paired with a deferred pop, so both slices are empty again
// once the render returns, whether it failed or not.
type renderContext struct {
	// path holds tag breadcrumbs, outermost first.
	path []any
	// stack holds raw markup frames, outermost first. It is printed reversed.
	stack []any
	steps int
	// depth counts the renderTree calls currently active.
	depth int
}

func (rc *renderContext) pushPath(crumb any) func() {
	n := len(rc.path)
	rc.path = append(rc.path, crumb)
	return func() { rc.path = rc.path[:n] }
}

func (rc *renderContext) pushStack(frame any) func() {
	n := len(rc.stack)
	rc.stack = append(rc.stack, frame)
	return func() { rc.stack = rc.stack[:n] }
}

func (rc *renderContext) descend() (func(), bool) {
	if rc.depth >= maxMarkupDepth {
		return nil, false
	}
	rc.depth++
	return func() { rc.depth-- }, true
}

// fail builds a MarkupError carrying the current path and stack.
func (rc *renderContext) fail(reason string) *domain.MarkupError {
	return &domain.MarkupError{
		Reason: reason,
		Path:   formatPath(rc.path),
		Stack:  formatStack(rc.stack),
	}
}

func formatPath(path []any) string {
	return prettyConfig.Sprintf("%v", codec.Scrub(path))
}

func formatStack(stack []any) string {
	frames := make([]string, 0, len(stack))
	for i := len(stack) - 1; i >= 0; i-- {
		frames = append(frames, strings.TrimRight(prettyConfig.Sdump(codec.Scrub(stack[i])), "\n"))
	}
	return strings.Join(frames, "\n"+stackSeparator+"\n")
}

// preview prints markup one level deep.
func preview(markup any) string {
	return previewConfig.Sprintf("%v", codec.Scrub(markup))
}

func pprint(v any) string {
	return strings.TrimRight(prettyConfig.Sdump(codec.Scrub(v)), "\n")
}
