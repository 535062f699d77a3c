package runtime

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/aretw0/jsonml/pkg/domain"
)

// renderTree interprets one markup node. Values that are not plain []any are
// returned unchanged.
func (e *Engine) renderTree(rc *renderContext, markup any) (any, error) {
	seq, ok := markup.([]any)
	if !ok {
		return markup, nil
	}

	var head any
	if len(seq) > 0 {
		head = seq[0]
	}
	defer rc.pushPath(head)()

	ascend, ok := rc.descend()
	if !ok {
		return nil, rc.fail(fmt.Sprintf("markup nested deeper than %d levels at %s:", maxMarkupDepth, preview(markup)))
	}
	defer ascend()

	rest := []any{}
	if len(seq) > 1 {
		rest = seq[1:]
	}

	switch tag := e.pref(head).(type) {
	case string:
		return e.renderSpecial(rc, tag, rest)
	case []any:
		return e.renderSubtree(rc, tag, rest)
	default:
		return nil, rc.fail(fmt.Sprintf("invalid markup at %s:", preview(markup)))
	}
}

// renderSpecial handles markup headed by a special tag name.
func (e *Engine) renderSpecial(rc *renderContext, name string, args []any) (domain.Node, error) {
	switch name {
	case domain.SpecialSurrogate:
		var target any
		if len(args) > 0 {
			target = args[0]
			args = args[1:]
		}
		if len(args) > 3 {
			return nil, rc.fail(fmt.Sprintf("invalid arity for special tag '%s': got %d arguments, want at most 4", name, len(args)+1))
		}

		rendered := make([]any, 3)
		for i, arg := range args {
			out, err := e.renderTree(rc, arg)
			if err != nil {
				return nil, err
			}
			rendered[i] = out
		}

		var startIndex *int
		if len(args) == 3 {
			idx, err := toIndex(rendered[2])
			if err != nil {
				return nil, rc.fail(err.Error())
			}
			startIndex = idx
		}
		return e.MakeSurrogate(target, rendered[0], rendered[1], startIndex), nil

	case domain.SpecialReference:
		var target any
		if len(args) > 0 {
			target = args[0]
			args = args[1:]
		}
		if e.isSurrogateMarkup(target) {
			out, err := e.renderTree(rc, target)
			if err != nil {
				return nil, err
			}
			target = out
		}
		return e.makeReferenceFromArgs(target, args)

	default:
		return nil, rc.fail(fmt.Sprintf("no matching special tag name: '%s'", name))
	}
}

// renderSubtree renders an ordinary [tag, style] node into a Template.
// Children are resolved first, emptyish ones dropped, the rest rendered.
func (e *Engine) renderSubtree(rc *renderContext, tag []any, children []any) (domain.Node, error) {
	var htmlTag, style any
	if len(tag) > 0 {
		htmlTag = tag[0]
	}
	if len(tag) > 1 {
		style = tag[1]
	}

	rendered := make([]any, 0, len(children))
	for _, child := range children {
		resolved := e.pref(child)
		if isEmpty(resolved) {
			continue
		}
		out, err := e.renderTree(rc, resolved)
		if err != nil {
			return nil, err
		}
		rendered = append(rendered, out)
	}
	return e.MakeTemplate(htmlTag, style, rendered), nil
}

func (e *Engine) isSurrogateMarkup(v any) bool {
	seq, ok := v.([]any)
	return ok && len(seq) > 0 && e.pref(seq[0]) == domain.SpecialSurrogate
}

// toIndex accepts the numeric shapes a start index can arrive in.
func toIndex(v any) (*int, error) {
	var idx int
	switch n := v.(type) {
	case nil:
		return nil, nil
	case int:
		idx = n
	case int32:
		idx = int(n)
	case int64:
		idx = int(n)
	case uint:
		if n > math.MaxInt {
			return nil, fmt.Errorf("invalid surrogate start index: %v", n)
		}
		idx = int(n)
	case float64:
		if n != math.Trunc(n) || n < math.MinInt || n >= math.MaxInt {
			return nil, fmt.Errorf("invalid surrogate start index: %v", n)
		}
		idx = int(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return nil, fmt.Errorf("invalid surrogate start index: %v", n)
		}
		idx = int(i)
	default:
		return nil, fmt.Errorf("invalid surrogate start index: %v (%T)", v, v)
	}
	return &idx, nil
}
