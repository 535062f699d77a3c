package runtime

import (
	"reflect"

	"github.com/aretw0/jsonml/pkg/domain"
)

// MakeGroup builds a Group from items. Plain []any items are spliced in one
// level deep, nil items are skipped and everything else is resolved through
// the token table.
func (e *Engine) MakeGroup(items []any) domain.Group {
	group := domain.MarkAsGroup(make([]any, 0, len(items)))
	for _, item := range items {
		if item == nil {
			continue
		}
		if coll, ok := item.([]any); ok {
			group = domain.MarkAsGroup(append(group, coll...))
			continue
		}
		group = append(group, e.pref(item))
	}
	return group
}

// MakeTemplate builds [tag, attributes, ...children]. Tag and style are
// resolved first; an empty style yields empty attributes. Children resolving
// to nil are dropped and plain []any children are spliced in.
func (e *Engine) MakeTemplate(tag, style any, children []any) domain.Template {
	tag = e.pref(tag)
	style = e.pref(style)

	attrs := domain.Attributes{}
	if !isEmpty(style) {
		attrs["style"] = style
	}

	template := domain.MarkAsTemplate(make([]any, 0, len(children)+2))
	template = append(template, tag, attrs)
	for _, child := range children {
		if child == nil {
			continue
		}
		if coll, ok := child.([]any); ok {
			for _, item := range coll {
				if resolved := e.pref(item); resolved != nil {
					template = append(template, resolved)
				}
			}
			template = domain.MarkAsTemplate(template)
			continue
		}
		if resolved := e.pref(child); resolved != nil {
			template = append(template, resolved)
		}
	}
	return template
}

// ConcatTemplates returns a new Template holding template followed by the
// elements of every other value after token resolution. Values resolving to
// nil are dropped; non-sequence values are appended whole.
func (e *Engine) ConcatTemplates(template domain.Template, others []any) domain.Template {
	out := make([]any, len(template), len(template)+len(others))
	copy(out, template)

	for _, other := range others {
		resolved := e.pref(other)
		switch v := resolved.(type) {
		case nil:
			continue
		case domain.Template:
			out = append(out, v...)
		case domain.Group:
			out = append(out, v...)
		case []any:
			out = append(out, v...)
		default:
			out = append(out, v)
		}
	}
	return domain.MarkAsTemplate(out)
}

// ExtendTemplate appends others to template. It behaves exactly like
// ConcatTemplates.
func (e *Engine) ExtendTemplate(template domain.Template, others []any) domain.Template {
	return e.ConcatTemplates(template, others)
}

// MakeSurrogate builds a surrogate for target. A nil startIndex means 0.
func (e *Engine) MakeSurrogate(target, header, body any, startIndex *int) *domain.Surrogate {
	idx := 0
	if startIndex != nil {
		idx = *startIndex
	}
	return domain.MarkAsSurrogate(&domain.Surrogate{
		Target:     target,
		Header:     header,
		Body:       body,
		StartIndex: idx,
	})
}

// MakeReference hands target off to the host's default formatter together
// with the current state, optionally transformed by override. A nil target
// renders as the nil label template instead.
func (e *Engine) MakeReference(target any, override domain.StateOverride) domain.Node {
	if isNil(target) {
		return e.nilTemplate()
	}

	current := e.states.CurrentState()
	if override != nil {
		current = override(current)
	}
	return e.MakeGroup([]any{domain.ReferenceTag, map[string]any{
		"object": target,
		"config": current,
	}})
}

// makeReferenceFromArgs is MakeReference for loosely typed markup arguments.
func (e *Engine) makeReferenceFromArgs(target any, args []any) (domain.Node, error) {
	var override domain.StateOverride
	if len(args) > 0 && args[0] != nil {
		switch fn := args[0].(type) {
		case domain.StateOverride:
			override = fn
		case func(domain.State) domain.State:
			override = fn
		default:
			return nil, &domain.InvariantViolation{
				Condition: "state override must be nil or func(State) State",
				Value:     args[0],
			}
		}
	}
	return e.MakeReference(target, override), nil
}

func (e *Engine) nilTemplate() domain.Template {
	return e.MakeTemplate(domain.TokenNilTag, domain.TokenNilStyle, []any{domain.TokenNilLabel})
}

// isEmpty reports whether v is nil or an empty string, sequence or map.
func isEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case []any:
		return len(val) == 0
	case domain.Template:
		return len(val) == 0
	case domain.Group:
		return len(val) == 0
	case domain.Attributes:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	}
	return false
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
