package codec

import "github.com/aretw0/jsonml/pkg/domain"

// Scrub returns a deep copy of v where every function is replaced by
// domain.FnMarker. Node and markup types are preserved so the copy can be
// pretty-printed in diagnostics.
func Scrub(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case domain.Template:
		return domain.Template(scrubSlice(val))
	case domain.Group:
		return domain.Group(scrubSlice(val))
	case []any:
		return scrubSlice(val)
	case domain.Attributes:
		return domain.Attributes(scrubMap(val))
	case map[string]any:
		return scrubMap(val)
	case *domain.Surrogate:
		if val == nil {
			return val
		}
		return &domain.Surrogate{
			Target:     Scrub(val.Target),
			Header:     Scrub(val.Header),
			Body:       Scrub(val.Body),
			StartIndex: val.StartIndex,
		}
	}
	if isFunc(v) {
		return domain.FnMarker
	}
	return v
}

func scrubSlice(items []any) []any {
	if items == nil {
		return nil
	}
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = Scrub(item)
	}
	return out
}

func scrubMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, item := range m {
		out[k] = Scrub(item)
	}
	return out
}
