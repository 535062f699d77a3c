package codec

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/aretw0/jsonml/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Encode renders v as host JSON.
func Encode(v any) ([]byte, error) {
	return json.Marshal(ToPlain(v))
}

// EncodeIndent is Encode with indentation.
func EncodeIndent(v any) ([]byte, error) {
	return json.MarshalIndent(ToPlain(v), "", "  ")
}

// EncodeYAML renders v as YAML using the same plain shape as Encode.
func EncodeYAML(v any) ([]byte, error) {
	return yaml.Marshal(ToPlain(v))
}

// ToPlain converts nodes and markup values into JSON friendly data.
// Tokens are written back with their colon prefix and functions become
// domain.FnMarker.
func ToPlain(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case domain.Token:
		return ":" + string(val)
	case string:
		if strings.HasPrefix(val, ":") {
			return ":" + val
		}
		return val
	case domain.Template:
		return plainSlice(val)
	case domain.Group:
		return plainSlice(val)
	case []any:
		return plainSlice(val)
	case *domain.Surrogate:
		if val == nil {
			return nil
		}
		return map[string]any{
			"target":     ToPlain(val.Target),
			"header":     ToPlain(val.Header),
			"body":       ToPlain(val.Body),
			"startIndex": val.StartIndex,
		}
	case domain.Attributes:
		return plainMap(val)
	case map[string]any:
		return plainMap(val)
	case domain.State:
		out := map[string]any{}
		if len(val.History) > 0 {
			out["history"] = plainSlice(val.History)
		}
		if val.DepthBudget != 0 {
			out["depth_budget"] = val.DepthBudget
		}
		if len(val.Extra) > 0 {
			out["extra"] = plainMap(val.Extra)
		}
		return out
	}
	if isFunc(v) {
		return domain.FnMarker
	}
	return v
}

func plainSlice(items []any) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = ToPlain(item)
	}
	return out
}

func plainMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, item := range m {
		out[k] = ToPlain(item)
	}
	return out
}

func isFunc(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Func
}
