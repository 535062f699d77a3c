package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/aretw0/jsonml/pkg/domain"
	"gopkg.in/yaml.v3"
)

// DecodeJSON parses a JSON markup document.
func DecodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse json markup: %w", err)
	}
	return FromPlain(raw), nil
}

// DecodeYAML parses a YAML markup document.
func DecodeYAML(data []byte) (any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse yaml markup: %w", err)
	}
	return FromPlain(raw), nil
}

// FromPlain converts generically decoded data into markup values.
func FromPlain(v any) any {
	switch val := v.(type) {
	case string:
		return decodeString(val)
	case json.Number:
		return decodeNumber(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = FromPlain(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = FromPlain(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = FromPlain(item)
		}
		return out
	default:
		return val
	}
}

func decodeString(s string) any {
	if strings.HasPrefix(s, "::") {
		return s[1:]
	}
	if len(s) > 1 && s[0] == ':' {
		return domain.Token(s[1:])
	}
	return s
}

func decodeNumber(n json.Number) any {
	if i, err := n.Int64(); err == nil && i >= math.MinInt && i <= math.MaxInt {
		return int(i)
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}
