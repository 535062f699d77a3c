package validator

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/aretw0/jsonml/pkg/domain"
	"github.com/aretw0/jsonml/pkg/ports"
)

type item struct {
	path   string
	markup any
	// child marks subtree children, which the renderer drops when empty.
	child bool
	depth int
	// via lists the tokens expanded on the way to this item.
	via []domain.Token
}

// maxDepth matches the renderer's nesting limit.
const maxDepth = 1000

// ValidateMarkup walks markup without rendering it and reports undefined
// tokens, unknown special tags, bad surrogate arity and malformed heads.
// Deferred values are not called, so problems behind them go unseen.
func ValidateMarkup(markup any, resolver ports.Resolver) error {
	var errors []string
	report := func(path, format string, args ...any) {
		errors = append(errors, fmt.Sprintf("%s: %s", path, fmt.Sprintf(format, args...)))
	}

	resolve := func(path string, v any) any {
		for {
			token, ok := v.(domain.Token)
			if !ok {
				return v
			}
			next := resolver.Resolve(token)
			if next == nil {
				report(path, "undefined token ':%s'", token)
			}
			v = next
		}
	}

	// expanded tokens are walked once; their markup does not depend on where
	// they appear.
	expanded := make(map[domain.Token]bool)

	queue := []item{{path: "$", markup: markup}}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if token, ok := current.markup.(domain.Token); ok {
			if slices.Contains(current.via, token) {
				report(current.path, "token ':%s' renders itself", token)
				continue
			}
			if expanded[token] {
				continue
			}
			expanded[token] = true
			current.via = append(slices.Clone(current.via), token)
		}

		seq, ok := resolve(current.path, current.markup).([]any)
		if !ok {
			continue
		}
		if len(seq) == 0 {
			if !current.child {
				report(current.path, "invalid markup head <nil>")
			}
			continue
		}
		if current.depth >= maxDepth {
			report(current.path, "markup nested deeper than %d levels", maxDepth)
			break
		}

		switch head := resolve(current.path+"/0", seq[0]).(type) {
		case string:
			args := seq[1:]
			switch head {
			case domain.SpecialSurrogate:
				if len(args) > 4 {
					report(current.path, "surrogate takes at most 4 arguments, got %d", len(args))
					continue
				}
				for i := 1; i < len(args) && i < 3; i++ {
					queue = append(queue, item{path: fmt.Sprintf("%s/%d", current.path, i+1), markup: args[i], depth: current.depth + 1, via: current.via})
				}
				if len(args) == 4 && !isIndex(args[3]) {
					report(current.path, "surrogate start index must be an integer, got %T", args[3])
				}
			case domain.SpecialReference:
				if len(args) > 0 {
					if target, ok := args[0].([]any); ok && len(target) > 0 && resolve(current.path+"/1", target[0]) == domain.SpecialSurrogate {
						queue = append(queue, item{path: current.path + "/1", markup: target, depth: current.depth + 1, via: current.via})
					}
				}
			default:
				report(current.path, "no matching special tag name: '%s'", head)
			}

		case []any:
			if len(head) > 0 {
				resolve(current.path+"/0/0", head[0])
			}
			if len(head) > 1 {
				resolve(current.path+"/0/1", head[1])
			}
			for i, child := range seq[1:] {
				queue = append(queue, item{path: fmt.Sprintf("%s/%d", current.path, i+1), markup: child, child: true, depth: current.depth + 1, via: current.via})
			}

		case nil:
			// Already reported as an undefined token when it came from one.
			if _, isToken := seq[0].(domain.Token); !isToken {
				report(current.path, "invalid markup head <nil>")
			}

		default:
			report(current.path, "invalid markup head of type %T", head)
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("found %d errors:\n- %s", len(errors), strings.Join(errors, "\n- "))
	}
	return nil
}

func isIndex(v any) bool {
	switch n := v.(type) {
	case nil, int, int32, int64, uint:
		return true
	case float64:
		return n == math.Trunc(n) && n >= math.MinInt64 && n < math.MaxInt64
	case json.Number:
		_, err := n.Int64()
		return err == nil
	}
	return false
}
