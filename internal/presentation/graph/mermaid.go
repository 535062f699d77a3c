package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/jsonml/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart of a rendered node tree.
// It applies semantic shapes:
// - Template: [Rectangle] labelled with its tag
// - Surrogate: [[Subroutine]]
// - Reference: [/Parallelogram/]
// - Text leaves: (Rounded)
// Templates carrying a style are given the "styled" class.
func GenerateMermaid(node domain.Node) string {
	w := &mermaidWriter{}
	w.sb.WriteString("graph TD\n")
	w.visit(node)

	if len(w.styled) > 0 {
		w.sb.WriteString("\n    %% Styles\n")
		w.sb.WriteString("    classDef styled fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		for _, id := range w.styled {
			fmt.Fprintf(&w.sb, "    class %s styled;\n", id)
		}
	}
	return w.sb.String()
}

type mermaidWriter struct {
	sb     strings.Builder
	next   int
	styled []string
}

func (w *mermaidWriter) id() string {
	id := fmt.Sprintf("n%d", w.next)
	w.next++
	return id
}

func (w *mermaidWriter) shape(id, opener, label, closer string) {
	fmt.Fprintf(&w.sb, "    %s%s\"%s\"%s\n", id, opener, sanitizeLabel(label), closer)
}

func (w *mermaidWriter) edge(from, to, label string) {
	if label == "" {
		fmt.Fprintf(&w.sb, "    %s --> %s\n", from, to)
		return
	}
	fmt.Fprintf(&w.sb, "    %s -- \"%s\" --> %s\n", from, label, to)
}

// visit writes v and its descendants and returns the id of v.
func (w *mermaidWriter) visit(v any) string {
	id := w.id()
	switch n := v.(type) {
	case domain.Template:
		w.shape(id, "[", fmt.Sprint(n.Tag()), "]")
		if _, ok := n.Attrs()["style"]; ok {
			w.styled = append(w.styled, id)
		}
		for _, child := range n.Children() {
			w.edge(id, w.visit(child), "")
		}
	case domain.Group:
		if domain.IsReference(n) {
			label := "object"
			if config, ok := n[1].(map[string]any); ok {
				label = fmt.Sprintf("%v", config["object"])
			}
			w.shape(id, "[/", label, "/]")
			return id
		}
		w.shape(id, "[", "group", "]")
		for _, item := range n {
			w.edge(id, w.visit(item), "")
		}
	case *domain.Surrogate:
		w.shape(id, "[[", fmt.Sprintf("surrogate %v", n.Target), "]]")
		if n.Header != nil {
			w.edge(id, w.visit(n.Header), "header")
		}
		if n.Body != nil {
			w.edge(id, w.visit(n.Body), "body")
		}
	default:
		w.shape(id, "(", fmt.Sprint(v), ")")
	}
	return id
}

func sanitizeLabel(s string) string {
	s = strings.ReplaceAll(s, "\"", "'")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
