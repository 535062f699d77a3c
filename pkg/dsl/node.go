package dsl

import "github.com/aretw0/jsonml/pkg/domain"

// Marker is implemented by every builder in this package.
type Marker interface {
	Markup() []any
}

// T names a token.
func T(name string) domain.Token {
	return domain.Token(name)
}

// Lazy wraps fn so it is only called when the render reaches it.
func Lazy(fn func() any) domain.Deferred {
	return domain.Deferred(fn)
}

// NodeBuilder provides a fluent API for an ordinary [[tag, style], ...children] node.
type NodeBuilder struct {
	head     domain.Token
	tag      any
	style    any
	children []any
}

// Tag starts a node. tag may be a string or a token.
func Tag(tag any) *NodeBuilder {
	return &NodeBuilder{tag: tag}
}

// Using starts a node whose whole [tag, style] head comes from a token.
func Using(head domain.Token) *NodeBuilder {
	return &NodeBuilder{head: head}
}

// Style sets the node style: a CSS string, a map or a token.
func (n *NodeBuilder) Style(style any) *NodeBuilder {
	n.style = style
	return n
}

// Text appends text children.
func (n *NodeBuilder) Text(texts ...string) *NodeBuilder {
	for _, s := range texts {
		n.children = append(n.children, s)
	}
	return n
}

// Child appends children. Builders are converted to markup.
func (n *NodeBuilder) Child(children ...any) *NodeBuilder {
	for _, child := range children {
		n.children = append(n.children, toMarkup(child))
	}
	return n
}

// Head returns the [tag, style] pair of the node.
func (n *NodeBuilder) Head() []any {
	return []any{n.tag, n.style}
}

// Markup returns the node as markup.
func (n *NodeBuilder) Markup() []any {
	out := make([]any, 0, len(n.children)+1)
	if n.head != "" {
		out = append(out, n.head)
	} else {
		out = append(out, n.Head())
	}
	return append(out, n.children...)
}

// SurrogateBuilder provides a fluent API for ["surrogate", target, header, body, startIndex].
type SurrogateBuilder struct {
	target     any
	header     any
	body       any
	startIndex *int
}

// Surrogate starts a surrogate for target.
func Surrogate(target any) *SurrogateBuilder {
	return &SurrogateBuilder{target: target}
}

// Header sets the collapsed header.
func (s *SurrogateBuilder) Header(header any) *SurrogateBuilder {
	s.header = toMarkup(header)
	return s
}

// Body sets the expanded body.
func (s *SurrogateBuilder) Body(body any) *SurrogateBuilder {
	s.body = toMarkup(body)
	return s
}

// StartIndex sets where paging of the body starts.
func (s *SurrogateBuilder) StartIndex(i int) *SurrogateBuilder {
	s.startIndex = &i
	return s
}

// Markup returns the surrogate as markup. Trailing unset arguments are omitted.
func (s *SurrogateBuilder) Markup() []any {
	out := []any{domain.SpecialSurrogate, s.target}
	switch {
	case s.startIndex != nil:
		return append(out, s.header, s.body, *s.startIndex)
	case s.body != nil:
		return append(out, s.header, s.body)
	case s.header != nil:
		return append(out, s.header)
	}
	return out
}

// ReferenceMarkup is a ["reference", target, override] node.
type ReferenceMarkup []any

// Markup implements Marker.
func (r ReferenceMarkup) Markup() []any { return []any(r) }

// Reference returns reference markup for target. override may be nil.
func Reference(target any, override domain.StateOverride) ReferenceMarkup {
	if m, ok := target.(Marker); ok {
		target = m.Markup()
	}
	if override == nil {
		return ReferenceMarkup{domain.SpecialReference, target}
	}
	return ReferenceMarkup{domain.SpecialReference, target, override}
}

func toMarkup(v any) any {
	if m, ok := v.(Marker); ok {
		return m.Markup()
	}
	return v
}
