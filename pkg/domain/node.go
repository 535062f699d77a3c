package domain

// Kind discriminates the closed set of rendered node variants.
type Kind string

const (
	KindGroup     Kind = "group"
	KindTemplate  Kind = "template"
	KindSurrogate Kind = "surrogate"
	// KindReference is a Group whose head is ReferenceTag.
	KindReference Kind = "reference"
)

// ReferenceTag heads every Reference group.
const ReferenceTag = "object"

// Special tag names recognized at the head of a markup node.
const (
	SpecialSurrogate = "surrogate"
	SpecialReference = "reference"
)

// Node is a rendered value the host can paint without knowing the markup grammar.
// The variant set is closed: Group, Template and *Surrogate.
type Node interface {
	Kind() Kind
	node()
}

// Token is a symbolic name resolved to a concrete value through a token table.
type Token string

// Deferred is a zero-argument computation evaluated lazily by the resolution loop.
// Plain func() any values are treated the same way.
type Deferred func() any

// Attributes is the second element of every Template.
// It is empty when no style was supplied, otherwise {"style": resolvedStyle}.
type Attributes map[string]any

// Group is an ordered sequence of already resolved values.
type Group []any

// Kind reports KindReference for reference groups and KindGroup otherwise.
func (g Group) Kind() Kind {
	if len(g) > 0 && g[0] == ReferenceTag {
		return KindReference
	}
	return KindGroup
}

func (Group) node() {}

// Template is a normalized [tag, attributes, ...children] node.
type Template []any

// Kind implements Node.
func (Template) Kind() Kind { return KindTemplate }

func (Template) node() {}

// Tag returns the resolved tag name, or nil for a malformed template.
func (t Template) Tag() any {
	if len(t) == 0 {
		return nil
	}
	return t[0]
}

// Attrs returns the attributes of the template.
func (t Template) Attrs() Attributes {
	if len(t) < 2 {
		return nil
	}
	attrs, _ := t[1].(Attributes)
	return attrs
}

// Children returns everything after the attributes.
func (t Template) Children() []any {
	if len(t) < 2 {
		return nil
	}
	return t[2:]
}

// Surrogate asks the host to render Target lazily, starting at StartIndex.
// Header and Body are renderable descriptions resolved by the host.
type Surrogate struct {
	Target     any `json:"target"`
	Header     any `json:"header"`
	Body       any `json:"body"`
	StartIndex int `json:"startIndex"`
}

// Kind implements Node.
func (*Surrogate) Kind() Kind { return KindSurrogate }

func (*Surrogate) node() {}
