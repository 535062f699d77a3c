package domain

// MarkAsGroup tags v as a Group. The backing array is shared, not copied.
func MarkAsGroup(v []any) Group {
	return Group(v)
}

// MarkAsTemplate tags v as a Template. The backing array is shared, not copied.
func MarkAsTemplate(v []any) Template {
	return Template(v)
}

// MarkAsSurrogate tags s as a Surrogate and returns it.
func MarkAsSurrogate(s *Surrogate) *Surrogate {
	return s
}

// IsGroup reports whether v is a Group (references included).
func IsGroup(v any) bool {
	g, ok := v.(Group)
	return ok && g != nil
}

// IsTemplate reports whether v is a Template.
func IsTemplate(v any) bool {
	t, ok := v.(Template)
	return ok && t != nil
}

// IsSurrogate reports whether v is a non-nil *Surrogate.
func IsSurrogate(v any) bool {
	s, ok := v.(*Surrogate)
	return ok && s != nil
}

// IsReference reports whether v is a Group headed by ReferenceTag.
func IsReference(v any) bool {
	g, ok := v.(Group)
	return ok && len(g) > 0 && g[0] == ReferenceTag
}

// IsTerminal reports whether the resolution loop may stop at v.
func IsTerminal(v any) bool {
	return IsTemplate(v) || IsSurrogate(v) || IsReference(v)
}

// SurrogateTarget returns the target of a surrogate.
func SurrogateTarget(v any) (any, error) {
	s, err := asSurrogate(v)
	if err != nil {
		return nil, err
	}
	return s.Target, nil
}

// SurrogateHeader returns the header description of a surrogate.
func SurrogateHeader(v any) (any, error) {
	s, err := asSurrogate(v)
	if err != nil {
		return nil, err
	}
	return s.Header, nil
}

// SurrogateBody returns the body description of a surrogate.
func SurrogateBody(v any) (any, error) {
	s, err := asSurrogate(v)
	if err != nil {
		return nil, err
	}
	return s.Body, nil
}

// SurrogateStartIndex returns the index the host starts expanding from.
func SurrogateStartIndex(v any) (int, error) {
	s, err := asSurrogate(v)
	if err != nil {
		return 0, err
	}
	return s.StartIndex, nil
}

func asSurrogate(v any) (*Surrogate, error) {
	if !IsSurrogate(v) {
		return nil, &InvariantViolation{Condition: "surrogate?", Value: v}
	}
	return v.(*Surrogate), nil
}
