package domain

// State is the formatter configuration handed to the host with every Reference.
type State struct {
	// History holds the objects already on the current formatting path.
	History []any `json:"history,omitempty" yaml:"history,omitempty" mapstructure:"history"`

	// DepthBudget limits how many more nested levels the host should expand.
	// Zero means unlimited.
	DepthBudget int `json:"depth_budget,omitempty" yaml:"depth_budget,omitempty" mapstructure:"depth_budget"`

	// Extra carries host-specific keys untouched.
	Extra map[string]any `json:"extra,omitempty" yaml:"extra,omitempty" mapstructure:",remain"`
}

// StateOverride derives the state attached to a Reference from the current one.
type StateOverride func(State) State

// NewState creates an empty state.
func NewState() State {
	return State{
		History: []any{},
		Extra:   make(map[string]any),
	}
}

// Clone returns a copy that does not share slices or maps with s.
func (s State) Clone() State {
	out := State{DepthBudget: s.DepthBudget}
	if s.History != nil {
		out.History = append([]any(nil), s.History...)
	}
	if s.Extra != nil {
		out.Extra = make(map[string]any, len(s.Extra))
		for k, v := range s.Extra {
			out.Extra[k] = v
		}
	}
	return out
}
