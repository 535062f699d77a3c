package ports

import "github.com/aretw0/jsonml/pkg/domain"

// Resolver maps a symbolic token to its concrete value.
// Unknown tokens resolve to nil.
type Resolver interface {
	Resolve(token domain.Token) any
}

// ResolverFunc adapts a plain function to Resolver.
type ResolverFunc func(domain.Token) any

// Resolve calls f.
func (f ResolverFunc) Resolve(token domain.Token) any { return f(token) }

// StateProvider supplies the current formatter state.
type StateProvider interface {
	CurrentState() domain.State
}

// StateProviderFunc adapts a plain function to StateProvider.
type StateProviderFunc func() domain.State

// CurrentState calls f.
func (f StateProviderFunc) CurrentState() domain.State { return f() }
