package theme

import (
	"context"
	"sync"
)

// ProviderOptions configures a Provider. Theme, when set, is used as-is:
// an already resolved theme is never re-merged against defaults (that is
// New's job, done once upstream by whoever built it). Otherwise Override,
// when set, is resolved against the light defaults. With neither, the
// provider owns the default light theme.
type ProviderOptions struct {
	Theme    *Theme
	Override *Override
}

// Provider owns one resolved theme for the duration of a subtree. Every
// provider instance resolves and holds its value independently; there is
// no process-wide theme, so nested or sibling providers never observe
// each other's state.
type Provider struct {
	theme Theme
}

// NewProvider resolves the provider's theme per opts. The only error is a
// shadow shape violation in opts.Override.
func NewProvider(opts ProviderOptions) (*Provider, error) {
	switch {
	case opts.Theme != nil:
		return &Provider{theme: *opts.Theme}, nil
	case opts.Override != nil:
		t, err := New(opts.Override)
		if err != nil {
			return nil, err
		}
		return &Provider{theme: t}, nil
	default:
		return &Provider{theme: Default()}, nil
	}
}

// Theme returns the provider's resolved theme.
func (p *Provider) Theme() Theme {
	return p.theme
}

// Context returns a child context carrying the provider's theme for every
// operation performed beneath it.
func (p *Provider) Context(ctx context.Context) context.Context {
	return NewContext(ctx, p.theme)
}

// Enter pushes the provider's theme onto s and returns the exit function
// that pops it. The exit function pops exactly once no matter how many
// times it runs, so it is safe to defer alongside early manual calls.
func (p *Provider) Enter(s *Scope) func() {
	s.Push(p.theme)
	var once sync.Once
	return func() {
		once.Do(s.Pop)
	}
}
