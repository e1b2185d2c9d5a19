package theme

import "context"

type ctxKey struct{}

// NewContext returns a child context carrying t. An inner NewContext
// shadows an outer one for its descendants only; the outer value is
// visible again outside the inner scope.
func NewContext(ctx context.Context, t Theme) context.Context {
	return context.WithValue(ctx, ctxKey{}, t)
}

// FromContext reports the innermost theme carried by ctx, if any.
func FromContext(ctx context.Context) (Theme, bool) {
	t, ok := ctx.Value(ctxKey{}).(Theme)
	return t, ok
}

// ThemeOf returns the innermost theme carried by ctx, falling back to the
// default light theme when no provider scope is active.
func ThemeOf(ctx context.Context) Theme {
	if t, ok := FromContext(ctx); ok {
		return t
	}
	return Default()
}
