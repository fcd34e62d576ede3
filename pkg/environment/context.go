package environment

import "context"

type ctxKey struct{}

// WithContext stores env in ctx.
func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, ctxKey{}, env)
}

// FromContext returns the environment stored in ctx, or "" when there is none.
func FromContext(ctx context.Context) Environment {
	if ctx == nil {
		return ""
	}
	env, _ := ctx.Value(ctxKey{}).(Environment)
	return env
}

// Is reports whether ctx carries env.
func Is(ctx context.Context, env Environment) bool {
	return env != "" && FromContext(ctx) == env
}

func IsProduction(ctx context.Context) bool  { return Is(ctx, Production) }
func IsStaging(ctx context.Context) bool     { return Is(ctx, Staging) }
func IsDevelopment(ctx context.Context) bool { return Is(ctx, Development) }
