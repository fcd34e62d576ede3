package pg

import "context"

// Logger receives goose migration output. *slog.Logger satisfies it.
type Logger interface {
	InfoContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}
