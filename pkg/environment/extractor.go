package environment

import (
	"context"
	"log/slog"
)

// LoggerExtractor logs the environment carried by the context under "env".
// Its signature matches logger.ContextExtractor.
func LoggerExtractor() func(context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		env := FromContext(ctx)
		if env == "" {
			return slog.Attr{}, false
		}
		return slog.String("env", env.String()), true
	}
}
