// Package logger builds *slog.Logger instances for enumkit tools and provides
// attribute helpers that keep key names consistent across packages.
//
// New applies a list of Option values and builds a JSON or text slog handler.
// When context extractors are registered (WithContextExtractors, for example
// environment.LoggerExtractor) the handler is wrapped in ContextHandler, which
// adds the extracted attributes to every record logged with a context.
//
// WithEnvironment reads the log format and level declared for an environment
// in environment.Environments, so defaults per environment live next to the
// environment declaration rather than in the logger. The env attribute is
// not static: pair WithEnvironment with environment.LoggerExtractor and log
// with a context carrying the environment.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "enumctl"),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "enum overrides synced",
//	    logger.Enum("order_status"),
//	    logger.Member("paid"),
//	)
//
// The attribute helpers (Enum, Member, Store, Command, Duration, Error) keep
// key names identical across packages.
package logger
