// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv, which reads .env files into the
// process environment, with github.com/caarlos0/env/v11, which maps the
// environment onto struct fields through `env` and `envDefault` tags.
//
// # Caching
//
// Load parses each configuration type at most once per process. The parsed
// value is stored under the type's fully qualified name and copied into the
// destination on every later call, so concurrent callers share one parse.
// A failed parse is not cached: once the environment is fixed the next Load
// retries. ForceReloadConfig drops one type from the cache and ResetCache
// drops all of them.
//
// # .env files
//
// The first Load reads ./.env when it exists. Call LoadEnv beforehand to read
// other files instead:
//
//	if err := config.LoadEnv("deploy/enumctl.env"); err != nil {
//		return err
//	}
//
// Values already set in the environment are never overwritten by files.
//
// # Usage
//
//	type Config struct {
//		File  string `env:"ENUMCTL_FILE"`
//		Store string `env:"ENUMCTL_STORE" envDefault:"memory"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// # Errors
//
// Parsing failures wrap ErrParsingConfig and file failures wrap
// ErrLoadingEnvFile; test with errors.Is. Passing a nil pointer returns
// ErrNilPointer.
package config
