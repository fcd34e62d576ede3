package config

import "errors"

var (
	// ErrParsingConfig is returned when the environment cannot be parsed into the config struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrLoadingEnvFile is returned when a .env file cannot be read.
	ErrLoadingEnvFile = errors.New("failed to load env file")

	// ErrInvalidConfigType is returned when a cached value does not match the requested type.
	ErrInvalidConfigType = errors.New("invalid config type")

	// ErrConfigNotLoaded is returned when a config could not be found after loading.
	ErrConfigNotLoaded = errors.New("configuration has not been loaded")

	// ErrNilPointer is returned when a nil pointer is passed to Load.
	ErrNilPointer = errors.New("nil pointer provided")
)
