package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache holds one parsed copy per configuration type.
type cache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

var (
	globalCache = newCache()

	dotenvMu     sync.Mutex
	dotenvLoaded bool
)

func newCache() *cache {
	return &cache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}
}

// LoadEnv loads variables from the given .env files into the process
// environment. Without paths it loads ./.env. Variables already present in
// the environment win over file values.
//
// After LoadEnv succeeds, Load no longer tries the default ./.env file.
func LoadEnv(paths ...string) error {
	dotenvMu.Lock()
	defer dotenvMu.Unlock()

	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	dotenvLoaded = true
	return nil
}

// MustLoadEnv is like LoadEnv but panics on error.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// loadDefaultEnv reads ./.env once unless LoadEnv already ran. A missing file
// is not an error.
func loadDefaultEnv() {
	dotenvMu.Lock()
	defer dotenvMu.Unlock()

	if dotenvLoaded {
		return
	}
	_ = godotenv.Load()
	dotenvLoaded = true
}

// Load parses environment variables into v using `env` struct tags.
// Each configuration type is parsed once per process; later calls copy the
// cached value into v.
//
//	type StoreConfig struct {
//		Kind string `env:"ENUMCTL_STORE" envDefault:"memory"`
//	}
//
//	var cfg StoreConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	loadDefaultEnv()

	typeName := getTypeName[T]()
	if cached, ok := globalCache.get(typeName); ok {
		return assign(v, cached)
	}

	globalCache.mu.Lock()
	once, exists := globalCache.onces[typeName]
	if !exists {
		once = new(sync.Once)
		globalCache.onces[typeName] = once
	}
	globalCache.mu.Unlock()

	var err error
	once.Do(func() {
		var parsed T
		if parseErr := env.Parse(&parsed); parseErr != nil {
			err = errors.Join(ErrParsingConfig, parseErr)
			// Allow the next call to retry once the environment is fixed.
			globalCache.mu.Lock()
			delete(globalCache.onces, typeName)
			globalCache.mu.Unlock()
			return
		}
		globalCache.set(typeName, parsed)
	})
	if err != nil {
		return err
	}

	if cached, ok := globalCache.get(typeName); ok {
		return assign(v, cached)
	}
	return ErrConfigNotLoaded
}

// MustLoad is like Load but panics on error.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ForceReloadConfig drops the cached value of T and parses the environment
// again.
func ForceReloadConfig[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	typeName := getTypeName[T]()
	globalCache.mu.Lock()
	delete(globalCache.values, typeName)
	delete(globalCache.onces, typeName)
	globalCache.mu.Unlock()

	return Load(v)
}

// ResetCache forgets every cached configuration and lets Load read ./.env
// again. Intended for tests.
func ResetCache() {
	globalCache.mu.Lock()
	globalCache.values = make(map[string]any)
	globalCache.onces = make(map[string]*sync.Once)
	globalCache.mu.Unlock()

	dotenvMu.Lock()
	dotenvLoaded = false
	dotenvMu.Unlock()
}

func (c *cache) get(typeName string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[typeName]
	return v, ok
}

func (c *cache) set(typeName string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[typeName] = v
}

func assign[T any](dst *T, cached any) error {
	val, ok := cached.(T)
	if !ok {
		return ErrInvalidConfigType
	}
	*dst = val
	return nil
}

// getTypeName returns the fully qualified name of T.
func getTypeName[T any]() string {
	t := reflect.TypeFor[T]()
	if t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}
