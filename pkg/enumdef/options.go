package enumdef

import (
	"log/slog"

	"github.com/dmitrymomot/enumkit/pkg/enum"
)

// Option configures how declarations are turned into enum types.
type Option func(*options)

type options struct {
	logger     *slog.Logger
	registry   *enum.Registry
	strictData bool
}

// WithLogger passes l to every declared enum.Type.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRegistry registers every declared type in r.
func WithRegistry(r *enum.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithStrictData requires a metadata record for every member once any member
// declares one.
func WithStrictData() Option {
	return func(o *options) {
		o.strictData = true
	}
}

func typeOptions[V comparable](o *options) []enum.Option[V] {
	var opts []enum.Option[V]
	if o.logger != nil {
		opts = append(opts, enum.WithLogger[V](o.logger))
	}
	if o.registry != nil {
		opts = append(opts, enum.WithRegistry[V](o.registry))
	}
	if o.strictData {
		opts = append(opts, enum.WithStrictData[V]())
	}
	return opts
}
