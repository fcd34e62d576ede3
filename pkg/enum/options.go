package enum

import "log/slog"

// Option configures a Type during construction.
type Option[V comparable] func(*typeConfig[V])

type typeConfig[V comparable] struct {
	labels     map[V]string
	data       map[V]Data
	logger     *slog.Logger
	registry   *Registry
	strictData bool
}

// WithLabels sets the label table (member value → display label).
// The map is copied; later changes to it are not observed.
func WithLabels[V comparable](labels map[V]string) Option[V] {
	return func(c *typeConfig[V]) {
		c.labels = labels
	}
}

// WithData sets the metadata table (member value → record).
// The table and each record are copied.
func WithData[V comparable](data map[V]Data) Option[V] {
	return func(c *typeConfig[V]) {
		c.data = data
	}
}

// WithLogger sets the logger used for override and declaration diagnostics.
// Nil loggers are ignored.
func WithLogger[V comparable](l *slog.Logger) Option[V] {
	return func(c *typeConfig[V]) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRegistry registers the type in r once it has been built.
func WithRegistry[V comparable](r *Registry) Option[V] {
	return func(c *typeConfig[V]) {
		c.registry = r
	}
}

// WithStrictData makes New fail with ErrIncompleteData when a metadata table
// is declared but lacks a record for some member.
func WithStrictData[V comparable]() Option[V] {
	return func(c *typeConfig[V]) {
		c.strictData = true
	}
}
