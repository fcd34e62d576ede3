package enumstore

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/enumkit/pkg/enum"
	"github.com/dmitrymomot/enumkit/pkg/logger"
)

// Store persists metadata overrides.
type Store interface {
	// Load returns the stored overrides of an enumeration keyed by member.
	Load(ctx context.Context, enumName string) (map[string]enum.Data, error)
	// Save shallow-merges data into the stored override of member.
	Save(ctx context.Context, enumName, member string, data enum.Data) error
	// Delete forgets the stored override of member.
	Delete(ctx context.Context, enumName, member string) error
}

// Manager applies and persists overrides for in-process enumerations.
type Manager struct {
	store  Store
	logger *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger for the Manager.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

func NewManager(store Store, opts ...Option) *Manager {
	m := &Manager{
		store:  store,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Override merges data into the member's metadata record and persists the
// change. It returns false without touching the store when the enumeration
// has no record for member. When persisting fails the in-process change is
// kept and the error is returned with true.
func (m *Manager) Override(ctx context.Context, e enum.Enumeration, member string, data enum.Data) (bool, error) {
	if !e.OverrideString(member, data) {
		return false, nil
	}

	if err := m.store.Save(ctx, e.Name(), member, data); err != nil {
		m.logger.LogAttrs(ctx, slog.LevelError, "failed to persist enum override",
			logger.Enum(e.Name()),
			logger.Member(member),
			logger.Error(err),
		)
		return true, err
	}
	return true, nil
}

// Sync replays stored overrides into e and returns how many were applied.
// Overrides for unknown members or members without a metadata record are
// skipped.
func (m *Manager) Sync(ctx context.Context, e enum.Enumeration) (int, error) {
	overrides, err := m.store.Load(ctx, e.Name())
	if err != nil {
		return 0, err
	}

	applied := 0
	for member, data := range overrides {
		if e.OverrideString(member, data) {
			applied++
			continue
		}
		m.logger.LogAttrs(ctx, slog.LevelWarn, "skipping stored enum override",
			logger.Enum(e.Name()),
			logger.Member(member),
		)
	}

	m.logger.LogAttrs(ctx, slog.LevelDebug, "enum overrides synced",
		logger.Enum(e.Name()),
		slog.Int("applied", applied),
		slog.Int("stored", len(overrides)),
	)
	return applied, nil
}

// SyncAll syncs every enumeration registered in r.
func (m *Manager) SyncAll(ctx context.Context, r *enum.Registry) (int, error) {
	total := 0
	var errs []error
	for _, name := range r.Names() {
		e, ok := r.Lookup(name)
		if !ok {
			continue
		}
		n, err := m.Sync(ctx, e)
		total += n
		if err != nil {
			errs = append(errs, err)
		}
	}
	return total, errors.Join(errs...)
}

// Forget deletes the stored override of member. The in-process record is not
// reverted; declarations are the baseline only after a restart.
func (m *Manager) Forget(ctx context.Context, e enum.Enumeration, member string) error {
	return m.store.Delete(ctx, e.Name(), member)
}

func validateKey(enumName, member string) error {
	if strings.TrimSpace(enumName) == "" {
		return ErrEmptyEnumName
	}
	if member == "" {
		return ErrEmptyMember
	}
	return nil
}
