package enum

import (
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"sync"
)

// TitleKey is the reserved record field ItemsWithData fills with the label.
const TitleKey = "title"

// Iface is the contract every enumeration type provides at the type level.
type Iface[V comparable] interface {
	// Items lists all legal members as value → display name.
	Items() map[V]string
	// IsValid reports whether v is the value of some member.
	IsValid(v V) bool
}

var _ Iface[int] = (*Type[int])(nil)

// Data is a free-form metadata record attached to a member.
type Data map[string]any

// Member is one declared constant of an enumeration.
type Member[V comparable] struct {
	Name  string
	Value V
}

// Type is a declared enumeration: a closed, ordered set of members plus
// optional label and metadata tables. It is safe for concurrent use.
type Type[V comparable] struct {
	name    string
	members []Member[V]
	strs    []string     // canonical string form, parallel to members
	byName  map[string]V // constant name → value
	names   map[V]string // value → constant name, last declared wins
	labels  map[V]string
	logger  *slog.Logger

	mu   sync.RWMutex
	data map[V]Data
}

// New declares an enumeration called name with the given members.
func New[V comparable](name string, members []Member[V], opts ...Option[V]) (*Type[V], error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(members) == 0 {
		return nil, ErrNoMembers
	}

	cfg := &typeConfig[V]{}
	for _, opt := range opts {
		opt(cfg)
	}

	t := &Type[V]{
		name:    name,
		members: make([]Member[V], 0, len(members)),
		strs:    make([]string, 0, len(members)),
		byName:  make(map[string]V, len(members)),
		names:   make(map[V]string, len(members)),
		labels:  maps.Clone(cfg.labels),
		logger:  cfg.logger,
	}
	if t.logger == nil {
		t.logger = slog.New(slog.DiscardHandler)
	}

	for _, m := range members {
		if strings.TrimSpace(m.Name) == "" {
			return nil, ErrEmptyMemberName
		}
		if _, ok := t.byName[m.Name]; ok {
			return nil, fmt.Errorf("%w: %s.%s", ErrDuplicateName, name, m.Name)
		}
		t.members = append(t.members, m)
		t.strs = append(t.strs, fmt.Sprint(m.Value))
		t.byName[m.Name] = m.Value
		t.names[m.Value] = m.Name
	}

	if len(cfg.data) > 0 {
		t.data = make(map[V]Data, len(cfg.data))
		for k, rec := range cfg.data {
			t.data[k] = maps.Clone(rec)
		}
		for _, m := range t.members {
			if _, ok := t.data[m.Value]; ok {
				continue
			}
			if cfg.strictData {
				return nil, fmt.Errorf("%w: %s.%s", ErrIncompleteData, name, m.Name)
			}
			t.logger.Warn("enum member has no metadata record, using empty record",
				slog.String("enum", name),
				slog.String("member", m.Name),
			)
		}
	}

	if cfg.registry != nil {
		if err := cfg.registry.Register(t); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// MustNew is like New but panics on error. Intended for package-level
// declarations where a broken enumeration should stop the program.
func MustNew[V comparable](name string, members []Member[V], opts ...Option[V]) *Type[V] {
	t, err := New(name, members, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to declare enum %q: %v", name, err))
	}
	return t
}

// Name returns the enumeration name.
func (t *Type[V]) Name() string {
	return t.name
}

// Len returns the number of declared members.
func (t *Type[V]) Len() int {
	return len(t.members)
}

// New wraps v in a Value after checking it is a member.
func (t *Type[V]) New(v V) (Value[V], error) {
	if !t.IsValid(v) {
		return Value[V]{}, NewInvalidValueError(t.name, v)
	}
	return Value[V]{typ: t, value: v}, nil
}

// Must is like New but panics for non-members.
func (t *Type[V]) Must(v V) Value[V] {
	val, err := t.New(v)
	if err != nil {
		panic(err)
	}
	return val
}

// Parse returns the member whose canonical string form equals s.
func (t *Type[V]) Parse(s string) (Value[V], error) {
	for i, str := range t.strs {
		if str == s {
			return Value[V]{typ: t, value: t.members[i].Value}, nil
		}
	}
	return Value[V]{}, NewInvalidValueError(t.name, s)
}

// ByName returns the member declared under the constant name.
func (t *Type[V]) ByName(name string) (Value[V], bool) {
	v, ok := t.byName[name]
	if !ok {
		return Value[V]{}, false
	}
	return Value[V]{typ: t, value: v}, true
}

// IsValid reports whether v equals the value of some declared member.
func (t *Type[V]) IsValid(v V) bool {
	_, ok := t.names[v]
	return ok
}

// AllConstants returns the declared constants as name → value.
func (t *Type[V]) AllConstants() map[string]V {
	return maps.Clone(t.byName)
}

// Members returns the declared members in declaration order.
func (t *Type[V]) Members() []Member[V] {
	out := make([]Member[V], len(t.members))
	copy(out, t.members)
	return out
}

// Values returns the member values in declaration order.
func (t *Type[V]) Values() []V {
	out := make([]V, len(t.members))
	for i, m := range t.members {
		out[i] = m.Value
	}
	return out
}

// HasLabels reports whether a non-empty label table was declared.
func (t *Type[V]) HasLabels() bool {
	return len(t.labels) > 0
}

// HasData reports whether a non-empty metadata table was declared.
func (t *Type[V]) HasData() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.data) > 0
}

// Items returns the label table when one was declared, otherwise RawItems.
func (t *Type[V]) Items() map[V]string {
	if len(t.labels) > 0 {
		return maps.Clone(t.labels)
	}
	return t.RawItems()
}

// RawItems inverts the constant table: value → constant name.
// Constants sharing a value keep only the last declared name.
func (t *Type[V]) RawItems() map[V]string {
	return maps.Clone(t.names)
}

// ItemsWithData returns, for every key of Items, the member's metadata record
// merged with TitleKey set to its label. Without a metadata table the values
// are the plain labels of Items, so the result is either map[V]string-shaped
// or map[V]Data-shaped depending on HasData.
func (t *Type[V]) ItemsWithData() map[V]any {
	items := t.Items()
	result := make(map[V]any, len(items))

	t.mu.RLock()
	defer t.mu.RUnlock()

	if len(t.data) == 0 {
		for k, label := range items {
			result[k] = label
		}
		return result
	}

	for k, label := range items {
		result[k] = t.recordLocked(k, label)
	}
	return result
}

// OverrideItemData shallow-merges data into the record stored for key; keys
// in data win. It returns false and changes nothing when no metadata table
// was declared or key has no record.
func (t *Type[V]) OverrideItemData(key V, data Data) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.data) == 0 {
		return false
	}
	rec, ok := t.data[key]
	if !ok {
		return false
	}

	merged := make(Data, len(rec)+len(data))
	maps.Copy(merged, rec)
	maps.Copy(merged, data)
	t.data[key] = merged

	t.logger.Debug("enum metadata overridden",
		slog.String("enum", t.name),
		slog.Any("member", key),
		slog.Int("fields", len(data)),
	)
	return true
}

// ItemsToString returns the declared label table as is.
func (t *Type[V]) ItemsToString() map[V]string {
	return maps.Clone(t.labels)
}

// ItemsToData returns the metadata table including overrides applied so far.
func (t *Type[V]) ItemsToData() map[V]Data {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.data == nil {
		return nil
	}
	out := make(map[V]Data, len(t.data))
	for k, rec := range t.data {
		out[k] = maps.Clone(rec)
	}
	return out
}

// label resolves the Items entry for a single value without copying tables.
func (t *Type[V]) label(v V) string {
	if len(t.labels) > 0 {
		return t.labels[v]
	}
	return t.names[v]
}

// recordLocked builds a titled copy of the record for k. Missing records are
// treated as empty. Callers must hold t.mu.
func (t *Type[V]) recordLocked(k V, label string) Data {
	rec := t.data[k]
	out := make(Data, len(rec)+1)
	maps.Copy(out, rec)
	out[TitleKey] = label
	return out
}
