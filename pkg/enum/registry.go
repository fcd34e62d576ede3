package enum

import (
	"fmt"
	"reflect"
	"slices"
	"sync"
)

// Enumeration is the value-type independent view of a Type used by tooling
// that discovers enumerations at runtime.
type Enumeration interface {
	Name() string
	Len() int
	HasLabels() bool
	HasData() bool
	// Entries lists members in declaration order.
	Entries() []Entry
	// ValidString reports whether s is the canonical string of a member.
	ValidString(s string) bool
	// OverrideString is OverrideItemData keyed by canonical string.
	OverrideString(member string, data Data) bool
	// StringItems is Items (RawItems when raw is set) keyed by canonical string.
	StringItems(raw bool) map[string]string
	// StringItemsWithData is ItemsWithData keyed by canonical string.
	StringItemsWithData() map[string]any
}

var _ Enumeration = (*Type[string])(nil)

// Entry describes one member independently of its value type.
type Entry struct {
	Name   string
	Value  any
	String string
	// Label is the member's Items entry, "" when Items has none for it.
	Label string
	// Data is the titled metadata record, nil without a metadata table.
	Data Data
}

// Entries implements Enumeration.
func (t *Type[V]) Entries() []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Entry, len(t.members))
	for i, m := range t.members {
		e := Entry{
			Name:   m.Name,
			Value:  m.Value,
			String: t.strs[i],
			Label:  t.label(m.Value),
		}
		if len(t.data) > 0 {
			e.Data = t.recordLocked(m.Value, e.Label)
		}
		out[i] = e
	}
	return out
}

// ValidString implements Enumeration.
func (t *Type[V]) ValidString(s string) bool {
	return slices.Contains(t.strs, s)
}

// OverrideString implements Enumeration.
func (t *Type[V]) OverrideString(member string, data Data) bool {
	v, err := t.Parse(member)
	if err != nil {
		return false
	}
	return t.OverrideItemData(v.Value(), data)
}

// StringItems implements Enumeration.
func (t *Type[V]) StringItems(raw bool) map[string]string {
	items := t.Items()
	if raw {
		items = t.RawItems()
	}
	out := make(map[string]string, len(items))
	for k, label := range items {
		out[fmt.Sprint(k)] = label
	}
	return out
}

// StringItemsWithData implements Enumeration.
func (t *Type[V]) StringItemsWithData() map[string]any {
	items := t.ItemsWithData()
	out := make(map[string]any, len(items))
	for k, v := range items {
		out[fmt.Sprint(k)] = v
	}
	return out
}

// Registry indexes enumerations by name. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	enums map[string]Enumeration
}

// Default is the process-wide registry for callers that do not inject one.
var Default = NewRegistry()

func NewRegistry() *Registry {
	return &Registry{
		enums: make(map[string]Enumeration),
	}
}

// Register adds e under its name. Names are unique within a registry.
func (r *Registry) Register(e Enumeration) error {
	if isNil(e) {
		return ErrNilEnumeration
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	name := e.Name()
	if _, ok := r.enums[name]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, name)
	}
	r.enums[name] = e
	return nil
}

// Lookup returns the enumeration registered under name.
func (r *Registry) Lookup(name string) (Enumeration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.enums[name]
	return e, ok
}

// Names returns the registered names sorted alphabetically.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.enums))
	for name := range r.enums {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.enums)
}

// Reset removes all registrations. Mostly useful in tests.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enums = make(map[string]Enumeration)
}

// isNil also catches typed nil pointers stored in the interface.
func isNil(e Enumeration) bool {
	if e == nil {
		return true
	}
	v := reflect.ValueOf(e)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
