package enum

import "fmt"

// Value is an immutable instance of an enumeration holding one member value.
// The zero Value belongs to no type.
type Value[V comparable] struct {
	typ   *Type[V]
	value V
}

// Value returns the held member value.
func (v Value[V]) Value() V {
	return v.value
}

// Type returns the owning enumeration, nil for the zero Value.
func (v Value[V]) Type() *Type[V] {
	return v.typ
}

// IsZero reports whether v was not produced by a Type.
func (v Value[V]) IsZero() bool {
	return v.typ == nil
}

// String renders the held value in its canonical string form.
func (v Value[V]) String() string {
	return fmt.Sprint(v.value)
}

// Name returns the constant name declared for the held value.
func (v Value[V]) Name() string {
	if v.typ == nil {
		return ""
	}
	return v.typ.names[v.value]
}

// Label returns the display label of the held value as listed by Items.
func (v Value[V]) Label() string {
	if v.typ == nil {
		return ""
	}
	return v.typ.label(v.value)
}

// Data returns a copy of the member's metadata record with TitleKey set.
// It returns nil when the type has no metadata table.
func (v Value[V]) Data() Data {
	if v.typ == nil {
		return nil
	}
	t := v.typ
	t.mu.RLock()
	defer t.mu.RUnlock()
	if len(t.data) == 0 {
		return nil
	}
	return t.recordLocked(v.value, t.label(v.value))
}

// Is reports whether the held value equals x.
func (v Value[V]) Is(x V) bool {
	return v.typ != nil && v.value == x
}

// Equal reports whether both values belong to the same type and hold the
// same member.
func (v Value[V]) Equal(other Value[V]) bool {
	return v.typ == other.typ && v.value == other.value
}

// Set always fails: instances cannot be modified after construction.
func (v Value[V]) Set(field string, _ any) error {
	name := "enum"
	if v.typ != nil {
		name = v.typ.name
	}
	return NewImmutableInstanceError(name, field)
}
