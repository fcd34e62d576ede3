// Package enum provides a reusable base for closed enumerations: a fixed set
// of named constant values with optional display labels and per-member
// metadata records.
//
// A concrete enumeration is declared once, at package initialisation time, by
// building a *Type from its ordered member list. The type then supplies
// validation, string coercion, member listing and metadata queries so the
// declaring package only has to describe its constants.
//
// # Architecture
//
// Type keeps three tables:
//
//   - members: the ordered Name/Value pairs. This is the single source of truth
//     for what is a legal value; IsValid and the default Items mapping are
//     derived from it.
//   - labels: optional value → display label table. Read-only after New.
//   - data: optional value → Data record table. Mutated only through
//     OverrideItemData, which performs a shallow merge under the type's
//     RWMutex, so concurrent overrides and readers are safe.
//
// Instances are Value, a small immutable struct that holds the owning type and
// one validated member value. Value has no exported fields; the Set method
// exists only to reject generic field assignment with ImmutableInstanceError.
//
// The type-erased Enumeration interface and the Registry let tooling (YAML
// loaders, override stores, command line tools) work with enumerations whose
// value type is not known at compile time.
//
// # Usage
//
//	var Status = enum.MustNew("status",
//	    []enum.Member[int]{
//	        {Name: "ACTIVE", Value: 1},
//	        {Name: "DONE", Value: 2},
//	    },
//	    enum.WithLabels(map[int]string{1: "Active", 2: "Done"}),
//	    enum.WithData(map[int]enum.Data{
//	        1: {"weight": 10},
//	        2: {"weight": 20},
//	    }),
//	)
//
//	v, err := Status.New(1)       // v.String() == "1", v.Label() == "Active"
//	_, err = Status.New(5)        // *enum.InvalidValueError
//	Status.Items()                // map[1:Active 2:Done]
//	Status.ItemsWithData()        // map[1:{weight:10 title:Active} ...]
//	Status.OverrideItemData(1, enum.Data{"weight": 99}) // true
//
// # Labels and metadata
//
// Items returns the label table when one was declared and the inverted
// constant table (value → constant name) otherwise. RawItems always returns
// the inversion. When two constants share a value the one declared last wins.
//
// ItemsWithData returns, for every key of Items, a copy of the metadata record
// with the reserved TitleKey field set to the label. Without a metadata table
// it returns the Items labels unchanged. A member missing from a declared
// metadata table is treated as having an empty record; WithStrictData turns
// that situation into a construction error instead.
//
// # Error Handling
//
// Only two operations fail with errors: Type.New (InvalidValueError, matching
// ErrInvalidValue) and Value.Set (ImmutableInstanceError, matching
// ErrImmutableInstance). Missing label or metadata tables are not errors: the
// query methods fall back to the constant table and OverrideItemData reports
// false.
//
//	if enum.IsInvalidValueError(err) { /* ... */ }
package enum
