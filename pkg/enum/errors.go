package enum

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidValue matches every InvalidValueError.
	ErrInvalidValue = errors.New("enum: invalid value")

	// ErrImmutableInstance matches every ImmutableInstanceError.
	ErrImmutableInstance = errors.New("enum: instance is immutable")

	ErrEmptyName         = errors.New("enum: type name cannot be empty")
	ErrNoMembers         = errors.New("enum: at least one member is required")
	ErrEmptyMemberName   = errors.New("enum: member name cannot be empty")
	ErrDuplicateName     = errors.New("enum: duplicate member name")
	ErrIncompleteData    = errors.New("enum: metadata table does not cover every member")
	ErrNilEnumeration    = errors.New("enum: enumeration cannot be nil")
	ErrAlreadyRegistered = errors.New("enum: enumeration already registered")
)

// InvalidValueError is returned when a value is not one of the type's members.
type InvalidValueError struct {
	Type  string
	Value any
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("enum: undefined value %v for %s", e.Value, e.Type)
}

func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidValue
}

func NewInvalidValueError(typeName string, value any) *InvalidValueError {
	return &InvalidValueError{
		Type:  typeName,
		Value: value,
	}
}

// ImmutableInstanceError is returned by any attempt to set a field on a Value.
type ImmutableInstanceError struct {
	Type  string
	Field string
}

func (e *ImmutableInstanceError) Error() string {
	return fmt.Sprintf("enum: %s cannot be modified (field %q)", e.Type, e.Field)
}

func (e *ImmutableInstanceError) Is(target error) bool {
	return target == ErrImmutableInstance
}

func NewImmutableInstanceError(typeName, field string) *ImmutableInstanceError {
	return &ImmutableInstanceError{
		Type:  typeName,
		Field: field,
	}
}

func IsInvalidValueError(err error) bool {
	var e *InvalidValueError
	return errors.As(err, &e)
}

func IsImmutableInstanceError(err error) bool {
	var e *ImmutableInstanceError
	return errors.As(err, &e)
}
