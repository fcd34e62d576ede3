package enumstore

import "errors"

var (
	ErrEmptyEnumName    = errors.New("enumstore: enum name cannot be empty")
	ErrEmptyMember      = errors.New("enumstore: member cannot be empty")
	ErrInvalidRecord    = errors.New("enumstore: invalid override record")
	ErrStoreUnavailable = errors.New("enumstore: store unavailable")
	ErrTooManyRetries   = errors.New("enumstore: concurrent updates exhausted retries")
	ErrFailedToMigrate  = errors.New("enumstore: failed to apply schema migrations")
)
