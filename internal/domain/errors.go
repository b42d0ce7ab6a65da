package domain

import (
	"fmt"
	"reflect"
)

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// NullContextErr is returned when a repository or unit of work is built
// without a persistence context.
type NullContextErr struct {
	domainErr
}

// NewNullContextErr creates a new NullContextErr for the named component.
func NewNullContextErr(component string) *NullContextErr {
	return &NullContextErr{
		domainErr: domainErr{message: component + ": persistence context is required"},
	}
}

// MultipleMatchesErr is returned when a single-result query matches more
// than one entity.
type MultipleMatchesErr struct {
	domainErr
	EntityType reflect.Type
}

// NewMultipleMatchesErr creates a new MultipleMatchesErr.
func NewMultipleMatchesErr(entityType reflect.Type) *MultipleMatchesErr {
	return &MultipleMatchesErr{
		domainErr:  domainErr{message: fmt.Sprintf("more than one %s matches the predicate", entityType)},
		EntityType: entityType,
	}
}

// UnmappedEntityErr is returned when the persistence context has no mapping
// for an entity type.
type UnmappedEntityErr struct {
	domainErr
	EntityType reflect.Type
}

// NewUnmappedEntityErr creates a new UnmappedEntityErr.
func NewUnmappedEntityErr(entityType reflect.Type) *UnmappedEntityErr {
	return &UnmappedEntityErr{
		domainErr:  domainErr{message: fmt.Sprintf("entity type %s is not mapped", entityType)},
		EntityType: entityType,
	}
}

// ClosedErr is returned by operations on a closed session or unit of work.
type ClosedErr struct {
	domainErr
}

// NewClosedErr creates a new ClosedErr for the named component.
func NewClosedErr(component string) *ClosedErr {
	return &ClosedErr{
		domainErr: domainErr{message: component + " is closed"},
	}
}

// StaleRowErr is returned by a Store when the change at Index found no row
// carrying the expected key and version.
type StaleRowErr struct {
	domainErr
	Index int
	Table string
	Key   any
}

// NewStaleRowErr creates a new StaleRowErr.
func NewStaleRowErr(index int, table string, key any) *StaleRowErr {
	return &StaleRowErr{
		domainErr: domainErr{message: fmt.Sprintf("%s row %v was changed or deleted since it was read", table, key)},
		Index:     index,
		Table:     table,
		Key:       key,
	}
}

// UniqueViolationErr is returned by a Store when a write would give two rows
// of Table the same value in a unique Column.
type UniqueViolationErr struct {
	domainErr
	Table  string
	Column string
	Value  any
}

// NewUniqueViolationErr creates a new UniqueViolationErr.
func NewUniqueViolationErr(table, column string, value any) *UniqueViolationErr {
	return &UniqueViolationErr{
		domainErr: domainErr{message: fmt.Sprintf("%s %s %v already exists", table, column, value)},
		Table:     table,
		Column:    column,
		Value:     value,
	}
}

// ConcurrencyConflictErr is returned when a flush detects that a tracked
// entity's backing-store version differs from the one it was read with.
// It is never resolved by this layer.
type ConcurrencyConflictErr struct {
	domainErr
	// Entry is the tracking entry of the conflicting entity.
	Entry TrackingEntry
	// ClientValues is the caller's in-memory entity.
	ClientValues any
	// DatabaseValues is a copy built from the store's current row. It is nil
	// when the row was deleted or could not be read.
	DatabaseValues any
	// RowDeleted reports that the store was read and the row is gone.
	RowDeleted bool
	cause      error
}

// NewConcurrencyConflictErr creates a new ConcurrencyConflictErr.
func NewConcurrencyConflictErr(entry TrackingEntry, clientValues, databaseValues any, cause error) *ConcurrencyConflictErr {
	message := "concurrency conflict"
	if cause != nil {
		message = "concurrency conflict: " + cause.Error()
	}
	return &ConcurrencyConflictErr{
		domainErr:      domainErr{message: message},
		Entry:          entry,
		ClientValues:   clientValues,
		DatabaseValues: databaseValues,
		cause:          cause,
	}
}

// Unwrap returns the store error that revealed the conflict.
func (e *ConcurrencyConflictErr) Unwrap() error {
	return e.cause
}
