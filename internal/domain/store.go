package domain

import (
	"context"
	"fmt"
)

// Row is a column-name keyed set of values read from or written to a table.
type Row map[string]any

// Clone returns a shallow copy of the row.
func (r Row) Clone() Row {
	if r == nil {
		return nil
	}
	c := make(Row, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}

// Table describes how an entity type is laid out in the backing store.
type Table struct {
	Name      string
	KeyColumn string
	// VersionColumn holds an int64 optimistic concurrency token. Empty
	// disables version checks for the table.
	VersionColumn string
	// Columns lists every persisted column, key and version included.
	Columns []string
	// UniqueColumns lists columns whose values must differ across rows,
	// mirroring the store's UNIQUE constraints.
	UniqueColumns []string
}

// Validate checks that the table layout is usable.
func (t Table) Validate() error {
	if t.Name == "" {
		return NewValidationErr("table name is required")
	}
	if t.KeyColumn == "" {
		return NewValidationErr(fmt.Sprintf("table %s: key column is required", t.Name))
	}
	if !t.hasColumn(t.KeyColumn) {
		return NewValidationErr(fmt.Sprintf("table %s: key column %s is not listed in columns", t.Name, t.KeyColumn))
	}
	if t.VersionColumn != "" && !t.hasColumn(t.VersionColumn) {
		return NewValidationErr(fmt.Sprintf("table %s: version column %s is not listed in columns", t.Name, t.VersionColumn))
	}
	for _, c := range t.UniqueColumns {
		if !t.hasColumn(c) {
			return NewValidationErr(fmt.Sprintf("table %s: unique column %s is not listed in columns", t.Name, c))
		}
	}
	return nil
}

func (t Table) hasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// ChangeKind identifies the write a Change performs.
type ChangeKind string

const (
	// ChangeKind_INSERT inserts a new row.
	ChangeKind_INSERT ChangeKind = "INSERT"
	// ChangeKind_UPDATE updates an existing row.
	ChangeKind_UPDATE ChangeKind = "UPDATE"
	// ChangeKind_DELETE deletes an existing row.
	ChangeKind_DELETE ChangeKind = "DELETE"
)

// Change is one pending write produced by a flush.
type Change struct {
	Kind  ChangeKind
	Table Table
	Key   any
	// Row carries the values to write. Unused for deletes.
	Row Row
	// ExpectedVersion is the version the row must still carry for updates
	// and deletes on versioned tables.
	ExpectedVersion int64
}

// Store is the backing store a persistence context flushes to.
type Store interface {
	// Load returns every row of the table.
	Load(ctx context.Context, table Table) ([]Row, error)
	// Get returns the row with the given key.
	Get(ctx context.Context, table Table, key any) (Row, bool, error)
	// Apply writes all changes atomically. When a change finds no row with
	// the expected key and version nothing is written and a *StaleRowErr
	// is returned.
	Apply(ctx context.Context, changes []Change) error
	// Close releases the store's connection.
	Close() error
}

// Mapping binds an entity type to its table layout.
type Mapping[T any] struct {
	Table Table
	// ToRow extracts the persisted column values of an entity.
	ToRow func(entity *T) Row
	// Scan copies the row values into the entity.
	Scan func(row Row, entity *T) error
}

// Validate checks that the mapping is complete.
func (m Mapping[T]) Validate() error {
	if err := m.Table.Validate(); err != nil {
		return err
	}
	if m.ToRow == nil || m.Scan == nil {
		return NewValidationErr(fmt.Sprintf("table %s: ToRow and Scan are required", m.Table.Name))
	}
	return nil
}

// StoreOpener opens a Store for one persistence session.
type StoreOpener interface {
	Open(ctx context.Context) (Store, error)
}
