// Package memory provides an in-memory backing store for the tracking
// session. Data lives in a Database shared by every store handle opened from
// it; each unit of work gets its own handle.
//
// Apply stages every change on copies of the touched tables and swaps them in
// under a single write lock, so a stale version anywhere in the batch leaves
// the data untouched.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/cleitonmarx/symbiont-uow/internal/domain"
)

type table struct {
	rows map[any]domain.Row
	keys []any
}

func newTable() *table {
	return &table{rows: map[any]domain.Row{}}
}

func (t *table) clone() *table {
	c := &table{
		rows: make(map[any]domain.Row, len(t.rows)),
		keys: make([]any, len(t.keys)),
	}
	for k, v := range t.rows {
		c.rows[k] = v
	}
	copy(c.keys, t.keys)
	return c
}

func (t *table) put(key any, row domain.Row) {
	if _, ok := t.rows[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.rows[key] = row
}

func (t *table) delete(key any) {
	delete(t.rows, key)
	for i, k := range t.keys {
		if k == key {
			t.keys = append(t.keys[:i], t.keys[i+1:]...)
			return
		}
	}
}

// checkUnique rejects a write whose unique column values are already held
// by another row of the table.
func (t *table) checkUnique(c domain.Change) error {
	for _, col := range c.Table.UniqueColumns {
		v, ok := c.Row[col]
		if !ok || v == nil {
			continue
		}
		for key, row := range t.rows {
			if key != c.Key && row[col] == v {
				return domain.NewUniqueViolationErr(c.Table.Name, col, v)
			}
		}
	}
	return nil
}

// Database is the shared in-memory data behind every Store handle.
type Database struct {
	mu     sync.RWMutex
	tables map[string]*table
}

// NewDatabase creates an empty Database.
func NewDatabase() *Database {
	return &Database{tables: map[string]*table{}}
}

// Open returns a new store handle over the database.
func (db *Database) Open(_ context.Context) (domain.Store, error) {
	return &Store{db: db}, nil
}

// Store is a store handle over a Database. Closing it does not affect the
// data or other handles.
type Store struct {
	db     *Database
	mu     sync.Mutex
	closed bool
}

var _ domain.Store = (*Store)(nil)

func (s *Store) checkOpen(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.NewClosedErr("memory store")
	}
	return nil
}

// Load returns every row of the table in insertion order.
func (s *Store) Load(ctx context.Context, tbl domain.Table) ([]domain.Row, error) {
	if err := s.checkOpen(ctx); err != nil {
		return nil, err
	}
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	t, ok := s.db.tables[tbl.Name]
	if !ok {
		return nil, nil
	}
	rows := make([]domain.Row, 0, len(t.keys))
	for _, k := range t.keys {
		rows = append(rows, t.rows[k].Clone())
	}
	return rows, nil
}

// Get returns the row with the given key.
func (s *Store) Get(ctx context.Context, tbl domain.Table, key any) (domain.Row, bool, error) {
	if err := s.checkOpen(ctx); err != nil {
		return nil, false, err
	}
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	t, ok := s.db.tables[tbl.Name]
	if !ok {
		return nil, false, nil
	}
	row, ok := t.rows[key]
	if !ok {
		return nil, false, nil
	}
	return row.Clone(), true, nil
}

// Apply writes all changes or none of them.
func (s *Store) Apply(ctx context.Context, changes []domain.Change) error {
	if err := s.checkOpen(ctx); err != nil {
		return err
	}
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	staged := map[string]*table{}
	stage := func(name string) *table {
		if t, ok := staged[name]; ok {
			return t
		}
		t, ok := s.db.tables[name]
		if ok {
			t = t.clone()
		} else {
			t = newTable()
		}
		staged[name] = t
		return t
	}

	for i, c := range changes {
		t := stage(c.Table.Name)
		switch c.Kind {
		case domain.ChangeKind_INSERT:
			if _, exists := t.rows[c.Key]; exists {
				return fmt.Errorf("memory: %s row %v already exists", c.Table.Name, c.Key)
			}
			if err := t.checkUnique(c); err != nil {
				return err
			}
			t.put(c.Key, c.Row.Clone())
		case domain.ChangeKind_UPDATE:
			current, ok := t.rows[c.Key]
			if !ok || !versionMatches(c, current) {
				return domain.NewStaleRowErr(i, c.Table.Name, c.Key)
			}
			if err := t.checkUnique(c); err != nil {
				return err
			}
			t.put(c.Key, c.Row.Clone())
		case domain.ChangeKind_DELETE:
			current, ok := t.rows[c.Key]
			if !ok || !versionMatches(c, current) {
				return domain.NewStaleRowErr(i, c.Table.Name, c.Key)
			}
			t.delete(c.Key)
		default:
			return fmt.Errorf("memory: unknown change kind %q", c.Kind)
		}
	}

	for name, t := range staged {
		s.db.tables[name] = t
	}
	return nil
}

// Close marks the handle closed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func versionMatches(c domain.Change, current domain.Row) bool {
	if c.Table.VersionColumn == "" {
		return true
	}
	v, err := current.Int64(c.Table.VersionColumn)
	return err == nil && v == c.ExpectedVersion
}
