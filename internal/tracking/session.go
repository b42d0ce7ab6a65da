// Package tracking implements the change-tracking persistence context.
//
// A Session keeps an identity map of entity pointers and their tracking
// states. Nothing is written until SaveChanges, which turns pending states
// into store changes, applies them atomically and accepts the new states.
// A Session is meant for one logical request and is not safe for concurrent
// use.
package tracking

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/cleitonmarx/symbiont-uow/internal/domain"
)

var (
	// ErrNotTracked is returned when removing an entity the session does not know.
	ErrNotTracked = errors.New("tracking: entity is not tracked")
	// ErrIdentityConflict is returned when a second instance with an already
	// tracked key is registered.
	ErrIdentityConflict = errors.New("tracking: another instance with the same key is already tracked")
)

type identity struct {
	entityType reflect.Type
	key        any
}

type record struct {
	entity  any
	mapping *entityMapping
	key     any
	state   domain.TrackingState
	// persisted is false for entities that only exist as pending inserts.
	persisted bool
}

// Session is a domain.PersistenceContext over a domain.Store.
type Session struct {
	model   *Model
	store   domain.Store
	records map[any]*record
	byKey   map[identity]*record
	order   []*record
	sets    map[reflect.Type]any
	closed  bool
}

var _ domain.PersistenceContext = (*Session)(nil)

// NewSession creates a session that owns the given store.
func NewSession(model *Model, store domain.Store) (*Session, error) {
	if model == nil {
		return nil, errors.New("tracking: model is required")
	}
	if store == nil {
		return nil, errors.New("tracking: store is required")
	}
	return &Session{
		model:   model,
		store:   store,
		records: map[any]*record{},
		byKey:   map[identity]*record{},
		sets:    map[reflect.Type]any{},
	}, nil
}

// Set returns the EntitySet for the entity type.
func (s *Session) Set(entityType reflect.Type) (any, error) {
	if s.closed {
		return nil, domain.NewClosedErr("session")
	}
	if set, ok := s.sets[entityType]; ok {
		return set, nil
	}
	m, ok := s.model.lookup(entityType)
	if !ok {
		return nil, domain.NewUnmappedEntityErr(entityType)
	}
	set := m.newSet(s)
	s.sets[entityType] = set
	return set, nil
}

// Entry returns the tracking handle of an entity pointer. Entities the
// session does not know get a Detached handle.
func (s *Session) Entry(entity any) (domain.TrackingEntry, error) {
	if s.closed {
		return nil, domain.NewClosedErr("session")
	}
	m, err := s.mappingOf(entity)
	if err != nil {
		return nil, err
	}
	return &entry{session: s, entity: entity, mapping: m}, nil
}

// Tracked returns the number of entities the session currently tracks.
func (s *Session) Tracked() int {
	return len(s.order)
}

// SaveChanges flushes every pending change in tracking order.
func (s *Session) SaveChanges(ctx context.Context) (int, error) {
	if s.closed {
		return 0, domain.NewClosedErr("session")
	}

	var (
		changes []domain.Change
		flushed []*record
		dropped []*record
	)
	for _, rec := range s.order {
		if !rec.state.IsPending() {
			continue
		}
		if rec.state == domain.TrackingState_DELETED && !rec.persisted {
			dropped = append(dropped, rec)
			continue
		}
		change, err := s.changeFor(rec)
		if err != nil {
			return 0, err
		}
		changes = append(changes, change)
		flushed = append(flushed, rec)
	}

	if len(changes) > 0 {
		err := s.store.Apply(ctx, changes)
		var stale *domain.StaleRowErr
		if errors.As(err, &stale) && stale.Index >= 0 && stale.Index < len(flushed) {
			return 0, s.conflictFor(ctx, flushed[stale.Index], err)
		}
		if err != nil {
			return 0, err
		}
	}

	for i, rec := range flushed {
		if rec.state == domain.TrackingState_DELETED {
			s.untrack(rec)
			continue
		}
		if err := rec.mapping.scan(changes[i].Row, rec.entity); err != nil {
			return 0, fmt.Errorf("tracking: accept %s changes: %w", rec.mapping.table.Name, err)
		}
		rec.state = domain.TrackingState_UNCHANGED
		rec.persisted = true
	}
	for _, rec := range dropped {
		s.untrack(rec)
	}
	return len(changes), nil
}

// Close releases the store. Closing twice returns a *domain.ClosedErr.
func (s *Session) Close() error {
	if s.closed {
		return domain.NewClosedErr("session")
	}
	s.closed = true
	s.records = map[any]*record{}
	s.byKey = map[identity]*record{}
	s.order = nil
	return s.store.Close()
}

func (s *Session) changeFor(rec *record) (domain.Change, error) {
	m := rec.mapping
	row := m.toRow(rec.entity)
	change := domain.Change{
		Table: m.table,
		Key:   row[m.table.KeyColumn],
		Row:   row,
	}

	// A modified entity that never reached the store is still an insert.
	if rec.state == domain.TrackingState_ADDED || !rec.persisted {
		change.Kind = domain.ChangeKind_INSERT
		if m.table.VersionColumn != "" {
			row[m.table.VersionColumn] = int64(1)
		}
		return change, nil
	}

	version, err := m.versionOf(row)
	if err != nil {
		return domain.Change{}, fmt.Errorf("tracking: %s: %w", m.table.Name, err)
	}
	change.ExpectedVersion = version

	if rec.state == domain.TrackingState_DELETED {
		change.Kind = domain.ChangeKind_DELETE
		change.Row = nil
		return change, nil
	}
	change.Kind = domain.ChangeKind_UPDATE
	if m.table.VersionColumn != "" {
		row[m.table.VersionColumn] = version + 1
	}
	return change, nil
}

func (s *Session) conflictFor(ctx context.Context, rec *record, cause error) error {
	e := &entry{session: s, entity: rec.entity, mapping: rec.mapping}
	current, err := e.DatabaseValues(ctx)
	conflict := domain.NewConcurrencyConflictErr(e, rec.entity, current, cause)
	if err != nil {
		return errors.Join(conflict, err)
	}
	conflict.RowDeleted = current == nil
	return conflict
}

func (s *Session) mappingOf(entity any) (*entityMapping, error) {
	if entity == nil {
		return nil, errors.New("tracking: entity is nil")
	}
	v := reflect.ValueOf(entity)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return nil, fmt.Errorf("tracking: entity must be a non-nil pointer, got %T", entity)
	}
	m, ok := s.model.lookup(v.Type().Elem())
	if !ok {
		return nil, domain.NewUnmappedEntityErr(v.Type().Elem())
	}
	return m, nil
}

func (s *Session) lookup(entity any) *record {
	return s.records[entity]
}

func (s *Session) track(entity any, m *entityMapping, state domain.TrackingState, persisted bool) (*record, error) {
	if rec := s.records[entity]; rec != nil {
		rec.state = state
		rec.persisted = rec.persisted || persisted
		return rec, nil
	}

	key := m.keyOf(entity)
	if key == nil || !reflect.TypeOf(key).Comparable() {
		return nil, fmt.Errorf("tracking: %s key must be a comparable value, got %T", m.table.Name, key)
	}
	id := identity{entityType: m.entityType, key: key}
	if other, ok := s.byKey[id]; ok && other.entity != entity {
		return nil, fmt.Errorf("%w: %s %v", ErrIdentityConflict, m.table.Name, key)
	}

	rec := &record{
		entity:    entity,
		mapping:   m,
		key:       key,
		state:     state,
		persisted: persisted,
	}
	s.records[entity] = rec
	s.byKey[id] = rec
	s.order = append(s.order, rec)
	return rec, nil
}

func (s *Session) untrack(rec *record) {
	delete(s.records, rec.entity)
	id := identity{entityType: rec.mapping.entityType, key: rec.key}
	if s.byKey[id] == rec {
		delete(s.byKey, id)
	}
	for i, r := range s.order {
		if r == rec {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *Session) setState(entity any, m *entityMapping, state domain.TrackingState) error {
	rec := s.lookup(entity)
	if rec == nil {
		if state == domain.TrackingState_DETACHED {
			return nil
		}
		_, err := s.track(entity, m, state, state != domain.TrackingState_ADDED)
		return err
	}
	if state == domain.TrackingState_DETACHED {
		s.untrack(rec)
		return nil
	}
	rec.state = state
	return nil
}

// resolve returns the tracked instance for a freshly scanned row, tracking
// the scanned entity as Unchanged when the key is new to the session.
func (s *Session) resolve(scanned any, m *entityMapping) (any, error) {
	key := m.keyOf(scanned)
	if rec, ok := s.byKey[identity{entityType: m.entityType, key: key}]; ok {
		return rec.entity, nil
	}
	if _, err := s.track(scanned, m, domain.TrackingState_UNCHANGED, true); err != nil {
		return nil, err
	}
	return scanned, nil
}
