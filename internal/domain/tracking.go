package domain

import (
	"context"
	"fmt"
	"reflect"
)

// TrackingState is the lifecycle tag a persistence context assigns to an entity.
type TrackingState int

const (
	// TrackingState_DETACHED means the entity is unknown to the session.
	TrackingState_DETACHED TrackingState = iota
	// TrackingState_UNCHANGED means the entity is tracked with no pending write.
	TrackingState_UNCHANGED
	// TrackingState_ADDED means the entity is pending an insert.
	TrackingState_ADDED
	// TrackingState_MODIFIED means the entity is pending an update.
	TrackingState_MODIFIED
	// TrackingState_DELETED means the entity is pending a delete.
	TrackingState_DELETED
)

// String returns the state name.
func (s TrackingState) String() string {
	switch s {
	case TrackingState_DETACHED:
		return "Detached"
	case TrackingState_UNCHANGED:
		return "Unchanged"
	case TrackingState_ADDED:
		return "Added"
	case TrackingState_MODIFIED:
		return "Modified"
	case TrackingState_DELETED:
		return "Deleted"
	}
	return fmt.Sprintf("TrackingState(%d)", int(s))
}

// IsPending reports whether the state carries a write for the next flush.
func (s TrackingState) IsPending() bool {
	return s == TrackingState_ADDED || s == TrackingState_MODIFIED || s == TrackingState_DELETED
}

// Predicate is an opaque boolean filter over an entity.
type Predicate[T any] func(entity *T) bool

// TrackingEntry is a mutable handle over the tracking state of one entity.
type TrackingEntry interface {
	// Entity returns the tracked entity pointer.
	Entity() any
	// State returns the current tracking state.
	State() TrackingState
	// SetState forces the tracking state. Setting a non-detached state on a
	// detached entity starts tracking it.
	SetState(state TrackingState) error
	// DatabaseValues returns a fresh copy of the entity built from the
	// backing store's current values, or nil when the row no longer exists.
	DatabaseValues(ctx context.Context) (any, error)
	// Reload overwrites the entity with the backing store's current values.
	Reload(ctx context.Context) error
}

// EntitySet is the trackable view of all entities of type T.
type EntitySet[T any] interface {
	// Add registers a new entity as pending insert.
	Add(entity *T) error
	// Attach registers the entity as Unchanged.
	Attach(entity *T) error
	// Remove marks the entity for deletion. Entities pending insert are
	// simply detached.
	Remove(entity *T) error
	// Load enumerates the backing store, resolving rows through the
	// session's identity map.
	Load(ctx context.Context) ([]*T, error)
}

// PersistenceContext is a session that tracks entity mutations in memory and
// flushes them to a backing store on demand.
type PersistenceContext interface {
	// Set returns the EntitySet for the given entity type, as an any holding
	// an EntitySet[T]. Use SetOf for the typed form.
	Set(entityType reflect.Type) (any, error)
	// Entry returns the tracking handle for an entity pointer.
	Entry(entity any) (TrackingEntry, error)
	// SaveChanges flushes every pending change and returns the number of
	// rows written.
	SaveChanges(ctx context.Context) (int, error)
	// Close releases the underlying connection.
	Close() error
}

// SetOf resolves the typed EntitySet for T from a persistence context.
func SetOf[T any](pc PersistenceContext) (EntitySet[T], error) {
	entityType := reflect.TypeFor[T]()
	raw, err := pc.Set(entityType)
	if err != nil {
		return nil, err
	}
	set, ok := raw.(EntitySet[T])
	if !ok {
		return nil, NewUnmappedEntityErr(entityType)
	}
	return set, nil
}
