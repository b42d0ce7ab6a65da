package tracking

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-uow/internal/domain"
)

// entry is a thin handle over one entity; the state itself lives in the
// session, so handles taken before and after a state change agree.
type entry struct {
	session *Session
	entity  any
	mapping *entityMapping
}

var _ domain.TrackingEntry = (*entry)(nil)

func (e *entry) Entity() any {
	return e.entity
}

func (e *entry) State() domain.TrackingState {
	if rec := e.session.lookup(e.entity); rec != nil {
		return rec.state
	}
	return domain.TrackingState_DETACHED
}

func (e *entry) SetState(state domain.TrackingState) error {
	if e.session.closed {
		return domain.NewClosedErr("session")
	}
	return e.session.setState(e.entity, e.mapping, state)
}

func (e *entry) DatabaseValues(ctx context.Context) (any, error) {
	row, found, err := e.session.store.Get(ctx, e.mapping.table, e.mapping.keyOf(e.entity))
	if err != nil || !found {
		return nil, err
	}
	fresh := e.mapping.newEntity()
	if err := e.mapping.scan(row, fresh); err != nil {
		return nil, fmt.Errorf("tracking: scan %s: %w", e.mapping.table.Name, err)
	}
	return fresh, nil
}

// Reload overwrites the entity with the store's values and marks it
// Unchanged. When the row is gone the entity becomes Detached.
func (e *entry) Reload(ctx context.Context) error {
	if e.session.closed {
		return domain.NewClosedErr("session")
	}
	row, found, err := e.session.store.Get(ctx, e.mapping.table, e.mapping.keyOf(e.entity))
	if err != nil {
		return err
	}
	if !found {
		if rec := e.session.lookup(e.entity); rec != nil {
			e.session.untrack(rec)
		}
		return nil
	}
	if err := e.mapping.scan(row, e.entity); err != nil {
		return fmt.Errorf("tracking: scan %s: %w", e.mapping.table.Name, err)
	}
	_, err = e.session.track(e.entity, e.mapping, domain.TrackingState_UNCHANGED, true)
	return err
}
