package tracking

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-uow/internal/domain"
)

type entitySet[T any] struct {
	session *Session
	mapping *entityMapping
}

var _ domain.EntitySet[struct{}] = (*entitySet[struct{}])(nil)

func (es *entitySet[T]) Add(entity *T) error {
	if err := es.check(entity); err != nil {
		return err
	}
	_, err := es.session.track(entity, es.mapping, domain.TrackingState_ADDED, false)
	return err
}

func (es *entitySet[T]) Attach(entity *T) error {
	if err := es.check(entity); err != nil {
		return err
	}
	_, err := es.session.track(entity, es.mapping, domain.TrackingState_UNCHANGED, true)
	return err
}

func (es *entitySet[T]) Remove(entity *T) error {
	if err := es.check(entity); err != nil {
		return err
	}
	rec := es.session.lookup(entity)
	if rec == nil {
		return fmt.Errorf("%w: %s %v", ErrNotTracked, es.mapping.table.Name, es.mapping.keyOf(entity))
	}
	if rec.state == domain.TrackingState_ADDED {
		es.session.untrack(rec)
		return nil
	}
	rec.state = domain.TrackingState_DELETED
	return nil
}

func (es *entitySet[T]) Load(ctx context.Context) ([]*T, error) {
	if es.session.closed {
		return nil, domain.NewClosedErr("session")
	}
	rows, err := es.session.store.Load(ctx, es.mapping.table)
	if err != nil {
		return nil, err
	}
	out := make([]*T, 0, len(rows))
	for _, row := range rows {
		scanned := new(T)
		if err := es.mapping.scan(row, scanned); err != nil {
			return nil, fmt.Errorf("tracking: scan %s: %w", es.mapping.table.Name, err)
		}
		resolved, err := es.session.resolve(scanned, es.mapping)
		if err != nil {
			return nil, err
		}
		out = append(out, resolved.(*T))
	}
	return out, nil
}

func (es *entitySet[T]) check(entity *T) error {
	if es.session.closed {
		return domain.NewClosedErr("session")
	}
	if entity == nil {
		return fmt.Errorf("tracking: %s entity is nil", es.mapping.table.Name)
	}
	return nil
}
