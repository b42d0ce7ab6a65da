// Package repository provides the generic repository and the unit of work
// built over a domain.PersistenceContext.
package repository

import (
	"context"
	"fmt"
	"reflect"

	"github.com/cleitonmarx/symbiont-uow/internal/domain"
	"github.com/cleitonmarx/symbiont-uow/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// GenericRepository implements domain.Repository for any mapped entity type.
// Reads go to the entity set, mutations only change tracking state.
type GenericRepository[T any] struct {
	pc  domain.PersistenceContext
	set domain.EntitySet[T]
}

var _ domain.Repository[struct{}] = (*GenericRepository[struct{}])(nil)

// NewGenericRepository creates a repository bound to the persistence context.
func NewGenericRepository[T any](pc domain.PersistenceContext) (*GenericRepository[T], error) {
	if pc == nil {
		return nil, domain.NewNullContextErr("repository")
	}
	set, err := domain.SetOf[T](pc)
	if err != nil {
		return nil, err
	}
	return &GenericRepository[T]{pc: pc, set: set}, nil
}

// GetAll returns a lazy query over every entity of type T.
func (r *GenericRepository[T]) GetAll() domain.Query[T] {
	return domain.NewQuery(r.set.Load)
}

// GetAllContext materializes every entity of type T.
func (r *GenericRepository[T]) GetAllContext(ctx context.Context) ([]*T, error) {
	spanCtx, span := telemetry.Start(ctx, r.spanAttributes())
	defer span.End()

	entities, err := r.GetAll().ToList(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	span.SetAttributes(attribute.Int("entities.count", len(entities)))
	return entities, nil
}

// Find returns a lazy query filtered by the predicate.
func (r *GenericRepository[T]) Find(predicate domain.Predicate[T]) domain.Query[T] {
	return r.GetAll().Where(predicate)
}

// FindContext materializes the entities matching the predicate.
func (r *GenericRepository[T]) FindContext(ctx context.Context, predicate domain.Predicate[T]) ([]*T, error) {
	spanCtx, span := telemetry.Start(ctx, r.spanAttributes())
	defer span.End()

	entities, err := r.Find(predicate).ToList(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	span.SetAttributes(attribute.Int("entities.count", len(entities)))
	return entities, nil
}

// Single returns the only entity matching the predicate.
func (r *GenericRepository[T]) Single(predicate domain.Predicate[T]) (*T, error) {
	return r.SingleContext(context.Background(), predicate)
}

// SingleContext returns the only entity matching the predicate, nil when
// none match, and *domain.MultipleMatchesErr when more than one does.
func (r *GenericRepository[T]) SingleContext(ctx context.Context, predicate domain.Predicate[T]) (*T, error) {
	spanCtx, span := telemetry.Start(ctx, r.spanAttributes())
	defer span.End()

	entity, err := r.Find(predicate).Single(spanCtx)
	telemetry.RecordErrorAndStatus(span, err)
	return entity, err
}

// First returns the first entity matching the predicate.
func (r *GenericRepository[T]) First(predicate domain.Predicate[T]) (*T, error) {
	return r.FirstContext(context.Background(), predicate)
}

// FirstContext returns the first entity matching the predicate, or nil.
func (r *GenericRepository[T]) FirstContext(ctx context.Context, predicate domain.Predicate[T]) (*T, error) {
	spanCtx, span := telemetry.Start(ctx, r.spanAttributes())
	defer span.End()

	entity, err := r.Find(predicate).First(spanCtx)
	telemetry.RecordErrorAndStatus(span, err)
	return entity, err
}

// CountContext returns the number of queryable entities.
func (r *GenericRepository[T]) CountContext(ctx context.Context) (int, error) {
	spanCtx, span := telemetry.Start(ctx, r.spanAttributes())
	defer span.End()

	n, err := r.GetAll().Count(spanCtx)
	telemetry.RecordErrorAndStatus(span, err)
	return n, err
}

// Add schedules the entity for insert. A detached entity is added to the
// set, a tracked one is forced to Added.
func (r *GenericRepository[T]) Add(entity *T) error {
	e, err := r.entry(entity)
	if err != nil {
		return err
	}
	if e.State() == domain.TrackingState_DETACHED {
		return r.set.Add(entity)
	}
	return e.SetState(domain.TrackingState_ADDED)
}

// Remove schedules the entity for delete. An entity already marked Deleted
// is attached again before being removed.
func (r *GenericRepository[T]) Remove(entity *T) error {
	e, err := r.entry(entity)
	if err != nil {
		return err
	}
	if e.State() == domain.TrackingState_DELETED {
		if err := r.set.Attach(entity); err != nil {
			return err
		}
		return r.set.Remove(entity)
	}
	return e.SetState(domain.TrackingState_DELETED)
}

// Update schedules the entity for update. A detached entity is attached
// first so that its own version is used as the expected one.
func (r *GenericRepository[T]) Update(entity *T) error {
	e, err := r.entry(entity)
	if err != nil {
		return err
	}
	if e.State() == domain.TrackingState_DETACHED {
		if err := r.set.Attach(entity); err != nil {
			return err
		}
	}
	// A conflict raised here carries both value sets and is returned as is.
	return e.SetState(domain.TrackingState_MODIFIED)
}

func (r *GenericRepository[T]) entry(entity *T) (domain.TrackingEntry, error) {
	if entity == nil {
		return nil, fmt.Errorf("repository: %s entity is nil", reflect.TypeFor[T]())
	}
	return r.pc.Entry(entity)
}

func (r *GenericRepository[T]) spanAttributes() trace.SpanStartOption {
	return telemetry.WithEntityType(reflect.TypeFor[T]().String())
}

// RepositoryFor returns a repository for T bound to the unit of work's
// persistence context. Each call returns a new repository.
func RepositoryFor[T any](uow *UnitOfWork) (*GenericRepository[T], error) {
	if uow == nil {
		return nil, domain.NewNullContextErr("unit of work")
	}
	if uow.closed {
		return nil, domain.NewClosedErr("unit of work")
	}
	return NewGenericRepository[T](uow.pc)
}
