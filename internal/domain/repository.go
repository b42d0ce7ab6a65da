package domain

import "context"

// Repository offers queries and tracked mutations over one entity type.
// Mutations only change tracking state; writes happen when the owning unit
// of work commits.
type Repository[T any] interface {
	// GetAll returns a lazy query over every entity of type T.
	GetAll() Query[T]
	// GetAllContext materializes every entity of type T.
	GetAllContext(ctx context.Context) ([]*T, error)
	// Find returns a lazy query filtered by the predicate.
	Find(predicate Predicate[T]) Query[T]
	// FindContext materializes the entities matching the predicate.
	FindContext(ctx context.Context, predicate Predicate[T]) ([]*T, error)
	// Single returns the only match, nil when none match, and
	// *MultipleMatchesErr when more than one matches.
	Single(predicate Predicate[T]) (*T, error)
	// SingleContext is Single bound to a context.
	SingleContext(ctx context.Context, predicate Predicate[T]) (*T, error)
	// First returns the first match or nil when none match.
	First(predicate Predicate[T]) (*T, error)
	// FirstContext is First bound to a context.
	FirstContext(ctx context.Context, predicate Predicate[T]) (*T, error)
	// CountContext returns the number of queryable entities.
	CountContext(ctx context.Context) (int, error)
	// Add schedules the entity for insert.
	Add(entity *T) error
	// Remove schedules the entity for delete.
	Remove(entity *T) error
	// Update schedules the entity for update.
	Update(entity *T) error
}
