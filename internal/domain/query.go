package domain

import (
	"context"
	"iter"
	"reflect"
	"slices"
)

// Query is a lazy, restartable description of a filtered enumeration. No
// I/O happens until one of the materializing methods runs, and each run
// reads the source again.
type Query[T any] struct {
	source  func(ctx context.Context) ([]*T, error)
	filters []Predicate[T]
}

// NewQuery creates a Query over the given source.
func NewQuery[T any](source func(ctx context.Context) ([]*T, error)) Query[T] {
	return Query[T]{source: source}
}

// Where returns a new query narrowed by the predicate. A nil predicate
// matches everything.
func (q Query[T]) Where(predicate Predicate[T]) Query[T] {
	if predicate == nil {
		return q
	}
	return Query[T]{
		source:  q.source,
		filters: append(slices.Clone(q.filters), predicate),
	}
}

// All enumerates the matching entities. Reading the source fails the
// enumeration with a single (nil, err) pair.
func (q Query[T]) All(ctx context.Context) iter.Seq2[*T, error] {
	return func(yield func(*T, error) bool) {
		if q.source == nil {
			return
		}
		entities, err := q.source(ctx)
		if err != nil {
			yield(nil, err)
			return
		}
		for _, e := range entities {
			if !q.matches(e) {
				continue
			}
			if !yield(e, nil) {
				return
			}
		}
	}
}

// ToList materializes the matching entities.
func (q Query[T]) ToList(ctx context.Context) ([]*T, error) {
	var out []*T
	for e, err := range q.All(ctx) {
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// Count returns the number of matching entities.
func (q Query[T]) Count(ctx context.Context) (int, error) {
	n := 0
	for _, err := range q.All(ctx) {
		if err != nil {
			return 0, err
		}
		n++
	}
	return n, nil
}

// First returns the first matching entity, or nil when nothing matches.
func (q Query[T]) First(ctx context.Context) (*T, error) {
	for e, err := range q.All(ctx) {
		return e, err
	}
	return nil, nil
}

// Single returns the only matching entity, or nil when nothing matches. It
// fails with *MultipleMatchesErr when two or more entities match.
func (q Query[T]) Single(ctx context.Context) (*T, error) {
	var found *T
	for e, err := range q.All(ctx) {
		if err != nil {
			return nil, err
		}
		if found != nil {
			return nil, NewMultipleMatchesErr(reflect.TypeFor[T]())
		}
		found = e
	}
	return found, nil
}

func (q Query[T]) matches(e *T) bool {
	for _, f := range q.filters {
		if !f(e) {
			return false
		}
	}
	return true
}
