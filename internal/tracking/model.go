package tracking

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/cleitonmarx/symbiont-uow/internal/domain"
)

// entityMapping is the type-erased form of a domain.Mapping.
type entityMapping struct {
	entityType reflect.Type
	table      domain.Table
	toRow      func(entity any) domain.Row
	scan       func(row domain.Row, entity any) error
	newEntity  func() any
	newSet     func(s *Session) any
}

func (m *entityMapping) keyOf(entity any) any {
	return m.toRow(entity)[m.table.KeyColumn]
}

func (m *entityMapping) versionOf(row domain.Row) (int64, error) {
	if m.table.VersionColumn == "" {
		return 0, nil
	}
	return row.Int64(m.table.VersionColumn)
}

// Model holds the entity mappings shared by every session built from it.
// It is safe for concurrent use; sessions are not.
type Model struct {
	mu       sync.RWMutex
	mappings map[reflect.Type]*entityMapping
}

// NewModel creates an empty Model.
func NewModel() *Model {
	return &Model{mappings: map[reflect.Type]*entityMapping{}}
}

// Map registers the mapping for entity type T.
func Map[T any](model *Model, mapping domain.Mapping[T]) error {
	if err := mapping.Validate(); err != nil {
		return err
	}
	entityType := reflect.TypeFor[T]()

	model.mu.Lock()
	defer model.mu.Unlock()
	if _, exists := model.mappings[entityType]; exists {
		return fmt.Errorf("tracking: entity type %s is already mapped", entityType)
	}

	m := &entityMapping{
		entityType: entityType,
		table:      mapping.Table,
		toRow: func(entity any) domain.Row {
			return mapping.ToRow(entity.(*T))
		},
		scan: func(row domain.Row, entity any) error {
			return mapping.Scan(row, entity.(*T))
		},
		newEntity: func() any {
			return new(T)
		},
	}
	m.newSet = func(s *Session) any {
		return &entitySet[T]{session: s, mapping: m}
	}
	model.mappings[entityType] = m
	return nil
}

// MustMap is Map that panics on error, for package-level model setup.
func MustMap[T any](model *Model, mapping domain.Mapping[T]) {
	if err := Map(model, mapping); err != nil {
		panic(err)
	}
}

func (model *Model) lookup(entityType reflect.Type) (*entityMapping, bool) {
	model.mu.RLock()
	defer model.mu.RUnlock()
	m, ok := model.mappings[entityType]
	return m, ok
}
