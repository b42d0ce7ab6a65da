package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-uow/internal/domain"
	"github.com/cleitonmarx/symbiont-uow/internal/tracking"
	"github.com/cleitonmarx/symbiont/depend"
)

// NewCatalogModel maps every catalog entity.
func NewCatalogModel() (*tracking.Model, error) {
	model := tracking.NewModel()
	if err := tracking.Map(model, domain.ProductMapping()); err != nil {
		return nil, err
	}
	if err := tracking.Map(model, domain.StockMovementMapping()); err != nil {
		return nil, err
	}
	return model, nil
}

// InitCatalogModel registers the catalog tracking model.
type InitCatalogModel struct{}

// Initialize registers the *tracking.Model in the dependency container.
func (i InitCatalogModel) Initialize(ctx context.Context) (context.Context, error) {
	model, err := NewCatalogModel()
	if err != nil {
		return ctx, err
	}
	depend.Register(model)
	return ctx, nil
}
