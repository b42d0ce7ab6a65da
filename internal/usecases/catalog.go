package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont-uow/internal/domain"
	"github.com/cleitonmarx/symbiont-uow/internal/repository"
	"github.com/cleitonmarx/symbiont-uow/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ProductFilter narrows ListProducts. Zero values match everything.
type ProductFilter struct {
	NameContains string
	InStockOnly  bool
	MaxPrice     *int64
}

func (f ProductFilter) matches(p *domain.Product) bool {
	if f.NameContains != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.NameContains)) {
		return false
	}
	if f.InStockOnly && p.Stock <= 0 {
		return false
	}
	if f.MaxPrice != nil && p.PriceCents > *f.MaxPrice {
		return false
	}
	return true
}

// CreateProductInput holds the fields of a new product.
type CreateProductInput struct {
	SKU        string
	Name       string
	PriceCents int64
	Stock      int64
}

// UpdateProductInput holds the replaceable fields of a product and the
// version the caller last read.
type UpdateProductInput struct {
	Name       *string
	PriceCents *int64
	Version    int64
}

// Catalog defines the product catalog use cases.
type Catalog interface {
	ListProducts(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error)
	CountProducts(ctx context.Context) (int, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (domain.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input UpdateProductInput) (domain.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID, expectedVersion int64) error
	AdjustStock(ctx context.Context, id uuid.UUID, delta int64, reason string) (domain.Product, error)
}

// CatalogImpl implements Catalog over units of work.
type CatalogImpl struct {
	executor     repository.Executor
	timeProvider domain.CurrentTimeProvider
}

var _ Catalog = CatalogImpl{}

// NewCatalog creates a new instance of CatalogImpl.
func NewCatalog(executor repository.Executor, timeProvider domain.CurrentTimeProvider) CatalogImpl {
	return CatalogImpl{
		executor:     executor,
		timeProvider: timeProvider,
	}
}

// ListProducts lists the products matching the filter.
func (c CatalogImpl) ListProducts(ctx context.Context, filter ProductFilter) ([]domain.Product, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var products []domain.Product
	err := c.executor.Execute(spanCtx, func(uow *repository.UnitOfWork) error {
		repo, err := repository.RepositoryFor[domain.Product](uow)
		if err != nil {
			return err
		}
		for p, err := range repo.Find(filter.matches).All(spanCtx) {
			if err != nil {
				return err
			}
			products = append(products, *p)
		}
		return nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	span.SetAttributes(attribute.Int("products.count", len(products)))
	return products, nil
}

// GetProduct returns the product with the given id.
func (c CatalogImpl) GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("product.id", id.String()),
	))
	defer span.End()

	var product domain.Product
	err := c.executor.Execute(spanCtx, func(uow *repository.UnitOfWork) error {
		repo, err := repository.RepositoryFor[domain.Product](uow)
		if err != nil {
			return err
		}
		p, err := findProduct(spanCtx, repo, id)
		if err != nil {
			return err
		}
		product = *p
		return nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Product{}, err
	}
	return product, nil
}

// CountProducts returns the number of products in the catalog.
func (c CatalogImpl) CountProducts(ctx context.Context) (int, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var n int
	err := c.executor.Execute(spanCtx, func(uow *repository.UnitOfWork) error {
		repo, err := repository.RepositoryFor[domain.Product](uow)
		if err != nil {
			return err
		}
		n, err = repo.CountContext(spanCtx)
		return err
	})
	telemetry.RecordErrorAndStatus(span, err)
	return n, err
}

// CreateProduct adds a new product. SKUs are unique.
func (c CatalogImpl) CreateProduct(ctx context.Context, input CreateProductInput) (domain.Product, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("product.sku", input.SKU),
	))
	defer span.End()

	product := &domain.Product{
		ID:         uuid.New(),
		SKU:        strings.TrimSpace(input.SKU),
		Name:       strings.TrimSpace(input.Name),
		PriceCents: input.PriceCents,
		Stock:      input.Stock,
		UpdatedAt:  c.timeProvider.Now(),
	}
	if err := product.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Product{}, err
	}

	err := c.executor.Execute(spanCtx, func(uow *repository.UnitOfWork) error {
		repo, err := repository.RepositoryFor[domain.Product](uow)
		if err != nil {
			return err
		}
		existing, err := repo.FirstContext(spanCtx, func(p *domain.Product) bool {
			return strings.EqualFold(p.SKU, product.SKU)
		})
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.NewValidationErr(fmt.Sprintf("product with sku %s already exists", product.SKU))
		}
		return repo.Add(product)
	})
	// Lost the race against a concurrent create of the same SKU.
	var unique *domain.UniqueViolationErr
	if errors.As(err, &unique) {
		err = domain.NewValidationErr(fmt.Sprintf("product with sku %s already exists", product.SKU))
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Product{}, err
	}
	return *product, nil
}

// UpdateProduct changes the name or price of a product. The write only
// succeeds when input.Version is still the stored version; otherwise a
// *domain.ConcurrencyConflictErr carrying the stored values is returned.
func (c CatalogImpl) UpdateProduct(ctx context.Context, id uuid.UUID, input UpdateProductInput) (domain.Product, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("product.id", id.String()),
		attribute.Int64("product.version", input.Version),
	))
	defer span.End()

	if input.Version <= 0 {
		err := domain.NewValidationErr("version is required")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.Product{}, err
	}

	var product *domain.Product
	err := c.executor.Execute(spanCtx, func(uow *repository.UnitOfWork) error {
		repo, err := repository.RepositoryFor[domain.Product](uow)
		if err != nil {
			return err
		}
		p, err := findProduct(spanCtx, repo, id)
		if err != nil {
			return err
		}

		if input.Name != nil {
			p.Name = strings.TrimSpace(*input.Name)
		}
		if input.PriceCents != nil {
			p.PriceCents = *input.PriceCents
		}
		if err := p.Validate(); err != nil {
			return err
		}
		p.Version = input.Version
		p.UpdatedAt = c.timeProvider.Now()

		if err := repo.Update(p); err != nil {
			return err
		}
		// The commit after fn bumps the version of p in place.
		product = p
		return nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Product{}, err
	}
	return *product, nil
}

// DeleteProduct removes a product. A positive expectedVersion must match the
// stored version.
func (c CatalogImpl) DeleteProduct(ctx context.Context, id uuid.UUID, expectedVersion int64) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("product.id", id.String()),
	))
	defer span.End()

	err := c.executor.Execute(spanCtx, func(uow *repository.UnitOfWork) error {
		repo, err := repository.RepositoryFor[domain.Product](uow)
		if err != nil {
			return err
		}
		p, err := findProduct(spanCtx, repo, id)
		if err != nil {
			return err
		}
		if expectedVersion > 0 {
			p.Version = expectedVersion
		}
		return repo.Remove(p)
	})
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// AdjustStock changes the stock of a product by delta and records a stock
// movement. Both writes are committed together.
func (c CatalogImpl) AdjustStock(ctx context.Context, id uuid.UUID, delta int64, reason string) (domain.Product, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("product.id", id.String()),
		attribute.Int64("stock.delta", delta),
	))
	defer span.End()

	if delta == 0 {
		err := domain.NewValidationErr("delta cannot be zero")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.Product{}, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		err := domain.NewValidationErr("reason cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.Product{}, err
	}

	var product *domain.Product
	err := c.executor.Execute(spanCtx, func(uow *repository.UnitOfWork) error {
		products, err := repository.RepositoryFor[domain.Product](uow)
		if err != nil {
			return err
		}
		movements, err := repository.RepositoryFor[domain.StockMovement](uow)
		if err != nil {
			return err
		}

		p, err := findProduct(spanCtx, products, id)
		if err != nil {
			return err
		}
		if p.Stock+delta < 0 {
			return domain.NewValidationErr(fmt.Sprintf("insufficient stock: have %d, requested %d", p.Stock, -delta))
		}

		now := c.timeProvider.Now()
		p.Stock += delta
		p.UpdatedAt = now
		if err := products.Update(p); err != nil {
			return err
		}
		product = p
		return movements.Add(&domain.StockMovement{
			ID:        uuid.New(),
			ProductID: p.ID,
			Delta:     delta,
			Reason:    reason,
			CreatedAt: now,
		})
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		recordStockAdjustment(spanCtx, delta, err)
		return domain.Product{}, err
	}
	recordStockAdjustment(spanCtx, delta, nil)
	return *product, nil
}

func findProduct(ctx context.Context, repo *repository.GenericRepository[domain.Product], id uuid.UUID) (*domain.Product, error) {
	p, err := repo.SingleContext(ctx, func(p *domain.Product) bool {
		return p.ID == id
	})
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NewNotFoundErr(fmt.Sprintf("product with ID %s not found", id))
	}
	return p, nil
}

// InitCatalog initializes the Catalog use cases.
type InitCatalog struct {
	Executor     repository.Executor        `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the Catalog use cases in the dependency container.
func (i InitCatalog) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[Catalog](NewCatalog(i.Executor, i.TimeProvider))
	return ctx, nil
}
