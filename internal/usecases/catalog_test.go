package usecases

import (
	"context"
	"log"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-uow/internal/adapters/outbound/memory"
	"github.com/cleitonmarx/symbiont-uow/internal/domain"
	"github.com/cleitonmarx/symbiont-uow/internal/domain/mocks"
	"github.com/cleitonmarx/symbiont-uow/internal/repository"
	"github.com/cleitonmarx/symbiont-uow/internal/tracking"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2026, 1, 24, 15, 0, 0, 0, time.UTC)

type catalogFixture struct {
	catalog CatalogImpl
	factory *repository.Factory
}

func newCatalogFixture(t *testing.T) catalogFixture {
	t.Helper()
	model, err := NewCatalogModel()
	require.NoError(t, err)

	timeProvider := mocks.NewMockCurrentTimeProvider(t)
	timeProvider.EXPECT().Now().Return(fixedTime).Maybe()

	factory := repository.NewFactory(model, memory.NewDatabase(), log.Default())
	return catalogFixture{
		catalog: NewCatalog(factory, timeProvider),
		factory: factory,
	}
}

func (f catalogFixture) create(t *testing.T, sku, name string, price, stock int64) domain.Product {
	t.Helper()
	p, err := f.catalog.CreateProduct(context.Background(), CreateProductInput{
		SKU:        sku,
		Name:       name,
		PriceCents: price,
		Stock:      stock,
	})
	require.NoError(t, err)
	return p
}

func (f catalogFixture) movements(t *testing.T) []*domain.StockMovement {
	t.Helper()
	var out []*domain.StockMovement
	err := f.factory.Execute(context.Background(), func(uow *repository.UnitOfWork) error {
		repo, err := repository.RepositoryFor[domain.StockMovement](uow)
		if err != nil {
			return err
		}
		out, err = repo.GetAllContext(context.Background())
		return err
	})
	require.NoError(t, err)
	return out
}

func TestCatalog_CreateProduct(t *testing.T) {
	tests := map[string]struct {
		input       CreateProductInput
		validateErr func(t *testing.T, err error)
	}{
		"success": {
			input: CreateProductInput{SKU: " SKU-2 ", Name: "Green tea", PriceCents: 450, Stock: 12},
		},
		"invalid-name": {
			input: CreateProductInput{SKU: "SKU-2", Name: "x", PriceCents: 450},
			validateErr: func(t *testing.T, err error) {
				var validation *domain.ValidationErr
				assert.ErrorAs(t, err, &validation)
			},
		},
		"negative-price": {
			input: CreateProductInput{SKU: "SKU-2", Name: "Green tea", PriceCents: -1},
			validateErr: func(t *testing.T, err error) {
				var validation *domain.ValidationErr
				assert.ErrorAs(t, err, &validation)
			},
		},
		"duplicate-sku": {
			input: CreateProductInput{SKU: "sku-1", Name: "Other beans", PriceCents: 100},
			validateErr: func(t *testing.T, err error) {
				assert.EqualError(t, err, "product with sku sku-1 already exists")
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newCatalogFixture(t)
			f.create(t, "SKU-1", "Coffee beans", 1299, 4)

			got, err := f.catalog.CreateProduct(context.Background(), tt.input)
			if tt.validateErr != nil {
				tt.validateErr(t, err)
				n, err := f.catalog.CountProducts(context.Background())
				require.NoError(t, err)
				assert.Equal(t, 1, n)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, got.ID)
			assert.Equal(t, "SKU-2", got.SKU)
			assert.Equal(t, int64(1), got.Version)
			assert.Equal(t, fixedTime, got.UpdatedAt)

			stored, err := f.catalog.GetProduct(context.Background(), got.ID)
			require.NoError(t, err)
			assert.Equal(t, got, stored)
		})
	}
}

// interleavingOpener runs beforeApply once, just before the next write
// reaches the backing store.
type interleavingOpener struct {
	db          *memory.Database
	beforeApply func()
}

func (o *interleavingOpener) Open(ctx context.Context) (domain.Store, error) {
	store, err := o.db.Open(ctx)
	if err != nil {
		return nil, err
	}
	return interleavingStore{Store: store, opener: o}, nil
}

type interleavingStore struct {
	domain.Store
	opener *interleavingOpener
}

func (s interleavingStore) Apply(ctx context.Context, changes []domain.Change) error {
	if hook := s.opener.beforeApply; hook != nil {
		s.opener.beforeApply = nil
		hook()
	}
	return s.Store.Apply(ctx, changes)
}

func TestCatalog_CreateProduct_ConcurrentSameSKU(t *testing.T) {
	model, err := NewCatalogModel()
	require.NoError(t, err)
	timeProvider := mocks.NewMockCurrentTimeProvider(t)
	timeProvider.EXPECT().Now().Return(fixedTime).Maybe()

	opener := &interleavingOpener{db: memory.NewDatabase()}
	catalog := NewCatalog(repository.NewFactory(model, opener, log.Default()), timeProvider)

	input := CreateProductInput{SKU: "X1", Name: "Black tea", PriceCents: 300, Stock: 1}
	var innerErr error
	opener.beforeApply = func() {
		_, innerErr = catalog.CreateProduct(context.Background(), input)
	}

	_, err = catalog.CreateProduct(context.Background(), input)
	require.NoError(t, innerErr)
	var validation *domain.ValidationErr
	require.ErrorAs(t, err, &validation)
	assert.EqualError(t, err, "product with sku X1 already exists")

	products, err := catalog.ListProducts(context.Background(), ProductFilter{})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "X1", products[0].SKU)
}

func TestCatalog_GetProduct(t *testing.T) {
	f := newCatalogFixture(t)
	p := f.create(t, "SKU-1", "Coffee beans", 1299, 4)

	got, err := f.catalog.GetProduct(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	_, err = f.catalog.GetProduct(context.Background(), uuid.New())
	var notFound *domain.NotFoundErr
	assert.ErrorAs(t, err, &notFound)
}

func TestCatalog_ListProducts(t *testing.T) {
	f := newCatalogFixture(t)
	beans := f.create(t, "SKU-1", "Coffee beans", 1299, 4)
	tea := f.create(t, "SKU-2", "Green tea", 450, 0)
	mug := f.create(t, "SKU-3", "Coffee mug", 900, 10)
	maxPrice := int64(1000)

	tests := map[string]struct {
		filter   ProductFilter
		expected []domain.Product
	}{
		"all": {
			filter:   ProductFilter{},
			expected: []domain.Product{beans, tea, mug},
		},
		"name-contains": {
			filter:   ProductFilter{NameContains: "COFFEE"},
			expected: []domain.Product{beans, mug},
		},
		"in-stock-only": {
			filter:   ProductFilter{InStockOnly: true},
			expected: []domain.Product{beans, mug},
		},
		"max-price": {
			filter:   ProductFilter{MaxPrice: &maxPrice, InStockOnly: true},
			expected: []domain.Product{mug},
		},
		"no-match": {
			filter: ProductFilter{NameContains: "juice"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := f.catalog.ListProducts(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCatalog_UpdateProduct(t *testing.T) {
	newName := "Arabica beans"
	newPrice := int64(1499)
	badName := "x"

	tests := map[string]struct {
		input       func(p domain.Product) UpdateProductInput
		id          func(p domain.Product) uuid.UUID
		validateErr func(t *testing.T, err error)
		expected    func(p domain.Product) domain.Product
	}{
		"success": {
			input: func(p domain.Product) UpdateProductInput {
				return UpdateProductInput{Name: &newName, PriceCents: &newPrice, Version: p.Version}
			},
			expected: func(p domain.Product) domain.Product {
				p.Name = newName
				p.PriceCents = newPrice
				p.Version = 2
				return p
			},
		},
		"stale-version": {
			input: func(p domain.Product) UpdateProductInput {
				return UpdateProductInput{Name: &newName, Version: p.Version + 5}
			},
			validateErr: func(t *testing.T, err error) {
				var conflict *domain.ConcurrencyConflictErr
				require.ErrorAs(t, err, &conflict)
				current, ok := conflict.DatabaseValues.(*domain.Product)
				require.True(t, ok)
				assert.Equal(t, "Coffee beans", current.Name)
				assert.Equal(t, int64(1), current.Version)
			},
		},
		"missing-version": {
			input: func(p domain.Product) UpdateProductInput {
				return UpdateProductInput{Name: &newName}
			},
			validateErr: func(t *testing.T, err error) {
				assert.EqualError(t, err, "version is required")
			},
		},
		"invalid-name": {
			input: func(p domain.Product) UpdateProductInput {
				return UpdateProductInput{Name: &badName, Version: p.Version}
			},
			validateErr: func(t *testing.T, err error) {
				var validation *domain.ValidationErr
				assert.ErrorAs(t, err, &validation)
			},
		},
		"not-found": {
			input: func(p domain.Product) UpdateProductInput {
				return UpdateProductInput{Name: &newName, Version: p.Version}
			},
			id: func(p domain.Product) uuid.UUID { return uuid.New() },
			validateErr: func(t *testing.T, err error) {
				var notFound *domain.NotFoundErr
				assert.ErrorAs(t, err, &notFound)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newCatalogFixture(t)
			p := f.create(t, "SKU-1", "Coffee beans", 1299, 4)
			id := p.ID
			if tt.id != nil {
				id = tt.id(p)
			}

			got, err := f.catalog.UpdateProduct(context.Background(), id, tt.input(p))
			if tt.validateErr != nil {
				tt.validateErr(t, err)
				stored, err := f.catalog.GetProduct(context.Background(), p.ID)
				require.NoError(t, err)
				assert.Equal(t, p, stored, "failed updates leave the product untouched")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected(p), got)
			stored, err := f.catalog.GetProduct(context.Background(), p.ID)
			require.NoError(t, err)
			assert.Equal(t, got, stored)
		})
	}
}

func TestCatalog_DeleteProduct(t *testing.T) {
	tests := map[string]struct {
		id              func(p domain.Product) uuid.UUID
		expectedVersion int64
		validateErr     func(t *testing.T, err error)
		expectedCount   int
	}{
		"success-without-version": {
			expectedCount: 0,
		},
		"success-with-version": {
			expectedVersion: 1,
			expectedCount:   0,
		},
		"stale-version": {
			expectedVersion: 7,
			validateErr: func(t *testing.T, err error) {
				var conflict *domain.ConcurrencyConflictErr
				assert.ErrorAs(t, err, &conflict)
			},
			expectedCount: 1,
		},
		"not-found": {
			id: func(p domain.Product) uuid.UUID { return uuid.New() },
			validateErr: func(t *testing.T, err error) {
				var notFound *domain.NotFoundErr
				assert.ErrorAs(t, err, &notFound)
			},
			expectedCount: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newCatalogFixture(t)
			p := f.create(t, "SKU-1", "Coffee beans", 1299, 4)
			id := p.ID
			if tt.id != nil {
				id = tt.id(p)
			}

			err := f.catalog.DeleteProduct(context.Background(), id, tt.expectedVersion)
			if tt.validateErr != nil {
				tt.validateErr(t, err)
			} else {
				assert.NoError(t, err)
			}

			n, err := f.catalog.CountProducts(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.expectedCount, n)
		})
	}
}

func TestCatalog_AdjustStock(t *testing.T) {
	tests := map[string]struct {
		delta             int64
		reason            string
		unknownProduct    bool
		validateErr       func(t *testing.T, err error)
		expectedStock     int64
		expectedMovements int
	}{
		"restock": {
			delta:             6,
			reason:            "delivery",
			expectedStock:     10,
			expectedMovements: 1,
		},
		"sale": {
			delta:             -4,
			reason:            "sale",
			expectedStock:     0,
			expectedMovements: 1,
		},
		"insufficient-stock": {
			delta:  -5,
			reason: "sale",
			validateErr: func(t *testing.T, err error) {
				assert.EqualError(t, err, "insufficient stock: have 4, requested 5")
			},
			expectedStock: 4,
		},
		"zero-delta": {
			delta:  0,
			reason: "noop",
			validateErr: func(t *testing.T, err error) {
				assert.EqualError(t, err, "delta cannot be zero")
			},
			expectedStock: 4,
		},
		"missing-reason": {
			delta:  1,
			reason: "  ",
			validateErr: func(t *testing.T, err error) {
				assert.EqualError(t, err, "reason cannot be empty")
			},
			expectedStock: 4,
		},
		"unknown-product": {
			delta:          1,
			reason:         "delivery",
			unknownProduct: true,
			validateErr: func(t *testing.T, err error) {
				var notFound *domain.NotFoundErr
				assert.ErrorAs(t, err, &notFound)
			},
			expectedStock: 4,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newCatalogFixture(t)
			p := f.create(t, "SKU-1", "Coffee beans", 1299, 4)
			id := p.ID
			if tt.unknownProduct {
				id = uuid.New()
			}

			got, err := f.catalog.AdjustStock(context.Background(), id, tt.delta, tt.reason)
			if tt.validateErr != nil {
				tt.validateErr(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedStock, got.Stock)
				assert.Equal(t, int64(2), got.Version)
			}

			stored, err := f.catalog.GetProduct(context.Background(), p.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStock, stored.Stock)

			movements := f.movements(t)
			require.Len(t, movements, tt.expectedMovements)
			if tt.expectedMovements > 0 {
				assert.Equal(t, p.ID, movements[0].ProductID)
				assert.Equal(t, tt.delta, movements[0].Delta)
				assert.Equal(t, tt.reason, movements[0].Reason)
			}
		})
	}
}

func TestCatalog_StoreUnavailable(t *testing.T) {
	model, err := NewCatalogModel()
	require.NoError(t, err)
	opener := mocks.NewMockStoreOpener(t)
	opener.EXPECT().Open(mock.Anything).Return(nil, assert.AnError)

	catalog := NewCatalog(repository.NewFactory(model, opener, nil), mocks.NewMockCurrentTimeProvider(t))

	_, err = catalog.ListProducts(context.Background(), ProductFilter{})
	assert.ErrorIs(t, err, assert.AnError)
	_, err = catalog.CountProducts(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
	_, err = catalog.GetProduct(context.Background(), uuid.New())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestInitCatalogModel_Initialize(t *testing.T) {
	ctx, err := InitCatalogModel{}.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	model, err := depend.Resolve[*tracking.Model]()
	require.NoError(t, err)

	store, err := memory.NewDatabase().Open(context.Background())
	require.NoError(t, err)
	session, err := tracking.NewSession(model, store)
	require.NoError(t, err)
	_, err = domain.SetOf[domain.Product](session)
	assert.NoError(t, err)
	_, err = domain.SetOf[domain.StockMovement](session)
	assert.NoError(t, err)
}

func TestInitCatalog_Initialize(t *testing.T) {
	model, err := NewCatalogModel()
	require.NoError(t, err)

	i := InitCatalog{
		Executor:     repository.NewFactory(model, memory.NewDatabase(), nil),
		TimeProvider: mocks.NewMockCurrentTimeProvider(t),
	}

	ctx, err := i.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	catalog, err := depend.Resolve[Catalog]()
	assert.NoError(t, err)
	assert.NotNil(t, catalog)
}
