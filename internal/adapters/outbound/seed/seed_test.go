package seed

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-uow/internal/adapters/outbound/memory"
	"github.com/cleitonmarx/symbiont-uow/internal/domain"
	"github.com/cleitonmarx/symbiont-uow/internal/domain/mocks"
	"github.com/cleitonmarx/symbiont-uow/internal/repository"
	"github.com/cleitonmarx/symbiont-uow/internal/usecases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2026, 1, 24, 15, 0, 0, 0, time.UTC)

func newFactory(t *testing.T, opener domain.StoreOpener) *repository.Factory {
	t.Helper()
	model, err := usecases.NewCatalogModel()
	require.NoError(t, err)
	return repository.NewFactory(model, opener, nil)
}

func newTimeProvider(t *testing.T) *mocks.MockCurrentTimeProvider {
	tp := mocks.NewMockCurrentTimeProvider(t)
	tp.EXPECT().Now().Return(fixedTime).Maybe()
	return tp
}

func listProducts(t *testing.T, factory *repository.Factory) []*domain.Product {
	t.Helper()
	var out []*domain.Product
	err := factory.Execute(context.Background(), func(uow *repository.UnitOfWork) error {
		repo, err := repository.RepositoryFor[domain.Product](uow)
		if err != nil {
			return err
		}
		out, err = repo.GetAllContext(context.Background())
		return err
	})
	require.NoError(t, err)
	return out
}

func TestDecode(t *testing.T) {
	tests := map[string]struct {
		input       string
		expected    []ProductFixture
		expectedErr bool
	}{
		"list": {
			input: "- sku: A-1\n  name: Alpha\n  price_cents: 100\n  stock: 2\n",
			expected: []ProductFixture{
				{SKU: "A-1", Name: "Alpha", PriceCents: 100, Stock: 2},
			},
		},
		"empty": {
			input: "",
		},
		"malformed": {
			input:       "sku: [",
			expectedErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Decode(strings.NewReader(tt.input))
			if tt.expectedErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestReadSource(t *testing.T) {
	got, err := ReadSource(EmbeddedSource)
	require.NoError(t, err)
	assert.Len(t, got, 6)
	assert.Equal(t, "COF-001", got[0].SKU)

	path := filepath.Join(t.TempDir(), "catalog.yml")
	require.NoError(t, os.WriteFile(path, []byte("- sku: B-1\n  name: Bravo\n  price_cents: 5\n"), 0o600))
	got, err = ReadSource(path)
	require.NoError(t, err)
	assert.Equal(t, []ProductFixture{{SKU: "B-1", Name: "Bravo", PriceCents: 5}}, got)

	_, err = ReadSource(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorContains(t, err, "failed to open fixtures")
}

func TestLoader_Load(t *testing.T) {
	items := []ProductFixture{
		{SKU: " A-1 ", Name: "Alpha beans", PriceCents: 100, Stock: 2},
		{SKU: "B-1", Name: "Bravo tea", PriceCents: 250},
	}

	tests := map[string]struct {
		preload       []ProductFixture
		items         []ProductFixture
		expectedN     int
		expectedTotal int
		expectedErr   string
	}{
		"empty-catalog": {
			items:         items,
			expectedN:     2,
			expectedTotal: 2,
		},
		"non-empty-catalog-is-skipped": {
			preload:       []ProductFixture{{SKU: "Z-1", Name: "Zulu mug", PriceCents: 900}},
			items:         items,
			expectedN:     0,
			expectedTotal: 1,
		},
		"invalid-fixture-writes-nothing": {
			items: []ProductFixture{
				items[0],
				{SKU: "C-1", Name: "x"},
			},
			expectedTotal: 0,
			expectedErr:   "fixture 1 (C-1): name must be between 3 and 200 characters",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			factory := newFactory(t, memory.NewDatabase())
			loader := NewLoader(factory, newTimeProvider(t), log.Default())
			if tt.preload != nil {
				_, err := loader.Load(context.Background(), tt.preload)
				require.NoError(t, err)
			}

			n, err := loader.Load(context.Background(), tt.items)
			if tt.expectedErr != "" {
				assert.EqualError(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedN, n)
			}

			products := listProducts(t, factory)
			assert.Len(t, products, tt.expectedTotal)
			for _, p := range products {
				assert.Equal(t, int64(1), p.Version)
				assert.Equal(t, fixedTime, p.UpdatedAt)
			}
		})
	}
}

func TestLoader_Load_OpenError(t *testing.T) {
	opener := mocks.NewMockStoreOpener(t)
	opener.EXPECT().Open(mock.Anything).Return(nil, assert.AnError)

	loader := NewLoader(newFactory(t, opener), newTimeProvider(t), nil)
	_, err := loader.Load(context.Background(), nil)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestInitSeed_Initialize(t *testing.T) {
	tests := map[string]struct {
		file          string
		expectedTotal int
		expectedErr   bool
	}{
		"disabled": {
			file:          "-",
			expectedTotal: 0,
		},
		"embedded": {
			file:          EmbeddedSource,
			expectedTotal: 6,
		},
		"missing-file": {
			file:        "/does/not/exist.yml",
			expectedErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			factory := newFactory(t, memory.NewDatabase())
			i := InitSeed{
				Factory:      factory,
				TimeProvider: newTimeProvider(t),
				Logger:       log.Default(),
				File:         tt.file,
			}

			ctx, err := i.Initialize(context.Background())
			if tt.expectedErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, ctx)
			assert.Len(t, listProducts(t, factory), tt.expectedTotal)
		})
	}
}
