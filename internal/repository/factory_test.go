package repository

import (
	"context"
	"errors"
	"log"
	"testing"

	"github.com/cleitonmarx/symbiont-uow/internal/adapters/outbound/memory"
	"github.com/cleitonmarx/symbiont-uow/internal/domain"
	"github.com/cleitonmarx/symbiont-uow/internal/domain/mocks"
	"github.com/cleitonmarx/symbiont-uow/internal/tracking"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFactory_Begin(t *testing.T) {
	tests := map[string]struct {
		setupMocks  func(opener *mocks.MockStoreOpener, store *mocks.MockStore)
		model       *tracking.Model
		expectedErr bool
	}{
		"success": {
			setupMocks: func(opener *mocks.MockStoreOpener, store *mocks.MockStore) {
				opener.EXPECT().Open(mock.Anything).Return(store, nil).Once()
			},
			model: tracking.NewModel(),
		},
		"open-error": {
			setupMocks: func(opener *mocks.MockStoreOpener, store *mocks.MockStore) {
				opener.EXPECT().Open(mock.Anything).Return(nil, assert.AnError).Once()
			},
			model:       tracking.NewModel(),
			expectedErr: true,
		},
		"session-error-closes-the-store": {
			setupMocks: func(opener *mocks.MockStoreOpener, store *mocks.MockStore) {
				opener.EXPECT().Open(mock.Anything).Return(store, nil).Once()
				store.EXPECT().Close().Return(nil).Once()
			},
			model:       nil,
			expectedErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			opener := mocks.NewMockStoreOpener(t)
			store := mocks.NewMockStore(t)
			tt.setupMocks(opener, store)

			uow, err := NewFactory(tt.model, opener, nil).Begin(context.Background())
			if tt.expectedErr {
				assert.Error(t, err)
				assert.Nil(t, uow)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, uow)
		})
	}
}

func TestFactory_Execute(t *testing.T) {
	ctx := context.Background()

	tests := map[string]struct {
		fn          func(uow *UnitOfWork) error
		expectedErr error
		expectedLen int
	}{
		"commits-on-success": {
			fn: func(uow *UnitOfWork) error {
				repo, err := RepositoryFor[domain.Product](uow)
				if err != nil {
					return err
				}
				return repo.Add(sampleProduct("A"))
			},
			expectedLen: 1,
		},
		"discards-on-error": {
			fn: func(uow *UnitOfWork) error {
				repo, err := RepositoryFor[domain.Product](uow)
				if err != nil {
					return err
				}
				if err := repo.Add(sampleProduct("A")); err != nil {
					return err
				}
				return assert.AnError
			},
			expectedErr: assert.AnError,
			expectedLen: 0,
		},
		"commit-after-close-in-fn-fails": {
			fn: func(uow *UnitOfWork) error {
				return uow.Close()
			},
			expectedErr: domain.NewClosedErr("unit of work"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newCatalogFactory(t)

			err := f.Execute(ctx, tt.fn)
			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
			} else {
				assert.NoError(t, err)
			}

			_, repo := begin(t, f)
			n, err := repo.CountContext(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedLen, n)
		})
	}
}

func TestFactory_Execute_DoesNotRetryConflicts(t *testing.T) {
	ctx := context.Background()
	f := newCatalogFactory(t, WithConflictRetries(3))
	p := sampleProduct("A")
	require.NoError(t, f.Execute(ctx, func(uow *UnitOfWork) error {
		repo, err := RepositoryFor[domain.Product](uow)
		if err != nil {
			return err
		}
		return repo.Add(p)
	}))

	err := f.Execute(ctx, func(uow *UnitOfWork) error {
		repo, err := RepositoryFor[domain.Product](uow)
		if err != nil {
			return err
		}
		stale, err := repo.SingleContext(ctx, func(x *domain.Product) bool { return x.ID == p.ID })
		if err != nil {
			return err
		}

		winnerUow, winnerRepo := begin(t, f)
		winner, err := winnerRepo.SingleContext(ctx, func(x *domain.Product) bool { return x.ID == p.ID })
		require.NoError(t, err)
		winner.Stock = 1
		require.NoError(t, winnerRepo.Update(winner))
		_, err = winnerUow.CommitContext(ctx)
		require.NoError(t, err)

		stale.Stock = 99
		return repo.Update(stale)
	})
	var conflict *domain.ConcurrencyConflictErr
	require.ErrorAs(t, err, &conflict)

	_, repo := begin(t, f)
	stored, err := repo.SingleContext(ctx, func(x *domain.Product) bool { return x.ID == p.ID })
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.Stock)
	assert.Equal(t, int64(2), stored.Version)
}

func TestFactory_Execute_CloseError(t *testing.T) {
	opener := mocks.NewMockStoreOpener(t)
	store := mocks.NewMockStore(t)
	opener.EXPECT().Open(mock.Anything).Return(store, nil).Once()
	store.EXPECT().Close().Return(assert.AnError).Once()

	var logs []string
	logger := log.New(writerFunc(func(p []byte) (int, error) {
		logs = append(logs, string(p))
		return len(p), nil
	}), "", 0)

	err := NewFactory(tracking.NewModel(), opener, logger).Execute(context.Background(), func(uow *UnitOfWork) error {
		return nil
	})
	assert.True(t, errors.Is(err, assert.AnError))
	require.Len(t, logs, 1)
	assert.Contains(t, logs[0], "UnitOfWork: failed to close")
}

func TestInitUnitOfWorkFactory_Initialize(t *testing.T) {
	i := InitUnitOfWorkFactory{
		Logger:          log.Default(),
		Model:           tracking.NewModel(),
		Opener:          memory.NewDatabase(),
		ConflictRetries: 2,
	}

	ctx, err := i.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	executor, err := depend.Resolve[Executor]()
	assert.NoError(t, err)
	assert.NotNil(t, executor)

	factory, err := depend.Resolve[*Factory]()
	require.NoError(t, err)
	uow, err := factory.Begin(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, uow.conflictRetries)
	assert.NoError(t, uow.Close())

	i.ConflictRetries = -1
	_, err = i.Initialize(context.Background())
	assert.Error(t, err)
}

type writerFunc func(p []byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) {
	return f(p)
}
