package repository

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/cleitonmarx/symbiont-uow/internal/domain"
	"github.com/cleitonmarx/symbiont-uow/internal/tracking"
	"github.com/cleitonmarx/symbiont/depend"
)

// Executor runs a function inside a unit of work that is committed when the
// function succeeds and always closed.
type Executor interface {
	Execute(ctx context.Context, fn func(uow *UnitOfWork) error) error
}

// Factory builds units of work over fresh sessions of a shared model.
type Factory struct {
	model  *tracking.Model
	opener domain.StoreOpener
	logger *log.Logger
	opts   []Option
}

var _ Executor = (*Factory)(nil)

// NewFactory creates a Factory. The options are applied to every unit of
// work it begins.
func NewFactory(model *tracking.Model, opener domain.StoreOpener, logger *log.Logger, opts ...Option) *Factory {
	return &Factory{
		model:  model,
		opener: opener,
		logger: logger,
		opts:   append([]Option{WithLogger(logger)}, opts...),
	}
}

// Begin opens a store and returns a unit of work that owns it. The caller
// must Close the unit of work.
func (f *Factory) Begin(ctx context.Context) (*UnitOfWork, error) {
	store, err := f.opener.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("unit of work: open store: %w", err)
	}
	session, err := tracking.NewSession(f.model, store)
	if err != nil {
		return nil, errors.Join(err, store.Close())
	}
	return NewUnitOfWork(session, f.opts...)
}

// Execute begins a unit of work, runs fn and commits when fn succeeds. The
// unit of work is closed on every path. The commit uses CommitContext, so a
// conflict is returned without retrying whatever WithConflictRetries says.
func (f *Factory) Execute(ctx context.Context, fn func(uow *UnitOfWork) error) (err error) {
	uow, err := f.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := uow.Close(); closeErr != nil {
			if f.logger != nil {
				f.logger.Printf("UnitOfWork: failed to close: %v", closeErr)
			}
			if err == nil {
				err = closeErr
			}
		}
	}()

	if err = fn(uow); err != nil {
		return err
	}
	_, err = uow.CommitContext(ctx)
	return err
}

// InitUnitOfWorkFactory is a component that registers the unit of work
// Factory as an Executor. UOW_CONFLICT_RETRIES only affects units of work
// committed with Commit; Execute never retries.
type InitUnitOfWorkFactory struct {
	Logger          *log.Logger        `resolve:""`
	Model           *tracking.Model    `resolve:""`
	Opener          domain.StoreOpener `resolve:""`
	ConflictRetries int                `config:"UOW_CONFLICT_RETRIES" default:"0"`
}

// Initialize registers the Factory in the dependency container.
func (i InitUnitOfWorkFactory) Initialize(ctx context.Context) (context.Context, error) {
	if i.ConflictRetries < 0 {
		return ctx, fmt.Errorf("UOW_CONFLICT_RETRIES must not be negative, got %d", i.ConflictRetries)
	}
	factory := NewFactory(i.Model, i.Opener, i.Logger, WithConflictRetries(i.ConflictRetries))
	depend.Register[Executor](factory)
	depend.Register(factory)
	return ctx, nil
}
