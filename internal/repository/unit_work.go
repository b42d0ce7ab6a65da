package repository

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont-uow/internal/domain"
	"github.com/cleitonmarx/symbiont-uow/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// Option configures a UnitOfWork.
type Option func(*UnitOfWork)

// WithLogger sets the logger used to report commit conflicts.
func WithLogger(logger *log.Logger) Option {
	return func(u *UnitOfWork) {
		if logger != nil {
			u.logger = logger
		}
	}
}

// WithConflictRetries lets Commit flush again up to n times after reloading
// a conflicting entity. With the default of 0 the first conflict is
// returned to the caller.
func WithConflictRetries(n int) Option {
	return func(u *UnitOfWork) {
		if n >= 0 {
			u.conflictRetries = n
		}
	}
}

// UnitOfWork owns one persistence context, hands out repositories bound to
// it and commits their pending changes together. It is meant for a single
// logical request and is not safe for concurrent use.
type UnitOfWork struct {
	pc              domain.PersistenceContext
	logger          *log.Logger
	conflictRetries int
	closed          bool
}

// NewUnitOfWork creates a UnitOfWork that takes ownership of pc.
func NewUnitOfWork(pc domain.PersistenceContext, opts ...Option) (*UnitOfWork, error) {
	if pc == nil {
		return nil, domain.NewNullContextErr("unit of work")
	}
	u := &UnitOfWork{
		pc:     pc,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u, nil
}

// Commit flushes every pending change. On a concurrency conflict the
// conflicting entity is reloaded with the store's current values, then the
// conflict is returned unless retries are left.
func (u *UnitOfWork) Commit() error {
	if u.closed {
		return domain.NewClosedErr("unit of work")
	}
	ctx := context.Background()
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	start := time.Now()
	for attempt := 0; ; attempt++ {
		_, err := u.pc.SaveChanges(spanCtx)

		var conflict *domain.ConcurrencyConflictErr
		if !errors.As(err, &conflict) {
			recordCommit(spanCtx, "commit", err, time.Since(start))
			telemetry.RecordErrorAndStatus(span, err)
			return err
		}

		u.logger.Printf("UnitOfWork: concurrency conflict on attempt %d: %v", attempt+1, conflict)
		if conflict.Entry != nil {
			if reloadErr := conflict.Entry.Reload(spanCtx); reloadErr != nil {
				err = errors.Join(err, reloadErr)
			}
		}
		if attempt >= u.conflictRetries {
			span.SetAttributes(
				attribute.Bool("concurrency.conflict", true),
				attribute.Int("commit.attempts", attempt+1),
			)
			recordCommit(spanCtx, "commit", err, time.Since(start))
			telemetry.RecordErrorAndStatus(span, err)
			return err
		}
	}
}

// CommitContext flushes every pending change and returns the number of rows
// written. Conflicts are returned as *domain.ConcurrencyConflictErr without
// reloading or retrying.
func (u *UnitOfWork) CommitContext(ctx context.Context) (int, error) {
	if u.closed {
		return 0, domain.NewClosedErr("unit of work")
	}
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	start := time.Now()
	n, err := u.pc.SaveChanges(spanCtx)
	recordCommit(spanCtx, "commit_context", err, time.Since(start))
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}
	span.SetAttributes(attribute.Int("commit.rows", n))
	return n, nil
}

// Close releases the persistence context. Only the first call reaches the
// context; later calls return nil.
func (u *UnitOfWork) Close() error {
	if u.closed {
		return nil
	}
	u.closed = true
	return u.pc.Close()
}
