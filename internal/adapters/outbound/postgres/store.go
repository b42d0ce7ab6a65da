package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-uow/internal/domain"
	"github.com/cleitonmarx/symbiont-uow/internal/telemetry"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Conn is the connection a Store runs on. *sql.Conn and *sql.DB satisfy it.
type Conn interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
	Close() error
}

// Store implements domain.Store over one Postgres connection.
type Store struct {
	conn   Conn
	sb     squirrel.StatementBuilderType
	closed bool
}

var _ domain.Store = (*Store)(nil)

// NewStore creates a Store that owns conn.
func NewStore(conn Conn) *Store {
	return &Store{
		conn: conn,
		sb:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Load reads every row of the table ordered by key.
func (s *Store) Load(ctx context.Context, table domain.Table) ([]domain.Row, error) {
	spanCtx, span := telemetry.Start(ctx, telemetry.WithTable(table.Name))
	defer span.End()

	if s.closed {
		return nil, domain.NewClosedErr("postgres store")
	}

	query, args, err := s.sb.
		Select(table.Columns...).
		From(table.Name).
		OrderBy(table.KeyColumn).
		ToSql()
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	rows, err := s.query(spanCtx, query, args)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	span.SetAttributes(attribute.Int("rows", len(rows)))
	return rows, nil
}

// Get reads the row with the given key.
func (s *Store) Get(ctx context.Context, table domain.Table, key any) (domain.Row, bool, error) {
	spanCtx, span := telemetry.Start(ctx, telemetry.WithTable(table.Name))
	defer span.End()

	if s.closed {
		return nil, false, domain.NewClosedErr("postgres store")
	}

	query, args, err := s.sb.
		Select(table.Columns...).
		From(table.Name).
		Where(squirrel.Eq{table.KeyColumn: key}).
		ToSql()
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, false, err
	}

	rows, err := s.query(spanCtx, query, args)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, false, err
	}
	if len(rows) == 0 {
		return nil, false, nil
	}
	return rows[0], true, nil
}

// Apply writes the changes in one transaction. An update or delete that
// matches no row rolls the transaction back with a *domain.StaleRowErr.
func (s *Store) Apply(ctx context.Context, changes []domain.Change) (err error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("changes", len(changes)),
	))
	defer span.End()
	defer func() {
		telemetry.RecordErrorAndStatus(span, err)
	}()

	if s.closed {
		return domain.NewClosedErr("postgres store")
	}

	tx, err := s.conn.BeginTx(spanCtx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil {
			err = fmt.Errorf("transaction rollback error: %v, original error: %w", rbErr, err)
		}
	}()

	sb := s.sb.RunWith(tx)
	for i, change := range changes {
		if err = applyChange(spanCtx, sb, i, change); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Close returns the connection to the pool.
func (s *Store) Close() error {
	if s.closed {
		return domain.NewClosedErr("postgres store")
	}
	s.closed = true
	return s.conn.Close()
}

func applyChange(ctx context.Context, sb squirrel.StatementBuilderType, index int, change domain.Change) error {
	table := change.Table

	var (
		res sql.Result
		err error
	)
	switch change.Kind {
	case domain.ChangeKind_INSERT:
		values := make([]any, len(table.Columns))
		for i, col := range table.Columns {
			values[i] = change.Row[col]
		}
		_, err = sb.Insert(table.Name).
			Columns(table.Columns...).
			Values(values...).
			ExecContext(ctx)
		return uniqueViolation(table, change.Row, err)

	case domain.ChangeKind_UPDATE:
		qry := sb.Update(table.Name)
		for _, col := range table.Columns {
			if col == table.KeyColumn {
				continue
			}
			qry = qry.Set(col, change.Row[col])
		}
		qry = qry.Where(squirrel.Eq{table.KeyColumn: change.Key})
		if table.VersionColumn != "" {
			qry = qry.Where(squirrel.Eq{table.VersionColumn: change.ExpectedVersion})
		}
		res, err = qry.ExecContext(ctx)
		err = uniqueViolation(table, change.Row, err)

	case domain.ChangeKind_DELETE:
		qry := sb.Delete(table.Name).
			Where(squirrel.Eq{table.KeyColumn: change.Key})
		if table.VersionColumn != "" {
			qry = qry.Where(squirrel.Eq{table.VersionColumn: change.ExpectedVersion})
		}
		res, err = qry.ExecContext(ctx)

	default:
		return fmt.Errorf("postgres: unknown change kind %q", change.Kind)
	}
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewStaleRowErr(index, table.Name, change.Key)
	}
	return nil
}

// uniqueViolation turns a Postgres unique_violation on one of the table's
// unique columns into a *domain.UniqueViolationErr. Other errors pass through.
func uniqueViolation(table domain.Table, row domain.Row, err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return err
	}
	for _, col := range table.UniqueColumns {
		if strings.Contains(pgErr.ConstraintName, col) {
			return domain.NewUniqueViolationErr(table.Name, col, row[col])
		}
	}
	return err
}

func (s *Store) query(ctx context.Context, query string, args []any) ([]domain.Row, error) {
	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []domain.Row
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(domain.Row, len(cols))
		for i, col := range cols {
			row[col] = values[i]
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Connector opens a Store on a dedicated pooled connection per unit of work.
type Connector struct {
	db *sql.DB
}

var _ domain.StoreOpener = Connector{}

// NewConnector creates a Connector over db.
func NewConnector(db *sql.DB) Connector {
	return Connector{db: db}
}

// Open acquires a connection from the pool.
func (c Connector) Open(ctx context.Context) (domain.Store, error) {
	if c.db == nil {
		return nil, errors.New("postgres: database is not initialized")
	}
	conn, err := c.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	return NewStore(conn), nil
}
