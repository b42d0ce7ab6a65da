package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"embed"
	"fmt"
	"errors"
	"log"
	"net/url"
	"strings"

	"github.com/DataDog/go-sqllexer"
	"github.com/XSAM/otelsql"
	"github.com/cleitonmarx/symbiont-uow/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// InitDB initializes the Postgres database connection, runs migrations and
// registers the Connector as the store opener. It does nothing unless the
// postgres driver is selected.
type InitDB struct {
	db                 *sql.DB
	metricRegistration metric.Registration
	skipMigration      bool
	Logger             *log.Logger `resolve:""`
	Driver             string      `config:"STORE_DRIVER" default:"postgres"`
	MaxConns           int         `config:"DB_MAX_CONNS" default:"10"`
	DBUser             string      `config:"DB_USER"`
	DBPass             string      `config:"DB_PASS"`
	DBHost             string      `config:"DB_HOST"`
	DBPort             string      `config:"DB_PORT" default:"5432"`
	DBName             string      `config:"DB_NAME"`
	SSLMode            string      `config:"DB_SSLMODE" default:"disable"`
}

// connString builds the pgx connection URL. Credentials are escaped so
// secrets read from Vault may contain reserved characters.
func (di *InitDB) connString() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(di.DBUser, di.DBPass),
		Host:   di.DBHost + ":" + di.DBPort,
		Path:   "/" + di.DBName,
	}
	if di.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {di.SSLMode}}.Encode()
	}
	return u.String()
}

// Initialize sets up the database connection and runs migrations and registers
// the *sql.DB and the domain.StoreOpener in the dependency container.
func (di *InitDB) Initialize(ctx context.Context) (context.Context, error) {
	if di.Driver != "postgres" {
		return ctx, nil
	}

	cfg, err := pgxpool.ParseConfig(di.connString())
	if err != nil {
		return ctx, fmt.Errorf("create connection pool: %w", err)
	}

	// Every open unit of work pins one connection until it is closed.
	if di.MaxConns > 0 {
		cfg.MaxConns = int32(di.MaxConns)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return ctx, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	dbSystemAttributes := otelsql.WithAttributes(
		semconv.DBSystemNamePostgreSQL,
		semconv.DBNamespace(di.DBName),
	)

	di.db = otelsql.OpenDB(
		stdlib.GetPoolConnector(pool),
		dbSystemAttributes,
		otelsql.WithInstrumentAttributesGetter(withQueryAttributes(di.Logger)),
	)
	if di.MaxConns > 0 {
		di.db.SetMaxOpenConns(di.MaxConns)
	}

	di.metricRegistration, err = otelsql.RegisterDBStatsMetrics(
		di.db,
		dbSystemAttributes,
	)
	if err != nil {
		return ctx, fmt.Errorf("failed to register db stats metrics: %w", err)
	}

	// Run migrations
	if !di.skipMigration {
		if err := di.runMigrations(); err != nil {
			return ctx, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	depend.Register(di.db)
	depend.Register[domain.StoreOpener](NewConnector(di.db))
	di.Logger.Printf("InitDB: connected to %s:%s/%s", di.DBHost, di.DBPort, di.DBName)

	return ctx, nil
}

func (di *InitDB) runMigrations() error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	driver, err := postgres.WithInstance(di.db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	di.Logger.Println("InitDB: migrations applied successfully")
	return nil
}

func (di *InitDB) Close() {
	if di.db != nil {
		if err := di.db.Close(); err != nil {
			di.Logger.Printf("InitDB: failed to close database connection: %v", err)
		}
		if di.metricRegistration != nil {
			if err := di.metricRegistration.Unregister(); err != nil {
				di.Logger.Printf("InitDB: failed to unregister db stats metrics: %v", err)
			}
		}
	}
}

func withQueryAttributes(logger *log.Logger) func(ctx context.Context, method otelsql.Method, query string, args []driver.NamedValue) []attribute.KeyValue {
	return func(ctx context.Context, method otelsql.Method, query string, args []driver.NamedValue) []attribute.KeyValue {
		if method != otelsql.MethodConnQuery && method != otelsql.MethodConnExec {
			return nil
		}
		attrs := []attribute.KeyValue{}

		operations, tables := summarizeQuery(logger, query)
		if len(operations) > 0 {
			attrs = append(attrs, semconv.DBQuerySummary(fmt.Sprintf("%s %s", strings.Join(operations, ","), strings.Join(tables, ","))))
		}
		if len(tables) > 0 {
			attrs = append(attrs, semconv.DBCollectionName(strings.Join(tables, ",")))
		}

		return attrs
	}
}

// summarizeQuery returns the SQL commands and the tables a store query touches.
func summarizeQuery(logger *log.Logger, query string) ([]string, []string) {
	normalizer := sqllexer.NewNormalizer(
		sqllexer.WithCollectTables(true),
		sqllexer.WithCollectCommands(true),
		sqllexer.WithCollectComments(false),
	)

	_, meta, err := normalizer.Normalize(query)
	if err != nil {
		logger.Printf("InitDB: failed to summarize query: %v", err)
		return nil, nil
	}

	return meta.Commands, meta.Tables
}
