// Package seed loads product catalog fixtures into an empty store.
package seed

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/cleitonmarx/symbiont-uow/internal/domain"
	"github.com/cleitonmarx/symbiont-uow/internal/repository"
	"github.com/google/uuid"
	"go.yaml.in/yaml/v3"
)

// EmbeddedSource selects the fixture shipped with the binary.
const EmbeddedSource = "embedded"

//go:embed fixtures/catalog.yml
var fixtures embed.FS

// ProductFixture is one product entry of a fixture file.
type ProductFixture struct {
	SKU        string `yaml:"sku"`
	Name       string `yaml:"name"`
	PriceCents int64  `yaml:"price_cents"`
	Stock      int64  `yaml:"stock"`
}

// Decode reads a YAML list of product fixtures.
func Decode(r io.Reader) ([]ProductFixture, error) {
	var out []ProductFixture
	if err := yaml.NewDecoder(r).Decode(&out); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode fixtures: %w", err)
	}
	return out, nil
}

// ReadSource decodes the fixtures at source, which is either EmbeddedSource
// or a file path.
func ReadSource(source string) ([]ProductFixture, error) {
	var (
		file io.ReadCloser
		err  error
	)
	if source == EmbeddedSource {
		file, err = fixtures.Open("fixtures/catalog.yml")
	} else {
		file, err = os.Open(source)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open fixtures: %w", err)
	}
	defer file.Close() //nolint:errcheck

	return Decode(file)
}

// Loader adds fixtures to the catalog through a single unit of work.
type Loader struct {
	factory      *repository.Factory
	timeProvider domain.CurrentTimeProvider
	logger       *log.Logger
}

// NewLoader creates a new instance of Loader.
func NewLoader(factory *repository.Factory, timeProvider domain.CurrentTimeProvider, logger *log.Logger) Loader {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return Loader{
		factory:      factory,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Load adds the fixtures and returns how many products were written. A
// catalog that already holds products is left alone.
func (l Loader) Load(ctx context.Context, items []ProductFixture) (n int, err error) {
	uow, err := l.factory.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		err = errors.Join(err, uow.Close())
	}()

	repo, err := repository.RepositoryFor[domain.Product](uow)
	if err != nil {
		return 0, err
	}
	existing, err := repo.CountContext(ctx)
	if err != nil {
		return 0, err
	}
	if existing > 0 {
		l.logger.Printf("Seed: catalog already has %d products, skipping", existing)
		return 0, nil
	}

	now := l.timeProvider.Now()
	for i, item := range items {
		p := &domain.Product{
			ID:         uuid.New(),
			SKU:        strings.TrimSpace(item.SKU),
			Name:       strings.TrimSpace(item.Name),
			PriceCents: item.PriceCents,
			Stock:      item.Stock,
			UpdatedAt:  now,
		}
		if err := p.Validate(); err != nil {
			return 0, fmt.Errorf("fixture %d (%s): %w", i, item.SKU, err)
		}
		if err := repo.Add(p); err != nil {
			return 0, err
		}
	}

	if err := uow.Commit(); err != nil {
		return 0, err
	}
	return len(items), nil
}

// InitSeed loads the SEED_FILE fixtures on startup. "-" disables seeding.
type InitSeed struct {
	Factory      *repository.Factory        `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *log.Logger                `resolve:""`
	File         string                     `config:"SEED_FILE" default:"-"`
}

// Initialize seeds the catalog.
func (i InitSeed) Initialize(ctx context.Context) (context.Context, error) {
	if i.File == "" || i.File == "-" {
		return ctx, nil
	}
	loader := NewLoader(i.Factory, i.TimeProvider, i.Logger)

	items, err := ReadSource(i.File)
	if err != nil {
		return ctx, err
	}
	n, err := loader.Load(ctx, items)
	if err != nil {
		return ctx, fmt.Errorf("failed to seed catalog: %w", err)
	}
	i.Logger.Printf("InitSeed: loaded %d products from %s", n, i.File)
	return ctx, nil
}
