package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-uow/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-uow/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-uow/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-uow/internal/adapters/outbound/memory"
	"github.com/cleitonmarx/symbiont-uow/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/symbiont-uow/internal/adapters/outbound/seed"
	"github.com/cleitonmarx/symbiont-uow/internal/adapters/outbound/time"
	"github.com/cleitonmarx/symbiont-uow/internal/repository"
	"github.com/cleitonmarx/symbiont-uow/internal/telemetry"
	"github.com/cleitonmarx/symbiont-uow/internal/usecases"
)

// NewCatalogApp creates and returns a new instance of the Catalog application.
func NewCatalogApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&postgres.InitDB{},
			&memory.InitStoreOpener{},
			&time.InitCurrentTimeProvider{},

			&usecases.InitCatalogModel{},
			&repository.InitUnitOfWorkFactory{},
			&seed.InitSeed{},
			&usecases.InitCatalog{},
		).
		Host(
			&http.CatalogServer{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
