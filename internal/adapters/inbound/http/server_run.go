package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-uow/internal/telemetry"
	"github.com/cleitonmarx/symbiont-uow/internal/usecases"
	"github.com/rs/cors"
)

// CatalogServer is the REST API HTTP server of the product catalog.
type CatalogServer struct {
	Port    int              `config:"HTTP_PORT" default:"8080"`
	Logger  *log.Logger      `resolve:""`
	Catalog usecases.Catalog `resolve:""`
	Client  *http.Client     `resolve:""`
}

// Handler returns the routed API with telemetry and CORS applied.
func (api CatalogServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /products", api.ListProducts)
	mux.HandleFunc("GET /products/count", api.CountProducts)
	mux.HandleFunc("GET /products/{id}", api.GetProduct)
	mux.HandleFunc("POST /products", api.CreateProduct)
	mux.HandleFunc("PUT /products/{id}", api.UpdateProduct)
	mux.HandleFunc("DELETE /products/{id}", api.DeleteProduct)
	mux.HandleFunc("POST /products/{id}/stock", api.AdjustStock)
	mux.HandleFunc("GET /healthz", healthz)

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("GET /introspect", api.IntrospectHandler)

	h := telemetry.Middleware("catalog-api")(mux)

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.AllowAll().Handler(h)
}

// Run starts the HTTP server for the CatalogServer.
func (api CatalogServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler: api.Handler(),
		Addr:    fmt.Sprintf(":%d", api.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("CatalogServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("CatalogServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("CatalogServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the CatalogServer is ready by performing a health check.
func (api CatalogServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://:%d/healthz", api.Port), nil)
	if err != nil {
		return err
	}
	client := api.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
