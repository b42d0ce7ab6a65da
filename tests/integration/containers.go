package integration

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// initEnvVars exports the given variables before the app reads its configuration.
type initEnvVars struct {
	envVars map[string]string
}

func (i *initEnvVars) Initialize(ctx context.Context) (context.Context, error) {
	for k, v := range i.envVars {
		if err := os.Setenv(k, v); err != nil {
			return ctx, fmt.Errorf("failed to set %s: %w", k, err)
		}
	}
	return ctx, nil
}

// InitPostgresContainer starts a throwaway Postgres server and points the
// DB_HOST and DB_PORT variables at it.
type InitPostgresContainer struct {
	container testcontainers.Container
}

func (i *InitPostgresContainer) Initialize(ctx context.Context) (context.Context, error) {
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "catalog",
				"POSTGRES_PASSWORD": "catalog",
				"POSTGRES_DB":       "catalogdb",
			},
			WaitingFor: wait.NewLogStrategy("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return ctx, fmt.Errorf("failed to start postgres container: %w", err)
	}
	i.container = c

	host, err := c.Host(ctx)
	if err != nil {
		return ctx, err
	}
	port, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return ctx, err
	}

	env := &initEnvVars{envVars: map[string]string{
		"DB_HOST": host,
		"DB_PORT": port.Port(),
	}}
	return env.Initialize(ctx)
}

func (i *InitPostgresContainer) Close() {
	if i.container != nil {
		cancelCtx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()

		if err := i.container.Terminate(cancelCtx); err != nil {
			log.Printf("failed to stop postgres container: %v", err)
		}
	}
}
