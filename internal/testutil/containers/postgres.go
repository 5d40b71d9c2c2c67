//go:build integration

package containers

import (
	"context"
	"database/sql"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"pouch-tracking-service/internal/adapters/repositories"
	"pouch-tracking-service/internal/platform/db"
)

// PostgresContainer wraps a testcontainers Postgres instance with the
// service schema already applied.
type PostgresContainer struct {
	Container testcontainers.Container
	DSN       string
	DB        *sql.DB
}

// NewPostgresContainer starts Postgres, opens a pool and runs InitSchema.
// The container is terminated when the test finishes.
func NewPostgresContainer(t testing.TB) *PostgresContainer {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("pouches"),
		tcpostgres.WithUsername("pouches"),
		tcpostgres.WithPassword("pouches"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = testcontainers.TerminateContainer(container)
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	conn, err := db.Open(ctx, dsn)
	if err != nil {
		_ = testcontainers.TerminateContainer(container)
		t.Fatalf("failed to open postgres: %v", err)
	}

	if err := repositories.InitSchema(ctx, conn); err != nil {
		_ = conn.Close()
		_ = testcontainers.TerminateContainer(container)
		t.Fatalf("failed to init schema: %v", err)
	}

	t.Cleanup(func() {
		_ = conn.Close()
		_ = testcontainers.TerminateContainer(container)
	})

	return &PostgresContainer{Container: container, DSN: dsn, DB: conn}
}
