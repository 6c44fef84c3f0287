// Package testhelper starts a throwaway PostgreSQL for integration tests.
package testhelper

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/franken-backoffice/internal/adapter/postgres"
	"github.com/heartmarshall/franken-backoffice/migrations"
)

var (
	once      sync.Once
	sharedDSN string
	initErr   error

	// settings is a singleton row, so tests touching numbering serialize on it.
	settingsMu sync.Mutex
)

// SetupTestDB starts a shared PostgreSQL container (once per test binary),
// applies goose migrations, and returns a new pgxpool.Pool connected to it.
// The pool is closed via t.Cleanup; the container lives until the process exits.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("testhelper: skipping database test in -short mode")
	}

	once.Do(func() {
		sharedDSN, initErr = startContainerAndMigrate()
	})
	if initErr != nil {
		t.Fatalf("testhelper: failed to setup test DB: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, sharedDSN)
	if err != nil {
		t.Fatalf("testhelper: failed to create pgxpool: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
	})

	return pool
}

// LockSettings serializes tests that depend on the settings counter and
// resets the singleton to the given numbering state.
func LockSettings(t *testing.T, pool *pgxpool.Pool, prefix string, year, current int) {
	t.Helper()

	settingsMu.Lock()
	t.Cleanup(settingsMu.Unlock)

	_, err := pool.Exec(context.Background(),
		`INSERT INTO settings (id, invoice_prefix, invoice_year, invoice_current_number)
		 VALUES ('main', $1, $2, $3)
		 ON CONFLICT (id) DO UPDATE
		 SET invoice_prefix = EXCLUDED.invoice_prefix,
		     invoice_year = EXCLUDED.invoice_year,
		     invoice_current_number = EXCLUDED.invoice_current_number,
		     vat_enabled = false`,
		prefix, year, current,
	)
	if err != nil {
		t.Fatalf("testhelper: reset settings: %v", err)
	}
}

const (
	pgImage    = "postgres:17-alpine"
	pgUser     = "backoffice"
	pgPassword = "backoffice"
	pgDatabase = "backoffice_test"
)

func startContainerAndMigrate() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        pgImage,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       pgDatabase,
			},
			// postgres restarts once after initdb; the second line is the real one.
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start postgres container: %w", err)
	}

	endpoint, err := container.PortEndpoint(ctx, "5432/tcp", "")
	if err != nil {
		return "", fmt.Errorf("resolve postgres endpoint: %w", err)
	}
	dsn := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable", pgUser, pgPassword, endpoint, pgDatabase)

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := postgres.Migrate(ctx, dsn, migrations.FS, quiet); err != nil {
		return "", fmt.Errorf("migrate test database: %w", err)
	}
	return dsn, nil
}
