package postgres

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/nyxa-games/emberdeep/internal/database/schema"
)

var (
	testPoolOnce sync.Once
	testPool     *pgxpool.Pool
	testPoolErr  error
)

// sharedTestPool starts one Postgres container for the whole package and
// applies the schema and seed content to it. Tests that reach it when Docker
// is unavailable skip instead of failing.
func sharedTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testPoolOnce.Do(func() {
		testPool, testPoolErr = startTestDatabase()
	})

	if testPoolErr != nil {
		t.Skipf("Skipping integration test: %v", testPoolErr)
	}

	return testPool
}

func startTestDatabase() (pool *pgxpool.Pool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered from container panic (likely Docker issue): %v", r)
		}
	}()

	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	pool, err = pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if _, err := pool.Exec(ctx, schema.SchemaSQL); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	if _, err := pool.Exec(ctx, schema.SeedSQL); err != nil {
		return nil, fmt.Errorf("failed to apply seed content: %w", err)
	}

	return pool, nil
}

// createTestProfile inserts a throwaway profile with a unique username
func createTestProfile(t *testing.T, pool *pgxpool.Pool) string {
	t.Helper()

	repo := NewProfileRepository(pool)
	username := fmt.Sprintf("tester-%d", time.Now().UnixNano())

	profile, err := repo.CreateProfile(context.Background(), username, "warrior")
	if err != nil {
		t.Fatalf("failed to create test profile: %v", err)
	}

	return profile.ID
}
