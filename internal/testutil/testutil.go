// Package testutil provides shared helpers for integration-leaning tests.
// Store tests skip automatically when the backing service is unavailable,
// so the default unit-test run stays hermetic.
package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	domainauth "github.com/agroconecta/console/internal/domain/auth"
)

// SetupTestRedis creates a Redis client for testing, honoring
// TEST_REDIS_ADDR. Tests are skipped if Redis is not reachable.
func SetupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr, DB: 15})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skipf("Redis not available for testing at %s: %v", addr, err)
	}

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cleanupCancel()
		_ = client.FlushDB(cleanupCtx).Err()
		_ = client.Close()
	})

	return client
}

// SetupTestPool creates a pgx pool for testing, honoring TEST_DATABASE_URL.
// Tests are skipped if Postgres is not reachable.
func SetupTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping Postgres-backed test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Skipf("Postgres not available for testing: %v", err)
	}
	if pingErr := pool.Ping(ctx); pingErr != nil {
		pool.Close()
		t.Skipf("Postgres not available for testing: %v", pingErr)
	}

	t.Cleanup(pool.Close)
	return pool
}

// NewSession builds a valid session for tests. Override fields as needed.
func NewSession(token string, role domainauth.Role, ttl time.Duration) domainauth.Session {
	return domainauth.Session{
		Token: token,
		Identity: domainauth.Identity{
			ID:     1,
			Name:   "Admin AgroConecta",
			Email:  "admin@agroconecta.com",
			Phone:  "+51987654321",
			Role:   role,
			Active: true,
		},
		ExpiresAt: time.Now().Add(ttl),
	}
}
