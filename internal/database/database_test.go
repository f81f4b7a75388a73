package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/soulverse/profile-server/internal/database"
	"github.com/soulverse/profile-server/internal/models"
)

// Spins up a disposable Postgres and exercises the full connection
// lifecycle: connect, migrate, seed, health, close.
func TestDatabaseLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed database test in short mode")
	}

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("profiles"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, container.Terminate(ctx))
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	svc, err := database.NewFromDSN(dsn)
	require.NoError(t, err)

	stats := svc.Health()
	assert.Equal(t, "up", stats["status"])

	// Default profile is seeded on a fresh database, exactly once.
	var profile models.Profile
	require.NoError(t, svc.GetDB().First(&profile, 1).Error)
	assert.Equal(t, "A Martinez", profile.Name)

	require.NoError(t, database.Migrate(svc.GetDB()))
	var count int64
	require.NoError(t, svc.GetDB().Model(&models.Profile{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	require.NoError(t, svc.Close())
}
