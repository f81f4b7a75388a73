package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/soulverse/profile-server/internal/database"
	"github.com/soulverse/profile-server/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))
	return db
}

// seedComment inserts a comment directly, bypassing the service, so tests can
// control counters and timestamps.
func seedComment(t *testing.T, db *gorm.DB, c models.Comment) models.Comment {
	t.Helper()

	if c.ProfileID == 0 {
		c.ProfileID = 1
	}
	if c.AuthorID == "" {
		c.AuthorID = "user1"
	}
	if c.AuthorName == "" {
		c.AuthorName = "John Doe"
	}
	if c.Content == "" {
		c.Content = "seed comment"
	}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func at(offset time.Duration) time.Time {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return base.Add(offset)
}
