package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/justsurfingit/job-portal-api/internal/database"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(context.Background(), database.DriverSQLite,
		filepath.Join(t.TempDir(), "portal.sqlite"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
