package services_test

import (
	"fmt"
	"testing"

	"github.com/ErjonAhmetaj/FitCoachAI/config"
	"github.com/ErjonAhmetaj/FitCoachAI/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database per test. The shared-cache
// name keeps gorm's pooled connections on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.CheckIn{},
		&models.Friendship{},
	))
	return db
}

// useTestDB points the package-level connection used by the auth/user
// services at a fresh test database.
func useTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := newTestDB(t)
	prev := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = prev })
	return db
}
