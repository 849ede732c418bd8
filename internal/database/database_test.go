package database

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"kas-dashboard-svc/internal/models"
)

func TestWrapMigratesAndCloses(t *testing.T) {
	gdb, err := gorm.Open(sqlite.Open("file:database_test?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	db := Wrap(gdb)
	require.NoError(t, db.AutoMigrate())
	assert.True(t, db.DB.Migrator().HasTable(&models.ExportLog{}))

	assert.NoError(t, db.Close())
}
