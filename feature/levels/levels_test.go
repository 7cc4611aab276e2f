package levels

import (
	"testing"

	"levelcode/core/catalog"
	"levelcode/core/database"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const testLevels = `{
  "Zombie Beach": {"i": "beach", "r": 1},
  "Ancient Egypt": {"i": "egypt", "r": 2},
  "Frostbite Caves": {"i": "caves", "r": 3}
}`

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	return db
}

func newTestService(t *testing.T, db *gorm.DB, levels string) *Service {
	t.Helper()
	fs := afero.NewMemMapFs()
	if levels != "" {
		require.NoError(t, afero.WriteFile(fs, "db/levels.json", []byte(levels), 0o644))
	}
	svc, err := NewService(db, catalog.NewFSSource(fs, ""), "db/levels.json", zap.NewNop())
	require.NoError(t, err)
	if db != nil {
		require.NoError(t, svc.Migrate())
	}
	return svc
}
