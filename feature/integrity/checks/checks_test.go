package checks

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"levelcode/core/catalog"
	"levelcode/core/database"
	"levelcode/core/storage/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minio/minio-go/v7"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type testLevel struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;type:varchar(191)"`
	Code      string    `gorm:"column:code;type:text"`
	CreatedAt time.Time `gorm:"column:created_at"`
	Ignored   string
}

func (testLevel) TableName() string { return "custom_levels" }

const testManifest = `
names_file: db/names.json
levels_file: db/levels.json
modes:
  - {id: a, file: db/a.txt, min_select: 1, max_select: 1, pool: ["1", "2"]}
  - {id: b, file: db/b.txt, min_select: 1, max_select: 1, pool: ["1", "2"]}
  - {id: c, file: db/c.txt, min_select: 1, max_select: 1, pool: ["1", "2"]}
  - {id: r, remote: true, min_select: 1, max_select: 1, pool: ["1"]}
`

func newSource(t *testing.T, files map[string]string) (catalog.Source, *catalog.Manifest) {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}
	m, err := catalog.ParseManifest([]byte(testManifest))
	require.NoError(t, err)
	return catalog.NewFSSource(fs, ""), m
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}
	return gormDB, mock
}

func TestCheckSources(t *testing.T) {
	src, m := newSource(t, map[string]string{
		"catalog.yaml":  testManifest,
		"db/names.json": "{}",
		"db/a.txt":      "",
	})

	report, err := CheckSources(context.Background(), src, "catalog.yaml", m)
	require.NoError(t, err)
	assert.Equal(t, 6, report.Checked)
	assert.Equal(t, []string{"db/levels.json", "db/b.txt", "db/c.txt"}, report.Missing)
}

func TestCheckCatalogs(t *testing.T) {
	src, m := newSource(t, map[string]string{
		"db/a.txt": `"1": {"i":"x"},` + "\n" + `"2": {"i":"y"}`,
		"db/b.txt": `"1": {"i":"x"},` + "\n" + `"2": {broken},` + "\n" + `"1": {"i":"z"}`,
	})

	report := CheckCatalogs(context.Background(), src, m, zap.NewNop())

	require.Len(t, report.Catalogs, 3)
	assert.False(t, report.Healthy)

	a, b, c := report.Catalogs[0], report.Catalogs[1], report.Catalogs[2]
	assert.Equal(t, "a", a.Mode)
	assert.Equal(t, StatusOK, a.Status)
	assert.Equal(t, 2, a.Stats.Entries)

	assert.Equal(t, StatusWarning, b.Status)
	assert.Equal(t, 1, b.Stats.Entries)
	assert.Equal(t, 1, b.Stats.Dropped)
	assert.Equal(t, 1, b.Stats.Duplicates)

	assert.Equal(t, StatusError, c.Status)
	assert.NotEmpty(t, c.Error)
}

func TestCheckBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", mock.Anything, "levelcode").Return(true, nil)

		report, err := CheckBucket(ctx, m, "levelcode", "", false, zap.NewNop())
		require.NoError(t, err)
		assert.True(t, report.Exists)
		assert.False(t, report.Created)
	})

	t.Run("MissingNoFix", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", mock.Anything, "levelcode").Return(false, nil)

		report, err := CheckBucket(ctx, m, "levelcode", "", false, zap.NewNop())
		require.NoError(t, err)
		assert.False(t, report.Exists)
		m.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("MissingFixed", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", mock.Anything, "levelcode").Return(false, nil)
		m.On("MakeBucket", mock.Anything, "levelcode", minio.MakeBucketOptions{Region: "eu"}).Return(nil)

		report, err := CheckBucket(ctx, m, "levelcode", "eu", true, zap.NewNop())
		require.NoError(t, err)
		assert.True(t, report.Exists)
		assert.True(t, report.Created)
	})

	t.Run("Error", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", mock.Anything, "levelcode").Return(false, errors.New("denied"))

		_, err := CheckBucket(ctx, m, "levelcode", "", false, zap.NewNop())
		assert.ErrorContains(t, err, "denied")
	})
}

func TestCheckSchema_NilDB(t *testing.T) {
	report, err := CheckSchema(nil, testLevel{})
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckSchema_Matched(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("id", "bigint unsigned", "NO", "PRI", nil, "auto_increment").
		AddRow("name", "varchar(191)", "NO", "UNI", nil, "").
		AddRow("code", "text", "NO", "", nil, "").
		AddRow("created_at", "datetime(3)", "YES", "", nil, "")
	mock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `custom_levels`")).WillReturnRows(rows)

	report, err := CheckSchema(db, testLevel{})
	require.NoError(t, err)
	assert.True(t, report.Matched)
	assert.Equal(t, "mysql", report.Driver)
	assert.Equal(t, StatusOK, report.Tables["custom_levels"].Status)
}

func TestCheckSchema_Mismatch(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("id", "int(11)", "NO", "PRI", nil, "").
		AddRow("name", "int(11)", "NO", "", nil, "")
	mock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `custom_levels`")).WillReturnRows(rows)

	report, err := CheckSchema(db, testLevel{})
	require.NoError(t, err)
	assert.False(t, report.Matched)

	tbl := report.Tables["custom_levels"]
	assert.Equal(t, StatusError, tbl.Status)
	assert.ElementsMatch(t, []string{"code", "created_at"}, tbl.MissingColumns)
	assert.Equal(t, []string{"name: expected varchar(191), got int(11)"}, tbl.TypeMismatches)
}

func TestCheckSchema_SQLite(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&testLevel{}))

	report, err := CheckSchema(db, testLevel{})
	require.NoError(t, err)
	assert.True(t, report.Matched, "%+v", report.Tables)
}

func TestCheckSchema_InspectError(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `custom_levels`")).WillReturnError(errors.New("no access"))

	report, err := CheckSchema(db, testLevel{})
	require.NoError(t, err)
	assert.False(t, report.Matched)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "no access")
}

func TestGormSetting(t *testing.T) {
	assert.Equal(t, "id", gormSetting("column:id;primaryKey", "column"))
	assert.Equal(t, "name", gormSetting("primaryKey;column:name;type:varchar(191)", "column"))
	assert.Equal(t, "varchar(191)", gormSetting("column:name;type:varchar(191)", "type"))
	assert.Equal(t, "", gormSetting("column:id", "type"))
}
