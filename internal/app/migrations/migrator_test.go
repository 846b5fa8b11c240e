package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_BundledSchema(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	m := NewMigrator(db)
	require.NoError(t, m.Migrate(ctx))
	require.NoError(t, m.Migrate(ctx), "second run is a no-op")

	_, err := db.ExecContext(ctx, `INSERT INTO kv_store (key, value, updated_at) VALUES ('k', 'v', 0)`)
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM schema_migrations`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestMigrate_AppliesInOrderAndStopsOnError(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	files := fstest.MapFS{
		"m/002_add_col.sql": {Data: []byte(`ALTER TABLE things ADD COLUMN label TEXT;`)},
		"m/001_things.sql":  {Data: []byte(`CREATE TABLE things (id INTEGER PRIMARY KEY);`)},
		"m/readme.txt":      {Data: []byte(`ignored`)},
	}
	require.NoError(t, NewMigratorFS(db, files, "m").Migrate(ctx))

	_, err := db.ExecContext(ctx, `INSERT INTO things (id, label) VALUES (1, 'x')`)
	require.NoError(t, err)

	files["m/003_broken.sql"] = &fstest.MapFile{Data: []byte(`NOT SQL AT ALL`)}
	err = NewMigratorFS(db, files, "m").Migrate(ctx)
	require.Error(t, err)

	applied, err := NewMigratorFS(db, files, "m").isMigrationApplied(ctx, "003")
	require.NoError(t, err)
	assert.False(t, applied)
}
