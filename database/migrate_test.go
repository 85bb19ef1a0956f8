package database

import (
	"context"
	"database/sql"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_Embedded(t *testing.T) {
	entries, err := fs.ReadDir(migrations, migrationsDir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"00001_init.sql", "00002_search.sql"}, names)

	for _, name := range names {
		data, err := fs.ReadFile(migrations, migrationsDir+"/"+name)
		require.NoError(t, err)
		assert.Contains(t, string(data), "-- +goose Up", name)
		assert.Contains(t, string(data), "-- +goose Down", name)
	}
}

func TestMigrate(t *testing.T) {
	orig := upContext
	t.Cleanup(func() { upContext = orig })

	t.Run("success", func(t *testing.T) {
		var gotDir string
		upContext = func(_ context.Context, _ *sql.DB, dir string) error {
			gotDir = dir
			return nil
		}

		require.NoError(t, Migrate(context.Background(), nil))
		assert.Equal(t, migrationsDir, gotDir)
	})

	t.Run("failure is wrapped", func(t *testing.T) {
		upContext = func(context.Context, *sql.DB, string) error { return assert.AnError }

		err := Migrate(context.Background(), nil)
		assert.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "failed to apply migrations")
	})
}
