package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Load_Defaults(t *testing.T) {
	// when
	cfg, err := Load("")
	// then
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, BackendFile, cfg.Backend)
	assert.Equal(t, "inventory.txt", cfg.InventoryPath)
	assert.Equal(t, "records.txt", cfg.RecordsPath)
	assert.Equal(t, "records.db", cfg.SQLitePath)
}

func Test_Load_File(t *testing.T) {
	// given
	path := filepath.Join(t.TempDir(), "local.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
env: prod
log_file: app.log
storage:
  backend: sqlite
  sqlite_path: data/app.db
`), 0o644))

	// when
	cfg, err := Load(path)

	// then
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "app.log", cfg.LogFile)
	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, "data/app.db", cfg.SQLitePath)
	assert.Equal(t, "inventory.txt", cfg.InventoryPath, "unset keys keep their defaults")
}

func Test_Load_EnvOverrides(t *testing.T) {
	// given
	t.Setenv("INVENTORY_PATH", "/tmp/stock.txt")
	// when
	cfg, err := Load("")
	// then
	require.NoError(t, err)
	assert.Equal(t, "/tmp/stock.txt", cfg.InventoryPath)
}

func Test_Load_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		path    string
		backend string
	}{
		{name: "missing file", path: filepath.Join(t.TempDir(), "nope.yaml")},
		{name: "unknown backend", backend: "postgres"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.backend != "" {
				t.Setenv("STORAGE_BACKEND", tc.backend)
			}
			_, err := Load(tc.path)
			assert.Error(t, err)
		})
	}
}
