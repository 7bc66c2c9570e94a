package databases_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linesmerrill/storefront-api/config"
	"github.com/linesmerrill/storefront-api/databases"
)

func TestOpenMemory(t *testing.T) {
	kv, closeFn, err := databases.Open(context.Background(), &config.Config{StoreBackend: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &databases.MemoryStore{}, kv)
	assert.NoError(t, closeFn())
}

func TestOpenSQLite(t *testing.T) {
	kv, closeFn, err := databases.Open(context.Background(), &config.Config{
		StoreBackend: "sqlite",
		SQLitePath:   filepath.Join(t.TempDir(), "open.db"),
	})
	require.NoError(t, err)
	assert.IsType(t, &databases.SQLiteStore{}, kv)
	assert.NoError(t, closeFn())
}

func TestOpenUnknownBackend(t *testing.T) {
	_, closeFn, err := databases.Open(context.Background(), &config.Config{StoreBackend: "floppy"})
	assert.EqualError(t, err, `unknown store backend "floppy"`)
	assert.NotNil(t, closeFn)
}
