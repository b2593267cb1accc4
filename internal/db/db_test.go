package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_FileAppliesPragmasPerConnection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "praxis.db")
	conn, err := OpenDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	ctx := context.Background()
	// Hold one connection so the pool has to open another.
	held, err := conn.Conn(ctx)
	require.NoError(t, err)
	defer held.Close()

	var fk int
	require.NoError(t, conn.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&fk))
	assert.Equal(t, 1, fk)

	var mode string
	require.NoError(t, conn.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestDSN(t *testing.T) {
	got := dsn(MemoryPath)
	assert.Contains(t, got, ":memory:?")
	assert.Contains(t, got, "_pragma=foreign_keys%281%29")
}
