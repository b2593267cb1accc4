// Package testutil holds database setup, failure injection and fixture
// builders shared by the package tests.
package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/praxis/internal/db"
	"github.com/stretchr/testify/require"
)

// NewTestDB opens a migrated in-memory database with the seeded therapy
// catalog. Each call gets its own database, closed with the test.
func NewTestDB(t testing.TB) *sql.DB {
	t.Helper()
	conn, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err, "opening test database")
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// NewTestUoW wraps conn in the production unit of work.
func NewTestUoW(conn *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(conn)
}

// CountRows returns the number of rows in table.
func CountRows(t testing.TB, conn *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, conn.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}
