package iohistory

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalscan/vitalscan/schema"
)

func newSQLiteStore(t *testing.T) *KVStoreImpl {
	t.Helper()
	store, err := NewKeyValueStore(schema.SQLiteBackend, filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store.(*KVStoreImpl)
}

func TestSQLiteSetGet(t *testing.T) {
	store := newSQLiteStore(t)

	require.NoError(t, store.Set("alpha", "one"))
	value, err := store.Get("alpha")
	require.NoError(t, err)
	assert.Equal(t, "one", value)
}

func TestSQLiteGetMissing(t *testing.T) {
	store := newSQLiteStore(t)

	_, err := store.Get("missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestSQLiteUpsertOverwrites(t *testing.T) {
	store := newSQLiteStore(t)

	require.NoError(t, store.Set("alpha", "one"))
	require.NoError(t, store.Set("alpha", "two"))

	value, err := store.Get("alpha")
	require.NoError(t, err)
	assert.Equal(t, "two", value)
}

func TestSQLiteDelete(t *testing.T) {
	store := newSQLiteStore(t)

	require.NoError(t, store.Set("alpha", "one"))
	require.NoError(t, store.Delete("alpha"))
	_, err := store.Get("alpha")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	// Deleting a missing key is not an error.
	require.NoError(t, store.Delete("alpha"))
}

func TestSQLiteStatus(t *testing.T) {
	store := newSQLiteStore(t)

	status, err := store.Status()
	require.NoError(t, err)
	assert.Equal(t, string(schema.SQLiteBackend), status.Backend)
	assert.True(t, status.Connected)
	assert.Equal(t, int64(0), status.SnapshotBytes)

	require.NoError(t, store.Set("alpha", "12345"))
	status, err = store.Status()
	require.NoError(t, err)
	assert.Equal(t, int64(5), status.SnapshotBytes)
}

func TestNoneBackendIsSilent(t *testing.T) {
	store, err := NewKeyValueStore(schema.NoneBackend, "")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	require.NoError(t, store.Set("alpha", "one"))
	_, err = store.Get("alpha")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, store.Delete("alpha"))

	status, err := store.Status()
	require.NoError(t, err)
	assert.False(t, status.Connected)
}

func TestUnsupportedBackend(t *testing.T) {
	_, err := NewKeyValueStore(schema.DatabaseBackend("redis"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported history backend")
}

func TestBackendDatabaseName(t *testing.T) {
	tests := []struct {
		name     string
		backend  schema.DatabaseBackend
		connStr  string
		expected string
	}{
		{name: "mysql dsn", backend: schema.MySQLBackend, connStr: "user:pass@tcp(localhost:3306)/vitals", expected: "vitals"},
		{name: "mysql unparsable", backend: schema.MySQLBackend, connStr: "not a dsn", expected: ""},
		{name: "postgres ignored", backend: schema.PostgreSQLBackend, connStr: "host=localhost dbname=vitals", expected: ""},
		{name: "sqlite ignored", backend: schema.SQLiteBackend, connStr: "/tmp/vitals.db", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BackendDatabaseName(tt.backend, tt.connStr))
		})
	}
}

// A history store over real SQLite storage survives reopening the file.
func TestSQLiteHistoryPersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")

	first, err := NewKeyValueStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	store := NewHistoryStore(first)
	require.NoError(t, store.Append(testRecord("https://durable.example", 0)))
	require.NoError(t, first.Close())

	second, err := NewKeyValueStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	reloaded := NewHistoryStore(second).Load()
	require.Len(t, reloaded, 1)
	assert.Equal(t, "https://durable.example", reloaded[0].URL)
}
