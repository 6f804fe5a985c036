// Package iohistory persists analysis history to durable storage.
package iohistory

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql" // MySQL driver and DSN parsing
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	"github.com/vitalscan/vitalscan/internal/contract"
	"github.com/vitalscan/vitalscan/schema"
	_ "modernc.org/sqlite" // SQLite driver
)

// kvTable is the name of the key/value table backing history storage.
const kvTable = "vitals_kv"

// KVStoreImpl handles durable key/value storage using various database backends.
type KVStoreImpl struct {
	db         *sql.DB
	backend    schema.DatabaseBackend
	driverName string
	connStr    string
}

var _ contract.KeyValueStore = &KVStoreImpl{} // Compile-time check

// NewKeyValueStore initializes and returns a new KeyValueStore based on the backend type.
func NewKeyValueStore(backend schema.DatabaseBackend, connStr string) (contract.KeyValueStore, error) {
	var db *sql.DB
	var err error
	var driverName string

	switch backend {
	case schema.SQLiteBackend:
		driverName = "sqlite"
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetHistoryDBFilePath()
		}
		db, err = sql.Open(driverName, dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite history storage at %q: %w. Ensure the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		driverName = "mysql"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL history storage: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=mysecretpassword dbname=postgres
		driverName = "pgx"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL history storage: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.NoneBackend:
		// Return a no-op store for disabled persistence
		return &KVStoreImpl{backend: backend}, nil

	default:
		return nil, fmt.Errorf("unsupported history backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}

	// Ping to verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	// Create the table schema
	if _, err := db.Exec(getCreateTableQuery(backend)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", kvTable, err)
	}

	return &KVStoreImpl{
		db:         db,
		backend:    backend,
		driverName: driverName,
		connStr:    connStr,
	}, nil
}

// getCreateTableQuery returns the CREATE TABLE query for the given backend.
func getCreateTableQuery(backend schema.DatabaseBackend) string {
	// VARCHAR(255) keys so the primary key works across all three backends.
	return fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			store_key VARCHAR(255) PRIMARY KEY,
			store_value TEXT NOT NULL,
			updated_at BIGINT NOT NULL
		);
	`, kvTable)
}

// Get retrieves a value by key from the store.
func (ks *KVStoreImpl) Get(key string) (string, error) {
	// Return not found error for NoneBackend
	if ks.backend == schema.NoneBackend || ks.db == nil {
		return "", sql.ErrNoRows
	}

	var value string
	placeholder := ks.getPlaceholder(1)
	query := fmt.Sprintf(`SELECT store_value FROM %s WHERE store_key = %s`, kvTable, placeholder)
	if err := ks.db.QueryRow(query, key).Scan(&value); err != nil {
		return "", err
	}
	return value, nil
}

// Set inserts or replaces a key/value pair in the store.
func (ks *KVStoreImpl) Set(key, value string) error {
	// Skip for NoneBackend
	if ks.backend == schema.NoneBackend || ks.db == nil {
		return nil
	}

	_, err := ks.db.Exec(ks.getUpsertQuery(), key, value, time.Now().Unix())
	return err
}

// Delete removes a key from the store. Deleting a missing key is not an error.
func (ks *KVStoreImpl) Delete(key string) error {
	if ks.backend == schema.NoneBackend || ks.db == nil {
		return nil
	}

	placeholder := ks.getPlaceholder(1)
	query := fmt.Sprintf(`DELETE FROM %s WHERE store_key = %s`, kvTable, placeholder)
	_, err := ks.db.Exec(query, key)
	return err
}

// getPlaceholder returns the parameter placeholder for the backend.
func (ks *KVStoreImpl) getPlaceholder(n int) string {
	switch ks.backend {
	case schema.PostgreSQLBackend:
		return fmt.Sprintf("$%d", n)
	default: // SQLite and MySQL
		return "?"
	}
}

// getUpsertQuery returns the UPSERT query for the backend.
func (ks *KVStoreImpl) getUpsertQuery() string {
	switch ks.backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (store_key, store_value, updated_at) VALUES (?, ?, ?) AS new
			ON DUPLICATE KEY UPDATE store_value = new.store_value, updated_at = new.updated_at`, kvTable)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (store_key, store_value, updated_at) VALUES ($1, $2, $3)
			ON CONFLICT (store_key) DO UPDATE SET store_value = EXCLUDED.store_value, updated_at = EXCLUDED.updated_at`, kvTable)

	default: // SQLite
		return fmt.Sprintf(`INSERT OR REPLACE INTO %s (store_key, store_value, updated_at) VALUES (?, ?, ?)`, kvTable)
	}
}

// Status returns status information about the storage backend. Record
// counts and timestamps are filled in by the history store, which knows
// the snapshot layout; here we report connection and size facts.
func (ks *KVStoreImpl) Status() (schema.StorageStatus, error) {
	status := schema.StorageStatus{
		Backend:   string(ks.backend),
		Connected: ks.db != nil,
	}

	if ks.backend == schema.NoneBackend || ks.db == nil {
		return status, nil
	}

	// Snapshot size: sum of stored values
	sizeQuery := fmt.Sprintf("SELECT COALESCE(SUM(LENGTH(store_value)), 0) FROM %s", kvTable)
	if err := ks.db.QueryRow(sizeQuery).Scan(&status.SnapshotBytes); err != nil {
		return status, fmt.Errorf("failed to get snapshot size: %w", err)
	}

	return status, nil
}

// Close closes the underlying DB connection.
func (ks *KVStoreImpl) Close() error {
	if ks.db != nil {
		return ks.db.Close()
	}
	return nil
}

// BackendDatabaseName extracts the database name from a MySQL DSN, for
// status display. Returns empty for other backends or unparsable DSNs.
func BackendDatabaseName(backend schema.DatabaseBackend, connStr string) string {
	if backend != schema.MySQLBackend {
		return ""
	}
	cfg, err := mysql.ParseDSN(connStr)
	if err != nil {
		return ""
	}
	return cfg.DBName
}
