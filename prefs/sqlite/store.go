package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"sync"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (CGO_ENABLED=0 compatible)
)

// SQLiteStore persists preferences in a single SQLite table.
// The dbPath can be ":memory:" for an in-memory database or a file
// path for durable settings.
type SQLiteStore struct {
	mu sync.RWMutex
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-backed preference store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, err
	}

	store := &SQLiteStore{
		db: db,
	}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

// initSchema creates the settings table.
func (ss *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS explorer_prefs (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`

	_, err := ss.db.Exec(schema)
	return err
}

// Name returns the identifier name defined for this store
func (*SQLiteStore) Name() string {
	return "sqlite"
}

// Open is part of the lifecycle behaviour and gets called when opening this store.
func (ss *SQLiteStore) Open(ctx context.Context) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	return ss.db.PingContext(ctx)
}

// Close is part of the lifecycle behaviour and gets called when closing this store.
func (ss *SQLiteStore) Close(ctx context.Context) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	return ss.db.Close()
}

// Bool returns the boolean value stored under key, or def when absent.
func (ss *SQLiteStore) Bool(ctx context.Context, key string, def bool) (bool, error) {
	raw, exists, err := ss.get(ctx, key)
	if err != nil || !exists {
		return def, err
	}

	return raw == "true" || raw == "1" || raw == "yes", nil
}

// Int returns the integer value stored under key, or def when absent.
func (ss *SQLiteStore) Int(ctx context.Context, key string, def int) (int, error) {
	raw, exists, err := ss.get(ctx, key)
	if err != nil || !exists {
		return def, err
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return def, nil
	}

	return value, nil
}

// SetBool stores a boolean preference.
func (ss *SQLiteStore) SetBool(ctx context.Context, key string, value bool) error {
	return ss.set(ctx, key, strconv.FormatBool(value))
}

// SetInt stores an integer preference.
func (ss *SQLiteStore) SetInt(ctx context.Context, key string, value int) error {
	return ss.set(ctx, key, strconv.Itoa(value))
}

func (ss *SQLiteStore) get(ctx context.Context, key string) (string, bool, error) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	var value string
	err := ss.db.QueryRowContext(ctx,
		"SELECT value FROM explorer_prefs WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return value, true, nil
}

func (ss *SQLiteStore) set(ctx context.Context, key, value string) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	_, err := ss.db.ExecContext(ctx,
		`INSERT INTO explorer_prefs (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}
