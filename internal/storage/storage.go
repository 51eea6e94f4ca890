package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

// Record keys. Each holds one independently serialized value.
const (
	KeyProfile     = "profile"
	KeyLoggedIn    = "loggedIn"
	KeyProgressLog = "progressLog"
)

// Store is a plain key/value medium. Callers serialize values themselves.
// Get reports ok == false for an absent key.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
}

// SQLStore keeps records in a single kv table, either in a local SQLite file
// or in a remote libsql database.
type SQLStore struct {
	DB *sql.DB
}

var remoteSchemes = map[string]bool{
	"libsql": true,
	"http":   true,
	"https":  true,
	"ws":     true,
	"wss":    true,
}

// Open connects to the database named by connectionString and creates the
// schema if needed. Remote URLs go through the libsql driver, anything else
// is treated as a local SQLite path.
func Open(connectionString, authToken string) (*SQLStore, error) {
	connectionString = strings.TrimSpace(connectionString)
	if connectionString == "" {
		return nil, fmt.Errorf("database connection string is required")
	}

	driver, dsn, err := resolveDSN(connectionString, authToken)
	if err != nil {
		return nil, err
	}

	if driver == "sqlite" && dsn != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dsn), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db %s: %w", connectionString, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// One writer, no concurrent external writers.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if driver == "sqlite" {
		if err := applyPragmas(db); err != nil {
			db.Close()
			return nil, err
		}
	}

	if err := InitializeDB(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &SQLStore{DB: db}, nil
}

func resolveDSN(connectionString, authToken string) (driver, dsn string, err error) {
	if u, perr := url.Parse(connectionString); perr == nil && remoteSchemes[u.Scheme] {
		if authToken != "" {
			q := u.Query()
			q.Set("authToken", authToken)
			u.RawQuery = q.Encode()
		}
		return "libsql", u.String(), nil
	}

	path := strings.TrimPrefix(connectionString, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "", "", fmt.Errorf("invalid database path %q", connectionString)
	}
	if path != ":memory:" {
		path = filepath.Clean(path)
	}
	return "sqlite", path, nil
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}

// InitializeDB creates the record table. Safe to call on an existing database.
func InitializeDB(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS kv (
            key TEXT PRIMARY KEY,
            value TEXT NOT NULL,
            updated_at TEXT NOT NULL
        );
    `)
	return err
}

func (s *SQLStore) Get(key string) (string, bool, error) {
	var value string
	err := s.DB.QueryRowContext(context.Background(),
		"SELECT value FROM kv WHERE key = ?",
		key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLStore) Set(key, value string) error {
	_, err := s.DB.ExecContext(context.Background(),
		`INSERT INTO kv (key, value, updated_at)
			VALUES (?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET
				value = excluded.value,
				updated_at = excluded.updated_at`,
		key,
		value,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Remove(key string) error {
	if _, err := s.DB.ExecContext(context.Background(), "DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
