package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/yigit/registrar/internal/pkg/slots"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS storage_slots (
	slot_key   TEXT PRIMARY KEY,
	slot_value TEXT NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// SQLiteSlots keeps slots in a single SQLite table
type SQLiteSlots struct {
	db *sql.DB
}

// NewSQLiteSlots opens (and creates if needed) the database at path
func NewSQLiteSlots(path string) (*SQLiteSlots, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	database, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// One connection keeps :memory: databases shared and serializes writers
	database.SetMaxOpenConns(1)

	if _, err := database.Exec(sqliteSchema); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create storage_slots table: %w", err)
	}

	return &SQLiteSlots{db: database}, nil
}

// Load returns the stored value of key
func (s *SQLiteSlots) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT slot_value FROM storage_slots WHERE slot_key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("error loading slot %s: %w", key, err)
	}
	return []byte(value), true, nil
}

// Save upserts the value of key
func (s *SQLiteSlots) Save(ctx context.Context, key string, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO storage_slots (slot_key, slot_value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(slot_key) DO UPDATE SET slot_value = excluded.slot_value, updated_at = excluded.updated_at`,
		key, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("error saving slot %s: %w", key, err)
	}
	return nil
}

// Close closes the database
func (s *SQLiteSlots) Close() error {
	return s.db.Close()
}

var _ slots.Store = (*SQLiteSlots)(nil)
