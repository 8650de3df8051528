// Package sqlite provides a SQLite-backed entity source for documentation
// builds. Large extractors write their entity collections to a SQLite
// database instead of a JSON dump; this package reads them back.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and creates the schema if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	conn.SetMaxOpenConns(1)

	// Verify connection
	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Set busy timeout to wait 5 seconds before failing on lock contention.
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// Enable foreign key constraints
	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	db.db = conn

	// Create schema
	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// createSchema creates the entity tables if they don't exist. Extractors
// that write through other tooling use the same layout.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS entities (
			full_name TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			kind TEXT NOT NULL,
			parent_full_name TEXT NOT NULL DEFAULT '',
			documented INTEGER NOT NULL DEFAULT 0,
			path TEXT NOT NULL DEFAULT '',
			superclass_name TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS entity_children (
			parent_full_name TEXT NOT NULL REFERENCES entities(full_name),
			child_full_name TEXT NOT NULL REFERENCES entities(full_name),
			position INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS methods (
			owner_full_name TEXT NOT NULL REFERENCES entities(full_name),
			name TEXT NOT NULL,
			summary TEXT NOT NULL DEFAULT '',
			anchor_url TEXT NOT NULL DEFAULT '',
			position INTEGER NOT NULL DEFAULT 0
		);

		CREATE INDEX IF NOT EXISTS idx_children_parent ON entity_children(parent_full_name, position);
		CREATE INDEX IF NOT EXISTS idx_methods_owner ON methods(owner_full_name, position);
	`

	_, err := db.db.Exec(schema)
	return err
}
