// Package bridgestore owns the bridge's own local store: opening it,
// versioning its schema, and the SQL it executes against itself. It never
// opens or reads the drift store directly — see internal/query for that.
package bridgestore

import (
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// Open opens the bridge store at path and configures it for the bridge's
// single-writer usage pattern: exactly one pooled connection, so that an
// attach guard acquired against it (internal/query.AttachGuard) can never
// be raced by a second connection from the same *sql.DB pool.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("bridge store: %w: bridge_db_path", ErrConfiguration)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, wrapStoreError("open bridge store", err)
	}
	db.SetMaxOpenConns(1)

	if err := configureConnection(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// configureConnection sets the pragmas the bridge relies on: WAL so readers
// never block the single writer, foreign keys so link rows can't dangle,
// and a busy timeout so concurrent CLI invocations back off instead of
// failing immediately.
func configureConnection(db *sql.DB) error {
	stmts := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return wrapStoreError("configure connection", err)
		}
	}
	return nil
}
