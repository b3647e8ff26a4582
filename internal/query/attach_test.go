package query

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dir := t.TempDir()
	db, err := sql.Open("sqlite3", filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func makeDriftFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "drift.db")
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("create drift file: %v", err)
	}
	if _, err := db.Exec(`CREATE TABLE drift_patterns (id TEXT PRIMARY KEY, confidence REAL, occurrence_rate REAL)`); err != nil {
		t.Fatalf("create drift_patterns: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close drift file: %v", err)
	}
	return path
}

func TestAcquireAndReleaseDetaches(t *testing.T) {
	bridgeDB := openTestDB(t)
	driftPath := makeDriftFile(t)

	guard, err := Acquire(bridgeDB, driftPath, DriftAlias)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	assertAliasAttached(t, bridgeDB, true)

	guard.Release()
	assertAliasAttached(t, bridgeDB, false)
}

func TestOverlappingAcquireFails(t *testing.T) {
	bridgeDB := openTestDB(t)
	driftPath := makeDriftFile(t)

	guard, err := Acquire(bridgeDB, driftPath, DriftAlias)
	if err != nil {
		t.Fatalf("first Acquire: %v", err)
	}
	defer guard.Release()

	if _, err := Acquire(bridgeDB, driftPath, DriftAlias); err == nil {
		t.Error("expected overlapping Acquire to fail")
	}
}

func TestAttachedDriftStoreIsReadOnly(t *testing.T) {
	bridgeDB := openTestDB(t)
	driftPath := makeDriftFile(t)

	guard, err := Acquire(bridgeDB, driftPath, DriftAlias)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	defer guard.Release()

	_, err = bridgeDB.Exec(`INSERT INTO drift.drift_patterns (id, confidence, occurrence_rate) VALUES ('p1', 0.5, 0.5)`)
	if err == nil {
		t.Fatal("expected a write through the drift alias to fail")
	}
}

func TestAcquireMissingFileFails(t *testing.T) {
	bridgeDB := openTestDB(t)
	missing := filepath.Join(t.TempDir(), "does-not-exist", "drift.db")

	if _, err := Acquire(bridgeDB, missing, DriftAlias); err == nil {
		t.Error("expected Acquire against an unreadable path to fail")
	}
}

func assertAliasAttached(t *testing.T, db *sql.DB, want bool) {
	t.Helper()
	rows, err := db.Query(`PRAGMA database_list`)
	if err != nil {
		t.Fatalf("PRAGMA database_list: %v", err)
	}
	defer rows.Close()

	found := false
	for rows.Next() {
		var seq int
		var name, file string
		if err := rows.Scan(&seq, &name, &file); err != nil {
			t.Fatalf("scan database_list row: %v", err)
		}
		if name == DriftAlias {
			found = true
		}
	}
	if found != want {
		t.Errorf("alias %q attached = %v, want %v", DriftAlias, found, want)
	}
}
