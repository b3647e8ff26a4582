package query

import (
	"database/sql"
	"errors"
	"testing"
)

var errInjected = errors.New("injected failure")

func TestCountMatchingPatternsEmptyIDsNoQuery(t *testing.T) {
	// No drift_patterns table: any query issued would fail with
	// "no such table", so a nil error shows none was issued.
	driftPath := seedDriftDB(t, `CREATE TABLE placeholder (x INTEGER);`)
	conn, release := attachDrift(t, driftPath)
	defer release()

	count, err := CountMatchingPatterns(conn, nil)
	if err != nil {
		t.Fatalf("CountMatchingPatterns: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 for empty id list, got %d", count)
	}
}

func TestCountMatchingPatterns(t *testing.T) {
	driftPath := seedDriftDB(t, `
		CREATE TABLE drift_patterns (id TEXT PRIMARY KEY);
		INSERT INTO drift_patterns (id) VALUES ('p1'), ('p2'), ('p3');
	`)
	conn, release := attachDrift(t, driftPath)
	defer release()

	count, err := CountMatchingPatterns(conn, []string{"p1", "p3", "p9"})
	if err != nil {
		t.Fatalf("CountMatchingPatterns: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 matches, got %d", count)
	}
}

func TestLatestScanTimestampMissingTable(t *testing.T) {
	driftPath := seedDriftDB(t, `CREATE TABLE placeholder (x INTEGER);`)
	conn, release := attachDrift(t, driftPath)
	defer release()

	ts, err := LatestScanTimestamp(conn)
	if err != nil {
		t.Fatalf("LatestScanTimestamp: %v", err)
	}
	if ts != nil {
		t.Errorf("expected nil timestamp, got %v", *ts)
	}
}

func TestLatestScanTimestamp(t *testing.T) {
	driftPath := seedDriftDB(t, `
		CREATE TABLE drift_scans (created_at INTEGER);
		INSERT INTO drift_scans (created_at) VALUES (100), (300), (200);
	`)
	conn, release := attachDrift(t, driftPath)
	defer release()

	ts, err := LatestScanTimestamp(conn)
	if err != nil {
		t.Fatalf("LatestScanTimestamp: %v", err)
	}
	if ts == nil || *ts != 300 {
		t.Errorf("got %v, want 300", ts)
	}
}

func TestWithDriftAttachedDetachesOnError(t *testing.T) {
	bridgeDB := openTestDB(t)
	driftPath := makeDriftFile(t)

	_, err := WithDriftAttached(bridgeDB, driftPath, func(*sql.DB) (struct{}, error) {
		return struct{}{}, errInjected
	})
	if err == nil {
		t.Fatal("expected injected error to propagate")
	}
	assertAliasAttached(t, bridgeDB, false)
}
