package bridgestore

import (
	"database/sql"
	"errors"
	"log/slog"
)

// CurrentVersion is the bridge schema's build-time target version.
// Bump when adding a new migration step; never edit a committed step.
const CurrentVersion uint32 = 1

// GetSchemaVersion resolves the bridge store's current schema version
// without running any migration:
//
//  1. bridge_metrics table absent  -> 0
//  2. most-recent schema_version marker row present -> that value
//  3. table present but no marker, bridge_memories exists -> 1 (retroactive)
//  4. table present but no marker, bridge_memories absent -> 0
func GetSchemaVersion(db *sql.DB) (uint32, error) {
	exists, err := tableExists(db, "bridge_metrics")
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, nil
	}

	var version uint32
	err = db.QueryRow(
		`SELECT CAST(metric_value AS INTEGER) FROM bridge_metrics
		 WHERE metric_name = 'schema_version' ORDER BY recorded_at DESC LIMIT 1`,
	).Scan(&version)
	switch {
	case err == nil:
		return version, nil
	case errors.Is(err, sql.ErrNoRows):
		hasMemories, err := tableExists(db, "bridge_memories")
		if err != nil {
			return 0, err
		}
		if hasMemories {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, wrapStoreError("get schema version", err)
	}
}

func tableExists(db *sql.DB, name string) (bool, error) {
	var exists bool
	err := db.QueryRow(
		`SELECT COUNT(*) > 0 FROM sqlite_master WHERE type='table' AND name=?`,
		name,
	).Scan(&exists)
	if err != nil {
		return false, wrapStoreError("check table exists", err)
	}
	return exists, nil
}

func setSchemaVersion(db *sql.DB, version uint32) error {
	_, err := db.Exec(
		`INSERT INTO bridge_metrics (metric_name, metric_value) VALUES ('schema_version', ?)`,
		version,
	)
	return wrapStoreError("set schema version", err)
}

// migrationStep is one forward-only schema transition. Steps are applied
// strictly in ascending order and never edited once released; a new
// version bump is always a new step appended to the slice in Migrate.
type migrationStep struct {
	from, to uint32
	apply    func(db *sql.DB) error
}

// Migrate brings the bridge store up to CurrentVersion, idempotently.
// Returns the version the store ends at. A failed step aborts migration
// and leaves the store at the last successfully committed version.
func Migrate(db *sql.DB) (uint32, error) {
	current, err := GetSchemaVersion(db)
	if err != nil {
		return 0, err
	}
	if current >= CurrentVersion {
		return current, nil
	}

	steps := []migrationStep{
		{from: 0, to: 1, apply: migrateV0toV1},
	}

	for _, step := range steps {
		if current != step.from {
			continue
		}
		slog.Info("bridge schema migration starting", "component", "bridgestore", "from", step.from, "to", step.to)
		if err := step.apply(db); err != nil {
			return current, &SchemaMigrationError{From: step.from, To: step.to, Cause: err}
		}
		current = step.to
	}

	final, err := GetSchemaVersion(db)
	if err != nil {
		return current, err
	}
	slog.Info("bridge schema migration complete", "component", "bridgestore", "version", final)
	return final, nil
}

func migrateV0toV1(db *sql.DB) error {
	if _, err := db.Exec(bridgeTablesV1); err != nil {
		return wrapStoreError("apply v0->v1 tables", err)
	}
	if err := setSchemaVersion(db, 1); err != nil {
		return err
	}
	_, err := db.Exec(
		`INSERT INTO bridge_event_log (event_type, memory_type) VALUES ('schema_migration', 'v0_to_v1')`,
	)
	return wrapStoreError("log v0->v1 migration", err)
}
