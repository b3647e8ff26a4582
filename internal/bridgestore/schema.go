package bridgestore

// bridgeTablesV1 installs the five bridge-owned tables. Executed once by
// the v0->v1 migration step (migrations.go). Never edited after release —
// later schema changes are new migration steps, never a rewrite of this
// constant.
const bridgeTablesV1 = `
CREATE TABLE IF NOT EXISTS bridge_memories (
	id         TEXT PRIMARY KEY,
	claim      TEXT NOT NULL,
	sources    TEXT NOT NULL DEFAULT '[]',
	created_at TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS bridge_event_log (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	event_type  TEXT NOT NULL,
	memory_type TEXT,
	created_at  TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS bridge_metrics (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	metric_name  TEXT NOT NULL,
	metric_value REAL NOT NULL,
	recorded_at  TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS bridge_grounding_results (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	memory_id   TEXT NOT NULL REFERENCES bridge_memories(id),
	verdict     TEXT NOT NULL,
	score       REAL NOT NULL,
	checked_at  TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS bridge_links (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	memory_id   TEXT NOT NULL REFERENCES bridge_memories(id),
	target_id   TEXT NOT NULL,
	link_type   TEXT NOT NULL,
	created_at  TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_bridge_metrics_name_recorded
	ON bridge_metrics(metric_name, recorded_at DESC);

CREATE INDEX IF NOT EXISTS idx_bridge_grounding_results_memory
	ON bridge_grounding_results(memory_id);
`
