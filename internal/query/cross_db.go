package query

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// DriftAlias is the alias the bridge always attaches the drift store
// under.
const DriftAlias = "drift"

// WithDriftAttached attaches driftDBPath as DriftAlias on conn, invokes fn
// with the same connection, and detaches on every exit path — normal
// return, error return, or a panic unwinding through the deferred
// Release call.
//
// Cross-attachment writes are NOT atomic under WAL (documented caveat);
// fn must never write through the drift alias — the attachment is opened
// read-only, so an attempted write fails regardless.
func WithDriftAttached[T any](conn *sql.DB, driftDBPath string, fn func(*sql.DB) (T, error)) (T, error) {
	var zero T
	guard, err := Acquire(conn, driftDBPath, DriftAlias)
	if err != nil {
		return zero, err
	}
	defer guard.Release()

	return fn(conn)
}

// CountMatchingPatterns counts rows in drift.drift_patterns whose id is in
// ids, using one positional placeholder per id. Requires the drift store
// to already be attached. An empty id list returns 0 without issuing a
// query.
func CountMatchingPatterns(conn *sql.DB, ids []string) (uint64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}
	stmt := fmt.Sprintf(
		"SELECT COUNT(*) FROM drift.drift_patterns WHERE id IN (%s)",
		strings.Join(placeholders, ", "),
	)

	var count int64
	if err := conn.QueryRow(stmt, args...).Scan(&count); err != nil {
		return 0, err
	}
	return uint64(count), nil
}

// LatestScanTimestamp returns the maximum drift_scans.created_at, or nil
// if the table does not exist or holds no rows. Requires the drift store
// to already be attached.
func LatestScanTimestamp(conn *sql.DB) (*int64, error) {
	var ts sql.NullInt64
	err := conn.QueryRow(`SELECT MAX(created_at) FROM drift.drift_scans`).Scan(&ts)
	switch {
	case err == nil:
		if !ts.Valid {
			return nil, nil
		}
		v := ts.Int64
		return &v, nil
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case isMissingTable(err):
		return nil, nil
	default:
		return nil, err
	}
}
