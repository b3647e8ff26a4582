// Package query implements the bridge's read-only access to the drift
// store: attaching it onto the bridge connection, the ten point-lookup
// evidence queries, and the aggregate helpers that run while it is
// attached. Nothing here ever writes through the drift alias.
package query

import (
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
)

// ErrAttachFailed is returned (wrapped with path/alias/reason) when an
// ATTACH or DETACH statement fails.
var ErrAttachFailed = fmt.Errorf("attach failed")

// attachedAliases tracks, per *sql.DB, which aliases currently have a live
// guard. The bridge's single-connection store (bridgestore.Open sets
// SetMaxOpenConns(1)) makes ATTACH/DETACH visible to every subsequent
// statement on that DB, so a second concurrent Acquire for the same alias
// must fail fast rather than silently interleave with the first.
var (
	attachedMu sync.Mutex
	attached   = map[*sql.DB]map[string]bool{}
)

// AttachGuard represents a live `ATTACH DATABASE <path> AS <alias>`
// binding on a connection. Acquire opens it; Release closes it. Callers
// must defer Release immediately after a successful Acquire so the alias
// is torn down on every exit path, including a panic unwinding through
// the deferred call.
type AttachGuard struct {
	db    *sql.DB
	alias string
	path  string
}

// Acquire attaches path onto db under alias, read-only: any statement that
// writes through the alias fails at the SQLite layer. Fails if the file
// cannot be attached (missing, locked, malformed) or if alias is already
// attached by a live guard on the same db.
func Acquire(db *sql.DB, path, alias string) (*AttachGuard, error) {
	attachedMu.Lock()
	if attached[db] == nil {
		attached[db] = map[string]bool{}
	}
	if attached[db][alias] {
		attachedMu.Unlock()
		return nil, &AttachFailedError{Path: path, Alias: alias, Reason: fmt.Errorf("alias %q already attached on this connection", alias)}
	}
	attached[db][alias] = true
	attachedMu.Unlock()

	stmt := fmt.Sprintf("ATTACH DATABASE ? AS %s", alias)
	uri := "file:" + path + "?mode=ro"
	if _, err := db.Exec(stmt, uri); err != nil {
		attachedMu.Lock()
		delete(attached[db], alias)
		attachedMu.Unlock()
		return nil, &AttachFailedError{Path: path, Alias: alias, Reason: err}
	}

	slog.Info("drift store attached", "component", "query", "alias", alias, "path", path)
	return &AttachGuard{db: db, alias: alias, path: path}, nil
}

// Release detaches the guard's alias. Safe to call at most once; a
// DETACH failure is logged, never returned, so it can never mask the
// primary error that triggered release.
func (g *AttachGuard) Release() {
	if g == nil {
		return
	}
	stmt := fmt.Sprintf("DETACH DATABASE %s", g.alias)
	if _, err := g.db.Exec(stmt); err != nil {
		slog.Warn("drift store detach failed", "component", "query", "alias", g.alias, "path", g.path, "error", err)
	}
	attachedMu.Lock()
	delete(attached[g.db], g.alias)
	attachedMu.Unlock()
}

// AttachFailedError carries the path/alias context for ErrAttachFailed.
type AttachFailedError struct {
	Path   string
	Alias  string
	Reason error
}

func (e *AttachFailedError) Error() string {
	return fmt.Sprintf("attach %s as %s: %v", e.Path, e.Alias, e.Reason)
}

func (e *AttachFailedError) Unwrap() error { return ErrAttachFailed }
