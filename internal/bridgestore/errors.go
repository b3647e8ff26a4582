package bridgestore

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the bridge's store-facing failure taxonomy.
var (
	// ErrNotFound indicates a query found no row. Query-layer code never
	// returns this directly — it is folded into a recovered (nil, None)
	// reading instead — but it remains available for callers that want to
	// distinguish "no row" from other store failures.
	ErrNotFound = errors.New("not found")

	// ErrAttachFailed indicates ATTACH or DETACH DATABASE failed.
	ErrAttachFailed = errors.New("attach failed")

	// ErrSchemaMigration indicates a migration step failed; the caller is
	// left at the last successfully committed version.
	ErrSchemaMigration = errors.New("schema migration failed")

	// ErrConfiguration indicates required configuration was absent.
	ErrConfiguration = errors.New("missing configuration")
)

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

// SchemaMigrationError carries the from/to version context for a failed
// migration step.
type SchemaMigrationError struct {
	From  uint32
	To    uint32
	Cause error
}

func (e *SchemaMigrationError) Error() string {
	return fmt.Sprintf("migrate v%d -> v%d: %v", e.From, e.To, e.Cause)
}

func (e *SchemaMigrationError) Unwrap() error { return ErrSchemaMigration }

// wrapStoreError wraps a raw database/sql error with operation context,
// folding sql.ErrNoRows into ErrNotFound for consistent handling up the
// stack.
func wrapStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// isMissingTable reports whether err is a store error whose message
// indicates the referenced table does not exist. Like its counterpart in
// internal/query, it inspects the error's textual form rather than using
// errors.Is/As: the underlying driver does not expose a typed
// "no such table" error, only this message convention, and absence of a
// table should be treated identically to absence of a row.
func isMissingTable(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "no such table")
}
