package query

import (
	"database/sql"
	"errors"
	"strings"
)

// queryOptionalFloat runs a single-row, single-column float lookup and
// folds "no row" and "no such table" into (0, false, nil), the uniform
// error policy shared by all ten point lookups below.
func queryOptionalFloat(db *sql.DB, stmt string, args ...any) (float64, bool, error) {
	var v float64
	err := db.QueryRow(stmt, args...).Scan(&v)
	switch {
	case err == nil:
		return v, true, nil
	case errors.Is(err, sql.ErrNoRows):
		return 0, false, nil
	case isMissingTable(err):
		return 0, false, nil
	default:
		return 0, false, err
	}
}

func queryOptionalBool(db *sql.DB, stmt string, args ...any) (bool, bool, error) {
	var v bool
	err := db.QueryRow(stmt, args...).Scan(&v)
	switch {
	case err == nil:
		return v, true, nil
	case errors.Is(err, sql.ErrNoRows):
		return false, false, nil
	case isMissingTable(err):
		return false, false, nil
	default:
		return false, false, err
	}
}

func queryOptionalUint32(db *sql.DB, stmt string, args ...any) (uint32, bool, error) {
	var v uint32
	err := db.QueryRow(stmt, args...).Scan(&v)
	switch {
	case err == nil:
		return v, true, nil
	case errors.Is(err, sql.ErrNoRows):
		return 0, false, nil
	case isMissingTable(err):
		return 0, false, nil
	default:
		return 0, false, err
	}
}

// PatternConfidence queries drift_patterns.confidence by pattern id.
// Requires the drift store to be attached as "drift" on db.
func PatternConfidence(db *sql.DB, patternID string) (float64, bool, error) {
	return queryOptionalFloat(db, `SELECT confidence FROM drift.drift_patterns WHERE id = ?`, patternID)
}

// PatternOccurrenceRate queries drift_patterns.occurrence_rate by pattern id.
func PatternOccurrenceRate(db *sql.DB, patternID string) (float64, bool, error) {
	return queryOptionalFloat(db, `SELECT occurrence_rate FROM drift.drift_patterns WHERE id = ?`, patternID)
}

// FalsePositiveRate queries drift_violation_feedback.fp_rate by pattern id.
func FalsePositiveRate(db *sql.DB, patternID string) (float64, bool, error) {
	return queryOptionalFloat(db, `SELECT fp_rate FROM drift.drift_violation_feedback WHERE pattern_id = ?`, patternID)
}

// ConstraintVerified queries drift_constraints.verified by constraint id.
func ConstraintVerified(db *sql.DB, constraintID string) (bool, bool, error) {
	return queryOptionalBool(db, `SELECT verified FROM drift.drift_constraints WHERE id = ?`, constraintID)
}

// CouplingMetric queries drift_coupling.instability by module path.
func CouplingMetric(db *sql.DB, modulePath string) (float64, bool, error) {
	return queryOptionalFloat(db, `SELECT instability FROM drift.drift_coupling WHERE module = ?`, modulePath)
}

// DNAHealth queries drift_dna.health_score by project identifier.
func DNAHealth(db *sql.DB, project string) (float64, bool, error) {
	return queryOptionalFloat(db, `SELECT health_score FROM drift.drift_dna WHERE project = ?`, project)
}

// TestCoverage queries drift_test_topology.coverage by module path.
func TestCoverage(db *sql.DB, modulePath string) (float64, bool, error) {
	return queryOptionalFloat(db, `SELECT coverage FROM drift.drift_test_topology WHERE module = ?`, modulePath)
}

// ErrorHandlingGaps queries drift_error_handling.gap_count by module path.
func ErrorHandlingGaps(db *sql.DB, modulePath string) (uint32, bool, error) {
	return queryOptionalUint32(db, `SELECT gap_count FROM drift.drift_error_handling WHERE module = ?`, modulePath)
}

// DecisionEvidence queries drift_decisions.evidence_score by decision id.
func DecisionEvidence(db *sql.DB, decisionID string) (float64, bool, error) {
	return queryOptionalFloat(db, `SELECT evidence_score FROM drift.drift_decisions WHERE id = ?`, decisionID)
}

// BoundaryData queries drift_boundaries.boundary_score by boundary id.
func BoundaryData(db *sql.DB, boundaryID string) (float64, bool, error) {
	return queryOptionalFloat(db, `SELECT boundary_score FROM drift.drift_boundaries WHERE id = ?`, boundaryID)
}

// isMissingTable reports whether err's message indicates the referenced
// table does not exist — the drift store may pre-date a table being
// created, and absence there is not a bridge failure.
func isMissingTable(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "no such table")
}
