package main

import (
	"database/sql"
	"fmt"
	"sort"

	"github.com/Zeeeepa/drift/internal/grounding"
	"github.com/Zeeeepa/drift/internal/query"
	"github.com/Zeeeepa/drift/internal/types"
)

// evaluateMemory runs the point lookup for each declared source and
// scores the resulting readings. Requires the drift store to already be
// attached on conn.
func evaluateMemory(conn *sql.DB, sourceKeys map[types.GroundingDataSource]string, th grounding.Thresholds, fpGapsScale int) (grounding.Result, error) {
	sources := make([]types.GroundingDataSource, 0, len(sourceKeys))
	for s := range sourceKeys {
		sources = append(sources, s)
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i] < sources[j] })

	readings := make([]grounding.Reading, 0, len(sources))
	for _, source := range sources {
		key := sourceKeys[source]
		reading, err := queryReading(conn, source, key, fpGapsScale)
		if err != nil {
			return grounding.Result{}, err
		}
		readings = append(readings, reading)
	}
	return grounding.Evaluate(readings, th), nil
}

func queryReading(conn *sql.DB, source types.GroundingDataSource, key string, fpGapsScale int) (grounding.Reading, error) {
	r := grounding.Reading{Source: source}

	if !source.Valid() {
		return r, fmt.Errorf("unknown grounding data source %q", source)
	}
	if !source.Queryable() {
		// Conventions, Taint, CallGraph, Security: declared sources with
		// no dedicated drift table. They still count toward n, never k.
		return r, nil
	}

	switch source {
	case types.SourcePatterns:
		v, ok, err := query.PatternConfidence(conn, key)
		r.Value, r.Present = v, ok
		return r, err
	case types.SourceConstraints:
		v, ok, err := query.ConstraintVerified(conn, key)
		r.Value, r.Present = grounding.NormalizeBool(v), ok
		return r, err
	case types.SourceCoupling:
		v, ok, err := query.CouplingMetric(conn, key)
		r.Value, r.Present = v, ok
		return r, err
	case types.SourceDNA:
		v, ok, err := query.DNAHealth(conn, key)
		r.Value, r.Present = v, ok
		return r, err
	case types.SourceTestTopology:
		v, ok, err := query.TestCoverage(conn, key)
		r.Value, r.Present = v, ok
		return r, err
	case types.SourceErrorHandling:
		v, ok, err := query.ErrorHandlingGaps(conn, key)
		r.Value, r.Present = grounding.NormalizeGapCount(v, fpGapsScale), ok
		return r, err
	case types.SourceDecisions:
		v, ok, err := query.DecisionEvidence(conn, key)
		r.Value, r.Present = v, ok
		return r, err
	case types.SourceBoundaries:
		v, ok, err := query.BoundaryData(conn, key)
		r.Value, r.Present = v, ok
		return r, err
	default:
		// Unreachable: Queryable() above already filtered to exactly the
		// sources handled here.
		return r, fmt.Errorf("no query wired for source %q", source)
	}
}
