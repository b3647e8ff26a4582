// Package grounding maps evidence readings pulled from the drift store
// (internal/query) into a categorical verdict and numeric score for a
// memory. It holds no storage or I/O of its own — callers supply the
// readings already queried under a live drift attachment.
package grounding

import (
	"github.com/Zeeeepa/drift/internal/types"
)

// Thresholds parameterizes the verdict boundaries, left open for
// calibration rather than hardcoded.
type Thresholds struct {
	InvalidatedBelow float64 // s̄ < this -> Invalidated
	PartialAtOrAbove float64 // s̄ >= this (and < ValidatedAtOrAbove) -> Partial
	ValidatedAtOrAbove float64 // s̄ >= this -> Validated
	MinSupportFraction float64 // k/n < this -> Weak
}

// DefaultThresholds returns the recommended out-of-the-box cutoffs
// (0.25, 0.50, 0.75, 0.50).
func DefaultThresholds() Thresholds {
	return Thresholds{
		InvalidatedBelow:   0.25,
		PartialAtOrAbove:   0.50,
		ValidatedAtOrAbove: 0.75,
		MinSupportFraction: 0.50,
	}
}

// DefaultErrorHandlingGapsScale is the K constant used to invert a gap
// count into [0,1] evidence: recommended default 10, configurable.
const DefaultErrorHandlingGapsScale = 10

// Reading is one source's evidence value, already normalized to [0,1] by
// the caller (see Normalize* helpers below), or absent.
type Reading struct {
	Source  types.GroundingDataSource
	Value   float64
	Present bool
}

// NormalizeBool maps a boolean reading (e.g. constraint_verified) to [0,1].
func NormalizeBool(v bool) float64 {
	if v {
		return 1
	}
	return 0
}

// NormalizeGapCount inverts an error-handling gap count into [0,1]:
// max(0, 1 - gaps/scale).
func NormalizeGapCount(gaps uint32, scale int) float64 {
	if scale <= 0 {
		scale = DefaultErrorHandlingGapsScale
	}
	v := 1 - float64(gaps)/float64(scale)
	if v < 0 {
		return 0
	}
	return v
}

// Result is the (verdict, score) pair produced by Evaluate, plus the
// supporting counts needed to build a GroundingSnapshot.
type Result struct {
	Verdict       types.GroundingVerdict
	Score         float64
	SourceCount   int // n: sources queried
	SupportCount  int // k: sources that returned a reading
	Contradiction bool
}

// Evaluate scores a set of readings, taking the first case that applies:
//
//	n == 0                 -> NotGroundable
//	k == 0                 -> InsufficientData
//	k/n < MinSupportFraction -> Weak
//	s̄ >= ValidatedAtOrAbove  -> Validated
//	PartialAtOrAbove <= s̄ < ValidatedAtOrAbove -> Partial
//	s̄ < InvalidatedBelow     -> Invalidated
//	otherwise                -> Weak
//
// A contradiction is flagged whenever two readings fall on opposite sides
// of 0.5.
func Evaluate(readings []Reading, th Thresholds) Result {
	n := len(readings)
	if n == 0 {
		return Result{Verdict: types.VerdictNotGroundable, SourceCount: 0, SupportCount: 0}
	}

	present := make([]float64, 0, n)
	for _, r := range readings {
		if r.Present {
			present = append(present, r.Value)
		}
	}
	k := len(present)
	if k == 0 {
		return Result{Verdict: types.VerdictInsufficientData, SourceCount: n, SupportCount: 0}
	}

	sum := 0.0
	for _, v := range present {
		sum += v
	}
	mean := sum / float64(k)

	contradiction := false
	for i := 0; i < len(present) && !contradiction; i++ {
		for j := i + 1; j < len(present); j++ {
			if (present[i] >= 0.5) != (present[j] >= 0.5) {
				contradiction = true
				break
			}
		}
	}

	result := Result{Score: mean, SourceCount: n, SupportCount: k, Contradiction: contradiction}

	supportFraction := float64(k) / float64(n)
	switch {
	case supportFraction < th.MinSupportFraction:
		result.Verdict = types.VerdictWeak
	case mean >= th.ValidatedAtOrAbove:
		result.Verdict = types.VerdictValidated
	case mean >= th.PartialAtOrAbove:
		result.Verdict = types.VerdictPartial
	case mean < th.InvalidatedBelow:
		result.Verdict = types.VerdictInvalidated
	default:
		result.Verdict = types.VerdictWeak
	}
	return result
}
