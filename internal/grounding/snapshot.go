package grounding

import "github.com/Zeeeepa/drift/internal/types"

// TallySnapshot builds a GroundingSnapshot from a batch of evaluator
// results, in the duration the caller measured around the batch.
func TallySnapshot(results []Result, durationMs uint32) types.GroundingSnapshot {
	snap := types.GroundingSnapshot{DurationMs: durationMs}

	var scoreSum float64
	var scored uint32
	for _, r := range results {
		snap.TotalChecked++
		switch r.Verdict {
		case types.VerdictValidated:
			snap.Validated++
		case types.VerdictPartial:
			snap.Partial++
		case types.VerdictWeak:
			snap.Weak++
		case types.VerdictInvalidated:
			snap.Invalidated++
		case types.VerdictNotGroundable:
			snap.NotGroundable++
		case types.VerdictInsufficientData:
			snap.InsufficientData++
		}
		if r.Contradiction {
			snap.ContradictionsGenerated++
		}
		if r.SupportCount > 0 {
			scoreSum += r.Score
			scored++
		}
	}

	if scored > 0 {
		snap.AvgGroundingScore = scoreSum / float64(scored)
	}
	return snap
}
