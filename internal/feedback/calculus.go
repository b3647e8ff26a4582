// Package feedback maps user actions on violations into Bayesian
// confidence-prior adjustments, and computes aggregate statistics over a
// batch of feedback rows. Pure functions — no storage or I/O.
package feedback

import "github.com/Zeeeepa/drift/internal/types"

// Action is the verb a user performed on a violation.
type Action string

const (
	ActionFix       Action = "fix"
	ActionDismiss   Action = "dismiss"
	ActionSuppress  Action = "suppress"
	ActionEscalate  Action = "escalate"
)

// DismissalReason qualifies a "dismiss" action.
type DismissalReason string

const (
	ReasonFalsePositive DismissalReason = "false_positive"
	ReasonNotApplicable DismissalReason = "not_applicable"
	ReasonWontFix       DismissalReason = "wont_fix"
	ReasonDuplicate     DismissalReason = "duplicate"
)

// Adjustment maps a feedback row's (action, dismissal reason) to a
// ConfidenceAdjustment. Unknown actions map to a zero adjustment rather
// than an error — an unrecognised action is evidence of nothing, not a
// fault.
func Adjustment(action Action, reason DismissalReason) types.ConfidenceAdjustment {
	switch action {
	case ActionFix:
		return types.ConfidenceAdjustment{Mode: types.AdjustmentFix, AlphaDelta: 1.0, BetaDelta: 0.0}
	case ActionDismiss:
		switch reason {
		case ReasonFalsePositive:
			return types.ConfidenceAdjustment{Mode: types.AdjustmentDismissFalsePositive, AlphaDelta: 0.0, BetaDelta: 0.5}
		case ReasonNotApplicable:
			return types.ConfidenceAdjustment{Mode: types.AdjustmentDismissNotApplicable, AlphaDelta: 0.0, BetaDelta: 0.25}
		case ReasonWontFix, ReasonDuplicate:
			return types.ConfidenceAdjustment{Mode: types.AdjustmentDismissOther, AlphaDelta: 0.0, BetaDelta: 0.0}
		default:
			// Other or absent reason.
			return types.ConfidenceAdjustment{Mode: types.AdjustmentDismissOther, AlphaDelta: 0.0, BetaDelta: 0.25}
		}
	case ActionSuppress:
		return types.ConfidenceAdjustment{Mode: types.AdjustmentSuppress, AlphaDelta: 0.0, BetaDelta: 0.1}
	case ActionEscalate:
		return types.ConfidenceAdjustment{Mode: types.AdjustmentEscalate, AlphaDelta: 0.5, BetaDelta: 0.0}
	default:
		return types.ConfidenceAdjustment{AlphaDelta: 0.0, BetaDelta: 0.0}
	}
}

// Row is one recorded feedback event against a violation.
type Row struct {
	ViolationID string          `json:"violation_id"`
	Action      Action          `json:"action"`
	Reason      DismissalReason `json:"reason,omitempty"`
}

// Violation is the subset of a violation's own stored state that feeds
// needs-review accounting: its id and whether it has been suppressed
// directly (independent of any feedback row).
type Violation struct {
	ID         string `json:"id"`
	Suppressed bool   `json:"suppressed"`
}

// Stats is the aggregate tally over a batch of feedback rows.
type Stats struct {
	Total       int `json:"total"`
	Fix         int `json:"fix"`
	Dismiss     int `json:"dismiss"`
	Suppress    int `json:"suppress"`
	Escalate    int `json:"escalate"`
	NeedsReview int `json:"needs_review"`
}

// Aggregate computes Stats from the full violation set and the feedback
// rows recorded against it. NeedsReview counts violations whose own
// Suppressed flag is false and that have no "fix" or "dismiss" feedback
// row — including violations with zero feedback rows at all, which still
// need review until someone acts on them.
func Aggregate(violations []Violation, rows []Row) Stats {
	var s Stats
	resolved := map[string]bool{}

	for _, r := range rows {
		s.Total++
		switch r.Action {
		case ActionFix:
			s.Fix++
			resolved[r.ViolationID] = true
		case ActionDismiss:
			s.Dismiss++
			resolved[r.ViolationID] = true
		case ActionSuppress:
			s.Suppress++
		case ActionEscalate:
			s.Escalate++
		}
	}

	for _, v := range violations {
		if !v.Suppressed && !resolved[v.ID] {
			s.NeedsReview++
		}
	}
	return s
}
