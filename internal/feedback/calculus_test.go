package feedback

import (
	"testing"

	"github.com/Zeeeepa/drift/internal/types"
)

func TestAdjustmentTable(t *testing.T) {
	cases := []struct {
		name   string
		action Action
		reason DismissalReason
		want   types.ConfidenceAdjustment
	}{
		{"fix", ActionFix, "", types.ConfidenceAdjustment{Mode: types.AdjustmentFix, AlphaDelta: 1.0, BetaDelta: 0.0}},
		{"dismiss false_positive", ActionDismiss, ReasonFalsePositive, types.ConfidenceAdjustment{Mode: types.AdjustmentDismissFalsePositive, AlphaDelta: 0.0, BetaDelta: 0.5}},
		{"dismiss not_applicable", ActionDismiss, ReasonNotApplicable, types.ConfidenceAdjustment{Mode: types.AdjustmentDismissNotApplicable, AlphaDelta: 0.0, BetaDelta: 0.25}},
		{"dismiss wont_fix", ActionDismiss, ReasonWontFix, types.ConfidenceAdjustment{Mode: types.AdjustmentDismissOther, AlphaDelta: 0.0, BetaDelta: 0.0}},
		{"dismiss duplicate", ActionDismiss, ReasonDuplicate, types.ConfidenceAdjustment{Mode: types.AdjustmentDismissOther, AlphaDelta: 0.0, BetaDelta: 0.0}},
		{"dismiss absent reason", ActionDismiss, "", types.ConfidenceAdjustment{Mode: types.AdjustmentDismissOther, AlphaDelta: 0.0, BetaDelta: 0.25}},
		{"suppress", ActionSuppress, "", types.ConfidenceAdjustment{Mode: types.AdjustmentSuppress, AlphaDelta: 0.0, BetaDelta: 0.1}},
		{"escalate", ActionEscalate, "", types.ConfidenceAdjustment{Mode: types.AdjustmentEscalate, AlphaDelta: 0.5, BetaDelta: 0.0}},
		{"unknown action", Action("bogus"), "", types.ConfidenceAdjustment{AlphaDelta: 0.0, BetaDelta: 0.0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Adjustment(tc.action, tc.reason)
			if got.AlphaDelta != tc.want.AlphaDelta || got.BetaDelta != tc.want.BetaDelta || got.Mode != tc.want.Mode {
				t.Errorf("Adjustment(%q, %q) = %+v, want %+v", tc.action, tc.reason, got, tc.want)
			}
		})
	}
}

func TestAggregateTalliesActionsAndNeedsReview(t *testing.T) {
	violations := []Violation{
		{ID: "v1"},
		{ID: "v2"},
		{ID: "v3", Suppressed: true},
	}
	rows := []Row{
		{ViolationID: "v1", Action: ActionFix},
		{ViolationID: "v2", Action: ActionDismiss, Reason: ReasonFalsePositive},
	}

	adjustments := make([]types.ConfidenceAdjustment, 0, len(rows))
	for _, r := range rows {
		adjustments = append(adjustments, Adjustment(r.Action, r.Reason))
	}

	want := []types.ConfidenceAdjustment{
		{Mode: types.AdjustmentFix, AlphaDelta: 1.0, BetaDelta: 0.0},
		{Mode: types.AdjustmentDismissFalsePositive, AlphaDelta: 0.0, BetaDelta: 0.5},
	}
	for i := range want {
		if adjustments[i] != want[i] {
			t.Errorf("adjustment[%d] = %+v, want %+v", i, adjustments[i], want[i])
		}
	}

	stats := Aggregate(violations, rows)
	if stats.Total != 2 || stats.Fix != 1 || stats.Dismiss != 1 || stats.Suppress != 0 || stats.Escalate != 0 {
		t.Errorf("stats = %+v, want total=2 fix=1 dismiss=1 suppress=0 escalate=0", stats)
	}
	if stats.NeedsReview != 0 {
		t.Errorf("NeedsReview = %d, want 0 (v1 fixed, v2 dismissed, v3 suppressed)", stats.NeedsReview)
	}
}

func TestNeedsReviewCountsUntouchedAndExcludesSuppressedAndResolved(t *testing.T) {
	violations := []Violation{
		{ID: "resolved-by-fix"},
		{ID: "suppressed-directly", Suppressed: true},
		{ID: "escalated-only"},
		{ID: "never-touched"},
	}
	rows := []Row{
		{ViolationID: "resolved-by-fix", Action: ActionFix},
		{ViolationID: "escalated-only", Action: ActionEscalate},
	}
	stats := Aggregate(violations, rows)
	if stats.NeedsReview != 2 {
		t.Errorf("NeedsReview = %d, want 2 (escalated-only and never-touched: neither fixed/dismissed nor suppressed)", stats.NeedsReview)
	}
}

func TestNeedsReviewIgnoresSuppressActionWithoutOwnSuppressedFlag(t *testing.T) {
	// A "suppress" feedback row does not by itself clear needs_review —
	// only the violation's own Suppressed column does.
	violations := []Violation{{ID: "v1"}}
	rows := []Row{{ViolationID: "v1", Action: ActionSuppress}}
	stats := Aggregate(violations, rows)
	if stats.NeedsReview != 1 {
		t.Errorf("NeedsReview = %d, want 1 (a suppress feedback row alone does not suppress the violation)", stats.NeedsReview)
	}
}
