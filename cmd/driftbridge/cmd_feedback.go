package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Zeeeepa/drift/internal/feedback"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Feedback-to-confidence calculus operations",
}

// feedbackStatsInput is the stdin shape for "feedback stats": the full
// violation set (with each violation's own suppressed flag) plus the
// feedback rows recorded against it.
type feedbackStatsInput struct {
	Violations []feedback.Violation `json:"violations"`
	Rows       []feedback.Row       `json:"rows"`
}

var feedbackStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Read a JSON {violations, rows} document from stdin and print aggregate statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		var in feedbackStatsInput
		if err := json.NewDecoder(os.Stdin).Decode(&in); err != nil {
			return fmt.Errorf("decode feedback stats input: %w", err)
		}

		stats := feedback.Aggregate(in.Violations, in.Rows)
		out, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	feedbackCmd.AddCommand(feedbackStatsCmd)
}
