package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Zeeeepa/drift/internal/bridgestore"
	"github.com/Zeeeepa/drift/internal/grounding"
	"github.com/Zeeeepa/drift/internal/query"
	"github.com/Zeeeepa/drift/internal/types"
)

var groundCmd = &cobra.Command{
	Use:   "ground <memory-id> <source>=<key> [<source>=<key> ...]",
	Short: "Evaluate a memory's grounding against the attached drift store",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.DriftDBPath == "" {
			return fmt.Errorf("ground requires --drift-db or drift_db_path in config")
		}

		memoryID := args[0]
		sourceKeys, err := parseSourceKeys(args[1:])
		if err != nil {
			return err
		}

		db, err := bridgestore.Open(cfg.BridgeDBPath)
		if err != nil {
			return err
		}
		defer db.Close()

		result, err := query.WithDriftAttached(db, cfg.DriftDBPath, func(conn *sql.DB) (grounding.Result, error) {
			return evaluateMemory(conn, sourceKeys, cfg.Thresholds(), cfg.FPGapsScale)
		})
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(struct {
			MemoryID string                 `json:"memory_id"`
			Verdict  types.GroundingVerdict `json:"verdict"`
			Score    float64                `json:"score"`
			Sources  int                    `json:"sources_queried"`
			Support  int                    `json:"sources_with_readings"`
		}{
			MemoryID: memoryID,
			Verdict:  result.Verdict,
			Score:    result.Score,
			Sources:  result.SourceCount,
			Support:  result.SupportCount,
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

// parseSourceKeys parses "source=key" CLI arguments into a map of
// GroundingDataSource to lookup key, validating each source tag against
// the closed enum.
func parseSourceKeys(args []string) (map[types.GroundingDataSource]string, error) {
	sourceKeys := make(map[types.GroundingDataSource]string, len(args))
	for _, arg := range args {
		parts := strings.SplitN(arg, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid source argument %q, expected <source>=<key>", arg)
		}
		source := types.GroundingDataSource(parts[0])
		if !source.Valid() {
			return nil, fmt.Errorf("unknown grounding data source %q", parts[0])
		}
		sourceKeys[source] = parts[1]
	}
	return sourceKeys, nil
}
