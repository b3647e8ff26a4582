package main

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zeeeepa/drift/internal/bridgestore"
	"github.com/Zeeeepa/drift/internal/health"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Print the bridge's health probe document",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		var cortexDB *sql.DB
		if db, err := bridgestore.Open(cfg.BridgeDBPath); err == nil {
			cortexDB = db
			defer cortexDB.Close()
		}

		var driftDB *sql.DB
		if cfg.DriftDBPath != "" {
			if db, err := sql.Open("sqlite3", "file:"+cfg.DriftDBPath+"?mode=ro"); err == nil {
				driftDB = db
				defer driftDB.Close()
			}
		}

		checks := []health.SubsystemCheck{
			health.CheckDatabase(health.SubsystemCortexDB, cortexDB),
			health.CheckDatabase(health.SubsystemDriftDB, driftDB),
			health.CheckComputeEngine(health.SubsystemCausalEngine, nil),
		}

		doc := health.BuildProbeDocument(checks)
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}
