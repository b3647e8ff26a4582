package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zeeeepa/drift/internal/bridgestore"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Bring the bridge store's schema up to the current version",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		db, err := bridgestore.Open(cfg.BridgeDBPath)
		if err != nil {
			return err
		}
		defer db.Close()

		version, err := bridgestore.Migrate(db)
		if err != nil {
			return err
		}

		fmt.Printf("bridge schema at version %d\n", version)
		return nil
	},
}
