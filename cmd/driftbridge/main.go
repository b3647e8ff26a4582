// Command driftbridge is the CLI entrypoint for the cortex/drift bridge:
// it wires configuration (internal/config), the bridge store
// (internal/bridgestore), cross-database queries (internal/query), health
// checks (internal/health), grounding (internal/grounding), and feedback
// statistics (internal/feedback) behind a small command tree.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is set at build time via -ldflags.
	Version = "dev"

	configFile   string
	bridgeDBPath string
	driftDBPath  string
)

var rootCmd = &cobra.Command{
	Use:   "driftbridge",
	Short: "driftbridge - cortex/drift grounding bridge",
	Long:  `Mediates between the cortex memory store and the drift analysis store to produce grounding verdicts.`,
	Run: func(cmd *cobra.Command, args []string) {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Println("driftbridge version " + Version)
			return
		}
		_ = cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to driftbridge config file")
	rootCmd.PersistentFlags().StringVar(&bridgeDBPath, "bridge-db", "", "path to the bridge store (overrides config)")
	rootCmd.PersistentFlags().StringVar(&driftDBPath, "drift-db", "", "path to the drift store (overrides config)")
	rootCmd.Flags().Bool("version", false, "print the driftbridge version and exit")

	rootCmd.AddCommand(migrateCmd, healthCmd, groundCmd, feedbackCmd)
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}
