package main

import "github.com/Zeeeepa/drift/internal/config"

// loadConfig loads layered configuration, applying any --bridge-db/
// --drift-db flag overrides last so flags beat file/env.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return config.Config{}, err
	}
	if bridgeDBPath != "" {
		cfg.BridgeDBPath = bridgeDBPath
	}
	if driftDBPath != "" {
		cfg.DriftDBPath = driftDBPath
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
