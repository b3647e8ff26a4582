// Package config loads the bridge's layered configuration (env > config
// file > defaults) via viper. Command-line flag overrides are applied on
// top of the loaded Config by the CLI, not by this package.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix viper binds environment variables under, e.g.
// DRIFTBRIDGE_BRIDGE_DB_PATH.
const EnvPrefix = "DRIFTBRIDGE"

// Config is the bridge's recognised configuration.
type Config struct {
	BridgeDBPath        string    `mapstructure:"bridge_db_path"`
	DriftDBPath         string    `mapstructure:"drift_db_path"`
	FPGapsScale         int       `mapstructure:"fp_gaps_scale"`
	GroundingThresholds []float64 `mapstructure:"grounding_thresholds"`
}

// defaults holds the bridge's recommended out-of-the-box constants.
func defaults() Config {
	return Config{
		FPGapsScale:         10,
		GroundingThresholds: []float64{0.25, 0.50, 0.75, 0.50},
	}
}

// Load reads configuration from, in ascending precedence: built-in
// defaults, an optional config file named configPath (if non-empty), then
// DRIFTBRIDGE_-prefixed environment variables. Load does not validate the
// result: callers apply any overrides and then call Validate.
func Load(configPath string) (Config, error) {
	v := viper.New()
	d := defaults()
	v.SetDefault("bridge_db_path", d.BridgeDBPath)
	v.SetDefault("drift_db_path", d.DriftDBPath)
	v.SetDefault("fp_gaps_scale", d.FPGapsScale)
	v.SetDefault("grounding_thresholds", d.GroundingThresholds)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", configPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// Validate checks that bridge_db_path is set, and that
// grounding_thresholds is four numbers — the first three (invalidation
// cutoff, partial cutoff, validated cutoff) strictly ascending, the
// fourth (minimum-support fraction) independent in [0,1].
func (c Config) Validate() error {
	if c.BridgeDBPath == "" {
		return fmt.Errorf("%w: bridge_db_path", ErrMissingField)
	}
	if len(c.GroundingThresholds) != 4 {
		return fmt.Errorf("%w: grounding_thresholds must have exactly 4 values, got %d", ErrInvalidField, len(c.GroundingThresholds))
	}
	invalidated, partial, validated, minSupport := c.GroundingThresholds[0], c.GroundingThresholds[1], c.GroundingThresholds[2], c.GroundingThresholds[3]
	if !(invalidated < partial && partial < validated) {
		return fmt.Errorf("%w: grounding_thresholds[0:3] (invalidated, partial, validated cutoffs) must be strictly ascending", ErrInvalidField)
	}
	if minSupport < 0 || minSupport > 1 {
		return fmt.Errorf("%w: grounding_thresholds[3] (minimum support fraction) must be in [0,1]", ErrInvalidField)
	}
	if c.FPGapsScale <= 0 {
		return fmt.Errorf("%w: fp_gaps_scale must be positive", ErrInvalidField)
	}
	return nil
}
