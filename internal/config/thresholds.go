package config

import "github.com/Zeeeepa/drift/internal/grounding"

// Thresholds converts the configured grounding_thresholds into a
// grounding.Thresholds, assuming c has already passed Validate.
func (c Config) Thresholds() grounding.Thresholds {
	return grounding.Thresholds{
		InvalidatedBelow:   c.GroundingThresholds[0],
		PartialAtOrAbove:   c.GroundingThresholds[1],
		ValidatedAtOrAbove: c.GroundingThresholds[2],
		MinSupportFraction: c.GroundingThresholds[3],
	}
}
