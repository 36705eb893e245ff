package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// VerifyConfig holds settings for cross-checking against reference generators.
type VerifyConfig struct {
	// Enabled turns on verification
	Enabled bool

	// Generators names the reference generators; empty means all of them
	Generators []string

	// Depth walks the move tree this many plies below the root
	Depth int
}

// NewVerifyConfig creates a VerifyConfig with default values.
func NewVerifyConfig() *VerifyConfig {
	return &VerifyConfig{}
}

// Validate checks that the verify configuration is valid.
func (v *VerifyConfig) Validate() error {
	if v.Depth < 0 || v.Depth > MaxPerftDepth {
		return fmt.Errorf("verify depth %d outside 0..%d: %w", v.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if v.Depth > 0 && !v.Enabled {
		return fmt.Errorf("verify depth set without verify: %w", errors.ErrInvalidConfig)
	}
	return nil
}
