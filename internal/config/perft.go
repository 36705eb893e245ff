package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MaxPerftDepth bounds -perft; deeper trees take hours from the start position.
const MaxPerftDepth = 8

// PerftConfig holds settings for move-path enumeration.
type PerftConfig struct {
	// Depth in plies; 0 disables perft
	Depth int

	// Divide prints the node count below each root move
	Divide bool

	// Workers is the number of goroutines for divide; 0 means one per CPU
	Workers int

	// HashEntries sizes the shared transposition table; 0 disables it
	HashEntries int
}

// NewPerftConfig creates a PerftConfig with default values.
// All fields use Go zero values - perft is disabled by default.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{}
}

// Enabled reports whether a perft run was requested.
func (p *PerftConfig) Enabled() bool {
	return p.Depth > 0
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d outside 0..%d: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 0 {
		return fmt.Errorf("negative worker count %d: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.HashEntries < 0 {
		return fmt.Errorf("negative hash size %d: %w", p.HashEntries, errors.ErrInvalidConfig)
	}
	if p.Divide && p.Depth == 0 {
		return fmt.Errorf("divide requires a perft depth: %w", errors.ErrInvalidConfig)
	}
	return nil
}
