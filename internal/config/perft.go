package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MaxPerftDepth bounds perft runs; the tree grows roughly thirtyfold per ply.
const MaxPerftDepth = 10

// PerftConfig holds settings for the perft command.
type PerftConfig struct {
	Depth     int  `yaml:"depth"`
	Divide    bool `yaml:"divide"`     // print per-move counts
	Workers   int  `yaml:"workers"`    // 0 = one per CPU
	TableSize int  `yaml:"table_size"` // memo table entries, 0 disables it
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Depth:     4,
		TableSize: 1 << 20,
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 1 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d outside 1..%d: %w",
			p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 0 {
		return fmt.Errorf("workers %d is negative: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.TableSize < 0 {
		return fmt.Errorf("table_size %d is negative: %w", p.TableSize, errors.ErrInvalidConfig)
	}
	return nil
}
