package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// PlayConfig holds settings for the interactive play command.
type PlayConfig struct {
	// ShowBoard prints the board after every accepted move
	ShowBoard bool `yaml:"show_board"`

	// ShowMoves lists the legal moves after every accepted move
	ShowMoves bool `yaml:"show_moves"`

	// Prompt is printed before reading each command
	Prompt string `yaml:"prompt"`

	// MaxUndo limits how many plies may be taken back (0 = no limit)
	MaxUndo int `yaml:"max_undo"`
}

// NewPlayConfig creates a PlayConfig with default values.
func NewPlayConfig() *PlayConfig {
	return &PlayConfig{
		ShowBoard: true,
		Prompt:    "> ",
	}
}

// Validate checks that the play configuration is valid.
func (p *PlayConfig) Validate() error {
	if p.MaxUndo < 0 {
		return fmt.Errorf("max_undo %d is negative: %w", p.MaxUndo, errors.ErrInvalidConfig)
	}
	return nil
}
