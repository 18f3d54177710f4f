package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithShowBoard controls whether play prints the board after each move.
func (b *ConfigBuilder) WithShowBoard(show bool) *ConfigBuilder {
	b.cfg.Play.ShowBoard = show
	return b
}

// WithShowMoves controls whether play lists legal moves after each move.
func (b *ConfigBuilder) WithShowMoves(show bool) *ConfigBuilder {
	b.cfg.Play.ShowMoves = show
	return b
}

// WithPrompt sets the play prompt.
func (b *ConfigBuilder) WithPrompt(prompt string) *ConfigBuilder {
	b.cfg.Play.Prompt = prompt
	return b
}

// WithPerftDepth sets the perft depth.
func (b *ConfigBuilder) WithPerftDepth(depth int) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	return b
}

// WithDivide enables per-move perft output.
func (b *ConfigBuilder) WithDivide(enabled bool) *ConfigBuilder {
	b.cfg.Perft.Divide = enabled
	return b
}

// WithWorkers sets the number of perft workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithTableSize sets the perft memo table capacity.
func (b *ConfigBuilder) WithTableSize(n int) *ConfigBuilder {
	b.cfg.Perft.TableSize = n
	return b
}
