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

// WithFEN sets the position to examine.
func (b *ConfigBuilder) WithFEN(fen string) *ConfigBuilder {
	b.cfg.FEN = fen
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

// WithHashEntries sizes the perft transposition table.
func (b *ConfigBuilder) WithHashEntries(n int) *ConfigBuilder {
	b.cfg.Perft.HashEntries = n
	return b
}

// WithVerify enables verification against the named reference generators.
func (b *ConfigBuilder) WithVerify(enabled bool, generators ...string) *ConfigBuilder {
	b.cfg.Verify.Enabled = enabled
	b.cfg.Verify.Generators = generators
	return b
}

// WithVerifyDepth sets how deep verification walks the move tree.
func (b *ConfigBuilder) WithVerifyDepth(depth int) *ConfigBuilder {
	b.cfg.Verify.Depth = depth
	return b
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// ListMoves controls whether legal moves are printed.
func (b *ConfigBuilder) ListMoves(enabled bool) *ConfigBuilder {
	b.cfg.Output.ListMoves = enabled
	return b
}

// ShowStatus controls whether the classification is printed.
func (b *ConfigBuilder) ShowStatus(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowStatus = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithLogLevel sets an explicit log level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.LogLevel = level
	return b
}
