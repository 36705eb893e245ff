// Package config provides configuration for the chess-rules command.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apex/log"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// OutputFormat selects how results are printed.
type OutputFormat int

const (
	Text OutputFormat = iota // One item per line
	JSON                     // A single JSON document
)

// ParseOutputFormat maps a flag value to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return Text, nil
	case "json":
		return JSON, nil
	}
	return Text, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
}

// Config holds all program configuration.
type Config struct {
	// FEN is the position to examine.
	FEN string

	// Verbosity: 0=errors only, 1=summary, 2=running commentary
	Verbosity int

	// LogLevel is an apex/log level name; it overrides Verbosity when set.
	LogLevel string

	Output *OutputConfig
	Perft  *PerftConfig
	Verify *VerifyConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		FEN:        StartFEN,
		Verbosity:  1,
		Output:     NewOutputConfig(),
		Perft:      NewPerftConfig(),
		Verify:     NewVerifyConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// StartFEN is the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// SetOutput sets the output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLogFile sets the log stream.
func (c *Config) SetLogFile(w io.Writer) {
	c.LogFile = w
}

// Level returns the log level implied by LogLevel or, failing that, Verbosity.
func (c *Config) Level() (log.Level, error) {
	if c.LogLevel != "" {
		lvl, err := log.ParseLevel(c.LogLevel)
		if err != nil {
			return log.InfoLevel, fmt.Errorf("log level %q: %w", c.LogLevel, errors.ErrInvalidConfig)
		}
		return lvl, nil
	}
	switch {
	case c.Verbosity <= 0:
		return log.ErrorLevel, nil
	case c.Verbosity == 1:
		return log.InfoLevel, nil
	}
	return log.DebugLevel, nil
}

// Validate checks the configuration as a whole.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.FEN) == "" {
		return fmt.Errorf("empty FEN: %w", errors.ErrInvalidConfig)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if err := c.Perft.Validate(); err != nil {
		return err
	}
	return c.Verify.Validate()
}
