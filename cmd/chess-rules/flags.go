// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Position
	fenFlag  = flag.String("fen", config.StartFEN, "Position to examine, in FEN")
	playFlag = flag.String("play", "", "Coordinate moves to play from -fen first (e.g. 'e2e4 e7e5')")

	// Output options
	noMoves      = flag.Bool("nomoves", false, "Don't list the legal moves")
	noStatus     = flag.Bool("nostatus", false, "Don't print the game status")
	showFEN      = flag.Bool("showfen", false, "Print the FEN of the examined position")
	outputFormat = flag.String("format", "text", "Output format: text, json")

	// Perft
	perftDepth = flag.Int("perft", 0, "Count move paths to this depth (0 = off)")
	divide     = flag.Bool("divide", false, "Break the perft count down by root move")
	workers    = flag.Int("workers", 0, "Number of perft workers (0 = one per CPU core)")
	hashSize   = flag.Int("hash", 0, "Perft transposition table entries (0 = off)")

	// Verification
	verify      = flag.Bool("verify", false, "Cross-check against the reference move generators")
	verifyWith  = flag.String("verifywith", "", "Comma-separated reference generators (default: all)")
	verifyDepth = flag.Int("verifydepth", 0, "Also verify every position this many plies below")

	// Logging
	quiet    = flag.Bool("s", false, "Silent mode (errors only)")
	verbose  = flag.Bool("v", false, "Verbose logging")
	logLevel = flag.String("loglevel", "", "Log level: debug, info, warn, error, fatal")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	cfg.FEN = *fenFlag
	applyPerftFlags(cfg)
	applyVerifyFlags(cfg)
	applyLogFlags(cfg)
	return applyOutputFlags(cfg)
}

// applyOutputFlags configures what gets printed.
func applyOutputFlags(cfg *config.Config) error {
	cfg.Output.ListMoves = !*noMoves
	cfg.Output.ShowStatus = !*noStatus
	cfg.Output.ShowFEN = *showFEN

	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	cfg.Output.Format = format
	return nil
}

// applyPerftFlags configures perft.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *divide
	cfg.Perft.Workers = *workers
	cfg.Perft.HashEntries = *hashSize
}

// applyVerifyFlags configures reference verification.
func applyVerifyFlags(cfg *config.Config) {
	cfg.Verify.Enabled = *verify || *verifyWith != ""
	cfg.Verify.Generators = splitList(*verifyWith)
	cfg.Verify.Depth = *verifyDepth
}

// applyLogFlags configures verbosity.
func applyLogFlags(cfg *config.Config) {
	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
	cfg.LogLevel = *logLevel
}

// splitList splits a comma- or space-separated flag value.
func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}
