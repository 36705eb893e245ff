// chess-rules answers rules questions about a chess position: its legal
// moves, its status, perft counts, and whether independent move generators
// agree.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/oracle"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	setupLogging(cfg)

	if err := run(cfg, splitList(*playFlag)); err != nil {
		log.WithError(err).Error("chess-rules failed")
		os.Exit(1)
	}
}

// setupLogging installs the CLI handler at the configured level.
func setupLogging(cfg *config.Config) {
	level, err := cfg.Level()
	if err != nil {
		level = log.InfoLevel
	}
	log.SetHandler(cli.New(cfg.LogFile))
	log.SetLevel(level)
}

// run examines the configured position and writes the report.
func run(cfg *config.Config, moves []string) error {
	board, err := setupBoard(cfg.FEN, moves)
	if err != nil {
		return err
	}

	rep, err := analyse(cfg, board)
	if err != nil {
		return err
	}
	if err := writeReport(cfg.OutputFile, cfg, rep); err != nil {
		return err
	}
	if rep.Verify != nil && !rep.Verify.OK {
		return fmt.Errorf("%d position(s) disagree with the reference generators", len(rep.Verify.Failures))
	}
	return nil
}

// setupBoard parses fen and plays moves from it.
func setupBoard(fen string, moves []string) (*chess.Board, error) {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	if len(moves) == 0 {
		return board, nil
	}
	board, err = engine.PlayUCI(board, moves...)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"moves": len(moves),
		"fen":   engine.BoardToFEN(board),
	}).Debug("played moves")
	return board, nil
}

// analyse answers every question cfg asks about board.
func analyse(cfg *config.Config, board *chess.Board) (*Report, error) {
	rep := &Report{FEN: engine.BoardToFEN(board)}

	if cfg.Output.ShowStatus {
		rep.Status = engine.Classify(board).String()
	}
	if cfg.Output.ListMoves {
		rep.Moves = oracle.EngineMoves(board)
	}

	if cfg.Perft.Enabled() {
		perft, err := runPerft(cfg.Perft, board)
		if err != nil {
			return nil, err
		}
		rep.Perft = perft
	}

	if cfg.Verify.Enabled {
		v, err := runVerify(cfg.Verify, board)
		if err != nil {
			return nil, err
		}
		rep.Verify = v
	}
	return rep, nil
}

func runPerft(pc *config.PerftConfig, board *chess.Board) (*PerftReport, error) {
	workerCount := pc.Workers
	if workerCount == 0 {
		workerCount = runtime.NumCPU()
	}

	var cache hashing.Cache
	if pc.HashEntries > 0 {
		cache = hashing.NewThreadSafeTable(pc.HashEntries)
	}

	start := time.Now()
	entries, err := engine.ParallelPerftDivideCached(board, pc.Depth, workerCount, cache)
	if err != nil {
		return nil, err
	}
	rep := &PerftReport{Depth: pc.Depth, Nodes: engine.TotalNodes(entries)}
	if pc.Divide {
		rep.Divide = make(map[string]uint64, len(entries))
		for _, e := range entries {
			rep.Divide[e.Move.UCI()] = e.Nodes
		}
	}

	log.WithFields(log.Fields{
		"depth":   pc.Depth,
		"nodes":   rep.Nodes,
		"workers": workerCount,
		"hash":    pc.HashEntries,
		"elapsed": time.Since(start).Round(time.Millisecond),
	}).Info("perft")
	return rep, nil
}

func runVerify(vc *config.VerifyConfig, board *chess.Board) (*VerifyReport, error) {
	gens := oracle.All()
	if len(vc.Generators) > 0 {
		var err error
		if gens, err = oracle.ByName(vc.Generators...); err != nil {
			return nil, errors.Wrap(errors.ErrInvalidConfig, err.Error())
		}
	}

	start := time.Now()
	failed, err := oracle.VerifyTree(board, vc.Depth, gens...)
	if err != nil {
		return nil, err
	}

	rep := &VerifyReport{Depth: vc.Depth, OK: len(failed) == 0}
	for _, g := range gens {
		rep.Generators = append(rep.Generators, g.Name())
	}
	for _, r := range failed {
		for _, m := range r.Mismatches {
			rep.Failures = append(rep.Failures, VerifyFailure{FEN: r.FEN, Detail: m.String()})
		}
	}

	entry := log.WithFields(log.Fields{
		"depth":    vc.Depth,
		"failures": len(rep.Failures),
		"elapsed":  time.Since(start).Round(time.Millisecond),
	})
	if rep.OK {
		entry.Info("verified")
	} else {
		entry.Warn("reference generators disagree")
	}
	return rep, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Answers rules questions about a chess position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nReference generators (-verifywith):\n")
	for _, g := range oracle.All() {
		fmt.Fprintf(os.Stderr, "  %s\n", g.Name())
	}
}
