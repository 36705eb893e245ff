package oracle

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Mismatch records how a reference generator disagrees with the engine.
type Mismatch struct {
	Generator string
	Missing   []string // Moves the generator found and the engine did not
	Extra     []string // Moves the engine found and the generator did not
	Status    string   // Disagreement about check, mate or stalemate
}

// String returns a one-line summary of the mismatch.
func (m Mismatch) String() string {
	var parts []string
	if len(m.Missing) > 0 {
		parts = append(parts, "missing "+strings.Join(m.Missing, " "))
	}
	if len(m.Extra) > 0 {
		parts = append(parts, "extra "+strings.Join(m.Extra, " "))
	}
	if m.Status != "" {
		parts = append(parts, m.Status)
	}
	return fmt.Sprintf("%s: %s", m.Generator, strings.Join(parts, "; "))
}

// Report is the result of verifying one position.
type Report struct {
	FEN        string
	Moves      []string // Engine moves, sorted
	Mismatches []Mismatch
}

// OK reports whether every generator agreed with the engine.
func (r Report) OK() bool {
	return len(r.Mismatches) == 0
}

// EngineMoves returns the engine's legal moves in sorted UCI form.
func EngineMoves(board *chess.Board) []string {
	moves := engine.AllLegalMoves(board)
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.UCI()
	}
	slices.Sort(out)
	return out
}

// Diff compares two sorted move lists. missing holds the entries of want
// absent from got; extra holds the entries of got absent from want.
func Diff(want, got []string) (missing, extra []string) {
	for _, m := range want {
		if _, found := slices.BinarySearch(got, m); !found {
			missing = append(missing, m)
		}
	}
	for _, m := range got {
		if _, found := slices.BinarySearch(want, m); !found {
			extra = append(extra, m)
		}
	}
	return missing, extra
}

// Verify compares the engine's view of a position with each generator. An
// error is returned only when a generator cannot read the position.
func Verify(board *chess.Board, gens ...Generator) (Report, error) {
	if len(gens) == 0 {
		gens = All()
	}
	fen := engine.BoardToFEN(board)
	report := Report{FEN: fen, Moves: EngineMoves(board)}

	status := engine.Classify(board)
	checked, _ := engine.IsKingInCheck(board, board.ToMove)

	for _, gen := range gens {
		want, err := gen.LegalMoves(fen)
		if err != nil {
			return report, err
		}
		mismatch := Mismatch{Generator: gen.Name()}
		mismatch.Missing, mismatch.Extra = Diff(want, report.Moves)

		outcome, err := gen.Outcome(fen)
		if err != nil {
			return report, err
		}
		switch {
		case outcome.Checkmate != (status.Kind == engine.Checkmate):
			mismatch.Status = fmt.Sprintf("checkmate %t, engine says %s", outcome.Checkmate, status)
		case outcome.Stalemate != (status.Kind == engine.Stalemate):
			mismatch.Status = fmt.Sprintf("stalemate %t, engine says %s", outcome.Stalemate, status)
		}
		if cr, ok := gen.(CheckReporter); ok && mismatch.Status == "" {
			theirs, err := cr.InCheck(fen)
			if err != nil {
				return report, err
			}
			if theirs != checked {
				mismatch.Status = fmt.Sprintf("in check %t, engine says %t", theirs, checked)
			}
		}

		if len(mismatch.Missing) > 0 || len(mismatch.Extra) > 0 || mismatch.Status != "" {
			report.Mismatches = append(report.Mismatches, mismatch)
		}
	}
	return report, nil
}

// VerifyTree verifies every position reachable from board within depth
// plies and returns the reports that found a disagreement. Depth 0 checks
// only the root.
func VerifyTree(board *chess.Board, depth int, gens ...Generator) ([]Report, error) {
	var failed []Report
	var walk func(b *chess.Board, d int) error
	walk = func(b *chess.Board, d int) error {
		report, err := Verify(b, gens...)
		if err != nil {
			return err
		}
		if !report.OK() {
			failed = append(failed, report)
		}
		if d == 0 {
			return nil
		}
		for _, move := range engine.AllLegalMoves(b) {
			if err := walk(engine.ApplyMove(b, move), d-1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(board, depth); err != nil {
		return nil, err
	}
	return failed, nil
}
