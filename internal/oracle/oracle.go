// Package oracle cross-checks the rules engine against independent move
// generators.
//
// Each reference generator is fed the FEN of a position and asked for its
// legal moves in coordinate form; the lists are compared with what the
// engine produces. The CLI exposes this as -verify, and the differential
// tests use it to sweep perft positions.
package oracle

import (
	"fmt"
	"strings"

	"github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/dylhunn/dragontoothmg"
	"github.com/notnil/chess"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Outcome is what a reference generator says about the side to move.
type Outcome struct {
	Checkmate bool
	Stalemate bool
}

// Generator is a reference legal-move generator.
type Generator interface {
	// Name identifies the generator in reports.
	Name() string
	// LegalMoves returns the legal moves of the position in sorted UCI form.
	LegalMoves(fen string) ([]string, error)
	// Outcome reports checkmate and stalemate for the side to move.
	Outcome(fen string) (Outcome, error)
}

// CheckReporter is implemented by generators that can say whether the side
// to move is in check.
type CheckReporter interface {
	InCheck(fen string) (bool, error)
}

// Dragontooth wraps github.com/dylhunn/dragontoothmg.
type Dragontooth struct{}

// Name returns "dragontoothmg".
func (Dragontooth) Name() string { return "dragontoothmg" }

func (Dragontooth) board(fen string) (board dragontoothmg.Board, err error) {
	// ParseFen panics on malformed input.
	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrapf(errors.ErrInvalidFEN, "dragontoothmg: %v", r)
		}
	}()
	return dragontoothmg.ParseFen(fen), nil
}

// LegalMoves implements Generator.
func (d Dragontooth) LegalMoves(fen string) ([]string, error) {
	board, err := d.board(fen)
	if err != nil {
		return nil, err
	}
	moves := board.GenerateLegalMoves()
	out := make([]string, 0, len(moves))
	for i := range moves {
		out = append(out, strings.ToLower(moves[i].String()))
	}
	slices.Sort(out)
	return out, nil
}

// Outcome implements Generator.
func (d Dragontooth) Outcome(fen string) (Outcome, error) {
	board, err := d.board(fen)
	if err != nil {
		return Outcome{}, err
	}
	check := board.OurKingInCheck()
	none := len(board.GenerateLegalMoves()) == 0
	return Outcome{Checkmate: check && none, Stalemate: !check && none}, nil
}

// InCheck implements CheckReporter.
func (d Dragontooth) InCheck(fen string) (bool, error) {
	board, err := d.board(fen)
	if err != nil {
		return false, err
	}
	return board.OurKingInCheck(), nil
}

// Goose wraps github.com/Oliverans/GooseEngineMG/goosemg.
type Goose struct{}

// Name returns "goosemg".
func (Goose) Name() string { return "goosemg" }

// LegalMoves implements Generator.
func (Goose) LegalMoves(fen string) ([]string, error) {
	board, err := goosemg.ParseFEN(fen)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidFEN, "goosemg: %v", err)
	}
	moves := board.GenerateLegalMoves()
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, strings.ToLower(m.String()))
	}
	slices.Sort(out)
	return out, nil
}

// Outcome implements Generator.
func (Goose) Outcome(fen string) (Outcome, error) {
	board, err := goosemg.ParseFEN(fen)
	if err != nil {
		return Outcome{}, errors.Wrapf(errors.ErrInvalidFEN, "goosemg: %v", err)
	}
	return Outcome{
		Checkmate: board.InCheckmate(),
		Stalemate: board.InStalemate(),
	}, nil
}

// InCheck implements CheckReporter.
func (Goose) InCheck(fen string) (bool, error) {
	board, err := goosemg.ParseFEN(fen)
	if err != nil {
		return false, errors.Wrapf(errors.ErrInvalidFEN, "goosemg: %v", err)
	}
	return board.OurKingInCheck(), nil
}

// Notnil wraps github.com/notnil/chess.
type Notnil struct{}

// Name returns "notnil/chess".
func (Notnil) Name() string { return "notnil/chess" }

func (Notnil) game(fen string) (*chess.Game, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidFEN, "notnil/chess: %v", err)
	}
	return chess.NewGame(opt), nil
}

// LegalMoves implements Generator.
func (n Notnil) LegalMoves(fen string) ([]string, error) {
	game, err := n.game(fen)
	if err != nil {
		return nil, err
	}
	moves := game.ValidMoves()
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, strings.ToLower(m.String()))
	}
	slices.Sort(out)
	return out, nil
}

// Outcome implements Generator.
func (n Notnil) Outcome(fen string) (Outcome, error) {
	game, err := n.game(fen)
	if err != nil {
		return Outcome{}, err
	}
	status := game.Position().Status()
	return Outcome{Checkmate: status == chess.Checkmate, Stalemate: status == chess.Stalemate}, nil
}

// All returns every reference generator.
func All() []Generator {
	return []Generator{Dragontooth{}, Goose{}, Notnil{}}
}

// ByName returns the generators with the given names, in order.
func ByName(names ...string) ([]Generator, error) {
	all := All()
	out := make([]Generator, 0, len(names))
	for _, name := range names {
		i := slices.IndexFunc(all, func(g Generator) bool { return g.Name() == name })
		if i < 0 {
			return nil, fmt.Errorf("unknown reference generator %q", name)
		}
		out = append(out, all[i])
	}
	return out, nil
}
