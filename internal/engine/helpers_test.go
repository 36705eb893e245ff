package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// mustBoard parses a FEN string, failing the test on error.
func mustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) failed: %v", fen, err)
	}
	return board
}

// sq parses a square name such as "e4"; it panics on bad input.
func sq(name string) chess.Square {
	s, ok := chess.ParseSquare(name)
	if !ok {
		panic("bad square " + name)
	}
	return s
}

// uciList renders moves in coordinate form.
func uciList(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.UCI()
	}
	return out
}

// pieceAt returns the piece on the named square, failing if it is empty.
func pieceAt(t *testing.T, board *chess.Board, name string) chess.Piece {
	t.Helper()
	piece, ok := board.Get(sq(name))
	if !ok {
		t.Fatalf("no piece on %s", name)
	}
	return piece
}
