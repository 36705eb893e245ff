package engine

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestParseUCIMove(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		move      string
		wantFlags func(chess.Move) bool
		wantErr   bool
	}{
		{"pawn push", InitialFEN, "e2e4", func(m chess.Move) bool { return !m.IsCapture() }, false},
		{"upper case accepted", InitialFEN, "G1F3", func(m chess.Move) bool { return m.To == sq("f3") }, false},
		{"castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1", func(m chess.Move) bool { return m.IsCastle }, false},
		{"en passant", "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", "e5d6", func(m chess.Move) bool { return m.IsEnPassant && m.IsCapture() }, false},
		{"under-promotion", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7a8n", func(m chess.Move) bool { return m.Promotion == chess.Knight }, false},
		{"promotion needs a kind", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7a8", nil, true},
		{"illegal", InitialFEN, "e2e5", nil, true},
		{"wrong side", InitialFEN, "e7e5", nil, true},
		{"bad square", InitialFEN, "e9e4", nil, true},
		{"bad promotion letter", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7a8k", nil, true},
		{"too short", InitialFEN, "e2", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			got, err := ParseUCIMove(board, tt.move)
			if tt.wantErr {
				if !stderrors.Is(err, errors.ErrIllegalMove) {
					t.Fatalf("ParseUCIMove(%q) error = %v; want ErrIllegalMove", tt.move, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseUCIMove(%q) error = %v", tt.move, err)
			}
			if !tt.wantFlags(got) {
				t.Errorf("ParseUCIMove(%q) = %+v", tt.move, got)
			}
		})
	}
}

func TestPlayUCI(t *testing.T) {
	start := NewInitialBoard()
	board, err := PlayUCI(start, "f2f3", "e7e5", "g2g4", "d8h4")
	if err != nil {
		t.Fatalf("PlayUCI() error = %v", err)
	}
	testutil.AssertEqual(t, BoardToFEN(board), testutil.FoolsMateFEN)
	testutil.AssertEqual(t, BoardToFEN(start), InitialFEN)

	_, err = PlayUCI(start, "e2e4", "e2e4")
	var perr *errors.PositionError
	if !stderrors.As(err, &perr) {
		t.Fatalf("PlayUCI(repeated move) error = %v; want PositionError", err)
	}
	testutil.AssertEqual(t, perr.Move, "e2e4")
}
