package oracle

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

var positions = []struct {
	name string
	fen  string
}{
	{"start", testutil.StartFEN},
	{"kiwipete", testutil.KiwipeteFEN},
	{"position 3", testutil.Position3FEN},
	{"position 4", testutil.Position4FEN},
	{"position 5", testutil.Position5FEN},
	{"fool's mate", testutil.FoolsMateFEN},
	{"stalemate", testutil.StalemateFEN},
	{"back rank mate", testutil.BackRankFEN},
	{"en passant", "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3"},
	{"promotions", "n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1"},
}

func TestGeneratorsAgreeWithEngine(t *testing.T) {
	for _, pos := range positions {
		t.Run(pos.name, func(t *testing.T) {
			board, err := engine.NewBoardFromFEN(pos.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) error = %v", pos.fen, err)
			}
			ours := EngineMoves(board)
			for _, gen := range All() {
				theirs, err := gen.LegalMoves(pos.fen)
				if err != nil {
					t.Fatalf("%s.LegalMoves() error = %v", gen.Name(), err)
				}
				testutil.AssertSameMoves(t, ours, theirs, gen.Name())
			}
		})
	}
}

func TestVerify(t *testing.T) {
	for _, pos := range positions {
		t.Run(pos.name, func(t *testing.T) {
			board, err := engine.NewBoardFromFEN(pos.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) error = %v", pos.fen, err)
			}
			report, err := Verify(board)
			if err != nil {
				t.Fatalf("Verify() error = %v", err)
			}
			for _, m := range report.Mismatches {
				t.Error(m)
			}
			testutil.AssertEqual(t, report.FEN, pos.fen)
		})
	}
}

func TestVerifyTree(t *testing.T) {
	depth := 2
	if testing.Short() {
		depth = 1
	}
	for _, fen := range []string{testutil.KiwipeteFEN, testutil.Position3FEN, testutil.Position4FEN} {
		board, err := engine.NewBoardFromFEN(fen)
		if err != nil {
			t.Fatalf("NewBoardFromFEN(%q) error = %v", fen, err)
		}
		failed, err := VerifyTree(board, depth, Goose{})
		if err != nil {
			t.Fatalf("VerifyTree() error = %v", err)
		}
		for _, r := range failed {
			for _, m := range r.Mismatches {
				t.Errorf("%s: %s", r.FEN, m)
			}
		}
	}
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name        string
		want, got   []string
		wantMissing []string
		wantExtra   []string
	}{
		{"equal", []string{"a2a3", "e2e4"}, []string{"a2a3", "e2e4"}, nil, nil},
		{"missing", []string{"a2a3", "e2e4"}, []string{"e2e4"}, []string{"a2a3"}, nil},
		{"extra", []string{"e2e4"}, []string{"e1g1", "e2e4"}, nil, []string{"e1g1"}},
		{"both", []string{"a7a8q"}, []string{"a7a8"}, []string{"a7a8q"}, []string{"a7a8"}},
		{"empty", nil, nil, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			missing, extra := Diff(tt.want, tt.got)
			testutil.AssertEqual(t, missing, tt.wantMissing, "missing")
			testutil.AssertEqual(t, extra, tt.wantExtra, "extra")
		})
	}
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want Outcome
	}{
		{"start", testutil.StartFEN, Outcome{}},
		{"checkmate", testutil.BackRankFEN, Outcome{Checkmate: true}},
		{"stalemate", testutil.StalemateFEN, Outcome{Stalemate: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, gen := range All() {
				got, err := gen.Outcome(tt.fen)
				if err != nil {
					t.Fatalf("%s.Outcome() error = %v", gen.Name(), err)
				}
				testutil.AssertEqual(t, got, tt.want, gen.Name())
			}
		})
	}
}

func TestInvalidFEN(t *testing.T) {
	for _, gen := range []Generator{Goose{}, Notnil{}} {
		_, err := gen.LegalMoves("not a fen")
		testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN, gen.Name())
	}
}

func TestByName(t *testing.T) {
	gens, err := ByName("goosemg", "dragontoothmg")
	if err != nil {
		t.Fatalf("ByName() error = %v", err)
	}
	if len(gens) != 2 || gens[0].Name() != "goosemg" || gens[1].Name() != "dragontoothmg" {
		t.Errorf("ByName() = %v; want goosemg, dragontoothmg", gens)
	}
	if _, err := ByName("stockfish"); err == nil {
		t.Error("ByName(unknown) should fail")
	}
}

func TestMismatchString(t *testing.T) {
	m := Mismatch{Generator: "goosemg", Missing: []string{"e1g1"}, Extra: []string{"e1c1"}}
	testutil.AssertEqual(t, m.String(), "goosemg: missing e1g1; extra e1c1")
}
