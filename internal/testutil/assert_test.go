package testutil

import (
	"fmt"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Failure paths need a mock *testing.T, so these cover the passing paths
// and the message formatting.

func TestAssertEqual(t *testing.T) {
	AssertEqual(t, "e2e4", "e2e4")
	AssertEqual(t, []uint64{20, 400}, []uint64{20, 400})
	AssertEqual(t, PerftCases[0], PerftCases[0], "case %s", PerftCases[0].Name)
	AssertEqual(t, nil, nil)
}

func TestAssertSameMoves(t *testing.T) {
	AssertSameMoves(t, []string{"e2e4", "d2d4"}, []string{"d2d4", "e2e4"})
	AssertSameMoves(t, nil, []string{})
}

func TestAssertErrorIs(t *testing.T) {
	err := fmt.Errorf("rank 9: %w", errors.ErrInvalidFEN)
	AssertErrorIs(t, err, errors.ErrInvalidFEN)
	AssertErrorIs(t, &errors.PositionError{Err: errors.ErrIllegalMove}, errors.ErrIllegalMove, "play")
}

func TestAssertContains(t *testing.T) {
	AssertContains(t, StartFEN, "KQkq")
	AssertContains(t, StartFEN, "")
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"start"}, "start"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"depth %d", 3}, "depth 3"},
		{"format multiple", []interface{}{"%s depth %d", "kiwipete", 2}, "kiwipete depth 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestPerftCasesWellFormed(t *testing.T) {
	for _, tc := range PerftCases {
		if tc.Name == "" || tc.FEN == "" || len(tc.Nodes) == 0 {
			t.Errorf("incomplete perft case %+v", tc)
		}
		for i := 1; i < len(tc.Nodes); i++ {
			if tc.Nodes[i] <= tc.Nodes[i-1] {
				t.Errorf("%s: node counts must grow with depth: %v", tc.Name, tc.Nodes)
			}
		}
	}
}
