package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// StatusKind classifies a position.
type StatusKind int

const (
	InProgress StatusKind = iota
	Check
	Checkmate
	Stalemate
	Draw
)

// String returns the string representation of a status kind.
func (k StatusKind) String() string {
	switch k {
	case InProgress:
		return "InProgress"
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	case Draw:
		return "Draw"
	}
	return "Unknown"
}

// DrawReason says why a position is drawn.
type DrawReason int

const (
	NoDraw DrawReason = iota
	InsufficientMaterial
	FiftyMoveRule
)

// String returns the string representation of a draw reason.
func (r DrawReason) String() string {
	switch r {
	case NoDraw:
		return "None"
	case InsufficientMaterial:
		return "InsufficientMaterial"
	case FiftyMoveRule:
		return "FiftyMoveRule"
	}
	return "Unknown"
}

// GameStatus is the classification of a single position.
type GameStatus struct {
	Kind StatusKind

	// For Check, the colour in check; for Checkmate, the winner.
	Colour chess.Colour

	// Set only when Kind is Draw.
	Reason DrawReason
}

// IsTerminal reports whether the game is over.
func (s GameStatus) IsTerminal() bool {
	switch s.Kind {
	case Checkmate, Stalemate, Draw:
		return true
	case InProgress, Check:
		return false
	}
	return false
}

// String returns a readable form such as "Checkmate(Black)" or
// "Draw(FiftyMoveRule)".
func (s GameStatus) String() string {
	switch s.Kind {
	case Check, Checkmate:
		return fmt.Sprintf("%s(%s)", s.Kind, s.Colour)
	case Draw:
		return fmt.Sprintf("%s(%s)", s.Kind, s.Reason)
	case InProgress, Stalemate:
		return s.Kind.String()
	}
	return s.Kind.String()
}

// Classify evaluates the position for the side to move. Positions without
// legal moves are checkmate or stalemate regardless of material or clock;
// otherwise insufficient material, then the fifty-move rule, then check are
// reported. Classify is total: it never fails, even on a board lacking kings.
func Classify(board *chess.Board) GameStatus {
	colour := board.ToMove
	checked := inCheck(board, colour)

	if !HasLegalMoves(board) {
		if checked {
			return GameStatus{Kind: Checkmate, Colour: colour.Opposite()}
		}
		return GameStatus{Kind: Stalemate}
	}

	if HasInsufficientMaterial(board) {
		return GameStatus{Kind: Draw, Reason: InsufficientMaterial}
	}
	if IsFiftyMoveDraw(board) {
		return GameStatus{Kind: Draw, Reason: FiftyMoveRule}
	}
	if checked {
		return GameStatus{Kind: Check, Colour: colour}
	}
	return GameStatus{Kind: InProgress}
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	return inCheck(board, board.ToMove) && !HasLegalMoves(board)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	return !inCheck(board, board.ToMove) && !HasLegalMoves(board)
}
