package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// IsKingInCheck returns true if the given colour's king is attacked.
// A board without exactly one king of that colour is malformed and yields an
// error wrapping errors.ErrInvalidBoardState.
func IsKingInCheck(board *chess.Board, colour chess.Colour) (bool, error) {
	kingSq, err := findKing(board, colour)
	if err != nil {
		return false, err
	}
	return IsSquareAttacked(board, kingSq, colour.Opposite()), nil
}

// findKing finds the single king of the given colour on the board.
func findKing(board *chess.Board, colour chess.Colour) (chess.Square, error) {
	kings := board.Kings(colour)
	switch len(kings) {
	case 1:
		return kings[0], nil
	case 0:
		return chess.Square{}, errors.Wrapf(errors.ErrInvalidBoardState, "no %s king", colour)
	default:
		return chess.Square{}, errors.Wrapf(errors.ErrInvalidBoardState, "%d %s kings", len(kings), colour)
	}
}

// inCheck is the total form of IsKingInCheck used inside the engine: a colour
// with no king is never in check.
func inCheck(board *chess.Board, colour chess.Colour) bool {
	for _, sq := range board.Kings(colour) {
		if IsSquareAttacked(board, sq, colour.Opposite()) {
			return true
		}
	}
	return false
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
// Whose turn it is plays no part, and pinned pieces still attack.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	for _, piece := range board.Pieces(byColour) {
		if attacks(board, piece, sq) {
			return true
		}
	}
	return false
}

// Attackers returns the pieces of the given colour attacking the square.
func Attackers(board *chess.Board, sq chess.Square, byColour chess.Colour) []chess.Piece {
	var attackers []chess.Piece
	for _, piece := range board.Pieces(byColour) {
		if attacks(board, piece, sq) {
			attackers = append(attackers, piece)
		}
	}
	return attackers
}

// AttackedSquares returns every square attacked by the given colour.
func AttackedSquares(board *chess.Board, byColour chess.Colour) chess.SquareSet {
	var set chess.SquareSet
	pieces := board.Pieces(byColour)
	for i := 0; i < chess.NumSquares; i++ {
		sq := chess.SquareFromIndex(i)
		for _, piece := range pieces {
			if attacks(board, piece, sq) {
				set = set.Add(sq)
				break
			}
		}
	}
	return set
}

// attacks reports whether the piece could capture on the target square if an
// enemy piece stood there.
func attacks(board *chess.Board, piece chess.Piece, target chess.Square) bool {
	from := piece.Square
	if from == target || !target.Valid() {
		return false
	}
	fileDiff := abs(target.File - from.File)
	rankDiff := abs(target.Rank - from.Rank)

	switch piece.Kind {
	case chess.Pawn:
		// Only the two diagonal-forward squares, never straight ahead.
		return fileDiff == 1 && target.Rank-from.Rank == chess.ColourOffset(piece.Colour)

	case chess.Knight:
		return (fileDiff == 1 && rankDiff == 2) || (fileDiff == 2 && rankDiff == 1)

	case chess.King:
		return fileDiff <= 1 && rankDiff <= 1

	case chess.Bishop, chess.Rook, chess.Queen:
		return canSlideTo(board, piece.Kind, from, target)

	case chess.Empty:
		return false
	}

	return false
}
