package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

	diagonalDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allDirs      = append(append([][2]int{}, straightDirs...), diagonalDirs...)
)

// CandidateMoves generates the pseudo-legal moves of a piece: moves that obey
// its movement geometry and never capture a friendly piece, without regard
// to whether they leave the mover's king in check. Castling candidates are
// offered for any unmoved king and resolved by the legality filter.
func CandidateMoves(board *chess.Board, piece chess.Piece) []chess.Move {
	switch piece.Kind {
	case chess.Pawn:
		return pawnCandidates(board, piece)
	case chess.Knight:
		return stepCandidates(board, piece, knightOffsets)
	case chess.Bishop:
		return slidingCandidates(board, piece, diagonalDirs)
	case chess.Rook:
		return slidingCandidates(board, piece, straightDirs)
	case chess.Queen:
		return slidingCandidates(board, piece, allDirs)
	case chess.King:
		return append(stepCandidates(board, piece, kingOffsets), castleCandidates(board, piece)...)
	case chess.Empty:
		return nil
	}
	return nil
}

// PseudoLegalMoves returns the candidate moves of every piece of the side to move.
func PseudoLegalMoves(board *chess.Board) []chess.Move {
	var moves []chess.Move
	for _, piece := range board.Pieces(board.ToMove) {
		moves = append(moves, CandidateMoves(board, piece)...)
	}
	return moves
}

// newMove builds a move of piece to the target square, recording any capture.
func newMove(board *chess.Board, piece chess.Piece, to chess.Square) chess.Move {
	move := chess.Move{PieceID: piece.ID, From: piece.Square, To: to}
	if target, ok := board.Get(to); ok {
		move.CapturedPieceID = target.ID
	}
	return move
}

// stepCandidates handles pieces that jump to fixed offsets (knight, king).
func stepCandidates(board *chess.Board, piece chess.Piece, offsets [][2]int) []chess.Move {
	moves := make([]chess.Move, 0, len(offsets))
	for _, offset := range offsets {
		to := piece.Square.Offset(offset[0], offset[1])
		if !to.Valid() {
			continue
		}
		if target, ok := board.Get(to); ok && target.Colour == piece.Colour {
			continue
		}
		moves = append(moves, newMove(board, piece, to))
	}
	return moves
}

// slidingCandidates walks each ray up to and including the first occupied
// square, which is kept only when it holds an enemy piece.
func slidingCandidates(board *chess.Board, piece chess.Piece, dirs [][2]int) []chess.Move {
	var moves []chess.Move
	for _, dir := range dirs {
		to := piece.Square.Offset(dir[0], dir[1])
		for to.Valid() {
			target, occupied := board.Get(to)
			if occupied {
				if target.Colour != piece.Colour {
					moves = append(moves, newMove(board, piece, to))
				}
				break // Blocked
			}
			moves = append(moves, newMove(board, piece, to))
			to = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}

// castleCandidates offers the two-file king moves of an unmoved king onto
// an empty square.
func castleCandidates(board *chess.Board, king chess.Piece) []chess.Move {
	if king.HasMoved {
		return nil
	}
	var moves []chess.Move
	for _, df := range []int{2, -2} {
		to := king.Square.Offset(df, 0)
		if board.IsEmpty(to) {
			moves = append(moves, chess.Move{PieceID: king.ID, From: king.Square, To: to, IsCastle: true})
		}
	}
	return moves
}
