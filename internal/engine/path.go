package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsPathClear reports whether every square strictly between from and to is
// empty. It is only meaningful for squares on a common rank, file or
// diagonal; sliding-piece callers guarantee that.
func IsPathClear(board *chess.Board, from, to chess.Square) bool {
	fileDir := sign(to.File - from.File)
	rankDir := sign(to.Rank - from.Rank)

	sq := from.Offset(fileDir, rankDir)
	for sq != to && sq.Valid() {
		if !board.IsEmpty(sq) {
			return false
		}
		sq = sq.Offset(fileDir, rankDir)
	}

	return true
}

// isCollinear reports whether from and to share a rank, file or diagonal.
func isCollinear(from, to chess.Square) bool {
	fileDiff := abs(to.File - from.File)
	rankDiff := abs(to.Rank - from.Rank)
	return fileDiff == 0 || rankDiff == 0 || fileDiff == rankDiff
}

// canSlideTo checks the geometry of a sliding move from one square to
// another: the direction must suit the kind and the path must be clear.
func canSlideTo(board *chess.Board, kind chess.PieceKind, from, to chess.Square) bool {
	if from == to {
		return false
	}
	fileDiff := abs(to.File - from.File)
	rankDiff := abs(to.Rank - from.Rank)

	switch kind {
	case chess.Bishop:
		if fileDiff != rankDiff {
			return false
		}
	case chess.Rook:
		if fileDiff != 0 && rankDiff != 0 {
			return false
		}
	case chess.Queen:
		if !isCollinear(from, to) {
			return false
		}
	case chess.Empty, chess.Pawn, chess.Knight, chess.King:
		return false
	}

	return IsPathClear(board, from, to)
}
