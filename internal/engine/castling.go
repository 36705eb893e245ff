package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// castleRookSquares returns where the rook starts and lands for a castling
// move of the king. The rook stands in the corner on the side the king moves
// towards and lands on the square the king passes over.
func castleRookSquares(move chess.Move) (from, to chess.Square) {
	dir := sign(move.To.File - move.From.File)
	rookFile := 0
	if dir > 0 {
		rookFile = chess.BoardSize - 1
	}
	return chess.Sq(rookFile, move.From.Rank), move.From.Offset(dir, 0)
}

// canCastle checks every castling precondition for a king move of two files:
// the matching right, an unmoved king on its home rank, an unmoved friendly
// rook in the corner, empty squares between them, and a king that is not in
// check and does not pass through or land on an attacked square.
func canCastle(board *chess.Board, king chess.Piece, move chess.Move) bool {
	if king.Kind != chess.King || king.HasMoved {
		return false
	}
	if move.From.Rank != chess.HomeRank(king.Colour) || move.To.Rank != move.From.Rank ||
		abs(move.To.File-move.From.File) != 2 {
		return false
	}

	kingside := move.To.File > move.From.File
	if !board.Castling.Has(chess.CastlingRight(king.Colour, kingside)) {
		return false
	}

	rookFrom, _ := castleRookSquares(move)
	rook, ok := board.Get(rookFrom)
	if !ok || rook.Kind != chess.Rook || rook.Colour != king.Colour || rook.HasMoved {
		return false
	}
	if !IsPathClear(board, move.From, rookFrom) {
		return false
	}

	// Origin, transit and destination squares must all be unattacked.
	enemy := king.Colour.Opposite()
	dir := sign(move.To.File - move.From.File)
	for sq := move.From; ; sq = sq.Offset(dir, 0) {
		if IsSquareAttacked(board, sq, enemy) {
			return false
		}
		if sq == move.To {
			break
		}
	}

	return true
}

// updateCastlingRights removes rights when a king or rook leaves its square
// or a rook is captured in its corner.
func updateCastlingRights(board *chess.Board, moved chess.Piece, from chess.Square, captured chess.Piece, capturedOn chess.Square) {
	switch moved.Kind {
	case chess.King:
		board.Castling &^= chess.CastlingRight(moved.Colour, true) | chess.CastlingRight(moved.Colour, false)
	case chess.Rook:
		clearRookRight(board, moved.Colour, from)
	}
	if captured.Kind == chess.Rook {
		clearRookRight(board, captured.Colour, capturedOn)
	}
}

// clearRookRight clears the right tied to a corner square of the colour.
func clearRookRight(board *chess.Board, colour chess.Colour, sq chess.Square) {
	if sq.Rank != chess.HomeRank(colour) {
		return
	}
	switch sq.File {
	case chess.BoardSize - 1:
		board.Castling &^= chess.CastlingRight(colour, true)
	case 0:
		board.Castling &^= chess.CastlingRight(colour, false)
	}
}
