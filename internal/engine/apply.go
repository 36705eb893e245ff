package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ApplyMove returns the board that results from playing move. The argument
// board is never modified. The move is not checked for legality; castling,
// en passant and promotion are recognised from the geometry of the move on
// the board, and a promotion without a kind promotes to a queen.
//
// If move.From is empty the returned board is an unchanged copy.
func ApplyMove(board *chess.Board, move chess.Move) *chess.Board {
	next := board.Copy()

	piece, ok := next.Get(move.From)
	if !ok || move.From == move.To {
		return next
	}
	colour := piece.Colour

	// Work out what, if anything, is captured
	capturedOn := move.To
	if piece.Kind == chess.Pawn && move.From.File != move.To.File && next.IsEmpty(move.To) {
		capturedOn = enPassantVictim(move.To, colour)
	}
	captured, isCapture := next.Get(capturedOn)
	if isCapture && captured.Colour == colour {
		// Never capture a friendly piece
		return next
	}
	next.Clear(capturedOn)

	// Move the rook when castling
	if piece.Kind == chess.King && abs(move.To.File-move.From.File) == 2 {
		rookFrom, rookTo := castleRookSquares(move)
		if rook, ok := next.Get(rookFrom); ok {
			next.Clear(rookFrom)
			rook.HasMoved = true
			next.Set(rookTo, rook)
		}
	}

	// Move the piece
	moved := piece
	moved.HasMoved = true
	if piece.Kind == chess.Pawn && move.To.Rank == chess.PromotionRank(colour) {
		moved.Kind = move.Promotion
		if moved.Kind == chess.Empty || moved.Kind == chess.Pawn || moved.Kind == chess.King {
			moved.Kind = chess.Queen // Default to queen
		}
	}
	next.Clear(move.From)
	next.Set(move.To, moved)

	updateCastlingRights(next, piece, move.From, captured, capturedOn)

	// Set en passant square if double pawn push
	next.EnPassant = false
	if piece.Kind == chess.Pawn && isDoublePush(move.From, move.To) {
		next.EnPassant = true
		next.EPSquare = move.From.Offset(0, chess.ColourOffset(colour))
	}

	// Update halfmove clock
	if piece.Kind == chess.Pawn || isCapture {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}

	if board.ToMove == chess.Black {
		next.MoveNumber++
	}
	next.ToMove = board.ToMove.Opposite()

	return next
}

// PlayMove applies move after checking that it is legal. Illegal moves yield
// an error wrapping errors.ErrIllegalMove.
func PlayMove(board *chess.Board, move chess.Move) (*chess.Board, error) {
	resolved, ok := matchLegalMove(board, move)
	if !ok {
		return nil, &errors.PositionError{
			Err:  errors.ErrIllegalMove,
			FEN:  BoardToFEN(board),
			Move: move.UCI(),
		}
	}
	return ApplyMove(board, resolved), nil
}
