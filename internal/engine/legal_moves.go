package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsLegalMove reports whether move is legal for the side to move. A move is
// matched against the candidates of the piece on move.From by destination
// and promotion kind (and by PieceID when it is non-zero); capture, castling
// and en passant flags are taken from the board rather than from the
// argument. Moves by the wrong side, from an empty square or with
// From == To are simply not legal.
func IsLegalMove(board *chess.Board, move chess.Move) bool {
	_, ok := matchLegalMove(board, move)
	return ok
}

// ResolveMove returns the fully populated legal move from one square to
// another, or false when there is none. promotion is ignored unless the
// move promotes, in which case it must name the promotion kind.
func ResolveMove(board *chess.Board, from, to chess.Square, promotion chess.PieceKind) (chess.Move, bool) {
	return matchLegalMove(board, chess.Move{From: from, To: to, Promotion: promotion})
}

// matchLegalMove finds the legal candidate that move denotes.
func matchLegalMove(board *chess.Board, move chess.Move) (chess.Move, bool) {
	if move.From == move.To {
		return chess.Move{}, false
	}
	piece, ok := board.Get(move.From)
	if !ok || piece.Colour != board.ToMove {
		return chess.Move{}, false
	}
	if move.PieceID != 0 && move.PieceID != piece.ID {
		return chess.Move{}, false
	}

	for _, candidate := range CandidateMoves(board, piece) {
		if candidate.To != move.To {
			continue
		}
		if candidate.IsPromotion() && candidate.Promotion != move.Promotion {
			continue
		}
		if !candidate.IsPromotion() && move.IsPromotion() {
			continue
		}
		if isLegalCandidate(board, piece, candidate) {
			return candidate, true
		}
		return chess.Move{}, false
	}
	return chess.Move{}, false
}

// LegalMoves returns the legal moves of a piece. A piece that does not
// belong to the side to move, or no longer stands where it claims to, has
// none.
func LegalMoves(board *chess.Board, piece chess.Piece) []chess.Move {
	if piece.Colour != board.ToMove {
		return nil
	}
	current, ok := board.Get(piece.Square)
	if !ok || current.ID != piece.ID || current.Kind != piece.Kind || current.Colour != piece.Colour {
		return nil
	}

	var moves []chess.Move
	for _, candidate := range CandidateMoves(board, current) {
		if isLegalCandidate(board, current, candidate) {
			moves = append(moves, candidate)
		}
	}
	return moves
}

// AllLegalMoves returns every legal move of the side to move, ordered by the
// square of the moving piece (a1..h8) and then by generation order.
func AllLegalMoves(board *chess.Board) []chess.Move {
	var moves []chess.Move
	for _, piece := range board.Pieces(board.ToMove) {
		moves = append(moves, LegalMoves(board, piece)...)
	}
	return moves
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(board *chess.Board) bool {
	for _, piece := range board.Pieces(board.ToMove) {
		for _, candidate := range CandidateMoves(board, piece) {
			if isLegalCandidate(board, piece, candidate) {
				return true
			}
		}
	}
	return false
}

// isLegalCandidate filters a pseudo-legal move: basic movement constraints,
// castling preconditions, and a simulation on a copied board to make sure the
// mover's king is not left in check.
func isLegalCandidate(board *chess.Board, piece chess.Piece, move chess.Move) bool {
	if target, ok := board.Get(move.To); ok && target.Colour == piece.Colour {
		return false
	}
	if piece.Kind.Slides() && !canSlideTo(board, piece.Kind, move.From, move.To) {
		return false
	}
	if move.IsCastle && !canCastle(board, piece, move) {
		return false
	}
	return !inCheck(ApplyMove(board, move), piece.Colour)
}
