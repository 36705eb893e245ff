package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnCandidates generates pawn pushes, double pushes, captures and en
// passant captures. Moves onto the last rank expand into one move per
// promotion kind.
func pawnCandidates(board *chess.Board, pawn chess.Piece) []chess.Move {
	var moves []chess.Move
	dir := chess.ColourOffset(pawn.Colour)

	// Forward moves
	oneForward := pawn.Square.Offset(0, dir)
	if board.IsEmpty(oneForward) {
		moves = appendPawnMove(moves, chess.Move{PieceID: pawn.ID, From: pawn.Square, To: oneForward}, pawn.Colour)

		// Double push from the starting rank
		if !pawn.HasMoved && pawn.Square.Rank == chess.PawnStartRank(pawn.Colour) {
			twoForward := pawn.Square.Offset(0, 2*dir)
			if board.IsEmpty(twoForward) {
				moves = append(moves, chess.Move{PieceID: pawn.ID, From: pawn.Square, To: twoForward})
			}
		}
	}

	// Captures
	for _, df := range []int{-1, 1} {
		to := pawn.Square.Offset(df, dir)
		if !to.Valid() {
			continue
		}
		if target, ok := board.Get(to); ok {
			if target.Colour != pawn.Colour {
				moves = appendPawnMove(moves, newMove(board, pawn, to), pawn.Colour)
			}
			continue
		}
		if board.EnPassant && board.EPSquare == to {
			victim, ok := board.Get(enPassantVictim(to, pawn.Colour))
			if ok && victim.Kind == chess.Pawn && victim.Colour != pawn.Colour {
				moves = append(moves, chess.Move{
					PieceID:         pawn.ID,
					From:            pawn.Square,
					To:              to,
					CapturedPieceID: victim.ID,
					IsEnPassant:     true,
				})
			}
		}
	}

	return moves
}

// appendPawnMove appends move, expanding it into promotions when it reaches
// the last rank.
func appendPawnMove(moves []chess.Move, move chess.Move, colour chess.Colour) []chess.Move {
	if move.To.Rank != chess.PromotionRank(colour) {
		return append(moves, move)
	}
	for _, kind := range chess.PromotionKinds {
		promo := move
		promo.Promotion = kind
		moves = append(moves, promo)
	}
	return moves
}

// enPassantVictim returns the square of the pawn removed by an en passant
// capture landing on target.
func enPassantVictim(target chess.Square, capturer chess.Colour) chess.Square {
	return target.Offset(0, -chess.ColourOffset(capturer))
}

// isDoublePush reports whether a pawn move advances two ranks.
func isDoublePush(from, to chess.Square) bool {
	return from.File == to.File && abs(to.Rank-from.Rank) == 2
}
