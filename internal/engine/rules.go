// Package engine provides chess move generation, legality checking and
// game-state classification.
//
// Every function is a pure query over a *chess.Board: boards passed in are
// never modified, and simulations run on private copies, so any number of
// goroutines may query the same board concurrently.
package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// FiftyMoveLimit is the half-move clock value at which the fifty-move rule
// applies (fifty moves by each side).
const FiftyMoveLimit = 100

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes only:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.PieceKind
	var whiteBishopOnLight, blackBishopOnLight bool

	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			piece, ok := board.Get(chess.Sq(file, rank))
			if !ok {
				continue
			}

			switch piece.Kind {
			case chess.King:
				// Kings don't count for material
				continue
			case chess.Pawn, chess.Rook, chess.Queen:
				// Any pawn, rook, or queen means sufficient material
				return false
			case chess.Bishop, chess.Knight, chess.Empty:
			}

			if piece.Colour == chess.White {
				whitePieces = append(whitePieces, piece.Kind)
				if piece.Kind == chess.Bishop {
					whiteBishopOnLight = piece.Square.IsLight()
				}
			} else {
				blackPieces = append(blackPieces, piece.Kind)
				if piece.Kind == chess.Bishop {
					blackBishopOnLight = piece.Square.IsLight()
				}
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return true
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return true
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 {
		if whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
			return whiteBishopOnLight == blackBishopOnLight
		}
	}

	return false
}

// IsFiftyMoveDraw reports whether the half-move clock has reached the
// fifty-move limit.
func IsFiftyMoveDraw(board *chess.Board) bool {
	return board.HalfmoveClock >= FiftyMoveLimit
}
