package engine

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

var uciPromotions = map[byte]chess.PieceKind{
	'n': chess.Knight,
	'b': chess.Bishop,
	'r': chess.Rook,
	'q': chess.Queen,
}

// ParseUCIMove resolves a coordinate move such as "e2e4" or "e7e8q" against
// the legal moves of board. Castling is written as the king's two-square
// move. Malformed or illegal input yields an error wrapping
// errors.ErrIllegalMove.
func ParseUCIMove(board *chess.Board, s string) (chess.Move, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	fail := func() (chess.Move, error) {
		return chess.Move{}, &errors.PositionError{Err: errors.ErrIllegalMove, FEN: BoardToFEN(board), Move: s}
	}
	if len(s) != 4 && len(s) != 5 {
		return fail()
	}
	from, ok := chess.ParseSquare(s[0:2])
	if !ok {
		return fail()
	}
	to, ok := chess.ParseSquare(s[2:4])
	if !ok {
		return fail()
	}
	promotion := chess.Empty
	if len(s) == 5 {
		if promotion, ok = uciPromotions[s[4]]; !ok {
			return fail()
		}
	}
	move, ok := ResolveMove(board, from, to, promotion)
	if !ok {
		return fail()
	}
	return move, nil
}

// PlayUCI plays a sequence of coordinate moves from board and returns the
// resulting position. The input board is not modified.
func PlayUCI(board *chess.Board, moves ...string) (*chess.Board, error) {
	for _, s := range moves {
		move, err := ParseUCIMove(board, s)
		if err != nil {
			return nil, err
		}
		if board, err = PlayMove(board, move); err != nil {
			return nil, err
		}
	}
	return board, nil
}
