// Package hashing provides Zobrist position keys and a transposition table
// for move-tree counting.
package hashing

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// zobrist holds the random keys; they are fixed for the life of the program
// so keys are comparable across goroutines.
var zobrist struct {
	pieces   [2][7][chess.NumSquares]uint64
	side     uint64
	castling [16]uint64
	epFile   [chess.BoardSize]uint64
}

func init() {
	seed := uint64(0x9E3779B97F4A7C15)
	next := func() uint64 {
		// splitmix64
		seed += 0x9E3779B97F4A7C15
		z := seed
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}
	for c := range zobrist.pieces {
		for k := range zobrist.pieces[c] {
			for sq := range zobrist.pieces[c][k] {
				zobrist.pieces[c][k][sq] = next()
			}
		}
	}
	zobrist.side = next()
	for i := range zobrist.castling {
		zobrist.castling[i] = next()
	}
	for i := range zobrist.epFile {
		zobrist.epFile[i] = next()
	}
}

// Zobrist returns the key of everything that decides the legal moves of a
// position: placement, side to move, castling rights and the en passant
// target. Clocks and piece IDs are not part of the key.
func Zobrist(board *chess.Board) uint64 {
	if board == nil {
		return 0
	}
	var key uint64
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			p := board.Squares[file][rank]
			if p.IsEmpty() {
				continue
			}
			key ^= zobrist.pieces[p.Colour][p.Kind][chess.Sq(file, rank).Index()]
		}
	}
	if board.ToMove == chess.Black {
		key ^= zobrist.side
	}
	key ^= zobrist.castling[board.Castling&chess.AllCastling]
	if board.EnPassant {
		key ^= zobrist.epFile[board.EPSquare.File]
	}
	return key
}
