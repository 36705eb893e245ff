// Package chess provides core chess types and operations.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	Empty PieceKind = iota // No piece
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	switch k {
	case Pawn:
		return 'P'
	case Knight:
		return 'N'
	case Bishop:
		return 'B'
	case Rook:
		return 'R'
	case Queen:
		return 'Q'
	case King:
		return 'K'
	}
	return '?'
}

// Slides reports whether the kind moves along rays until blocked.
func (k PieceKind) Slides() bool {
	switch k {
	case Bishop, Rook, Queen:
		return true
	case Empty, Pawn, Knight, King:
		return false
	}
	return false
}

// PromotionKinds lists the kinds a pawn may promote to, strongest first.
var PromotionKinds = [...]PieceKind{Queen, Rook, Bishop, Knight}

// Board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize
)

// Square is a (file, rank) pair. File 0 is the a-file, rank 0 is the first rank.
type Square struct {
	File int
	Rank int
}

// Sq is shorthand for constructing a Square.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Offset returns the square displaced by the given file and rank deltas.
// The result may be off the board; callers check Valid.
func (s Square) Offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}

// Index returns the 0..63 index of the square (a1 = 0, h8 = 63).
func (s Square) Index() int {
	return s.Rank*BoardSize + s.File
}

// SquareFromIndex is the inverse of Index.
func SquareFromIndex(i int) Square {
	return Square{File: i % BoardSize, Rank: i / BoardSize}
}

// IsLight reports whether the square is a light square.
func (s Square) IsLight() bool {
	return (s.File+s.Rank)%2 == 1
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.File, s.Rank)
	}
	return string([]byte{byte('a' + s.File), byte('1' + s.Rank)})
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(name string) (Square, bool) {
	if len(name) != 2 {
		return Square{}, false
	}
	s := Square{File: int(name[0]) - 'a', Rank: int(name[1]) - '1'}
	if !s.Valid() {
		return Square{}, false
	}
	return s, true
}

// SquareSet is a set of squares packed into a 64-bit mask.
type SquareSet uint64

// Add returns the set with sq included.
func (s SquareSet) Add(sq Square) SquareSet {
	return s | 1<<uint(sq.Index())
}

// Contains reports whether sq is in the set.
func (s SquareSet) Contains(sq Square) bool {
	if !sq.Valid() {
		return false
	}
	return s&(1<<uint(sq.Index())) != 0
}

// Count returns the number of squares in the set.
func (s SquareSet) Count() int {
	n := 0
	for v := s; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// Squares returns the members of the set in index order.
func (s SquareSet) Squares() []Square {
	squares := make([]Square, 0, s.Count())
	for i := 0; i < NumSquares; i++ {
		if s&(1<<uint(i)) != 0 {
			squares = append(squares, SquareFromIndex(i))
		}
	}
	return squares
}

// CastlingRights holds the four independent castling flags.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has reports whether all flags in r are set.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r
}

// CastlingRight returns the flag for the given colour and wing.
func CastlingRight(colour Colour, kingside bool) CastlingRights {
	switch {
	case colour == White && kingside:
		return WhiteKingside
	case colour == White:
		return WhiteQueenside
	case kingside:
		return BlackKingside
	default:
		return BlackQueenside
	}
}

// HomeRank returns the back rank for the colour.
func HomeRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// PawnStartRank returns the rank an unmoved pawn of the colour stands on.
func PawnStartRank(colour Colour) int {
	if colour == White {
		return 1
	}
	return BoardSize - 2
}

// PromotionRank returns the rank on which a pawn of the colour promotes.
func PromotionRank(colour Colour) int {
	if colour == White {
		return BoardSize - 1
	}
	return 0
}
