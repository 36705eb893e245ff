package chess

// PieceID is an opaque identifier that follows a piece from move to move.
// Zero means "no piece".
type PieceID int

// Piece is a piece standing on the board.
type Piece struct {
	Kind     PieceKind
	Colour   Colour
	Square   Square
	HasMoved bool
	ID       PieceID
}

// IsEmpty reports whether the value denotes an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// Board represents a chess position with all state needed by the rules engine.
//
// Board is a value type: Copy (or plain assignment) yields an independent
// position, so simulations never leak back into the caller's board.
type Board struct {
	// The board squares, indexed [file][rank].
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// The current full-move number.
	MoveNumber uint

	// Remaining castling rights.
	Castling CastlingRights

	// Is EnPassant capture possible? If so then EPSquare holds the square
	// a pawn may capture into.
	EnPassant bool
	EPSquare  Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
}

// SetupInitialPosition sets up the standard chess starting position.
// Pieces are numbered 1..32 from a1 upwards.
func (b *Board) SetupInitialPosition() {
	b.Squares = [BoardSize][BoardSize]Piece{}

	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	id := PieceID(1)
	place := func(file, rank int, kind PieceKind, colour Colour) {
		b.Set(Sq(file, rank), Piece{Kind: kind, Colour: colour, ID: id})
		id++
	}
	for file := 0; file < BoardSize; file++ {
		place(file, 0, backRank[file], White)
	}
	for file := 0; file < BoardSize; file++ {
		place(file, 1, Pawn, White)
	}
	for file := 0; file < BoardSize; file++ {
		place(file, 6, Pawn, Black)
	}
	for file := 0; file < BoardSize; file++ {
		place(file, 7, backRank[file], Black)
	}

	b.Castling = AllCastling
	b.ToMove = White
	b.MoveNumber = 1
	b.EnPassant = false
	b.HalfmoveClock = 0
}

// Get returns the piece on the square. The second result is false when the
// square is empty or off the board.
func (b *Board) Get(sq Square) (Piece, bool) {
	if !sq.Valid() {
		return Piece{}, false
	}
	p := b.Squares[sq.File][sq.Rank]
	return p, !p.IsEmpty()
}

// IsEmpty reports whether an on-board square holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return sq.Valid() && b.Squares[sq.File][sq.Rank].IsEmpty()
}

// HasEnemyPiece reports whether the square holds a piece of the other colour.
func (b *Board) HasEnemyPiece(sq Square, colour Colour) bool {
	p, ok := b.Get(sq)
	return ok && p.Colour != colour
}

// Set places a piece on the square, recording the square in the piece.
func (b *Board) Set(sq Square, piece Piece) {
	if !sq.Valid() {
		return
	}
	piece.Square = sq
	b.Squares[sq.File][sq.Rank] = piece
}

// Clear empties the square.
func (b *Board) Clear(sq Square) {
	if sq.Valid() {
		b.Squares[sq.File][sq.Rank] = Piece{}
	}
}

// Pieces returns the pieces of the given colour in a1..h8 scan order.
func (b *Board) Pieces(colour Colour) []Piece {
	pieces := make([]Piece, 0, 16)
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			p := b.Squares[file][rank]
			if !p.IsEmpty() && p.Colour == colour {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// PieceByID finds a piece by its identifier.
func (b *Board) PieceByID(id PieceID) (Piece, bool) {
	if id == 0 {
		return Piece{}, false
	}
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if p := b.Squares[file][rank]; !p.IsEmpty() && p.ID == id {
				return p, true
			}
		}
	}
	return Piece{}, false
}

// Kings returns the squares of every king of the given colour.
func (b *Board) Kings(colour Colour) []Square {
	var kings []Square
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if p := b.Squares[file][rank]; p.Kind == King && p.Colour == colour {
				kings = append(kings, p.Square)
			}
		}
	}
	return kings
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}
