package chess

// Move represents a single move. A Move is a value: applying it yields a new
// Board and never modifies the board it was generated from.
type Move struct {
	// The piece being moved.
	PieceID PieceID

	// Source and destination squares.
	From Square
	To   Square

	// The piece captured (0 if no capture).
	CapturedPieceID PieceID

	IsEnPassant bool
	IsCastle    bool

	// The kind promoted to (Empty if not a promotion).
	Promotion PieceKind
}

// IsCapture returns true if this move is a capture.
func (m Move) IsCapture() bool {
	return m.CapturedPieceID != 0 || m.IsEnPassant
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion != Empty
}

// IsKingside reports whether a castling move goes towards the h-file.
func (m Move) IsKingside() bool {
	return m.IsCastle && m.To.File > m.From.File
}

// UCI returns the move in long algebraic coordinate form, e.g. "e2e4" or "e7e8q".
func (m Move) UCI() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}

// String returns the UCI form of the move.
func (m Move) String() string {
	return m.UCI()
}
