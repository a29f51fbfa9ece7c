package chess

// A Color is the side a piece belongs to.
type Color int8

const (
	// NoColor is the zero value; it never appears on a board.
	NoColor Color = iota
	// White moves first and advances toward higher rows.
	White
	// Black advances toward lower rows.
	Black
)

// Other returns the opposing color.
func (c Color) Other() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

// String implements the fmt.Stringer interface.
func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return "no color"
}

// A PieceType is one of the six chess piece variants. The set is closed:
// move generation dispatches on it with a single exhaustive switch so a new
// variant cannot be silently mishandled.
type PieceType int8

const (
	// NoPieceType is the zero value, used for "no promotion" and "no capture".
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Symbol returns the piece letter used in notation ("P", "N", "B", "R", "Q",
// "K").
func (t PieceType) Symbol() string {
	switch t {
	case Pawn:
		return "P"
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return ""
}

// String implements the fmt.Stringer interface and returns the type name.
func (t PieceType) String() string {
	switch t {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return "no piece"
}

// A CastleSide is one wing of the board for castling-rights bookkeeping.
type CastleSide int8

const (
	// QueenSide is the a-file wing.
	QueenSide CastleSide = iota
	// KingSide is the h-file wing.
	KingSide
)

// String implements the fmt.Stringer interface.
func (s CastleSide) String() string {
	if s == QueenSide {
		return "queen side"
	}
	return "king side"
}

// A Piece is a snapshot of one occupant: its immutable color and type plus
// its current position. Pieces are values handed out by the owning Board;
// they carry no reference back to it, so a retained Piece cannot dangle after
// capture.
type Piece struct {
	color Color
	typ   PieceType
	pos   Position
	alive bool
}

// Color returns the piece's side.
func (p Piece) Color() Color { return p.color }

// Type returns the piece's variant.
func (p Piece) Type() PieceType { return p.typ }

// Position returns the square the piece stands on.
func (p Piece) Position() Position { return p.pos }

// Symbol returns the display letter: lowercase for white, uppercase for
// black, matching the board orientation renderers expect.
func (p Piece) Symbol() string {
	s := p.typ.Symbol()
	if p.color == White {
		return string(s[0] | 0x20)
	}
	return s
}

// String implements the fmt.Stringer interface, e.g. "white pawn e2".
func (p Piece) String() string {
	return p.color.String() + " " + p.typ.String() + " " + p.pos.String()
}
