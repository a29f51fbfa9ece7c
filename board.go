package chess

import "fmt"

// A Board is the full placement state of one game: the 8x8 occupancy grid,
// the registry of live pieces, the king of each color, the pawn currently
// eligible to be captured en passant, and the castling-rights table.
//
// Pieces live in a flat arena and the grid stores arena indices, so Clone is
// a plain value copy and speculative move simulation never allocates a
// pointer graph. The active color is not board state; it belongs to the Game
// driving the board.
//
// A Board is not safe for concurrent use. A multi-game host must give each
// session exclusive access to its own Board.
type Board struct {
	grid      [boardSize * boardSize]int16 // arena index + 1, 0 = empty
	kings     [3]int16                     // per Color, arena index + 1
	enPassant int16                        // arena index + 1 of the double-stepped pawn
	rights    [3][2]bool                   // per Color, per CastleSide
	arena     []Piece
}

// NewEmptyBoard returns a board with no pieces and all castling rights set.
func NewEmptyBoard() *Board {
	b := &Board{}
	for _, c := range []Color{White, Black} {
		b.rights[c][QueenSide] = true
		b.rights[c][KingSide] = true
	}
	return b
}

// NewBoard returns a board with the standard starting position.
func NewBoard() *Board {
	b := NewEmptyBoard()
	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col, t := range backRank {
		b.mustAdd(t, White, Position{Row: 0, Col: col})
		b.mustAdd(t, Black, Position{Row: 7, Col: col})
	}
	for col := 0; col < boardSize; col++ {
		b.mustAdd(Pawn, White, Position{Row: 1, Col: col})
		b.mustAdd(Pawn, Black, Position{Row: 6, Col: col})
	}
	return b
}

func (b *Board) mustAdd(t PieceType, c Color, pos Position) {
	if err := b.Add(t, c, pos); err != nil {
		panic(err)
	}
}

// Piece returns the occupant of pos. The second return value is false when
// the square is empty or pos is out of range.
func (b *Board) Piece(pos Position) (Piece, bool) {
	if !pos.InRange() {
		return Piece{}, false
	}
	idx := b.grid[pos.square()]
	if idx == 0 {
		return Piece{}, false
	}
	return b.arena[idx-1], true
}

// Add places a new piece of the given type and color on pos. It fails with
// ErrOccupiedSquare if the square already holds a piece, ErrOutOfRange if
// pos is off the board. Kings are recorded in the per-color king lookup.
func (b *Board) Add(t PieceType, c Color, pos Position) error {
	if !pos.InRange() {
		return fmt.Errorf("%w: %s", ErrOutOfRange, pos)
	}
	if b.grid[pos.square()] != 0 {
		return fmt.Errorf("%w: %s", ErrOccupiedSquare, pos)
	}
	b.arena = append(b.arena, Piece{color: c, typ: t, pos: pos, alive: true})
	idx := int16(len(b.arena))
	b.grid[pos.square()] = idx
	if t == King {
		b.kings[c] = idx
	}
	return nil
}

// Remove detaches the occupant of pos from the board and returns it. It
// fails with ErrEmptySquare when nothing stands there. Removing the recorded
// en-passant pawn clears the en-passant target; removing a rook standing on
// its home corner clears that wing's castling right for its color, since the
// right can never be exercised again.
func (b *Board) Remove(pos Position) (Piece, error) {
	if !pos.InRange() {
		return Piece{}, fmt.Errorf("%w: %s", ErrOutOfRange, pos)
	}
	idx := b.grid[pos.square()]
	if idx == 0 {
		return Piece{}, fmt.Errorf("%w: %s", ErrEmptySquare, pos)
	}
	p := b.arena[idx-1]
	b.grid[pos.square()] = 0
	b.arena[idx-1].alive = false
	if b.enPassant == idx {
		b.enPassant = 0
	}
	if b.kings[p.color] == idx {
		b.kings[p.color] = 0
	}
	if p.typ == Rook {
		if side, ok := homeCornerSide(p.color, pos); ok {
			b.rights[p.color][side] = false
		}
	}
	return p, nil
}

// Move relocates the occupant of from to to. It fails with ErrNoPieceAt when
// from is empty and ErrOccupiedSquare when to is occupied; captures are the
// caller's job via Remove(to) first.
//
// Side effects on board state: a pawn double advance records that pawn as
// the en-passant target, any other move clears it; a king move clears both
// castling rights for its color; a rook moving off its home corner clears
// the matching wing's right.
func (b *Board) Move(from, to Position) error {
	if !from.InRange() || !to.InRange() {
		return fmt.Errorf("%w: %s-%s", ErrOutOfRange, from, to)
	}
	idx := b.grid[from.square()]
	if idx == 0 {
		return fmt.Errorf("%w: %s", ErrNoPieceAt, from)
	}
	if b.grid[to.square()] != 0 {
		return fmt.Errorf("%w: %s", ErrOccupiedSquare, to)
	}
	p := b.arena[idx-1]
	b.grid[from.square()] = 0
	b.grid[to.square()] = idx
	b.arena[idx-1].pos = to

	if p.typ == Pawn && to.Row == from.Row+2*pawnDirection(p.color) {
		b.enPassant = idx
	} else {
		b.enPassant = 0
	}

	switch p.typ {
	case King:
		b.rights[p.color][QueenSide] = false
		b.rights[p.color][KingSide] = false
	case Rook:
		if side, ok := homeCornerSide(p.color, from); ok {
			b.rights[p.color][side] = false
		}
	}
	return nil
}

// Clone returns a deep copy of the board. Mutating the clone never leaks
// into the original; the Game relies on this for speculative check
// detection on every move attempt.
func (b *Board) Clone() *Board {
	c := *b
	c.arena = make([]Piece, len(b.arena))
	copy(c.arena, b.arena)
	return &c
}

// Pieces returns the registry of live pieces in placement order.
func (b *Board) Pieces() []Piece {
	out := make([]Piece, 0, len(b.arena))
	for _, p := range b.arena {
		if p.alive {
			out = append(out, p)
		}
	}
	return out
}

// King returns the king of the given color, if one is on the board.
func (b *Board) King(c Color) (Piece, bool) {
	idx := b.kings[c]
	if idx == 0 {
		return Piece{}, false
	}
	return b.arena[idx-1], true
}

// EnPassantTarget returns the pawn that just completed a two-square advance,
// if any. Only that pawn may be captured en passant, and only on the very
// next move.
func (b *Board) EnPassantTarget() (Piece, bool) {
	if b.enPassant == 0 {
		return Piece{}, false
	}
	return b.arena[b.enPassant-1], true
}

// CastlingRight reports whether the given color may still castle on the
// given wing. The flag is eligibility bookkeeping only; whether castling is
// executable right now also depends on occupancy and checks.
func (b *Board) CastlingRight(c Color, side CastleSide) bool {
	return b.rights[c][side]
}

// setCastlingRight is used by the FEN decoder to seed the table. Rights are
// otherwise monotone: once cleared by Move or Remove they never come back.
func (b *Board) setCastlingRight(c Color, side CastleSide, v bool) {
	b.rights[c][side] = v
}

// setEnPassantPawn is used by the FEN decoder; pos must hold a pawn.
func (b *Board) setEnPassantPawn(pos Position) error {
	p, ok := b.Piece(pos)
	if !ok || p.typ != Pawn {
		return fmt.Errorf("%w: no pawn at %s", ErrInvalidFEN, pos)
	}
	b.enPassant = b.grid[pos.square()]
	return nil
}

// pawnDirection is the row increment a pawn of the given color advances by.
func pawnDirection(c Color) int {
	if c == White {
		return 1
	}
	return -1
}

// pawnStartRow is the row a pawn of the given color may double-step from.
func pawnStartRow(c Color) int {
	if c == White {
		return 1
	}
	return 6
}

// backRow is the home row of the given color's king and rooks.
func backRow(c Color) int {
	if c == White {
		return 0
	}
	return 7
}

// homeCornerSide maps a rook home corner to its castling wing.
func homeCornerSide(c Color, pos Position) (CastleSide, bool) {
	if pos.Row != backRow(c) {
		return 0, false
	}
	switch pos.Col {
	case 0:
		return QueenSide, true
	case 7:
		return KingSide, true
	}
	return 0, false
}
