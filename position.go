package chess

import "fmt"

const boardSize = 8

// A Position is a square on the board identified by row and column, both in
// [0, 8). Row 0 is rank 1 (white's back rank) and column 0 is file a.
// Positions are plain values and compare with ==.
type Position struct {
	Row int
	Col int
}

// Locate parses a two-character algebraic square such as "e4" into a
// Position. It returns ErrInvalidNotation if the file is outside a-h or the
// rank is outside 1-8.
//
// Example:
//
//	pos, err := chess.Locate("e4")
//	if err != nil {
//	    panic(err)
//	}
func Locate(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	col := int(s[0] - 'a')
	row := int(s[1] - '1')
	if col < 0 || col >= boardSize || row < 0 || row >= boardSize {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	return Position{Row: row, Col: col}, nil
}

// MustLocate is Locate for hardcoded squares; it panics on bad notation.
func MustLocate(s string) Position {
	pos, err := Locate(s)
	if err != nil {
		panic(err)
	}
	return pos
}

// Add returns the position translated by (dRow, dCol). The result is not
// bounds checked; callers validate with InRange before dereferencing on a
// board.
func (p Position) Add(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// InRange reports whether both coordinates lie in [0, 8).
func (p Position) InRange() bool {
	return p.Row >= 0 && p.Row < boardSize && p.Col >= 0 && p.Col < boardSize
}

// String implements the fmt.Stringer interface and returns the algebraic
// form, e.g. "a1" for (0, 0). Out-of-range positions render as "-".
func (p Position) String() string {
	if !p.InRange() {
		return "-"
	}
	return string([]byte{byte('a' + p.Col), byte('1' + p.Row)})
}

// square maps an in-range position to its index in the grid.
func (p Position) square() int {
	return p.Row*boardSize + p.Col
}
