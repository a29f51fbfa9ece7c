package chess

import "fmt"

// ParseCoordinateMove parses a coordinate-notation move token such as
// "e2e4" or "e7e8q" into a Move. The optional fifth character selects the
// promotion piece. Only the syntax is validated; legality is the Move
// Executor's job.
//
// Example:
//
//	mv, err := chess.ParseCoordinateMove("e2e4")
//	if err != nil {
//	    panic(err)
//	}
//	err = game.Move(mv.From(), mv.To(), &chess.MoveOptions{Promotion: mv.Promotion()})
func ParseCoordinateMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	from, err := Locate(s[0:2])
	if err != nil {
		return Move{}, err
	}
	to, err := Locate(s[2:4])
	if err != nil {
		return Move{}, err
	}
	promo := NoPieceType
	if len(s) == 5 {
		switch s[4] {
		case 'q', 'Q':
			promo = Queen
		case 'r', 'R':
			promo = Rook
		case 'b', 'B':
			promo = Bishop
		case 'n', 'N':
			promo = Knight
		default:
			return Move{}, fmt.Errorf("%w: bad promotion piece %q", ErrInvalidNotation, s)
		}
	}
	return Move{from: from, to: to, promo: promo}, nil
}

// FormatMove renders a move in coordinate notation, the inverse of
// ParseCoordinateMove.
func FormatMove(m Move) string {
	s := m.from.String() + m.to.String()
	switch m.promo {
	case Queen:
		s += "q"
	case Rook:
		s += "r"
	case Bishop:
		s += "b"
	case Knight:
		s += "n"
	}
	return s
}
