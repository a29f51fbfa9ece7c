package chess

import (
	"fmt"
	"strings"
)

// StartingFEN is the FEN record for the standard initial position.
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN takes a FEN record and returns a function that updates the game to
// reflect it: piece placement, active color, castling rights and en-passant
// target. The halfmove and fullmove fields are accepted but not modeled; the
// core keeps no move counters. The returned function is designed to be used
// in the NewGame constructor. An error is returned if there is a problem
// parsing the FEN data.
func FEN(fen string) (func(*Game), error) {
	board, turn, err := decodeFEN(fen)
	if err != nil {
		return nil, err
	}
	return func(g *Game) {
		g.board = board
		g.turn = turn
		g.evaluateStatus()
	}, nil
}

// FEN returns the FEN record of the current position. The halfmove clock and
// fullmove number are emitted as the "0 1" placeholders.
func (g *Game) FEN() string {
	var sb strings.Builder

	for row := boardSize - 1; row >= 0; row-- {
		empty := 0
		for col := 0; col < boardSize; col++ {
			p, ok := g.board.Piece(Position{Row: row, Col: col})
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				fmt.Fprintf(&sb, "%d", empty)
				empty = 0
			}
			sb.WriteString(fenChar(p.Type(), p.Color()))
		}
		if empty > 0 {
			fmt.Fprintf(&sb, "%d", empty)
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}

	if g.turn == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	rights := ""
	if g.board.CastlingRight(White, KingSide) {
		rights += "K"
	}
	if g.board.CastlingRight(White, QueenSide) {
		rights += "Q"
	}
	if g.board.CastlingRight(Black, KingSide) {
		rights += "k"
	}
	if g.board.CastlingRight(Black, QueenSide) {
		rights += "q"
	}
	if rights == "" {
		rights = "-"
	}
	sb.WriteString(rights)

	if ep, ok := g.board.EnPassantTarget(); ok {
		sb.WriteString(" " + ep.Position().Add(-pawnDirection(ep.Color()), 0).String())
	} else {
		sb.WriteString(" -")
	}

	sb.WriteString(" 0 1")
	return sb.String()
}

func decodeFEN(fen string) (*Board, Color, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return nil, NoColor, fmt.Errorf("%w: want at least 4 fields, got %d", ErrInvalidFEN, len(fields))
	}

	board := NewEmptyBoard()
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != boardSize {
		return nil, NoColor, fmt.Errorf("%w: want 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}
	for i, rank := range ranks {
		row := boardSize - 1 - i
		col := 0
		for _, ch := range rank {
			if ch >= '1' && ch <= '8' {
				col += int(ch - '0')
				continue
			}
			t, c, ok := pieceFromFENChar(ch)
			if !ok || col >= boardSize {
				return nil, NoColor, fmt.Errorf("%w: bad rank %q", ErrInvalidFEN, rank)
			}
			if err := board.Add(t, c, Position{Row: row, Col: col}); err != nil {
				return nil, NoColor, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
			}
			col++
		}
		if col != boardSize {
			return nil, NoColor, fmt.Errorf("%w: rank %q covers %d files", ErrInvalidFEN, rank, col)
		}
	}

	var turn Color
	switch fields[1] {
	case "w":
		turn = White
	case "b":
		turn = Black
	default:
		return nil, NoColor, fmt.Errorf("%w: bad active color %q", ErrInvalidFEN, fields[1])
	}

	for _, c := range []Color{White, Black} {
		board.setCastlingRight(c, QueenSide, false)
		board.setCastlingRight(c, KingSide, false)
	}
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				board.setCastlingRight(White, KingSide, true)
			case 'Q':
				board.setCastlingRight(White, QueenSide, true)
			case 'k':
				board.setCastlingRight(Black, KingSide, true)
			case 'q':
				board.setCastlingRight(Black, QueenSide, true)
			default:
				return nil, NoColor, fmt.Errorf("%w: bad castling field %q", ErrInvalidFEN, fields[2])
			}
		}
	}

	if fields[3] != "-" {
		sq, err := Locate(fields[3])
		if err != nil {
			return nil, NoColor, fmt.Errorf("%w: bad en passant square %q", ErrInvalidFEN, fields[3])
		}
		// The en-passant field names the bypassed square; the pawn that
		// double-stepped stands one row beyond it.
		unit := 1
		if sq.Row == 5 {
			unit = -1
		} else if sq.Row != 2 {
			return nil, NoColor, fmt.Errorf("%w: bad en passant square %q", ErrInvalidFEN, fields[3])
		}
		if err := board.setEnPassantPawn(sq.Add(unit, 0)); err != nil {
			return nil, NoColor, err
		}
	}

	return board, turn, nil
}

// fenChar returns the FEN letter for a piece: uppercase white, lowercase
// black.
func fenChar(t PieceType, c Color) string {
	s := t.Symbol()
	if c == Black {
		return strings.ToLower(s)
	}
	return s
}

// pieceFromFENChar converts a FEN placement character to its piece type and
// color.
func pieceFromFENChar(ch rune) (PieceType, Color, bool) {
	c := White
	if ch >= 'a' && ch <= 'z' {
		c = Black
		ch -= 'a' - 'A'
	}
	switch ch {
	case 'P':
		return Pawn, c, true
	case 'N':
		return Knight, c, true
	case 'B':
		return Bishop, c, true
	case 'R':
		return Rook, c, true
	case 'Q':
		return Queen, c, true
	case 'K':
		return King, c, true
	}
	return NoPieceType, NoColor, false
}
