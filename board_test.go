package chess

import (
	"errors"
	"testing"
)

func TestNewBoardSetup(t *testing.T) {
	b := NewBoard()
	tests := []struct {
		square string
		typ    PieceType
		color  Color
	}{
		{"a1", Rook, White},
		{"b1", Knight, White},
		{"c1", Bishop, White},
		{"d1", Queen, White},
		{"e1", King, White},
		{"a2", Pawn, White},
		{"e8", King, Black},
		{"h8", Rook, Black},
		{"d7", Pawn, Black},
	}
	for _, tt := range tests {
		p, ok := b.Piece(MustLocate(tt.square))
		if !ok {
			t.Fatalf("no piece at %s", tt.square)
		}
		if p.Type() != tt.typ || p.Color() != tt.color {
			t.Fatalf("at %s: got %s, want %s %s", tt.square, p, tt.color, tt.typ)
		}
		if p.Position() != MustLocate(tt.square) {
			t.Fatalf("piece at %s reports position %s", tt.square, p.Position())
		}
	}
	if got := len(b.Pieces()); got != 32 {
		t.Fatalf("registry has %d pieces, want 32", got)
	}
	for _, c := range []Color{White, Black} {
		king, ok := b.King(c)
		if !ok || king.Type() != King || king.Color() != c {
			t.Fatalf("king lookup failed for %s", c)
		}
	}
}

func TestAddOccupiedSquare(t *testing.T) {
	b := NewEmptyBoard()
	if err := b.Add(Pawn, White, MustLocate("d4")); err != nil {
		t.Fatal(err)
	}
	err := b.Add(Queen, Black, MustLocate("d4"))
	if !errors.Is(err, ErrOccupiedSquare) {
		t.Fatalf("expected ErrOccupiedSquare, got %v", err)
	}
	// Placement never overwrites.
	p, _ := b.Piece(MustLocate("d4"))
	if p.Type() != Pawn || p.Color() != White {
		t.Fatalf("occupant changed to %s", p)
	}
}

func TestAddOutOfRange(t *testing.T) {
	b := NewEmptyBoard()
	if err := b.Add(Pawn, White, Position{Row: 8, Col: 0}); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	b := NewBoard()
	p, err := b.Remove(MustLocate("e2"))
	if err != nil {
		t.Fatal(err)
	}
	if p.Type() != Pawn || p.Color() != White {
		t.Fatalf("removed %s, want white pawn", p)
	}
	if _, ok := b.Piece(MustLocate("e2")); ok {
		t.Fatal("square still occupied after remove")
	}
	if got := len(b.Pieces()); got != 31 {
		t.Fatalf("registry has %d pieces after remove, want 31", got)
	}
	if _, err := b.Remove(MustLocate("e2")); !errors.Is(err, ErrEmptySquare) {
		t.Fatalf("expected ErrEmptySquare, got %v", err)
	}
}

func TestMoveRelocates(t *testing.T) {
	b := NewBoard()
	if err := b.Move(MustLocate("b1"), MustLocate("c3")); err != nil {
		t.Fatal(err)
	}
	if _, ok := b.Piece(MustLocate("b1")); ok {
		t.Fatal("origin square still occupied")
	}
	p, ok := b.Piece(MustLocate("c3"))
	if !ok || p.Type() != Knight || p.Position() != MustLocate("c3") {
		t.Fatalf("destination holds %s, want knight on c3", p)
	}
}

func TestMoveEmptySquare(t *testing.T) {
	b := NewBoard()
	if err := b.Move(MustLocate("e4"), MustLocate("e5")); !errors.Is(err, ErrNoPieceAt) {
		t.Fatalf("expected ErrNoPieceAt, got %v", err)
	}
}

func TestEnPassantBookkeeping(t *testing.T) {
	b := NewBoard()
	if err := b.Move(MustLocate("e2"), MustLocate("e4")); err != nil {
		t.Fatal(err)
	}
	ep, ok := b.EnPassantTarget()
	if !ok || ep.Position() != MustLocate("e4") {
		t.Fatalf("double advance did not record en-passant pawn, got %v %v", ep, ok)
	}

	// Any other move clears it.
	if err := b.Move(MustLocate("g8"), MustLocate("f6")); err != nil {
		t.Fatal(err)
	}
	if _, ok := b.EnPassantTarget(); ok {
		t.Fatal("en-passant target survived an unrelated move")
	}

	// A single-step pawn advance does not set it.
	if err := b.Move(MustLocate("d2"), MustLocate("d3")); err != nil {
		t.Fatal(err)
	}
	if _, ok := b.EnPassantTarget(); ok {
		t.Fatal("single advance recorded an en-passant pawn")
	}
}

func TestEnPassantClearedByCapture(t *testing.T) {
	b := NewBoard()
	if err := b.Move(MustLocate("e2"), MustLocate("e4")); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Remove(MustLocate("e4")); err != nil {
		t.Fatal(err)
	}
	if _, ok := b.EnPassantTarget(); ok {
		t.Fatal("en-passant target points at a captured pawn")
	}
}

func TestCastlingRights(t *testing.T) {
	t.Run("FreshBoard", func(t *testing.T) {
		b := NewBoard()
		for _, c := range []Color{White, Black} {
			for _, s := range []CastleSide{QueenSide, KingSide} {
				if !b.CastlingRight(c, s) {
					t.Fatalf("%s %s right not set on fresh board", c, s)
				}
			}
		}
	})

	t.Run("KingMoveClearsBoth", func(t *testing.T) {
		b := NewBoard()
		_, _ = b.Remove(MustLocate("e2"))
		if err := b.Move(MustLocate("e1"), MustLocate("e2")); err != nil {
			t.Fatal(err)
		}
		if b.CastlingRight(White, QueenSide) || b.CastlingRight(White, KingSide) {
			t.Fatal("king move did not clear both rights")
		}
		if !b.CastlingRight(Black, QueenSide) || !b.CastlingRight(Black, KingSide) {
			t.Fatal("king move cleared the opponent's rights")
		}
	})

	t.Run("RookMoveClearsOneSide", func(t *testing.T) {
		b := NewBoard()
		_, _ = b.Remove(MustLocate("a2"))
		if err := b.Move(MustLocate("a1"), MustLocate("a3")); err != nil {
			t.Fatal(err)
		}
		if b.CastlingRight(White, QueenSide) {
			t.Fatal("queen-side rook move did not clear the queen-side right")
		}
		if !b.CastlingRight(White, KingSide) {
			t.Fatal("queen-side rook move cleared the king-side right")
		}
	})

	t.Run("RookCaptureClearsOneSide", func(t *testing.T) {
		b := NewBoard()
		if _, err := b.Remove(MustLocate("h8")); err != nil {
			t.Fatal(err)
		}
		if b.CastlingRight(Black, KingSide) {
			t.Fatal("capturing the king-side rook did not clear the right")
		}
		if !b.CastlingRight(Black, QueenSide) {
			t.Fatal("capturing the king-side rook cleared the queen-side right")
		}
	})

	t.Run("RightsAreMonotone", func(t *testing.T) {
		b := NewBoard()
		_, _ = b.Remove(MustLocate("a2"))
		if err := b.Move(MustLocate("a1"), MustLocate("a3")); err != nil {
			t.Fatal(err)
		}
		// Returning home does not restore the right.
		if err := b.Move(MustLocate("a3"), MustLocate("a1")); err != nil {
			t.Fatal(err)
		}
		if b.CastlingRight(White, QueenSide) {
			t.Fatal("right came back after the rook returned home")
		}
	})
}

func TestCloneIsolation(t *testing.T) {
	b := NewBoard()
	c := b.Clone()
	if err := c.Move(MustLocate("e2"), MustLocate("e4")); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Remove(MustLocate("d7")); err != nil {
		t.Fatal(err)
	}

	if _, ok := b.Piece(MustLocate("e2")); !ok {
		t.Fatal("clone move leaked into the original grid")
	}
	if _, ok := b.Piece(MustLocate("d7")); !ok {
		t.Fatal("clone capture leaked into the original registry")
	}
	if _, ok := b.EnPassantTarget(); ok {
		t.Fatal("clone en-passant state leaked into the original")
	}
	if len(b.Pieces()) != 32 || len(c.Pieces()) != 31 {
		t.Fatalf("registries diverged wrong: original %d, clone %d", len(b.Pieces()), len(c.Pieces()))
	}
}
