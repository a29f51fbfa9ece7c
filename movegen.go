package chess

var (
	straightDirs  = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	diagonalDirs  = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightOffsets = [8][2]int{
		{1, 2}, {2, 1}, {-1, 2}, {2, -1},
		{1, -2}, {-2, 1}, {-1, -2}, {-2, -1},
	}
	kingOffsets = [8][2]int{
		{1, 0}, {1, 1}, {0, 1}, {-1, 1},
		{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
	}
)

// Destinations returns the pseudo-legal destination squares for the piece on
// from: every square matching the piece's movement and occupancy pattern,
// ignoring turn order and king safety. King castling squares are included
// when the right is live and the path conditions hold. The result is empty
// when from is empty or out of range.
func (b *Board) Destinations(from Position) []Position {
	p, ok := b.Piece(from)
	if !ok {
		return nil
	}
	switch p.typ {
	case Pawn:
		return b.pawnDestinations(p)
	case Knight:
		return b.offsetDestinations(p, knightOffsets[:])
	case Bishop:
		return b.rayDestinations(p, diagonalDirs[:])
	case Rook:
		return b.rayDestinations(p, straightDirs[:])
	case Queen:
		return append(b.rayDestinations(p, straightDirs[:]),
			b.rayDestinations(p, diagonalDirs[:])...)
	case King:
		return append(b.offsetDestinations(p, kingOffsets[:]),
			b.castleDestinations(p)...)
	}
	return nil
}

// IsLegal reports whether the piece on from may pseudo-legally move to to.
// It is computed directly from the movement rules rather than by membership
// in Destinations, but the two always agree.
func (b *Board) IsLegal(from, to Position) bool {
	p, ok := b.Piece(from)
	if !ok || !to.InRange() || to == from {
		return false
	}
	if target, occupied := b.Piece(to); occupied && target.color == p.color {
		return false
	}
	switch p.typ {
	case Pawn:
		return b.pawnCanMove(p, to)
	case Knight:
		dRow, dCol := abs(to.Row-from.Row), abs(to.Col-from.Col)
		return dRow == 2 && dCol == 1 || dRow == 1 && dCol == 2
	case Bishop:
		return !blockedDiagonal(b, from, to)
	case Rook:
		return !blockedStraight(b, from, to)
	case Queen:
		return !blockedStraight(b, from, to) || !blockedDiagonal(b, from, to)
	case King:
		dRow, dCol := abs(to.Row-from.Row), abs(to.Col-from.Col)
		if dRow <= 1 && dCol <= 1 {
			return true
		}
		for _, dest := range b.castleDestinations(p) {
			if dest == to {
				return true
			}
		}
	}
	return false
}

func (b *Board) pawnDestinations(p Piece) []Position {
	var out []Position
	unit := pawnDirection(p.color)

	forward := p.pos.Add(unit, 0)
	if _, occupied := b.Piece(forward); forward.InRange() && !occupied {
		out = append(out, forward)
		double := p.pos.Add(2*unit, 0)
		if _, occupied := b.Piece(double); p.pos.Row == pawnStartRow(p.color) && !occupied {
			out = append(out, double)
		}
	}

	for _, dCol := range [2]int{-1, 1} {
		attack := p.pos.Add(unit, dCol)
		if !attack.InRange() {
			continue
		}
		if target, occupied := b.Piece(attack); occupied {
			if target.color != p.color {
				out = append(out, attack)
			}
			continue
		}
		// The bypassed square is empty; capture en passant if the pawn that
		// just double-stepped stands beside us.
		if victim, ok := b.Piece(attack.Add(-unit, 0)); ok && victim.color != p.color {
			if ep, live := b.EnPassantTarget(); live && ep.pos == victim.pos {
				out = append(out, attack)
			}
		}
	}
	return out
}

func (b *Board) pawnCanMove(p Piece, to Position) bool {
	unit := pawnDirection(p.color)
	target, occupied := b.Piece(to)

	if to == p.pos.Add(unit, 0) {
		return !occupied
	}
	if to == p.pos.Add(2*unit, 0) && p.pos.Row == pawnStartRow(p.color) {
		_, between := b.Piece(p.pos.Add(unit, 0))
		return !between && !occupied
	}
	if to != p.pos.Add(unit, 1) && to != p.pos.Add(unit, -1) {
		return false
	}
	if occupied {
		return target.color != p.color
	}
	if victim, ok := b.Piece(to.Add(-unit, 0)); ok && victim.color != p.color {
		if ep, live := b.EnPassantTarget(); live && ep.pos == victim.pos {
			return true
		}
	}
	return false
}

func (b *Board) offsetDestinations(p Piece, offsets [][2]int) []Position {
	var out []Position
	for _, off := range offsets {
		cur := p.pos.Add(off[0], off[1])
		if !cur.InRange() {
			continue
		}
		if target, occupied := b.Piece(cur); occupied && target.color == p.color {
			continue
		}
		out = append(out, cur)
	}
	return out
}

func (b *Board) rayDestinations(p Piece, dirs [][2]int) []Position {
	var out []Position
	for _, dir := range dirs {
		cur := p.pos
		for {
			cur = cur.Add(dir[0], dir[1])
			if !cur.InRange() {
				break
			}
			if target, occupied := b.Piece(cur); occupied {
				if target.color != p.color {
					out = append(out, cur)
				}
				break
			}
			out = append(out, cur)
		}
	}
	return out
}

// castleDestinations returns the squares the king may castle to: two squares
// toward a home rook whose wing right is live, with every square between
// king and rook empty, the king not currently in check, and the square the
// king crosses not attacked. Whether the destination itself is attacked is
// left to the executor's simulation, like any other move.
func (b *Board) castleDestinations(king Piece) []Position {
	home := Position{Row: backRow(king.color), Col: 4}
	if king.pos != home {
		return nil
	}
	enemy := king.color.Other()
	var out []Position
	for _, side := range [2]CastleSide{QueenSide, KingSide} {
		if !b.CastlingRight(king.color, side) {
			continue
		}
		corner := Position{Row: home.Row, Col: 0}
		between := []int{1, 2, 3}
		if side == KingSide {
			corner.Col = 7
			between = []int{5, 6}
		}
		rook, ok := b.Piece(corner)
		if !ok || rook.typ != Rook || rook.color != king.color {
			continue
		}
		clear := true
		for _, col := range between {
			if _, occupied := b.Piece(Position{Row: home.Row, Col: col}); occupied {
				clear = false
				break
			}
		}
		if !clear {
			continue
		}
		crossed := home.Add(0, 1)
		dest := home.Add(0, 2)
		if side == QueenSide {
			crossed = home.Add(0, -1)
			dest = home.Add(0, -2)
		}
		if b.attacked(home, enemy) || b.attacked(crossed, enemy) {
			continue
		}
		out = append(out, dest)
	}
	return out
}

// attacked reports whether any piece of color by attacks sq. Pawns count
// only their capture diagonals and kings only their eight neighbors, so the
// scan never recurses into castling.
func (b *Board) attacked(sq Position, by Color) bool {
	for _, p := range b.arena {
		if !p.alive || p.color != by {
			continue
		}
		if b.attacksSquare(p, sq) {
			return true
		}
	}
	return false
}

func (b *Board) attacksSquare(p Piece, sq Position) bool {
	dRow := abs(sq.Row - p.pos.Row)
	dCol := abs(sq.Col - p.pos.Col)
	switch p.typ {
	case Pawn:
		return sq.Row-p.pos.Row == pawnDirection(p.color) && dCol == 1
	case Knight:
		return dRow == 2 && dCol == 1 || dRow == 1 && dCol == 2
	case Bishop:
		return !blockedDiagonal(b, p.pos, sq)
	case Rook:
		return !blockedStraight(b, p.pos, sq)
	case Queen:
		return !blockedStraight(b, p.pos, sq) || !blockedDiagonal(b, p.pos, sq)
	case King:
		return dRow <= 1 && dCol <= 1 && dRow+dCol > 0
	}
	return false
}
