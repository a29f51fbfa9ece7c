package chess

// blockedStraight reports whether to is unreachable from from along a
// horizontal or vertical ray: either the squares do not share a rank or
// file (zero-length movement included), or some strictly-between square is
// occupied. The occupant of to itself is never inspected; whether the
// destination may be captured is the caller's concern.
func blockedStraight(b *Board, from, to Position) bool {
	dRow := to.Row - from.Row
	dCol := to.Col - from.Col
	if (dRow == 0) == (dCol == 0) {
		return true
	}
	return rayBlocked(b, from, sign(dRow), sign(dCol), max(abs(dRow), abs(dCol)))
}

// blockedDiagonal is blockedStraight for equal-magnitude diagonal deltas.
func blockedDiagonal(b *Board, from, to Position) bool {
	dRow := to.Row - from.Row
	dCol := to.Col - from.Col
	if dRow == 0 || abs(dRow) != abs(dCol) {
		return true
	}
	return rayBlocked(b, from, sign(dRow), sign(dCol), abs(dRow))
}

// rayBlocked walks length-1 steps from from along the unit direction and
// reports whether any intermediate square is occupied.
func rayBlocked(b *Board, from Position, rowUnit, colUnit, length int) bool {
	cur := from
	for i := 1; i < length; i++ {
		cur = cur.Add(rowUnit, colUnit)
		if _, occupied := b.Piece(cur); occupied {
			return true
		}
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
