/*
Package chess implements the rules core for a two-player chess variant:
board representation, piece movement legality, path blocking, special pawn
moves, castling, promotion, and check/checkmate detection. It is a library
with no game loop, rendering, or I/O; a session layer drives it with
(from, to) square pairs and receives a result or error.

Example usage:

	// Create new game
	game := NewGame()

	// Make moves
	game.Move(chess.MustLocate("e2"), chess.MustLocate("e4"), nil)
	game.Move(chess.MustLocate("e7"), chess.MustLocate("e5"), nil)

	// Check game status
	if game.Outcome() != NoOutcome {
		fmt.Printf("Game ended: %s by %v\n", game.Outcome(), game.Method())
	}
*/
package chess

import (
	"fmt"

	"golang.org/x/exp/maps"
)

// An Outcome is the result of a game.
type Outcome string

const (
	// NoOutcome indicates that a game is in progress or ended without a result.
	NoOutcome Outcome = "*"
	// WhiteWon indicates that white won the game.
	WhiteWon Outcome = "1-0"
	// BlackWon indicates that black won the game.
	BlackWon Outcome = "0-1"
	// Draw indicates that game was a draw.
	Draw Outcome = "1/2-1/2"
)

// String implements the fmt.Stringer interface.
func (o Outcome) String() string {
	return string(o)
}

// A Method is the method that generated the outcome.
type Method uint8

const (
	// NoMethod indicates that an outcome hasn't occurred.
	NoMethod Method = iota
	// Checkmate indicates that the game was won by checkmate.
	Checkmate
	// Stalemate indicates that the game was drawn by stalemate.
	Stalemate
	// Resignation indicates that the game was won by resignation.
	Resignation
)

// TagPairs represents a collection of key/value metadata pairs attached to a
// game, in the manner of PGN tag pairs.
type TagPairs map[string]string

// A Move is one committed or candidate half-move.
type Move struct {
	from     Position
	to       Position
	promo    PieceType
	captured PieceType
}

// From returns the origin square.
func (m Move) From() Position { return m.from }

// To returns the destination square.
func (m Move) To() Position { return m.to }

// Promotion returns the piece type a pawn was promoted to, or NoPieceType.
func (m Move) Promotion() PieceType { return m.promo }

// Captured returns the type of the captured piece, or NoPieceType.
func (m Move) Captured() PieceType { return m.captured }

// String implements the fmt.Stringer interface and returns the coordinate
// form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	return FormatMove(m)
}

// MoveOptions configures a single call to Game.Move.
type MoveOptions struct {
	// Promotion selects the piece a pawn promotes to when it reaches the
	// last rank. Zero means Queen. Setting it on a non-promoting move is an
	// error.
	Promotion PieceType
}

// A Game drives one board through the two-state turn machine, validating
// turn order, movement legality and king safety, and committing each move
// atomically.
type Game struct {
	board    *Board   // Committed position
	turn     Color    // Side to move
	outcome  Outcome  // Game result
	method   Method   // How the game ended
	tagPairs TagPairs // Metadata tag pairs
	history  []Move   // Committed moves in order
}

// NewGame returns a new game in the standard starting position with white
// to move. Optional functions can be provided to configure the initial
// game state.
//
// Example:
//
//	// Standard game
//	game := NewGame()
//
//	// Game from FEN
//	fen, _ := chess.FEN("8/8/8/8/8/8/8/K1k5 w - - 0 1")
//	game := NewGame(fen)
func NewGame(options ...func(*Game)) *Game {
	game := &Game{
		board:    NewBoard(),
		turn:     White,
		outcome:  NoOutcome,
		method:   NoMethod,
		tagPairs: make(TagPairs),
	}
	for _, f := range options {
		if f != nil {
			f(game)
		}
	}
	return game
}

// Board returns the game's board. The core provides no locking; the board
// must not be shared across sessions.
func (g *Game) Board() *Board {
	return g.board
}

// Turn returns the side to move.
func (g *Game) Turn() Color {
	return g.turn
}

// Outcome returns the game outcome.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Method returns the method in which the outcome occurred.
func (g *Game) Method() Method {
	return g.method
}

// Moves returns the committed move history in order.
func (g *Game) Moves() []Move {
	return append([]Move(nil), g.history...)
}

// Move validates and commits the half-move from from to to for the side to
// move. It fails with ErrNoPieceAt, ErrWrongTurn, ErrIllegalMove or
// ErrMovesIntoCheck; on failure no state changes. On success the capture
// removal, relocation, en-passant/castling bookkeeping and turn flip happen
// together, and the game status is re-derived.
//
// Example:
//
//	err := game.Move(chess.MustLocate("e2"), chess.MustLocate("e4"), nil)
func (g *Game) Move(from, to Position, options *MoveOptions) error {
	if options == nil {
		options = &MoveOptions{}
	}
	if !from.InRange() || !to.InRange() {
		return fmt.Errorf("%w: %s-%s", ErrOutOfRange, from, to)
	}
	p, ok := g.board.Piece(from)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoPieceAt, from)
	}
	if p.Color() != g.turn {
		return fmt.Errorf("%w: %s to move, %s chosen", ErrWrongTurn, g.turn, p)
	}
	if !g.board.IsLegal(from, to) {
		return fmt.Errorf("%w: %s %s-%s", ErrIllegalMove, p.Type(), from, to)
	}

	promo, err := resolvePromotion(p, to, options.Promotion)
	if err != nil {
		return err
	}

	// Simulate on a scratch copy so a refused move never leaks state.
	trial := g.board.Clone()
	if _, err := applyMove(trial, from, to, promo); err != nil {
		return err
	}
	if king, hasKing := trial.King(g.turn); hasKing && trial.attacked(king.Position(), g.turn.Other()) {
		return fmt.Errorf("%w: %s %s-%s", ErrMovesIntoCheck, p.Type(), from, to)
	}

	captured, err := applyMove(g.board, from, to, promo)
	if err != nil {
		return err
	}
	g.history = append(g.history, Move{from: from, to: to, promo: promo, captured: captured})
	g.turn = g.turn.Other()
	g.evaluateStatus()
	return nil
}

// resolvePromotion checks the promotion choice against the move shape. A
// promoting pawn defaults to Queen; a choice on a non-promoting move, or a
// choice outside knight/bishop/rook/queen, is illegal.
func resolvePromotion(p Piece, to Position, choice PieceType) (PieceType, error) {
	promoting := p.Type() == Pawn && to.Row == backRow(p.Color().Other())
	if !promoting {
		if choice != NoPieceType {
			return NoPieceType, fmt.Errorf("%w: promotion on non-promoting move", ErrIllegalMove)
		}
		return NoPieceType, nil
	}
	switch choice {
	case NoPieceType:
		return Queen, nil
	case Knight, Bishop, Rook, Queen:
		return choice, nil
	}
	return NoPieceType, fmt.Errorf("%w: cannot promote to %s", ErrIllegalMove, choice)
}

// applyMove performs the physical state changes of an already shape-checked
// move on b: capture removal (including the en-passant victim), relocation,
// the castling rook hop, and promotion. It returns the captured piece type.
// Running the identical function on the scratch copy and on the committed
// board is what makes the commit all-or-nothing.
func applyMove(b *Board, from, to Position, promo PieceType) (PieceType, error) {
	p, ok := b.Piece(from)
	if !ok {
		return NoPieceType, fmt.Errorf("%w: %s", ErrNoPieceAt, from)
	}

	captured := NoPieceType
	if _, occupied := b.Piece(to); occupied {
		removed, err := b.Remove(to)
		if err != nil {
			return NoPieceType, err
		}
		captured = removed.Type()
	} else if p.Type() == Pawn && to.Col != from.Col {
		// Diagonal onto an empty square is en passant; the victim sits on
		// the departure rank in the destination file.
		removed, err := b.Remove(Position{Row: from.Row, Col: to.Col})
		if err != nil {
			return NoPieceType, err
		}
		captured = removed.Type()
	}

	if err := b.Move(from, to); err != nil {
		return NoPieceType, err
	}

	if p.Type() == King && abs(to.Col-from.Col) == 2 {
		rookFrom := Position{Row: from.Row, Col: 0}
		rookTo := Position{Row: from.Row, Col: 3}
		if to.Col > from.Col {
			rookFrom.Col = 7
			rookTo.Col = 5
		}
		if err := b.Move(rookFrom, rookTo); err != nil {
			return NoPieceType, err
		}
	}

	if promo != NoPieceType {
		if _, err := b.Remove(to); err != nil {
			return NoPieceType, err
		}
		if err := b.Add(promo, p.Color(), to); err != nil {
			return NoPieceType, err
		}
	}
	return captured, nil
}

// ValidMoves returns every fully legal move for the side to move:
// pseudo-legal destinations filtered through the king-safety simulation.
func (g *Game) ValidMoves() []Move {
	var out []Move
	enemy := g.turn.Other()
	for _, p := range g.board.Pieces() {
		if p.Color() != g.turn {
			continue
		}
		for _, dest := range g.board.Destinations(p.Position()) {
			promo := NoPieceType
			if p.Type() == Pawn && dest.Row == backRow(enemy) {
				promo = Queen
			}
			trial := g.board.Clone()
			if _, err := applyMove(trial, p.Position(), dest, promo); err != nil {
				continue
			}
			if king, hasKing := trial.King(g.turn); hasKing && trial.attacked(king.Position(), enemy) {
				continue
			}
			out = append(out, Move{from: p.Position(), to: dest, promo: promo})
		}
	}
	return out
}

// InCheck reports whether the given color's king square lies in any opposing
// piece's pseudo-legal destinations.
func (g *Game) InCheck(c Color) bool {
	king, ok := g.board.King(c)
	if !ok {
		return false
	}
	return g.board.attacked(king.Position(), c.Other())
}

// Resign resigns the game for the given color. If the game has already been
// completed then the game is not updated.
func (g *Game) Resign(color Color) {
	if g.outcome != NoOutcome || color == NoColor {
		return
	}
	if color == White {
		g.outcome = BlackWon
	} else {
		g.outcome = WhiteWon
	}
	g.method = Resignation
}

// evaluateStatus re-derives the game's outcome and method from the position:
// a side to move with no surviving moves is checkmated when in check and
// stalemated otherwise.
func (g *Game) evaluateStatus() {
	if g.method == Resignation {
		return
	}
	if len(g.ValidMoves()) > 0 {
		g.outcome = NoOutcome
		g.method = NoMethod
		return
	}
	if g.InCheck(g.turn) {
		g.method = Checkmate
		g.outcome = WhiteWon
		if g.turn == White {
			g.outcome = BlackWon
		}
		return
	}
	g.method = Stalemate
	g.outcome = Draw
}

// AddTagPair adds or updates a tag pair with the given key and value and
// returns true if the value is overwritten.
func (g *Game) AddTagPair(k, v string) bool {
	if g.tagPairs == nil {
		g.tagPairs = make(TagPairs)
	}
	_, existing := g.tagPairs[k]
	g.tagPairs[k] = v
	return existing
}

// GetTagPair returns the tag pair for the given key or the empty string if
// it is not present.
func (g *Game) GetTagPair(k string) string {
	return g.tagPairs[k]
}

// RemoveTagPair removes the tag pair for the given key and returns true if
// a tag pair was removed.
func (g *Game) RemoveTagPair(k string) bool {
	if _, existing := g.tagPairs[k]; existing {
		delete(g.tagPairs, k)
		return true
	}
	return false
}

// TagPairs returns the tag pairs in key value format.
func (g *Game) TagPairs() TagPairs {
	return g.tagPairs
}

// Clone returns a deep copy of the game. Moves on the clone never touch the
// parent.
func (g *Game) Clone() *Game {
	ret := &Game{
		board:   g.board.Clone(),
		turn:    g.turn,
		outcome: g.outcome,
		method:  g.method,
		history: append([]Move(nil), g.history...),
	}
	ret.tagPairs = make(TagPairs, len(g.tagPairs))
	maps.Copy(ret.tagPairs, g.tagPairs)
	return ret
}
