package chess

import "errors"

// Errors returned by the rules core. All of them are recoverable: the board
// and game state are unchanged whenever a call fails.
var (
	// ErrInvalidNotation is returned when a string is not a two-character
	// algebraic square such as "e4".
	ErrInvalidNotation = errors.New("chess: invalid notation")
	// ErrOutOfRange is returned when a position lies outside the 8x8 board.
	ErrOutOfRange = errors.New("chess: position out of range")
	// ErrEmptySquare is returned when removing from an empty square.
	ErrEmptySquare = errors.New("chess: square is empty")
	// ErrNoPieceAt is returned when moving from an empty square.
	ErrNoPieceAt = errors.New("chess: no piece at square")
	// ErrOccupiedSquare is returned when placing a piece onto an occupied square.
	ErrOccupiedSquare = errors.New("chess: square is occupied")
	// ErrWrongTurn is returned when the moved piece does not belong to the
	// side to move.
	ErrWrongTurn = errors.New("chess: wrong side to move")
	// ErrIllegalMove is returned when the destination does not match the
	// piece's movement pattern.
	ErrIllegalMove = errors.New("chess: illegal move")
	// ErrMovesIntoCheck is returned when a move would leave the mover's own
	// king attacked.
	ErrMovesIntoCheck = errors.New("chess: move leaves king in check")
	// ErrInvalidFEN is returned when a FEN record cannot be decoded.
	ErrInvalidFEN = errors.New("chess: invalid FEN")
)
