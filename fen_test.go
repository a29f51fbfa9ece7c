package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartingFEN(t *testing.T) {
	assert.Equal(t, StartingFEN, NewGame().FEN())
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartingFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
		"8/3P4/8/8/8/7k/7p/7K w - - 0 1",
		"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
		"rn1qkbnr/pbpp1Qpp/1p6/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 1",
	}
	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			opt, err := FEN(fen)
			require.NoError(t, err)
			g := NewGame(opt)
			assert.Equal(t, fen, g.FEN())
		})
	}
}

func TestFENAfterDoublePush(t *testing.T) {
	g := NewGame()
	require.NoError(t, g.Move(MustLocate("e2"), MustLocate("e4"), nil))
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", g.FEN())
}

func TestDecodeFENState(t *testing.T) {
	board, turn, err := decodeFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)
	assert.Equal(t, White, turn)

	ep, ok := board.EnPassantTarget()
	require.True(t, ok)
	assert.Equal(t, MustLocate("d5"), ep.Position())
	assert.Equal(t, Black, ep.Color())

	for _, c := range []Color{White, Black} {
		for _, s := range []CastleSide{QueenSide, KingSide} {
			assert.False(t, board.CastlingRight(c, s))
		}
	}

	// The decoded en-passant state feeds straight into movegen.
	assert.True(t, board.IsLegal(MustLocate("e5"), MustLocate("d6")))
}

func TestDecodeFENInvalid(t *testing.T) {
	fens := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPXPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KXkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e5 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e3 0 1",
	}
	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			_, _, err := decodeFEN(fen)
			require.ErrorIs(t, err, ErrInvalidFEN)
		})
	}
}
