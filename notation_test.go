package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinateMove(t *testing.T) {
	tests := []struct {
		in    string
		from  string
		to    string
		promo PieceType
	}{
		{"e2e4", "e2", "e4", NoPieceType},
		{"g8f6", "g8", "f6", NoPieceType},
		{"e7e8q", "e7", "e8", Queen},
		{"a2a1R", "a2", "a1", Rook},
		{"b7b8n", "b7", "b8", Knight},
		{"h7h8b", "h7", "h8", Bishop},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m, err := ParseCoordinateMove(tt.in)
			require.NoError(t, err)
			assert.Equal(t, MustLocate(tt.from), m.From())
			assert.Equal(t, MustLocate(tt.to), m.To())
			assert.Equal(t, tt.promo, m.Promotion())
		})
	}
}

func TestParseCoordinateMoveInvalid(t *testing.T) {
	for _, in := range []string{"", "e2", "e2e", "e2e44", "i2e4", "e2e9", "e7e8k", "e7e8x"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseCoordinateMove(in)
			require.ErrorIs(t, err, ErrInvalidNotation)
		})
	}
}

func TestFormatMove(t *testing.T) {
	for _, token := range []string{"e2e4", "g8f6", "e7e8q", "a2a1r", "b7b8n", "h7h8b"} {
		m, err := ParseCoordinateMove(token)
		require.NoError(t, err)
		assert.Equal(t, token, FormatMove(m))
		assert.Equal(t, token, m.String())
	}
}
