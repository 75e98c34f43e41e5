package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLegalMoves(t *testing.T) {
	t.Run("standard", func(t *testing.T) {
		require.Equal(t, []Move{{2, 2}, {1, 1}, {2, 0}, {0, 2}}, Standard.LegalMoves())
	})

	t.Run("misere", func(t *testing.T) {
		require.Equal(t, []Move{{0, 2}, {0, 1}, {2, 0}, {1, 0}}, LegalMoves(Misere))
	})

	t.Run("unknown variant has no moves", func(t *testing.T) {
		moves := Unknown.LegalMoves()

		require.NotNil(t, moves)
		require.Empty(t, moves)
		require.Empty(t, Variant(42).LegalMoves())
	})

	t.Run("returns a copy", func(t *testing.T) {
		moves := Standard.LegalMoves()
		moves[0] = Move{9, 9}

		require.Equal(t, Move{2, 2}, Standard.LegalMoves()[0], "Fixed move list should not change")
	})
}

func TestParseVariant(t *testing.T) {
	for name, want := range map[string]Variant{
		"standard":   Standard,
		" Standard ": Standard,
		"misere":     Misere,
		"MISERE":     Misere,
		"misère":     Misere,
	} {
		got, err := ParseVariant(name)
		require.NoError(t, err, name)
		require.Equal(t, want, got, name)
	}

	got, err := ParseVariant("unknown")
	require.True(t, errors.Is(err, ErrUnknownVariant))
	require.Equal(t, Unknown, got)
}

func TestVariantString(t *testing.T) {
	for _, v := range []Variant{Standard, Misere} {
		parsed, err := ParseVariant(v.String())
		require.NoError(t, err)
		require.Equal(t, v, parsed)
	}
	require.Equal(t, "unknown", Unknown.String())
}
