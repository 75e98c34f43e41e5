package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsTerminal(t *testing.T) {
	for red := -3; red <= 12; red++ {
		for blue := -3; blue <= 12; blue++ {
			s := NewGame(red, blue)
			require.Equal(t, red <= 0 || blue <= 0, s.IsTerminal(), "state %v", s)
		}
	}
}

func TestEvaluate(t *testing.T) {
	t.Run("weighs red by 2 and blue by 3", func(t *testing.T) {
		for red := -5; red <= 10; red++ {
			for blue := -5; blue <= 10; blue++ {
				s := NewGame(red, blue)
				require.Equal(t, float64(2*red+3*blue), s.Evaluate(), "state %v", s)
				require.Equal(t, s.Evaluate(), EvaluateMaterial(s))
			}
		}
	})

	t.Run("starting position", func(t *testing.T) {
		require.Equal(t, 50.0, NewGame(10, 10).Evaluate())
	})
}

func TestApply(t *testing.T) {
	t.Run("removes marbles", func(t *testing.T) {
		next, ok := NewGame(5, 5).Apply(Move{2, 0})

		require.True(t, ok)
		require.Equal(t, State{Red: 3, Blue: 5}, next)
	})

	t.Run("rejects insufficient red", func(t *testing.T) {
		_, ok := NewGame(1, 5).Apply(Move{2, 0})

		require.False(t, ok, "Move needs 2 red marbles")
	})

	t.Run("rejects insufficient blue", func(t *testing.T) {
		_, ok := NewGame(5, 1).Apply(Move{0, 2})

		require.False(t, ok, "Move needs 2 blue marbles")
	})

	t.Run("checks pre-move counts on negative pools", func(t *testing.T) {
		_, ok := NewGame(-1, 4).Apply(Move{0, 1})

		require.False(t, ok, "0 red marbles cannot be taken from a negative pool")
	})

	t.Run("can empty a pool exactly", func(t *testing.T) {
		next, ok := NewGame(2, 2).Apply(Move{2, 2})

		require.True(t, ok)
		require.Equal(t, State{}, next)
		require.True(t, next.IsTerminal())
	})

	t.Run("leaves the receiver unchanged", func(t *testing.T) {
		s := NewGame(4, 4)
		_, _ = s.Apply(Move{1, 1})

		require.Equal(t, State{Red: 4, Blue: 4}, s)
	})
}

func TestPlay(t *testing.T) {
	next, err := NewGame(5, 5).Play(Move{1, 1})
	require.NoError(t, err)
	require.Equal(t, State{Red: 4, Blue: 4}, next)

	_, err = NewGame(1, 5).Play(Move{2, 0})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrIllegalMove), "Should wrap ErrIllegalMove")
}

func TestOutcome(t *testing.T) {
	require.Equal(t, Ongoing, NewGame(1, 1).Outcome())
	require.Equal(t, Draw, NewGame(0, 0).Outcome())
	require.Equal(t, Draw, NewGame(-1, 0).Outcome())
	require.Equal(t, Decided, NewGame(0, 3).Outcome())
	require.Equal(t, Decided, NewGame(3, -1).Outcome())
}
