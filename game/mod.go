package game

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalMove    = errors.New("illegal move")
	ErrUnknownVariant = errors.New("unknown variant")
)

// Move removes Red red marbles and Blue blue marbles from the pools.
type Move struct {
	Red  int `json:"red"`
	Blue int `json:"blue"`
}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.Red, m.Blue)
}

// Evaluates the game state to a static score. Scores are not clamped and are
// only meaningful relative to each other.
type Evaluate func(State) float64
