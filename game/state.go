package game

import "fmt"

type Outcome int

const (
	Ongoing Outcome = iota
	Draw
	Decided
)

func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case Draw:
		return "draw"
	default:
		return "decided"
	}
}

// State is the pair of pool sizes. It is a value: applying a move returns a
// new State and never modifies the receiver. Counts may drop below zero.
type State struct {
	Red  int `json:"red"`
	Blue int `json:"blue"`
}

// NewGame returns the starting position.
func NewGame(red, blue int) State {
	return State{Red: red, Blue: blue}
}

// IsTerminal reports whether either pool is exhausted.
func (s State) IsTerminal() bool {
	return s.Red <= 0 || s.Blue <= 0
}

// Apply removes the move's marbles. Legality is checked against the counts
// before the move; ok is false when either pool is too small.
func (s State) Apply(m Move) (next State, ok bool) {
	if m.Red > s.Red || m.Blue > s.Blue {
		return State{}, false
	}
	return State{Red: s.Red - m.Red, Blue: s.Blue - m.Blue}, true
}

// Play is Apply with an error result.
func (s State) Play(m Move) (State, error) {
	next, ok := s.Apply(m)
	if !ok {
		return State{}, fmt.Errorf("%w: %v from %v", ErrIllegalMove, m, s)
	}
	return next, nil
}

func (s State) Outcome() Outcome {
	switch {
	case !s.IsTerminal():
		return Ongoing
	case s.Red <= 0 && s.Blue <= 0:
		return Draw
	default:
		return Decided
	}
}

func (s State) String() string {
	return fmt.Sprintf("red=%d blue=%d", s.Red, s.Blue)
}
