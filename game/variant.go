package game

import (
	"fmt"
	"strings"
)

// Variant selects the fixed move set of a game. The zero value is Unknown,
// which has no moves.
type Variant int

const (
	Unknown Variant = iota
	Standard
	Misere
)

var (
	standardMoves = []Move{{2, 2}, {1, 1}, {2, 0}, {0, 2}}
	misereMoves   = []Move{{0, 2}, {0, 1}, {2, 0}, {1, 0}}
)

// ParseVariant resolves a variant name once at game setup.
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "standard":
		return Standard, nil
	case "misere", "misère":
		return Misere, nil
	default:
		return Unknown, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
}

func (v Variant) String() string {
	switch v {
	case Standard:
		return "standard"
	case Misere:
		return "misere"
	default:
		return "unknown"
	}
}

// LegalMoves returns the variant's candidate moves in search order. The
// returned slice is a copy and is empty for Unknown.
func (v Variant) LegalMoves() []Move {
	var moves []Move
	switch v {
	case Standard:
		moves = standardMoves
	case Misere:
		moves = misereMoves
	}
	out := make([]Move, len(moves))
	copy(out, moves)
	return out
}

func LegalMoves(v Variant) []Move {
	return v.LegalMoves()
}
