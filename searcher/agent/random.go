package agent

import (
	"redblue/experiments/metrics"
	"redblue/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	variant game.Variant
	rng     *rand.Rand
}

// NewRandomAgent returns a baseline agent that plays a uniformly random
// applicable move. Agents with the same seed play the same sequence.
func NewRandomAgent(variant game.Variant, seed uint64) Agent {
	return &randomAgent{
		variant: variant,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

func (a *randomAgent) FindMove(state game.State) (game.Move, bool, metrics.SearchMetric) {
	var applicable []game.Move
	for _, move := range a.variant.LegalMoves() {
		if _, ok := state.Apply(move); ok {
			applicable = append(applicable, move)
		}
	}
	if len(applicable) == 0 {
		return game.Move{}, false, metrics.SearchMetric{Exhausted: true}
	}
	return applicable[a.rng.Intn(len(applicable))], true, metrics.SearchMetric{}
}
