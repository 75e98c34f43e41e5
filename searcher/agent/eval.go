package agent

import (
	"redblue/experiments/metrics"
	"redblue/game"
	"redblue/searcher"
)

type searchAgent struct {
	variant game.Variant
	search  *searcher.AlphaBeta
}

// NewSearchAgent returns an agent that plays the alpha-beta best move.
func NewSearchAgent(variant game.Variant, search *searcher.AlphaBeta) Agent {
	return searchAgent{variant: variant, search: search}
}

func (a searchAgent) FindMove(state game.State) (game.Move, bool, metrics.SearchMetric) {
	return a.search.FindMove(state, a.variant)
}
