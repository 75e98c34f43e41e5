package agent

import (
	"redblue/experiments/metrics"
	"redblue/game"
)

type Agent interface {
	// FindMove returns the move to play from state, false if no move applies,
	// and search metrics (if collected).
	FindMove(state game.State) (game.Move, bool, metrics.SearchMetric)
}
