package searcher

import (
	"redblue/experiments/metrics"
	"redblue/game"
	"redblue/meta"
)

type Option func(ab *AlphaBeta)

// AlphaBeta is a depth-bounded minimax searcher with alpha-beta pruning.
// It holds no state between calls.
type AlphaBeta struct {
	depth    int
	evaluate game.Evaluate
	metrics  func() metrics.Collector
}

func WithDepth(depth int) Option {
	return func(ab *AlphaBeta) {
		if depth >= 0 {
			ab.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(ab *AlphaBeta) {
		if evaluate != nil {
			ab.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(ab *AlphaBeta) {
		ab.metrics = metrics.NewCollector
	}
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	ab := &AlphaBeta{ // Default values
		depth:    meta.Depth,
		evaluate: game.EvaluateMaterial,
		metrics:  metrics.NewDummyCollector,
	}
	for _, option := range options {
		option(ab)
	}
	return ab
}

func (ab *AlphaBeta) Depth() int {
	return ab.depth
}

// FindMove returns the best move for the side to move in state, whether any
// move applies, and the search metrics if collected.
func (ab *AlphaBeta) FindMove(state game.State, variant game.Variant) (game.Move, bool, metrics.SearchMetric) {
	collector := ab.metrics()
	collector.Start(ab.depth)
	s := newSearch(variant, ab.evaluate, collector)
	move, ok := s.root(state, ab.depth)
	return move, ok, collector.Complete()
}

// Score runs the pruned search below the root.
func (ab *AlphaBeta) Score(state game.State, maximizing bool, variant game.Variant) (float64, metrics.SearchMetric) {
	collector := ab.metrics()
	collector.Start(ab.depth)
	s := newSearch(variant, ab.evaluate, collector)
	score := s.alphaBeta(state, ab.depth, NegInf, PosInf, maximizing)
	return score, collector.Complete()
}

// FullScore runs the unpruned search below the root.
func (ab *AlphaBeta) FullScore(state game.State, maximizing bool, variant game.Variant) (float64, metrics.SearchMetric) {
	collector := ab.metrics()
	collector.Start(ab.depth)
	s := newSearch(variant, ab.evaluate, collector)
	score := s.minimax(state, ab.depth, maximizing)
	return score, collector.Complete()
}
