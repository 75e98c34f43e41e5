package searcher

import (
	"redblue/experiments/metrics"
	"redblue/game"
)

// search carries what stays fixed during one search call. The move list is
// resolved from the variant once.
type search struct {
	moves    []game.Move
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func newSearch(variant game.Variant, evaluate game.Evaluate, collector metrics.Collector) *search {
	if collector == nil {
		collector = metrics.NewDummyCollector()
	}
	return &search{
		moves:    variant.LegalMoves(),
		evaluate: evaluate,
		metrics:  collector,
	}
}

// leaf scores state if the recursion stops here.
// A terminal state is scored against the side on move: reaching it while
// maximizing is worth -evaluate, while minimizing +evaluate. Only depth 0 stops
// on the plain evaluation; a negative depth never reaches zero again, so the
// subtree is searched down to terminal states.
func (s *search) leaf(state game.State, depth int, maximizing bool) (float64, bool) {
	if state.IsTerminal() {
		s.metrics.AddLeaf()
		if maximizing {
			return -s.evaluate(state), true
		}
		return s.evaluate(state), true
	}
	if depth == 0 {
		s.metrics.AddLeaf()
		return s.evaluate(state), true
	}
	return 0, false
}

func (s *search) alphaBeta(state game.State, depth int, alpha, beta float64, maximizing bool) float64 {
	s.metrics.AddNode()
	if score, ok := s.leaf(state, depth, maximizing); ok {
		return score
	}

	best := initialBest(maximizing)
	for _, move := range s.moves {
		next, ok := state.Apply(move)
		if !ok {
			continue
		}
		value := s.alphaBeta(next, depth-1, alpha, beta, !maximizing)

		if maximizing {
			best = max(best, value)
			alpha = max(alpha, best)
		} else {
			best = min(best, value)
			beta = min(beta, best)
		}

		if beta <= alpha {
			s.metrics.AddCutoff()
			break
		}
	}
	return best
}

func (s *search) minimax(state game.State, depth int, maximizing bool) float64 {
	s.metrics.AddNode()
	if score, ok := s.leaf(state, depth, maximizing); ok {
		return score
	}

	best := initialBest(maximizing)
	for _, move := range s.moves {
		next, ok := state.Apply(move)
		if !ok {
			continue
		}
		value := s.minimax(next, depth-1, !maximizing)
		if maximizing {
			best = max(best, value)
		} else {
			best = min(best, value)
		}
	}
	return best
}

// root searches every applicable move from the maximizing side and keeps the
// first one with the highest score.
func (s *search) root(state game.State, depth int) (game.Move, bool) {
	s.metrics.AddNode()

	var bestMove game.Move
	found := false
	bestValue := NegInf
	alpha, beta := NegInf, PosInf

	for _, move := range s.moves {
		next, ok := state.Apply(move)
		if !ok {
			continue
		}
		value := s.alphaBeta(next, depth-1, alpha, beta, false)

		if !found || value > bestValue {
			bestValue = value
			bestMove = move
			found = true
		}

		alpha = max(alpha, bestValue)
		if beta <= alpha {
			s.metrics.AddCutoff()
			break
		}
	}

	s.metrics.SetExhausted(!found)
	return bestMove, found
}
