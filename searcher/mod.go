package searcher

import (
	"math"
	"redblue/game"
)

// Unbounded alpha-beta window. Both compare beyond any finite score.
var (
	NegInf = math.Inf(-1)
	PosInf = math.Inf(1)
)

// Search scores state with alpha-beta pruning using the default material
// evaluation. See AlphaBeta for the scoring rules.
func Search(state game.State, depth int, alpha, beta float64, maximizing bool, variant game.Variant) float64 {
	s := newSearch(variant, game.EvaluateMaterial, nil)
	return s.alphaBeta(state, depth, alpha, beta, maximizing)
}

// ChooseBest picks the maximizing move from state. ok is false when no
// candidate move of the variant applies to state.
func ChooseBest(state game.State, depth int, variant game.Variant) (move game.Move, ok bool) {
	s := newSearch(variant, game.EvaluateMaterial, nil)
	return s.root(state, depth)
}

// Minimax scores state like Search but explores the full tree.
func Minimax(state game.State, depth int, maximizing bool, variant game.Variant) float64 {
	s := newSearch(variant, game.EvaluateMaterial, nil)
	return s.minimax(state, depth, maximizing)
}

func initialBest(maximizing bool) float64 {
	if maximizing {
		return NegInf
	}
	return PosInf
}
