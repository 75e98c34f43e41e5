package game

const (
	RedWeight  = 2
	BlueWeight = 3
)

// Evaluate weighs the remaining material. It is a heuristic, not a win/loss
// signal, and is defined for negative counts too.
func (s State) Evaluate() float64 {
	return float64(s.Red*RedWeight + s.Blue*BlueWeight)
}

// EvaluateMaterial is the default Evaluate used by the searchers.
func EvaluateMaterial(s State) float64 {
	return s.Evaluate()
}
