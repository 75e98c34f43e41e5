package engine

import (
	"fmt"
	"redblue/experiments/metrics"
	"redblue/game"
	"redblue/meta"
	"redblue/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Turn records one played move.
type Turn struct {
	Player int
	Move   game.Move
	State  game.State // State after the move
	metrics.SearchMetric
}

type Result struct {
	Final     game.State
	Winner    int // Player index, NoWinner on draw or stalled game
	Draw      bool
	Stalled   bool // The player on move had no usable move
	Abandoned bool // Stalled although a move applied, e.g. closed input
	Turns     []Turn
}

func (r Result) FinalScore() float64 {
	return r.Final.Evaluate()
}

// Engine alternates two agents over one game. Player 0 moves first.
type Engine struct {
	State   game.State
	Variant game.Variant
	Agents  []agent.Agent
	current int
	turns   []Turn
}

func NewLocalEngine(variant game.Variant, initial game.State, agents ...agent.Agent) *Engine {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	return &Engine{
		State:   initial,
		Variant: variant,
		Agents:  agents,
	}
}

// Current returns the index of the player on move.
func (e *Engine) Current() int {
	return e.current
}

// Play applies a move for the player on move after checking it against the
// variant's move list and the current pools.
func (e *Engine) Play(move game.Move) error {
	if e.State.IsTerminal() {
		return ErrGameOver
	}

	isLegal := false
	for _, lm := range e.Variant.LegalMoves() {
		if lm == move {
			isLegal = true
			break
		}
	}
	if !isLegal {
		return fmt.Errorf("%w: %v is not a %s move", game.ErrIllegalMove, move, e.Variant)
	}

	next, err := e.State.Play(move)
	if err != nil {
		return err
	}
	e.turns = append(e.turns, Turn{Player: e.current, Move: move, State: next})
	e.State = next
	e.current = 1 - e.current
	return nil
}

// Run plays until a pool is exhausted, the player on move has no usable
// move, or meta.MaxTurns moves were played.
func (e *Engine) Run() Result {
	log.Info().Msgf("player %d is starting from %v (%s)", e.current, e.State, e.Variant)

	stalled, abandoned := false, false
	for !e.State.IsTerminal() && len(e.turns) < meta.MaxTurns {
		player := e.current
		move, ok, metric := e.Agents[player].FindMove(e.State)
		if !ok {
			stalled = true
			abandoned = e.hasMove()
			if abandoned {
				log.Warn().Msgf("player %d gave no move from %v, ending game", player, e.State)
			} else {
				log.Warn().Msgf("player %d has no legal move from %v, ending game", player, e.State)
			}
			break
		}

		if err := e.Play(move); err != nil {
			log.Warn().Err(err).Msgf("player %d played an invalid move, ending game", player)
			stalled = true
			break
		}
		e.turns[len(e.turns)-1].SearchMetric = metric

		log.Debug().Msgf("player %d played %v: %v", player, move, e.State)
	}

	result := e.result(stalled)
	result.Abandoned = abandoned
	log.Info().Msgf("game over after %d moves: %v, winner %d", len(result.Turns), result.Final, result.Winner)
	return result
}

// hasMove reports whether any of the variant's moves applies to the state.
func (e *Engine) hasMove() bool {
	for _, move := range e.Variant.LegalMoves() {
		if _, ok := e.State.Apply(move); ok {
			return true
		}
	}
	return false
}

func (e *Engine) result(stalled bool) Result {
	r := Result{
		Final:   e.State,
		Winner:  NoWinner,
		Stalled: stalled,
		Turns:   e.turns,
	}
	switch e.State.Outcome() {
	case game.Draw:
		r.Draw = true
	case game.Decided:
		// Exhausting a pool loses: the winner is the player now on move.
		r.Winner = e.current
	}
	return r
}
