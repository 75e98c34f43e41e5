package agent

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"redblue/experiments/metrics"
	"redblue/game"
	"time"

	"github.com/rs/zerolog/log"
)

type remoteAgent struct {
	url     string
	variant game.Variant
	depth   int
	client  *http.Client
}

// NewRemoteAgent returns an agent that asks the agent server at baseURL for
// its moves.
func NewRemoteAgent(baseURL string, variant game.Variant, depth int) Agent {
	return remoteAgent{
		url:     baseURL + "/findmove",
		variant: variant,
		depth:   depth,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (a remoteAgent) FindMove(state game.State) (game.Move, bool, metrics.SearchMetric) {
	move, err := a.requestMove(state)
	if err != nil {
		log.Warn().Err(err).Msgf("remote agent at %s failed", a.url)
		return game.Move{}, false, metrics.SearchMetric{}
	}
	if move == nil {
		return game.Move{}, false, metrics.SearchMetric{Depth: a.depth, Exhausted: true}
	}
	return *move, true, metrics.SearchMetric{Depth: a.depth}
}

// requestMove posts the state to /findmove and decodes the chosen move.
func (a remoteAgent) requestMove(state game.State) (*game.Move, error) {
	depth := a.depth
	body, err := json.Marshal(findMoveRequest{
		Red:     state.Red,
		Blue:    state.Blue,
		Variant: a.variant.String(),
		Depth:   &depth,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := a.client.Post(a.url, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to reach agent server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("agent server returned status %d: %s", resp.StatusCode, bytes.TrimSpace(out))
	}

	var decoded findMoveResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode move: %w", err)
	}
	return decoded.Move, nil
}
