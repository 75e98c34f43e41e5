package agent

import (
	"encoding/json"
	"fmt"
	"net/http"
	"redblue/game"
	"redblue/meta"
	"redblue/searcher"

	"github.com/rs/zerolog/log"
)

// ErrDepthRange rejects search depths the server will not run. Depth 0 is
// excluded because it searches every child down to the end of the game.
var ErrDepthRange = fmt.Errorf("depth must be within [1, %d]", meta.MaxDepth)

// CheckDepth reports whether depth is a depth the agent server accepts.
func CheckDepth(depth int) error {
	if depth < 1 || depth > meta.MaxDepth {
		return fmt.Errorf("%w, got %d", ErrDepthRange, depth)
	}
	return nil
}

type findMoveRequest struct {
	Red     int    `json:"red"`
	Blue    int    `json:"blue"`
	Variant string `json:"variant"`
	Depth   *int   `json:"depth,omitempty"`
}

type findMoveResponse struct {
	Move *game.Move `json:"move"`
}

// NewHandler serves POST /findmove with the alpha-beta best move. Requests
// without a depth search to defaultDepth.
func NewHandler(defaultDepth int) http.Handler {
	// Create a local mux rather than using the global DefaultServeMux
	mux := http.NewServeMux()
	mux.HandleFunc("/findmove", func(w http.ResponseWriter, r *http.Request) {
		handleFindMove(w, r, defaultDepth)
	})
	return mux
}

// StartAgentServer serves NewHandler on addr until the listener fails. An
// out of range defaultDepth is refused before listening.
func StartAgentServer(addr string, defaultDepth int) error {
	if err := CheckDepth(defaultDepth); err != nil {
		return fmt.Errorf("agent server: %w", err)
	}
	log.Info().Msgf("starting agent server on %s (depth %d)", addr, defaultDepth)
	return http.ListenAndServe(addr, NewHandler(defaultDepth))
}

func handleFindMove(w http.ResponseWriter, r *http.Request, defaultDepth int) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var payload findMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	variant, err := game.ParseVariant(payload.Variant)
	if err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	depth := defaultDepth
	if payload.Depth != nil {
		depth = *payload.Depth
	}
	if err := CheckDepth(depth); err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}

	state := game.NewGame(payload.Red, payload.Blue)
	move, ok, metric := searcher.NewAlphaBeta(searcher.WithDepth(depth), searcher.WithMetrics()).FindMove(state, variant)
	log.Debug().Msgf("findmove %v %s depth %d: %v (ok=%t, %d nodes)", state, variant, depth, move, ok, metric.Nodes)

	var resp findMoveResponse
	if ok {
		resp.Move = &move
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, "failed to encode move: "+err.Error(), http.StatusInternalServerError)
	}
}
