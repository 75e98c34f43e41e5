package agent

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"redblue/game"
	"redblue/meta"
	"redblue/searcher"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func postFindMove(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/findmove", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestFindMoveHandler(t *testing.T) {
	handler := NewHandler(3)

	t.Run("returns the best move", func(t *testing.T) {
		rec := postFindMove(t, handler, `{"red":10,"blue":10,"variant":"standard"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp findMoveResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		want, _ := searcher.ChooseBest(game.NewGame(10, 10), 3, game.Standard)
		require.NotNil(t, resp.Move)
		require.Equal(t, want, *resp.Move)
	})

	t.Run("honors requested depth", func(t *testing.T) {
		rec := postFindMove(t, handler, `{"red":7,"blue":4,"variant":"misere","depth":1}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp findMoveResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		want, _ := searcher.ChooseBest(game.NewGame(7, 4), 1, game.Misere)
		require.Equal(t, want, *resp.Move)
	})

	t.Run("no legal move", func(t *testing.T) {
		rec := postFindMove(t, handler, `{"red":0,"blue":1,"variant":"standard"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"move":null}`, rec.Body.String())
	})

	t.Run("unknown variant", func(t *testing.T) {
		rec := postFindMove(t, handler, `{"red":10,"blue":10,"variant":"unknown"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("depth out of range", func(t *testing.T) {
		rec := postFindMove(t, handler, `{"red":10,"blue":10,"variant":"standard","depth":99}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("depth zero is refused", func(t *testing.T) {
		rec := postFindMove(t, handler, `{"red":10,"blue":10,"variant":"standard","depth":0}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := postFindMove(t, handler, `{"red":`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("wrong method", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/findmove", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestCheckDepth(t *testing.T) {
	for _, depth := range []int{1, 3, meta.MaxDepth} {
		require.NoError(t, CheckDepth(depth), "depth %d", depth)
	}
	for _, depth := range []int{-1, 0, meta.MaxDepth + 1} {
		require.ErrorIs(t, CheckDepth(depth), ErrDepthRange, "depth %d", depth)
	}
}

func TestStartAgentServerRejectsDepth(t *testing.T) {
	// Returns before binding the address.
	err := StartAgentServer("127.0.0.1:0", meta.MaxDepth+1)
	require.ErrorIs(t, err, ErrDepthRange)
}

func TestRemoteAgent(t *testing.T) {
	server := httptest.NewServer(NewHandler(3))
	defer server.Close()

	t.Run("plays the server's move", func(t *testing.T) {
		a := NewRemoteAgent(server.URL, game.Standard, 2)
		got, ok, _ := a.FindMove(game.NewGame(6, 9))

		want, wantOK := searcher.ChooseBest(game.NewGame(6, 9), 2, game.Standard)
		require.Equal(t, wantOK, ok)
		require.Equal(t, want, got)
	})

	t.Run("no legal move", func(t *testing.T) {
		_, ok, metric := NewRemoteAgent(server.URL, game.Standard, 2).FindMove(game.NewGame(0, 1))
		require.False(t, ok)
		require.True(t, metric.Exhausted)
	})

	t.Run("server rejects request", func(t *testing.T) {
		_, ok, _ := NewRemoteAgent(server.URL, game.Unknown, 2).FindMove(game.NewGame(5, 5))
		require.False(t, ok, "Unknown variant is rejected by the server")
	})

	t.Run("server unreachable", func(t *testing.T) {
		closed := httptest.NewServer(http.NotFoundHandler())
		closed.Close()
		_, ok, _ := NewRemoteAgent(closed.URL, game.Standard, 2).FindMove(game.NewGame(5, 5))
		require.False(t, ok)
	})
}
