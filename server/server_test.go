package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"pawnsboard/game"
)

var neutralGrid = []string{"XXXXX", "XXXXX", "XXCXX", "XXXXX", "XXXXX"}

func blockerSnapshot(t *testing.T) game.Snapshot {
	t.Helper()
	b, err := game.NewBoard(3, 3)
	require.NoError(t, err)
	blocker := game.MustCard("Blocker", 1, 1, neutralGrid, game.Red)
	return b.WithHands([]game.Card{blocker}, nil).Snapshot()
}

func post(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	var data []byte
	switch v := body.(type) {
	case string:
		data = []byte(v)
	default:
		var err error
		data, err = json.Marshal(v)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(http.MethodPost, "/moves", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(1)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "minimax")
}

func TestMoves(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(2)

	t.Run("ranking moves for a posted board", func(t *testing.T) {
		w := post(t, router, MovesRequest{Player: "Red", Strategy: "minimax", Board: blockerSnapshot(t)})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp MovesResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, []game.Move{game.Place(0, 0, 0), game.Place(0, 1, 0), game.Place(0, 2, 0), game.Pass()}, resp.Moves)
		require.Equal(t, "minimax", resp.Metric.Strategy)
		require.Equal(t, 4, resp.Metric.Candidates)
	})

	t.Run("defaulting to minimax", func(t *testing.T) {
		w := post(t, router, MovesRequest{Player: "red", Board: blockerSnapshot(t)})
		require.Equal(t, http.StatusOK, w.Code)

		var resp MovesResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, "minimax", resp.Metric.Strategy)
	})

	t.Run("passing with an empty hand", func(t *testing.T) {
		w := post(t, router, MovesRequest{Player: "Blue", Strategy: "greedy", Board: blockerSnapshot(t)})
		require.Equal(t, http.StatusOK, w.Code)

		var resp MovesResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, []game.Move{game.Pass()}, resp.Moves)
	})

	t.Run("rejecting bad requests", func(t *testing.T) {
		require.Equal(t, http.StatusBadRequest, post(t, router, "{not json").Code)
		require.Equal(t, http.StatusBadRequest,
			post(t, router, MovesRequest{Player: "Green", Board: blockerSnapshot(t)}).Code, "Unknown player")
		require.Equal(t, http.StatusBadRequest,
			post(t, router, MovesRequest{Player: "Red", Strategy: "oracle", Board: blockerSnapshot(t)}).Code, "Unknown strategy")

		huge := `{"player":"Red","board":{"rows":1000000,"cols":1000000}}`
		require.Equal(t, http.StatusUnprocessableEntity, post(t, router, huge).Code, "Oversized board")

		s := blockerSnapshot(t)
		s.Cells = s.Cells[:2]
		require.Equal(t, http.StatusUnprocessableEntity,
			post(t, router, MovesRequest{Player: "Red", Board: s}).Code, "Inconsistent board")
	})
}
