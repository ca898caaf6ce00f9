package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"pawnsboard/experiments/metrics"
	"pawnsboard/game"
	"pawnsboard/server"
	"pawnsboard/strategy"
)

// Remote asks a strategy service over HTTP for moves, so a Local game can
// pit an in-process strategy against one running elsewhere.
type Remote struct {
	url      string
	strategy string
	client   *http.Client
}

var _ strategy.Searcher = (*Remote)(nil)

func NewRemote(url, strategyName string, timeout time.Duration) *Remote {
	return &Remote{
		url:      strings.TrimSuffix(url, "/"),
		strategy: strategyName,
		client:   &http.Client{Timeout: timeout},
	}
}

func (r *Remote) Name() string {
	return "remote:" + r.strategy
}

func (r *Remote) ChooseMoves(b game.ReadOnlyBoard, player game.Player) ([]game.Move, error) {
	moves, _, err := r.Search(b, player)
	return moves, err
}

func (r *Remote) Search(b game.ReadOnlyBoard, player game.Player) ([]game.Move, metrics.SearchMetric, error) {
	board, ok := b.(*game.Board)
	if !ok {
		return nil, metrics.SearchMetric{}, fmt.Errorf("remote strategy needs a *game.Board, got %T", b)
	}
	payload := server.MovesRequest{
		Player:   player.String(),
		Strategy: r.strategy,
		Board:    board.Snapshot(),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, metrics.SearchMetric{}, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := r.client.Post(r.url+"/moves", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, metrics.SearchMetric{}, fmt.Errorf("failed to reach strategy service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(resp.Body)
		return nil, metrics.SearchMetric{}, fmt.Errorf("strategy service returned status %d: %s", resp.StatusCode, out)
	}

	var result server.MovesResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, metrics.SearchMetric{}, fmt.Errorf("failed to decode moves: %w", err)
	}
	if len(result.Moves) == 0 {
		return nil, result.Metric, fmt.Errorf("strategy service returned no moves")
	}
	return result.Moves, result.Metric, nil
}
