package server

import (
	"pawnsboard/experiments/metrics"
	"pawnsboard/game"
)

// MovesRequest is the payload for POST /moves.
type MovesRequest struct {
	Player   string        `json:"player"`
	Strategy string        `json:"strategy"`
	Board    game.Snapshot `json:"board"`
}

// MovesResponse lists the recommended moves best first.
type MovesResponse struct {
	Moves  []game.Move          `json:"moves"`
	Metric metrics.SearchMetric `json:"metric"`
}
