package engine

import (
	"golang.org/x/exp/rand"

	"pawnsboard/experiments/metrics"
	"pawnsboard/game"
	"pawnsboard/meta"
)

type Engine interface {
	// Run plays a game until both players pass in a row or the turn cap is
	// reached. winner is "" on a draw.
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

type Config struct {
	Rows     int
	Cols     int
	HandSize int
	DeckSize int
	MaxTurns int
	Starting game.Player
	// Pool is the shared card pool both decks are sampled from
	Pool []game.Card
	Rng  *rand.Rand
}

func DefaultConfig(pool []game.Card) Config {
	return Config{
		Rows:     meta.Rows,
		Cols:     meta.Cols,
		HandSize: meta.HandSize,
		DeckSize: meta.DeckSize,
		MaxTurns: meta.MaxTurns,
		Starting: game.Red,
		Pool:     pool,
	}
}
