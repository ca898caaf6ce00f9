package strategy

import (
	"fmt"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"

	"pawnsboard/experiments/metrics"
	"pawnsboard/game"
)

// Strategy recommends moves for player on b, best first. The result is
// never empty and b is never modified.
type Strategy interface {
	ChooseMoves(b game.ReadOnlyBoard, player game.Player) ([]game.Move, error)
}

// Searcher is a Strategy that also reports how much work a search took.
type Searcher interface {
	Strategy
	Name() string
	Search(b game.ReadOnlyBoard, player game.Player) ([]game.Move, metrics.SearchMetric, error)
}

const (
	MinimaxName = "minimax"
	GreedyName  = "greedy"
	RandomName  = "random"
)

var Names = []string{MinimaxName, GreedyName, RandomName}

func Known(name string) bool {
	return slices.Index(Names, name) >= 0
}

// New builds a named strategy with metric collection enabled. goroutines
// only affects minimax and rng only affects random, where nil seeds from
// the clock.
func New(name string, goroutines int, rng *rand.Rand) (Searcher, error) {
	switch name {
	case MinimaxName:
		return NewMinimax(WithGoroutines(goroutines), WithMetrics()), nil
	case GreedyName:
		return NewGreedy(), nil
	case RandomName:
		return NewRandom(rng), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q, want one of %v", name, Names)
	}
}
