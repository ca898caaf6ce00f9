package strategy

import (
	"cmp"
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/slices"

	"pawnsboard/experiments/metrics"
	"pawnsboard/game"
)

// Greedy plays the move that maximizes its own score right away.
type Greedy struct{}

func NewGreedy() *Greedy {
	return &Greedy{}
}

func (g *Greedy) Name() string {
	return GreedyName
}

func (g *Greedy) ChooseMoves(b game.ReadOnlyBoard, player game.Player) ([]game.Move, error) {
	moves, _, err := g.Search(b, player)
	return moves, err
}

func (g *Greedy) Search(b game.ReadOnlyBoard, player game.Player) ([]game.Move, metrics.SearchMetric, error) {
	c := metrics.NewCollector()
	c.Start(GreedyName, 1)

	moves := LegalMoves(b, player)
	scores := make(map[game.Move]int, len(moves))
	for _, move := range moves {
		c.AddCandidate()
		after, err := b.SimulateMove(player, move)
		c.AddSimulation()
		switch {
		case errors.Is(err, game.ErrIllegalMove):
			scores[move] = math.MinInt
		case err != nil:
			return nil, c.Complete(), fmt.Errorf("failed to evaluate %s: %w", move, err)
		default:
			scores[move] = after.Score(player)
		}
	}

	// Placements never lower the mover's score, so pass stays last on ties
	slices.SortStableFunc(moves, func(a, b game.Move) int {
		return cmp.Compare(scores[b], scores[a])
	})
	return moves, c.Complete(), nil
}
