package strategy

import (
	"sync"

	"golang.org/x/exp/rand"

	"pawnsboard/experiments/metrics"
	"pawnsboard/game"
)

// Random plays a uniformly shuffled legal placement, passing last.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandom uses rng for shuffling; nil seeds from the clock.
func NewRandom(rng *rand.Rand) *Random {
	if rng == nil {
		rng = game.NewRand()
	}
	return &Random{rng: rng}
}

func (r *Random) Name() string {
	return RandomName
}

func (r *Random) ChooseMoves(b game.ReadOnlyBoard, player game.Player) ([]game.Move, error) {
	moves, _, err := r.Search(b, player)
	return moves, err
}

func (r *Random) Search(b game.ReadOnlyBoard, player game.Player) ([]game.Move, metrics.SearchMetric, error) {
	c := metrics.NewCollector()
	c.Start(RandomName, 1)

	moves := LegalMoves(b, player)
	placements := moves[:len(moves)-1]

	r.mu.Lock()
	r.rng.Shuffle(len(placements), func(i, j int) {
		placements[i], placements[j] = placements[j], placements[i]
	})
	r.mu.Unlock()

	for range moves {
		c.AddCandidate()
	}
	return moves, c.Complete(), nil
}
