package strategy

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"

	"pawnsboard/experiments/metrics"
	"pawnsboard/game"
)

const (
	// WorstResponse ranks a candidate that could not be played last
	WorstResponse = math.MaxInt
	// TrappedResponse is the response of an opponent left with only a pass
	TrappedResponse = math.MinInt
)

type Option func(m *Minimax)

// Candidate is a move with the best score the opponent can reach in reply.
type Candidate struct {
	Move     game.Move
	Response int
}

// Minimax looks two plies ahead: it prefers the move after which the
// opponent's best reply scores the least.
type Minimax struct {
	goroutines int
	collector  func() metrics.Collector
}

func WithGoroutines(goroutines int) Option {
	return func(m *Minimax) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.collector = metrics.NewCollector
	}
}

// WithCollector reports every search to c. c is shared between calls, so
// concurrent searches on the same Minimax should not use this.
func WithCollector(c metrics.Collector) Option {
	return func(m *Minimax) {
		if c != nil {
			m.collector = func() metrics.Collector { return c }
		}
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		goroutines: 1,
		collector:  metrics.NewDummyCollector,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Name() string {
	return MinimaxName
}

func (m *Minimax) ChooseMoves(b game.ReadOnlyBoard, player game.Player) ([]game.Move, error) {
	moves, _, err := m.Search(b, player)
	return moves, err
}

func (m *Minimax) Search(b game.ReadOnlyBoard, player game.Player) ([]game.Move, metrics.SearchMetric, error) {
	c := m.collector()
	c.Start(MinimaxName, m.goroutines)
	candidates, err := m.rank(b, player, c)
	metric := c.Complete()
	if err != nil {
		return nil, metric, err
	}

	moves := make([]game.Move, len(candidates))
	for i, candidate := range candidates {
		moves[i] = candidate.Move
	}
	return moves, metric, nil
}

// Rank returns every legal candidate ordered best first. Candidates with
// equal responses keep their enumeration order.
func (m *Minimax) Rank(b game.ReadOnlyBoard, player game.Player) ([]Candidate, error) {
	return m.rank(b, player, metrics.NewDummyCollector())
}

func (m *Minimax) rank(b game.ReadOnlyBoard, player game.Player, c metrics.Collector) ([]Candidate, error) {
	moves := LegalMoves(b, player)
	candidates := make([]Candidate, len(moves))
	errs := make([]error, len(moves))

	task := make(chan int, len(moves))
	for i := range moves {
		task <- i
	}
	close(task)

	// Each slot is written by exactly one worker
	var wg sync.WaitGroup
	for i := 0; i < min(m.goroutines, len(moves)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := range task {
				response, err := respond(b, player, moves[j], c)
				candidates[j] = Candidate{Move: moves[j], Response: response}
				errs[j] = err
				c.AddCandidate()
			}
		}()
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate %s: %w", moves[i], err)
		}
	}

	slices.SortStableFunc(candidates, func(a, b Candidate) int {
		return cmp.Compare(a.Response, b.Response)
	})
	log.Debug().Msgf("%s ranked %d candidates, best %s (response %d)", player, len(candidates), candidates[0].Move, candidates[0].Response)
	return candidates, nil
}

// respond returns the best score player's opponent can reach after move.
func respond(b game.ReadOnlyBoard, player game.Player, move game.Move, c metrics.Collector) (int, error) {
	after, err := b.SimulateMove(player, move)
	c.AddSimulation()
	if errors.Is(err, game.ErrIllegalMove) {
		return WorstResponse, nil
	}
	if err != nil {
		return 0, err
	}

	opponent := player.Opponent()
	replies := LegalMoves(after, opponent)
	if len(replies) == 1 { // pass only
		return TrappedResponse, nil
	}

	best := math.MinInt
	for _, reply := range replies {
		next, err := after.SimulateMove(opponent, reply)
		c.AddSimulation()
		if err != nil {
			return 0, fmt.Errorf("failed to simulate reply %s: %w", reply, err)
		}
		best = max(best, next.Score(opponent))
	}
	return best, nil
}
