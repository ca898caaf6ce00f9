package engine

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"pawnsboard/experiments/metrics"
	"pawnsboard/game"
	"pawnsboard/server"
	"pawnsboard/strategy"
)

const pool = `Security 1 2
XXXXX
XXIXX
XICIX
XXIXX
XXXXX
Bee 1 1
XXXXX
XXIXX
XXCXX
XXIXX
XXXXX
Sweeper 1 3
XXXXX
XXXXX
XICIX
XXXXX
XXXXX
Runner 1 1
XXXXX
XXXXX
XXCII
XXXXX
XXXXX
`

func testConfig(t *testing.T) Config {
	t.Helper()
	cards, err := game.ReadDeck(strings.NewReader(pool), game.Red)
	require.NoError(t, err)
	config := DefaultConfig(cards)
	config.Rows = 3
	config.Cols = 5
	config.HandSize = 2
	config.DeckSize = 4
	config.MaxTurns = 100
	config.Rng = rand.New(rand.NewSource(1))
	return config
}

// scripted always proposes the same moves.
type scripted struct {
	moves []game.Move
}

func (s scripted) Name() string { return "scripted" }

func (s scripted) ChooseMoves(b game.ReadOnlyBoard, player game.Player) ([]game.Move, error) {
	return s.moves, nil
}

func (s scripted) Search(b game.ReadOnlyBoard, player game.Player) ([]game.Move, metrics.SearchMetric, error) {
	return s.moves, metrics.SearchMetric{Strategy: "scripted"}, nil
}

func TestNewLocal(t *testing.T) {
	t.Run("dealing hands from the pool", func(t *testing.T) {
		e, err := NewLocal(testConfig(t), strategy.NewGreedy(), strategy.NewGreedy())
		require.NoError(t, err)

		require.NotEmpty(t, e.ID)
		for _, player := range game.Players {
			hand := e.Board.Hand(player)
			require.Len(t, hand, 2)
			for _, card := range hand {
				require.Equal(t, player, card.Owner())
			}
			require.Len(t, e.decks[player], 2, "Undealt cards stay in the draw pile")
		}
	})

	t.Run("rejecting bad setups", func(t *testing.T) {
		config := testConfig(t)
		_, err := NewLocal(config, nil, strategy.NewGreedy())
		require.Error(t, err)

		config.Cols = 4
		_, err = NewLocal(config, strategy.NewGreedy(), strategy.NewGreedy())
		require.Error(t, err)
	})
}

func TestRun(t *testing.T) {
	t.Run("playing a full game", func(t *testing.T) {
		e, err := NewLocal(testConfig(t), strategy.NewMinimax(strategy.WithMetrics()), strategy.NewGreedy())
		require.NoError(t, err)

		winner, gameMetric, moveMetrics := e.Run()

		require.Equal(t, e.ID, gameMetric.ID)
		require.Equal(t, "Red", gameMetric.StartingPlayer)
		require.Len(t, moveMetrics, gameMetric.TotalMoves)
		require.LessOrEqual(t, gameMetric.TotalMoves, 100)
		require.Equal(t, e.Board.Score(game.Red), gameMetric.RedScore)
		require.Equal(t, e.Board.Score(game.Blue), gameMetric.BlueScore)
		switch {
		case gameMetric.RedScore > gameMetric.BlueScore:
			require.Equal(t, "Red", winner)
		case gameMetric.BlueScore > gameMetric.RedScore:
			require.Equal(t, "Blue", winner)
		default:
			require.Empty(t, winner)
		}
		require.Equal(t, winner, gameMetric.Winner)

		for i, m := range moveMetrics {
			require.Equal(t, i+1, m.Step)
			if i%2 == 0 {
				require.Equal(t, "Red", m.Player, "Players alternate starting with Red")
			} else {
				require.Equal(t, "Blue", m.Player)
			}
		}
		n := len(moveMetrics)
		require.Equal(t, "pass", moveMetrics[n-1].Move, "Game ends on two passes")
		require.Equal(t, "pass", moveMetrics[n-2].Move)
		require.Equal(t, strategy.MinimaxName, moveMetrics[0].Strategy)
	})

	t.Run("empty decks end in a draw after two passes", func(t *testing.T) {
		config := testConfig(t)
		config.Pool = nil
		config.Starting = game.Blue
		e, err := NewLocal(config, strategy.NewGreedy(), strategy.NewGreedy())
		require.NoError(t, err)

		winner, gameMetric, moveMetrics := e.Run()
		require.Empty(t, winner)
		require.Equal(t, 2, gameMetric.TotalMoves)
		require.Equal(t, "Blue", moveMetrics[0].Player)
	})

	t.Run("illegal proposals fall back to pass", func(t *testing.T) {
		bad := scripted{moves: []game.Move{game.Place(9, 9, 9)}}
		e, err := NewLocal(testConfig(t), bad, bad)
		require.NoError(t, err)

		_, gameMetric, moveMetrics := e.Run()
		require.Equal(t, 2, gameMetric.TotalMoves)
		require.Equal(t, "pass", moveMetrics[0].Move)
		require.Equal(t, "pass", moveMetrics[1].Move)
	})

	t.Run("the first legal proposal is played", func(t *testing.T) {
		proposals := scripted{moves: []game.Move{game.Place(9, 9, 9), game.Place(0, 0, 0), game.Pass()}}
		e, err := NewLocal(testConfig(t), proposals, strategy.NewGreedy())
		require.NoError(t, err)

		_, _, moveMetrics := e.Run()
		require.Equal(t, game.Place(0, 0, 0).String(), moveMetrics[0].Move)
	})

	t.Run("stopping at the turn cap", func(t *testing.T) {
		config := testConfig(t)
		config.MaxTurns = 3
		e, err := NewLocal(config, strategy.NewGreedy(), strategy.NewGreedy())
		require.NoError(t, err)

		_, gameMetric, _ := e.Run()
		require.LessOrEqual(t, gameMetric.TotalMoves, 3)
	})
}

func TestRemote(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ts := httptest.NewServer(server.NewRouter(1))
	defer ts.Close()

	t.Run("fetching moves from the strategy service", func(t *testing.T) {
		b, err := game.NewBoard(3, 3)
		require.NoError(t, err)
		blocker := game.MustCard("Blocker", 1, 1, []string{"XXXXX", "XXXXX", "XXCXX", "XXXXX", "XXXXX"}, game.Red)
		b = b.WithHands([]game.Card{blocker}, nil)

		remote := NewRemote(ts.URL+"/", strategy.MinimaxName, time.Second)
		moves, metric, err := remote.Search(b, game.Red)
		require.NoError(t, err)
		require.Equal(t, game.Place(0, 0, 0), moves[0])
		require.Equal(t, strategy.MinimaxName, metric.Strategy)
	})

	t.Run("playing a local game against a remote strategy", func(t *testing.T) {
		e, err := NewLocal(testConfig(t), NewRemote(ts.URL, strategy.GreedyName, time.Second), strategy.NewRandom(rand.New(rand.NewSource(2))))
		require.NoError(t, err)

		_, gameMetric, moveMetrics := e.Run()
		require.Len(t, moveMetrics, gameMetric.TotalMoves)
		require.Equal(t, strategy.GreedyName, moveMetrics[0].Strategy)
	})

	t.Run("reporting service errors", func(t *testing.T) {
		b, err := game.NewBoard(3, 3)
		require.NoError(t, err)
		_, err = NewRemote(ts.URL, "oracle", time.Second).ChooseMoves(b, game.Red)
		require.ErrorContains(t, err, "400")
	})
}
