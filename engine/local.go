package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"pawnsboard/experiments/metrics"
	"pawnsboard/game"
	"pawnsboard/strategy"
)

// Local owns the real board and runs a game between two in-process
// strategies. Strategies only ever see the board as a ReadOnlyBoard.
type Local struct {
	ID     string
	Board  *game.Board
	config Config
	decks  [2][]game.Card
	agents [2]strategy.Searcher
}

var _ Engine = (*Local)(nil)

func NewLocal(config Config, red, blue strategy.Searcher) (*Local, error) {
	if red == nil || blue == nil {
		return nil, fmt.Errorf("both players need a strategy")
	}
	if !config.Starting.Valid() {
		return nil, fmt.Errorf("invalid starting player %d", int(config.Starting))
	}
	board, err := game.NewBoard(config.Rows, config.Cols)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}
	rng := config.Rng
	if rng == nil {
		rng = game.NewRand()
	}

	e := &Local{
		ID:     uuid.NewString(),
		config: config,
		agents: [2]strategy.Searcher{red, blue},
	}
	var hands [2][]game.Card
	for _, player := range game.Players {
		deck := game.RandomDeck(config.Pool, player, config.DeckSize, rng)
		n := min(max(config.HandSize, 0), len(deck))
		hands[player] = deck[:n]
		e.decks[player] = deck[n:]
	}
	e.Board = board.WithHands(hands[game.Red], hands[game.Blue])
	return e, nil
}

func (e *Local) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		ID:             e.ID,
		StartingPlayer: e.config.Starting.String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("game %s: %s is starting", e.ID, e.config.Starting)

	player := e.config.Starting
	passes := 0
	for step := 1; step <= e.config.MaxTurns && passes < 2; step++ {
		if step > 1 {
			e.draw(player)
		}

		move, searchMetric := e.choose(player)
		next, err := e.Board.Play(player, move)
		if err != nil {
			log.Warn().Err(err).Msgf("game %s: %s cannot play %s, passing", e.ID, player, move)
			move = game.Pass()
			next, _ = e.Board.Play(player, move)
		}
		e.Board = next

		if move.IsPass {
			passes++
		} else {
			passes = 0
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player.String(),
			Move:         move.String(),
			Score:        e.Board.Score(player),
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("game %s step %d: %s plays %s\n%s", e.ID, step, player, move, e.Board)

		player = player.Opponent()
	}

	winner := ""
	if p, ok := game.Winner(e.Board); ok {
		winner = p.String()
	}
	if passes >= 2 {
		log.Info().Msgf("game %s over after %d moves, winner: %q", e.ID, len(moveMetrics), winner)
	} else {
		log.Info().Msgf("game %s stopped after %d turns, winner: %q", e.ID, e.config.MaxTurns, winner)
	}

	gameMetric.Winner = winner
	gameMetric.RedScore = e.Board.Score(game.Red)
	gameMetric.BlueScore = e.Board.Score(game.Blue)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	return winner, gameMetric, moveMetrics
}

func (e *Local) draw(player game.Player) {
	deck := e.decks[player]
	if len(deck) == 0 {
		return
	}
	e.Board = e.Board.WithCard(player, deck[0])
	e.decks[player] = deck[1:]
}

// choose asks player's strategy for moves and takes the first legal one,
// falling back to pass.
func (e *Local) choose(player game.Player) (game.Move, metrics.SearchMetric) {
	agent := e.agents[player]
	moves, searchMetric, err := agent.Search(e.Board, player)
	if err != nil {
		log.Warn().Err(err).Msgf("game %s: %s search failed, passing", e.ID, agent.Name())
		return game.Pass(), searchMetric
	}
	for _, move := range moves {
		if e.Board.IsLegalMove(player, move) {
			return move, searchMetric
		}
		log.Warn().Msgf("game %s: %s returned illegal move %s for %s", e.ID, agent.Name(), move, player)
	}
	log.Warn().Msgf("game %s: %s returned no legal move for %s, passing", e.ID, agent.Name(), player)
	return game.Pass(), searchMetric
}
