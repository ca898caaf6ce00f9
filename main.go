package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"pawnsboard/decks"
	"pawnsboard/engine"
	"pawnsboard/experiments"
	"pawnsboard/experiments/metrics"
	"pawnsboard/game"
	"pawnsboard/meta"
	"pawnsboard/server"
	"pawnsboard/strategy"
)

func main() {
	mode := flag.String("mode", "experiment", "experiment or serve")
	level := flag.String("level", "info", "Log level")
	addr := flag.String("addr", ":8080", "Strategy service address")
	deckPath := flag.String("deck", "", "Card pool file, the bundled pool when empty")
	goroutines := flag.Int("goroutines", meta.GO_ROUTINES, "Number of goroutines for minimax candidate evaluation")
	games := flag.Int("games", 10, "Games per matchup")
	out := flag.String("out", "experiments", "Directory experiment results are written under")
	seed := flag.Uint64("seed", 0, "Deck sampling seed, the clock when 0")
	red := flag.String("red", "", "Strategy for agent 1, round robin over all strategies when empty")
	blue := flag.String("blue", "", "Strategy for agent 2")
	remote := flag.String("remote", "", "Strategy service URL to ask for agent 2's moves")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(lvl)

	switch *mode {
	case "serve":
		log.Info().Msgf("strategy service listening on %s", *addr)
		if err := server.NewRouter(*goroutines).Run(*addr); err != nil {
			log.Fatal().Err(err).Msg("strategy service stopped")
		}
	case "experiment":
		pool, err := loadPool(*deckPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load card pool")
		}
		config := engine.DefaultConfig(pool)
		if *seed != 0 {
			config.Rng = rand.New(rand.NewSource(*seed))
		}

		if *remote != "" {
			runRemote(config, *red, *remote, *blue, *goroutines)
			return
		}
		exp := experiments.Experiment{
			Name:   "round_robin",
			Root:   *out,
			Games:  *games,
			Engine: config,
		}
		if *red != "" || *blue != "" {
			a := metrics.AgentConfig{ID: 1, Strategy: *red, Goroutines: *goroutines}
			b := metrics.AgentConfig{ID: 2, Strategy: *blue, Goroutines: *goroutines}
			if !strategy.Known(a.Strategy) || !strategy.Known(b.Strategy) {
				log.Fatal().Msgf("-red and -blue must both name one of %v", strategy.Names)
			}
			exp.Name = a.Strategy + "_vs_" + b.Strategy
			exp.Configs = []metrics.AgentConfig{a, b}
			exp.MatchUps = [][2]metrics.AgentConfig{{a, b}}
		} else {
			exp.Configs, exp.MatchUps = experiments.RoundRobin(*goroutines)
		}

		summary, err := experiments.Run(exp)
		if err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		for _, config := range exp.Configs {
			log.Info().Msgf("agent %d (%s): %d wins", config.ID, config.Strategy, summary.Wins[config.ID])
		}
		log.Info().Msgf("draws: %d, results in %s", summary.Draws, summary.Dir)
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}

func loadPool(path string) ([]game.Card, error) {
	if path == "" {
		return decks.Default(game.Red)
	}
	return game.LoadDeck(path, game.Red)
}

// runRemote plays one game between a local strategy and one served at url.
func runRemote(config engine.Config, local, url, remoteStrategy string, goroutines int) {
	if local == "" {
		local = strategy.MinimaxName
	}
	if remoteStrategy == "" {
		remoteStrategy = strategy.MinimaxName
	}
	red, err := strategy.New(local, goroutines, config.Rng)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid local strategy")
	}
	e, err := engine.NewLocal(config, red, engine.NewRemote(url, remoteStrategy, 30*time.Second))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up game")
	}
	winner, gameMetric, _ := e.Run()
	log.Info().Msgf("winner: %q, Red %d - Blue %d\n%s", winner, gameMetric.RedScore, gameMetric.BlueScore, e.Board)
}
