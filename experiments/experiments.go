package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"pawnsboard/engine"
	"pawnsboard/experiments/metrics"
	"pawnsboard/game"
	"pawnsboard/strategy"
)

type Experiment struct {
	Name string
	// Root is the directory experiment output is written under
	Root     string
	Games    int // Per match up
	Configs  []metrics.AgentConfig
	MatchUps [][2]metrics.AgentConfig
	Engine   engine.Config
}

// Summary counts wins by agent config ID.
type Summary struct {
	Wins  map[int]int
	Draws int
	Dir   string
}

// RoundRobin pairs every known strategy against every other one.
func RoundRobin(goroutines int) ([]metrics.AgentConfig, [][2]metrics.AgentConfig) {
	configs := make([]metrics.AgentConfig, len(strategy.Names))
	for i, name := range strategy.Names {
		configs[i] = metrics.AgentConfig{ID: i + 1, Strategy: name, Goroutines: goroutines}
	}
	matchUps := [][2]metrics.AgentConfig{}
	for i := range configs {
		for j := i + 1; j < len(configs); j++ {
			matchUps = append(matchUps, [2]metrics.AgentConfig{configs[i], configs[j]})
		}
	}
	return configs, matchUps
}

// Run plays every match up Games times, alternating which side starts.
// Agent1 always plays Red.
func Run(exp Experiment) (Summary, error) {
	summary := Summary{Wins: map[int]int{}}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", exp.Name)

	for mi, matchup := range exp.MatchUps {
		config1, config2 := matchup[0], matchup[1]
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(exp.MatchUps), config1, config2)

		for i := 0; i < exp.Games; i++ {
			gameConfig := exp.Engine
			gameConfig.Starting = game.Players[i%2]

			winner, gameMetric, moveMetrics, err := runGame(gameConfig, config1, config2)
			if err != nil {
				return summary, fmt.Errorf("failed to run matchup %d game %d: %w", mi+1, i+1, err)
			}

			switch winner {
			case game.Red.String():
				summary.Wins[config1.ID]++
			case game.Blue.String():
				summary.Wins[config2.ID]++
			default:
				summary.Draws++
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       gameMetric.ID,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(exp.MatchUps), i+1, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", exp.Name)

	dir, err := store(exp, gameRecords, moveRecords)
	summary.Dir = dir
	return summary, err
}

func store(exp Experiment, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(exp.Root, exp.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(exp.Configs); err != nil {
		return writer.Dir(), fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return writer.Dir(), fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return writer.Dir(), fmt.Errorf("failed to store move records: %w", err)
	}
	if err := writer.WriteMoveArchive(moveRecords); err != nil {
		return writer.Dir(), fmt.Errorf("failed to store move archive: %w", err)
	}
	log.Info().Msgf("stored %d games and %d moves in %s", len(gameRecords), len(moveRecords), writer.Dir())
	return writer.Dir(), nil
}

func runGame(config engine.Config, config1, config2 metrics.AgentConfig) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	red, err := strategy.New(config1.Strategy, config1.Goroutines, derive(config.Rng))
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	blue, err := strategy.New(config2.Strategy, config2.Goroutines, derive(config.Rng))
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	e, err := engine.NewLocal(config, red, blue)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	winner, gameMetric, moveMetrics := e.Run()
	return winner, gameMetric, moveMetrics, nil
}

// derive seeds a strategy rng from the experiment rng so a seeded
// experiment replays the same random play. nil stays nil.
func derive(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return nil
	}
	return rand.New(rand.NewSource(rng.Uint64()))
}
