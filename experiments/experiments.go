package experiments

import (
	"fmt"

	"tictactoe/engine"
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/searcher"
	"tictactoe/searcher/agent"

	"github.com/rs/zerolog/log"
)

type MatchUp [2]metrics.AgentConfig

type Experiment struct {
	Name      string
	Games     int // Per match up
	OutputDir string
	MatchUps  []MatchUp
}

type Summary struct {
	Dir   string
	Games int
	Wins  map[int]int // AgentConfig.ID -> games won
	Draws int
}

// Run plays every matchup, alternating which agent starts, and stores the
// agent configs, game records and move records as CSV files.
func Run(exp Experiment) (Summary, error) {
	summary := Summary{Wins: map[int]int{}}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", exp.Name)

	for mi, matchup := range exp.MatchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(exp.MatchUps), matchup[0], matchup[1])

		for i := 0; i < exp.Games; i++ {
			// Alternate the starting agent
			first, second := matchup[0], matchup[1]
			if i%2 == 1 {
				first, second = second, first
			}

			winner, gameMetric, moveMetrics, err := runGame(first, second, uint64(i))
			if err != nil {
				return summary, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			summary.Games++
			switch winner {
			case game.X:
				summary.Wins[first.ID]++
			case game.O:
				summary.Wins[second.ID]++
			default:
				summary.Draws++
			}

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         summary.Games,
				Agent1:     first.ID,
				Agent2:     second.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       summary.Games,
					MoveMetric: mm,
				})
			}

			log.Debug().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(exp.MatchUps), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(exp.MatchUps))
	}

	log.Info().Msgf("completed %s experiment", exp.Name)

	dir, err := store(exp, gameRecords, moveRecords)
	if err != nil {
		return summary, err
	}
	summary.Dir = dir
	return summary, nil
}

func store(exp Experiment, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(exp.OutputDir, exp.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(agentConfigs(exp.MatchUps))
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())

	return writer.Dir(), nil
}

func agentConfigs(matchUps []MatchUp) []metrics.AgentConfig {
	seen := map[int]bool{}
	configs := []metrics.AgentConfig{}
	for _, matchup := range matchUps {
		for _, config := range matchup {
			if !seen[config.ID] {
				seen[config.ID] = true
				configs = append(configs, config)
			}
		}
	}
	return configs
}

// runGame executes a single game, first playing x, and returns the winner
func runGame(first, second metrics.AgentConfig, gameNum uint64) (game.Symbol, metrics.GameMetric, []metrics.MoveMetric, error) {
	agents := []agent.Agent{
		createAgent(first, gameNum),
		createAgent(second, gameNum),
	}
	e := engine.LocalEngine(agents)

	return e.Run()
}

// createAgent offsets the configured seed by the game number so that repeated
// games of a matchup differ but stay reproducible.
func createAgent(config metrics.AgentConfig, gameNum uint64) agent.Agent {
	seed := config.Seed + gameNum
	switch config.Kind {
	case metrics.RandomAgent:
		return agent.NewRandomAgent(seed)
	case metrics.TrainingAgent:
		return agent.NewTrainingAgent(createMCTS(config, seed), config.Temperature, seed)
	default:
		return agent.NewEvaluationAgent(createMCTS(config, seed))
	}
}

func createMCTS(config metrics.AgentConfig, seed uint64) *searcher.MCTS {
	options := []searcher.Option{searcher.WithSeed(seed)}

	if config.Iterations > 0 {
		options = append(options, searcher.WithIterations(config.Iterations))
	}
	if config.Exploration > 0 {
		options = append(options, searcher.WithExploration(config.Exploration))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewMCTS(options...)
}
