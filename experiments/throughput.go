package experiments

import "tictactoe/experiments/metrics"

// StrengthExperiment pits the configured engine against a random baseline and
// against a weaker engine with a tenth of the iterations.
func StrengthExperiment(games int, outputDir string, iterations int, exploration float64, seed uint64) Experiment {
	engine := metrics.AgentConfig{ID: 1, Kind: metrics.MCTSAgent, Iterations: iterations, Exploration: exploration, Seed: seed}
	random := metrics.AgentConfig{ID: 2, Kind: metrics.RandomAgent, Seed: seed + 1000}
	weak := metrics.AgentConfig{ID: 3, Kind: metrics.MCTSAgent, Iterations: max(1, iterations/10), Exploration: exploration, Seed: seed + 2000}

	return Experiment{
		Name:      "strength",
		Games:     games,
		OutputDir: outputDir,
		MatchUps: []MatchUp{
			{engine, random},
			{engine, weak},
		},
	}
}

// ExplorationExperiment pits engines with different exploration constants
// against the configured one at equal iterations.
func ExplorationExperiment(games int, outputDir string, iterations int, exploration float64, seed uint64) Experiment {
	baseline := metrics.AgentConfig{ID: 0, Kind: metrics.MCTSAgent, Iterations: iterations, Exploration: exploration, Seed: seed}
	constants := []float64{0.5, 1.0, 1.414, 4.0}

	matchUps := []MatchUp{}
	for i, c := range constants {
		config := metrics.AgentConfig{ID: i + 1, Kind: metrics.MCTSAgent, Iterations: iterations, Exploration: c, Seed: seed + uint64(i+1)*1000}
		matchUps = append(matchUps, MatchUp{baseline, config})
	}

	return Experiment{
		Name:      "exploration",
		Games:     games,
		OutputDir: outputDir,
		MatchUps:  matchUps,
	}
}

// SelfPlayExperiment plays the engine against a training agent that samples
// moves by visit count, giving more varied games than deterministic self-play.
func SelfPlayExperiment(games int, outputDir string, iterations int, exploration float64, seed uint64) Experiment {
	engine := metrics.AgentConfig{ID: 1, Kind: metrics.MCTSAgent, Iterations: iterations, Exploration: exploration, Seed: seed}
	training := metrics.AgentConfig{ID: 2, Kind: metrics.TrainingAgent, Iterations: iterations, Exploration: exploration, Temperature: 1.0, Seed: seed + 1000}

	return Experiment{
		Name:      "selfplay",
		Games:     games,
		OutputDir: outputDir,
		MatchUps:  []MatchUp{{engine, training}},
	}
}
