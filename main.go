package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"tictactoe/config"
	"tictactoe/engine"
	"tictactoe/experiments"
	"tictactoe/game"
	"tictactoe/player"
	"tictactoe/searcher"
	"tictactoe/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	mode := flag.String("mode", "play", "Either play (against the engine) or experiment")
	iterations := flag.Int("iterations", 0, "Number of simulations per move")
	exploration := flag.Float64("exploration", -1, "UCB1 exploration constant")
	seed := flag.Uint64("seed", 0, "Random seed, 0 seeds from the clock")
	human := flag.String("human", "", "Symbol played by the human, x or o")
	experiment := flag.String("experiment", "", "Experiment to run: strength, exploration or selfplay")
	games := flag.Int("games", 0, "Number of games per experiment matchup")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *iterations > 0 {
		cfg.Search.Iterations = *iterations
	}
	if *exploration >= 0 {
		cfg.Search.Exploration = *exploration
	}
	if *seed > 0 {
		cfg.Search.Seed = *seed
	}
	if *human != "" {
		cfg.Play.Human = *human
	}
	if *experiment != "" {
		cfg.Experiment.Name = *experiment
	}
	if *games > 0 {
		cfg.Experiment.Games = *games
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	setupLogging(cfg.Log)

	switch *mode {
	case "play":
		err = play(cfg)
	case "experiment":
		err = runExperiment(cfg)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *mode)
	}
}

func setupLogging(cfg config.Log) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		log.Warn().Msgf("unknown log level %q, using info", cfg.Level)
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

func seedOf(cfg config.Search) uint64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return uint64(time.Now().UnixNano())
}

func play(cfg config.Config) error {
	humanSymbol := game.Symbol(cfg.Play.Human[0])
	renderer := player.NewRenderer(os.Stdout)
	human := player.NewHuman(os.Stdin, os.Stdout, renderer)
	bot := agent.NewEvaluationAgent(searcher.NewMCTS(
		searcher.WithIterations(cfg.Search.Iterations),
		searcher.WithExploration(cfg.Search.Exploration),
		searcher.WithSeed(seedOf(cfg.Search)),
	))

	agents := []agent.Agent{human, bot}
	if humanSymbol == game.O {
		agents = []agent.Agent{bot, human}
	}

	renderer.Banner()
	renderer.Render(game.NewBoard())

	e := engine.LocalEngine(agents, engine.WithObserver(func(step int, board game.Board) {
		// The human's own moves are rendered as they are entered
		if board.LastMover() != humanSymbol {
			renderer.Render(board)
		}
	}))

	_, _, _, err := e.Run()
	if errors.Is(err, player.ErrQuit) {
		return nil
	}
	if err != nil {
		return err
	}

	renderer.Result(e.State)
	return nil
}

func runExperiment(cfg config.Config) error {
	newExperiment := experiments.StrengthExperiment
	switch cfg.Experiment.Name {
	case "exploration":
		newExperiment = experiments.ExplorationExperiment
	case "selfplay":
		newExperiment = experiments.SelfPlayExperiment
	}

	exp := newExperiment(cfg.Experiment.Games, cfg.Experiment.OutputDir, cfg.Search.Iterations, cfg.Search.Exploration, seedOf(cfg.Search))
	summary, err := experiments.Run(exp)
	if err != nil {
		return err
	}

	log.Info().
		Int("games", summary.Games).
		Int("draws", summary.Draws).
		Interface("wins", summary.Wins).
		Str("dir", summary.Dir).
		Msgf("%s experiment finished", exp.Name)
	return nil
}
