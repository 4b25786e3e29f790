package config

import (
	"errors"
	"fmt"
	"os"

	"tictactoe/meta"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Search     Search     `yaml:"search"`
	Log        Log        `yaml:"log"`
	Play       Play       `yaml:"play"`
	Experiment Experiment `yaml:"experiment"`
}

type Search struct {
	Iterations  int     `yaml:"iterations"`
	Exploration float64 `yaml:"exploration"`
	Seed        uint64  `yaml:"seed"` // 0 seeds from the clock
}

type Log struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

type Play struct {
	Human string `yaml:"human"` // "x" or "o"
}

type Experiment struct {
	Name      string `yaml:"name"`
	Games     int    `yaml:"games"`
	OutputDir string `yaml:"output_dir"`
}

var ErrInvalid = errors.New("invalid config")

func Default() Config {
	return Config{
		Search: Search{
			Iterations:  meta.ITERATIONS,
			Exploration: meta.EXPLORATION,
		},
		Log: Log{
			Level:  "info",
			Pretty: true,
		},
		Play: Play{
			Human: "x",
		},
		Experiment: Experiment{
			Name:      "strength",
			Games:     meta.GAMES,
			OutputDir: meta.OUTPUT_DIR,
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Search.Iterations <= 0 {
		return fmt.Errorf("%w: search.iterations must be positive, got %d", ErrInvalid, c.Search.Iterations)
	}
	if c.Search.Exploration < 0 {
		return fmt.Errorf("%w: search.exploration must not be negative, got %v", ErrInvalid, c.Search.Exploration)
	}
	if c.Play.Human != "x" && c.Play.Human != "o" {
		return fmt.Errorf("%w: play.human must be x or o, got %q", ErrInvalid, c.Play.Human)
	}
	if c.Experiment.Games <= 0 {
		return fmt.Errorf("%w: experiment.games must be positive, got %d", ErrInvalid, c.Experiment.Games)
	}
	switch c.Experiment.Name {
	case "strength", "exploration", "selfplay":
	default:
		return fmt.Errorf("%w: unknown experiment %q", ErrInvalid, c.Experiment.Name)
	}
	return nil
}
