package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"mazega/internal/solver"
)

// Config is the root configuration structure
type Config struct {
	Seed    int64         `yaml:"seed"`
	Maze    MazeConfig    `yaml:"maze"`
	GA      GAConfig      `yaml:"ga"`
	Logging LoggingConfig `yaml:"logging"`
}

// MazeConfig selects which maze to solve
type MazeConfig struct {
	// Name is simple|complex|random, or empty when Path is set
	Name string `yaml:"name"`
	// Path points at a maze text file ('#' wall, '.' empty, 'S', 'E')
	Path string `yaml:"path"`
	// Rows/Cols size the generated maze when Name is "random"
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// GAConfig defines the evolutionary search parameters
type GAConfig struct {
	Population       int     `yaml:"population"`
	Generations      int     `yaml:"generations"`
	PathLength       int     `yaml:"path_length"`
	CrossoverProb    float64 `yaml:"crossover_prob"`
	MutationProb     float64 `yaml:"mutation_prob"`
	GeneMutationProb float64 `yaml:"gene_mutation_prob"`
	TournamentSize   int     `yaml:"tournament_size"`
	Elites           int     `yaml:"elites"`
	MinImprovement   float64 `yaml:"min_improvement"`
	StagnationWindow int     `yaml:"stagnation_window"`
}

// LoggingConfig defines run output parameters
type LoggingConfig struct {
	EveryGenSummary bool   `yaml:"every_gen_summary"`
	CSVPath         string `yaml:"csv_path"`
	JSONPath        string `yaml:"json_path"`
	SolutionPath    string `yaml:"solution_path"`
}

// Load reads a YAML config file and returns a Config with defaults applied
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	return cfg, nil
}

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Seed == 0 {
		cfg.Seed = 1337
	}
	if cfg.Maze.Name == "" && cfg.Maze.Path == "" {
		cfg.Maze.Name = "simple"
	}
	if cfg.Maze.Rows == 0 {
		cfg.Maze.Rows = 15
	}
	if cfg.Maze.Cols == 0 {
		cfg.Maze.Cols = 15
	}
	if cfg.GA.Population == 0 {
		cfg.GA.Population = 300
	}
	if cfg.GA.Generations == 0 {
		cfg.GA.Generations = 200
	}
	if cfg.GA.PathLength == 0 {
		cfg.GA.PathLength = 100
	}
	if cfg.GA.CrossoverProb == 0 {
		cfg.GA.CrossoverProb = 0.7
	}
	if cfg.GA.MutationProb == 0 {
		cfg.GA.MutationProb = 0.2
	}
	if cfg.GA.GeneMutationProb == 0 {
		cfg.GA.GeneMutationProb = 0.2
	}
	if cfg.GA.TournamentSize == 0 {
		cfg.GA.TournamentSize = 3
	}
	if cfg.GA.Elites == 0 {
		cfg.GA.Elites = 1
	}
	if cfg.GA.MinImprovement == 0 {
		cfg.GA.MinImprovement = 0.001
	}
	if cfg.GA.StagnationWindow == 0 {
		cfg.GA.StagnationWindow = 20
	}
	if cfg.Logging.CSVPath == "" {
		cfg.Logging.CSVPath = "runs/run.csv"
	}
	if cfg.Logging.JSONPath == "" {
		cfg.Logging.JSONPath = "runs/run.jsonl"
	}
	if cfg.Logging.SolutionPath == "" {
		cfg.Logging.SolutionPath = "artifacts/solution.json"
	}
}

// SolverOptions maps the GA section onto solver options
func (c *Config) SolverOptions() solver.Options {
	return solver.Options{
		PopulationSize:          c.GA.Population,
		MaxGenerations:          c.GA.Generations,
		MaxPathLength:           c.GA.PathLength,
		CrossoverProb:           c.GA.CrossoverProb,
		MutationProb:            c.GA.MutationProb,
		IndividualGeneProb:      c.GA.GeneMutationProb,
		TournamentSize:          c.GA.TournamentSize,
		EliteCount:              c.GA.Elites,
		MinImprovementThreshold: c.GA.MinImprovement,
		StagnationWindow:        c.GA.StagnationWindow,
	}
}
