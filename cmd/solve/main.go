package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"mazega/internal/config"
	"mazega/internal/logging"
	"mazega/internal/maze"
	"mazega/internal/render"
	"mazega/internal/solver"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	mazeName := flag.String("maze", "", "maze to solve: simple|complex|random or a maze file path (overrides config)")
	seed := flag.Int64("seed", 0, "random seed (overrides config)")
	out := flag.String("out", "", "solution artifact path (overrides config)")
	quiet := flag.Bool("quiet", false, "suppress per-generation output")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if *mazeName != "" {
		cfg.Maze.Name = *mazeName
		cfg.Maze.Path = ""
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *out != "" {
		cfg.Logging.SolutionPath = *out
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	m, err := loadMaze(cfg, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading maze: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Maze (%dx%d), start %v, goal %v:\n\n%s\n\n", m.Rows, m.Cols, m.Start(), m.Goal(), m)
	if !m.HasPath() {
		fmt.Fprintln(os.Stderr, "Warning: goal is unreachable from start; the search will return its best partial path")
	}

	opts := cfg.SolverOptions()
	fmt.Printf("Population: %d, Generations: %d, Path length: %d, Tournament: %d, Seed: %d\n",
		opts.PopulationSize, opts.MaxGenerations, opts.MaxPathLength, opts.TournamentSize, cfg.Seed)
	fmt.Println("---")

	s, err := solver.New(m, opts, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(cfg.Logging.CSVPath, cfg.Logging.JSONPath, *quiet)
	if err == nil {
		err = logger.Init()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	s.OnGeneration(logger.LogGeneration)

	startTime := time.Now()
	res, err := s.Solve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	elapsed := time.Since(startTime)

	fmt.Println("---")
	stopped := "generation limit"
	if res.Stats.EarlyStopped {
		stopped = "stagnation"
	}
	fmt.Printf("Search finished: %d generations in %v (%s)\n", res.Stats.Generations, elapsed, stopped)
	fmt.Printf("Best fitness: %s, collisions=%d, revisits=%d, reached=%v\n",
		res.Best.Fitness, res.Trace.Collisions, res.Trace.Revisits, res.Trace.GoalReached)
	fmt.Println()
	fmt.Println(render.Path(m, res.Best.Chromosome))

	if err := logging.SaveSolution(cfg.Logging.SolutionPath, res, cfg.Seed); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to save solution: %v\n", err)
	} else {
		fmt.Printf("\nSolution saved to %s\n", cfg.Logging.SolutionPath)
	}
}

// loadMaze resolves the configured maze source: a builtin by name, a
// randomly generated grid, or a maze text file
func loadMaze(cfg *config.Config, rng *rand.Rand) (*maze.Maze, error) {
	if cfg.Maze.Path != "" {
		data, err := os.ReadFile(cfg.Maze.Path)
		if err != nil {
			return nil, err
		}
		return maze.Parse(string(data))
	}

	switch cfg.Maze.Name {
	case "simple":
		return maze.Simple(), nil
	case "complex":
		return maze.Complex(), nil
	case "random":
		return maze.Generate(cfg.Maze.Rows, cfg.Maze.Cols, rng), nil
	default:
		// Treat unrecognized names as file paths for convenience
		data, err := os.ReadFile(cfg.Maze.Name)
		if err != nil {
			return nil, fmt.Errorf("unknown maze %q (not a builtin or readable file)", cfg.Maze.Name)
		}
		return maze.Parse(string(data))
	}
}
