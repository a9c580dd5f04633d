package solver

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig marks option validation failures. All such errors are
// surfaced before any population is created.
var ErrInvalidConfig = errors.New("invalid solver configuration")

// Options holds the evolutionary search parameters
type Options struct {
	PopulationSize int
	MaxGenerations int
	MaxPathLength  int
	CrossoverProb  float64
	MutationProb   float64
	// IndividualGeneProb is the per-gene replacement probability applied
	// within a mutated individual
	IndividualGeneProb float64
	TournamentSize     int
	// EliteCount best individuals of each generation are copied unchanged
	// into the next one
	EliteCount              int
	MinImprovementThreshold float64
	StagnationWindow        int
}

// DefaultOptions mirrors the demo defaults: a small population intended
// for exploration, not throughput
func DefaultOptions() Options {
	return Options{
		PopulationSize:          300,
		MaxGenerations:          200,
		MaxPathLength:           100,
		CrossoverProb:           0.7,
		MutationProb:            0.2,
		IndividualGeneProb:      0.2,
		TournamentSize:          3,
		EliteCount:              1,
		MinImprovementThreshold: 0.001,
		StagnationWindow:        20,
	}
}

// Validate checks every option against its stated constraint
func (o Options) Validate() error {
	switch {
	case o.PopulationSize < 2:
		return fmt.Errorf("%w: population_size %d, need at least 2", ErrInvalidConfig, o.PopulationSize)
	case o.MaxGenerations < 1:
		return fmt.Errorf("%w: max_generations %d, need at least 1", ErrInvalidConfig, o.MaxGenerations)
	case o.MaxPathLength < 3:
		return fmt.Errorf("%w: max_path_length %d, need at least 3 for two-point crossover", ErrInvalidConfig, o.MaxPathLength)
	case o.CrossoverProb < 0 || o.CrossoverProb > 1:
		return fmt.Errorf("%w: crossover_prob %v outside [0,1]", ErrInvalidConfig, o.CrossoverProb)
	case o.MutationProb < 0 || o.MutationProb > 1:
		return fmt.Errorf("%w: mutation_prob %v outside [0,1]", ErrInvalidConfig, o.MutationProb)
	case o.IndividualGeneProb < 0 || o.IndividualGeneProb > 1:
		return fmt.Errorf("%w: gene_mutation_prob %v outside [0,1]", ErrInvalidConfig, o.IndividualGeneProb)
	case o.TournamentSize < 1:
		return fmt.Errorf("%w: tournament_size %d, need at least 1", ErrInvalidConfig, o.TournamentSize)
	case o.TournamentSize > o.PopulationSize:
		return fmt.Errorf("%w: tournament_size %d exceeds population_size %d", ErrInvalidConfig, o.TournamentSize, o.PopulationSize)
	case o.EliteCount < 0 || o.EliteCount >= o.PopulationSize:
		return fmt.Errorf("%w: elite_count %d outside [0,%d)", ErrInvalidConfig, o.EliteCount, o.PopulationSize)
	case o.MinImprovementThreshold < 0:
		return fmt.Errorf("%w: min_improvement_threshold %v is negative", ErrInvalidConfig, o.MinImprovementThreshold)
	case o.StagnationWindow < 1:
		return fmt.Errorf("%w: stagnation_window %d, need at least 1", ErrInvalidConfig, o.StagnationWindow)
	}
	return nil
}
