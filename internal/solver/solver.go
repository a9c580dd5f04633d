package solver

import (
	"fmt"
	"math/rand"

	"mazega/internal/eval"
	"mazega/internal/ga"
	"mazega/internal/maze"
)

// GenerationStats records one generation's navigation-score aggregates
// plus the best individual's second objective
type GenerationStats struct {
	Generation  int
	Best        float64
	Avg         float64
	Min         float64
	Max         float64
	BestLength  int
	GoalReached bool
}

// RunStats summarizes a completed run
type RunStats struct {
	Generations  int
	EarlyStopped bool
	PerGen       []GenerationStats
}

// Result holds the best chromosome observed across all generations, its
// simulation trace, and run statistics
type Result struct {
	Best  ga.Individual
	Trace eval.Trace
	Stats RunStats
}

// GenerationFunc observes each completed generation; used by the CLI for
// progress logging
type GenerationFunc func(GenerationStats)

// Solver drives the evolutionary search over one maze. The random source
// is injected and consumed in a fixed order (selection draws, crossover
// decision and cuts, mutation decision and gene draws, repad draws), so a
// seeded run is reproducible.
type Solver struct {
	maze  *maze.Maze
	opts  Options
	rng   *rand.Rand
	onGen GenerationFunc
}

// New validates the options and builds a solver
func New(m *maze.Maze, opts Options, rng *rand.Rand) (*Solver, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil maze", ErrInvalidConfig)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Solver{maze: m, opts: opts, rng: rng}, nil
}

// OnGeneration registers a per-generation observer
func (s *Solver) OnGeneration(fn GenerationFunc) {
	s.onGen = fn
}

// Solve runs the search until the generation limit or stagnation-based
// early stopping, and returns the best individual observed across all
// generations, not necessarily one from the final population.
func (s *Solver) Solve() (*Result, error) {
	pop := make(ga.Population, s.opts.PopulationSize)
	for i := range pop {
		pop[i].Chromosome = ga.NewRandomChromosome(s.opts.MaxPathLength, s.rng)
	}
	s.evaluate(pop)

	best := pop[pop.Best()].Clone()
	bestTrace := eval.Simulate(s.maze, best.Chromosome)

	stats := RunStats{PerGen: make([]GenerationStats, 0, s.opts.MaxGenerations)}
	stagnant := 0

	for gen := 1; gen <= s.opts.MaxGenerations; gen++ {
		offspring := s.breed(pop)
		s.evaluate(offspring)

		// Elitism: the best of the outgoing generation survive unchanged,
		// evicting the worst offspring
		if s.opts.EliteCount > 0 {
			elite := elites(pop, s.opts.EliteCount)
			for i, idx := range worstIndices(offspring, len(elite)) {
				offspring[idx] = elite[i]
			}
		}
		pop = offspring

		prevBest := best.Fitness.Navigation
		if cur := pop[pop.Best()]; cur.Fitness.Less(best.Fitness) {
			best = cur.Clone()
			bestTrace = eval.Simulate(s.maze, best.Chromosome)
		}

		gs := s.generationStats(gen, pop)
		stats.PerGen = append(stats.PerGen, gs)
		stats.Generations = gen
		if s.onGen != nil {
			s.onGen(gs)
		}

		// Stagnation check on the best-ever navigation score
		if prevBest-best.Fitness.Navigation < s.opts.MinImprovementThreshold {
			stagnant++
		} else {
			stagnant = 0
		}
		if stagnant >= s.opts.StagnationWindow {
			stats.EarlyStopped = true
			break
		}
	}

	return &Result{Best: best, Trace: bestTrace, Stats: stats}, nil
}

// breed produces a full offspring population: tournament mating pool,
// two-point crossover on consecutive pairs, then per-gene mutation.
// Every crossover or mutation product is simplified (opposite-move
// cancellation plus random repad); untouched copies are not.
func (s *Solver) breed(pop ga.Population) ga.Population {
	offspring := ga.Population(ga.MatingPool(pop, s.opts.PopulationSize, s.opts.TournamentSize, s.rng))

	for i := 0; i+1 < len(offspring); i += 2 {
		if s.rng.Float64() < s.opts.CrossoverProb {
			c1, c2 := ga.TwoPointCrossover(offspring[i].Chromosome, offspring[i+1].Chromosome, s.rng)
			offspring[i].Chromosome = ga.Simplify(c1, s.opts.MaxPathLength, s.rng)
			offspring[i+1].Chromosome = ga.Simplify(c2, s.opts.MaxPathLength, s.rng)
		}
	}

	for i := range offspring {
		if s.rng.Float64() < s.opts.MutationProb {
			ga.Mutate(offspring[i].Chromosome, s.opts.IndividualGeneProb, s.rng)
			offspring[i].Chromosome = ga.Simplify(offspring[i].Chromosome, s.opts.MaxPathLength, s.rng)
		}
	}
	return offspring
}

func (s *Solver) evaluate(pop ga.Population) {
	for i := range pop {
		pop[i].Fitness = eval.Evaluate(s.maze, pop[i].Chromosome, s.opts.MaxPathLength)
	}
}

func (s *Solver) generationStats(gen int, pop ga.Population) GenerationStats {
	navStats := pop.Stats()
	bestInd := pop[pop.Best()]
	return GenerationStats{
		Generation:  gen,
		Best:        navStats.Best,
		Avg:         navStats.Avg,
		Min:         navStats.Min,
		Max:         navStats.Max,
		BestLength:  bestInd.Fitness.PathLength,
		GoalReached: eval.Simulate(s.maze, bestInd.Chromosome).GoalReached,
	}
}

// elites returns clones of the n best individuals of the population
func elites(pop ga.Population, n int) []ga.Individual {
	if n > len(pop) {
		n = len(pop)
	}
	idx := make([]int, len(pop))
	for i := range idx {
		idx[i] = i
	}
	// Partial selection sort; n is small
	for i := 0; i < n; i++ {
		best := i
		for j := i + 1; j < len(idx); j++ {
			if pop[idx[j]].Fitness.Less(pop[idx[best]].Fitness) {
				best = j
			}
		}
		idx[i], idx[best] = idx[best], idx[i]
	}

	out := make([]ga.Individual, n)
	for i := 0; i < n; i++ {
		out[i] = pop[idx[i]].Clone()
	}
	return out
}

// worstIndices returns the indices of the n worst individuals of the
// population by the Fitness comparator
func worstIndices(pop ga.Population, n int) []int {
	if n > len(pop) {
		n = len(pop)
	}
	idx := make([]int, len(pop))
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < n; i++ {
		worst := i
		for j := i + 1; j < len(idx); j++ {
			if pop[idx[worst]].Fitness.Less(pop[idx[j]].Fitness) {
				worst = j
			}
		}
		idx[i], idx[worst] = idx[worst], idx[i]
	}
	return idx[:n]
}
