package solver

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazega/internal/ga"
	"mazega/internal/maze"
)

func testOptions() Options {
	o := DefaultOptions()
	o.PopulationSize = 60
	o.MaxGenerations = 40
	o.MaxPathLength = 30
	return o
}

func TestOptionsValidate(t *testing.T) {
	assert.NoError(t, DefaultOptions().Validate())

	cases := []struct {
		name   string
		mutate func(*Options)
	}{
		{"population too small", func(o *Options) { o.PopulationSize = 1 }},
		{"no generations", func(o *Options) { o.MaxGenerations = 0 }},
		{"path length too short", func(o *Options) { o.MaxPathLength = 2 }},
		{"negative crossover prob", func(o *Options) { o.CrossoverProb = -0.1 }},
		{"crossover prob above one", func(o *Options) { o.CrossoverProb = 1.5 }},
		{"mutation prob above one", func(o *Options) { o.MutationProb = 2 }},
		{"gene prob below zero", func(o *Options) { o.IndividualGeneProb = -1 }},
		{"zero tournament", func(o *Options) { o.TournamentSize = 0 }},
		{"tournament exceeds population", func(o *Options) { o.TournamentSize = 1000 }},
		{"negative elites", func(o *Options) { o.EliteCount = -1 }},
		{"elites swallow population", func(o *Options) { o.EliteCount = 300 }},
		{"negative improvement threshold", func(o *Options) { o.MinImprovementThreshold = -0.5 }},
		{"zero stagnation window", func(o *Options) { o.StagnationWindow = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := DefaultOptions()
			tc.mutate(&o)
			err := o.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestNewRejectsMissingCollaborators(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := New(nil, DefaultOptions(), rng)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = New(maze.Simple(), DefaultOptions(), nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	bad := DefaultOptions()
	bad.MaxPathLength = 0
	_, err = New(maze.Simple(), bad, rng)
	assert.ErrorIs(t, err, ErrInvalidConfig, "validation runs before any population exists")
}

func TestBestNavigationNeverRegresses(t *testing.T) {
	s, err := New(maze.Simple(), testOptions(), rand.New(rand.NewSource(21)))
	require.NoError(t, err)

	var bests []float64
	s.OnGeneration(func(gs GenerationStats) {
		bests = append(bests, gs.Best)
	})

	res, err := s.Solve()
	require.NoError(t, err)
	require.NotEmpty(t, bests)

	// With elitism the per-generation best tracks the best-ever score
	for i := 1; i < len(bests); i++ {
		assert.LessOrEqual(t, bests[i], bests[i-1], "generation %d regressed", i+1)
	}
	assert.Equal(t, res.Best.Fitness.Navigation, bests[len(bests)-1])
}

func TestEarlyStopOnFrozenPopulation(t *testing.T) {
	o := testOptions()
	o.CrossoverProb = 0
	o.MutationProb = 0
	o.StagnationWindow = 5
	o.MinImprovementThreshold = 0.001
	o.MaxGenerations = 100

	s, err := New(maze.Simple(), o, rand.New(rand.NewSource(13)))
	require.NoError(t, err)

	res, err := s.Solve()
	require.NoError(t, err)
	assert.True(t, res.Stats.EarlyStopped)
	assert.LessOrEqual(t, res.Stats.Generations, 8, "a population frozen from the start stalls within the window")
}

func TestSolveOpenCorridorEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("full evolutionary run")
	}

	// 5x5 grid with no walls; the goal is trivially reachable in 8 steps
	grid := make([][]bool, 5)
	for r := range grid {
		grid[r] = make([]bool, 5)
	}
	m, err := maze.New(grid, maze.Position{Row: 0, Col: 0}, maze.Position{Row: 4, Col: 4})
	require.NoError(t, err)

	o := DefaultOptions()
	o.PopulationSize = 200
	o.MaxGenerations = 100
	o.MaxPathLength = 20

	reached := 0
	for _, seed := range []int64{1, 2, 3, 4, 5} {
		s, err := New(m, o, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)

		res, err := s.Solve()
		require.NoError(t, err)

		if res.Trace.GoalReached && res.Trace.Collisions == 0 {
			reached++
			assert.Equal(t, float64(res.Trace.Revisits*2), res.Best.Fitness.Navigation,
				"seed %d: score reduces to the revisit term", seed)
			assert.LessOrEqual(t, res.Best.Fitness.PathLength, 20)
		}
	}
	assert.GreaterOrEqual(t, reached, 4, "open grid should be solved cleanly on nearly every seed")
}

func TestRunStatsShape(t *testing.T) {
	o := testOptions()
	o.MaxGenerations = 10
	o.StagnationWindow = 50 // don't stop early

	s, err := New(maze.Simple(), o, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	res, err := s.Solve()
	require.NoError(t, err)

	assert.Equal(t, 10, res.Stats.Generations)
	assert.False(t, res.Stats.EarlyStopped)
	require.Len(t, res.Stats.PerGen, 10)
	for i, gs := range res.Stats.PerGen {
		assert.Equal(t, i+1, gs.Generation)
		assert.LessOrEqual(t, gs.Min, gs.Avg)
		assert.LessOrEqual(t, gs.Avg, gs.Max)
		assert.LessOrEqual(t, gs.Min, gs.Best)
	}
	assert.Len(t, res.Best.Chromosome, o.MaxPathLength)
}

func TestChromosomeLengthInvariantAcrossRun(t *testing.T) {
	o := testOptions()
	o.MaxGenerations = 15
	o.CrossoverProb = 1
	o.MutationProb = 1

	s, err := New(maze.Complex(), o, rand.New(rand.NewSource(77)))
	require.NoError(t, err)

	res, err := s.Solve()
	require.NoError(t, err)
	assert.Len(t, res.Best.Chromosome, o.MaxPathLength)
	assert.LessOrEqual(t, res.Trace.Steps, o.MaxPathLength)
}

func navPopulation(navs ...float64) ga.Population {
	pop := make(ga.Population, len(navs))
	for i, nav := range navs {
		pop[i].Fitness = ga.Fitness{Navigation: nav, PathLength: 100}
	}
	return pop
}

func TestWorstIndicesPicksMaximalFitness(t *testing.T) {
	pop := navPopulation(5, 90, 1, 40, 70)

	idx := worstIndices(pop, 2)
	require.Len(t, idx, 2)
	assert.Equal(t, 1, idx[0], "nav 90 is the worst")
	assert.Equal(t, 4, idx[1], "nav 70 is the second worst")

	assert.Len(t, worstIndices(pop, 10), len(pop), "request clamps to population size")
}

func TestElitesAndWorstIndicesDisjointExtremes(t *testing.T) {
	// Elites must evict the worst offspring, never strong ones that
	// happen to sit in particular slots
	pop := navPopulation(30, 2, 80, 2, 50, 9)

	best := elites(pop, 2)
	require.Len(t, best, 2)
	assert.Equal(t, 2.0, best[0].Fitness.Navigation)
	assert.Equal(t, 2.0, best[1].Fitness.Navigation)

	for _, idx := range worstIndices(pop, 2) {
		assert.GreaterOrEqual(t, pop[idx].Fitness.Navigation, 50.0)
		for _, e := range best {
			assert.NotEqual(t, e.Fitness.Navigation, pop[idx].Fitness.Navigation)
		}
	}
}
