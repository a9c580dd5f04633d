package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazega/internal/ga"
	"mazega/internal/maze"
)

// openGrid returns a wall-free maze from (0,0) to (rows-1,cols-1)
func openGrid(t *testing.T, rows, cols int) *maze.Maze {
	t.Helper()
	grid := make([][]bool, rows)
	for r := range grid {
		grid[r] = make([]bool, cols)
	}
	m, err := maze.New(grid, maze.Position{Row: 0, Col: 0}, maze.Position{Row: rows - 1, Col: cols - 1})
	require.NoError(t, err)
	return m
}

func TestSimulateReachesGoalAndStopsEarly(t *testing.T) {
	m := openGrid(t, 5, 5)
	c := append(ga.Chromosome{
		ga.Right, ga.Right, ga.Right, ga.Right,
		ga.Down, ga.Down, ga.Down, ga.Down,
	}, ga.Chromosome{ga.Up, ga.Up, ga.Up, ga.Up}...)

	tr := Simulate(m, c)
	assert.True(t, tr.GoalReached)
	assert.Equal(t, 8, tr.Steps, "stops on the goal, leftover genes unconsumed")
	assert.Equal(t, m.Goal(), tr.Final)
	assert.Equal(t, 0, tr.Collisions)
	assert.Equal(t, 0, tr.Revisits)
	assert.Equal(t, 9, tr.UniqueCells)
}

func TestSimulateCollisionsDoNotMove(t *testing.T) {
	m := openGrid(t, 5, 5)
	c := ga.Chromosome{ga.Up, ga.Up} // both leave the grid

	tr := Simulate(m, c)
	assert.Equal(t, 2, tr.Collisions)
	assert.Equal(t, m.Start(), tr.Final)
	assert.False(t, tr.GoalReached)
	assert.Equal(t, 2, tr.Steps)
	assert.Equal(t, 1, tr.UniqueCells, "only the start cell was visited")
}

func TestSimulateWallCollision(t *testing.T) {
	// Wall at (1,1): moving down from (0,1) bumps it twice
	m, err := maze.Parse(`
		S . .
		. # .
		. . E
	`)
	require.NoError(t, err)

	c := ga.Chromosome{ga.Right, ga.Down, ga.Down}
	tr := Simulate(m, c)
	assert.Equal(t, 2, tr.Collisions)
	assert.Equal(t, maze.Position{Row: 0, Col: 1}, tr.Final)
}

func TestSimulateCountsRevisits(t *testing.T) {
	m := openGrid(t, 5, 5)
	c := ga.Chromosome{ga.Right, ga.Left, ga.Right}

	tr := Simulate(m, c)
	assert.Equal(t, 2, tr.Revisits, "returning to (0,0) and to (0,1)")
	assert.Equal(t, 2, tr.UniqueCells)
	assert.Equal(t, 0, tr.Collisions)
}

func TestSimulateGoalAtStart(t *testing.T) {
	grid := [][]bool{{false, false}}
	m, err := maze.New(grid, maze.Position{}, maze.Position{})
	require.NoError(t, err)

	tr := Simulate(m, ga.Chromosome{ga.Right, ga.Right})
	assert.True(t, tr.GoalReached)
	assert.Equal(t, 0, tr.Steps)
}

func TestScoreGoalReached(t *testing.T) {
	m := openGrid(t, 5, 5)
	tr := Trace{Collisions: 1, Revisits: 3, GoalReached: true, Steps: 12}
	fit := Score(m, tr, 50)
	assert.Equal(t, 16.0, fit.Navigation, "collisions*10 + revisits*2")
	assert.Equal(t, 12, fit.PathLength)
}

func TestScoreGoalNotReached(t *testing.T) {
	m := openGrid(t, 5, 5)
	tr := Trace{
		Final:       maze.Position{Row: 0, Col: 0},
		Collisions:  2,
		UniqueCells: 1,
		Revisits:    0,
		Steps:       20,
	}
	fit := Score(m, tr, 20)
	// collisions*10 + distance*5 + revisits*2 - unique = 20 + 40 + 0 - 1
	assert.Equal(t, 59.0, fit.Navigation)
	assert.Equal(t, 20, fit.PathLength, "non-reaching paths look maximally long")
}

func TestEvaluateCollisionTerm(t *testing.T) {
	m := openGrid(t, 5, 5)
	c := make(ga.Chromosome, 20)
	for i := range c {
		c[i] = ga.Right // 4 moves, then 16 collisions against the east edge
	}
	c[0], c[1] = ga.Up, ga.Up // two early out-of-bounds bumps

	tr := Simulate(m, c)
	require.False(t, tr.GoalReached)
	fit := Evaluate(m, c, 20)
	want := float64(tr.Collisions*10+m.DistanceToGoal(tr.Final)*5+tr.Revisits*2) - float64(tr.UniqueCells)
	assert.Equal(t, want, fit.Navigation)
	assert.GreaterOrEqual(t, tr.Collisions, 2)
}

func TestEvaluateDeterministic(t *testing.T) {
	m := maze.Complex()
	c, err := ga.ParseChromosome("RRDDLLUURRDDRRUULLDDRR")
	require.NoError(t, err)

	first := Evaluate(m, c, 100)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Evaluate(m, c, 100))
	}
}
