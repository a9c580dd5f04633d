package maze

import (
	"math/rand"
)

// Generate carves a random maze of roughly the requested size using a
// recursive backtracker. Dimensions are rounded down to odd numbers so the
// carved passages form a proper lattice. Start is the top-left passage cell
// and the goal is the bottom-right one, so the result always has a path.
func Generate(rows, cols int, rng *rand.Rand) *Maze {
	rows = ensureOdd(rows)
	cols = ensureOdd(cols)

	grid := make([][]bool, rows)
	for r := range grid {
		grid[r] = make([]bool, cols)
		for c := range grid[r] {
			grid[r][c] = true
		}
	}

	start := Position{1, 1}
	carve(grid, start, rng)

	goal := Position{rows - 2, cols - 2}
	grid[start.Row][start.Col] = false
	grid[goal.Row][goal.Col] = false

	m, err := New(grid, start, goal)
	if err != nil {
		// Unreachable for odd dimensions >= 3
		panic(err)
	}
	return m
}

// carve runs an iterative recursive-backtracker walk over the odd lattice,
// knocking out the wall between each visited cell and its chosen neighbor
func carve(grid [][]bool, start Position, rng *rand.Rand) {
	rows, cols := len(grid), len(grid[0])
	grid[start.Row][start.Col] = false
	stack := []Position{start}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		// Unvisited lattice neighbors two cells away
		var next []Position
		for _, d := range [][2]int{{-2, 0}, {2, 0}, {0, -2}, {0, 2}} {
			n := Position{cur.Row + d[0], cur.Col + d[1]}
			if n.Row > 0 && n.Row < rows-1 && n.Col > 0 && n.Col < cols-1 && grid[n.Row][n.Col] {
				next = append(next, n)
			}
		}

		if len(next) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		n := next[rng.Intn(len(next))]
		grid[(cur.Row+n.Row)/2][(cur.Col+n.Col)/2] = false
		grid[n.Row][n.Col] = false
		stack = append(stack, n)
	}
}

func ensureOdd(v int) int {
	if v < 5 {
		v = 5
	}
	if v%2 == 0 {
		v--
	}
	return v
}
