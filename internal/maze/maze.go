package maze

import (
	"fmt"
	"strings"
)

// Position represents a cell coordinate on the grid
type Position struct {
	Row, Col int
}

// Maze represents a rectangular grid with walls, a start cell, and a goal cell
type Maze struct {
	grid  [][]bool // true = wall
	Rows  int
	Cols  int
	start Position
	goal  Position
}

// New creates a maze from a wall grid. The grid must be rectangular and
// non-empty, and start/goal must be passable cells.
func New(grid [][]bool, start, goal Position) (*Maze, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, fmt.Errorf("maze: empty grid")
	}
	cols := len(grid[0])
	for i, row := range grid {
		if len(row) != cols {
			return nil, fmt.Errorf("maze: row %d has %d cells, expected %d", i, len(row), cols)
		}
	}

	m := &Maze{
		grid:  grid,
		Rows:  len(grid),
		Cols:  cols,
		start: start,
		goal:  goal,
	}

	if !m.InBounds(start) || m.IsWall(start) {
		return nil, fmt.Errorf("maze: start %v is not a passable cell", start)
	}
	if !m.InBounds(goal) || m.IsWall(goal) {
		return nil, fmt.Errorf("maze: goal %v is not a passable cell", goal)
	}
	return m, nil
}

// Start returns the entrance cell
func (m *Maze) Start() Position {
	return m.start
}

// Goal returns the target cell
func (m *Maze) Goal() Position {
	return m.goal
}

// InBounds reports whether the position lies inside the grid
func (m *Maze) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < m.Rows && p.Col >= 0 && p.Col < m.Cols
}

// IsWall reports whether the position is blocked. Out-of-bounds cells
// count as walls.
func (m *Maze) IsWall(p Position) bool {
	if !m.InBounds(p) {
		return true
	}
	return m.grid[p.Row][p.Col]
}

// ManhattanDistance returns |Δrow| + |Δcol| between two cells
func ManhattanDistance(a, b Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// DistanceToGoal returns the Manhattan distance from p to the goal
func (m *Maze) DistanceToGoal(p Position) int {
	return ManhattanDistance(p, m.goal)
}

// HasPath reports whether the goal is reachable from the start via a BFS
// over passable cells. An unreachable goal is not an error for the solver;
// the search simply returns its best partial attempt.
func (m *Maze) HasPath() bool {
	if m.start == m.goal {
		return true
	}
	visited := make(map[Position]bool, m.Rows*m.Cols)
	visited[m.start] = true
	queue := []Position{m.start}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, n := range []Position{
			{p.Row - 1, p.Col},
			{p.Row + 1, p.Col},
			{p.Row, p.Col - 1},
			{p.Row, p.Col + 1},
		} {
			if m.IsWall(n) || visited[n] {
				continue
			}
			if n == m.goal {
				return true
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}
	return false
}

// String renders the bare maze: S=start, E=goal, walls, and empty cells
func (m *Maze) String() string {
	var b strings.Builder
	for r := 0; r < m.Rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < m.Cols; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			p := Position{r, c}
			switch {
			case p == m.start:
				b.WriteByte('S')
			case p == m.goal:
				b.WriteByte('E')
			case m.grid[r][c]:
				b.WriteRune('█')
			default:
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
