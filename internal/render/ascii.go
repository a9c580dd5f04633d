package render

import (
	"fmt"
	"strings"

	"mazega/internal/ga"
	"mazega/internal/maze"
)

// Walk replays a chromosome through the maze and returns the sequence of
// positions occupied, starting with the entrance. Blocked moves leave the
// position unchanged and are not recorded; the walk stops on the goal.
func Walk(m *maze.Maze, c ga.Chromosome) []maze.Position {
	pos := m.Start()
	path := []maze.Position{pos}
	if pos == m.Goal() {
		return path
	}

	for _, mv := range c {
		dr, dc := mv.Delta()
		next := maze.Position{Row: pos.Row + dr, Col: pos.Col + dc}
		if !m.IsWall(next) {
			pos = next
			path = append(path, pos)
		}
		if pos == m.Goal() {
			break
		}
	}
	return path
}

// Path renders the maze with the chromosome's walk marked on it, followed
// by a legend and a short walk summary
func Path(m *maze.Maze, c ga.Chromosome) string {
	path := Walk(m, c)
	onPath := make(map[maze.Position]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}
	reached := path[len(path)-1] == m.Goal()

	var b strings.Builder
	for r := 0; r < m.Rows; r++ {
		for c0 := 0; c0 < m.Cols; c0++ {
			if c0 > 0 {
				b.WriteByte(' ')
			}
			p := maze.Position{Row: r, Col: c0}
			switch {
			case p == m.Start():
				b.WriteByte('S')
			case p == m.Goal():
				b.WriteByte('E')
			case onPath[p]:
				b.WriteByte('*')
			case m.IsWall(p):
				b.WriteRune('█')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}

	b.WriteString("\nLegend: S=Start, E=End, *=Path, █=Wall, .=Empty\n")
	fmt.Fprintf(&b, "Path length: %d steps\n", len(path))
	fmt.Fprintf(&b, "Reached goal: %v", reached)
	return b.String()
}
