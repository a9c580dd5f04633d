package maze

import (
	"fmt"
	"strings"
)

// Simple returns the builtin 5x5 demo maze
func Simple() *Maze {
	m, err := New(gridFromInts([][]int{
		{0, 0, 0, 0, 0},
		{0, 1, 1, 1, 0},
		{0, 0, 0, 1, 0},
		{0, 1, 0, 0, 0},
		{0, 0, 0, 1, 0},
	}), Position{0, 0}, Position{4, 4})
	if err != nil {
		panic(err)
	}
	return m
}

// Complex returns the builtin 10x10 demo maze with long winding corridors
func Complex() *Maze {
	m, err := New(gridFromInts([][]int{
		{0, 1, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 1, 0, 1, 1, 1, 1, 1, 1, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 1, 0},
		{0, 1, 1, 1, 1, 1, 1, 0, 1, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 1, 0},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
	}), Position{0, 0}, Position{9, 9})
	if err != nil {
		panic(err)
	}
	return m
}

// Parse reads a maze from its text form. Recognized cells:
// '#' or '1' wall, '.' or '0' empty, 'S' start, 'E' goal.
// Lines must all be the same width; blank lines are skipped.
func Parse(text string) (*Maze, error) {
	var grid [][]bool
	start := Position{-1, -1}
	goal := Position{-1, -1}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.ReplaceAll(line, " ", ""))
		if line == "" {
			continue
		}
		row := make([]bool, 0, len(line))
		for _, ch := range line {
			p := Position{len(grid), len(row)}
			switch ch {
			case '#', '1', '█':
				row = append(row, true)
			case '.', '0':
				row = append(row, false)
			case 'S', 's':
				start = p
				row = append(row, false)
			case 'E', 'e', 'G', 'g':
				goal = p
				row = append(row, false)
			default:
				return nil, fmt.Errorf("maze: unrecognized cell %q at row %d col %d", ch, p.Row, p.Col)
			}
		}
		grid = append(grid, row)
	}

	if start.Row < 0 {
		return nil, fmt.Errorf("maze: no start cell ('S') found")
	}
	if goal.Row < 0 {
		return nil, fmt.Errorf("maze: no goal cell ('E') found")
	}
	return New(grid, start, goal)
}

func gridFromInts(cells [][]int) [][]bool {
	grid := make([][]bool, len(cells))
	for r, row := range cells {
		grid[r] = make([]bool, len(row))
		for c, v := range row {
			grid[r][c] = v != 0
		}
	}
	return grid
}
