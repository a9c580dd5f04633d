package eval

import (
	"mazega/internal/ga"
	"mazega/internal/maze"
)

// Trace records what happened while walking a chromosome through the maze
type Trace struct {
	Final       maze.Position
	Collisions  int
	UniqueCells int
	Revisits    int
	GoalReached bool
	// Steps is the number of genes consumed: up to and including the move
	// that reached the goal, or the full chromosome length otherwise
	Steps int
}

// Simulate walks the chromosome from the maze entrance gene by gene.
// A move into a wall or out of bounds wastes the gene and counts as a
// collision; the agent stays put. The walk stops the first time the agent
// stands on the goal. Deterministic: same chromosome and maze, same trace.
func Simulate(m *maze.Maze, c ga.Chromosome) Trace {
	pos := m.Start()
	visited := map[maze.Position]bool{pos: true}
	t := Trace{Final: pos, UniqueCells: 1}

	if pos == m.Goal() {
		t.GoalReached = true
		return t
	}

	for i, mv := range c {
		dr, dc := mv.Delta()
		next := maze.Position{Row: pos.Row + dr, Col: pos.Col + dc}

		if m.IsWall(next) {
			t.Collisions++
		} else {
			pos = next
			if visited[pos] {
				t.Revisits++
			} else {
				visited[pos] = true
				t.UniqueCells++
			}
		}

		if pos == m.Goal() {
			t.GoalReached = true
			t.Steps = i + 1
			break
		}
	}

	if !t.GoalReached {
		t.Steps = len(c)
	}
	t.Final = pos
	return t
}

// Score converts a trace into the two minimized objectives.
//
// Goal reached: only efficiency matters, so navigation is collisions and
// redundant revisits, and path length is the steps actually consumed.
//
// Goal unreached: distance and exploration terms dominate to pull the
// search toward the goal and away from premature convergence on a small
// region, and path length is the full allotment so any goal-reaching
// individual strictly improves on the second objective.
func Score(m *maze.Maze, t Trace, maxPathLength int) ga.Fitness {
	if t.GoalReached {
		return ga.Fitness{
			Navigation: float64(t.Collisions*10 + t.Revisits*2),
			PathLength: t.Steps,
		}
	}
	return ga.Fitness{
		Navigation: float64(t.Collisions*10+m.DistanceToGoal(t.Final)*5+t.Revisits*2) - float64(t.UniqueCells),
		PathLength: maxPathLength,
	}
}

// Evaluate simulates the chromosome and scores the resulting trace
func Evaluate(m *maze.Maze, c ga.Chromosome, maxPathLength int) ga.Fitness {
	return Score(m, Simulate(m, c), maxPathLength)
}
