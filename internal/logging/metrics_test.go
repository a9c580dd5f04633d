package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazega/internal/eval"
	"mazega/internal/ga"
	"mazega/internal/solver"
)

func TestLoggerWritesCSVAndJSONL(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "run.csv")
	jsonPath := filepath.Join(dir, "run.jsonl")

	l, err := NewLogger(csvPath, jsonPath, true)
	require.NoError(t, err)
	require.NoError(t, l.Init())

	l.LogGeneration(solver.GenerationStats{
		Generation: 1, Best: 12.5, Avg: 40, Min: 12.5, Max: 90, BestLength: 100,
	})
	l.LogGeneration(solver.GenerationStats{
		Generation: 2, Best: 4, Avg: 20, Min: 4, Max: 55, BestLength: 18, GoalReached: true,
	})
	l.Close()

	csvData, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(csvData)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "generation,best_nav,avg_nav,min_nav,max_nav,best_len,goal_reached", lines[0])
	assert.Contains(t, lines[2], "true")

	jsonData, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	records := strings.Split(strings.TrimSpace(string(jsonData)), "\n")
	require.Len(t, records, 2)
	assert.Contains(t, records[0], `"generation":1`)
	assert.Contains(t, records[1], `"goal_reached":true`)
}

func TestSolutionRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artifacts", "solution.json")

	chrom, err := ga.ParseChromosome("RRDDLLUU")
	require.NoError(t, err)

	res := &solver.Result{
		Best: ga.Individual{
			Chromosome: chrom,
			Fitness:    ga.Fitness{Navigation: 6, PathLength: 8},
		},
		Trace: eval.Trace{Collisions: 0, Revisits: 3, GoalReached: true, Steps: 8},
		Stats: solver.RunStats{Generations: 17},
	}

	require.NoError(t, SaveSolution(path, res, 99))

	sol, loaded, err := LoadSolution(path)
	require.NoError(t, err)
	assert.Equal(t, chrom, loaded)
	assert.Equal(t, "RRDDLLUU", sol.Moves)
	assert.Equal(t, 6.0, sol.Navigation)
	assert.Equal(t, 8, sol.PathLength)
	assert.Equal(t, 3, sol.Revisits)
	assert.True(t, sol.GoalReached)
	assert.Equal(t, 17, sol.Generations)
	assert.Equal(t, int64(99), sol.Seed)
}

func TestLoadSolutionErrors(t *testing.T) {
	_, _, err := LoadSolution(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"moves":"RRX"}`), 0644))
	_, _, err = LoadSolution(bad)
	assert.Error(t, err)
}
