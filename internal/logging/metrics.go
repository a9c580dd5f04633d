package logging

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"mazega/internal/ga"
	"mazega/internal/solver"
)

// Logger writes per-generation search metrics to CSV and JSONL files and
// mirrors a summary line to the console
type Logger struct {
	csvPath     string
	jsonPath    string
	csvFile     *os.File
	csvWriter   *csv.Writer
	jsonFile    *os.File
	quiet       bool
	initialized bool
}

// NewLogger creates a logger and ensures the output directories exist
func NewLogger(csvPath, jsonPath string, quiet bool) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(csvPath), 0755); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(jsonPath), 0755); err != nil {
		return nil, err
	}
	return &Logger{csvPath: csvPath, jsonPath: jsonPath, quiet: quiet}, nil
}

// Init opens the log files and writes the CSV header
func (l *Logger) Init() error {
	var err error

	l.csvFile, err = os.Create(l.csvPath)
	if err != nil {
		return err
	}
	l.csvWriter = csv.NewWriter(l.csvFile)

	header := []string{
		"generation", "best_nav", "avg_nav", "min_nav", "max_nav", "best_len", "goal_reached",
	}
	if err := l.csvWriter.Write(header); err != nil {
		return err
	}

	l.jsonFile, err = os.OpenFile(l.jsonPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	l.initialized = true
	return nil
}

// Close flushes and closes all log files
func (l *Logger) Close() {
	if l.csvWriter != nil {
		l.csvWriter.Flush()
	}
	if l.csvFile != nil {
		l.csvFile.Close()
	}
	if l.jsonFile != nil {
		l.jsonFile.Close()
	}
}

// generationRecord is the JSONL form of a generation summary
type generationRecord struct {
	Generation  int     `json:"generation"`
	BestNav     float64 `json:"best_nav"`
	AvgNav      float64 `json:"avg_nav"`
	MinNav      float64 `json:"min_nav"`
	MaxNav      float64 `json:"max_nav"`
	BestLength  int     `json:"best_len"`
	GoalReached bool    `json:"goal_reached"`
}

// LogGeneration records one generation's statistics
func (l *Logger) LogGeneration(gs solver.GenerationStats) {
	if !l.initialized {
		return
	}

	row := []string{
		strconv.Itoa(gs.Generation),
		fmt.Sprintf("%.2f", gs.Best),
		fmt.Sprintf("%.2f", gs.Avg),
		fmt.Sprintf("%.2f", gs.Min),
		fmt.Sprintf("%.2f", gs.Max),
		strconv.Itoa(gs.BestLength),
		strconv.FormatBool(gs.GoalReached),
	}
	l.csvWriter.Write(row)
	l.csvWriter.Flush()

	jsonLine, _ := json.Marshal(generationRecord{
		Generation:  gs.Generation,
		BestNav:     gs.Best,
		AvgNav:      gs.Avg,
		MinNav:      gs.Min,
		MaxNav:      gs.Max,
		BestLength:  gs.BestLength,
		GoalReached: gs.GoalReached,
	})
	l.jsonFile.WriteString(string(jsonLine) + "\n")

	if !l.quiet {
		reached := " "
		if gs.GoalReached {
			reached = "*"
		}
		fmt.Printf("Gen %4d %s| Best: %8.1f | Avg: %8.1f | Min: %8.1f | Max: %8.1f | Len: %3d\n",
			gs.Generation, reached, gs.Best, gs.Avg, gs.Min, gs.Max, gs.BestLength)
	}
}

// Solution is the saved artifact for a completed run
type Solution struct {
	Moves       string  `json:"moves"`
	Navigation  float64 `json:"navigation"`
	PathLength  int     `json:"path_length"`
	Collisions  int     `json:"collisions"`
	Revisits    int     `json:"revisits"`
	GoalReached bool    `json:"goal_reached"`
	Generations int     `json:"generations"`
	Seed        int64   `json:"seed"`
}

// SaveSolution writes the best individual and its trace to a JSON artifact
func SaveSolution(path string, res *solver.Result, seed int64) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	sol := Solution{
		Moves:       res.Best.Chromosome.String(),
		Navigation:  res.Best.Fitness.Navigation,
		PathLength:  res.Best.Fitness.PathLength,
		Collisions:  res.Trace.Collisions,
		Revisits:    res.Trace.Revisits,
		GoalReached: res.Trace.GoalReached,
		Generations: res.Stats.Generations,
		Seed:        seed,
	}

	data, err := json.MarshalIndent(sol, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadSolution reads a saved solution artifact back
func LoadSolution(path string) (*Solution, ga.Chromosome, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	var sol Solution
	if err := json.Unmarshal(data, &sol); err != nil {
		return nil, nil, err
	}

	chrom, err := ga.ParseChromosome(sol.Moves)
	if err != nil {
		return nil, nil, err
	}
	return &sol, chrom, nil
}
