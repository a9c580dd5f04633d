package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"mazega/internal/config"
	"mazega/internal/logging"
	"mazega/internal/maze"
	"mazega/internal/render"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	mazeName := flag.String("maze", "", "maze: simple|complex|random or a maze file path (overrides config)")
	solutionPath := flag.String("solution", "artifacts/solution.json", "path to saved solution JSON")
	delay := flag.Int("delay", 120, "delay between steps in milliseconds")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if *mazeName != "" {
		cfg.Maze.Name = *mazeName
		cfg.Maze.Path = ""
	}

	sol, chrom, err := logging.LoadSolution(*solutionPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading solution: %v\n", err)
		os.Exit(1)
	}

	// The generated maze is reproduced from the seed recorded in the artifact
	rng := rand.New(rand.NewSource(sol.Seed))
	m, err := loadMaze(cfg, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading maze: %v\n", err)
		os.Exit(1)
	}

	frames := render.Walk(m, chrom)

	screen, err := tcell.NewScreen()
	if err == nil {
		err = screen.Init()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	run(screen, events, m, sol, frames, time.Duration(*delay)*time.Millisecond)
}

// run animates the walk until the user quits. Arriving at the last frame
// pauses; any key other than the quit keys restarts the animation.
func run(screen tcell.Screen, events <-chan tcell.Event, m *maze.Maze, sol *logging.Solution, frames []maze.Position, delay time.Duration) {
	ticker := time.NewTicker(delay)
	defer ticker.Stop()

	step := 0
	for {
		draw(screen, m, sol, frames, step)

		select {
		case ev := <-events:
			key, ok := ev.(*tcell.EventKey)
			if !ok {
				screen.Sync()
				continue
			}
			switch {
			case key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC,
				key.Key() == tcell.KeyRune && key.Rune() == 'q':
				return
			default:
				step = 0
			}
		case <-ticker.C:
			if step < len(frames)-1 {
				step++
			}
		}
	}
}

func draw(screen tcell.Screen, m *maze.Maze, sol *logging.Solution, frames []maze.Position, step int) {
	screen.Clear()

	wallStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	pathStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	agentStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	markStyle := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)

	visited := make(map[maze.Position]bool, step+1)
	for i := 0; i <= step && i < len(frames); i++ {
		visited[frames[i]] = true
	}

	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			p := maze.Position{Row: r, Col: c}
			ch, style := '.', tcell.StyleDefault
			switch {
			case p == frames[step]:
				ch, style = '@', agentStyle
			case p == m.Start():
				ch, style = 'S', markStyle
			case p == m.Goal():
				ch, style = 'E', markStyle
			case visited[p]:
				ch, style = '*', pathStyle
			case m.IsWall(p):
				ch, style = '█', wallStyle
			}
			screen.SetContent(c*2, r, ch, nil, style)
		}
	}

	status := fmt.Sprintf("step %d/%d  nav=%.1f len=%d reached=%v  [q quits, any key restarts]",
		step, len(frames)-1, sol.Navigation, sol.PathLength, sol.GoalReached)
	for i, ch := range status {
		screen.SetContent(i, m.Rows+1, ch, nil, tcell.StyleDefault)
	}

	screen.Show()
}

func loadMaze(cfg *config.Config, rng *rand.Rand) (*maze.Maze, error) {
	if cfg.Maze.Path != "" {
		data, err := os.ReadFile(cfg.Maze.Path)
		if err != nil {
			return nil, err
		}
		return maze.Parse(string(data))
	}

	switch cfg.Maze.Name {
	case "simple":
		return maze.Simple(), nil
	case "complex":
		return maze.Complex(), nil
	case "random":
		return maze.Generate(cfg.Maze.Rows, cfg.Maze.Cols, rng), nil
	default:
		data, err := os.ReadFile(cfg.Maze.Name)
		if err != nil {
			return nil, fmt.Errorf("unknown maze %q (not a builtin or readable file)", cfg.Maze.Name)
		}
		return maze.Parse(string(data))
	}
}
