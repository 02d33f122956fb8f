package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-mazeviz/generator"
	"github.com/beka-birhanu/vinom-mazeviz/maze"
	"github.com/beka-birhanu/vinom-mazeviz/pathfind"
	"github.com/beka-birhanu/vinom-mazeviz/render"
	"github.com/beka-birhanu/vinom-mazeviz/service/i"
	"github.com/google/uuid"
)

var (
	ErrMissingRenderer = errors.New("visualizer needs a renderer")
	ErrMissingLogger   = errors.New("visualizer needs a logger")
)

type phase int

const (
	idle phase = iota
	generating
	pathfinding
)

func (p phase) String() string {
	switch p {
	case generating:
		return "generating"
	case pathfinding:
		return "pathfinding"
	default:
		return "idle"
	}
}

// Config holds the settings of a Visualizer.
type Config struct {
	Cols          int
	Rows          int
	MazeAlgorithm generator.Algorithm
	PathAlgorithm pathfind.Algorithm
	Start         *maze.Position // defaults to the top left corner
	End           *maze.Position // defaults to the bottom right corner
	Rand          *rand.Rand     // nil seeds one from the clock
	Renderer      i.Renderer
	Logger        i.Logger
}

// Visualizer drives one algorithm at a time, a single step per tick, and
// hands every intermediate state to its renderer. Triggering a run while
// another is active abandons the active one.
type Visualizer struct {
	cols     int
	rows     int
	mazeAlgo generator.Algorithm
	pathAlgo pathfind.Algorithm
	start    maze.Position
	end      maze.Position
	rng      *rand.Rand
	renderer i.Renderer
	logger   i.Logger

	phase  phase
	runID  uuid.UUID
	runLog i.Logger
	steps  int
	grid   *maze.Grid
	gen    generator.Generator
	finder pathfind.Finder
	path   []*maze.Cell

	sync.Mutex
}

// NewVisualizer validates c and returns an idle visualizer showing a fully
// walled grid.
func NewVisualizer(c Config) (*Visualizer, error) {
	if c.Renderer == nil {
		return nil, ErrMissingRenderer
	}
	if c.Logger == nil {
		return nil, ErrMissingLogger
	}
	if _, err := generator.ParseAlgorithm(string(c.MazeAlgorithm)); err != nil {
		return nil, err
	}
	if _, err := pathfind.ParseAlgorithm(string(c.PathAlgorithm)); err != nil {
		return nil, err
	}

	grid, err := maze.New(c.Cols, c.Rows)
	if err != nil {
		return nil, err
	}

	start := maze.Position{X: 0, Y: 0}
	if c.Start != nil {
		start = *c.Start
	}
	end := maze.Position{X: c.Cols - 1, Y: c.Rows - 1}
	if c.End != nil {
		end = *c.End
	}
	for _, p := range []maze.Position{start, end} {
		if !grid.InBound(p.X, p.Y) {
			return nil, fmt.Errorf("%w: %v in %dx%d", pathfind.ErrOutOfBounds, p, c.Cols, c.Rows)
		}
	}

	rng := c.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Visualizer{
		cols:     c.Cols,
		rows:     c.Rows,
		mazeAlgo: c.MazeAlgorithm,
		pathAlgo: c.PathAlgorithm,
		start:    start,
		end:      end,
		rng:      rng,
		renderer: c.Renderer,
		logger:   c.Logger,
		runLog:   c.Logger,
		grid:     grid,
	}, nil
}

// TriggerGeneration starts carving a new maze. The previous maze and path are
// discarded.
func (v *Visualizer) TriggerGeneration() error {
	v.Lock()
	defer v.Unlock()

	gen, err := generator.New(v.mazeAlgo, v.cols, v.rows, v.rng)
	if err != nil {
		return err
	}

	v.begin(generating)
	v.gen = gen
	v.finder = nil
	v.grid = gen.Grid()
	v.path = nil
	v.runLog.Info(fmt.Sprintf("generation started: %s %dx%d", v.mazeAlgo, v.cols, v.rows))
	return nil
}

// TriggerPathfinding starts searching the current grid from start to end.
// Triggered during generation, it searches the partly carved maze.
func (v *Visualizer) TriggerPathfinding() error {
	v.Lock()
	defer v.Unlock()

	finder, err := pathfind.New(v.pathAlgo, v.grid, v.start, v.end)
	if err != nil {
		return err
	}

	v.begin(pathfinding)
	v.gen = nil
	v.finder = finder
	v.path = nil
	v.runLog.Info(fmt.Sprintf("pathfinding started: %s from %v to %v", v.pathAlgo, v.start, v.end))
	return nil
}

func (v *Visualizer) begin(p phase) {
	if v.phase != idle {
		v.runLog.Warn(fmt.Sprintf("%s abandoned after %d steps", v.phase, v.steps))
	}
	v.phase = p
	v.steps = 0
	v.runID = uuid.New()
	v.runLog = v.logger.WithRun(v.runID)
}

// Tick advances the active run by one step and renders the result. When no
// run is active it renders the maze with its start, end and last path.
func (v *Visualizer) Tick() error {
	v.Lock()
	frame := v.step()
	v.Unlock()

	return v.renderer.Render(frame)
}

func (v *Visualizer) step() render.Frame {
	switch v.phase {
	case generating:
		if v.gen.Next() {
			v.steps++
			return render.Frame{Grid: v.grid, Frontier: v.gen.Frontier()}
		}
		v.runLog.Info(fmt.Sprintf("generation finished after %d steps, %d passages", v.steps, v.grid.Passages()))
		v.gen = nil
		v.phase = idle

	case pathfinding:
		if v.finder.Next() {
			v.steps++
			return render.Frame{
				Grid:   v.grid,
				Start:  &v.start,
				End:    &v.end,
				Open:   v.finder.Open(),
				Closed: v.finder.Closed(),
			}
		}
		v.path = v.finder.Path()
		if len(v.path) == 0 {
			v.runLog.Warn(fmt.Sprintf("no path from %v to %v", v.start, v.end))
		} else {
			v.runLog.Info(fmt.Sprintf("path found: %d cells, %d expanded", len(v.path), len(v.finder.Closed())))
		}
		v.finder = nil
		v.phase = idle
	}

	return render.Frame{Grid: v.grid, Start: &v.start, End: &v.end, Path: v.path}
}

// Run calls Tick on every value received from ticks until ctx is done, the
// channel closes or rendering fails.
func (v *Visualizer) Run(ctx context.Context, ticks <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-ticks:
			if !ok {
				return nil
			}
			if err := v.Tick(); err != nil {
				v.logger.Error(fmt.Sprintf("rendering frame: %v", err))
				return err
			}
		}
	}
}

// Busy reports whether a run is active.
func (v *Visualizer) Busy() bool {
	v.Lock()
	defer v.Unlock()
	return v.phase != idle
}

// Grid returns the current maze.
func (v *Visualizer) Grid() *maze.Grid {
	v.Lock()
	defer v.Unlock()
	return v.grid
}

// Path returns the path of the last finished search, nil if there is none.
func (v *Visualizer) Path() []*maze.Cell {
	v.Lock()
	defer v.Unlock()
	return v.path
}

// Start returns the position searches start from.
func (v *Visualizer) Start() maze.Position {
	return v.start
}

// End returns the position searches aim for.
func (v *Visualizer) End() maze.Position {
	return v.end
}
