// Package pathfind searches a carved maze for a shortest path, one expansion
// at a time.
//
// Finders never touch the cells they walk over. Costs and back links live in a
// side table owned by the finder, so a grid can be searched any number of
// times without resetting anything.
package pathfind

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beka-birhanu/vinom-mazeviz/maze"
)

// Algorithm selects a path finding algorithm.
type Algorithm string

const (
	AStar    Algorithm = "astar"
	Dijkstra Algorithm = "dijkstra"
)

// Algorithms lists every supported finder.
var Algorithms = []Algorithm{AStar, Dijkstra}

var (
	ErrInvalidAlgorithm = errors.New("invalid path finding algorithm")
	ErrOutOfBounds      = errors.New("position is out of the maze")
)

// Score is the per-cell bookkeeping of a search: G is the cost from the start,
// H the estimate to the goal and F their sum. Dijkstra leaves H and F at zero.
type Score struct {
	G int
	H int
	F int
}

// Finder is a path finding run.
type Finder interface {
	// Next expands one cell. It returns false, without producing a snapshot,
	// once the goal has been reached or the open set is exhausted.
	Next() bool

	// Grid returns the grid being searched.
	Grid() *maze.Grid

	// Open returns the discovered cells awaiting expansion, in discovery order.
	Open() []*maze.Cell

	// Closed returns the expanded cells, in expansion order.
	Closed() []*maze.Cell

	// Path returns the path from start to end once Done. An empty, non-nil
	// slice means the goal cannot be reached.
	Path() []*maze.Cell

	// Score returns the bookkeeping for p, if p has been discovered.
	Score(p maze.Position) (Score, bool)

	// Done reports whether the search has finished.
	Done() bool
}

// ParseAlgorithm maps a user supplied name onto an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	algo := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	for _, a := range Algorithms {
		if a == algo {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidAlgorithm, name)
}

// New starts a search on grid from start to end.
func New(algo Algorithm, grid *maze.Grid, start, end maze.Position) (Finder, error) {
	var useHeuristic bool
	switch algo {
	case AStar:
		useHeuristic = true
	case Dijkstra:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidAlgorithm, string(algo))
	}

	for _, p := range []maze.Position{start, end} {
		if !grid.InBound(p.X, p.Y) {
			return nil, fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, p, grid.Width(), grid.Height())
		}
	}

	return newSearch(grid, grid.Cell(start), grid.Cell(end), useHeuristic), nil
}

// Run drives f to completion and returns its path.
func Run(f Finder) []*maze.Cell {
	for f.Next() {
	}
	return f.Path()
}
