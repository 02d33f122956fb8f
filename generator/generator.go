// Package generator carves perfect mazes one step at a time.
//
// Every algorithm is a small state machine: each call to Next performs one
// iteration of the algorithm's outer loop and leaves a snapshot (the grid and
// the current frontier) for a renderer to draw. Dropping a generator part way
// through is safe; each step carves whole wall pairs only.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/beka-birhanu/vinom-mazeviz/maze"
)

// Algorithm selects a maze generation algorithm.
type Algorithm string

const (
	DFS    Algorithm = "dfs"
	Prim   Algorithm = "prim"
	Wilson Algorithm = "wilson"
)

// Algorithms lists every supported generator.
var Algorithms = []Algorithm{DFS, Prim, Wilson}

var ErrInvalidAlgorithm = errors.New("invalid maze generation algorithm")

// Generator is a maze generation run.
type Generator interface {
	// Next performs one step. It returns false, without taking a step, once
	// the maze is complete.
	Next() bool

	// Grid returns the grid being carved. After Next returns false it is the
	// finished maze.
	Grid() *maze.Grid

	// Frontier returns the cells the algorithm is currently tracking: the
	// stack for DFS, the frontier set for Prim, the active walk for Wilson.
	Frontier() []*maze.Cell

	// Done reports whether the maze is complete.
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

// New starts a generation run over a fresh, fully walled grid. A nil rng is
// replaced by one seeded from the clock.
func New(algo Algorithm, width, height int, rng *rand.Rand) (Generator, error) {
	switch algo {
	case DFS, Prim, Wilson:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidAlgorithm, string(algo))
	}

	grid, err := maze.New(width, height)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	switch algo {
	case Prim:
		return newPrim(grid, rng), nil
	case Wilson:
		return newWilson(grid, rng), nil
	default:
		return newDFS(grid, rng), nil
	}
}

// Run drives g to completion and returns the carved grid.
func Run(g Generator) *maze.Grid {
	for g.Next() {
	}
	return g.Grid()
}

// randomCell picks a uniformly random cell of the grid.
func randomCell(grid *maze.Grid, rng *rand.Rand) *maze.Cell {
	return grid.At(rng.Intn(grid.Width()), rng.Intn(grid.Height()))
}

// pick returns a uniformly random element of cells.
func pick(cells []*maze.Cell, rng *rand.Rand) *maze.Cell {
	return cells[rng.Intn(len(cells))]
}

func snapshot(cells []*maze.Cell) []*maze.Cell {
	out := make([]*maze.Cell, len(cells))
	copy(out, cells)
	return out
}
