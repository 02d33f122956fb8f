package generator

import (
	"math/rand"

	"github.com/beka-birhanu/vinom-mazeviz/maze"
	"github.com/zyedidia/generic/mapset"
)

// depthFirst is the randomized depth-first search (recursive backtracker)
// with an explicit stack.
type depthFirst struct {
	grid    *maze.Grid
	rng     *rand.Rand
	visited mapset.Set[maze.Position]
	stack   []*maze.Cell
}

func newDFS(grid *maze.Grid, rng *rand.Rand) *depthFirst {
	g := &depthFirst{
		grid:    grid,
		rng:     rng,
		visited: mapset.New[maze.Position](),
	}

	start := randomCell(grid, rng)
	g.visited.Put(start.Pos())
	g.stack = append(g.stack, start)
	return g
}

// Next pops one cell. If it still has unvisited neighbours it goes back on the
// stack and one of them is carved into and pushed; otherwise it is dropped,
// which is the backtracking step.
func (g *depthFirst) Next() bool {
	if len(g.stack) == 0 {
		return false
	}

	current := pop(&g.stack)

	var unvisited []*maze.Cell
	for _, n := range g.grid.Neighbors(current) {
		if !g.visited.Has(n.Pos()) {
			unvisited = append(unvisited, n)
		}
	}

	if len(unvisited) > 0 {
		g.stack = append(g.stack, current)

		next := pick(unvisited, g.rng)
		maze.Carve(current, next)

		g.visited.Put(next.Pos())
		g.stack = append(g.stack, next)
	}

	return true
}

func (g *depthFirst) Grid() *maze.Grid {
	return g.grid
}

func (g *depthFirst) Frontier() []*maze.Cell {
	return snapshot(g.stack)
}

func (g *depthFirst) Done() bool {
	return len(g.stack) == 0
}

// pop removes and returns the last element of a stack of cells.
func pop(s *[]*maze.Cell) *maze.Cell {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}
