package generator

import (
	"math/rand"
	"slices"

	"github.com/beka-birhanu/vinom-mazeviz/maze"
	"github.com/zyedidia/generic/mapset"
)

// wilson generates a uniform spanning tree with loop-erased random walks.
// One step moves the active walk by one cell; when the walk touches the maze
// the erased path is carved in that same step.
type wilson struct {
	grid   *maze.Grid
	rng    *rand.Rand
	inMaze mapset.Set[maze.Position]

	// The active walk. exits holds the last direction taken out of each cell;
	// overwriting it on revisit is what erases loops.
	start *maze.Cell
	head  *maze.Cell
	exits map[maze.Position]maze.Direction
	walk  []*maze.Cell
}

func newWilson(grid *maze.Grid, rng *rand.Rand) *wilson {
	g := &wilson{
		grid:   grid,
		rng:    rng,
		inMaze: mapset.New[maze.Position](),
	}
	g.inMaze.Put(randomCell(grid, rng).Pos())
	return g
}

// randomOutsideCell selects a random cell that is not part of the maze yet.
func (g *wilson) randomOutsideCell() *maze.Cell {
	for {
		c := randomCell(g.grid, g.rng)
		if !g.inMaze.Has(c.Pos()) {
			return c
		}
	}
}

func (g *wilson) Next() bool {
	if g.Done() {
		return false
	}

	if g.head == nil {
		g.start = g.randomOutsideCell()
		g.head = g.start
		g.exits = make(map[maze.Position]maze.Direction)
		g.walk = []*maze.Cell{g.start}
	}

	next := pick(g.grid.Neighbors(g.head), g.rng)
	d, _ := maze.DirectionBetween(g.head.Pos(), next.Pos())
	g.exits[g.head.Pos()] = d

	if g.inMaze.Has(next.Pos()) {
		g.commit()
		return true
	}

	if i := slices.IndexFunc(g.walk, next.Equal); i >= 0 {
		g.walk = g.walk[:i+1]
	} else {
		g.walk = append(g.walk, next)
	}
	g.head = next
	return true
}

// commit retraces the walk from its start along the recorded exits and
// carves it into the maze.
func (g *wilson) commit() {
	cell := g.start
	for !g.inMaze.Has(cell.Pos()) {
		next := g.grid.Cell(cell.Pos().Step(g.exits[cell.Pos()]))
		maze.Carve(cell, next)
		g.inMaze.Put(cell.Pos())
		cell = next
	}

	g.start, g.head, g.exits, g.walk = nil, nil, nil, nil
}

func (g *wilson) Grid() *maze.Grid {
	return g.grid
}

func (g *wilson) Frontier() []*maze.Cell {
	return snapshot(g.walk)
}

func (g *wilson) Done() bool {
	return g.inMaze.Size() == g.grid.Size()
}
