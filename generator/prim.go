package generator

import (
	"math/rand"

	"github.com/beka-birhanu/vinom-mazeviz/maze"
	"github.com/zyedidia/generic/mapset"
)

// prim is the randomized Prim's algorithm: the maze grows from a single cell
// by repeatedly attaching a random frontier cell to a random visited neighbour.
type prim struct {
	grid     *maze.Grid
	rng      *rand.Rand
	visited  mapset.Set[maze.Position]
	frontier frontierSet
}

// frontierSet keeps insertion-ordered cells with set semantics so that random
// removal is reproducible for a given seed.
type frontierSet struct {
	cells   []*maze.Cell
	members mapset.Set[maze.Position]
}

func (f *frontierSet) add(c *maze.Cell) {
	if f.members.Has(c.Pos()) {
		return
	}
	f.members.Put(c.Pos())
	f.cells = append(f.cells, c)
}

// removeAt takes out the i-th cell, moving the last cell into its slot.
func (f *frontierSet) removeAt(i int) *maze.Cell {
	c := f.cells[i]
	last := len(f.cells) - 1
	f.cells[i] = f.cells[last]
	f.cells = f.cells[:last]
	f.members.Remove(c.Pos())
	return c
}

func newPrim(grid *maze.Grid, rng *rand.Rand) *prim {
	g := &prim{
		grid:     grid,
		rng:      rng,
		visited:  mapset.New[maze.Position](),
		frontier: frontierSet{members: mapset.New[maze.Position]()},
	}

	start := randomCell(grid, rng)
	g.visited.Put(start.Pos())
	for _, n := range grid.Neighbors(start) {
		g.frontier.add(n)
	}
	return g
}

// Next removes one random cell from the frontier and joins it to the maze
// through one of its visited neighbours.
func (g *prim) Next() bool {
	if len(g.frontier.cells) == 0 {
		return false
	}

	current := g.frontier.removeAt(g.rng.Intn(len(g.frontier.cells)))

	var in []*maze.Cell
	for _, n := range g.grid.Neighbors(current) {
		if g.visited.Has(n.Pos()) {
			in = append(in, n)
		}
	}

	// Only neighbours of visited cells enter the frontier, so in is never
	// empty in practice. Such a cell is dropped without carving.
	if len(in) > 0 {
		maze.Carve(current, pick(in, g.rng))
		g.visited.Put(current.Pos())

		for _, n := range g.grid.Neighbors(current) {
			if !g.visited.Has(n.Pos()) {
				g.frontier.add(n)
			}
		}
	}

	return true
}

func (g *prim) Grid() *maze.Grid {
	return g.grid
}

func (g *prim) Frontier() []*maze.Cell {
	return snapshot(g.frontier.cells)
}

func (g *prim) Done() bool {
	return len(g.frontier.cells) == 0
}
