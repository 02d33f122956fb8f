package pathfind

import (
	"slices"

	"github.com/beka-birhanu/vinom-mazeviz/maze"
)

// ReconstructPath follows parents back from end until it reaches a position
// without a parent, and returns the cells from that root to end.
func ReconstructPath(grid *maze.Grid, end maze.Position, parents map[maze.Position]maze.Position) []*maze.Cell {
	var path []*maze.Cell

	current, ok := end, true
	for ok {
		path = append(path, grid.Cell(current))
		current, ok = parents[current]
	}

	slices.Reverse(path)
	return path
}

// Length returns the number of moves along path.
func Length(path []*maze.Cell) int {
	if len(path) == 0 {
		return 0
	}
	return len(path) - 1
}
