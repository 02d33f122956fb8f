package maze

import "fmt"

// Carve removes the wall between two adjacent cells on both sides.
// It panics if the cells are not adjacent: generators only ever carve toward a
// neighbour, so anything else is a bug in the caller.
func Carve(cell, neighbour *Cell) {
	setWall(cell, neighbour, false)
}

// AddWall puts back the wall between two adjacent cells on both sides.
// Like Carve, it panics if the cells are not adjacent.
func AddWall(cell, neighbour *Cell) {
	setWall(cell, neighbour, true)
}

func setWall(cell, neighbour *Cell, present bool) {
	d, ok := DirectionBetween(cell.pos, neighbour.pos)
	if !ok {
		panic(fmt.Errorf("%w: %v and %v", ErrNotAdjacent, cell.pos, neighbour.pos))
	}
	cell.walls[d] = present
	neighbour.walls[Opposite(d)] = present
}

// Connected reports whether one can step from cell to neighbour, i.e. the wall
// on neighbour's side facing cell is down. Non-adjacent cells are never
// connected.
func Connected(cell, neighbour *Cell) bool {
	d, ok := DirectionBetween(cell.pos, neighbour.pos)
	if !ok {
		return false
	}
	return !neighbour.walls[Opposite(d)]
}

// Heuristic returns the Manhattan distance between two positions.
func Heuristic(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
