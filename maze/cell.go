package maze

import "fmt"

// Position is the coordinate of a cell in the grid. X is the column and Y is
// the row, both 0-indexed. Positions are comparable and are what sets and maps
// key cells on.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction names one of the four sides of a cell.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists every direction in wall-index order.
var Directions = [4]Direction{North, South, East, West}

// deltas maps a direction to the coordinate offset of the neighbour on that side.
var deltas = [4]Position{
	North: {X: 0, Y: -1},
	South: {X: 0, Y: 1},
	East:  {X: 1, Y: 0},
	West:  {X: -1, Y: 0},
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Opposite returns the direction facing back toward d.
func Opposite(d Direction) Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Step returns the position one cell away from p in direction d. The result
// may be out of any grid's bounds.
func (p Position) Step(d Direction) Position {
	delta := deltas[d]
	return Position{X: p.X + delta.X, Y: p.Y + delta.Y}
}

// DirectionBetween returns the direction leading from a to b. ok is false when
// the two positions are not 4-adjacent.
func DirectionBetween(a, b Position) (d Direction, ok bool) {
	for _, dir := range Directions {
		if a.Step(dir) == b {
			return dir, true
		}
	}
	return 0, false
}

// Cell represents a single cell in a maze grid.
// Its position never changes after creation; its walls are mutated only
// through Carve and AddWall so that adjacent cells stay consistent.
type Cell struct {
	pos   Position
	walls [4]bool // indexed by Direction; true means the wall is standing
}

func newCell(x, y int) *Cell {
	return &Cell{
		pos:   Position{X: x, Y: y},
		walls: [4]bool{true, true, true, true},
	}
}

// X returns the column of the cell.
func (c *Cell) X() int {
	return c.pos.X
}

// Y returns the row of the cell.
func (c *Cell) Y() int {
	return c.pos.Y
}

// Pos returns the position of the cell. It is the cell's identity.
func (c *Cell) Pos() Position {
	return c.pos
}

// Equal reports whether both cells sit at the same position. Wall state is
// ignored.
func (c *Cell) Equal(other *Cell) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.pos == other.pos
}

// HasWall returns true if there is a wall on side d of the cell.
func (c *Cell) HasWall(d Direction) bool {
	return c.walls[d]
}

// HasNorthWall returns true if there is a wall on the north side of the cell.
func (c *Cell) HasNorthWall() bool {
	return c.walls[North]
}

// HasSouthWall returns true if there is a wall on the south side of the cell.
func (c *Cell) HasSouthWall() bool {
	return c.walls[South]
}

// HasEastWall returns true if there is a wall on the east side of the cell.
func (c *Cell) HasEastWall() bool {
	return c.walls[East]
}

// HasWestWall returns true if there is a wall on the west side of the cell.
func (c *Cell) HasWestWall() bool {
	return c.walls[West]
}

// Walled reports whether all four walls are still standing, i.e. the cell has
// not been reached by a generator yet.
func (c *Cell) Walled() bool {
	return c.walls[North] && c.walls[South] && c.walls[East] && c.walls[West]
}

func (c *Cell) String() string {
	return c.pos.String()
}
