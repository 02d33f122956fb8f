/*
Package maze provides the grid model shared by maze generators and path finders.

It defines the `Grid` structure, a fixed-size rectangle of `Cell` objects that carry
their own wall flags, and the helpers that mutate and query those walls.

Walls are always changed in pairs: carving the east wall of a cell also carves the
west wall of its eastern neighbour. Neighbour lookup is 4-connected and returns
cells in a fixed order (west, east, north, south) so algorithms built on top of it
are reproducible for a given random seed.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrNotAdjacent       = errors.New("cells are not adjacent")
)

// neighborOrder is the order in which Neighbors reports adjacent cells.
var neighborOrder = [4]Direction{West, East, North, South}

// Grid represents a rectangular maze consisting of cells with walls.
type Grid struct {
	width  int       // number of columns
	height int       // number of rows
	cells  [][]*Cell // indexed [y][x]
}

// New allocates a fully walled grid of the given dimensions.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	cells := make([][]*Cell, height)
	for y := range cells {
		cells[y] = make([]*Cell, width)
		for x := range cells[y] {
			cells[y][x] = newCell(x, y)
		}
	}

	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Size returns the total number of cells.
func (g *Grid) Size() int {
	return g.width * g.height
}

// InBound checks whether (x, y) lies inside the grid.
func (g *Grid) InBound(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the cell at column x, row y, or nil if it is out of bounds.
func (g *Grid) At(x, y int) *Cell {
	if !g.InBound(x, y) {
		return nil
	}
	return g.cells[y][x]
}

// Cell returns the cell at p, or nil if p is out of bounds.
func (g *Grid) Cell(p Position) *Cell {
	return g.At(p.X, p.Y)
}

// Cells returns every cell in row-major order.
func (g *Grid) Cells() []*Cell {
	out := make([]*Cell, 0, g.Size())
	for _, row := range g.cells {
		out = append(out, row...)
	}
	return out
}

// Neighbors returns the in-bound cells adjacent to c, west, east, north, south.
// The returned cells are the grid's own instances.
func (g *Grid) Neighbors(c *Cell) []*Cell {
	result := make([]*Cell, 0, 4)
	for _, d := range neighborOrder {
		if n := g.Cell(c.pos.Step(d)); n != nil {
			result = append(result, n)
		}
	}
	return result
}

// Passages counts the wall pairs that have been carved away. A perfect maze
// over N cells has exactly N-1.
func (g *Grid) Passages() int {
	count := 0
	for _, row := range g.cells {
		for _, c := range row {
			// Only look east and south so each pair is counted once.
			if c.pos.X < g.width-1 && !c.walls[East] {
				count++
			}
			if c.pos.Y < g.height-1 && !c.walls[South] {
				count++
			}
		}
	}
	return count
}

// Render draws the grid as ASCII art. label, if non-nil, supplies a three
// character body for each cell; blank bodies are used otherwise.
func (g *Grid) Render(label func(c *Cell) string) string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+" + strings.Repeat("---+", g.width) + "\n")

	for _, row := range g.cells {
		// Cell rows
		output.WriteString("|")
		for _, cell := range row {
			body := "   "
			if label != nil {
				body = label(cell)
			}
			output.WriteString(body)

			if cell.walls[East] {
				output.WriteString("|")
			} else {
				output.WriteString(" ")
			}
		}
		output.WriteString("\n")

		// Wall rows
		output.WriteString("+")
		for _, cell := range row {
			if cell.walls[South] {
				output.WriteString("---+")
			} else {
				output.WriteString("   +")
			}
		}
		output.WriteString("\n")
	}

	return output.String()
}

// String provides a textual representation of the maze.
func (g *Grid) String() string {
	return g.Render(nil)
}
