// Package render turns algorithm snapshots into something a person can look
// at: ASCII frames for a terminal and raster images for PNG output.
package render

import (
	"image/color"

	"github.com/beka-birhanu/vinom-mazeviz/maze"
)

// Mark classifies a cell for drawing.
type Mark int

const (
	Plain Mark = iota
	Start
	End
	Frontier
	Path
	Open
	Closed
)

// Frame is everything needed to draw one tick. Only Grid is required; the
// slices are read, never modified.
type Frame struct {
	Grid     *maze.Grid
	Start    *maze.Position
	End      *maze.Position
	Path     []*maze.Cell
	Frontier []*maze.Cell
	Open     []*maze.Cell
	Closed   []*maze.Cell
}

// marks resolves the mark of every highlighted cell. Start and end win over
// the frontier, which wins over the path, then open, then closed.
func (f Frame) marks() map[maze.Position]Mark {
	marks := make(map[maze.Position]Mark)
	layers := []struct {
		cells []*maze.Cell
		mark  Mark
	}{
		{f.Closed, Closed},
		{f.Open, Open},
		{f.Path, Path},
		{f.Frontier, Frontier},
	}
	for _, layer := range layers {
		for _, c := range layer.cells {
			marks[c.Pos()] = layer.mark
		}
	}
	if f.End != nil {
		marks[*f.End] = End
	}
	if f.Start != nil {
		marks[*f.Start] = Start
	}
	return marks
}

// Palette holds the fill colors of each kind of cell.
type Palette struct {
	Wall      color.RGBA
	Passage   color.RGBA
	Unvisited color.RGBA
	Start     color.RGBA
	End       color.RGBA
	Frontier  color.RGBA
	Path      color.RGBA
	Open      color.RGBA
	Closed    color.RGBA
}

// DefaultPalette is the visualizer's stock color scheme.
var DefaultPalette = Palette{
	Wall:      Hex(0x0A0908),
	Passage:   Hex(0xF1FFE7),
	Unvisited: Hex(0x596475),
	Start:     Hex(0xC1292E),
	End:       Hex(0x63A46C),
	Frontier:  Hex(0xEAC4D5),
	Path:      Hex(0xF1D302),
	Open:      Hex(0x5CC8FF),
	Closed:    Hex(0x0E6BA8),
}

// Hex converts a 0xRRGGBB value into an opaque color.
func Hex(u uint32) color.RGBA {
	return color.RGBA{
		R: uint8(0xff & (u >> 16)),
		G: uint8(0xff & (u >> 8)),
		B: uint8(0xff & u),
		A: 0xff,
	}
}

func (p Palette) fill(c *maze.Cell, m Mark) color.RGBA {
	switch m {
	case Start:
		return p.Start
	case End:
		return p.End
	case Frontier:
		return p.Frontier
	case Path:
		return p.Path
	case Open:
		return p.Open
	case Closed:
		return p.Closed
	}
	if c.Walled() {
		return p.Unvisited
	}
	return p.Passage
}

// Config holds drawing settings.
type Config struct {
	CellSize int // pixels per cell side, at least 3
	Palette  Palette
}

// DefaultConfig returns 20 pixel cells in the default palette.
func DefaultConfig() Config {
	return Config{CellSize: 20, Palette: DefaultPalette}
}
