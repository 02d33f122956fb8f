package render

import (
	"io"

	"github.com/beka-birhanu/vinom-mazeviz/maze"
)

const clearScreen = "\033[H\033[2J"

var asciiBodies = map[Mark]string{
	Start:    " S ",
	End:      " E ",
	Frontier: " f ",
	Path:     " * ",
	Open:     " o ",
	Closed:   " x ",
}

// ASCII draws a frame with one three character body per cell.
func ASCII(f Frame) string {
	marks := f.marks()
	return f.Grid.Render(func(c *maze.Cell) string {
		if body, ok := asciiBodies[marks[c.Pos()]]; ok {
			return body
		}
		if c.Walled() {
			return " # "
		}
		return "   "
	})
}

// Terminal writes ASCII frames to a terminal, repainting the screen each time.
type Terminal struct {
	out   io.Writer
	clear bool
}

// NewTerminal returns a Terminal writing to out. When clear is false frames
// are appended instead of repainted, which is what logs and tests want.
func NewTerminal(out io.Writer, clear bool) *Terminal {
	return &Terminal{out: out, clear: clear}
}

func (t *Terminal) Render(f Frame) error {
	frame := ASCII(f)
	if t.clear {
		frame = clearScreen + frame
	}
	_, err := io.WriteString(t.out, frame)
	return err
}
