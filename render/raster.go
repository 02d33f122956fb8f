package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/beka-birhanu/vinom-mazeviz/maze"
	"github.com/yalue/image_utils"
)

const minCellSize = 3

// frameImage satisfies image.Image, drawing a frame lazily pixel by pixel.
type frameImage struct {
	frame Frame
	marks map[maze.Position]Mark
	cfg   Config
}

func (m *frameImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (m *frameImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.frame.Grid.Width()*m.cfg.CellSize, m.frame.Grid.Height()*m.cfg.CellSize)
}

func (m *frameImage) At(x, y int) color.Color {
	if !image.Pt(x, y).In(m.Bounds()) {
		return color.Transparent
	}
	size := m.cfg.CellSize
	cell := m.frame.Grid.At(x/size, y/size)
	dx, dy := x%size, y%size

	// Walls are one pixel wide, drawn on the inside edge of each cell.
	// Corners are always dark so passages read as gaps in a lattice.
	edgeX := dx == 0 || dx == size-1
	edgeY := dy == 0 || dy == size-1
	switch {
	case edgeX && edgeY:
		return m.cfg.Palette.Wall
	case dy == 0 && cell.HasNorthWall(),
		dy == size-1 && cell.HasSouthWall(),
		dx == 0 && cell.HasWestWall(),
		dx == size-1 && cell.HasEastWall():
		return m.cfg.Palette.Wall
	}
	return m.cfg.Palette.fill(cell, m.marks[cell.Pos()])
}

// Raster draws frames as images.
type Raster struct {
	cfg Config
}

// NewRaster validates cfg and returns a Raster.
func NewRaster(cfg Config) (*Raster, error) {
	if cfg.CellSize < minCellSize {
		return nil, fmt.Errorf("cell size must be at least %d pixels, got %d", minCellSize, cfg.CellSize)
	}
	return &Raster{cfg: cfg}, nil
}

// Image rasterizes f. Start and end cells get an arrow marker on top of their
// fill.
func (r *Raster) Image(f Frame) (*image.RGBA, error) {
	base := &frameImage{frame: f, marks: f.marks(), cfg: r.cfg}
	composite := image_utils.NewCompositeImage()
	if e := composite.AddImage(image_utils.ToRGBA(base), image.Pt(0, 0)); e != nil {
		return nil, fmt.Errorf("error setting base frame image: %w", e)
	}

	markers := []struct {
		pos   *maze.Position
		arrow image.Image
	}{
		{f.Start, image_utils.RightArrow(color.White)},
		{f.End, image_utils.DownArrow(color.White)},
	}
	half := r.cfg.CellSize / 2
	for _, m := range markers {
		if m.pos == nil || half < minCellSize {
			continue
		}
		arrow := image_utils.ResizeImage(m.arrow, half, half)
		topLeft := image.Pt(m.pos.X*r.cfg.CellSize+half/2, m.pos.Y*r.cfg.CellSize+half/2)
		if e := composite.AddImage(arrow, topLeft); e != nil {
			return nil, fmt.Errorf("error adding marker at %v: %w", *m.pos, e)
		}
	}

	return image_utils.ToRGBA(composite), nil
}

// Encode writes f to w as a PNG.
func (r *Raster) Encode(w io.Writer, f Frame) error {
	pic, err := r.Image(f)
	if err != nil {
		return err
	}
	return png.Encode(w, pic)
}

// WriteFile writes f as a PNG file at path.
func (r *Raster) WriteFile(path string, f Frame) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}
	defer out.Close()

	if err := r.Encode(out, f); err != nil {
		return fmt.Errorf("error writing image to %s: %w", path, err)
	}
	return nil
}

// FrameDumper writes every frame it is given as a numbered PNG in a directory,
// for stitching into an animation afterwards.
type FrameDumper struct {
	raster *Raster
	dir    string
	count  int
}

// NewFrameDumper creates dir if needed.
func NewFrameDumper(r *Raster, dir string) (*FrameDumper, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating frame directory %s: %w", dir, err)
	}
	return &FrameDumper{raster: r, dir: dir}, nil
}

func (d *FrameDumper) Render(f Frame) error {
	d.count++
	return d.raster.WriteFile(filepath.Join(d.dir, fmt.Sprintf("frame_%05d.png", d.count)), f)
}

// Frames returns how many frames have been written.
func (d *FrameDumper) Frames() int {
	return d.count
}
