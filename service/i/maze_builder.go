package i

import (
	"context"
	"errors"

	"github.com/beka-birhanu/vinom-mazeviz/generator"
	"github.com/beka-birhanu/vinom-mazeviz/maze"
	"github.com/beka-birhanu/vinom-mazeviz/pathfind"
	"github.com/google/uuid"
)

var ErrTooLarge = errors.New("maze dimensions exceed the limit")

// BuildRequest describes one maze to generate and solve. Empty algorithm
// names select the defaults; a zero seed is replaced by a random one.
type BuildRequest struct {
	Algorithm string
	Solver    string
	Width     int
	Height    int
	Seed      int64
}

// BuildResult is a finished run: the carved maze and the path from the top
// left corner to the bottom right one.
type BuildResult struct {
	RunID           uuid.UUID
	Seed            int64
	Algorithm       generator.Algorithm
	Solver          pathfind.Algorithm
	Grid            *maze.Grid
	Start           maze.Position
	End             maze.Position
	Path            []*maze.Cell
	GenerationSteps int
	SearchSteps     int
}

// MazeBuilder generates and solves mazes in one call.
type MazeBuilder interface {
	Build(ctx context.Context, req BuildRequest) (*BuildResult, error)
}
