// Package mazeapi exposes maze generation and solving over HTTP.
package mazeapi

import (
	"github.com/beka-birhanu/vinom-mazeviz/maze"
	"github.com/beka-birhanu/vinom-mazeviz/service/i"
)

// MazeQuery selects the maze to build. Empty algorithm names pick the server
// defaults and a missing seed picks a random one.
type MazeQuery struct {
	Algorithm string `form:"algorithm"`
	Solver    string `form:"solver"`
	Width     int    `form:"width" binding:"required,min=1"`
	Height    int    `form:"height" binding:"required,min=1"`
	Seed      int64  `form:"seed"`
}

func (q MazeQuery) request() i.BuildRequest {
	return i.BuildRequest{
		Algorithm: q.Algorithm,
		Solver:    q.Solver,
		Width:     q.Width,
		Height:    q.Height,
		Seed:      q.Seed,
	}
}

// WallsResponse lists which sides of a cell are closed.
type WallsResponse struct {
	North bool `json:"north"`
	South bool `json:"south"`
	East  bool `json:"east"`
	West  bool `json:"west"`
}

// CellResponse is one cell of the maze.
type CellResponse struct {
	X     int           `json:"x"`
	Y     int           `json:"y"`
	Walls WallsResponse `json:"walls"`
}

// MazeResponse is a generated maze together with its solution.
type MazeResponse struct {
	RunID           string          `json:"run_id"`
	Seed            int64           `json:"seed"`
	Algorithm       string          `json:"algorithm"`
	Solver          string          `json:"solver"`
	Width           int             `json:"width"`
	Height          int             `json:"height"`
	GenerationSteps int             `json:"generation_steps"`
	SearchSteps     int             `json:"search_steps"`
	Passages        int             `json:"passages"`
	Cells           []CellResponse  `json:"cells"`
	Path            []maze.Position `json:"path"`
}

func newMazeResponse(res *i.BuildResult) *MazeResponse {
	cells := make([]CellResponse, 0, res.Grid.Size())
	for _, c := range res.Grid.Cells() {
		cells = append(cells, CellResponse{
			X: c.X(),
			Y: c.Y(),
			Walls: WallsResponse{
				North: c.HasNorthWall(),
				South: c.HasSouthWall(),
				East:  c.HasEastWall(),
				West:  c.HasWestWall(),
			},
		})
	}

	path := make([]maze.Position, len(res.Path))
	for idx, c := range res.Path {
		path[idx] = c.Pos()
	}

	return &MazeResponse{
		RunID:           res.RunID.String(),
		Seed:            res.Seed,
		Algorithm:       string(res.Algorithm),
		Solver:          string(res.Solver),
		Width:           res.Grid.Width(),
		Height:          res.Grid.Height(),
		GenerationSteps: res.GenerationSteps,
		SearchSteps:     res.SearchSteps,
		Passages:        res.Grid.Passages(),
		Cells:           cells,
		Path:            path,
	}
}
