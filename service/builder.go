package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/beka-birhanu/vinom-mazeviz/generator"
	"github.com/beka-birhanu/vinom-mazeviz/maze"
	"github.com/beka-birhanu/vinom-mazeviz/pathfind"
	"github.com/beka-birhanu/vinom-mazeviz/service/i"
	"github.com/google/uuid"
)

// BuilderConfig holds the settings of a Builder.
type BuilderConfig struct {
	MaxDimension  int
	MazeAlgorithm generator.Algorithm // used when a request names none
	PathAlgorithm pathfind.Algorithm  // used when a request names none
	Logger        i.Logger
}

// Builder runs generation and search to completion for every request. It
// keeps no state between calls.
type Builder struct {
	maxDimension int
	mazeAlgo     generator.Algorithm
	pathAlgo     pathfind.Algorithm
	logger       i.Logger
	seeds        func() int64
}

// NewBuilder returns a Builder for c.
func NewBuilder(c BuilderConfig) (*Builder, error) {
	if c.Logger == nil {
		return nil, ErrMissingLogger
	}
	if c.MaxDimension <= 0 {
		return nil, fmt.Errorf("%w: non-positive limit %d", maze.ErrInvalidDimensions, c.MaxDimension)
	}
	if c.MazeAlgorithm == "" {
		c.MazeAlgorithm = generator.DFS
	}
	if c.PathAlgorithm == "" {
		c.PathAlgorithm = pathfind.AStar
	}

	return &Builder{
		maxDimension: c.MaxDimension,
		mazeAlgo:     c.MazeAlgorithm,
		pathAlgo:     c.PathAlgorithm,
		logger:       c.Logger,
		seeds:        func() int64 { return time.Now().UnixNano() },
	}, nil
}

// Build generates a maze of the requested size and searches it from the top
// left corner to the bottom right one. The context is checked between steps.
func (b *Builder) Build(ctx context.Context, req i.BuildRequest) (*i.BuildResult, error) {
	algo := b.mazeAlgo
	if req.Algorithm != "" {
		a, err := generator.ParseAlgorithm(req.Algorithm)
		if err != nil {
			return nil, err
		}
		algo = a
	}
	solver := b.pathAlgo
	if req.Solver != "" {
		s, err := pathfind.ParseAlgorithm(req.Solver)
		if err != nil {
			return nil, err
		}
		solver = s
	}
	if req.Width > b.maxDimension || req.Height > b.maxDimension {
		return nil, fmt.Errorf("%w: %dx%d, limit %d", i.ErrTooLarge, req.Width, req.Height, b.maxDimension)
	}

	seed := req.Seed
	if seed == 0 {
		seed = b.seeds()
	}

	gen, err := generator.New(algo, req.Width, req.Height, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}

	res := &i.BuildResult{
		RunID:     uuid.New(),
		Seed:      seed,
		Algorithm: algo,
		Solver:    solver,
		Start:     maze.Position{X: 0, Y: 0},
		End:       maze.Position{X: req.Width - 1, Y: req.Height - 1},
	}
	log := b.logger.WithRun(res.RunID)

	for gen.Next() {
		res.GenerationSteps++
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	res.Grid = gen.Grid()

	finder, err := pathfind.New(solver, res.Grid, res.Start, res.End)
	if err != nil {
		return nil, err
	}
	for finder.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	res.SearchSteps = len(finder.Closed())
	res.Path = finder.Path()

	log.Info(fmt.Sprintf("built %s %dx%d seed=%d, %s path of %d cells after %d expansions",
		algo, req.Width, req.Height, seed, solver, len(res.Path), res.SearchSteps))
	return res, nil
}
