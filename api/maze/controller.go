package mazeapi

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/vinom-mazeviz/generator"
	"github.com/beka-birhanu/vinom-mazeviz/maze"
	"github.com/beka-birhanu/vinom-mazeviz/pathfind"
	"github.com/beka-birhanu/vinom-mazeviz/render"
	"github.com/beka-birhanu/vinom-mazeviz/service/i"
	"github.com/gin-gonic/gin"
)

// MazeController serves freshly generated and solved mazes. Every request
// builds its own maze; nothing is kept between requests.
type MazeController struct {
	builder i.MazeBuilder
	raster  *render.Raster
}

// NewMazeController initializes a MazeController.
func NewMazeController(b i.MazeBuilder, r *render.Raster) (*MazeController, error) {
	if b == nil || r == nil {
		return nil, errors.New("maze controller needs a builder and a raster")
	}
	return &MazeController{
		builder: b,
		raster:  r,
	}, nil
}

// Register registers the maze routes.
func (mc *MazeController) Register(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("", mc.maze)
		mazes.GET("/text", mc.text)
		mazes.GET("/image", mc.image)
	}
}

// build binds the query and runs it, writing the error response on failure.
func (mc *MazeController) build(ctx *gin.Context) (*i.BuildResult, bool) {
	var query MazeQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	res, err := mc.builder.Build(ctx.Request.Context(), query.request())
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return nil, false
	}
	return res, true
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, generator.ErrInvalidAlgorithm),
		errors.Is(err, pathfind.ErrInvalidAlgorithm),
		errors.Is(err, maze.ErrInvalidDimensions),
		errors.Is(err, i.ErrTooLarge):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func solvedFrame(res *i.BuildResult) render.Frame {
	return render.Frame{Grid: res.Grid, Start: &res.Start, End: &res.End, Path: res.Path}
}

// setRunHeaders lets the text and image responses be reproduced.
func setRunHeaders(ctx *gin.Context, res *i.BuildResult) {
	ctx.Header("X-Run-ID", res.RunID.String())
	ctx.Header("X-Maze-Seed", strconv.FormatInt(res.Seed, 10))
}

// maze returns the maze and its path as JSON.
func (mc *MazeController) maze(ctx *gin.Context) {
	res, ok := mc.build(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, newMazeResponse(res))
}

// text returns the solved maze drawn in ASCII.
func (mc *MazeController) text(ctx *gin.Context) {
	res, ok := mc.build(ctx)
	if !ok {
		return
	}
	setRunHeaders(ctx, res)
	ctx.String(http.StatusOK, render.ASCII(solvedFrame(res)))
}

// image returns the solved maze as a PNG.
func (mc *MazeController) image(ctx *gin.Context) {
	res, ok := mc.build(ctx)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := mc.raster.Encode(&buf, solvedFrame(res)); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	setRunHeaders(ctx, res)
	ctx.Data(http.StatusOK, "image/png", buf.Bytes())
}
