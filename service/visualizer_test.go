package service

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-mazeviz/generator"
	"github.com/beka-birhanu/vinom-mazeviz/maze"
	"github.com/beka-birhanu/vinom-mazeviz/pathfind"
	"github.com/beka-birhanu/vinom-mazeviz/render"
	"github.com/beka-birhanu/vinom-mazeviz/service/i"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logRecord struct {
	sync.Mutex
	lines []string
}

type fakeLogger struct {
	rec *logRecord
	run string
}

func newFakeLogger() *fakeLogger {
	return &fakeLogger{rec: &logRecord{}}
}

func (l *fakeLogger) add(level, msg string) {
	l.rec.Lock()
	defer l.rec.Unlock()
	l.rec.lines = append(l.rec.lines, level+" "+msg+" run="+l.run)
}

func (l *fakeLogger) Debug(msg string) { l.add("DEBUG", msg) }
func (l *fakeLogger) Info(msg string)  { l.add("INFO", msg) }
func (l *fakeLogger) Warn(msg string)  { l.add("WARN", msg) }
func (l *fakeLogger) Error(msg string) { l.add("ERROR", msg) }

func (l *fakeLogger) WithRun(id uuid.UUID) i.Logger {
	return &fakeLogger{rec: l.rec, run: id.String()}
}

func (l *fakeLogger) contains(prefix string) bool {
	l.rec.Lock()
	defer l.rec.Unlock()
	for _, line := range l.rec.lines {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

type recorder struct {
	frames []render.Frame
	err    error
}

func (r *recorder) Render(f render.Frame) error {
	r.frames = append(r.frames, f)
	return r.err
}

func (r *recorder) last() render.Frame {
	return r.frames[len(r.frames)-1]
}

func newTestVisualizer(t *testing.T, algo generator.Algorithm, cols, rows int) (*Visualizer, *recorder, *fakeLogger) {
	t.Helper()
	rec := &recorder{}
	logger := newFakeLogger()
	v, err := NewVisualizer(Config{
		Cols:          cols,
		Rows:          rows,
		MazeAlgorithm: algo,
		PathAlgorithm: pathfind.AStar,
		Rand:          rand.New(rand.NewSource(7)),
		Renderer:      rec,
		Logger:        logger,
	})
	require.NoError(t, err)
	return v, rec, logger
}

func positions(cells []*maze.Cell) []maze.Position {
	out := make([]maze.Position, len(cells))
	for i, c := range cells {
		out[i] = c.Pos()
	}
	return out
}

func TestNewVisualizer(t *testing.T) {
	base := Config{
		Cols:          4,
		Rows:          3,
		MazeAlgorithm: generator.DFS,
		PathAlgorithm: pathfind.Dijkstra,
		Renderer:      &recorder{},
		Logger:        newFakeLogger(),
	}

	tests := []struct {
		name   string
		modify func(c *Config)
		want   error
	}{
		{"missing renderer", func(c *Config) { c.Renderer = nil }, ErrMissingRenderer},
		{"missing logger", func(c *Config) { c.Logger = nil }, ErrMissingLogger},
		{"bad generator", func(c *Config) { c.MazeAlgorithm = "kruskal" }, generator.ErrInvalidAlgorithm},
		{"bad solver", func(c *Config) { c.PathAlgorithm = "bfs" }, pathfind.ErrInvalidAlgorithm},
		{"zero columns", func(c *Config) { c.Cols = 0 }, maze.ErrInvalidDimensions},
		{"end outside", func(c *Config) { c.End = &maze.Position{X: 4, Y: 0} }, pathfind.ErrOutOfBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.modify(&c)
			_, err := NewVisualizer(c)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("default corners", func(t *testing.T) {
		v, err := NewVisualizer(base)
		require.NoError(t, err)
		assert.Equal(t, maze.Position{X: 0, Y: 0}, v.Start())
		assert.Equal(t, maze.Position{X: 3, Y: 2}, v.End())
		assert.False(t, v.Busy())
		assert.Equal(t, 0, v.Grid().Passages())
	})
}

func TestVisualizerIdleFrame(t *testing.T) {
	v, rec, _ := newTestVisualizer(t, generator.DFS, 4, 3)

	require.NoError(t, v.Tick())
	require.Len(t, rec.frames, 1)
	f := rec.last()
	assert.Same(t, v.Grid(), f.Grid)
	assert.Equal(t, maze.Position{X: 0, Y: 0}, *f.Start)
	assert.Equal(t, maze.Position{X: 3, Y: 2}, *f.End)
	assert.Empty(t, f.Path)
	assert.Empty(t, f.Frontier)
}

func TestVisualizerGeneration(t *testing.T) {
	v, rec, logger := newTestVisualizer(t, generator.Prim, 4, 3)

	require.NoError(t, v.TriggerGeneration())
	assert.True(t, v.Busy())

	// Prim carves one passage per step.
	for n := 0; n < 4*3-1; n++ {
		require.NoError(t, v.Tick())
		assert.True(t, v.Busy())
		f := rec.last()
		assert.Nil(t, f.Start)
		assert.Equal(t, n+1, f.Grid.Passages())
	}

	require.NoError(t, v.Tick())
	assert.False(t, v.Busy())
	assert.NotNil(t, rec.last().Start)
	assert.Equal(t, 4*3-1, v.Grid().Passages())
	assert.True(t, logger.contains("INFO generation finished after 11 steps"))
}

func TestVisualizerPathfinding(t *testing.T) {
	v, rec, logger := newTestVisualizer(t, generator.DFS, 6, 5)

	require.NoError(t, v.TriggerGeneration())
	for v.Busy() {
		require.NoError(t, v.Tick())
	}

	require.NoError(t, v.TriggerPathfinding())
	searchFrames := 0
	for v.Busy() {
		require.NoError(t, v.Tick())
		if v.Busy() {
			searchFrames++
			f := rec.last()
			require.NotNil(t, f.Start)
			assert.NotEmpty(t, f.Closed)
			assert.Empty(t, f.Path)
		}
	}
	assert.Positive(t, searchFrames)

	path := v.Path()
	require.NotEmpty(t, path)
	assert.Equal(t, v.Start(), path[0].Pos())
	assert.Equal(t, v.End(), path[len(path)-1].Pos())

	finder, err := pathfind.New(pathfind.AStar, v.Grid(), v.Start(), v.End())
	require.NoError(t, err)
	if diff := cmp.Diff(positions(pathfind.Run(finder)), positions(path)); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, positions(path), positions(rec.last().Path))
	assert.True(t, logger.contains("INFO path found"))

	t.Run("new maze clears the path", func(t *testing.T) {
		require.NoError(t, v.TriggerGeneration())
		assert.Nil(t, v.Path())
	})
}

func TestVisualizerAbandonsRun(t *testing.T) {
	v, _, logger := newTestVisualizer(t, generator.DFS, 5, 5)

	require.NoError(t, v.TriggerGeneration())
	for n := 0; n < 3; n++ {
		require.NoError(t, v.Tick())
	}
	require.NoError(t, v.TriggerPathfinding())
	assert.True(t, logger.contains("WARN generating abandoned after 3 steps"))

	for n := 0; n < 100 && v.Busy(); n++ {
		require.NoError(t, v.Tick())
	}
	assert.False(t, v.Busy())
	assert.Equal(t, 3, v.Grid().Passages(), "abandoned generation must not carve further")
}

func TestVisualizerRun(t *testing.T) {
	t.Run("closed channel", func(t *testing.T) {
		v, rec, _ := newTestVisualizer(t, generator.DFS, 2, 2)
		ticks := make(chan time.Time, 3)
		for n := 0; n < 3; n++ {
			ticks <- time.Now()
		}
		close(ticks)

		assert.NoError(t, v.Run(context.Background(), ticks))
		assert.Len(t, rec.frames, 3)
	})

	t.Run("cancelled", func(t *testing.T) {
		v, _, _ := newTestVisualizer(t, generator.DFS, 2, 2)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, v.Run(ctx, make(chan time.Time)), context.Canceled)
	})

	t.Run("render failure", func(t *testing.T) {
		v, rec, logger := newTestVisualizer(t, generator.DFS, 2, 2)
		rec.err = errors.New("screen gone")
		ticks := make(chan time.Time, 1)
		ticks <- time.Now()

		assert.ErrorIs(t, v.Run(context.Background(), ticks), rec.err)
		assert.True(t, logger.contains("ERROR rendering frame"))
	})
}

func TestTee(t *testing.T) {
	a := &recorder{err: errors.New("a failed")}
	b := &recorder{}
	r := Tee(a, b)

	err := r.Render(render.Frame{})
	assert.ErrorIs(t, err, a.err)
	assert.Len(t, a.frames, 1)
	assert.Len(t, b.frames, 1)

	assert.NoError(t, Tee(b).Render(render.Frame{}))
}
