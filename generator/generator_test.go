package generator

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/beka-birhanu/vinom-mazeviz/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reachable counts the cells reachable from (0,0) through carved passages.
func reachable(g *maze.Grid) int {
	seen := map[maze.Position]bool{{X: 0, Y: 0}: true}
	queue := []*maze.Cell{g.At(0, 0)}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, n := range g.Neighbors(current) {
			if seen[n.Pos()] || !maze.Connected(current, n) {
				continue
			}
			seen[n.Pos()] = true
			queue = append(queue, n)
		}
	}
	return len(seen)
}

func symmetric(g *maze.Grid) bool {
	for _, c := range g.Cells() {
		for _, d := range maze.Directions {
			n := g.Cell(c.Pos().Step(d))
			if n != nil && c.HasWall(d) != n.HasWall(maze.Opposite(d)) {
				return false
			}
		}
	}
	return true
}

func TestPerfectMaze(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 6}, {5, 5}, {25, 15}, {8, 3}}

	for _, algo := range Algorithms {
		for _, size := range sizes {
			w, h := size[0], size[1]
			t.Run(string(algo), func(t *testing.T) {
				gen, err := New(algo, w, h, rand.New(rand.NewSource(7)))
				require.NoError(t, err)

				for gen.Next() {
					require.True(t, symmetric(gen.Grid()), "walls out of sync mid-run")
				}

				assert.True(t, gen.Done())
				grid := gen.Grid()
				assert.Equal(t, w*h-1, grid.Passages(), "%dx%d spanning tree edges", w, h)
				assert.Equal(t, w*h, reachable(grid), "%dx%d every cell reachable", w, h)
				assert.False(t, gen.Next(), "finished generator must stay finished")
			})
		}
	}
}

func TestDFSFiveByFive(t *testing.T) {
	gen, err := New(DFS, 5, 5, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	steps := 0
	for gen.Next() {
		steps++
	}

	assert.Equal(t, 24, gen.Grid().Passages())
	// Every cell but the start is pushed by a carving pop, and every cell is
	// dropped by exactly one backtracking pop.
	assert.Equal(t, 2*25-1, steps)
	assert.Empty(t, gen.Frontier())
}

func TestPrimStepCount(t *testing.T) {
	gen, err := New(Prim, 6, 4, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	steps := 0
	for gen.Next() {
		steps++
		seen := map[maze.Position]bool{}
		for _, c := range gen.Frontier() {
			assert.False(t, seen[c.Pos()], "duplicate %v in frontier", c.Pos())
			seen[c.Pos()] = true
		}
	}
	assert.Equal(t, 6*4-1, steps)
}

func TestDeterministicForSeed(t *testing.T) {
	for _, algo := range Algorithms {
		t.Run(string(algo), func(t *testing.T) {
			a, err := New(algo, 12, 9, rand.New(rand.NewSource(99)))
			require.NoError(t, err)
			b, err := New(algo, 12, 9, rand.New(rand.NewSource(99)))
			require.NoError(t, err)

			for a.Next() {
				require.True(t, b.Next())
				require.Equal(t, len(a.Frontier()), len(b.Frontier()))
				for i, c := range a.Frontier() {
					require.True(t, c.Equal(b.Frontier()[i]))
				}
			}
			assert.False(t, b.Next())
			assert.Equal(t, a.Grid().String(), b.Grid().String())
		})
	}
}

func TestFrontierIsSnapshot(t *testing.T) {
	gen, err := New(DFS, 4, 4, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.True(t, gen.Next())

	frontier := gen.Frontier()
	frontier[0] = nil
	assert.NotNil(t, gen.Frontier()[0])
}

func TestWilsonWalkStaysLoopFree(t *testing.T) {
	gen, err := New(Wilson, 10, 10, rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	for gen.Next() {
		walk := gen.Frontier()
		seen := map[maze.Position]bool{}
		for i, c := range walk {
			assert.False(t, seen[c.Pos()], "walk revisits %v", c.Pos())
			seen[c.Pos()] = true
			if i > 0 {
				_, adjacent := maze.DirectionBetween(walk[i-1].Pos(), c.Pos())
				assert.True(t, adjacent)
			}
		}
	}
}

func TestNewErrors(t *testing.T) {
	_, err := New(Algorithm("kruskal"), 5, 5, nil)
	assert.True(t, errors.Is(err, ErrInvalidAlgorithm))

	_, err = New(DFS, 0, 5, nil)
	assert.True(t, errors.Is(err, maze.ErrInvalidDimensions))

	_, err = New(Prim, 5, -2, nil)
	assert.True(t, errors.Is(err, maze.ErrInvalidDimensions))
}

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]Algorithm{"dfs": DFS, "PRIM": Prim, " Wilson ": Wilson}
	for in, want := range cases {
		got, err := ParseAlgorithm(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseAlgorithm("astar")
	assert.True(t, errors.Is(err, ErrInvalidAlgorithm))
}

func TestRun(t *testing.T) {
	gen, err := New(Prim, 7, 7, nil)
	require.NoError(t, err)
	grid := Run(gen)
	assert.Equal(t, 48, grid.Passages())
	assert.Same(t, grid, gen.Grid())
}
