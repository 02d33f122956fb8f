package maze

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertSymmetric checks that every wall agrees with the facing wall of its neighbour.
func assertSymmetric(t *testing.T, g *Grid) {
	t.Helper()
	for _, c := range g.Cells() {
		for _, d := range Directions {
			n := g.Cell(c.Pos().Step(d))
			if n == nil {
				continue
			}
			assert.Equal(t, c.HasWall(d), n.HasWall(Opposite(d)), "wall %v of %v", d, c.Pos())
		}
	}
}

func TestNew(t *testing.T) {
	t.Run("fully walled", func(t *testing.T) {
		g, err := New(4, 3)
		require.NoError(t, err)
		assert.Equal(t, 4, g.Width())
		assert.Equal(t, 3, g.Height())
		assert.Equal(t, 12, g.Size())
		for _, c := range g.Cells() {
			assert.True(t, c.Walled(), "cell %v", c.Pos())
		}
		assert.Zero(t, g.Passages())
	})

	t.Run("indexed by row then column", func(t *testing.T) {
		g, err := New(4, 3)
		require.NoError(t, err)
		c := g.At(3, 1)
		require.NotNil(t, c)
		assert.Equal(t, 3, c.X())
		assert.Equal(t, 1, c.Y())
		assert.Nil(t, g.At(4, 1))
		assert.Nil(t, g.At(0, -1))
	})

	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 2}} {
		_, err := New(dims[0], dims[1])
		assert.True(t, errors.Is(err, ErrInvalidDimensions), "dims %v", dims)
	}
}

func TestNeighbors(t *testing.T) {
	g, err := New(3, 3)
	require.NoError(t, err)

	t.Run("centre has four in fixed order", func(t *testing.T) {
		got := g.Neighbors(g.At(1, 1))
		want := []Position{{0, 1}, {2, 1}, {1, 0}, {1, 2}}
		require.Len(t, got, 4)
		for i, c := range got {
			assert.Equal(t, want[i], c.Pos())
		}
	})

	t.Run("corner excludes out of bounds", func(t *testing.T) {
		got := g.Neighbors(g.At(0, 0))
		require.Len(t, got, 2)
		assert.Equal(t, Position{1, 0}, got[0].Pos())
		assert.Equal(t, Position{0, 1}, got[1].Pos())
	})

	t.Run("returns grid instances", func(t *testing.T) {
		for _, n := range g.Neighbors(g.At(1, 1)) {
			assert.Same(t, g.Cell(n.Pos()), n)
		}
	})
}

func TestCarveAndAddWall(t *testing.T) {
	g, err := New(3, 3)
	require.NoError(t, err)
	centre := g.At(1, 1)

	cases := []struct {
		name string
		pos  Position
		side Direction
	}{
		{"east", Position{2, 1}, East},
		{"west", Position{0, 1}, West},
		{"north", Position{1, 0}, North},
		{"south", Position{1, 2}, South},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n := g.Cell(tc.pos)
			Carve(centre, n)
			assert.False(t, centre.HasWall(tc.side))
			assert.False(t, n.HasWall(Opposite(tc.side)))
			assert.True(t, Connected(centre, n))
			assert.True(t, Connected(n, centre))
			assertSymmetric(t, g)

			AddWall(centre, n)
			assert.True(t, centre.HasWall(tc.side))
			assert.True(t, n.HasWall(Opposite(tc.side)))
			assert.False(t, Connected(centre, n))
			assertSymmetric(t, g)
		})
	}

	t.Run("passages counted once per pair", func(t *testing.T) {
		Carve(g.At(0, 0), g.At(1, 0))
		Carve(g.At(1, 0), g.At(1, 1))
		assert.Equal(t, 2, g.Passages())
	})

	t.Run("non adjacent panics", func(t *testing.T) {
		assert.Panics(t, func() { Carve(g.At(0, 0), g.At(2, 2)) })
		assert.Panics(t, func() { AddWall(g.At(0, 0), g.At(0, 0)) })
		assert.False(t, Connected(g.At(0, 0), g.At(2, 0)))
	})
}

func TestHeuristic(t *testing.T) {
	assert.Equal(t, 0, Heuristic(Position{2, 2}, Position{2, 2}))
	assert.Equal(t, 4, Heuristic(Position{0, 0}, Position{2, 2}))
	assert.Equal(t, 7, Heuristic(Position{5, 1}, Position{1, 4}))
	assert.Equal(t, 1, Heuristic(Position{1, 1}, Position{1, 0}))
}

func TestCellEquality(t *testing.T) {
	g, err := New(2, 2)
	require.NoError(t, err)
	other, err := New(2, 2)
	require.NoError(t, err)

	Carve(g.At(0, 0), g.At(1, 0))
	assert.True(t, g.At(0, 0).Equal(other.At(0, 0)), "walls must not affect identity")
	assert.False(t, g.At(0, 0).Equal(g.At(1, 0)))
}

func TestString(t *testing.T) {
	g, err := New(2, 2)
	require.NoError(t, err)
	Carve(g.At(0, 0), g.At(1, 0))
	Carve(g.At(1, 0), g.At(1, 1))

	want := "" +
		"+---+---+\n" +
		"|       |\n" +
		"+---+   +\n" +
		"|   |   |\n" +
		"+---+---+\n"
	assert.Equal(t, want, g.String())
}
