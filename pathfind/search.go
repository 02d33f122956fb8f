package pathfind

import (
	"slices"

	"github.com/beka-birhanu/vinom-mazeviz/maze"
	"github.com/zyedidia/generic/mapset"
)

// search is the best-first loop shared by A* and Dijkstra. The two differ only
// in whether H is computed, and therefore whether cells are ranked by F or G.
type search struct {
	grid         *maze.Grid
	start        *maze.Cell
	end          *maze.Cell
	useHeuristic bool

	open      []*maze.Cell
	openSet   mapset.Set[maze.Position]
	closed    []*maze.Cell
	closedSet mapset.Set[maze.Position]

	scores  map[maze.Position]*Score
	parents map[maze.Position]maze.Position

	path []*maze.Cell
	done bool
}

func newSearch(grid *maze.Grid, start, end *maze.Cell, useHeuristic bool) *search {
	s := &search{
		grid:         grid,
		start:        start,
		end:          end,
		useHeuristic: useHeuristic,
		openSet:      mapset.New[maze.Position](),
		closedSet:    mapset.New[maze.Position](),
		scores:       map[maze.Position]*Score{start.Pos(): {}},
		parents:      make(map[maze.Position]maze.Position),
	}
	s.open = append(s.open, start)
	s.openSet.Put(start.Pos())
	return s
}

func (s *search) rank(c *maze.Cell) int {
	score := s.scores[c.Pos()]
	if s.useHeuristic {
		return score.F
	}
	return score.G
}

// best returns the index of the open cell with the lowest rank. Ties go to the
// cell discovered first.
func (s *search) best() int {
	best := 0
	for i := 1; i < len(s.open); i++ {
		if s.rank(s.open[i]) < s.rank(s.open[best]) {
			best = i
		}
	}
	return best
}

func (s *search) Next() bool {
	if s.done {
		return false
	}

	if len(s.open) == 0 {
		s.finish([]*maze.Cell{})
		return false
	}

	i := s.best()
	current := s.open[i]
	s.open = slices.Delete(s.open, i, i+1)
	s.openSet.Remove(current.Pos())
	s.closed = append(s.closed, current)
	s.closedSet.Put(current.Pos())

	if current.Equal(s.end) {
		s.finish(ReconstructPath(s.grid, current.Pos(), s.parents))
		return false
	}

	currentScore := s.scores[current.Pos()]
	for _, n := range s.grid.Neighbors(current) {
		if s.closedSet.Has(n.Pos()) || !maze.Connected(current, n) {
			continue
		}

		tentativeG := currentScore.G + maze.Heuristic(n.Pos(), current.Pos())
		inOpen := s.openSet.Has(n.Pos())
		score, seen := s.scores[n.Pos()]
		if inOpen && tentativeG >= score.G {
			continue
		}

		if !seen {
			score = &Score{}
			s.scores[n.Pos()] = score
		}
		score.G = tentativeG
		if s.useHeuristic {
			score.H = maze.Heuristic(n.Pos(), s.end.Pos())
			score.F = score.G + score.H
		}
		s.parents[n.Pos()] = current.Pos()

		if !inOpen {
			s.open = append(s.open, n)
			s.openSet.Put(n.Pos())
		}
	}

	return true
}

func (s *search) finish(path []*maze.Cell) {
	s.path = path
	s.done = true
}

func (s *search) Grid() *maze.Grid {
	return s.grid
}

func (s *search) Open() []*maze.Cell {
	return slices.Clone(s.open)
}

func (s *search) Closed() []*maze.Cell {
	return slices.Clone(s.closed)
}

func (s *search) Path() []*maze.Cell {
	return s.path
}

func (s *search) Score(p maze.Position) (Score, bool) {
	score, ok := s.scores[p]
	if !ok {
		return Score{}, false
	}
	return *score, true
}

func (s *search) Done() bool {
	return s.done
}
