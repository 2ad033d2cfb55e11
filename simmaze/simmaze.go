// Package simmaze generates ground-truth mazes for testing and
// demonstration: a stochastic recursive-backtracker carve directly over a
// grid.Grid's adjacency, optionally braided to add loops. There is no
// physical maze here; this stands in for the board the real robot's
// sensors would otherwise discover cell by cell.
package simmaze

import (
	"math/rand"

	"github.com/forcelightning/mazebot/grid"
)

// Config controls maze generation. A Seed of 0 is treated as 1, so every
// run is deterministic.
type Config struct {
	Rows, Cols int
	Seed       int64

	// Braiding is the fraction, in [0,1], of dead ends that get an extra
	// adjacency carved in after the initial perfect-maze backtrack, trading
	// "exactly one solution" for "some loops, like a real floor plan".
	Braiding float64
}

// Generate carves a maze into a fresh grid.Grid of cfg.Rows x cfg.Cols,
// starting from an all-walled grid and recursively backtracking from cell
// (0,0), optionally braiding in extra connections afterward.
func Generate(cfg Config) *grid.Grid {
	g := grid.NewGrid(cfg.Rows, cfg.Cols)

	seed := cfg.Seed
	if seed == 0 {
		seed = 1
	}
	rng := rand.New(rand.NewSource(seed))

	recursiveBacktrack(g, 0, rng)

	if cfg.Braiding > 0 {
		braid(g, cfg.Braiding, rng)
	}

	return g
}

// recursiveBacktrack performs an iterative depth-first carve from start,
// installing a gap to each newly visited neighbour so the result is a
// spanning tree over the grid (a "perfect maze": exactly one path between
// any two cells).
func recursiveBacktrack(g *grid.Grid, start int, rng *rand.Rand) {
	visited := make([]bool, len(g.Cells))
	visited[start] = true
	stack := []int{start}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		candidates := unvisitedNeighbours(g, cur, visited)
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		pick := candidates[rng.Intn(len(candidates))]
		g.Cells[cur].Adjacent[pick.dir] = pick.cell
		g.Cells[pick.cell].Adjacent[pick.dir.Opposite()] = cur
		visited[pick.cell] = true
		stack = append(stack, pick.cell)
	}
}

type neighbourCandidate struct {
	cell int
	dir  grid.CardinalDirection
}

// unvisitedNeighbours lists cur's geometric neighbours (independent of
// current adjacency, since the grid starts all-walled) that recursiveBacktrack
// has not yet carved a path to.
func unvisitedNeighbours(g *grid.Grid, cur int, visited []bool) []neighbourCandidate {
	var out []neighbourCandidate
	for d := grid.North; d <= grid.West; d++ {
		n, ok := g.Neighbour(cur, d)
		if !ok || visited[n] {
			continue
		}
		out = append(out, neighbourCandidate{cell: n, dir: d})
	}
	return out
}

// braid carves extra adjacency at a fraction of dead ends (cells with
// exactly one gap) to remove some dead ends and introduce loops, without
// touching cells that already have more than one way out.
func braid(g *grid.Grid, fraction float64, rng *rand.Rand) {
	for idx := range g.Cells {
		if countGaps(g, idx) != 1 {
			continue
		}
		if rng.Float64() > fraction {
			continue
		}

		closed := closedDirections(g, idx)
		if len(closed) == 0 {
			continue
		}
		d := closed[rng.Intn(len(closed))]
		n, ok := g.Neighbour(idx, d)
		if !ok {
			continue
		}
		g.Cells[idx].Adjacent[d] = n
		g.Cells[n].Adjacent[d.Opposite()] = idx
	}
}

func countGaps(g *grid.Grid, idx int) int {
	count := 0
	for d := grid.North; d <= grid.West; d++ {
		if g.Cells[idx].Adjacent[d] != grid.NoCell {
			count++
		}
	}
	return count
}

func closedDirections(g *grid.Grid, idx int) []grid.CardinalDirection {
	var out []grid.CardinalDirection
	for d := grid.North; d <= grid.West; d++ {
		if g.Cells[idx].Adjacent[d] == grid.NoCell {
			out = append(out, d)
		}
	}
	return out
}
