// Package astar implements the grid's shortest-path planner: Manhattan-
// heuristic A* over uniform-weight adjacency, path reconstruction, ASCII
// overlay rendering, and wire encoding of the resulting path.
package astar

import (
	"github.com/forcelightning/mazebot/grid"
	"github.com/forcelightning/mazebot/pqueue"
)

// Run executes A* from start to end over g's currently-known adjacency.
// The search stops as soon as end is popped; at that point end (if
// reachable) has G set to its minimum edge count from start and a
// Predecessor chain back to start, while cells still in the open set may
// hold non-final scores. It does not reset g's heuristics first; callers
// that intend a fresh run call g.ClearHeuristics beforehand.
func Run(g *grid.Grid, start, end int) {
	g.Cells[start].G = 0
	g.Cells[start].H = grid.Manhattan(g.Cells[start].Coord, g.Cells[end].Coord)
	g.Cells[start].F = g.Cells[start].H

	open := pqueue.New(len(g.Cells))
	open.Insert(start, g.Cells[start].F)

	for open.Len() > 0 {
		u, _, _ := open.PopMin()
		if u == end {
			return
		}

		for d := grid.North; d <= grid.West; d++ {
			v := g.Cells[u].Adjacent[d]
			if v == grid.NoCell {
				continue
			}

			gPrime := g.Cells[u].G + 1
			if gPrime < g.Cells[v].G {
				g.Cells[v].G = gPrime
				g.Cells[v].H = grid.Manhattan(g.Cells[u].Coord, g.Cells[end].Coord)
				g.Cells[v].F = addSaturating(g.Cells[v].G, g.Cells[v].H)
				g.Cells[v].Predecessor = u

				if idx, ok := open.FindIndexOfCell(v); ok {
					open.Reprioritize(idx, g.Cells[v].F)
				} else {
					open.Insert(v, g.Cells[v].F)
				}
			}
		}
	}
}

func addSaturating(a, b uint32) uint32 {
	if a >= grid.Infinity-b {
		return grid.Infinity
	}
	return a + b
}

// GetPath reconstructs the path to end by walking Predecessor links back to
// the cell whose predecessor is NoCell (the run's start), then reversing.
// It returns (nil, false) if end's G is still Infinity (unreachable).
func GetPath(g *grid.Grid, end int) ([]int, bool) {
	if g.Cells[end].G == grid.Infinity {
		return nil, false
	}

	var reversed []int
	for cur := end; cur != grid.NoCell; cur = g.Cells[cur].Predecessor {
		reversed = append(reversed, cur)
	}

	path := make([]int, len(reversed))
	for i, c := range reversed {
		path[len(reversed)-1-i] = c
	}
	return path, true
}
