// Package floodfill computes a distance field over the grid's currently
// known adjacency (a BFS from the destination, run through the same
// priority-queue machinery A* uses) and drives greedy descent navigation
// from it.
package floodfill

import (
	"github.com/forcelightning/mazebot/grid"
	"github.com/forcelightning/mazebot/pqueue"
)

// Compute fills every cell's H with its distance, over g's known adjacency,
// to end. It stops as soon as stopAt is popped (pass grid.NoCell to run to
// completion). Cells unreachable from end are left at Infinity.
func Compute(g *grid.Grid, end int, stopAt int) {
	for i := range g.Cells {
		g.Cells[i].H = grid.Infinity
	}
	g.Cells[end].H = 0

	open := pqueue.New(len(g.Cells))
	open.Insert(end, 0)

	for open.Len() > 0 {
		u, _, _ := open.PopMin()
		if u == stopAt {
			return
		}

		for d := grid.North; d <= grid.West; d++ {
			v := g.Cells[u].Adjacent[d]
			if v == grid.NoCell {
				continue
			}

			hPrime := g.Cells[u].H + 1
			if hPrime < g.Cells[v].H {
				g.Cells[v].H = hPrime
				g.Cells[v].Predecessor = u

				if idx, ok := open.FindIndexOfCell(v); ok {
					open.Reprioritize(idx, hPrime)
				} else {
					open.Insert(v, hPrime)
				}
			}
		}
	}
}

// NextStep picks the neighbour of nav's current cell whose H is strictly
// less than the current cell's H, scanning cardinal order N, E, S, W so the
// first qualifying direction wins ties. It returns (grid.NoCell,
// grid.NoDirection, false) when every neighbour's H is greater than or
// equal to the current cell's (a dead end in the known graph), signalling
// the caller should retreat instead.
func NextStep(g *grid.Grid, current int) (next int, dir grid.CardinalDirection, ok bool) {
	here := g.Cells[current].H
	for d := grid.North; d <= grid.West; d++ {
		v := g.Cells[current].Adjacent[d]
		if v == grid.NoCell {
			continue
		}
		if g.Cells[v].H < here {
			return v, d, true
		}
	}
	return grid.NoCell, grid.NoDirection, false
}
