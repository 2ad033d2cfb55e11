// Package explorer drives a maze-mapping DFS traversal: a navigator visits
// every reachable cell of an initially all-open grid, carving walls in as a
// Sensor reports them and driving motion through an Actuator, until an
// inner flood-fill confirms every reachable cell has been seen.
package explorer

import (
	"github.com/pkg/errors"

	"github.com/forcelightning/mazebot/floodfill"
	"github.com/forcelightning/mazebot/grid"
)

// Sensor reports, for the navigator standing on its current cell and
// facing orientation, which of the four NORTH-relative sides are open. Bit
// d of the returned mask is 1 iff the side in cardinal direction d is a gap
// rather than a wall. Implementations are responsible for aligning their
// raw (robot-relative) reading to this fixed, NORTH-relative bitmask.
type Sensor interface {
	Sense(g *grid.Grid, nav *grid.Navigator, facing grid.CardinalDirection) grid.GapBitmask
}

// Actuator moves the navigator one cell in the given cardinal direction and
// updates its orientation to match.
type Actuator interface {
	Move(nav *grid.Navigator, dir grid.CardinalDirection)
}

// ErrNoPredecessor is returned when a backtrack is attempted from a cell
// with no recorded predecessor; per the exploration algorithm this can only
// happen from a driver bug, since the start cell never needs to backtrack
// past itself (all_reachable_visited always terminates first).
var ErrNoPredecessor = errors.New("explorer: backtrack requested with no predecessor")

// Explore drives nav from start over g (expected to be grid.NewGridAllOpen,
// "assume open until proven walled") until every cell reachable from start
// over the currently-known adjacency has been visited.
func Explore(g *grid.Grid, nav *grid.Navigator, sensor Sensor, actuator Actuator) error {
	g.Cells[nav.Current].Visited = true

	for !AllReachableVisited(g, nav) {
		mask := sensor.Sense(g, nav, nav.Orientation)
		g.ModifyWalls(nav, mask, true, false)

		next, dir, found := firstUnvisitedNeighbour(g, nav.Current)
		if found {
			if g.Cells[next].Predecessor == grid.NoCell {
				g.Cells[next].Predecessor = nav.Current
			}
			actuator.Move(nav, dir)
			nav.Current = next
			g.Cells[next].Visited = true
			continue
		}

		pred := g.Cells[nav.Current].Predecessor
		if pred == grid.NoCell {
			return errors.Wrapf(ErrNoPredecessor, "at cell %d", nav.Current)
		}
		backDir := grid.DirectionFromTo(g.Cells[nav.Current].Coord, g.Cells[pred].Coord)
		actuator.Move(nav, backDir)
		nav.Current = pred
	}

	return nil
}

// firstUnvisitedNeighbour scans cell's neighbours in cardinal order N, E,
// S, W and returns the first one that is adjacent (no wall) and unvisited.
func firstUnvisitedNeighbour(g *grid.Grid, cell int) (next int, dir grid.CardinalDirection, found bool) {
	for d := grid.North; d <= grid.West; d++ {
		v := g.Cells[cell].Adjacent[d]
		if v == grid.NoCell {
			continue
		}
		if !g.Cells[v].Visited {
			return v, d, true
		}
	}
	return grid.NoCell, grid.NoDirection, false
}

// AllReachableVisited runs an inner flood-fill from nav's current cell over
// the known adjacency and reports whether every cell the flood reaches has
// its Visited flag set. This is strictly stronger than "no unvisited
// neighbour within one step" and strictly weaker than "every grid cell
// visited": it correctly handles mazes with regions unreachable from the
// navigator's position. The flood overwrites every cell's H, but each cell's
// Predecessor is restored afterwards, since Explore backtracks along them.
func AllReachableVisited(g *grid.Grid, nav *grid.Navigator) bool {
	preds := make([]int, len(g.Cells))
	for i := range g.Cells {
		preds[i] = g.Cells[i].Predecessor
	}
	floodfill.Compute(g, nav.Current, grid.NoCell)

	all := true
	for i, cell := range g.Cells {
		if cell.H != grid.Infinity && !cell.Visited {
			all = false
		}
		g.Cells[i].Predecessor = preds[i]
	}
	return all
}
