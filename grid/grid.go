package grid

import (
	"fmt"
	"math"
)

// NoCell is the sentinel cell index standing in for the original's NULL
// pointer: an absent adjacency slot, an absent predecessor.
const NoCell = -1

// Infinity is the largest value the planner scores can hold; arithmetic
// against it saturates rather than wrapping (see addSaturating).
const Infinity uint32 = math.MaxUint32

// Cell is one grid cell: its fixed coordinate, four adjacency slots indexed
// by CardinalDirection (NoCell if walled or out of bounds), the three
// planner scores, a predecessor cell index for path reconstruction, and a
// DFS visited flag.
type Cell struct {
	Coord Coordinate

	// Adjacent[d] is the neighbour cell index in direction d, or NoCell.
	Adjacent [4]int

	F, G, H uint32

	// Predecessor is the cell this one was reached from during the latest
	// search, or NoCell.
	Predecessor int

	Visited bool
}

// Grid is the R*C collection of cells, stored row-major: index = y*Cols+x.
type Grid struct {
	Cells []Cell
	Rows  int
	Cols  int
}

// NewGrid allocates an all-walled grid: no adjacency present, every
// heuristic at Infinity, every cell's coordinate set per its storage
// position.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{
		Cells: make([]Cell, rows*cols),
		Rows:  rows,
		Cols:  cols,
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			idx := y*cols + x
			g.Cells[idx] = Cell{
				Coord:       Coordinate{X: uint16(x), Y: uint16(y)},
				Adjacent:    [4]int{NoCell, NoCell, NoCell, NoCell},
				F:           Infinity,
				G:           Infinity,
				H:           Infinity,
				Predecessor: NoCell,
			}
		}
	}
	return g
}

// Index returns the storage index of coordinate c.
func (g *Grid) Index(c Coordinate) int {
	return int(c.Y)*g.Cols + int(c.X)
}

// InBounds reports whether c falls within the grid's [0,Cols)x[0,Rows).
func (g *Grid) InBounds(c Coordinate) bool {
	return int(c.X) < g.Cols && int(c.Y) < g.Rows
}

// CellAt returns the cell index at coord, or (NoCell, false) if coord is
// out of bounds.
func (g *Grid) CellAt(coord Coordinate) (int, bool) {
	if !g.InBounds(coord) {
		return NoCell, false
	}
	return g.Index(coord), true
}

// Neighbour returns the cell index one step in dir from cell's coordinate,
// or (NoCell, false) at the grid boundary. This is independent of wall
// state: it answers "what coordinate is over there", used when setting
// walls, not when searching known adjacency.
func (g *Grid) Neighbour(cell int, dir CardinalDirection) (int, bool) {
	if !dir.Valid() {
		return NoCell, false
	}
	c := g.Cells[cell].Coord
	nx := int(c.X) + deltaX[dir]
	ny := int(c.Y) + deltaY[dir]
	if nx < 0 || ny < 0 {
		return NoCell, false
	}
	return g.CellAt(Coordinate{X: uint16(nx), Y: uint16(ny)})
}

// ClearHeuristics resets every cell's F, G, H to Infinity and clears its
// visited flag. Adjacency and predecessor pointers are untouched.
func (g *Grid) ClearHeuristics() {
	for i := range g.Cells {
		g.Cells[i].F = Infinity
		g.Cells[i].G = Infinity
		g.Cells[i].H = Infinity
		g.Cells[i].Visited = false
	}
}

// addSaturating adds two scores without wrapping past Infinity.
func addSaturating(a, b uint32) uint32 {
	if a >= Infinity-b {
		return Infinity
	}
	return a + b
}

// Navigator holds the robot's current position, the fixed start/end of the
// run, and its current facing. Current is mutated by the DFS/planner
// drivers; Start and End are fixed per run; Orientation updates on every
// move.
type Navigator struct {
	Current     int
	Start       int
	End         int
	Orientation CardinalDirection
}

// String renders the navigator's position and facing for logs.
func (n *Navigator) String() string {
	return fmt.Sprintf("nav{cur=%d start=%d end=%d facing=%s}", n.Current, n.Start, n.End, n.Orientation)
}
