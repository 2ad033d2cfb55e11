package astar

import (
	"strings"
	"testing"

	"github.com/forcelightning/mazebot/grid"
)

var fiveByFiveBitmask = []grid.GapBitmask{
	0x2, 0xE, 0xA, 0xC, 0x4,
	0x6, 0xB, 0xC, 0x3, 0x9,
	0x3, 0x8, 0x7, 0x8, 0x4,
	0x4, 0x4, 0x7, 0xA, 0xD,
	0x3, 0xB, 0x9, 0x2, 0x9,
}

func bfsDistance(g *grid.Grid, start, end int) (int, bool) {
	if start == end {
		return 0, true
	}
	dist := make(map[int]int)
	dist[start] = 0
	queue := []int{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for d := grid.North; d <= grid.West; d++ {
			v := g.Cells[u].Adjacent[d]
			if v == grid.NoCell {
				continue
			}
			if _, seen := dist[v]; seen {
				continue
			}
			dist[v] = dist[u] + 1
			if v == end {
				return dist[v], true
			}
			queue = append(queue, v)
		}
	}
	return 0, false
}

func TestColumnMazeVerticalPath(t *testing.T) {
	g := grid.NewGrid(10, 10)
	for y := 0; y < 9; y++ {
		cur, _ := g.CellAt(grid.Coordinate{X: 0, Y: uint16(y)})
		next, _ := g.CellAt(grid.Coordinate{X: 0, Y: uint16(y + 1)})
		g.Cells[cur].Adjacent[grid.South] = next
		g.Cells[next].Adjacent[grid.North] = cur
	}

	start, _ := g.CellAt(grid.Coordinate{X: 0, Y: 0})
	end, _ := g.CellAt(grid.Coordinate{X: 0, Y: 9})

	Run(g, start, end)
	path, ok := GetPath(g, end)
	if !ok {
		t.Fatal("expected end to be reachable")
	}
	if len(path) != 10 {
		t.Fatalf("path length = %d, want 10", len(path))
	}
	for i, cell := range path {
		coord := g.Cells[cell].Coord
		if int(coord.Y) != i || coord.X != 0 {
			t.Fatalf("path[%d] = %v, want {X:0 Y:%d}", i, coord, i)
		}
	}
}

func TestAStarOptimalityMatchesBFS(t *testing.T) {
	g := grid.NewGrid(5, 5)
	grid.Deserialise(g, fiveByFiveBitmask)

	start, _ := g.CellAt(grid.Coordinate{X: 0, Y: 4})
	end, _ := g.CellAt(grid.Coordinate{X: 4, Y: 0})

	want, reachable := bfsDistance(g, start, end)
	if !reachable {
		t.Fatal("expected end reachable in BFS")
	}

	Run(g, start, end)
	if g.Cells[end].G != uint32(want) {
		t.Fatalf("A* g = %d, want BFS distance %d", g.Cells[end].G, want)
	}

	path, ok := GetPath(g, end)
	if !ok {
		t.Fatal("expected GetPath to succeed")
	}
	if len(path) != want+1 {
		t.Fatalf("path length = %d, want %d", len(path), want+1)
	}
}

func TestUnreachableDestination(t *testing.T) {
	g := grid.NewGrid(3, 3)
	start, _ := g.CellAt(grid.Coordinate{X: 0, Y: 0})
	end, _ := g.CellAt(grid.Coordinate{X: 2, Y: 2})

	Run(g, start, end)
	if g.Cells[end].G != grid.Infinity {
		t.Fatalf("expected end.G == Infinity, got %d", g.Cells[end].G)
	}
	if _, ok := GetPath(g, end); ok {
		t.Fatal("expected GetPath to report unreachable")
	}
}

func TestRenderPathGlyphs(t *testing.T) {
	g := grid.NewGrid(5, 5)
	grid.Deserialise(g, fiveByFiveBitmask)

	start, _ := g.CellAt(grid.Coordinate{X: 0, Y: 4})
	end, _ := g.CellAt(grid.Coordinate{X: 4, Y: 0})

	Run(g, start, end)
	path, ok := GetPath(g, end)
	if !ok {
		t.Fatal("expected a path")
	}

	out := RenderPath(g.Render(), g, path)

	if strings.Count(out, "%") != 1 {
		t.Fatalf("expected exactly one '%%', got %d", strings.Count(out, "%"))
	}
	if strings.Count(out, "X") != 1 {
		t.Fatalf("expected exactly one 'X', got %d", strings.Count(out, "X"))
	}
	for _, r := range out {
		switch r {
		case '|', '-', 'O', '%', 'X', ' ', '\n', '+':
			continue
		default:
			t.Fatalf("unexpected rune %q in rendered path", r)
		}
	}
}

func TestPathToBuffer(t *testing.T) {
	g := grid.NewGrid(5, 5)
	grid.Deserialise(g, fiveByFiveBitmask)

	start, _ := g.CellAt(grid.Coordinate{X: 0, Y: 4})
	end, _ := g.CellAt(grid.Coordinate{X: 4, Y: 0})
	Run(g, start, end)
	path, _ := GetPath(g, end)

	buf := make([]byte, 4*len(path))
	n, err := PathToBuffer(g, path, buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != len(buf) {
		t.Fatalf("wrote %d bytes, want %d", n, len(buf))
	}
}

func TestPathToBufferTooSmall(t *testing.T) {
	g := grid.NewGrid(2, 2)
	path := []int{0, 1}
	buf := make([]byte, 2)
	if _, err := PathToBuffer(g, path, buf); err == nil {
		t.Fatal("expected error for undersized buffer")
	}
}
