package astar

import (
	"encoding/binary"

	"github.com/forcelightning/mazebot/grid"
	"github.com/pkg/errors"
)

// RenderPath overlays path onto rendered (g's Render output): '%' at the
// start, 'X' at the end, 'O' at turns, '|'/'-' straight-through segments at
// cells the path passes through without turning, and '|'/'-' runs between
// consecutive cells showing the connecting corridor.
func RenderPath(rendered string, g *grid.Grid, path []int) string {
	rows := splitLines(rendered)

	for i, cell := range path {
		var in, out grid.CardinalDirection = grid.NoDirection, grid.NoDirection
		if i > 0 {
			in = grid.DirectionFromTo(g.Cells[path[i-1]].Coord, g.Cells[cell].Coord)
			drawCorridor(rows, g, path[i-1], in)
		}
		if i < len(path)-1 {
			out = grid.DirectionFromTo(g.Cells[cell].Coord, g.Cells[path[i+1]].Coord)
		}
		drawCentre(rows, g, cell, in, out)
	}

	return joinLines(rows)
}

// drawCentre sets the glyph at cell's centre character: '%' for the path's
// start (in == NoDirection), 'X' for its end (out == NoDirection), a
// straight-through marker when the path enters and leaves on the same axis,
// and 'O' at every other turn.
func drawCentre(rows [][]byte, g *grid.Grid, cell int, in, out grid.CardinalDirection) {
	row, col := grid.CellCentre(g, cell)
	if row >= len(rows) || col >= len(rows[row]) {
		return
	}

	glyph := byte('O')
	switch {
	case in == grid.NoDirection:
		glyph = '%'
	case in == grid.North && out == grid.South, in == grid.South && out == grid.North:
		glyph = '|'
	case in == grid.East && out == grid.West, in == grid.West && out == grid.East:
		glyph = '-'
	}
	rows[row][col] = glyph

	if out == grid.NoDirection {
		rows[row][col] = 'X'
	}
}

// drawCorridor marks the three characters between from's centre and its
// neighbour in direction dir with the connecting wall glyph.
func drawCorridor(rows [][]byte, g *grid.Grid, from int, dir grid.CardinalDirection) {
	row, col := grid.CellCentre(g, from)

	switch dir {
	case grid.North:
		if row-1 >= 0 {
			rows[row-1][col] = '|'
		}
	case grid.South:
		if row+1 < len(rows) {
			rows[row+1][col] = '|'
		}
	case grid.East:
		for i := 1; i <= 3; i++ {
			if row < len(rows) && col+i < len(rows[row]) {
				rows[row][col+i] = '-'
			}
		}
	case grid.West:
		for i := 1; i <= 3; i++ {
			if row < len(rows) && col-i >= 0 {
				rows[row][col-i] = '-'
			}
		}
	}
}

func splitLines(s string) [][]byte {
	var rows [][]byte
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			row := make([]byte, i-start)
			copy(row, s[start:i])
			rows = append(rows, row)
			start = i + 1
		}
	}
	if start < len(s) {
		row := make([]byte, len(s)-start)
		copy(row, s[start:])
		rows = append(rows, row)
	}
	return rows
}

func joinLines(rows [][]byte) string {
	out := make([]byte, 0)
	for _, r := range rows {
		out = append(out, r...)
		out = append(out, '\n')
	}
	return string(out)
}

// PathLengthSize is the 2-byte big-endian length prefix a caller writes
// ahead of the path_cells section; PathToBuffer itself writes only the
// coordinate bytes.
const PathLengthSize = 2

// PathToBuffer writes, per cell in path order, the coordinate as two
// 16-bit big-endian integers (4 bytes per cell). The length prefix is the
// caller's responsibility, typically as part of a combined buffer.
func PathToBuffer(g *grid.Grid, path []int, buf []byte) (int, error) {
	need := 4 * len(path)
	if len(buf) < need {
		return 0, errors.Wrapf(grid.ErrBufferTooSmall, "need %d bytes, have %d", need, len(buf))
	}
	for i, cell := range path {
		coord := g.Cells[cell].Coord
		off := 4 * i
		binary.BigEndian.PutUint16(buf[off:off+2], coord.X)
		binary.BigEndian.PutUint16(buf[off+2:off+4], coord.Y)
	}
	return need, nil
}
