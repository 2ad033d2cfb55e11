package grid

import "strings"

// cellWidth and cellHeight are the character-grid dimensions of a single
// maze cell in Render's output: 4 columns (a leading wall-or-corner column
// plus 3 interior columns) and 2 rows (a north-wall row plus an
// interior/west-wall row), with one extra trailing row and column closing
// off the south-east border.
const (
	cellWidth  = 4
	cellHeight = 2
)

// Render draws the grid as a text maze: '+' at every corner, '-'/'|' where a
// wall blocks a side, spaces where a gap lets through, on a grid of
// (2*Rows+1) rows by (4*Cols+1) columns. This mirrors the original
// firmware's get_maze_string layout, so path overlays computed from the
// same cell-to-character formula land in the right place.
func (g *Grid) Render() string {
	height := cellHeight*g.Rows + 1
	width := cellWidth*g.Cols + 1

	canvas := make([][]byte, height)
	for i := range canvas {
		canvas[i] = bytes(width, ' ')
	}

	for y := 0; y <= g.Rows; y++ {
		for x := 0; x <= g.Cols; x++ {
			canvas[cellHeight*y][cellWidth*x] = '+'
		}
	}

	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			idx := y*g.Cols + x
			cell := g.Cells[idx]
			row, col := cellHeight*y, cellWidth*x

			if cell.Adjacent[North] == NoCell {
				for i := 1; i < cellWidth; i++ {
					canvas[row][col+i] = '-'
				}
			}
			if cell.Adjacent[West] == NoCell {
				canvas[row+1][col] = '|'
			}
		}
	}

	for y := 0; y < g.Rows; y++ {
		row := cellHeight*y + 1
		col := cellWidth * g.Cols
		idx := y*g.Cols + (g.Cols - 1)
		if g.Cells[idx].Adjacent[East] == NoCell {
			canvas[row][col] = '|'
		}
	}
	for x := 0; x < g.Cols; x++ {
		row := cellHeight * g.Rows
		col := cellWidth * x
		idx := (g.Rows-1)*g.Cols + x
		if g.Cells[idx].Adjacent[South] == NoCell {
			for i := 1; i < cellWidth; i++ {
				canvas[row][col+i] = '-'
			}
		}
	}

	var b strings.Builder
	for _, row := range canvas {
		b.Write(row)
		b.WriteByte('\n')
	}
	return b.String()
}

func bytes(n int, fill byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = fill
	}
	return b
}

// CellCentre returns the (row, col) character position of cellIdx's centre
// in a string produced by Render, the position Insert/overlay helpers
// target.
func CellCentre(g *Grid, cellIdx int) (row, col int) {
	coord := g.Cells[cellIdx].Coord
	return cellHeight*int(coord.Y) + 1, cellWidth*int(coord.X) + 2
}

// InsertNavigator returns rendered, a maze render produced by Render, with
// the navigator's current cell marked by a direction glyph (^ > v <) and
// the start/end cells marked S/E when they are not the current cell.
func InsertNavigator(rendered string, g *Grid, nav *Navigator) string {
	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")

	mark := func(cellIdx int, glyph byte) {
		if cellIdx == NoCell {
			return
		}
		row, col := CellCentre(g, cellIdx)
		if row >= len(lines) {
			return
		}
		line := []byte(lines[row])
		if col >= len(line) {
			return
		}
		line[col] = glyph
		lines[row] = string(line)
	}

	if nav.Start != nav.Current {
		mark(nav.Start, 'S')
	}
	if nav.End != nav.Current {
		mark(nav.End, 'E')
	}
	mark(nav.Current, navigatorGlyph(nav.Orientation))

	return strings.Join(lines, "\n") + "\n"
}

func navigatorGlyph(d CardinalDirection) byte {
	switch d {
	case North:
		return '^'
	case East:
		return '>'
	case South:
		return 'v'
	case West:
		return '<'
	default:
		return 'X'
	}
}
