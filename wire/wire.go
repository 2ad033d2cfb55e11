// Package wire implements the combined on-the-wire packaging of a grid, a
// planned path, and navigator state into a single buffer, as used when
// relaying a run's state over a transport link.
package wire

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/forcelightning/mazebot/astar"
	"github.com/forcelightning/mazebot/grid"
)

// CombinedSize returns the total byte length CombinedToBuffer will write
// for a grid of the given dimensions and a path of pathLength cells:
// maze_header(4) + maze_gaps(ceil(R*C/2)) + path_length(2) +
// path_cells(4*pathLength) + navigator(13).
func CombinedSize(rows, cols, pathLength int) int {
	return grid.HeaderSize + grid.GapBytes(rows, cols) + astar.PathLengthSize +
		4*pathLength + grid.NavBufferSize
}

// CombinedToBuffer packs g, path, and nav into buf in the order: maze
// header, packed gap nibbles, a 2-byte big-endian path length, the path's
// cell coordinates, and the 13-byte navigator record. It returns the
// number of bytes written, or an error if buf is smaller than CombinedSize
// reports; no partial write is observable in that case.
func CombinedToBuffer(g *grid.Grid, path []int, nav *grid.Navigator, buf []byte) (int, error) {
	need := CombinedSize(g.Rows, g.Cols, len(path))
	if len(buf) < need {
		return 0, errors.Wrapf(grid.ErrBufferTooSmall, "need %d bytes, have %d", need, len(buf))
	}

	off := 0

	n, err := grid.SerialisedToBuffer(g.Serialise(), g.Rows, g.Cols, buf[off:])
	if err != nil {
		return 0, errors.Wrap(err, "writing maze header and gaps")
	}
	off += n

	binary.BigEndian.PutUint16(buf[off:off+astar.PathLengthSize], uint16(len(path)))
	off += astar.PathLengthSize

	n, err = astar.PathToBuffer(g, path, buf[off:])
	if err != nil {
		return 0, errors.Wrap(err, "writing path cells")
	}
	off += n

	n, err = grid.NavToBuffer(nav, g, buf[off:])
	if err != nil {
		return 0, errors.Wrap(err, "writing navigator record")
	}
	off += n

	return off, nil
}
