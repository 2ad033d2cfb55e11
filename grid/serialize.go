package grid

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// ErrBufferTooSmall is returned by every *ToBuffer function when the
// caller's buffer cannot hold the encoded form; no partial write is
// observable in that case.
var ErrBufferTooSmall = errors.New("grid: destination buffer too small")

// Serialise builds a gap-bitmask array of Rows*Cols entries, one per cell in
// storage order, each bit set iff the cell has an adjacency in that
// cardinal direction.
func (g *Grid) Serialise() []GapBitmask {
	out := make([]GapBitmask, len(g.Cells))
	for i, cell := range g.Cells {
		var m GapBitmask
		for d := North; d <= West; d++ {
			m = m.WithGap(d, cell.Adjacent[d] != NoCell)
		}
		out[i] = m
	}
	return out
}

// HeaderSize is the 4-byte {rows_hi, rows_lo, cols_hi, cols_lo} header that
// precedes the packed gap array.
const HeaderSize = 4

// GapBytes returns the number of bytes needed to pack rows*cols 4-bit gap
// values two to a byte: ceil(rows*cols/2).
func GapBytes(rows, cols int) int {
	return (rows*cols + 1) / 2
}

// SerialisedToBuffer packs a gap-bitmask array into buf: a 4-byte header
// (rows, cols as big-endian uint16 each) followed by ceil(R*C/2) bytes, each
// packing two consecutive cells as high_nibble=cell[2i], low_nibble=cell[2i+1].
func SerialisedToBuffer(bitmask []GapBitmask, rows, cols int, buf []byte) (int, error) {
	need := HeaderSize + GapBytes(rows, cols)
	if len(buf) < need {
		return 0, errors.Wrapf(ErrBufferTooSmall, "need %d bytes, have %d", need, len(buf))
	}

	binary.BigEndian.PutUint16(buf[0:2], uint16(rows))
	binary.BigEndian.PutUint16(buf[2:4], uint16(cols))

	off := HeaderSize
	for i := 0; i < len(bitmask); i += 2 {
		hi := byte(bitmask[i]) & 0x0F
		var lo byte
		if i+1 < len(bitmask) {
			lo = byte(bitmask[i+1]) & 0x0F
		}
		buf[off] = hi<<4 | lo
		off++
	}
	return need, nil
}

// Deserialise is the inverse of Serialise: for every cell, adjacency is set
// exactly to the bits in bitmask. Both sides of every adjacency are updated
// from the caller's data, so invariant 1 (symmetry) holds regardless of
// what the source grid looked like before the call.
func Deserialise(g *Grid, bitmask []GapBitmask) {
	for idx, mask := range bitmask {
		if idx >= len(g.Cells) {
			break
		}
		for d := North; d <= West; d++ {
			if mask.HasGap(d) {
				g.installAdjacency(idx, d)
			} else {
				g.removeAdjacency(idx, d)
			}
		}
	}
}

// NavBufferSize is the fixed wire size of NavToBuffer's output.
const NavBufferSize = 13

// NavToBuffer writes the navigator's 13-byte wire layout: current.x,
// current.y, orientation, start.x, start.y, end.x, then a final 16-bit
// field at offset 11 that repeats the orientation value instead of end.y.
//
// This replicates a quirk of the original firmware's wire format rather
// than fixing it: the last two bytes of the 13-byte record were always a
// second, redundant write of the orientation byte (widened to uint16), so
// end.y never actually reaches the wire in this layout. Per this project's
// resolution of that open question, the behavior is preserved as-is because
// the host decoder on the other end of the link is not under this
// implementer's control.
func NavToBuffer(nav *Navigator, g *Grid, buf []byte) (int, error) {
	if len(buf) < NavBufferSize {
		return 0, errors.Wrapf(ErrBufferTooSmall, "need %d bytes, have %d", NavBufferSize, len(buf))
	}

	cur := g.Cells[nav.Current].Coord
	start := g.Cells[nav.Start].Coord
	end := g.Cells[nav.End].Coord

	binary.BigEndian.PutUint16(buf[0:2], cur.X)
	binary.BigEndian.PutUint16(buf[2:4], cur.Y)
	buf[4] = byte(nav.Orientation)
	binary.BigEndian.PutUint16(buf[5:7], start.X)
	binary.BigEndian.PutUint16(buf[7:9], start.Y)
	binary.BigEndian.PutUint16(buf[9:11], end.X)
	// Offset 11-12: redundant orientation write, widened to uint16. end.y
	// is intentionally not encoded here; see the doc comment above.
	binary.BigEndian.PutUint16(buf[11:13], uint16(nav.Orientation))

	return NavBufferSize, nil
}
