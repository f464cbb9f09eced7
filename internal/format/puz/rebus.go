package puz

import (
	"encoding/binary"
	"fmt"

	"xword/internal/puzzle"
)

// rebusSections builds the two optional extension sections, or nil when the
// grid holds no rebus cells. GRBS carries one byte per cell: 0 for non-rebus
// squares, else the 1-based index of the cell's entry in the word table.
// RTBL carries the distinct rebus strings in first-seen order as
// "%2d:%s;" entries keyed from 0. Validation caps distinct entries at 99, so
// both the byte index and the two-digit key always fit.
func rebusSections(grid puzzle.Grid) []byte {
	indexes := make([]byte, 0, len(grid.Cells))
	var words []byte
	seen := make(map[string]byte)
	for _, c := range grid.Cells {
		if c.Kind() != puzzle.CellRebus {
			indexes = append(indexes, 0)
			continue
		}
		idx, ok := seen[c.Text()]
		if !ok {
			words = append(words, fmt.Sprintf("%2d:%s;", len(seen), c.Text())...)
			idx = byte(len(seen) + 1)
			seen[c.Text()] = idx
		}
		indexes = append(indexes, idx)
	}
	if len(seen) == 0 {
		return nil
	}

	out := extraSection([4]byte{'G', 'R', 'B', 'S'}, indexes)
	return append(out, extraSection([4]byte{'R', 'T', 'B', 'L'}, words)...)
}

// extraSection wraps raw section bytes in the common extension envelope:
// 4-byte tag, little-endian length, little-endian checksum of the bytes, the
// bytes themselves, and a trailing NUL.
func extraSection(tag [4]byte, data []byte) []byte {
	out := make([]byte, 0, len(data)+9)
	out = append(out, tag[:]...)
	out = binary.LittleEndian.AppendUint16(out, uint16(len(data)))
	out = binary.LittleEndian.AppendUint16(out, checksum(data, 0))
	out = append(out, data...)
	return append(out, 0)
}
