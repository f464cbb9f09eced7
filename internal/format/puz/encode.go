package puz

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/charmap"

	"xword/internal/puzzle"
)

// Version is the 4-byte tag written to the header. It selects the character
// encoding for every text field in the file.
type Version [4]byte

var (
	// V12 is format version 1.2: text fields are Windows-1252.
	V12 = Version{'1', '.', '2', 0}
	// V20 is format version 2.0: text fields are UTF-8. Otherwise identical
	// to 1.2 as far as observed files show.
	V20 = Version{'2', '.', '0', 0}
)

// wallByte marks a blocked cell in both the solution and shape planes.
const wallByte = '.'

// emptyFillByte stands in for an unfilled square in the solution plane. The
// format gives no letter for this case; 'A' matches files seen in the wild
// but should not be treated as a frozen contract.
const emptyFillByte = 'A'

// EncodingError reports a text field whose content cannot be represented in
// the selected output encoding. It names the field rather than an offset:
// the underlying encoder does not expose positions.
type EncodingError struct {
	Field string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("field %q contains characters unrepresentable in the output encoding", e.Field)
}

// textEncoder converts one UTF-8 string into the file's character encoding.
type textEncoder func(s string) ([]byte, error)

func encoderFor(v Version) (textEncoder, error) {
	switch v {
	case V12:
		enc := charmap.Windows1252.NewEncoder()
		return func(s string) ([]byte, error) { return enc.Bytes([]byte(s)) }, nil
	case V20:
		return func(s string) ([]byte, error) { return []byte(s), nil }, nil
	}
	return nil, fmt.Errorf("unsupported version tag %q", v[:])
}

// preserialized holds the crossword's data re-expressed as the byte planes
// and encoded strings that appear in the file, ready for checksumming.
type preserialized struct {
	width     uint8
	height    uint8
	solution  []byte
	shape     []byte
	clues     [][]byte
	title     []byte
	author    []byte
	copyright []byte
	notes     []byte
	version   Version
}

// lines returns the NUL-terminated text fields in emission order.
func (p *preserialized) lines() [][]byte {
	out := make([][]byte, 0, len(p.clues)+4)
	out = append(out, p.title, p.author, p.copyright)
	out = append(out, p.clues...)
	return append(out, p.notes)
}

// metaChecksum chains the text fields into sum. Title, author, copyright and
// notes are hashed with a synthetic trailing NUL when non-empty; clue texts
// are hashed without one.
func (p *preserialized) metaChecksum(sum uint16) uint16 {
	for _, field := range [][]byte{p.title, p.author, p.copyright} {
		if len(field) > 0 {
			sum = checksum(field, sum)
			sum = checksum([]byte{0}, sum)
		}
	}
	for _, clue := range p.clues {
		sum = checksum(clue, sum)
	}
	if len(p.notes) > 0 {
		sum = checksum(p.notes, sum)
		sum = checksum([]byte{0}, sum)
	}
	return sum
}

func preserialize(cw *puzzle.Crossword, v Version) (*preserialized, error) {
	encode, err := encoderFor(v)
	if err != nil {
		return nil, err
	}
	encodeField := func(s, field string) ([]byte, error) {
		out, err := encode(s)
		if err != nil {
			return nil, &EncodingError{Field: field}
		}
		return out, nil
	}

	grid := cw.Grid()
	solution := make([]byte, 0, len(grid.Cells))
	shape := make([]byte, 0, len(grid.Cells))
	for _, c := range grid.Cells {
		switch c.Kind() {
		case puzzle.CellWall:
			solution = append(solution, wallByte)
			shape = append(shape, wallByte)
			continue
		case puzzle.CellEmpty:
			solution = append(solution, emptyFillByte)
		default:
			solution = append(solution, c.Text()[0])
		}
		shape = append(shape, '-')
	}

	merged := mergeClues(cw.AcrossClues(), cw.DownClues())
	clues := make([][]byte, 0, len(merged))
	for _, mc := range merged {
		enc, err := encodeField(mc.text, mc.field)
		if err != nil {
			return nil, err
		}
		clues = append(clues, enc)
	}

	p := &preserialized{
		width:    cw.Width(),
		height:   cw.Height(),
		solution: solution,
		shape:    shape,
		clues:    clues,
		version:  v,
	}
	if p.title, err = encodeField(cw.Title(), "title"); err != nil {
		return nil, err
	}
	if p.author, err = encodeField(cw.Author(), "author"); err != nil {
		return nil, err
	}
	if p.copyright, err = encodeField(cw.Copyright(), "copyright"); err != nil {
		return nil, err
	}
	if p.notes, err = encodeField(cw.Notes(), "notes"); err != nil {
		return nil, err
	}
	return p, nil
}

// mergedClue carries one clue through serialization along with the field
// name used if its text fails to encode.
type mergedClue struct {
	text  string
	field string
}

// mergeClues interleaves the two pre-sorted lists into a single sequence
// ascending by number. The file stores clue text only; readers re-derive the
// numbers from the grid, so order is the contract. Across wins number ties.
func mergeClues(across, down []puzzle.Clue) []mergedClue {
	out := make([]mergedClue, 0, len(across)+len(down))
	i, j := 0, 0
	for i < len(across) || j < len(down) {
		if j >= len(down) || (i < len(across) && across[i].Number <= down[j].Number) {
			c := across[i]
			i++
			out = append(out, mergedClue{text: c.Text, field: fmt.Sprintf("clue %dA", c.Number)})
		} else {
			c := down[j]
			j++
			out = append(out, mergedClue{text: c.Text, field: fmt.Sprintf("clue %dD", c.Number)})
		}
	}
	return out
}

// Encode serializes a validated crossword into the legacy binary layout,
// byte-exact against known-good files.
func Encode(cw *puzzle.Crossword, v Version) ([]byte, error) {
	p, err := preserialize(cw, v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Write(packHeader(p))
	buf.Write(p.solution)
	buf.Write(p.shape)
	for _, line := range p.lines() {
		buf.Write(line)
		buf.WriteByte(0)
	}
	buf.Write(rebusSections(cw.Grid()))
	return buf.Bytes(), nil
}
