package puzzle

// CellKind discriminates the closed set of cell variants.
type CellKind int

const (
	// CellEmpty is a fillable square with no content yet.
	CellEmpty CellKind = iota
	// CellLetter holds a single character of fill.
	CellLetter
	// CellRebus holds two or more characters in one logical square.
	CellRebus
	// CellWall is a blocked square; runs never pass through it.
	CellWall
)

// Cell is one square of a crossword grid.
type Cell struct {
	kind CellKind
	text string
}

// Wall returns a blocked cell.
func Wall() Cell { return Cell{kind: CellWall} }

// Empty returns a fillable cell with no content.
func Empty() Cell { return Cell{kind: CellEmpty} }

// Letter returns a cell holding one character of fill.
func Letter(c byte) Cell { return Cell{kind: CellLetter, text: string(c)} }

// Rebus returns a cell holding a multi-character fill string.
func Rebus(s string) Cell { return Cell{kind: CellRebus, text: s} }

// CellFromString maps decoded fill text onto a cell. The empty string is an
// unfilled square, a single character is always a letter (never a rebus),
// and anything longer is a rebus.
func CellFromString(s string) Cell {
	switch len(s) {
	case 0:
		return Empty()
	case 1:
		return Letter(s[0])
	default:
		return Rebus(s)
	}
}

// Kind reports which variant the cell is.
func (c Cell) Kind() CellKind { return c.kind }

// Text returns the fill content; empty for walls and unfilled squares.
func (c Cell) Text() string { return c.text }

// IsWall reports whether the cell is blocked.
func (c Cell) IsWall() bool { return c.kind == CellWall }
