package ipuz

import "fmt"

// Label is the resolved meaning of one puzzle-grid entry: a block, an
// unnumbered square, or a clue number. Labels compare with ==.
type Label struct {
	kind   labelKind
	number uint16
}

type labelKind int

const (
	labelBlock labelKind = iota
	labelNone
	labelNumber
)

func blockLabel() Label          { return Label{kind: labelBlock} }
func noLabel() Label             { return Label{kind: labelNone} }
func numberLabel(n uint16) Label { return Label{kind: labelNumber, number: n} }

func (l Label) String() string {
	switch l.kind {
	case labelBlock:
		return "block"
	case labelNone:
		return "no label"
	default:
		return fmt.Sprintf("#%d", l.number)
	}
}

// RowCountError reports a grid with the wrong number of rows. Catastrophic:
// later checks index by the declared dimensions.
type RowCountError struct {
	Height int
	Actual int
}

func (e *RowCountError) Error() string {
	return fmt.Sprintf("grid is height %d, but found %d rows", e.Height, e.Actual)
}

// ColumnCountError reports a row with the wrong number of entries. Also
// catastrophic.
type ColumnCountError struct {
	Row    int
	Width  int
	Actual int
}

func (e *ColumnCountError) Error() string {
	return fmt.Sprintf("grid is width %d, but row %d is length %d", e.Width, e.Row, e.Actual)
}

// SolutionItemError reports a solution entry that is neither the block
// marker nor a string.
type SolutionItemError struct {
	Row    int
	Col    int
	Block  Value
	Actual Value
}

func (e *SolutionItemError) Error() string {
	return fmt.Sprintf("invalid solution item at %d,%d: expected string or block (%s), but found %s",
		e.Row, e.Col, e.Block, e.Actual)
}

// NumberingError reports a puzzle label that disagrees with the numbering
// derived from the solution's wall layout.
type NumberingError struct {
	Row      int
	Col      int
	Expected Label
	Actual   Label
}

func (e *NumberingError) Error() string {
	return fmt.Sprintf("invalid numbering at %d,%d: expected %s but found %s",
		e.Row, e.Col, e.Expected, e.Actual)
}

// CellLabelError wraps a label that could not be resolved at all.
type CellLabelError struct {
	Row int
	Col int
	Err error
}

func (e *CellLabelError) Error() string {
	return fmt.Sprintf("error in labeled cell at %d,%d: %v", e.Row, e.Col, e.Err)
}

func (e *CellLabelError) Unwrap() error { return e.Err }

// StringLabelError reports a string label, which the format allows but this
// implementation does not support.
type StringLabelError struct {
	Value string
}

func (e *StringLabelError) Error() string {
	return fmt.Sprintf("string labels are unsupported (found %q)", e.Value)
}

// NumberRangeError reports a numeric label outside the numbering width.
type NumberRangeError struct {
	Value int
}

func (e *NumberRangeError) Error() string {
	return fmt.Sprintf("numeric label is out of supported range (found %d)", e.Value)
}
