package ipuz

import (
	"encoding/json"
	"fmt"
	"math"

	"xword/internal/puzzle"
)

// Decode parses ipuz JSON and revalidates the puzzle: both grids must match
// the declared dimensions, every label must agree with the numbering derived
// from the solution's walls, and both clue lists must match the expected
// sequences. All problems are accumulated into one *puzzle.MultiError,
// except that a wrong-sized grid short-circuits everything that would index
// it.
func Decode(data []byte) (*puzzle.Crossword, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse ipuz: %w", err)
	}
	if doc.Version != formatVersion {
		return nil, fmt.Errorf("unsupported ipuz version %q", doc.Version)
	}
	if len(doc.Kind) != 1 || doc.Kind[0] != crosswordKind {
		return nil, fmt.Errorf("unsupported ipuz kind %q", doc.Kind)
	}

	block := defaultBlock()
	if doc.Block != nil {
		block = *doc.Block
	}
	empty := defaultEmpty()
	if doc.Empty != nil {
		empty = *doc.Empty
	}

	issues := puzzle.NewMultiError()
	if err := checkDimensions(doc.Dimensions, doc.Puzzle); err != nil {
		issues.Insert("puzzle", err)
	}
	if err := checkDimensions(doc.Dimensions, doc.Solution); err != nil {
		issues.Insert("solution", err)
	}
	if !issues.Empty() {
		return nil, issues
	}

	width := int(doc.Dimensions.Width)
	cells := make([]puzzle.Cell, 0, width*int(doc.Dimensions.Height))
	for idx, v := range flatten(doc.Solution) {
		if v == block {
			cells = append(cells, puzzle.Wall())
			continue
		}
		if !v.IsString() {
			issues.Insert("solution", &SolutionItemError{
				Row:    idx / width,
				Col:    idx % width,
				Block:  block,
				Actual: v,
			})
			return nil, issues
		}
		cells = append(cells, puzzle.CellFromString(v.Str()))
	}

	grid := puzzle.Grid{Width: width, Height: int(doc.Dimensions.Height), Cells: cells}
	numbered := grid.Numbered()
	for idx, lc := range flatten(doc.Puzzle) {
		row, col := idx/width, idx%width
		actual, err := resolveLabel(lc.value, block, empty)
		if err != nil {
			issues.Insert("puzzle", &CellLabelError{Row: row, Col: col, Err: err})
			break
		}
		expected := labelOf(numbered[idx])
		if actual != expected {
			issues.Insert("puzzle", &NumberingError{Row: row, Col: col, Expected: expected, Actual: actual})
			break
		}
	}

	expAcross, expDown := grid.ExpectedNums()
	across := toClues(doc.Clues.Across)
	down := toClues(doc.Clues.Down)
	if err := puzzle.ValidateClues(expAcross, across); err != nil {
		issues.Insert("clues.Across", err)
	}
	if err := puzzle.ValidateClues(expDown, down); err != nil {
		issues.Insert("clues.Down", err)
	}
	if !issues.Empty() {
		return nil, issues
	}

	args := puzzle.Args{
		Width:       doc.Dimensions.Width,
		Height:      doc.Dimensions.Height,
		Grid:        cells,
		AcrossClues: across,
		DownClues:   down,
		Title:       doc.Title,
		Author:      doc.Author,
		Copyright:   doc.Copyright,
		Notes:       doc.Notes,
	}
	return args.Validate()
}

func checkDimensions[T any](dim dimensions, rows [][]T) error {
	if len(rows) != int(dim.Height) {
		return &RowCountError{Height: int(dim.Height), Actual: len(rows)}
	}
	for i, row := range rows {
		if len(row) != int(dim.Width) {
			return &ColumnCountError{Row: i, Width: int(dim.Width), Actual: len(row)}
		}
	}
	return nil
}

func flatten[T any](rows [][]T) []T {
	var flat []T
	for _, row := range rows {
		flat = append(flat, row...)
	}
	return flat
}

// resolveLabel maps a raw label value to its meaning. Marker comparisons win
// over type checks, so a numeric block or empty marker still matches.
func resolveLabel(v, block, empty Value) (Label, error) {
	switch v {
	case block:
		return blockLabel(), nil
	case empty:
		return noLabel(), nil
	}
	if v.IsString() {
		return Label{}, &StringLabelError{Value: v.Str()}
	}
	if v.Num() < 0 || v.Num() > math.MaxUint16 {
		return Label{}, &NumberRangeError{Value: v.Num()}
	}
	return numberLabel(uint16(v.Num())), nil
}

func labelOf(nc puzzle.NumberedCell) Label {
	switch {
	case nc.Wall:
		return blockLabel()
	case nc.Number == 0:
		return noLabel()
	default:
		return numberLabel(nc.Number)
	}
}
