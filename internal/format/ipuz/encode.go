package ipuz

import (
	"encoding/json"

	"xword/internal/puzzle"
)

// Encode serializes a validated crossword as ipuz JSON using the default
// block ("#") and empty (0) markers. Walls appear bare in the puzzle grid;
// every other label is wrapped as {"cell": n}.
func Encode(cw *puzzle.Crossword) ([]byte, error) {
	grid := cw.Grid()
	block := defaultBlock()
	empty := defaultEmpty()

	flat := make([]labeledCell, 0, len(grid.Cells))
	for _, nc := range grid.Numbered() {
		switch {
		case nc.Wall:
			flat = append(flat, labeledCell{value: block})
		case nc.Number == 0:
			flat = append(flat, labeledCell{value: empty, wrapped: true})
		default:
			flat = append(flat, labeledCell{value: Number(int(nc.Number)), wrapped: true})
		}
	}

	solution := make([]Value, 0, len(grid.Cells))
	for _, c := range grid.Cells {
		if c.IsWall() {
			solution = append(solution, block)
			continue
		}
		solution = append(solution, String(c.Text()))
	}

	width := int(cw.Width())
	doc := document{
		Version:   formatVersion,
		Kind:      []string{crosswordKind},
		Title:     cw.Title(),
		Copyright: cw.Copyright(),
		Author:    cw.Author(),
		Notes:     cw.Notes(),
		Dimensions: dimensions{
			Width:  cw.Width(),
			Height: cw.Height(),
		},
		Block:    &block,
		Empty:    &empty,
		Puzzle:   chunkRows(flat, width),
		Solution: chunkRows(solution, width),
		Clues: clueLists{
			Across: fromClues(cw.AcrossClues()),
			Down:   fromClues(cw.DownClues()),
		},
	}
	return json.Marshal(doc)
}

func chunkRows[T any](flat []T, width int) [][]T {
	rows := make([][]T, 0, len(flat)/width)
	for i := 0; i < len(flat); i += width {
		rows = append(rows, flat[i:i+width])
	}
	return rows
}
