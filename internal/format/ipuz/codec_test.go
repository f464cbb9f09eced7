package ipuz_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xword/internal/format/ipuz"
	"xword/internal/puzzle"
)

func mustValidate(t *testing.T, args puzzle.Args) *puzzle.Crossword {
	t.Helper()
	cw, err := args.Validate()
	require.NoError(t, err)
	return cw
}

func asMulti(t *testing.T, err error) *puzzle.MultiError {
	t.Helper()
	var multi *puzzle.MultiError
	require.ErrorAs(t, err, &multi)
	return multi
}

func TestRoundTrip(t *testing.T) {
	args := puzzle.Args{
		Width:  3,
		Height: 2,
		Grid: []puzzle.Cell{
			puzzle.Rebus("ON"), puzzle.Letter('B'), puzzle.Wall(),
			puzzle.Empty(), puzzle.Letter('D'), puzzle.Letter('E'),
		},
		Title:     "round trip",
		Author:    "anon",
		Copyright: "none",
		Notes:     "a note",
	}
	grid := puzzle.Grid{Width: 3, Height: 2, Cells: args.Grid}
	across, down := grid.ExpectedNums()
	for _, n := range across {
		args.AcrossClues = append(args.AcrossClues, puzzle.Clue{Number: n, Text: "across"})
	}
	for _, n := range down {
		args.DownClues = append(args.DownClues, puzzle.Clue{Number: n, Text: "down"})
	}
	cw := mustValidate(t, args)

	data, err := ipuz.Encode(cw)
	require.NoError(t, err)

	got, err := ipuz.Decode(data)
	require.NoError(t, err)

	assert.Equal(t, cw.Width(), got.Width())
	assert.Equal(t, cw.Height(), got.Height())
	assert.Equal(t, cw.Grid().Cells, got.Grid().Cells)
	assert.Equal(t, cw.AcrossClues(), got.AcrossClues())
	assert.Equal(t, cw.DownClues(), got.DownClues())
	assert.Equal(t, cw.Title(), got.Title())
	assert.Equal(t, cw.Author(), got.Author())
	assert.Equal(t, cw.Copyright(), got.Copyright())
	assert.Equal(t, cw.Notes(), got.Notes())

	// Re-encoding the decoded puzzle reproduces the bytes exactly.
	again, err := ipuz.Encode(got)
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

const validDoc = `{
	"version": "http://ipuz.org/v1",
	"kind": ["http://ipuz.org/crossword#1"],
	"title": "t", "copyright": "", "author": "a", "notes": "",
	"dimensions": {"width": 2, "height": 2},
	"block": "#", "empty": 0,
	"puzzle": [[{"cell": 1}, {"cell": 0}], [{"cell": 0}, "#"]],
	"solution": [["A", "B"], ["C", "#"]],
	"clues": {"Across": [[1, "across one"]], "Down": [[1, "down one"]]}
}`

func TestDecode_ValidDocument(t *testing.T) {
	cw, err := ipuz.Decode([]byte(validDoc))
	require.NoError(t, err)

	assert.Equal(t, uint8(2), cw.Width())
	assert.Equal(t, []puzzle.Cell{
		puzzle.Letter('A'), puzzle.Letter('B'),
		puzzle.Letter('C'), puzzle.Wall(),
	}, cw.Grid().Cells)
	assert.Equal(t, []puzzle.Clue{{Number: 1, Text: "across one"}}, cw.AcrossClues())
	assert.Equal(t, []puzzle.Clue{{Number: 1, Text: "down one"}}, cw.DownClues())
	assert.Equal(t, "t", cw.Title())
}

func TestDecode_BareLabelsAccepted(t *testing.T) {
	// Labels may appear bare instead of wrapped in {"cell": ...}.
	doc := `{
		"version": "http://ipuz.org/v1",
		"kind": ["http://ipuz.org/crossword#1"],
		"title": "", "copyright": "", "author": "", "notes": "",
		"dimensions": {"width": 2, "height": 2},
		"puzzle": [[1, 0], [0, "#"]],
		"solution": [["A", "B"], ["C", "#"]],
		"clues": {"Across": [[1, "a"]], "Down": [[1, "d"]]}
	}`
	_, err := ipuz.Decode([]byte(doc))
	assert.NoError(t, err)
}

func TestDecode_DefaultMarkersWhenOmitted(t *testing.T) {
	// The valid document minus block/empty decodes the same way.
	doc := `{
		"version": "http://ipuz.org/v1",
		"kind": ["http://ipuz.org/crossword#1"],
		"title": "", "copyright": "", "author": "", "notes": "",
		"dimensions": {"width": 2, "height": 2},
		"puzzle": [[{"cell": 1}, {"cell": 0}], [{"cell": 0}, "#"]],
		"solution": [["A", "B"], ["C", "#"]],
		"clues": {"Across": [[1, "a"]], "Down": [[1, "d"]]}
	}`
	cw, err := ipuz.Decode([]byte(doc))
	require.NoError(t, err)
	assert.True(t, cw.Grid().Cells[3].IsWall())
}

func TestDecode_CustomMarkers(t *testing.T) {
	doc := `{
		"version": "http://ipuz.org/v1",
		"kind": ["http://ipuz.org/crossword#1"],
		"title": "", "copyright": "", "author": "", "notes": "",
		"dimensions": {"width": 2, "height": 2},
		"block": "@", "empty": -1,
		"puzzle": [[{"cell": 1}, {"cell": -1}], [{"cell": -1}, "@"]],
		"solution": [["A", "B"], ["C", "@"]],
		"clues": {"Across": [[1, "a"]], "Down": [[1, "d"]]}
	}`
	cw, err := ipuz.Decode([]byte(doc))
	require.NoError(t, err)
	assert.True(t, cw.Grid().Cells[3].IsWall())
}

func TestDecode_SizeMismatchShortCircuits(t *testing.T) {
	// The puzzle grid has the wrong row count AND the clues are misordered;
	// only the size error surfaces because nothing else can index the grid.
	doc := `{
		"version": "http://ipuz.org/v1",
		"kind": ["http://ipuz.org/crossword#1"],
		"title": "", "copyright": "", "author": "", "notes": "",
		"dimensions": {"width": 2, "height": 2},
		"puzzle": [[{"cell": 1}, {"cell": 0}]],
		"solution": [["A", "B"], ["C", "#"]],
		"clues": {"Across": [[3, "x"], [1, "y"]], "Down": [[1, "d"]]}
	}`
	_, err := ipuz.Decode([]byte(doc))
	multi := asMulti(t, err)

	require.Equal(t, 1, multi.Len(), "sections: %v", multi.SectionNames())
	var rows *ipuz.RowCountError
	require.ErrorAs(t, multi.Section("puzzle"), &rows)
	assert.Equal(t, 2, rows.Height)
	assert.Equal(t, 1, rows.Actual)
}

func TestDecode_ColumnCountError(t *testing.T) {
	doc := `{
		"version": "http://ipuz.org/v1",
		"kind": ["http://ipuz.org/crossword#1"],
		"title": "", "copyright": "", "author": "", "notes": "",
		"dimensions": {"width": 2, "height": 2},
		"puzzle": [[{"cell": 1}, {"cell": 0}], [{"cell": 0}, "#"]],
		"solution": [["A", "B", "X"], ["C", "#"]],
		"clues": {"Across": [[1, "a"]], "Down": [[1, "d"]]}
	}`
	_, err := ipuz.Decode([]byte(doc))
	multi := asMulti(t, err)

	var cols *ipuz.ColumnCountError
	require.ErrorAs(t, multi.Section("solution"), &cols)
	assert.Equal(t, 0, cols.Row)
	assert.Equal(t, 3, cols.Actual)
}

func TestDecode_InvalidSolutionItem(t *testing.T) {
	doc := `{
		"version": "http://ipuz.org/v1",
		"kind": ["http://ipuz.org/crossword#1"],
		"title": "", "copyright": "", "author": "", "notes": "",
		"dimensions": {"width": 2, "height": 2},
		"puzzle": [[{"cell": 1}, {"cell": 0}], [{"cell": 0}, "#"]],
		"solution": [["A", 5], ["C", "#"]],
		"clues": {"Across": [[1, "a"]], "Down": [[1, "d"]]}
	}`
	_, err := ipuz.Decode([]byte(doc))
	multi := asMulti(t, err)

	var item *ipuz.SolutionItemError
	require.ErrorAs(t, multi.Section("solution"), &item)
	assert.Equal(t, 0, item.Row)
	assert.Equal(t, 1, item.Col)
	assert.Equal(t, ipuz.Number(5), item.Actual)
}

func TestDecode_NumberingDivergence(t *testing.T) {
	// Label 2 at (0,1) disagrees with the computed numbering (no label).
	doc := `{
		"version": "http://ipuz.org/v1",
		"kind": ["http://ipuz.org/crossword#1"],
		"title": "", "copyright": "", "author": "", "notes": "",
		"dimensions": {"width": 2, "height": 2},
		"puzzle": [[{"cell": 1}, {"cell": 2}], [{"cell": 0}, "#"]],
		"solution": [["A", "B"], ["C", "#"]],
		"clues": {"Across": [[1, "a"]], "Down": [[1, "d"]]}
	}`
	_, err := ipuz.Decode([]byte(doc))
	multi := asMulti(t, err)

	var numbering *ipuz.NumberingError
	require.ErrorAs(t, multi.Section("puzzle"), &numbering)
	assert.Equal(t, 0, numbering.Row)
	assert.Equal(t, 1, numbering.Col)
	assert.Equal(t, "no label", numbering.Expected.String())
	assert.Equal(t, "#2", numbering.Actual.String())
}

func TestDecode_AggregatesNumberingAndClueErrors(t *testing.T) {
	// A numbering divergence and misordered across clues are reported
	// together in one pass.
	doc := `{
		"version": "http://ipuz.org/v1",
		"kind": ["http://ipuz.org/crossword#1"],
		"title": "", "copyright": "", "author": "", "notes": "",
		"dimensions": {"width": 2, "height": 2},
		"puzzle": [[{"cell": 1}, {"cell": 2}], [{"cell": 0}, "#"]],
		"solution": [["A", "B"], ["C", "#"]],
		"clues": {"Across": [[3, "x"], [1, "y"]], "Down": [[1, "d"]]}
	}`
	_, err := ipuz.Decode([]byte(doc))
	multi := asMulti(t, err)

	assert.Equal(t, []string{"clues.Across", "puzzle"}, multi.SectionNames())
	var misordered *puzzle.MisorderedCluesError
	assert.ErrorAs(t, multi.Section("clues.Across"), &misordered)
}

func TestDecode_StringLabelUnsupported(t *testing.T) {
	doc := `{
		"version": "http://ipuz.org/v1",
		"kind": ["http://ipuz.org/crossword#1"],
		"title": "", "copyright": "", "author": "", "notes": "",
		"dimensions": {"width": 2, "height": 2},
		"puzzle": [["one", {"cell": 0}], [{"cell": 0}, "#"]],
		"solution": [["A", "B"], ["C", "#"]],
		"clues": {"Across": [[1, "a"]], "Down": [[1, "d"]]}
	}`
	_, err := ipuz.Decode([]byte(doc))
	multi := asMulti(t, err)

	var label *ipuz.CellLabelError
	require.ErrorAs(t, multi.Section("puzzle"), &label)
	var str *ipuz.StringLabelError
	require.ErrorAs(t, label, &str)
	assert.Equal(t, "one", str.Value)
}

func TestDecode_NumericLabelOutOfRange(t *testing.T) {
	doc := `{
		"version": "http://ipuz.org/v1",
		"kind": ["http://ipuz.org/crossword#1"],
		"title": "", "copyright": "", "author": "", "notes": "",
		"dimensions": {"width": 2, "height": 2},
		"puzzle": [[{"cell": 70000}, {"cell": 0}], [{"cell": 0}, "#"]],
		"solution": [["A", "B"], ["C", "#"]],
		"clues": {"Across": [[1, "a"]], "Down": [[1, "d"]]}
	}`
	_, err := ipuz.Decode([]byte(doc))
	multi := asMulti(t, err)

	var label *ipuz.CellLabelError
	require.ErrorAs(t, multi.Section("puzzle"), &label)
	var rangeErr *ipuz.NumberRangeError
	require.ErrorAs(t, label, &rangeErr)
	assert.Equal(t, 70000, rangeErr.Value)
}

func TestDecode_RejectsWrongVersionOrKind(t *testing.T) {
	_, err := ipuz.Decode([]byte(`{"version": "http://ipuz.org/v2", "kind": ["http://ipuz.org/crossword#1"]}`))
	assert.Error(t, err)
	var multi *puzzle.MultiError
	assert.False(t, errors.As(err, &multi), "version mismatch is a hard error, not a MultiError")

	_, err = ipuz.Decode([]byte(`{"version": "http://ipuz.org/v1", "kind": ["http://ipuz.org/sudoku#1"]}`))
	assert.Error(t, err)
}

func TestDecode_MalformedJSON(t *testing.T) {
	_, err := ipuz.Decode([]byte(`{"version": `))
	assert.Error(t, err)
}

func TestDecode_EmptySolutionStringBecomesEmptyCell(t *testing.T) {
	doc := `{
		"version": "http://ipuz.org/v1",
		"kind": ["http://ipuz.org/crossword#1"],
		"title": "", "copyright": "", "author": "", "notes": "",
		"dimensions": {"width": 2, "height": 2},
		"puzzle": [[{"cell": 1}, {"cell": 2}], [{"cell": 3}, {"cell": 0}]],
		"solution": [["", "B"], ["CD", "E"]],
		"clues": {"Across": [[1, "a"], [3, "b"]], "Down": [[1, "c"], [2, "d"]]}
	}`
	cw, err := ipuz.Decode([]byte(doc))
	require.NoError(t, err)

	cells := cw.Grid().Cells
	assert.Equal(t, puzzle.CellEmpty, cells[0].Kind())
	assert.Equal(t, puzzle.CellLetter, cells[1].Kind())
	assert.Equal(t, puzzle.CellRebus, cells[2].Kind())
	assert.Equal(t, "CD", cells[2].Text())
}
