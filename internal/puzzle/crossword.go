package puzzle

import "slices"

// maxRebusEntries is the most distinct rebus strings a puzzle may use. The
// binary format's rebus table indexes entries with a two-digit key, so the
// cap is enforced here, before any codec runs.
const maxRebusEntries = 99

// Args is the unvalidated construction input for a crossword: dimensions, a
// row-major flat cell slice of length Width*Height, the two ordered clue
// lists, and free-text metadata.
type Args struct {
	Width  uint8
	Height uint8
	Grid   []Cell

	AcrossClues []Clue
	DownClues   []Clue

	Title     string
	Author    string
	Copyright string
	Notes     string
}

// Crossword is a validated puzzle. It is immutable: the only ways to obtain
// one are Args.Validate and the ipuz decoder, and both re-derive numbering
// from the grid rather than trusting the caller.
type Crossword struct {
	width  uint8
	height uint8
	grid   []Cell

	acrossClues []Clue
	downClues   []Clue

	title     string
	author    string
	copyright string
	notes     string
}

// Validate checks the args and returns the immutable crossword, or a
// *MultiError describing every problem found. A grid whose length does not
// match the declared dimensions (or a zero dimension) is catastrophic and
// short-circuits: nothing else can safely index the grid.
func (a Args) Validate() (*Crossword, error) {
	issues := NewMultiError()

	want := int(a.Width) * int(a.Height)
	if len(a.Grid) != want {
		issues.Insert("grid", &GridLengthError{Expected: want, Actual: len(a.Grid)})
		return nil, issues
	}
	if a.Width == 0 || a.Height == 0 {
		issues.Insert("grid", &GridSizeError{Width: a.Width, Height: a.Height})
		return nil, issues
	}

	if n := countDistinctRebuses(a.Grid); n > maxRebusEntries {
		issues.Insert("grid", &TooManyRebusesError{Count: n})
	}

	grid := Grid{Width: int(a.Width), Height: int(a.Height), Cells: a.Grid}
	across, down := grid.ExpectedNums()
	if err := ValidateClues(across, a.AcrossClues); err != nil {
		issues.Insert("across_clues", err)
	}
	if err := ValidateClues(down, a.DownClues); err != nil {
		issues.Insert("down_clues", err)
	}

	if !issues.Empty() {
		return nil, issues
	}
	return &Crossword{
		width:       a.Width,
		height:      a.Height,
		grid:        slices.Clone(a.Grid),
		acrossClues: slices.Clone(a.AcrossClues),
		downClues:   slices.Clone(a.DownClues),
		title:       a.Title,
		author:      a.Author,
		copyright:   a.Copyright,
		notes:       a.Notes,
	}, nil
}

func countDistinctRebuses(cells []Cell) int {
	seen := make(map[string]struct{})
	for _, c := range cells {
		if c.Kind() == CellRebus {
			seen[c.Text()] = struct{}{}
		}
	}
	return len(seen)
}

// Width returns the grid width in cells.
func (c *Crossword) Width() uint8 { return c.width }

// Height returns the grid height in cells.
func (c *Crossword) Height() uint8 { return c.height }

// Grid returns a read-only numbering view over the cells.
func (c *Crossword) Grid() Grid {
	return Grid{Width: int(c.width), Height: int(c.height), Cells: c.grid}
}

// AcrossClues returns a copy of the ordered across clue list.
func (c *Crossword) AcrossClues() []Clue { return slices.Clone(c.acrossClues) }

// DownClues returns a copy of the ordered down clue list.
func (c *Crossword) DownClues() []Clue { return slices.Clone(c.downClues) }

// Title returns the puzzle title.
func (c *Crossword) Title() string { return c.title }

// Author returns the puzzle author.
func (c *Crossword) Author() string { return c.author }

// Copyright returns the copyright line.
func (c *Crossword) Copyright() string { return c.copyright }

// Notes returns the free-text notes.
func (c *Crossword) Notes() string { return c.notes }
