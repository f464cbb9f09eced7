package puzzle

import "fmt"

// GridLengthError reports a grid whose cell count does not match the
// declared dimensions. It is catastrophic: every later check indexes the
// grid by width and height, so validation stops here.
type GridLengthError struct {
	Expected int
	Actual   int
}

func (e *GridLengthError) Error() string {
	return fmt.Sprintf("expected exactly %d grid entries (width * height), found %d", e.Expected, e.Actual)
}

// GridSizeError reports a zero width or height. Also catastrophic.
type GridSizeError struct {
	Width  uint8
	Height uint8
}

func (e *GridSizeError) Error() string {
	return fmt.Sprintf("invalid grid size %dx%d: width and height must each be at least 1", e.Width, e.Height)
}

// TooManyRebusesError reports a grid with more distinct rebus strings than
// the binary format's rebus table can index.
type TooManyRebusesError struct {
	Count int
}

func (e *TooManyRebusesError) Error() string {
	return fmt.Sprintf("found %d distinct rebus entries, at most %d are supported", e.Count, maxRebusEntries)
}

// ClueCountError reports a clue list whose length does not match the number
// of run starts in the grid.
type ClueCountError struct {
	Expected int
	Actual   int
}

func (e *ClueCountError) Error() string {
	return fmt.Sprintf("expected %d clues, found %d", e.Expected, e.Actual)
}

// MisorderedCluesError reports a clue list whose numbers are not strictly
// increasing.
type MisorderedCluesError struct{}

func (e *MisorderedCluesError) Error() string {
	return "found misordered clues. Clue numbers must be strictly increasing"
}

// MissingClueError reports a grid number with no matching clue.
type MissingClueError struct {
	Number uint16
}

func (e *MissingClueError) Error() string {
	return fmt.Sprintf("missing clue #%d", e.Number)
}

// ExtraClueError reports a clue with no matching grid number.
type ExtraClueError struct {
	Number uint16
}

func (e *ExtraClueError) Error() string {
	return fmt.Sprintf("found extraneous clue #%d", e.Number)
}
