// Package puzzle defines the in-memory crossword model and its validation.
//
// A crossword starts life as an Args value populated by the caller. Validate
// checks the declared clue lists against the numbering implied by the grid's
// wall layout and, on success, produces an immutable Crossword that the
// format codecs consume. All structural problems are reported together in a
// MultiError rather than one at a time.
package puzzle
