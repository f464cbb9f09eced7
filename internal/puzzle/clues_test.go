package puzzle_test

import (
	"errors"
	"testing"

	"xword/internal/puzzle"
)

func clues(nums ...uint16) []puzzle.Clue {
	out := make([]puzzle.Clue, len(nums))
	for i, n := range nums {
		out[i] = puzzle.Clue{Number: n, Text: "x"}
	}
	return out
}

func TestValidateClues_OK(t *testing.T) {
	if err := puzzle.ValidateClues([]uint16{1, 2, 5}, clues(1, 2, 5)); err != nil {
		t.Fatalf("ValidateClues: %v", err)
	}
	if err := puzzle.ValidateClues(nil, nil); err != nil {
		t.Fatalf("ValidateClues(empty): %v", err)
	}
}

func TestValidateClues_MisorderedWinsOverCount(t *testing.T) {
	// The list is both misordered and too short relative to expected; the
	// ordering check runs first and wins.
	err := puzzle.ValidateClues([]uint16{1, 2, 3}, clues(1, 3, 2))
	var misordered *puzzle.MisorderedCluesError
	if !errors.As(err, &misordered) {
		t.Fatalf("got %v, want MisorderedCluesError", err)
	}

	err = puzzle.ValidateClues([]uint16{1, 2, 3, 4}, clues(3, 1))
	if !errors.As(err, &misordered) {
		t.Fatalf("got %v, want MisorderedCluesError despite length mismatch", err)
	}
}

func TestValidateClues_CountMismatch(t *testing.T) {
	err := puzzle.ValidateClues([]uint16{1, 2, 3}, clues(1, 2))
	var count *puzzle.ClueCountError
	if !errors.As(err, &count) {
		t.Fatalf("got %v, want ClueCountError", err)
	}
	if count.Expected != 3 || count.Actual != 2 {
		t.Fatalf("got expected=%d actual=%d, want 3/2", count.Expected, count.Actual)
	}
}

func TestValidateClues_MissingClue(t *testing.T) {
	err := puzzle.ValidateClues([]uint16{1, 2}, clues(1, 3))
	var missing *puzzle.MissingClueError
	if !errors.As(err, &missing) {
		t.Fatalf("got %v, want MissingClueError", err)
	}
	if missing.Number != 2 {
		t.Fatalf("got missing #%d, want #2", missing.Number)
	}
}

func TestValidateClues_ExtraClue(t *testing.T) {
	err := puzzle.ValidateClues([]uint16{2}, clues(1))
	var extra *puzzle.ExtraClueError
	if !errors.As(err, &extra) {
		t.Fatalf("got %v, want ExtraClueError", err)
	}
	if extra.Number != 1 {
		t.Fatalf("got extraneous #%d, want #1", extra.Number)
	}
}
