package ipuz

import (
	"encoding/json"
	"fmt"

	"xword/internal/puzzle"
)

const (
	formatVersion = "http://ipuz.org/v1"
	crosswordKind = "http://ipuz.org/crossword#1"
)

func defaultBlock() Value { return String("#") }
func defaultEmpty() Value { return Number(0) }

// document mirrors the JSON layout directly. It is the serde layer: nothing
// here is validated or convenient to manipulate.
type document struct {
	Version    string          `json:"version"`
	Kind       []string        `json:"kind"`
	Title      string          `json:"title"`
	Copyright  string          `json:"copyright"`
	Author     string          `json:"author"`
	Notes      string          `json:"notes"`
	Dimensions dimensions      `json:"dimensions"`
	Block      *Value          `json:"block"`
	Empty      *Value          `json:"empty"`
	Puzzle     [][]labeledCell `json:"puzzle"`
	Solution   [][]Value       `json:"solution"`
	Clues      clueLists       `json:"clues"`
}

type dimensions struct {
	Width  uint8 `json:"width"`
	Height uint8 `json:"height"`
}

type clueLists struct {
	Across []clueEntry `json:"Across"`
	Down   []clueEntry `json:"Down"`
}

// clueEntry marshals as the [number, "text"] pair the format uses.
type clueEntry struct {
	Number uint16
	Text   string
}

func (c clueEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{c.Number, c.Text})
}

func (c *clueEntry) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	if len(parts) != 2 {
		return fmt.Errorf("expected a [number, text] pair, got %d elements", len(parts))
	}
	if err := json.Unmarshal(parts[0], &c.Number); err != nil {
		return err
	}
	return json.Unmarshal(parts[1], &c.Text)
}

func toClues(entries []clueEntry) []puzzle.Clue {
	out := make([]puzzle.Clue, len(entries))
	for i, e := range entries {
		out[i] = puzzle.Clue{Number: e.Number, Text: e.Text}
	}
	return out
}

func fromClues(clues []puzzle.Clue) []clueEntry {
	out := make([]clueEntry, len(clues))
	for i, c := range clues {
		out[i] = clueEntry{Number: c.Number, Text: c.Text}
	}
	return out
}
