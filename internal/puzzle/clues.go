package puzzle

// Clue pairs a clue number with its text.
type Clue struct {
	Number uint16
	Text   string
}

// ValidateClues compares a declared clue list against the numbers the grid
// expects. Checks run in strict order and the first failure wins: ordering,
// then length, then positional equality. A misordered list is reported even
// when the lengths also differ.
func ValidateClues(expected []uint16, actual []Clue) error {
	for i := 1; i < len(actual); i++ {
		if actual[i-1].Number >= actual[i].Number {
			return &MisorderedCluesError{}
		}
	}
	if len(expected) != len(actual) {
		return &ClueCountError{Expected: len(expected), Actual: len(actual)}
	}
	for i, exp := range expected {
		act := actual[i].Number
		if exp == act {
			continue
		}
		if exp < act {
			return &MissingClueError{Number: exp}
		}
		return &ExtraClueError{Number: act}
	}
	return nil
}
