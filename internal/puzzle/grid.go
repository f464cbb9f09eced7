package puzzle

// Grid is a read-only view over a crossword's cells used to derive clue
// numbering. It borrows the cell slice and never outlives the call that
// created it; numbering is recomputed on demand, never cached.
type Grid struct {
	Width  int
	Height int
	Cells  []Cell
}

// NumberedCell classifies one square after numbering: a wall, an unnumbered
// square (Number 0), or the start of at least one run.
type NumberedCell struct {
	Wall   bool
	Number uint16
	Across bool
	Down   bool
}

func (g Grid) isWall(x, y int) bool {
	return g.Cells[y*g.Width+x].IsWall()
}

// Numbered assigns clue numbers in a single left-to-right, top-to-bottom
// pass. A cell starts an across run iff there is no open square to its left
// and at least one to its right; the down rule is the vertical mirror, so
// runs of length one are never numbered. A cell starting in both directions
// consumes a single number.
func (g Grid) Numbered() []NumberedCell {
	out := make([]NumberedCell, 0, len(g.Cells))
	num := uint16(1)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.isWall(x, y) {
				out = append(out, NumberedCell{Wall: true})
				continue
			}
			startX := (x == 0 || g.isWall(x-1, y)) && x+1 < g.Width && !g.isWall(x+1, y)
			startY := (y == 0 || g.isWall(x, y-1)) && y+1 < g.Height && !g.isWall(x, y+1)
			nc := NumberedCell{Across: startX, Down: startY}
			if startX || startY {
				nc.Number = num
				num++
			}
			out = append(out, nc)
		}
	}
	return out
}

// ExpectedNums reduces the numbering into the ordered across-start and
// down-start number sequences that the clue lists must match exactly.
func (g Grid) ExpectedNums() (across, down []uint16) {
	for _, nc := range g.Numbered() {
		if nc.Across {
			across = append(across, nc.Number)
		}
		if nc.Down {
			down = append(down, nc.Number)
		}
	}
	return across, down
}
