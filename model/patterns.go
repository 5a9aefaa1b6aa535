package model

// Block returns a 2x2 still life inside a 4x4 dead border
func Block() *Grid {
	return MustFromRows([][]bool{
		{false, false, false, false},
		{false, true, true, false},
		{false, true, true, false},
		{false, false, false, false},
	})
}

// Blinker returns a horizontal period-2 oscillator centered in a 5x5 grid
func Blinker() *Grid {
	g := newGrid(5, 5)
	for x := 1; x <= 3; x++ {
		g.cells[g.index(x, 2)] = true
	}
	return g
}

// Glider returns a glider in the top-left corner of a width x height grid.
// Dimensions below 3 are raised to 3.
func Glider(width, height int) *Grid {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	g := newGrid(max(width, 3), max(height, 3))
	for y, row := range pattern {
		for x, cell := range row {
			g.cells[g.index(x, y)] = cell
		}
	}
	return g
}
