package model

import (
	"fmt"

	"github.com/sheikhrachel/go-gol-step/rules"
)

// Coordinate is a candidate cell position. It may lie outside any given grid.
type Coordinate struct {
	X int
	Y int
}

// neighborOffsets lists the Moore neighborhood, y-offset major, x-offset minor.
var neighborOffsets = [8]Coordinate{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

// InBounds reports whether the coordinate addresses a cell of g
func (c Coordinate) InBounds(g *Grid) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// StateIn returns the state of the cell at c. It panics if c is not InBounds.
func (c Coordinate) StateIn(g *Grid) bool {
	if !c.InBounds(g) {
		panic(fmt.Sprintf("model: coordinate (%d,%d) outside %dx%d grid", c.X, c.Y, g.width, g.height))
	}
	return g.cells[g.index(c.X, c.Y)]
}

// Neighbors returns the eight surrounding coordinates, in bounds or not
func (c Coordinate) Neighbors() []Coordinate {
	neighbors := make([]Coordinate, len(neighborOffsets))
	for i, off := range neighborOffsets {
		neighbors[i] = Coordinate{X: c.X + off.X, Y: c.Y + off.Y}
	}
	return neighbors
}

// NeighborStates returns the states of the in-bounds neighbors of c, in
// Neighbors order. Neighbors past the edge of g are left out.
func (c Coordinate) NeighborStates(g *Grid) []bool {
	states := make([]bool, 0, len(neighborOffsets))
	for _, n := range c.Neighbors() {
		if n.InBounds(g) {
			states = append(states, n.StateIn(g))
		}
	}
	return states
}

// AliveNeighbors counts the living cells around c
func (c Coordinate) AliveNeighbors(g *Grid) (count int) {
	for _, alive := range c.NeighborStates(g) {
		if alive {
			count++
		}
	}
	return
}

// NextStateIn returns the state of c in the generation after g
func (c Coordinate) NextStateIn(g *Grid) bool {
	return rules.NextState(c.StateIn(g), c.AliveNeighbors(g))
}
