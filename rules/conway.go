package rules

/*
NextState applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: aliveNeighbors == 3 || (alive && aliveNeighbors == 2)

aliveNeighbors is bounded to 0..8 by the Moore neighborhood; anything else simply yields false.
*/
func NextState(alive bool, aliveNeighbors int) bool {
	return aliveNeighbors == 3 || (alive && aliveNeighbors == 2)
}
