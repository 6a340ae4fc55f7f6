package engine

// Target returns the cell one step from pos in direction d
func Target(pos Position, d Direction) Position {
	dRow, dCol := d.Offset()
	return Position{Row: pos.Row + dRow, Col: pos.Col + dCol}
}

// CanMoveTo checks if a player can step onto pos
func CanMoveTo(grid Grid, pos Position) bool {
	// Only unoccupied floor is walkable; walls and other players block
	return grid.InBounds(pos) && grid.At(pos) == Floor
}

// MovePlayer moves the marker at from one cell in direction d. It returns
// the new position and true on success. A blocked move leaves the grid
// untouched and returns from and false.
func MovePlayer(grid Grid, from Position, d Direction) (Position, bool) {
	if !d.Valid() || !grid.InBounds(from) {
		return from, false
	}

	to := Target(from, d)
	if !CanMoveTo(grid, to) {
		return from, false
	}

	marker := grid.At(from)
	grid[from.Row][from.Col] = Floor
	grid[to.Row][to.Col] = marker
	return to, true
}

// PossibleMoves returns the directions a player at pos can currently take
func PossibleMoves(grid Grid, pos Position) []Direction {
	var possible []Direction
	for _, d := range Directions {
		if CanMoveTo(grid, Target(pos, d)) {
			possible = append(possible, d)
		}
	}
	return possible
}
