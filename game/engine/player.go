package engine

import "fmt"

// FindPlayer scans row-major for the player's marker
func FindPlayer(grid Grid, id int) (Position, bool) {
	marker, err := PlayerMarker(id)
	if err != nil {
		return Position{}, false
	}
	for r, row := range grid {
		for c, cell := range row {
			if cell == marker {
				return Position{Row: r, Col: c}, true
			}
		}
	}
	return Position{}, false
}

// PlacePlayer writes the player's marker onto the first floor cell in
// row-major order and returns where it landed.
func PlacePlayer(grid Grid, id int) (Position, error) {
	marker, err := PlayerMarker(id)
	if err != nil {
		return Position{}, err
	}
	for r, row := range grid {
		for c, cell := range row {
			if cell == Floor {
				row[c] = marker
				return Position{Row: r, Col: c}, nil
			}
		}
	}
	return Position{}, fmt.Errorf("player %d: %w", id, ErrNoFloor)
}
