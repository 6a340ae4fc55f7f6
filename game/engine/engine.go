package engine

import "fmt"

// GameEngine places and moves a single player on a validated grid
type GameEngine struct {
	grid    Grid
	player  int
	pos     Position
	present bool
}

// NewEngine validates the grid shape and connectivity, then locates the
// player on it. The engine takes ownership of grid.
func NewEngine(grid Grid, player int) (*GameEngine, error) {
	if _, err := PlayerMarker(player); err != nil {
		return nil, err
	}
	if err := ValidateShape(grid); err != nil {
		return nil, err
	}
	if err := CheckConnected(grid); err != nil {
		return nil, err
	}

	e := &GameEngine{
		grid:   grid,
		player: player,
	}
	e.pos, e.present = FindPlayer(grid, player)
	return e, nil
}

// GetGrid returns the current grid
func (e *GameEngine) GetGrid() Grid {
	return e.grid
}

// GetPlayerPosition returns the player position and whether the player is on the map
func (e *GameEngine) GetPlayerPosition() (Position, bool) {
	return e.pos, e.present
}

// Place puts the player on the first free floor cell if it is not already
// on the map
func (e *GameEngine) Place() (Position, error) {
	if e.present {
		return e.pos, nil
	}
	pos, err := PlacePlayer(e.grid, e.player)
	if err != nil {
		return Position{}, err
	}
	e.pos, e.present = pos, true
	return pos, nil
}

// Move attempts to move the player one cell in the specified direction
func (e *GameEngine) Move(direction Direction) bool {
	if !e.present {
		return false
	}
	pos, ok := MovePlayer(e.grid, e.pos, direction)
	e.pos = pos
	return ok
}

// GetPossibleMoves returns all valid directions the player can move
func (e *GameEngine) GetPossibleMoves() []Direction {
	if !e.present {
		return nil
	}
	return PossibleMoves(e.grid, e.pos)
}

// String describes the engine state for logging
func (e *GameEngine) String() string {
	if !e.present {
		return fmt.Sprintf("player %d absent on %dx%d map", e.player, e.grid.Rows(), e.grid.Cols())
	}
	return fmt.Sprintf("player %d at (%d,%d) on %dx%d map", e.player, e.pos.Row, e.pos.Col, e.grid.Rows(), e.grid.Cols())
}
