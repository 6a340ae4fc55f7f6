package service

import (
	"github.com/wricardo/labyrinth/game/engine"
)

// QueryRequest asks for the current map with the player on it
type QueryRequest struct {
	MapPath string
	Player  int
}

// QueryResult contains the map and where the player is
type QueryResult struct {
	Position engine.Position
	Grid     engine.Grid
}

// MoveRequest asks to move a player one cell
type MoveRequest struct {
	MapPath   string
	Player    int
	Direction engine.Direction
	Save      bool
}

// MoveResult contains the result of a move operation. A blocked move is
// not an error: Success is false and the grid is unchanged.
type MoveResult struct {
	Success bool
	Placed  bool
	Saved   bool
	From    engine.Position
	To      engine.Position
	Grid    engine.Grid
}
