package service

import (
	"context"

	"github.com/wricardo/labyrinth/game/engine"
)

// GameService defines the operations of a single engine invocation
type GameService interface {
	// Query loads and validates the map and returns it with the player's
	// position. The player must already be on the map.
	Query(ctx context.Context, req QueryRequest) (*QueryResult, error)

	// Move loads and validates the map, places the player if absent, moves
	// it one cell and, on success, optionally writes the map back.
	Move(ctx context.Context, req MoveRequest) (*MoveResult, error)
}

// MapStore reads and writes map files
type MapStore interface {
	Load(path string) (engine.Grid, error)
	Save(path string, grid engine.Grid) error
}
