package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/wricardo/labyrinth/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	store MapStore
	log   logrus.FieldLogger
}

// NewGameService creates a new game service instance
func NewGameService(store MapStore, log logrus.FieldLogger) GameService {
	return &gameServiceImpl{
		store: store,
		log:   log,
	}
}

// open runs the load and validation steps shared by every operation
func (s *gameServiceImpl) open(ctx context.Context, path string, player int) (*engine.GameEngine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := s.log.WithFields(logrus.Fields{"map": path, "player": player})

	grid, err := s.store.Load(path)
	if err != nil {
		return nil, err
	}
	log.WithField("size", fmt.Sprintf("%dx%d", grid.Rows(), grid.Cols())).Debug("map loaded")

	gameEngine, err := engine.NewEngine(grid, player)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debugf("map validated: %s", gameEngine)
	return gameEngine, nil
}

// Query returns the validated map for a player already on it
func (s *gameServiceImpl) Query(ctx context.Context, req QueryRequest) (*QueryResult, error) {
	gameEngine, err := s.open(ctx, req.MapPath, req.Player)
	if err != nil {
		return nil, err
	}

	pos, ok := gameEngine.GetPlayerPosition()
	if !ok {
		return nil, fmt.Errorf("player %d: %w", req.Player, engine.ErrPlayerNotFound)
	}

	return &QueryResult{
		Position: pos,
		Grid:     gameEngine.GetGrid(),
	}, nil
}

// Move places the player if needed, then attempts a single step
func (s *gameServiceImpl) Move(ctx context.Context, req MoveRequest) (*MoveResult, error) {
	if !req.Direction.Valid() {
		return nil, fmt.Errorf("%w: %q", engine.ErrInvalidDirection, req.Direction)
	}

	gameEngine, err := s.open(ctx, req.MapPath, req.Player)
	if err != nil {
		return nil, err
	}
	log := s.log.WithFields(logrus.Fields{"map": req.MapPath, "player": req.Player, "direction": req.Direction})

	result := &MoveResult{}
	from, present := gameEngine.GetPlayerPosition()
	if !present {
		from, err = gameEngine.Place()
		if err != nil {
			return nil, err
		}
		result.Placed = true
		log.Debugf("player placed at (%d,%d)", from.Row, from.Col)
	}
	result.From = from

	result.Success = gameEngine.Move(req.Direction)
	result.To, _ = gameEngine.GetPlayerPosition()
	result.Grid = gameEngine.GetGrid()
	log.WithField("moves", gameEngine.GetPossibleMoves()).Debug("possible moves")

	if !result.Success {
		target := engine.Target(from, req.Direction)
		log.Debugf("move blocked at (%d,%d)", target.Row, target.Col)
		return result, nil
	}
	log.Debugf("player moved to (%d,%d)", result.To.Row, result.To.Col)

	if req.Save {
		if err := s.store.Save(req.MapPath, result.Grid); err != nil {
			return nil, err
		}
		result.Saved = true
		log.Debug("map saved")
	}

	return result, nil
}
