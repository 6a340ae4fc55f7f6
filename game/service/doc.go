// Package service runs one labyrinth engine invocation.
//
// Each call walks the same sequence: load the map, check its shape and
// connectivity, locate (or for moves, place) the player, then either return
// the map or move one cell and optionally write the map back. Any failure
// in that sequence is returned as an error. A move blocked by a wall or the
// map edge is not an error; it comes back as MoveResult.Success == false.
//
// Usage:
//
//	store := storage.NewFilePersistence()
//	gameService := service.NewGameService(store, logger)
//
//	result, err := gameService.Move(ctx, service.MoveRequest{
//		MapPath:   "maps/small.txt",
//		Player:    3,
//		Direction: engine.Right,
//		Save:      true,
//	})
package service
