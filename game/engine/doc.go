// Package engine provides the map logic for the labyrinth game.
//
// The engine package implements:
//   - Loading ASCII maps and validating their shape (rectangular, at most 100x100)
//   - Connectivity checking with a 4-directional flood fill
//   - Locating and placing numbered player markers
//   - Single-step movement onto floor cells
//   - Writing maps back to disk
//
// Map Format:
//
// A map is plain text with one row per line. '#' is a wall, '.' is floor and
// a digit 0-9 marks the player with that ID. Blank lines and trailing
// whitespace are ignored when loading.
//
// Usage:
//
//	grid, err := engine.LoadFile("maps/small.txt")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	gameEngine, err := engine.NewEngine(grid, 3)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if _, err := gameEngine.Place(); err != nil {
//		log.Fatal(err)
//	}
//	if gameEngine.Move(engine.Right) {
//		err = engine.SaveFile("maps/small.txt", gameEngine.GetGrid())
//	}
package engine
