package engine

import (
	"errors"
	"fmt"
)

// Cell values that may appear in a map file
const (
	Wall  byte = '#'
	Floor byte = '.'

	// Validation constants
	MaxRows    = 100
	MaxColumns = 100
	MinPlayer  = 0
	MaxPlayer  = 9
)

var (
	ErrEmptyMap         = errors.New("empty map")
	ErrRaggedRows       = errors.New("rows have unequal length")
	ErrTooManyRows      = errors.New("too many rows")
	ErrTooManyColumns   = errors.New("too many columns")
	ErrDisconnected     = errors.New("map is not connected")
	ErrNoFloor          = errors.New("no floor cell available for placement")
	ErrPlayerNotFound   = errors.New("player not found in map")
	ErrInvalidPlayer    = errors.New("player ID must be between 0 and 9")
	ErrInvalidDirection = errors.New("invalid direction")
)

// Grid is a rectangular map. Every row has the same length.
type Grid [][]byte

// Position represents row,col coordinates
type Position struct {
	Row int
	Col int
}

// Direction is one of the four cardinal moves
type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

// Directions lists every valid direction in a stable order
var Directions = []Direction{Up, Down, Left, Right}

// Offset returns the row and column displacement for a single step
func (d Direction) Offset() (dRow, dCol int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

// Valid reports whether d is one of the four cardinal directions
func (d Direction) Valid() bool {
	switch d {
	case Up, Down, Left, Right:
		return true
	}
	return false
}

// ParseDirection converts an exact, lower-case direction name
func ParseDirection(s string) (Direction, error) {
	d := Direction(s)
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q (must be one of up, down, left, right)", ErrInvalidDirection, s)
	}
	return d, nil
}

// PlayerMarker renders a player ID as its single-digit cell value
func PlayerMarker(id int) (byte, error) {
	if id < MinPlayer || id > MaxPlayer {
		return 0, fmt.Errorf("%w, got %d", ErrInvalidPlayer, id)
	}
	return byte('0' + id), nil
}

// IsPlayer reports whether a cell holds any player marker
func IsPlayer(c byte) bool {
	return c >= '0' && c <= '9'
}
