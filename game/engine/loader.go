package engine

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// LoadFile reads and validates the map stored at path
func LoadFile(path string) (Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file: %w", err)
	}
	defer f.Close()

	grid, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return grid, nil
}

// Parse reads map rows from r, dropping trailing whitespace and blank lines,
// and checks that the result is a non-empty rectangle within the size limits.
func Parse(r io.Reader) (Grid, error) {
	var grid Grid
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRightFunc(scanner.Text(), unicode.IsSpace)
		if line == "" {
			continue
		}
		grid = append(grid, []byte(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read map: %w", err)
	}

	if err := ValidateShape(grid); err != nil {
		return nil, err
	}
	return grid, nil
}

// ValidateShape checks the structural invariants of a grid
func ValidateShape(grid Grid) error {
	if len(grid) == 0 {
		return ErrEmptyMap
	}

	width := len(grid[0])
	for i, row := range grid {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d columns, expected %d", ErrRaggedRows, i+1, len(row), width)
		}
	}

	if len(grid) > MaxRows {
		return fmt.Errorf("%w: %d rows exceeds limit of %d", ErrTooManyRows, len(grid), MaxRows)
	}
	if width > MaxColumns {
		return fmt.Errorf("%w: %d columns exceeds limit of %d", ErrTooManyColumns, width, MaxColumns)
	}
	return nil
}

// FromRows builds a validated grid from in-memory rows
func FromRows(rows []string) (Grid, error) {
	grid := make(Grid, len(rows))
	for i, row := range rows {
		grid[i] = []byte(row)
	}
	if err := ValidateShape(grid); err != nil {
		return nil, err
	}
	return grid, nil
}
