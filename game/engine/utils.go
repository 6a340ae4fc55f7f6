package engine

import "strings"

// Rows returns the number of rows in the grid
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of columns in the grid
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// InBounds reports whether pos lies inside the grid
func (g Grid) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < g.Rows() && pos.Col >= 0 && pos.Col < g.Cols()
}

// At returns the cell at pos. The caller must check bounds first.
func (g Grid) At(pos Position) byte {
	return g[pos.Row][pos.Col]
}

// Lines returns the rows as strings
func (g Grid) Lines() []string {
	lines := make([]string, len(g))
	for i, row := range g {
		lines[i] = string(row)
	}
	return lines
}

// String renders the grid one row per line, newline-terminated
func (g Grid) String() string {
	var b strings.Builder
	for _, row := range g {
		b.Write(row)
		b.WriteByte('\n')
	}
	return b.String()
}

// CountCells counts the cells equal to c
func CountCells(grid Grid, c byte) int {
	count := 0
	for _, row := range grid {
		for _, cell := range row {
			if cell == c {
				count++
			}
		}
	}
	return count
}

// PlayersPresent returns the player IDs found on the grid in ascending order
func PlayersPresent(grid Grid) []int {
	var seen [MaxPlayer + 1]bool
	for _, row := range grid {
		for _, cell := range row {
			if IsPlayer(cell) {
				seen[cell-'0'] = true
			}
		}
	}

	var ids []int
	for id, ok := range seen {
		if ok {
			ids = append(ids, id)
		}
	}
	return ids
}
