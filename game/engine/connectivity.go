package engine

// neighbors lists the 4-directional offsets used by the flood fill
var neighbors = [4]Position{{-1, 0}, {1, 0}, {0, 1}, {0, -1}}

// IsConnected reports whether every non-wall cell is reachable from the
// first non-wall cell in row-major order. A grid with no open cells is
// connected.
func IsConnected(grid Grid) bool {
	start, total := firstOpenCell(grid)
	if total == 0 {
		return true
	}

	visited := newVisited(grid)
	return floodFill(grid, visited, start) == total
}

// CheckConnected returns ErrDisconnected if IsConnected is false
func CheckConnected(grid Grid) error {
	if !IsConnected(grid) {
		return ErrDisconnected
	}
	return nil
}

// Components counts the 4-connected regions of non-wall cells
func Components(grid Grid) int {
	visited := newVisited(grid)
	count := 0
	for r, row := range grid {
		for c, cell := range row {
			if cell == Wall || visited[r][c] {
				continue
			}
			floodFill(grid, visited, Position{Row: r, Col: c})
			count++
		}
	}
	return count
}

func firstOpenCell(grid Grid) (Position, int) {
	start := Position{Row: -1, Col: -1}
	total := 0
	for r, row := range grid {
		for c, cell := range row {
			if cell == Wall {
				continue
			}
			if total == 0 {
				start = Position{Row: r, Col: c}
			}
			total++
		}
	}
	return start, total
}

func newVisited(grid Grid) [][]bool {
	visited := make([][]bool, len(grid))
	for i, row := range grid {
		visited[i] = make([]bool, len(row))
	}
	return visited
}

// floodFill marks every open cell reachable from start and returns how many
// cells it marked. It uses an explicit stack rather than recursion.
func floodFill(grid Grid, visited [][]bool, start Position) int {
	reached := 0
	stack := []Position{start}
	for len(stack) > 0 {
		pos := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !grid.InBounds(pos) || visited[pos.Row][pos.Col] || grid.At(pos) == Wall {
			continue
		}
		visited[pos.Row][pos.Col] = true
		reached++

		for _, n := range neighbors {
			stack = append(stack, Position{Row: pos.Row + n.Row, Col: pos.Col + n.Col})
		}
	}
	return reached
}
