package world

// Distances returns the graph distance (in passage steps) from the given
// cell to every reachable cell, walking only through open walls.
func (g *Grid) Distances(from *Cell) map[*Cell]int {
	dist := make(map[*Cell]int)
	if from == nil {
		return dist
	}

	dist[from] = 0
	queue := []*Cell{from}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, m := range g.OpenMoves(current.Pos()) {
			next := g.Cell(m.To.Row, m.To.Col)
			if _, seen := dist[next]; !seen {
				dist[next] = dist[current] + 1
				queue = append(queue, next)
			}
		}
	}

	return dist
}

// FarthestFrom returns the reachable cell with the maximum graph distance
// from the given cell, and that distance. Ties resolve to the first cell
// found in BFS order, which is deterministic for a given grid.
func (g *Grid) FarthestFrom(from *Cell) (*Cell, int) {
	dist := g.Distances(from)

	farthest := from
	max := 0
	// Scan in row/col order so ties are deterministic.
	g.ForEachCell(func(row, col int, cell *Cell) {
		if d, ok := dist[cell]; ok && d > max {
			farthest = cell
			max = d
		}
	})

	return farthest, max
}
