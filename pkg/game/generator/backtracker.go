package generator

import (
	"math/rand"

	"cubemaze/pkg/engine/world"
)

// Backtracker carves mazes with a randomized depth-first walk. It starts
// from the top-left cell, repeatedly tunnels into a random unvisited
// neighbor, and backtracks when boxed in. The walk visits every cell
// exactly once, so the result is a spanning tree of the grid: any two
// cells are connected by exactly one path.
//
// The walk favors long winding corridors with short dead-end branches,
// which suits a first-person maze better than the room-heavy layouts a
// space-partitioning generator produces.
type Backtracker struct{}

// Name identifies the generator.
func (b *Backtracker) Name() string {
	return "backtracker"
}

// Generate builds the maze. The goal is placed on the cell farthest from
// the start by passage distance, so every run ends with a full traversal.
func (b *Backtracker) Generate(width, height int, seed int64) (*world.Grid, error) {
	if width < 2 || height < 2 {
		return nil, ErrInvalidDimensions
	}

	rng := rand.New(rand.NewSource(seed))
	grid := world.NewGrid(width, height)

	visited := make([]bool, width*height)
	index := func(p world.Position) int { return p.Row*width + p.Col }

	start := world.Position{Row: 0, Col: 0}
	visited[index(start)] = true
	stack := []world.Position{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		var candidates []world.Move
		for _, m := range grid.Neighbors(current) {
			if !visited[index(m.To)] {
				candidates = append(candidates, m)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		m := candidates[rng.Intn(len(candidates))]
		grid.OpenWall(m)
		visited[index(m.To)] = true
		stack = append(stack, m.To)
	}

	grid.SetStartCellAt(start.Row, start.Col)

	farthest, _ := grid.FarthestFrom(grid.StartCell())
	grid.SetGoalCellAt(farthest.Row, farthest.Col)

	return grid, nil
}
