package generator

import (
	"math/rand"

	"cubemaze/pkg/engine/world"
)

// spawnAttempts bounds the random search for a monster spawn cell.
const spawnAttempts = 64

// MonsterSpawn picks a cell for the monster to patrol from. The cell is
// kept at least a quarter of the maze diagonal away from both the start
// and the goal, measured in Manhattan cells, so the player is never
// ambushed on spawn or camped at the exit. The search is seeded, so a
// given layout always yields the same spawn. Falls back to the center
// cell when no candidate satisfies the distance rule.
func MonsterSpawn(grid *world.Grid, seed int64) *world.Cell {
	rng := rand.New(rand.NewSource(seed))

	minDist := (grid.Width() + grid.Height()) / 4
	start := grid.StartCell()
	goal := grid.GoalCell()

	for i := 0; i < spawnAttempts; i++ {
		row := rng.Intn(grid.Height())
		col := rng.Intn(grid.Width())
		cell := grid.Cell(row, col)

		if manhattan(cell, start) >= minDist && manhattan(cell, goal) >= minDist {
			return cell
		}
	}

	return grid.Cell(grid.Height()/2, grid.Width()/2)
}

func manhattan(a, b *world.Cell) int {
	if a == nil || b == nil {
		return 0
	}
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
