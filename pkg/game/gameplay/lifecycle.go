// Package gameplay provides the core game logic: session lifecycle,
// player movement, the per-tick simulation step and combat resolution.
package gameplay

import (
	"log"

	"github.com/google/uuid"
	"github.com/leonelquinteros/gotext"

	"cubemaze/pkg/game/entities"
	"cubemaze/pkg/game/generator"
	"cubemaze/pkg/game/state"
)

// StartRun builds a fresh session from the game's config and the given
// seed, and switches to playing. On failure the game stays at the menu
// with a message explaining why.
func StartRun(g *state.Game, seed int64) error {
	if err := g.Cfg.Validate(); err != nil {
		g.Mode = state.ModeMenu
		g.Message = gotext.Get("Cannot start: maze dimensions are invalid")
		return err
	}

	gen := generator.DefaultGenerator()
	grid, err := gen.Generate(g.Cfg.MazeWidth, g.Cfg.MazeHeight, seed)
	if err != nil {
		g.Mode = state.ModeMenu
		g.Message = gotext.Get("Cannot start: maze dimensions are invalid")
		return err
	}

	g.Grid = grid
	g.Seed = seed
	g.SessionID = uuid.New()
	g.Elapsed = 0

	start := grid.StartCell()
	g.Player = entities.NewPlayer(grid.CenterOf(start.Row, start.Col), g.Cfg)

	spawn := generator.MonsterSpawn(grid, seed)
	g.Monster = entities.NewMonster(grid.CenterOf(spawn.Row, spawn.Col))

	g.ClearProjectiles()

	g.Mode = state.ModePlaying
	g.Message = gotext.Get("Find the exit. Avoid the cube.")

	log.Printf("[GAME] session %s: %dx%d maze, seed %d, generator %s, monster at (%d, %d)",
		g.SessionID, grid.Width(), grid.Height(), seed, gen.Name(), spawn.Row, spawn.Col)

	return nil
}

// Restart rebuilds the current session with the same seed, so the player
// retries the exact maze they just lost.
func Restart(g *state.Game) error {
	return StartRun(g, g.Seed)
}
