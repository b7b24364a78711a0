package gameplay

import (
	"log"

	"github.com/leonelquinteros/gotext"

	"cubemaze/pkg/engine/input"
	"cubemaze/pkg/game/state"
)

// Step advances the simulation by dt seconds. It does nothing unless the
// game is actively playing; menus, pause and end screens freeze the
// session exactly where it stands.
func Step(g *state.Game, in input.Snapshot, dt float64) {
	if g.Mode != state.ModePlaying || dt <= 0 {
		return
	}

	g.Elapsed += dt

	applyMovement(g, in, dt)
	g.Player.Tick(dt)

	// Reaching the goal cell wins immediately; nothing that happens
	// later in the tick can take it back.
	if cell := g.Grid.CellAt(g.Player.Pos); cell != nil && cell.Goal {
		g.Win()
		g.Message = gotext.Get("You escaped the maze!")
		log.Printf("[GAME] session %s: won after %.1fs", g.SessionID, g.Elapsed)
		return
	}

	seesPlayer := g.Grid.LineOfSight(g.Monster.Pos, g.Player.Pos)
	delta, proj := g.Monster.Update(dt, g.Player.Pos, seesPlayer, g.Cfg)
	g.Monster.Pos = g.Grid.SlideMove(g.Monster.Pos, delta, g.Cfg.MonsterRadius)
	if proj != nil {
		g.Projectiles.Put(proj)
		log.Printf("[GAME] session %s: monster fired at (%.1f, %.1f)",
			g.SessionID, proj.Vel.X, proj.Vel.Y)
	}

	resolveProjectiles(g, dt)

	if !g.Player.Alive() {
		g.Lose()
		g.Message = gotext.Get("The cube got you.")
		log.Printf("[GAME] session %s: lost after %.1fs", g.SessionID, g.Elapsed)
	}
}
