package gameplay

import (
	"math"

	"cubemaze/pkg/engine/input"
	"cubemaze/pkg/engine/vec"
	"cubemaze/pkg/game/state"
)

// applyMovement moves the player according to the tick's input, sliding
// along walls. Diagonal input is normalized so it grants no extra speed.
func applyMovement(g *state.Game, in input.Snapshot, dt float64) {
	p := g.Player

	p.Heading += in.LookDelta

	move := vec.Vec2{X: in.MoveX, Y: in.MoveY}
	if move.Len() > 1 {
		move = move.Normalize()
	}
	if move.LenSq() == 0 {
		return
	}

	delta := move.Scale(g.Cfg.PlayerSpeed * dt)
	p.Pos = g.Grid.SlideMove(p.Pos, delta, g.Cfg.PlayerRadius)

	// Without an explicit turn, face the direction of travel so renderers
	// can draw the player's facing without tracking input themselves. An
	// explicit turn wins, so turning while strafing works.
	if in.LookDelta == 0 {
		p.Heading = math.Atan2(move.Y, move.X)
	}
}
