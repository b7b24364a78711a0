package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"cubemaze/pkg/engine/input"
)

// lookStep is the heading change per frame while a turn key is held.
const lookStep = 0.05

// pollSnapshot samples the keyboard into one input snapshot. Held keys
// feed the movement axes; just-pressed keys feed the discrete actions so
// menus step one item per press.
func pollSnapshot() input.Snapshot {
	var snap input.Snapshot

	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		snap.MoveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		snap.MoveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		snap.MoveY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		snap.MoveY += 1
	}

	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		snap.LookDelta -= lookStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		snap.LookDelta += lookStep
	}
	snap.Jump = ebiten.IsKeyPressed(ebiten.KeySpace)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		snap.Action = input.ActionConfirm
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		snap.Action = input.ActionBack
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp), inpututil.IsKeyJustPressed(ebiten.KeyW):
		snap.Action = input.ActionUp
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown), inpututil.IsKeyJustPressed(ebiten.KeyS):
		snap.Action = input.ActionDown
	}

	return snap
}
