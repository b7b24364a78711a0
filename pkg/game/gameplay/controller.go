package gameplay

import (
	"time"

	"cubemaze/pkg/engine/input"
	"cubemaze/pkg/game/audio"
	"cubemaze/pkg/game/config"
	"cubemaze/pkg/game/menu"
	"cubemaze/pkg/game/state"
)

// Controller owns the top-level flow: it routes input to the active menu
// or the running simulation, and swaps menus when the mode changes.
// Renderers feed it one snapshot per frame and draw whatever state it
// leaves behind.
type Controller struct {
	G    *state.Game
	Menu *menu.Model

	// SeedFn supplies the seed for each fresh maze.
	SeedFn func() int64

	// Audio receives sound cues derived from simulation events.
	Audio audio.Player

	quit bool
}

// NewController creates a controller sitting at the main menu. A nil
// seedFn means every run gets a time-based seed.
func NewController(cfg config.Config, seedFn func() int64) *Controller {
	if seedFn == nil {
		seedFn = func() int64 { return time.Now().UnixNano() }
	}
	return &Controller{
		G:      state.NewGame(cfg),
		Menu:   menu.Main(),
		SeedFn: seedFn,
		Audio:  audio.Noop{},
	}
}

// Done reports whether the player asked to leave the program.
func (c *Controller) Done() bool {
	return c.quit
}

// Tick consumes one input snapshot and advances whatever is active: the
// simulation while playing, the current menu otherwise.
func (c *Controller) Tick(in input.Snapshot, dt float64) {
	if in.Action == input.ActionQuit {
		c.quit = true
		return
	}

	if c.G.Mode == state.ModePlaying {
		if in.Action == input.ActionBack {
			c.G.Pause()
			c.Menu = menu.Pause()
			return
		}

		health := c.G.Player.Health
		shots := c.G.Projectiles.Size()
		windingUp := c.G.Monster.WindingUp()

		Step(c.G, in, dt)

		// Sound cues come from observing what the step changed, keeping
		// the simulation itself silent.
		if c.G.Player.Health < health {
			c.Audio.Hit()
		}
		if !windingUp && c.G.Monster.WindingUp() {
			c.Audio.WindUp()
		}
		if c.G.Projectiles.Size() > shots {
			c.Audio.Fire()
		}

		switch c.G.Mode {
		case state.ModeWin:
			c.Audio.Win()
			c.Menu = menu.Win()
		case state.ModeLose:
			c.Audio.Lose()
			c.Menu = menu.Lose()
		}
		return
	}

	c.tickMenu(in)
}

func (c *Controller) tickMenu(in input.Snapshot) {
	switch in.Action {
	case input.ActionUp:
		c.Menu.Up()
	case input.ActionDown:
		c.Menu.Down()
	case input.ActionBack:
		switch c.G.Mode {
		case state.ModePaused:
			c.G.Resume()
		case state.ModeWin, state.ModeLose:
			c.G.QuitToMenu()
			c.Menu = menu.Main()
		case state.ModeMenu:
			c.quit = true
		}
	case input.ActionConfirm:
		c.activate(c.Menu.Activate())
	}
}

func (c *Controller) activate(act menu.ItemAction) {
	switch act {
	case menu.ActStart, menu.ActNewMaze:
		// Errors leave the game at the menu with a message set.
		_ = StartRun(c.G, c.SeedFn())
	case menu.ActRetry:
		if c.G.InSession() {
			_ = Restart(c.G)
		} else {
			_ = StartRun(c.G, c.SeedFn())
		}
	case menu.ActResume:
		c.G.Resume()
	case menu.ActMainMenu:
		c.G.QuitToMenu()
		c.Menu = menu.Main()
	case menu.ActQuit:
		c.quit = true
	}
}
