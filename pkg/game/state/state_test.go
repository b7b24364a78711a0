package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cubemaze/pkg/game/config"
)

func TestModeString(t *testing.T) {
	cases := map[Mode]string{
		ModeMenu:    "Menu",
		ModePlaying: "Playing",
		ModePaused:  "Paused",
		ModeWin:     "Win",
		ModeLose:    "Lose",
		Mode(42):    "Unknown",
	}
	for mode, want := range cases {
		assert.Equal(t, want, mode.String())
	}
}

func TestTransitionsAreGated(t *testing.T) {
	g := NewGame(config.Default())

	// Pause, win and lose only apply to a running session.
	g.Pause()
	assert.Equal(t, ModeMenu, g.Mode)
	g.Win()
	assert.Equal(t, ModeMenu, g.Mode)
	g.Lose()
	assert.Equal(t, ModeMenu, g.Mode)

	g.Mode = ModePlaying
	g.Pause()
	assert.Equal(t, ModePaused, g.Mode)

	// Win does not apply while paused.
	g.Win()
	assert.Equal(t, ModePaused, g.Mode)

	g.Resume()
	assert.Equal(t, ModePlaying, g.Mode)
	g.Lose()
	assert.Equal(t, ModeLose, g.Mode)

	// Resume does not revive an ended session.
	g.Resume()
	assert.Equal(t, ModeLose, g.Mode)
}

func TestQuitToMenuClearsSession(t *testing.T) {
	g := NewGame(config.Default())
	g.Mode = ModePlaying
	g.Elapsed = 12.5
	g.Message = "hi"

	g.QuitToMenu()

	assert.Equal(t, ModeMenu, g.Mode)
	assert.False(t, g.InSession())
	assert.Zero(t, g.Elapsed)
	assert.Empty(t, g.Message)
	assert.Equal(t, 0, g.Projectiles.Size())
}
