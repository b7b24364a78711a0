// Package state holds the shared game state: the session's maze and
// actors, the controller mode, and the message line renderers display.
// Logic that mutates the state across a tick lives in the gameplay
// package; state only carries data and the mode transition rules.
package state

import (
	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"

	"cubemaze/pkg/engine/world"
	"cubemaze/pkg/game/config"
	"cubemaze/pkg/game/entities"
)

// Mode is the top-level controller state.
type Mode int

// Controller modes. Simulation only advances in ModePlaying; every other
// mode freezes the session where it stands.
const (
	ModeMenu Mode = iota
	ModePlaying
	ModePaused
	ModeWin
	ModeLose
)

// String returns the string representation of a mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "Menu"
	case ModePlaying:
		return "Playing"
	case ModePaused:
		return "Paused"
	case ModeWin:
		return "Win"
	case ModeLose:
		return "Lose"
	default:
		return "Unknown"
	}
}

// Game is the whole mutable state of one run of the program. A session
// (grid plus actors) exists only between StartRun and QuitToMenu; in
// ModeMenu the session fields are nil.
type Game struct {
	Mode Mode

	// SessionID identifies the current session in logs.
	SessionID uuid.UUID

	Cfg  config.Config
	Seed int64

	Grid    *world.Grid
	Player  *entities.Player
	Monster *entities.Monster

	Projectiles mapset.Set[*entities.Projectile]

	// Elapsed is the session's simulated time in seconds.
	Elapsed float64

	Message string
}

// NewGame creates a game sitting at the main menu.
func NewGame(cfg config.Config) *Game {
	return &Game{
		Mode: ModeMenu,
		Cfg:  cfg,
	}
}

// InSession reports whether a maze session exists (playing, paused or on
// an end screen).
func (g *Game) InSession() bool {
	return g.Grid != nil
}

// Pause freezes a running session. No-op in any other mode.
func (g *Game) Pause() {
	if g.Mode == ModePlaying {
		g.Mode = ModePaused
	}
}

// Resume unfreezes a paused session. No-op in any other mode.
func (g *Game) Resume() {
	if g.Mode == ModePaused {
		g.Mode = ModePlaying
	}
}

// Win ends a running session as a victory.
func (g *Game) Win() {
	if g.Mode == ModePlaying {
		g.Mode = ModeWin
	}
}

// Lose ends a running session as a defeat.
func (g *Game) Lose() {
	if g.Mode == ModePlaying {
		g.Mode = ModeLose
	}
}

// QuitToMenu discards the session and returns to the main menu.
func (g *Game) QuitToMenu() {
	g.Mode = ModeMenu
	g.SessionID = uuid.Nil
	g.Grid = nil
	g.Player = nil
	g.Monster = nil
	g.Projectiles = mapset.New[*entities.Projectile]()
	g.Elapsed = 0
	g.Message = ""
}

// ClearProjectiles removes every live projectile.
func (g *Game) ClearProjectiles() {
	g.Projectiles = mapset.New[*entities.Projectile]()
}
