// Package entities holds the moving actors of a session: the player, the
// monster and its projectiles. Entities carry their own state and timers
// but never touch the grid directly; the gameplay layer resolves their
// movement against walls.
package entities

import (
	"cubemaze/pkg/engine/vec"
	"cubemaze/pkg/game/config"
)

// Player is the first-person actor. Position is in world cells, heading
// in radians (0 faces east, positive turns clockwise on the map).
type Player struct {
	Pos     vec.Vec2
	Heading float64

	Health    int
	MaxHealth int

	// InvulnTimer is the remaining damage immunity in seconds. While
	// positive, hits are swallowed without costing health.
	InvulnTimer float64

	start vec.Vec2
}

// NewPlayer creates a player at the given spawn point with full health.
func NewPlayer(start vec.Vec2, cfg config.Config) *Player {
	return &Player{
		Pos:       start,
		Health:    cfg.MaxHealth,
		MaxHealth: cfg.MaxHealth,
		start:     start,
	}
}

// Alive reports whether the player has health remaining.
func (p *Player) Alive() bool {
	return p.Health > 0
}

// Invulnerable reports whether the player currently ignores damage.
func (p *Player) Invulnerable() bool {
	return p.InvulnTimer > 0
}

// TakeDamage applies a hit. Returns true if health was actually lost;
// hits during invulnerability or after death do nothing. A successful
// hit starts a fresh invulnerability window.
func (p *Player) TakeDamage(amount int, invulnSeconds float64) bool {
	if !p.Alive() || p.Invulnerable() {
		return false
	}

	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
	p.InvulnTimer = invulnSeconds
	return true
}

// Tick advances the player's timers by dt seconds.
func (p *Player) Tick(dt float64) {
	if p.InvulnTimer > 0 {
		p.InvulnTimer -= dt
		if p.InvulnTimer < 0 {
			p.InvulnTimer = 0
		}
	}
}

// Reset returns the player to the spawn point at full health, clearing
// any invulnerability.
func (p *Player) Reset() {
	p.Pos = p.start
	p.Heading = 0
	p.Health = p.MaxHealth
	p.InvulnTimer = 0
}
