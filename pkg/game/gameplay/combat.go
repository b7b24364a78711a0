package gameplay

import (
	"log"

	"cubemaze/pkg/engine/vec"
	"cubemaze/pkg/game/entities"
	"cubemaze/pkg/game/state"
)

// resolveProjectiles advances every live projectile and removes the ones
// that hit a wall, hit the player, or ran out of lifetime. A projectile
// that reaches the player is consumed even when invulnerability swallows
// the damage, so back-to-back shots cannot stack a hit.
func resolveProjectiles(g *state.Game, dt float64) {
	var dead []*entities.Projectile

	g.Projectiles.Each(func(pr *entities.Projectile) {
		prev := pr.Tick(dt)

		if g.Grid.SegmentBlocked(prev, pr.Pos) {
			dead = append(dead, pr)
			return
		}

		// The whole travelled segment is tested, not just the endpoint, so
		// a fast shot cannot tunnel through the player within one tick.
		hitRange := pr.Radius + g.Cfg.PlayerRadius
		if vec.DistToSegment(g.Player.Pos, prev, pr.Pos) <= hitRange {
			if g.Player.TakeDamage(g.Cfg.Damage, g.Cfg.InvulnDuration.Seconds()) {
				log.Printf("[GAME] session %s: player hit, health %d/%d",
					g.SessionID, g.Player.Health, g.Player.MaxHealth)
			}
			dead = append(dead, pr)
			return
		}

		if pr.Expired() {
			dead = append(dead, pr)
		}
	})

	for _, pr := range dead {
		g.Projectiles.Remove(pr)
	}
}
