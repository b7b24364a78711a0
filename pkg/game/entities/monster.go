package entities

import (
	"math"

	"cubemaze/pkg/engine/vec"
	"cubemaze/pkg/game/config"
)

// MonsterState is the monster's behavior state.
type MonsterState int

// Monster states. Patrol is the resting behavior; Chase, WindUp and
// Cooldown form the attack cycle.
const (
	StatePatrol MonsterState = iota
	StateChase
	StateWindUp
	StateCooldown
)

// String returns the string representation of a monster state.
func (s MonsterState) String() string {
	switch s {
	case StatePatrol:
		return "Patrol"
	case StateChase:
		return "Chase"
	case StateWindUp:
		return "WindUp"
	case StateCooldown:
		return "Cooldown"
	default:
		return "Unknown"
	}
}

// Monster is the maze's single hostile actor. It patrols a sine-wave
// track around its spawn point until it spots the player, then chases
// and fires projectiles on a wind-up/cooldown cycle.
//
// Update drives the state machine and produces a desired movement delta;
// the gameplay layer resolves that delta against walls. Keeping wall
// knowledge out of the monster means the state machine can be tested
// without a grid.
type Monster struct {
	Pos   vec.Vec2
	State MonsterState

	origin vec.Vec2 // patrol anchor, the spawn point

	patrolClock  float64 // drives the sine track, seconds since spawn
	windUpLeft   float64
	cooldownLeft float64

	// graceLeft counts down while a chased player is out of range; the
	// chase only breaks once it reaches zero, which stops state
	// flapping at the vision boundary.
	graceLeft float64

	// aim is the player's position captured when a wind-up starts. The
	// projectile flies at this point even if the player has moved since,
	// which is what makes the attack dodgeable.
	aim vec.Vec2
}

// NewMonster creates a patrolling monster anchored at origin.
func NewMonster(origin vec.Vec2) *Monster {
	return &Monster{
		Pos:    origin,
		State:  StatePatrol,
		origin: origin,
	}
}

// Origin returns the patrol anchor.
func (m *Monster) Origin() vec.Vec2 {
	return m.origin
}

// CooldownRemaining returns the seconds left before the monster may wind
// up another attack.
func (m *Monster) CooldownRemaining() float64 {
	return m.cooldownLeft
}

// WindingUp reports whether an attack is charging. Renderers use it to
// telegraph the incoming shot.
func (m *Monster) WindingUp() bool {
	return m.State == StateWindUp
}

// patrolTarget returns the point the monster heads for while patrolling:
// a sine-wave sweep along the east-west axis through the spawn point.
func (m *Monster) patrolTarget(cfg config.Config) vec.Vec2 {
	offset := math.Sin(m.patrolClock*cfg.PatrolFrequency) * cfg.PatrolAmplitude
	return vec.Vec2{X: m.origin.X + offset, Y: m.origin.Y}
}

// seek returns a movement delta of at most speed*dt toward target,
// stopping exactly on it when closer than one step.
func (m *Monster) seek(target vec.Vec2, speed, dt float64) vec.Vec2 {
	to := target.Sub(m.Pos)
	step := speed * dt
	if to.Len() <= step {
		return to
	}
	return to.Normalize().Scale(step)
}

// Update advances the monster by dt seconds. playerPos is the player's
// current position and seesPlayer whether an unobstructed line exists
// between monster and player. It returns the movement delta the monster
// wants to make and, on the tick a wind-up completes, the single
// projectile it fires.
func (m *Monster) Update(dt float64, playerPos vec.Vec2, seesPlayer bool, cfg config.Config) (vec.Vec2, *Projectile) {
	dist := vec.Dist(m.Pos, playerPos)

	switch m.State {
	case StatePatrol:
		m.patrolClock += dt

		if dist <= cfg.VisionRange && seesPlayer {
			m.State = StateChase
			m.graceLeft = cfg.GracePeriod.Seconds()
			return vec.Vec2{}, nil
		}
		return m.seek(m.patrolTarget(cfg), cfg.MonsterSpeed, dt), nil

	case StateChase:
		if dist > cfg.VisionRange*cfg.HysteresisFactor {
			m.graceLeft -= dt
			if m.graceLeft <= 0 {
				m.State = StatePatrol
				return vec.Vec2{}, nil
			}
		} else {
			m.graceLeft = cfg.GracePeriod.Seconds()
		}

		if dist <= cfg.AttackRange && m.cooldownLeft <= 0 {
			m.State = StateWindUp
			m.windUpLeft = cfg.WindUpDuration.Seconds()
			m.aim = playerPos
			return vec.Vec2{}, nil
		}
		return m.seek(playerPos, cfg.MonsterSpeed, dt), nil

	case StateWindUp:
		// The player escaping attack range aborts the charge.
		if dist > cfg.AttackRange {
			m.State = StateChase
			m.graceLeft = cfg.GracePeriod.Seconds()
			return vec.Vec2{}, nil
		}

		m.windUpLeft -= dt
		if m.windUpLeft <= 0 {
			m.State = StateCooldown
			m.cooldownLeft = cfg.CooldownDuration.Seconds()
			proj := NewProjectile(m.Pos, m.aim, cfg.ProjectileSpeed, cfg.ProjectileRadius, cfg.ProjectileLifetime.Seconds())
			return vec.Vec2{}, proj
		}
		// The monster stands still while charging.
		return vec.Vec2{}, nil

	case StateCooldown:
		m.cooldownLeft -= dt
		if m.cooldownLeft <= 0 {
			m.cooldownLeft = 0
			if dist <= cfg.VisionRange && seesPlayer {
				m.State = StateChase
				m.graceLeft = cfg.GracePeriod.Seconds()
			} else {
				m.State = StatePatrol
			}
			return vec.Vec2{}, nil
		}
		// Keep pressure on the player while the attack recharges.
		return m.seek(playerPos, cfg.MonsterSpeed, dt), nil
	}

	return vec.Vec2{}, nil
}
