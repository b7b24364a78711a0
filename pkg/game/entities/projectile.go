package entities

import "cubemaze/pkg/engine/vec"

// Projectile is a monster shot travelling in a straight line until it
// hits something or its lifetime runs out.
type Projectile struct {
	Pos vec.Vec2
	Vel vec.Vec2 // cells per second

	// TTL is the remaining lifetime in seconds.
	TTL float64

	Radius float64
}

// NewProjectile launches a shot from origin toward target.
func NewProjectile(origin, target vec.Vec2, speed, radius, lifetime float64) *Projectile {
	dir := target.Sub(origin).Normalize()
	return &Projectile{
		Pos:    origin,
		Vel:    dir.Scale(speed),
		TTL:    lifetime,
		Radius: radius,
	}
}

// Tick advances the projectile by dt seconds and returns the position it
// held before moving, so callers can sweep the travelled segment against
// walls and the player.
func (pr *Projectile) Tick(dt float64) vec.Vec2 {
	prev := pr.Pos
	pr.Pos = pr.Pos.Add(pr.Vel.Scale(dt))
	pr.TTL -= dt
	return prev
}

// Expired reports whether the projectile's lifetime has run out.
func (pr *Projectile) Expired() bool {
	return pr.TTL <= 0
}
