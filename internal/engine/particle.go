package engine

import "github.com/san-kum/bibber/internal/vec"

// Particle is a point mass tracked by the integrator.
type Particle struct {
	// Pos is the position in meters.
	Pos vec.Vec3
	// Vel is the velocity in meters per second.
	Vel vec.Vec3
	// Acc is the acceleration in meters per second squared.
	Acc vec.Vec3
	// Mass in kilograms. Must be positive.
	Mass float64
}

func NewParticle(pos, vel, acc vec.Vec3, mass float64) Particle {
	return Particle{Pos: pos, Vel: vel, Acc: acc, Mass: mass}
}
