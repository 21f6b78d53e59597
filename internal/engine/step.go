package engine

import (
	"math"

	"github.com/san-kum/bibber/internal/vec"
)

// imageOffsets enumerates the 27 periodic image displacements: the zero
// offset plus every {-1,0,+1} combination per axis. Each offset is
// scaled component-wise by the box extents during force evaluation.
var imageOffsets = func() [27]vec.Vec3 {
	var offs [27]vec.Vec3
	i := 0
	for x := -1.0; x <= 1.0; x++ {
		for y := -1.0; y <= 1.0; y++ {
			for z := -1.0; z <= 1.0; z++ {
				offs[i] = vec.New(x, y, z)
				i++
			}
		}
	}
	return offs
}()

// Step advances the universe by exactly one timestep. On success the
// clock and iteration counter have advanced and the state is finite.
// On failure the particle state, clock and counter are all left at
// their pre-step values and the caller should stop driving the run.
func (u *Universe) Step() error {
	if len(u.particles) == 0 {
		return &StepError{Iteration: u.iteration, Time: u.time, Wrapped: ErrNoParticles}
	}

	before := u.Snapshot()

	u.predict()
	u.updateForces()
	u.wrapBoundary()
	err := u.applyThermostat()
	// Pressure control would go here; it is deliberately not modeled.

	if err == nil && !u.finite() {
		err = ErrDiverged
	}
	if err != nil {
		copy(u.particles, before)
		return &StepError{Iteration: u.iteration, Time: u.time, Wrapped: err}
	}

	u.time = u.time.Add(u.dt)
	u.iteration++
	return nil
}

// Steps applies n timesteps in succession, stopping at the first
// failure.
func (u *Universe) Steps(n int) error {
	for i := 0; i < n; i++ {
		if err := u.Step(); err != nil {
			return err
		}
	}
	return nil
}

// predict applies the explicit position and velocity update using the
// previous step's accelerations. The corrected accelerations computed
// afterwards are not fed back into this step: the scheme is a bare
// predictor without a corrector pass.
func (u *Universe) predict() {
	for i := range u.particles {
		p := &u.particles[i]
		// pos += vel*dt + 1/2*acc*dt^2
		p.Pos = p.Pos.
			Add(p.Vel.MulTime(u.dt)).
			Add(p.Acc.MulTime(u.dt).MulTime(u.dt).Scale(0.5))
		// vel += acc*dt
		p.Vel = p.Vel.Add(p.Acc.MulTime(u.dt))
	}
}

// updateForces accumulates the Lennard-Jones force on every particle
// from every other particle across all 27 periodic images, then derives
// accelerations. Positions are captured before any mutation so the sum
// is independent of particle ordering. Each particle sums contributions
// from all others; there is no half-pair shortcut.
func (u *Universe) updateForces() {
	if cap(u.positions) < len(u.particles) {
		u.positions = make([]vec.Vec3, len(u.particles))
	}
	positions := u.positions[:len(u.particles)]
	for i, p := range u.particles {
		positions[i] = p.Pos
	}

	for i := range u.particles {
		p := &u.particles[i]
		force := vec.Zero()
		for j, other := range positions {
			if i == j {
				continue
			}
			for _, off := range imageOffsets {
				image := other.Add(off.Mul(u.boundary))
				// Separation from particle i to the image of j.
				r := image.Sub(p.Pos)
				if r.Norm() > u.cutoff {
					continue
				}
				// F = -∇V, approximated by negating the potential term.
				force = force.Add(LennardJones(r).Neg())
			}
		}
		// a = F / m
		p.Acc = force.DivScalar(p.Mass)
	}
}

// wrapBoundary teleports out-of-cell coordinates back into the periodic
// box, axis by axis. Velocities are unaffected.
func (u *Universe) wrapBoundary() {
	for i := range u.particles {
		p := &u.particles[i]
		p.Pos.X = u.wrapAxis(p.Pos.X, u.boundary.X)
		p.Pos.Y = u.wrapAxis(p.Pos.Y, u.boundary.Y)
		p.Pos.Z = u.wrapAxis(p.Pos.Z, u.boundary.Z)
	}
}

func (u *Universe) wrapAxis(x, extent float64) float64 {
	half := extent / 2
	if x >= -half && x <= half {
		return x
	}
	switch u.wrap {
	case WrapModulo:
		return math.Mod(x, extent)
	default:
		if x < -half {
			return x + extent
		}
		return x - extent
	}
}

// applyThermostat forces every particle's speed to the target value
// derived from the configured temperature, preserving direction:
//
//	|v| = sqrt(3*k_B*T/m)
//
// A particle at rest has no direction to preserve, so the rescale is
// rejected as ErrStationaryParticle instead of dividing by zero.
func (u *Universe) applyThermostat() error {
	if u.thermostat == ThermostatOff {
		return nil
	}
	for i := range u.particles {
		p := &u.particles[i]
		speed := p.Vel.Norm()
		if speed == 0 {
			return ErrStationaryParticle
		}
		target := math.Sqrt(3 * Boltzmann * u.temperature / p.Mass)
		p.Vel = p.Vel.Scale(target / speed)
	}
	return nil
}

// finite reports whether every particle state component and the implied
// temperature are finite.
func (u *Universe) finite() bool {
	for i := range u.particles {
		p := &u.particles[i]
		if !p.Pos.IsFinite() || !p.Vel.IsFinite() || !p.Acc.IsFinite() {
			return false
		}
	}
	return !math.IsNaN(u.Temperature())
}
