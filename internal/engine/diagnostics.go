package engine

import "github.com/san-kum/bibber/internal/vec"

// Temperature returns the instantaneous kinetic temperature in Kelvin,
// averaged over the particles:
//
//	T = (2/3) * (1/k_B) * <E_kin>
//
// An empty universe reports zero. NaN velocities propagate into the
// result, which the step's instability check relies on.
func (u *Universe) Temperature() float64 {
	if len(u.particles) == 0 {
		return 0
	}
	sum := 0.0
	for i := range u.particles {
		p := &u.particles[i]
		v := p.Vel.Norm()
		// E_kin = 1/2*m*v^2, T = 2/3 * E_kin / k_B
		sum += (2.0 / 3.0) / Boltzmann * 0.5 * p.Mass * v * v
	}
	return sum / float64(len(u.particles))
}

// KineticEnergy returns the total kinetic energy in Joules.
func (u *Universe) KineticEnergy() float64 {
	sum := 0.0
	for i := range u.particles {
		p := &u.particles[i]
		v := p.Vel.Norm()
		sum += 0.5 * p.Mass * v * v
	}
	return sum
}

// PotentialEnergy returns the total pair potential energy in Joules at
// the zero image offset, cutoff-limited like the force sum.
func (u *Universe) PotentialEnergy() float64 {
	sum := 0.0
	for i := range u.particles {
		for j := i + 1; j < len(u.particles); j++ {
			d := u.particles[i].Pos.Sub(u.particles[j].Pos).Norm()
			if d > u.cutoff {
				continue
			}
			sum += potentialEnergy(d)
		}
	}
	return sum
}

// Momentum returns the total linear momentum in kg·m/s.
func (u *Universe) Momentum() vec.Vec3 {
	total := vec.Zero()
	for i := range u.particles {
		p := &u.particles[i]
		total = total.Add(p.Vel.Scale(p.Mass))
	}
	return total
}
