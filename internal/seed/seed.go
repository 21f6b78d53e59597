// Package seed places the initial particle set inside the periodic box.
//
// Placement is random-uniform with minimum-separation pruning:
// candidates landing too close to an already accepted particle are
// discarded and redrawn. Generation is deterministic for a given seed.
package seed

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/san-kum/bibber/internal/engine"
	"github.com/san-kum/bibber/internal/vec"
)

// ErrExhausted indicates the generator could not place the requested
// number of particles within its attempt budget, typically because the
// box is too small for the minimum separation.
var ErrExhausted = errors.New("seed: placement attempts exhausted")

const (
	// DefaultMass is the particle mass in kilograms.
	DefaultMass = 1e-24
	// DefaultMinSeparation is the pruning distance in meters.
	DefaultMinSeparation = 7e-9
	// velocityFactor scales the box extent into the seeded velocity
	// range, in 1/s.
	velocityFactor = 100.0
	// attemptsPerParticle bounds total placement work. Placement
	// retries until it succeeds, but a full box must fail eventually
	// instead of spinning forever.
	attemptsPerParticle = 10000
)

// Generator produces particle sets inside an origin-centered box.
type Generator struct {
	rng      *rand.Rand
	boundary vec.Vec3

	// Mass assigned to every generated particle, in kilograms.
	Mass float64
	// MinSeparation is the pruning distance in meters.
	MinSeparation float64
}

// New returns a Generator over the given box, seeded deterministically.
func New(seed int64, boundary vec.Vec3) *Generator {
	return &Generator{
		rng:           rand.New(rand.NewSource(seed)),
		boundary:      boundary,
		Mass:          DefaultMass,
		MinSeparation: DefaultMinSeparation,
	}
}

// Generate places n particles with random positions and velocities,
// zero acceleration and the configured mass. Candidates closer than
// MinSeparation to an accepted particle are pruned and redrawn.
func (g *Generator) Generate(n int) ([]engine.Particle, error) {
	accepted := make([]engine.Particle, 0, n)
	budget := n * attemptsPerParticle
	for len(accepted) < n {
		if budget--; budget < 0 {
			return nil, fmt.Errorf("seed: placed %d/%d particles (min separation %g m): %w",
				len(accepted), n, g.MinSeparation, ErrExhausted)
		}
		candidate := g.particle()
		if g.tooClose(candidate.Pos, accepted) {
			continue
		}
		accepted = append(accepted, candidate)
	}
	return accepted, nil
}

func (g *Generator) particle() engine.Particle {
	pos := vec.New(
		g.inRange(g.boundary.X),
		g.inRange(g.boundary.Y),
		g.inRange(g.boundary.Z),
	)
	vel := vec.New(
		g.inRange(g.boundary.X*velocityFactor),
		g.inRange(g.boundary.Y*velocityFactor),
		g.inRange(g.boundary.Z*velocityFactor),
	)
	return engine.NewParticle(pos, vel, vec.Zero(), g.Mass)
}

// inRange draws uniformly from [-bound/2, bound/2).
func (g *Generator) inRange(bound float64) float64 {
	return (g.rng.Float64() - 0.5) * bound
}

func (g *Generator) tooClose(pos vec.Vec3, accepted []engine.Particle) bool {
	for i := range accepted {
		if pos.Sub(accepted[i].Pos).Norm() < g.MinSeparation {
			return true
		}
	}
	return false
}
