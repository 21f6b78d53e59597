package engine

import (
	"math"

	"github.com/san-kum/bibber/internal/vec"
)

// Single-species Lennard-Jones parameters.
const (
	// Epsilon is the depth of the potential well.
	Epsilon = 1.0
	// Sigma is the separation at which the potential crosses zero.
	Sigma = 1.0
)

// CutoffDefault is the default interaction cutoff radius. Pairs
// separated by more than this contribute no force.
const CutoffDefault = 2.5 * Sigma

// LennardJones evaluates the interatomic force term for a separation
// vector r, directed along r:
//
//	F(r) = r * 4ε[(σ/|r|)^12 − (σ/|r|)^6]
//
// The function is pure and total: it diverges as |r| → 0 and produces
// NaN at exactly zero separation, which the caller surfaces as
// divergence. Range limiting (the cutoff radius) is the caller's
// responsibility, not the potential's.
func LennardJones(r vec.Vec3) vec.Vec3 {
	sr6 := math.Pow(Sigma/r.Norm(), 6)
	sr12 := sr6 * sr6
	return r.Scale(4 * Epsilon * (sr12 - sr6))
}

// potentialEnergy evaluates V_LJ at separation distance d, used by the
// energy diagnostics.
func potentialEnergy(d float64) float64 {
	sr6 := math.Pow(Sigma/d, 6)
	return 4 * Epsilon * (sr6*sr6 - sr6)
}
