package engine

import (
	"math"
	"testing"

	"github.com/san-kum/bibber/internal/vec"
)

func TestLennardJonesAntisymmetry(t *testing.T) {
	r := vec.New(0.7, -0.3, 0.5)
	fwd := LennardJones(r)
	bwd := LennardJones(r.Neg())

	if fwd.Add(bwd).Norm() > 1e-12*fwd.Norm() {
		t.Errorf("F(r) + F(-r) should cancel, got %+v and %+v", fwd, bwd)
	}
}

func TestLennardJonesSign(t *testing.T) {
	// Inside sigma the potential term is positive: F points along +r.
	inside := LennardJones(vec.New(0.5, 0, 0))
	if inside.X <= 0 {
		t.Errorf("inside sigma the term should point along r, got %+v", inside)
	}

	// Beyond sigma it flips attractive.
	outside := LennardJones(vec.New(2.0, 0, 0))
	if outside.X >= 0 {
		t.Errorf("beyond sigma the term should point against r, got %+v", outside)
	}

	// At exactly sigma the bracketed term is zero.
	atSigma := LennardJones(vec.New(Sigma, 0, 0))
	if math.Abs(atSigma.X) > 1e-12 {
		t.Errorf("term should vanish at sigma, got %g", atSigma.X)
	}
}

func TestLennardJonesZeroSeparation(t *testing.T) {
	f := LennardJones(vec.Zero())
	if f.IsFinite() {
		t.Errorf("zero separation must not be finite, got %+v", f)
	}
}

func TestLennardJonesDivergesNearZero(t *testing.T) {
	near := LennardJones(vec.New(1e-3, 0, 0))
	far := LennardJones(vec.New(0.9, 0, 0))
	if math.Abs(near.X) <= math.Abs(far.X) {
		t.Error("force should grow without bound as separation shrinks")
	}
}
