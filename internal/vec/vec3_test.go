package vec

import (
	"math"
	"testing"

	"github.com/san-kum/bibber/internal/unit"
)

func TestComponentwiseArithmetic(t *testing.T) {
	a := New(1, 2, 3)
	b := New(4, -5, 6)

	if got := a.Add(b); got != New(5, -3, 9) {
		t.Errorf("Add: got %+v", got)
	}
	if got := a.Sub(b); got != New(-3, 7, -3) {
		t.Errorf("Sub: got %+v", got)
	}
	if got := a.Mul(b); got != New(4, -10, 18) {
		t.Errorf("Mul: got %+v", got)
	}
	if got := New(8, 10, -6).Div(New(2, 5, 3)); got != New(4, 2, -2) {
		t.Errorf("Div: got %+v", got)
	}
	if got := a.Neg(); got != New(-1, -2, -3) {
		t.Errorf("Neg: got %+v", got)
	}
	if got := a.Scale(2); got != New(2, 4, 6) {
		t.Errorf("Scale: got %+v", got)
	}
	if got := a.DivScalar(2); got != New(0.5, 1, 1.5) {
		t.Errorf("DivScalar: got %+v", got)
	}
}

func TestDivisionByZeroPropagates(t *testing.T) {
	v := One().Div(Zero())
	if !math.IsInf(v.X, 1) || !math.IsInf(v.Y, 1) || !math.IsInf(v.Z, 1) {
		t.Errorf("1/0 should be +Inf per component, got %+v", v)
	}
	if v.IsFinite() {
		t.Error("infinite vector should not report finite")
	}

	nan := Zero().Div(Zero())
	if !math.IsNaN(nan.X) {
		t.Errorf("0/0 should be NaN, got %g", nan.X)
	}
	if nan.IsFinite() {
		t.Error("NaN vector should not report finite")
	}
}

func TestNorm(t *testing.T) {
	if got := New(3, 4, 0).Norm(); got != 5 {
		t.Errorf("norm(3,4,0) = %g, want 5", got)
	}
	if got := Zero().Norm(); got != 0 {
		t.Errorf("norm(0) = %g, want 0", got)
	}
	if got := New(-2, 0, 0).Norm(); got != 2 {
		t.Errorf("norm should be non-negative, got %g", got)
	}
}

func TestPowi(t *testing.T) {
	v := New(2, 3, -2).Powi(2)
	if v != New(4, 9, 4) {
		t.Errorf("Powi(2): got %+v", v)
	}
	inv := New(2, 4, 8).Powi(-1)
	if inv != New(0.5, 0.25, 0.125) {
		t.Errorf("Powi(-1): got %+v", inv)
	}
}

func TestMulTime(t *testing.T) {
	got := New(1, 2, -3).MulTime(unit.Milliseconds(100))
	want := New(0.1, 0.2, -0.3)
	if math.Abs(got.X-want.X) > 1e-15 || math.Abs(got.Y-want.Y) > 1e-15 || math.Abs(got.Z-want.Z) > 1e-15 {
		t.Errorf("MulTime: got %+v, want %+v", got, want)
	}
}

func TestConstructors(t *testing.T) {
	if Splat(7) != New(7, 7, 7) {
		t.Error("Splat should fill all components")
	}
	if One() != New(1, 1, 1) {
		t.Error("One should be all ones")
	}
}
