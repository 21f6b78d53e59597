package unit

import (
	"math"
	"testing"
)

func TestConversionsRoundTrip(t *testing.T) {
	const value = 12.5

	tests := []struct {
		name string
		ctor func(float64) Time
		get  func(Time) float64
	}{
		{"seconds", Seconds, Time.AsSeconds},
		{"milliseconds", Milliseconds, Time.AsMilliseconds},
		{"microseconds", Microseconds, Time.AsMicroseconds},
		{"nanoseconds", Nanoseconds, Time.AsNanoseconds},
		{"picoseconds", Picoseconds, Time.AsPicoseconds},
		{"femtoseconds", Femtoseconds, Time.AsFemtoseconds},
	}

	for _, tt := range tests {
		got := tt.get(tt.ctor(value))
		if math.Abs(got-value) > 1e-12*value {
			t.Errorf("%s round trip: got %g, want %g", tt.name, got, value)
		}
	}
}

func TestConversionFactors(t *testing.T) {
	one := Seconds(1)
	if got := one.AsMilliseconds(); got != 1e3 {
		t.Errorf("1 s = %g ms, want 1e3", got)
	}
	if got := one.AsNanoseconds(); got != 1e9 {
		t.Errorf("1 s = %g ns, want 1e9", got)
	}
	if got := one.AsPicoseconds(); got != 1e12 {
		t.Errorf("1 s = %g ps, want 1e12", got)
	}
	if got := one.AsFemtoseconds(); got != 1e15 {
		t.Errorf("1 s = %g fs, want 1e15", got)
	}
	if got := Femtoseconds(10).AsSeconds(); math.Abs(got-1e-14) > 1e-28 {
		t.Errorf("10 fs = %g s, want 1e-14", got)
	}
}

func TestArithmetic(t *testing.T) {
	a := Seconds(3)
	b := Seconds(2)

	if got := a.Add(b).AsSeconds(); got != 5 {
		t.Errorf("3+2 = %g, want 5", got)
	}
	if got := a.Sub(b).AsSeconds(); got != 1 {
		t.Errorf("3-2 = %g, want 1", got)
	}
	if got := a.Mul(b).AsSeconds(); got != 6 {
		t.Errorf("3*2 = %g, want 6", got)
	}
	if got := a.Div(b).AsSeconds(); got != 1.5 {
		t.Errorf("3/2 = %g, want 1.5", got)
	}
	if got := a.Scale(-2).AsSeconds(); got != -6 {
		t.Errorf("3*-2 = %g, want -6", got)
	}
}

func TestNegativeTimeIsValid(t *testing.T) {
	d := Seconds(1).Sub(Seconds(3))
	if got := d.AsSeconds(); got != -2 {
		t.Errorf("1-3 = %g, want -2", got)
	}
	if !d.Before(Zero()) {
		t.Error("negative duration should order before zero")
	}
}

func TestOrdering(t *testing.T) {
	if !Zero().Before(Femtoseconds(1)) {
		t.Error("0 should be before 1 fs")
	}
	if !Seconds(1).After(Picoseconds(1)) {
		t.Error("1 s should be after 1 ps")
	}
	if !Zero().IsZero() {
		t.Error("Zero should report IsZero")
	}
}
