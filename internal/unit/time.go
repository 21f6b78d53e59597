// Package unit provides unit-safe scalar quantities for the simulation.
//
// Quantities are stored in SI base units internally; constructors and
// accessors are exact power-of-ten rescalings, so conversions round-trip
// up to ordinary double-precision arithmetic.
package unit

// Time is a simulation time quantity, stored internally in seconds.
// It is an immutable value type: arithmetic returns new values.
// Negative times are valid and used for relative durations.
type Time struct {
	seconds float64
}

// Zero returns the zero time.
func Zero() Time { return Time{} }

func Seconds(s float64) Time       { return Time{seconds: s} }
func Milliseconds(ms float64) Time { return Time{seconds: ms * 1e-3} }
func Microseconds(us float64) Time { return Time{seconds: us * 1e-6} }
func Nanoseconds(ns float64) Time  { return Time{seconds: ns * 1e-9} }
func Picoseconds(ps float64) Time  { return Time{seconds: ps * 1e-12} }
func Femtoseconds(fs float64) Time { return Time{seconds: fs * 1e-15} }

func (t Time) AsSeconds() float64      { return t.seconds }
func (t Time) AsMilliseconds() float64 { return t.seconds * 1e3 }
func (t Time) AsMicroseconds() float64 { return t.seconds * 1e6 }
func (t Time) AsNanoseconds() float64  { return t.seconds * 1e9 }
func (t Time) AsPicoseconds() float64  { return t.seconds * 1e12 }
func (t Time) AsFemtoseconds() float64 { return t.seconds * 1e15 }

func (t Time) Add(o Time) Time { return Time{seconds: t.seconds + o.seconds} }
func (t Time) Sub(o Time) Time { return Time{seconds: t.seconds - o.seconds} }

// Mul and Div operate on the underlying second values. They exist for
// ratio and scaling calculations (step counts, snapshot cadence); the
// resulting unit is the caller's concern.
func (t Time) Mul(o Time) Time { return Time{seconds: t.seconds * o.seconds} }
func (t Time) Div(o Time) Time { return Time{seconds: t.seconds / o.seconds} }

// Scale multiplies the time by a dimensionless factor.
func (t Time) Scale(f float64) Time { return Time{seconds: t.seconds * f} }

func (t Time) Before(o Time) bool { return t.seconds < o.seconds }
func (t Time) After(o Time) bool  { return t.seconds > o.seconds }
func (t Time) IsZero() bool       { return t.seconds == 0 }
