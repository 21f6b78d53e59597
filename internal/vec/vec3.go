// Package vec provides the three-component vector type used for
// positions, velocities, accelerations and box extents.
package vec

import (
	"math"

	"github.com/san-kum/bibber/internal/unit"
)

// Vec3 is a three-component double-precision vector. All operators are
// strictly component-wise except Norm; there is no implicit
// normalization. Division by a zero component propagates IEEE
// infinities and NaNs rather than failing: the integrator relies on
// that propagation to detect divergence.
type Vec3 struct {
	X, Y, Z float64
}

func New(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func Zero() Vec3 { return Vec3{} }
func One() Vec3  { return Vec3{X: 1, Y: 1, Z: 1} }

// Splat returns a vector with all components set to f.
func Splat(f float64) Vec3 { return Vec3{X: f, Y: f, Z: f} }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(o Vec3) Vec3 { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }
func (v Vec3) Div(o Vec3) Vec3 { return Vec3{v.X / o.X, v.Y / o.Y, v.Z / o.Z} }

func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Scale multiplies every component by f.
func (v Vec3) Scale(f float64) Vec3 { return Vec3{v.X * f, v.Y * f, v.Z * f} }

// DivScalar divides every component by f.
func (v Vec3) DivScalar(f float64) Vec3 { return Vec3{v.X / f, v.Y / f, v.Z / f} }

// MulTime scales the vector by a time quantity on the basis of seconds,
// assuming the components carry per-second units.
func (v Vec3) MulTime(t unit.Time) Vec3 { return v.Scale(t.AsSeconds()) }

// Powi raises every component to the integer power n.
func (v Vec3) Powi(n int) Vec3 {
	e := float64(n)
	return Vec3{math.Pow(v.X, e), math.Pow(v.Y, e), math.Pow(v.Z, e)}
}

// Norm returns the Euclidean length of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// IsFinite reports whether every component is neither NaN nor infinite.
func (v Vec3) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}
