package geometry

import (
	"errors"
	"fmt"
	"math"
)

// Epsilon is the float64 comparison tolerance used across the package.
// Lengths at or below Epsilon are treated as zero.
const Epsilon = 1e-9

// Vector2D is a 2D vector or point in cartesian space.
// X and Y are exported on purpose: they are plain data, and literal
// initialization (Vector2D{1, 2}) stays cheap and readable.
type Vector2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// New creates a new Vector2D. Provided for call sites that read better
// with a constructor; a struct literal is equivalent.
func New(x, y float64) Vector2D {
	return Vector2D{X: x, Y: y}
}

// String implements fmt.Stringer.
func (v Vector2D) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}

// ---------------------------------------------------------------------
// Arithmetic. Value receivers returning new values: vectors stay
// immutable and small enough to copy for free.
// ---------------------------------------------------------------------

// Add returns v + other.
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{v.X - other.X, v.Y - other.Y}
}

// Mul scales the vector by a scalar.
func (v Vector2D) Mul(scalar float64) Vector2D {
	return Vector2D{v.X * scalar, v.Y * scalar}
}

// Div scales the vector by 1/scalar. Dividing by zero returns an Inf
// vector and an error rather than panicking.
func (v Vector2D) Div(scalar float64) (Vector2D, error) {
	if scalar == 0 {
		return Vector2D{math.Inf(1), math.Inf(1)}, errors.New("vector cannot be divided by zero")
	}
	return Vector2D{v.X / scalar, v.Y / scalar}, nil
}

// Dot returns the dot product of two vectors.
func (v Vector2D) Dot(other Vector2D) float64 {
	return v.X*other.X + v.Y*other.Y
}

// ---------------------------------------------------------------------
// Magnitude and normalization
// ---------------------------------------------------------------------

// LenSqr returns the squared magnitude. Cheaper than Len, use for
// comparisons.
func (v Vector2D) LenSqr() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len returns the magnitude of the vector.
func (v Vector2D) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns a unit vector in the same direction, or the zero
// vector when the length is at or below Epsilon.
func (v Vector2D) Normalize() Vector2D {
	l := v.Len()
	if l <= Epsilon {
		return Vector2D{}
	}
	return v.Mul(1 / l)
}

// ---------------------------------------------------------------------
// Utilities
// ---------------------------------------------------------------------

// DistanceTo returns the Euclidean distance to another point.
func (v Vector2D) DistanceTo(other Vector2D) float64 {
	return v.Sub(other).Len()
}

// DistanceSquaredTo returns the squared distance to another point.
func (v Vector2D) DistanceSquaredTo(other Vector2D) float64 {
	return v.Sub(other).LenSqr()
}

// Lerp interpolates between v and target: v + (target-v)*t.
func (v Vector2D) Lerp(target Vector2D, t float64) Vector2D {
	return v.Add(target.Sub(v).Mul(t))
}

// IsFinite reports whether both components are finite numbers.
func (v Vector2D) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Eq compares two vectors within Epsilon, absorbing float rounding.
func (v Vector2D) Eq(other Vector2D) bool {
	return math.Abs(v.X-other.X) <= Epsilon && math.Abs(v.Y-other.Y) <= Epsilon
}
