package geom

import (
	"Veccentric/config"
	"math"
)

// FVector is a float64 vector with the geometric operations that need sqrt and trig.
// Converting to and from Vector[float64] is free.
type FVector Vector[float64]

func NewF(x, y float64) FVector {
	return FVector{x, y}
}

// FromAngle returns the unit vector pointing at angle (radians, counter-clockwise from +X).
func FromAngle(angle float64) FVector {
	return NewF(math.Cos(angle), math.Sin(angle))
}

func (v FVector) Vector() Vector[float64] {
	return Vector[float64](v)
}

func (v FVector) Pair() (float64, float64) {
	return v.X, v.Y
}

func (v FVector) Add(other FVector) FVector {
	return FVector(v.Vector().Add(other.Vector()))
}

func (v FVector) Sub(other FVector) FVector {
	return FVector(v.Vector().Sub(other.Vector()))
}

func (v FVector) Neg() FVector {
	return FVector(v.Vector().Neg())
}

func (v FVector) Mul(by float64) FVector {
	return FVector(v.Vector().Mul(by))
}

func (v FVector) Div(by float64) FVector {
	return FVector(v.Vector().Div(by))
}

func (v FVector) MulVec(other FVector) FVector {
	return FVector(v.Vector().MulVec(other.Vector()))
}

func (v FVector) DivVec(other FVector) FVector {
	return FVector(v.Vector().DivVec(other.Vector()))
}

func (v FVector) Dot(other FVector) float64 {
	return v.Vector().Dot(other.Vector())
}

func (v FVector) Cross(other FVector) float64 {
	return v.Vector().Cross(other.Vector())
}

func (v FVector) Clamp(lo, hi FVector) FVector {
	return FVector(v.Vector().Clamp(lo.Vector(), hi.Vector()))
}

func (v FVector) Eq(other FVector) bool {
	return v == other
}

func (v FVector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// ApproxEq reports whether both components differ by at most eps.
func (v FVector) ApproxEq(other FVector, eps float64) bool {
	return math.Abs(v.X-other.X) <= eps && math.Abs(v.Y-other.Y) <= eps
}

func (v FVector) Near(other FVector) bool {
	return v.ApproxEq(other, config.Epsilon)
}

func (v FVector) Mag() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v FVector) MagSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v FVector) Dist(other FVector) float64 {
	return v.Sub(other).Mag()
}

func (v FVector) DistSq(other FVector) float64 {
	return v.Sub(other).MagSq()
}

// Angle is measured from +X and lies in (-π, π]. The zero vector has angle 0.
func (v FVector) Angle() float64 {
	if v.IsZero() {
		return 0
	}
	return wrapAngle(math.Atan2(v.Y, v.X))
}

// AngleTo is the signed rotation taking v's direction onto other's, in (-π, π].
func (v FVector) AngleTo(other FVector) float64 {
	return wrapAngle(other.Angle() - v.Angle())
}

func wrapAngle(a float64) float64 {
	a = math.Remainder(a, config.Tau)
	if a <= -math.Pi {
		a += config.Tau
	}
	return a
}

// Normalize returns the unit vector with v's direction. The zero vector stays zero.
func (v FVector) Normalize() FVector {
	if v.IsZero() {
		return v
	}
	return v.Div(v.Mag())
}

// Limit caps the magnitude at maxMag. Vectors already within maxMag are returned as is,
// a longer one comes back with magnitude maxMag (never above it).
// An infinite component is scaled by maxMag/Inf = 0 and so comes back NaN.
func (v FVector) Limit(maxMag float64) FVector {
	mag := v.Mag()
	if mag <= maxMag {
		return v
	}
	if maxMag <= 0 {
		return FVector{}
	}

	limited := v.Mul(maxMag / mag)
	for limited.Mag() > maxMag {
		limited = limited.shrink()
	}
	return limited
}

// shrink moves each component one ulp toward zero, subnormals included.
func (v FVector) shrink() FVector {
	return NewF(math.Nextafter(v.X, 0), math.Nextafter(v.Y, 0))
}

// SetMag keeps the direction and replaces the magnitude. The zero vector has no
// direction and stays zero.
func (v FVector) SetMag(mag float64) FVector {
	if v.IsZero() {
		return v
	}
	return v.Mul(mag / v.Mag())
}

// Turn keeps the magnitude and points the vector at angle.
func (v FVector) Turn(angle float64) FVector {
	return Dir(angle).Scale(v.Mag())
}

// Rotate turns v counter-clockwise by angle radians.
func (v FVector) Rotate(angle float64) FVector {
	sin, cos := math.Sincos(angle)
	return NewF(
		v.X*cos-v.Y*sin,
		v.X*sin+v.Y*cos,
	)
}

// Perp is v rotated by a quarter turn counter-clockwise.
func (v FVector) Perp() FVector {
	return NewF(-v.Y, v.X)
}

// Reflect mirrors v about the line with the given normal, as a ball bouncing off a wall:
// v - 2(v·n)n/|n|². The component along the normal flips, so (5, 0) off normal (0, 1)
// stays (5, 0) and (1, 1) becomes (1, -1). A zero normal leaves v unchanged.
func (v FVector) Reflect(normal FVector) FVector {
	nn := normal.Dot(normal)
	if nn == 0 {
		return v
	}
	return v.Sub(normal.Mul(2 * v.Dot(normal) / nn))
}

// Wrap maps each component into [0, bound) so positions can wrap around a toroidal world.
func (v FVector) Wrap(bounds FVector) FVector {
	return NewF(wrap(v.X, bounds.X), wrap(v.Y, bounds.Y))
}

func wrap(value, bound float64) float64 {
	r := math.Mod(value, bound)
	if r < 0 {
		r += math.Abs(bound)
	}
	return r
}

func (v FVector) Round() Vector[int64] {
	return New(int64(math.Round(v.X)), int64(math.Round(v.Y)))
}

func (v FVector) Floor() Vector[int64] {
	return New(int64(math.Floor(v.X)), int64(math.Floor(v.Y)))
}

func (v FVector) Ceil() Vector[int64] {
	return New(int64(math.Ceil(v.X)), int64(math.Ceil(v.Y)))
}

func (v FVector) String() string {
	return v.Vector().String()
}
