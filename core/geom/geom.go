package geom

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is any scalar a Vector can be built from.
type Number interface {
	constraints.Integer | constraints.Float
}

// Vector is a 2d vector over a numeric scalar. Every method returns a new value.
type Vector[T Number] struct{ X, Y T }

func New[T Number](x, y T) Vector[T] {
	return Vector[T]{x, y}
}

// FromPair builds a vector from an (x, y) pair, the counterpart of Pair.
func FromPair[T Number](x, y T) Vector[T] {
	return New(x, y)
}

func Zero[T Number]() Vector[T] {
	return Vector[T]{}
}

func (v Vector[T]) Pair() (T, T) {
	return v.X, v.Y
}

func (v Vector[T]) Add(other Vector[T]) Vector[T] {
	return New(v.X+other.X, v.Y+other.Y)
}

func (v Vector[T]) Sub(other Vector[T]) Vector[T] {
	return New(v.X-other.X, v.Y-other.Y)
}

func (v Vector[T]) Neg() Vector[T] {
	return New(-v.X, -v.Y)
}

func (v Vector[T]) Mul(by T) Vector[T] {
	return New(v.X*by, v.Y*by)
}

// Scale is Mul with the scalar on the left.
func Scale[T Number](by T, v Vector[T]) Vector[T] {
	return New(by*v.X, by*v.Y)
}

// Div divides both components by a scalar. Division by zero behaves as it does for T:
// infinities or NaN for floats, a runtime panic for integers.
func (v Vector[T]) Div(by T) Vector[T] {
	return New(v.X/by, v.Y/by)
}

func (v Vector[T]) MulVec(other Vector[T]) Vector[T] {
	return New(v.X*other.X, v.Y*other.Y)
}

func (v Vector[T]) DivVec(other Vector[T]) Vector[T] {
	return New(v.X/other.X, v.Y/other.Y)
}

func (v Vector[T]) Eq(other Vector[T]) bool {
	return v == other
}

func (v Vector[T]) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v Vector[T]) Dot(other Vector[T]) T {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the 3d cross product.
func (v Vector[T]) Cross(other Vector[T]) T {
	return v.X*other.Y - v.Y*other.X
}

func (v Vector[T]) Min(other Vector[T]) Vector[T] {
	return New(min(v.X, other.X), min(v.Y, other.Y))
}

func (v Vector[T]) Max(other Vector[T]) Vector[T] {
	return New(max(v.X, other.X), max(v.Y, other.Y))
}

func clamp[T Number](value, ll, ul T) T {
	if value < ll {
		return ll
	} else if value > ul {
		return ul
	}
	return value
}

// limits vector coordinates to the box spanned by lo and hi
func (v Vector[T]) Clamp(lo, hi Vector[T]) Vector[T] {
	return New(clamp(v.X, lo.X, hi.X), clamp(v.Y, lo.Y, hi.Y))
}

func (v Vector[T]) String() string {
	return fmt.Sprintf("{%v, %v}", v.X, v.Y)
}

// Mod is the component-wise remainder with Go's % semantics.
func Mod[T constraints.Integer](v, m Vector[T]) Vector[T] {
	return New(v.X%m.X, v.Y%m.Y)
}

func ModScalar[T constraints.Integer](v Vector[T], m T) Vector[T] {
	return New(v.X%m, v.Y%m)
}

// Not is the component-wise bitwise complement.
func Not[T constraints.Integer](v Vector[T]) Vector[T] {
	return New(^v.X, ^v.Y)
}

// Convert changes the scalar type with Go's numeric conversion rules.
func Convert[U, T Number](v Vector[T]) Vector[U] {
	return New(U(v.X), U(v.Y))
}
