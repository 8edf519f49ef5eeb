package geom

import "math"

// Direction is a unit vector, or zero when there is no direction to speak of.
type Direction FVector

func NewDir(v FVector) Direction {
	return Direction(v.Normalize())
}

// Dir returns the direction at angle radians from +X.
func Dir(angle float64) Direction {
	return Direction(FromAngle(angle))
}

func (d Direction) Scale(by float64) FVector {
	return NewF(d.X*by, d.Y*by)
}

func (d Direction) Vector() FVector {
	return FVector(d)
}

func (d Direction) Angle() float64 {
	return FVector(d).Angle()
}

// Rad is an angle in radians.
type Rad float64

// Deg is an angle in degrees.
type Deg float64

func (r Rad) Radians() float64 {
	return float64(r)
}

func (d Deg) Radians() float64 {
	return float64(d) * math.Pi / 180
}

func (r Rad) Degrees() Deg {
	return Deg(float64(r) * 180 / math.Pi)
}
