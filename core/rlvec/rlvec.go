// Package rlvec converts between geom vectors and raylib's float32 Vector2.
package rlvec

import (
	"Veccentric/core/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func FromRaylib(v rl.Vector2) geom.FVector {
	return geom.FVector(geom.Convert[float64](geom.Vector[float32](v)))
}

// ToRaylib narrows to float32, so precision beyond float32 is lost.
func ToRaylib(v geom.FVector) rl.Vector2 {
	return rl.Vector2(geom.Convert[float32](v.Vector()))
}

// Point rounds a position to integer pixel coordinates for the Draw* calls taking int32.
func Point(v geom.FVector) (int32, int32) {
	return geom.Convert[int32](v.Round()).Pair()
}
