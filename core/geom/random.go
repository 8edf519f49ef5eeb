package geom

import "Veccentric/config"

// Source yields uniform floats in [0, 1). *math/rand.Rand and *math/rand/v2.Rand both qualify.
type Source interface {
	Float64() float64
}

// Random returns a unit vector whose angle is uniform over [0, 2π).
func Random(src Source) FVector {
	return FromAngle(src.Float64() * config.Tau)
}

// RandomRange returns a vector with a uniform angle and a magnitude uniform over [lo, hi).
func RandomRange(src Source, lo, hi float64) FVector {
	dir := Random(src)
	return dir.Mul(lo + src.Float64()*(hi-lo))
}
