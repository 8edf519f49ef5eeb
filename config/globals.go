package config

import "math"

// tolerance used by FVector.Near
const Epsilon = 1e-9

// one full turn in radians
const Tau = 2 * math.Pi
