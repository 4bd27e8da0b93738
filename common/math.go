package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi]. When hi < lo the result is lo.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Sign returns -1, 0 or +1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// FloorDiv returns floor(v / size) as an int. A non-positive size yields 0.
func FloorDiv(v, size float64) int {
	if size <= 0 {
		return 0
	}
	return int(math.Floor(v / size))
}

// Min01 clamps a progress value to [0, 1].
func Min01(v float64) float64 {
	return Clamp(v, 0, 1)
}
