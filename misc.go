package gosurf3d

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// clamp01 maps NaN to 0.
func clamp01(v float64) float64 {
	if !(v >= 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
