package canvas

// MapToRange maps value in [0,1] linearly onto [min,max].
func MapToRange(min, max, value float64) float64 {
	return min + value*max - value*min
}

// Clamp limits v to [lo,hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
