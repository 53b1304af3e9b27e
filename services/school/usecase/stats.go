package usecase

import "math"

// percentOf returns round(100 * part / total) as an integer in [0,100],
// and 0 when the denominator is 0.
func percentOf(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(total)))
}

// roundTo1 rounds to one decimal place.
func roundTo1(x float64) float64 {
	return math.Round(x*10) / 10
}
