package utils

import (
	"math"
)

// POW is an integer power, unrolled for small exponents
func POW(x float64, pp int) (y float64) {
	var (
		p       = pp
		flipped bool
	)
	if pp > 8 || pp < -8 {
		return math.Pow(x, float64(pp))
	}
	if p < 0 {
		p = -pp
		flipped = true
	}
	y = 1
	for ; p >= 2; p -= 2 {
		y *= x * x
	}
	if p == 1 {
		y *= x
	}
	if flipped {
		y = 1. / y
	}
	return
}
