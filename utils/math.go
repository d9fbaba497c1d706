package utils

import (
	"fmt"
	"math"
)

func POW(x float64, pp int) (y float64) {
	var (
		p       = pp
		flipped bool
	)
	if pp > 8 || pp < -8 {
		goto MATHPOW
	}

	if p < 0 {
		p = -pp
		flipped = true
	}
	switch p {
	case 0:
		y = 1
	case 1:
		y = x
	case 2:
		y = x * x
	case 3:
		y = x * x * x
	case 4:
		y = x * x
		y = y * y
	case 5:
		y = x * x
		y = y * y * x
	case 6:
		y = x * x
		y = y * y * y
	case 7:
		y = x * x
		y = y * y * y * x
	case 8:
		y = x * x
		y = y * y * y * y
	}
	if flipped {
		y = 1. / y
	}
	return

MATHPOW:
	y = math.Pow(x, float64(p))
	return
}

// maxGroupOrder caps the size of a single root group. Anything larger means the
// characteristic matrix carried a runaway valuation and the transversal would
// not fit in memory anyway.
const maxGroupOrder = 1 << 20

// GroupOrder returns max(1, base^exp) as an int, the number of elements of a
// root group whose characteristic valuation is exp.
func GroupOrder(base, exp int) (order int, err error) {
	if exp <= 0 {
		return 1, nil
	}
	y := POW(float64(base), exp)
	if y > maxGroupOrder {
		err = fmt.Errorf("root group of order %d^%d exceeds %d elements", base, exp, maxGroupOrder)
		return
	}
	order = int(math.Max(1, y))
	return
}
