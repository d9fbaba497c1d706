package utils

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// InfiniteValuation stands in for the valuation of zero. It is large enough to
// pass every ">= n" test and fail every "== n" test the test forms use.
const InfiniteValuation = math.MaxInt32

// maxDecimalShift bounds the scaling loop for non-integer input. Past ten
// digits the NODETOL snap would start rounding repeating expansions such as
// 1/3, so those are reported as degenerate instead.
const maxDecimalShift = 10

// Valuation emulates the p-adic valuation of x. Integers are divided by p until
// a remainder shows up. Non-integers are scaled by 10 until integral and the
// shift is subtracted afterwards, which is only right when v_p(10) == 1, that
// is for p == 2 and p == 5. Products with 1/p leave rounding noise behind
// (3*0.2 = 0.6000000000000001), so each scaled value within NODETOL of an
// integer is snapped to it. When the decimal expansion does not terminate the
// result is 0 and degenerate is set so the caller can report it.
func Valuation(x float64, p int) (v int, degenerate bool) {
	var (
		shift int
		b     = x
	)
	if x == 0 {
		return InfiniteValuation, false
	}
	if math.IsNaN(x) || math.IsInf(x, 0) || p < 2 {
		return 0, true
	}
	for b = snapInteger(b); b != math.Trunc(b); b = snapInteger(b) {
		if shift == maxDecimalShift {
			return 0, true
		}
		b *= 10
		shift++
	}
	if b == 0 {
		// Noise around zero
		return InfiniteValuation, false
	}
	for Mod(b, p) == 0 {
		b /= float64(p)
		v++
	}
	v -= shift
	return
}

func snapInteger(b float64) float64 {
	r := math.Round(b)
	if math.Abs(b-r) <= NODETOL*math.Max(1, math.Abs(b)) {
		return r
	}
	return b
}

// ValuationMatrix holds the entrywise valuations of a matrix.
type ValuationMatrix [][]int

// NewValuationMatrix applies Valuation to every entry of M. onDegenerate, when
// not nil, is called for each entry whose valuation had to be coerced to 0.
func NewValuationMatrix(M mat.Matrix, p int, onDegenerate func(x float64)) (V ValuationMatrix) {
	var (
		nr, nc = M.Dims()
	)
	V = make(ValuationMatrix, nr)
	for i := 0; i < nr; i++ {
		V[i] = make([]int, nc)
		for j := 0; j < nc; j++ {
			val, degenerate := Valuation(M.At(i, j), p)
			if degenerate && onDegenerate != nil {
				onDegenerate(M.At(i, j))
			}
			V[i][j] = val
		}
	}
	return
}

func (V ValuationMatrix) Dims() (r, c int) {
	if len(V) == 0 {
		return 0, 0
	}
	return len(V), len(V[0])
}

func (V ValuationMatrix) At(i, j int) int { return V[i][j] }

// IsFinite reports whether entry (i, j) came from a non-zero field value.
func (V ValuationMatrix) IsFinite(i, j int) bool { return V[i][j] != InfiniteValuation }
