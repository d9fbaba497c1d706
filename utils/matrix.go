package utils

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var ErrDimensionMismatch = errors.New("utils: matrix dimensions do not agree")

// Mod reduces a into [0, b) using a - b*floor(a/b). A zero modulus means the
// field has characteristic zero and no reduction takes place. Non-integer a is
// allowed, which is how the b-adic coefficients of the affine generators pass
// through unchanged when b == 0.
func Mod(a float64, b int) float64 {
	if b == 0 {
		return a
	}
	return a - float64(b)*math.Floor(a/float64(b))
}

func NewIdentity(dim int) (I *mat.Dense) {
	I = mat.NewDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		I.Set(i, i, 1)
	}
	return
}

// NewElementary returns the identity with v placed at (i, j)
func NewElementary(dim, i, j int, v float64) (E *mat.Dense) {
	E = NewIdentity(dim)
	E.Set(i, j, v)
	return
}

// NewDenseRows builds a matrix from row slices, the layout the presets are
// written in.
func NewDenseRows(rows [][]float64) (M *mat.Dense) {
	var (
		nr   = len(rows)
		nc   int
		data []float64
	)
	if nr == 0 {
		panic("unable to build a matrix from zero rows")
	}
	nc = len(rows[0])
	data = make([]float64, 0, nr*nc)
	for i, row := range rows {
		if len(row) != nc {
			panic(fmt.Errorf("ragged row %d: have %d entries, want %d", i, len(row), nc))
		}
		data = append(data, row...)
	}
	M = mat.NewDense(nr, nc, data)
	return
}

// MatMulMod is the product A*B with every entry reduced modulo fChar.
func MatMulMod(A, B mat.Matrix, fChar int) (C *mat.Dense, err error) {
	var (
		nrA, ncA = A.Dims()
		nrB, ncB = B.Dims()
	)
	if ncA != nrB {
		err = fmt.Errorf("%w: (%d x %d) * (%d x %d)", ErrDimensionMismatch, nrA, ncA, nrB, ncB)
		return
	}
	C = mat.NewDense(nrA, ncB, nil)
	for i := 0; i < nrA; i++ {
		for j := 0; j < ncB; j++ {
			var sum float64
			for k := 0; k < ncA; k++ {
				sum += A.At(i, k) * B.At(k, j)
			}
			C.Set(i, j, Mod(sum, fChar))
		}
	}
	return
}

// MatEqual compares shape and entries exactly, there is no tolerance. Mod is
// expected to have produced canonical representatives already.
func MatEqual(A, B mat.Matrix) bool {
	var (
		nrA, ncA = A.Dims()
		nrB, ncB = B.Dims()
	)
	if nrA != nrB || ncA != ncB {
		return false
	}
	return mat.Equal(A, B)
}
