package group

import (
	"github.com/notargets/gobuildings/utils"
)

// formCell constrains one entry of a distance matrix
type formCell struct {
	Op    utils.EvalOp
	Value int
}

func ge(n int) formCell { return formCell{utils.GreaterOrEqual, n} }
func eq(n int) formCell { return formCell{utils.Equal, n} }

/*
TestForm decides whether two chambers are adjacent. Forms[s] holds one constraint per entry of the valuation of
matrix(c1)^-1 * matrix(c2); the chambers are s-adjacent when every constraint holds. An infinite valuation passes
every ">=" constraint and fails every "==" constraint.
*/
type TestForm struct {
	Name  string
	Dim   int
	Forms [][][]formCell
}

var A2 = &TestForm{
	Name: "A2",
	Dim:  3,
	Forms: [][][]formCell{
		{ // s0
			{ge(0), ge(0), ge(0)},
			{eq(0), ge(0), ge(0)},
			{ge(1), ge(1), eq(0)},
		},
		{ // s1
			{eq(0), ge(0), ge(0)},
			{ge(1), ge(0), ge(0)},
			{ge(1), eq(0), ge(0)},
		},
		{ // s2, only reached by the affine type
			{ge(0), ge(0), eq(-1)},
			{ge(1), eq(0), ge(0)},
			{ge(1), ge(1), ge(0)},
		},
	},
}

var A3 = &TestForm{
	Name: "A3",
	Dim:  4,
	Forms: [][][]formCell{
		{ // s0
			{ge(0), ge(0), ge(0), ge(0)},
			{eq(0), ge(0), ge(0), ge(0)},
			{ge(1), ge(1), eq(0), ge(0)},
			{ge(1), ge(1), ge(1), eq(0)},
		},
		{ // s1
			{eq(0), ge(0), ge(0), ge(0)},
			{ge(1), ge(0), ge(0), ge(0)},
			{ge(1), eq(0), ge(0), ge(0)},
			{ge(1), ge(1), ge(1), eq(0)},
		},
		{ // s2
			{eq(0), ge(0), ge(0), ge(0)},
			{ge(1), eq(0), ge(0), ge(0)},
			{ge(1), ge(1), ge(0), ge(0)},
			{ge(1), ge(1), eq(0), ge(0)},
		},
	},
}

// Accepts tests D against the form of generator s
func (tf *TestForm) Accepts(s int, D utils.ValuationMatrix) bool {
	if s < 0 || s >= len(tf.Forms) {
		return false
	}
	if nr, nc := D.Dims(); nr != tf.Dim || nc != tf.Dim {
		return false
	}
	for i, row := range tf.Forms[s] {
		for j, cell := range row {
			if !cell.Op.Compare(D.At(i, j), cell.Value) {
				return false
			}
		}
	}
	return true
}

// Classify returns the first of the first rank generators whose form accepts D
func (tf *TestForm) Classify(D utils.ValuationMatrix, rank int) (s int, ok bool) {
	for s = 0; s < rank && s < len(tf.Forms); s++ {
		if tf.Accepts(s, D) {
			return s, true
		}
	}
	return -1, false
}
