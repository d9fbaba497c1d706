package group

import (
	"fmt"

	"github.com/notargets/gobuildings/types"
	"github.com/notargets/gobuildings/utils"
	"gonum.org/v1/gonum/mat"
)

// CharMatrix is the entrywise valuation of w*B*w^-1
func (gc *Context) CharMatrix(w types.Word) (V utils.ValuationMatrix, err error) {
	var (
		M, Minv, WB *mat.Dense
		inv         types.Word
	)
	if M, err = gc.WordMatrix(w); err != nil {
		return
	}
	if inv, err = gc.Invert(w); err != nil {
		return
	}
	if Minv, err = gc.WordMatrix(inv); err != nil {
		return
	}
	if WB, err = utils.MatMulMod(M, gc.Form, gc.FieldChar); err != nil {
		return
	}
	if WB, err = utils.MatMulMod(WB, Minv, gc.FieldChar); err != nil {
		return
	}
	V = gc.valuations(WB)
	return
}

/*
rootGroupsOf builds the root groups of w from its characteristic matrix C. Every pair j<k contributes two groups,
each listed with the identity first:

	forward  u(j,k)(v),         v = 1 .. resChar^C[j,k] - 1,     when C[j,k] > 0
	backward u(k,j)(resChar*v), v = 1 .. resChar^(C[k,j]-1) - 1, when C[k,j] > 1

A thin context keeps every group trivial.
*/
func (gc *Context) rootGroupsOf(C utils.ValuationMatrix) (groups [][]types.Letter, err error) {
	var (
		order int
	)
	for j := 0; j < gc.Dim; j++ {
		for k := j + 1; k < gc.Dim; k++ {
			forward := []types.Letter{types.Identity}
			if c := C.At(j, k); !gc.Thin && C.IsFinite(j, k) && c > 0 {
				if order, err = utils.GroupOrder(gc.ResChar, c); err != nil {
					return
				}
				for v := 1; v < order; v++ {
					forward = append(forward, gc.rootLetter(j, k, float64(v)))
				}
			}
			backward := []types.Letter{types.Identity}
			if c := C.At(k, j); !gc.Thin && C.IsFinite(k, j) && c > 1 {
				if order, err = utils.GroupOrder(gc.ResChar, c-1); err != nil {
					return
				}
				for v := 1; v < order; v++ {
					backward = append(backward, gc.rootLetter(k, j, float64(gc.ResChar*v)))
				}
			}
			groups = append(groups, forward, backward)
		}
	}
	return
}

// GenerateChambers forms the left transversal of B: for each Weyl element w, every product of one element from
// each of its root groups, followed by w.
func (gc *Context) GenerateChambers() (err error) {
	var (
		C      utils.ValuationMatrix
		groups [][]types.Letter
		prods  []types.Word
	)
	if len(gc.w) == 0 {
		err = fmt.Errorf("chambers requested before the Weyl group was generated")
		return
	}
	gc.chambers = nil
	for _, w := range gc.w {
		if C, err = gc.CharMatrix(w); err != nil {
			return
		}
		if groups, err = gc.rootGroupsOf(C); err != nil {
			return
		}
		gc.rootGroups[w.String()] = groups
		lengths := make([]int, len(groups))
		for i := range lengths {
			lengths[i] = 1
		}
		if prods, err = CombineWords(lengths, groups); err != nil {
			return
		}
		for _, roots := range prods {
			gc.chambers = append(gc.chambers, types.ChamberName(roots, w))
		}
	}
	return
}
