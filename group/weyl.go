package group

import (
	"fmt"

	"github.com/notargets/gobuildings/types"
	"github.com/notargets/gobuildings/utils"
	"gonum.org/v1/gonum/mat"
)

/*
GenerateWeyl enumerates the Weyl group by increasing word length. Each word of length l over the simple reflections
is kept, as written, unless its matrix equals one already kept. Spherical types stop once OrderW elements are kept,
affine types once every word of length Radius has been tried.
*/
func (gc *Context) GenerateWeyl() (err error) {
	var (
		M *mat.Dense
	)
	gc.w, gc.wMats = nil, nil
	for l := 0; ; l++ {
		if gc.IsAffine() && l > gc.Radius {
			break
		}
		if !gc.IsAffine() && l > gc.OrderW {
			err = fmt.Errorf("weyl group of %v stalled at %d of %d elements", gc.Type, len(gc.w), gc.OrderW)
			return
		}
		for _, w := range Words(l, gc.Generators) {
			if M, err = gc.WordMatrix(w); err != nil {
				return
			}
			if gc.indexOf(M) < 0 {
				gc.w = append(gc.w, w)
				gc.wMats = append(gc.wMats, M)
			}
		}
		if !gc.IsAffine() && len(gc.w) >= gc.OrderW {
			break
		}
	}
	return
}

func (gc *Context) indexOf(M mat.Matrix) int {
	for i, wm := range gc.wMats {
		if utils.MatEqual(M, wm) {
			return i
		}
	}
	return -1
}

// Canonical returns the Weyl group element whose matrix equals that of w.
func (gc *Context) Canonical(w types.Word) (c types.Word, err error) {
	var (
		M *mat.Dense
	)
	if w.Len() == 0 {
		return types.Word{types.Identity}, nil
	}
	if M, err = gc.WordMatrix(w); err != nil {
		return
	}
	i := gc.indexOf(M)
	if i < 0 {
		err = fmt.Errorf("%w: %q", ErrWordNotInGroup, w)
		return
	}
	c = gc.w[i]
	return
}

// WeylMatrix returns the matrix of the i-th Weyl group element
func (gc *Context) WeylMatrix(i int) *mat.Dense { return gc.wMats[i] }

// LongestWord is the last element found, the longest word for a spherical type and a word of the maximal radius
// for an affine one.
func (gc *Context) LongestWord() (w types.Word) {
	if len(gc.w) == 0 {
		return types.Word{types.Identity}
	}
	return gc.w[len(gc.w)-1]
}
