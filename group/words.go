package group

import (
	"fmt"

	"github.com/notargets/gobuildings/types"
	"github.com/notargets/gobuildings/utils"
	"gonum.org/v1/gonum/mat"
)

// Words returns every word of exactly length letters over alphabet, the first letter varying slowest. Length zero
// or an empty alphabet yields the identity word, a negative length yields nil.
func Words(length int, alphabet []types.Letter) (words []types.Word) {
	switch {
	case length < 0:
		return nil
	case length == 0 || len(alphabet) == 0:
		return []types.Word{{types.Identity}}
	case length == 1:
		words = make([]types.Word, len(alphabet))
		for i, l := range alphabet {
			words[i] = types.Word{l}
		}
		return
	}
	prefixes := Words(length-1, alphabet)
	words = make([]types.Word, 0, len(prefixes)*len(alphabet))
	for _, prefix := range prefixes {
		for _, l := range alphabet {
			w := make(types.Word, len(prefix), len(prefix)+1)
			copy(w, prefix)
			words = append(words, append(w, l))
		}
	}
	return
}

// CombineWords composes a word over alphabets[0] of lengths[0] letters, followed by one over alphabets[1], and so
// on. Identity sub-words are dropped from the concatenation. The first sub-word varies slowest.
func CombineWords(lengths []int, alphabets [][]types.Letter) (words []types.Word, err error) {
	if len(lengths) != len(alphabets) {
		err = fmt.Errorf("%w: %d lengths, %d alphabets", ErrAlphabetMismatch, len(lengths), len(alphabets))
		return
	}
	if len(lengths) == 0 {
		return []types.Word{{types.Identity}}, nil
	}
	var (
		starts = Words(lengths[0], alphabets[0])
		ends   []types.Word
	)
	if len(lengths) == 1 {
		return starts, nil
	}
	if ends, err = CombineWords(lengths[1:], alphabets[1:]); err != nil {
		return
	}
	words = make([]types.Word, 0, len(starts)*len(ends))
	for _, ws := range starts {
		for _, we := range ends {
			words = append(words, types.Concat(ws, we))
		}
	}
	return
}

// WordMatrix multiplies the cached matrices of the letters of w from left to right
func (gc *Context) WordMatrix(w types.Word) (M *mat.Dense, err error) {
	M = utils.NewIdentity(gc.Dim)
	for _, l := range w {
		L, ok := gc.Cache.Get(l)
		if !ok {
			err = fmt.Errorf("%w: %q in word %q", ErrUnresolvedLetter, l, w)
			return nil, err
		}
		if M, err = utils.MatMulMod(M, L, gc.FieldChar); err != nil {
			return nil, err
		}
	}
	return
}

// InvertLetter returns the inverse of a single letter. Reflections and the identity are involutions, and
// u(i,j)(v) is inverted by u(i,j)(-v mod fChar).
func (gc *Context) InvertLetter(l types.Letter) (inv types.Letter, err error) {
	switch {
	case l.IsIdentity(), l.IsReflection():
		return l, nil
	case l.IsRoot():
		var (
			i, j int
			v    float64
		)
		if i, j, v, err = l.RootElement(); err != nil {
			err = fmt.Errorf("%w: %v", ErrUnresolvedLetter, err)
			return
		}
		inv = types.NewRootLetter(i, j, utils.Mod(-v, gc.FieldChar))
		return
	}
	err = fmt.Errorf("%w: %q is not a letter", ErrUnresolvedLetter, l)
	return
}

// Invert reverses w and inverts each letter
func (gc *Context) Invert(w types.Word) (inv types.Word, err error) {
	inv = make(types.Word, len(w))
	for i, l := range w {
		if inv[len(w)-1-i], err = gc.InvertLetter(l); err != nil {
			return nil, err
		}
	}
	return
}

// rootLetter caches the elementary matrix of u(i,j)(v) and of its inverse, returning the letter
func (gc *Context) rootLetter(i, j int, v float64) (l types.Letter) {
	l = types.NewRootLetter(i, j, v)
	gc.Cache.Add(l, utils.NewElementary(gc.Dim, i, j, v))
	vInv := utils.Mod(-v, gc.FieldChar)
	gc.Cache.Add(types.NewRootLetter(i, j, vInv), utils.NewElementary(gc.Dim, i, j, vInv))
	return
}
