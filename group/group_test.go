package group

import (
	"errors"
	"testing"

	"github.com/notargets/gobuildings/types"
	"github.com/notargets/gobuildings/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGenerated(t *testing.T, ct types.CoxeterType, opts ...Option) (gc *Context, g *ChamberGraph) {
	var err error
	gc, err = NewContext(ct, opts...)
	require.NoError(t, err)
	g, err = gc.Generate()
	require.NoError(t, err)
	return
}

func wordStrings(ws []types.Word) (s []string) {
	for _, w := range ws {
		s = append(s, w.String())
	}
	return
}

func TestContextOptions(t *testing.T) {
	{
		gc, err := NewContext(types.SphA2)
		require.NoError(t, err)
		assert.Equal(t, DefaultRadius, gc.Radius)
		assert.Equal(t, 2, gc.ResChar)
		assert.Equal(t, 0, gc.FieldChar)
		assert.Equal(t, []types.Letter{"s0", "s1"}, gc.Generators)
		// B: ones on and above the diagonal, resChar below
		assert.Equal(t, []float64{1, 1, 1, 2, 1, 1, 2, 2, 1}, gc.Form.RawMatrix().Data)
	}
	{
		_, err := NewContext(types.SphA2, WithResidueCharacteristic(3))
		assert.True(t, errors.Is(err, ErrUnsupportedResidue))
		_, err = NewContext(types.AffA2, WithRadius(-1))
		assert.True(t, errors.Is(err, ErrBadRadius))
		_, err = NewContext(types.CoxeterType(42))
		assert.True(t, errors.Is(err, ErrUnknownPreset))
	}
	{
		gc, err := NewContext(types.AffA2, WithResidueCharacteristic(5))
		require.NoError(t, err)
		S2, ok := gc.Cache.Get("s2")
		require.True(t, ok)
		assert.Equal(t, 0.2, S2.At(0, 2))
		assert.Equal(t, 5., S2.At(2, 0))
		// I and the three generators, first entry wins
		assert.Equal(t, 4, gc.Cache.Len())
		assert.False(t, gc.Cache.Add("s2", utils.NewIdentity(3)))
		assert.Equal(t, 4, gc.Cache.Len())
		S2, _ = gc.Cache.Get("s2")
		assert.Equal(t, 0.2, S2.At(0, 2))
	}
}

func TestWords(t *testing.T) {
	alphabet := []types.Letter{"s0", "s1"}
	{
		assert.Nil(t, Words(-1, alphabet))
		assert.Equal(t, []types.Word{{types.Identity}}, Words(0, alphabet))
		assert.Equal(t, []types.Word{{types.Identity}}, Words(3, nil))
		assert.Equal(t, []string{"s0 s0", "s0 s1", "s1 s0", "s1 s1"}, wordStrings(Words(2, alphabet)))
		assert.Len(t, Words(3, alphabet), 8)
	}
	{
		words, err := CombineWords([]int{1, 1}, [][]types.Letter{
			{types.Identity, "u(0,1)(1)"},
			{types.Identity, "u(1,2)(1)"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"I", "u(1,2)(1)", "u(0,1)(1)", "u(0,1)(1) u(1,2)(1)"}, wordStrings(words))
		_, err = CombineWords([]int{1}, nil)
		assert.True(t, errors.Is(err, ErrAlphabetMismatch))
		words, err = CombineWords(nil, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"I"}, wordStrings(words))
	}
}

func TestWordMatrixAndInverse(t *testing.T) {
	gc, err := NewContext(types.SphA2)
	require.NoError(t, err)
	{
		_, err = gc.WordMatrix(types.ParseWord("s0 s7"))
		assert.True(t, errors.Is(err, ErrUnresolvedLetter))
	}
	{
		l := gc.rootLetter(0, 1, 1)
		assert.Equal(t, types.Letter("u(0,1)(1)"), l)
		inv, err := gc.InvertLetter(l)
		require.NoError(t, err)
		assert.Equal(t, types.Letter("u(0,1)(-1)"), inv)
		_, ok := gc.Cache.Get(inv)
		assert.True(t, ok)
		w := types.ParseWord("u(0,1)(1) s0 s1")
		winv, err := gc.Invert(w)
		require.NoError(t, err)
		assert.Equal(t, "s1 s0 u(0,1)(-1)", winv.String())
		M, err := gc.WordMatrix(w)
		require.NoError(t, err)
		Minv, err := gc.WordMatrix(winv)
		require.NoError(t, err)
		P, err := utils.MatMulMod(M, Minv, gc.FieldChar)
		require.NoError(t, err)
		assert.True(t, utils.MatEqual(utils.NewIdentity(3), P))
		_, err = gc.InvertLetter("x")
		assert.True(t, errors.Is(err, ErrUnresolvedLetter))
	}
	{ // Inverses reduce modulo a positive field characteristic
		gf, err := NewContext(types.SphA2, WithFieldCharacteristic(2))
		require.NoError(t, err)
		inv, err := gf.InvertLetter("u(0,1)(1)")
		require.NoError(t, err)
		assert.Equal(t, types.Letter("u(0,1)(1)"), inv)
	}
}

func TestWeylGroup(t *testing.T) {
	{ // Spherical rank 2
		gc, err := NewContext(types.SphA2)
		require.NoError(t, err)
		require.NoError(t, gc.GenerateWeyl())
		assert.Equal(t, []string{"I", "s0", "s1", "s0 s1", "s1 s0", "s0 s1 s0"}, wordStrings(gc.W()))
		assert.Equal(t, "s0 s1 s0", gc.LongestWord().String())
		c, err := gc.Canonical(types.ParseWord("s1 s0 s1"))
		require.NoError(t, err)
		assert.Equal(t, "s0 s1 s0", c.String())
		c, err = gc.Canonical(types.ParseWord("s0 s0"))
		require.NoError(t, err)
		assert.Equal(t, "I", c.String())
	}
	{ // Spherical rank 3
		gc, err := NewContext(types.SphA3)
		require.NoError(t, err)
		require.NoError(t, gc.GenerateWeyl())
		assert.Len(t, gc.W(), 24)
		assert.Equal(t, "s0 s1 s0 s2 s1 s0", gc.LongestWord().String())
	}
	{ // Affine types are truncated by the radius
		gc, err := NewContext(types.AffA2, WithRadius(1))
		require.NoError(t, err)
		require.NoError(t, gc.GenerateWeyl())
		assert.Equal(t, []string{"I", "s0", "s1", "s2"}, wordStrings(gc.W()))
		gc, err = NewContext(types.AffA2, WithRadius(2))
		require.NoError(t, err)
		require.NoError(t, gc.GenerateWeyl())
		assert.Len(t, gc.W(), 10)
		_, err = gc.Canonical(types.ParseWord("s0 s1 s2 s0 s1 s2"))
		assert.True(t, errors.Is(err, ErrWordNotInGroup))
	}
}

func TestWeylInvariants(t *testing.T) {
	for _, ct := range []types.CoxeterType{types.SphA2, types.SphA3} {
		gc, err := NewContext(ct)
		require.NoError(t, err)
		require.NoError(t, gc.GenerateWeyl())
		W := gc.W()
		// Non-decreasing word length
		for i := 1; i < len(W); i++ {
			assert.LessOrEqual(t, W[i-1].Len(), W[i].Len())
		}
		for i, w := range W {
			// Inverse consistency
			inv, err := gc.Invert(w)
			require.NoError(t, err)
			Minv, err := gc.WordMatrix(inv)
			require.NoError(t, err)
			P, err := utils.MatMulMod(gc.WeylMatrix(i), Minv, gc.FieldChar)
			require.NoError(t, err)
			assert.True(t, utils.MatEqual(utils.NewIdentity(gc.Dim), P), "%v", w)
			// Closure
			for j := range W {
				P, err = utils.MatMulMod(gc.WeylMatrix(i), gc.WeylMatrix(j), gc.FieldChar)
				require.NoError(t, err)
				assert.True(t, gc.indexOf(P) >= 0, "%v * %v", W[i], W[j])
			}
		}
	}
}

func TestTestForms(t *testing.T) {
	inf := utils.InfiniteValuation
	D := utils.ValuationMatrix{
		{0, inf, inf},
		{0, 0, inf},
		{1, 1, 0},
	}
	assert.True(t, A2.Accepts(0, D))
	assert.False(t, A2.Accepts(1, D))
	s, ok := A2.Classify(D, 2)
	assert.True(t, ok)
	assert.Equal(t, 0, s)
	// The identity is adjacent to nothing: its off-diagonal entries fail the "==" tests
	I := utils.ValuationMatrix{
		{0, inf, inf},
		{inf, 0, inf},
		{inf, inf, 0},
	}
	_, ok = A2.Classify(I, 3)
	assert.False(t, ok)
	assert.False(t, A3.Accepts(0, D))
	assert.False(t, A2.Accepts(5, D))
}

func TestTransversal(t *testing.T) {
	{ // Thin spherical rank 2 is the Coxeter complex
		gc, g := newGenerated(t, types.SphA2, WithThin(true))
		assert.Equal(t, []string{"I B", "s0 B", "s1 B", "s0 s1 B", "s1 s0 B", "s0 s1 s0 B"}, gc.Chambers())
		assert.Equal(t, 12, g.EdgeCount())
		for _, name := range g.Chambers() {
			nbs := g.Neighbors(name)
			require.Len(t, nbs, 2, name)
			assert.NotEqual(t, nbs[0].Generator, nbs[1].Generator)
		}
	}
	{ // Full building over F2
		gc, g := newGenerated(t, types.SphA2)
		require.Len(t, gc.Chambers(), 21)
		assert.Equal(t, []string{"I B", "s0 B", "u(0,1)(1) s0 B", "s1 B", "u(1,2)(1) s1 B",
			"s0 s1 B", "u(0,2)(1) s0 s1 B", "u(0,1)(1) s0 s1 B"}, gc.Chambers()[:8])
		assert.Equal(t, "u(0,1)(1) u(0,2)(1) u(1,2)(1) s0 s1 s0 B", gc.Chambers()[20])
		var got []string
		for _, nb := range g.Neighbors("I B") {
			got = append(got, nb.Chamber+"|"+string(nb.Generator))
		}
		assert.Equal(t, []string{"s0 B|s0", "u(0,1)(1) s0 B|s0", "s1 B|s1", "u(1,2)(1) s1 B|s1"}, got)
		for _, name := range g.Chambers() {
			assert.Len(t, g.Neighbors(name), 4, name)
		}
		groups := gc.RootGroups(types.ParseWord("s0"))
		require.Len(t, groups, 6)
		assert.Equal(t, []types.Letter{types.Identity, "u(0,1)(1)"}, groups[0])
	}
	{
		gc, _ := newGenerated(t, types.AffA2, WithRadius(1))
		assert.Equal(t, []string{"I B", "s0 B", "u(0,1)(1) s0 B", "s1 B", "u(1,2)(1) s1 B",
			"s2 B", "u(2,0)(2) s2 B"}, gc.Chambers())
	}
	{
		gc, _ := newGenerated(t, types.SphA2, WithResidueCharacteristic(5))
		assert.Len(t, gc.Chambers(), 186)
	}
}

func TestChamberGraph(t *testing.T) {
	for _, tc := range []struct {
		ct       types.CoxeterType
		opts     []Option
		chambers int
		degree   int
	}{
		{types.SphA2, nil, 21, 4},
		{types.SphA2, []Option{WithThin(true)}, 6, 2},
		{types.SphA3, []Option{WithThin(true)}, 24, 3},
		{types.SphA3, []Option{WithParallelDegree(3)}, 315, 6},
		{types.AffA2, []Option{WithRadius(2)}, 31, -1},
		{types.AffA2, []Option{WithRadius(2), WithResidueCharacteristic(5)}, 166, -1},
	} {
		_, g := newGenerated(t, tc.ct, tc.opts...)
		assert.Equal(t, tc.chambers, g.Len(), tc.ct.String())
		if tc.degree > 0 {
			for i := 0; i < g.Len(); i++ {
				assert.Len(t, g.NeighborsOf(i), tc.degree)
			}
		}
		// Symmetry and connectivity
		assert.Empty(t, g.Asymmetries())
		assert.Len(t, g.Components(), 1)
		A := g.Adjacency()
		nr, nc := A.Dims()
		assert.Equal(t, g.Len(), nr)
		assert.Equal(t, g.Len(), nc)
		assert.Equal(t, g.EdgeCount(), A.NNZ())
	}
	{ // Parallel and sequential builds agree
		_, g1 := newGenerated(t, types.SphA2, WithParallelDegree(1))
		_, g4 := newGenerated(t, types.SphA2, WithParallelDegree(4))
		for i := 0; i < g1.Len(); i++ {
			assert.Equal(t, g1.NeighborsOf(i), g4.NeighborsOf(i))
		}
		i, ok := g1.Index("s0 s1 s0 B")
		assert.True(t, ok)
		assert.Equal(t, 13, i)
		assert.Nil(t, g1.Neighbors("nope B"))
	}
	{ // Edge labels come from the distance matrix test forms
		gc, g := newGenerated(t, types.SphA2)
		src := g.Name(0)
		for _, nb := range g.NeighborsOf(0) {
			D, err := gc.DistanceMatrix(src, nb.Chamber)
			require.NoError(t, err)
			s, ok := gc.TestForm.Classify(D, gc.Rank)
			assert.True(t, ok)
			assert.Equal(t, nb.Type, s)
		}
		D, err := gc.DistanceMatrix(src, src)
		require.NoError(t, err)
		for i := range D {
			for j := range D[i] {
				if i == j {
					assert.Equal(t, 0, D[i][j])
				} else {
					assert.Equal(t, utils.InfiniteValuation, D[i][j])
				}
			}
		}
		_, err = gc.DistanceMatrix(src, "s9 B")
		assert.ErrorIs(t, err, ErrUnresolvedLetter)
	}
}
