package group

import (
	"fmt"
	"time"

	"github.com/notargets/gobuildings/types"
	"github.com/notargets/gobuildings/utils"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

const (
	DefaultRadius  = 5
	DefaultResChar = 2
)

/*
Context holds everything generated for one building: the matrix cache, the Weyl group, the chamber transversal and
the chamber graph. It is filled in stages by Generate and is read only afterward.
*/
type Context struct {
	Preset
	Radius         int  // Maximal word length, only used for affine types
	ResChar        int  // Residue characteristic, 2 or 5
	FieldChar      int  // Characteristic of the field, 0 means no reduction
	Thin           bool // Trivial root groups, one chamber per Weyl element
	ParallelDegree int
	Logger         *zap.Logger

	Cache      *MatrixCache
	Generators []types.Letter // s0 .. s(rank-1)
	Form       *mat.Dense     // Characteristic matrix B of the fundamental apartment

	w          []types.Word
	wMats      []*mat.Dense
	chambers   []string
	rootGroups map[string][][]types.Letter
	graph      *ChamberGraph
}

type Option func(gc *Context)

func WithRadius(r int) Option { return func(gc *Context) { gc.Radius = r } }

func WithResidueCharacteristic(p int) Option { return func(gc *Context) { gc.ResChar = p } }

func WithFieldCharacteristic(f int) Option { return func(gc *Context) { gc.FieldChar = f } }

func WithThin(thin bool) Option { return func(gc *Context) { gc.Thin = thin } }

func WithParallelDegree(n int) Option { return func(gc *Context) { gc.ParallelDegree = n } }

func WithLogger(l *zap.Logger) Option {
	return func(gc *Context) {
		if l != nil {
			gc.Logger = l
		}
	}
}

func NewContext(ct types.CoxeterType, opts ...Option) (gc *Context, err error) {
	var (
		p Preset
	)
	if p, err = GetPreset(ct); err != nil {
		return
	}
	gc = &Context{
		Preset:     p,
		Radius:     DefaultRadius,
		ResChar:    DefaultResChar,
		Logger:     zap.NewNop(),
		Cache:      NewMatrixCache(),
		rootGroups: make(map[string][][]types.Letter),
	}
	for _, opt := range opts {
		opt(gc)
	}
	if gc.Radius < 0 {
		err = fmt.Errorf("%w: %d", ErrBadRadius, gc.Radius)
		return
	}
	if gc.ResChar != 2 && gc.ResChar != 5 {
		err = fmt.Errorf("%w: have %d", ErrUnsupportedResidue, gc.ResChar)
		return
	}
	if gc.FieldChar < 0 {
		err = fmt.Errorf("field characteristic must be non-negative, have %d", gc.FieldChar)
		return
	}
	gc.Cache.Add(types.Identity, utils.NewIdentity(gc.Dim))
	for i, S := range gc.Reflections(gc.ResChar) {
		l := types.NewReflection(i)
		gc.Generators = append(gc.Generators, l)
		gc.Cache.Add(l, S)
	}
	gc.Form = mat.NewDense(gc.Dim, gc.Dim, nil)
	for i := 0; i < gc.Dim; i++ {
		for j := 0; j < gc.Dim; j++ {
			switch {
			case i == j, j > i:
				gc.Form.Set(i, j, 1)
			default:
				gc.Form.Set(i, j, float64(gc.ResChar))
			}
		}
	}
	return
}

// Generate runs every stage in order: Weyl group, transversal, chamber graph.
func (gc *Context) Generate() (g *ChamberGraph, err error) {
	var (
		start = time.Now()
	)
	if err = gc.GenerateWeyl(); err != nil {
		return
	}
	gc.Logger.Info("weyl group generated",
		zap.Stringer("type", gc.Type), zap.Int("order", len(gc.w)), zap.Duration("elapsed", time.Since(start)))
	gc.Logger.Debug("form matrix", zap.String("B", fmt.Sprintf("%v", mat.Formatted(gc.Form, mat.Squeeze()))))
	if err = gc.GenerateChambers(); err != nil {
		return
	}
	gc.Logger.Info("chambers generated",
		zap.Int("chambers", len(gc.chambers)), zap.Bool("thin", gc.Thin), zap.Duration("elapsed", time.Since(start)))
	if g, err = gc.BuildGraph(); err != nil {
		return
	}
	gc.Logger.Info("chamber graph built",
		zap.Int("edges", g.EdgeCount()), zap.Duration("elapsed", time.Since(start)))
	gc.Logger.Debug("matrix cache", zap.Int("letters", gc.Cache.Len()))
	if comps := g.Components(); len(comps) > 1 {
		gc.Logger.Warn("chamber graph is disconnected", zap.Int("components", len(comps)))
	}
	return
}

// W returns the Weyl group in discovery order, which is non-decreasing in word length
func (gc *Context) W() []types.Word { return gc.w }

// Chambers returns the chamber names in transversal order
func (gc *Context) Chambers() []string { return gc.chambers }

// Graph returns the chamber graph, nil before BuildGraph
func (gc *Context) Graph() *ChamberGraph { return gc.graph }

// RootGroups returns the root groups generated for a Weyl element, each starting with the identity
func (gc *Context) RootGroups(w types.Word) [][]types.Letter { return gc.rootGroups[w.String()] }

// valuations reduces M entrywise by the residue characteristic, warning on degenerate entries
func (gc *Context) valuations(M mat.Matrix) utils.ValuationMatrix {
	return utils.NewValuationMatrix(M, gc.ResChar, func(x float64) {
		gc.Logger.Warn("Malformed-Valuation-Input", zap.Float64("value", x), zap.Int("prime", gc.ResChar))
	})
}
