package group

import (
	"fmt"
	"sort"

	"github.com/james-bowman/sparse"
	"github.com/notargets/gobuildings/types"
	"github.com/notargets/gobuildings/utils"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/mat"
)

// Neighbor is one labelled edge of the chamber graph
type Neighbor struct {
	Index     int // Position of the neighbor in the chamber list
	Chamber   string
	Generator types.Letter
	Type      int // Index of Generator
}

// ChamberGraph holds the adjacency list of every chamber, in chamber list order
type ChamberGraph struct {
	Rank     int
	chambers []string
	index    map[string]int
	adj      [][]Neighbor
}

func newChamberGraph(rank int, chambers []string) (g *ChamberGraph) {
	g = &ChamberGraph{
		Rank:     rank,
		chambers: chambers,
		index:    make(map[string]int, len(chambers)),
		adj:      make([][]Neighbor, len(chambers)),
	}
	for i, name := range chambers {
		g.index[name] = i
	}
	return
}

/*
BuildGraph labels each ordered pair of chambers (c1, c2) with the first generator whose test form accepts the
valuation of matrix(c1)^-1 * matrix(c2). Rows are split over ParallelDegree goroutines; every row is written only
by the goroutine that owns it, so the adjacency order is the same as a sequential build.
*/
func (gc *Context) BuildGraph() (g *ChamberGraph, err error) {
	var (
		nc    = len(gc.chambers)
		mats  = make([]*mat.Dense, nc)
		invs  = make([]*mat.Dense, nc)
		pm    = utils.NewPartitionMap(gc.ParallelDegree, nc)
		names = gc.chambers
	)
	if nc == 0 {
		err = fmt.Errorf("graph requested before chambers were generated")
		return
	}
	g = newChamberGraph(gc.Rank, names)
	err = pm.ForEachBucket(func(bn, kMin, kMax int) (err error) {
		var inv types.Word
		for k := kMin; k < kMax; k++ {
			w := types.ChamberWord(names[k])
			if mats[k], err = gc.WordMatrix(w); err != nil {
				return
			}
			if inv, err = gc.Invert(w); err != nil {
				return
			}
			if invs[k], err = gc.WordMatrix(inv); err != nil {
				return
			}
		}
		return
	})
	if err != nil {
		return nil, err
	}
	err = pm.ForEachBucket(func(bn, kMin, kMax int) (err error) {
		var D *mat.Dense
		for i := kMin; i < kMax; i++ {
			for j := 0; j < nc; j++ {
				if i == j {
					continue
				}
				if D, err = utils.MatMulMod(invs[i], mats[j], gc.FieldChar); err != nil {
					return
				}
				if s, ok := gc.TestForm.Classify(gc.valuations(D), gc.Rank); ok {
					g.adj[i] = append(g.adj[i], Neighbor{
						Index:     j,
						Chamber:   names[j],
						Generator: gc.Generators[s],
						Type:      s,
					})
				}
			}
		}
		return
	})
	if err != nil {
		return nil, err
	}
	gc.graph = g
	return
}

// DistanceMatrix is the valuation of matrix(c1)^-1 * matrix(c2), the input of the test forms
func (gc *Context) DistanceMatrix(c1, c2 string) (D utils.ValuationMatrix, err error) {
	var (
		inv    types.Word
		m1, m2 *mat.Dense
		P      *mat.Dense
	)
	if inv, err = gc.Invert(types.ChamberWord(c1)); err != nil {
		return
	}
	if m1, err = gc.WordMatrix(inv); err != nil {
		return
	}
	if m2, err = gc.WordMatrix(types.ChamberWord(c2)); err != nil {
		return
	}
	if P, err = utils.MatMulMod(m1, m2, gc.FieldChar); err != nil {
		return
	}
	D = gc.valuations(P)
	return
}

func (g *ChamberGraph) Len() int { return len(g.chambers) }

// Chambers returns the chamber names in list order
func (g *ChamberGraph) Chambers() []string { return g.chambers }

func (g *ChamberGraph) Name(i int) string { return g.chambers[i] }

func (g *ChamberGraph) Index(name string) (i int, ok bool) {
	i, ok = g.index[name]
	return
}

// Neighbors returns the labelled neighbors of a chamber, nil for an unknown name
func (g *ChamberGraph) Neighbors(name string) []Neighbor {
	i, ok := g.index[name]
	if !ok {
		return nil
	}
	return g.adj[i]
}

func (g *ChamberGraph) NeighborsOf(i int) []Neighbor { return g.adj[i] }

// EdgeCount is the number of labelled ordered pairs; a symmetric graph has twice as many as undirected edges
func (g *ChamberGraph) EdgeCount() (n int) {
	for _, nbs := range g.adj {
		n += len(nbs)
	}
	return
}

// Adjacency stores generator index + 1 at (c1, c2) for every labelled pair
func (g *ChamberGraph) Adjacency() *sparse.CSR {
	var (
		n   = g.Len()
		dok = sparse.NewDOK(n, n)
	)
	for i, nbs := range g.adj {
		for _, nb := range nbs {
			dok.Set(i, nb.Index, float64(nb.Type+1))
		}
	}
	return dok.ToCSR()
}

// Asymmetries lists the ordered pairs (i, j) labelled differently from (j, i). A valid building has none.
func (g *ChamberGraph) Asymmetries() (pairs [][2]int) {
	A := g.Adjacency()
	A.DoNonZero(func(i, j int, v float64) {
		if A.At(j, i) != v {
			pairs = append(pairs, [2]int{i, j})
		}
	})
	sort.Slice(pairs, func(a, b int) bool {
		if pairs[a][0] != pairs[b][0] {
			return pairs[a][0] < pairs[b][0]
		}
		return pairs[a][1] < pairs[b][1]
	})
	return
}

// Components returns the connected components as chamber names, each in list order, ordered by first chamber
func (g *ChamberGraph) Components() (comps [][]string) {
	ug := simple.NewUndirectedGraph()
	for i := range g.chambers {
		ug.AddNode(simple.Node(i))
	}
	for i, nbs := range g.adj {
		for _, nb := range nbs {
			if nb.Index > i {
				ug.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(nb.Index)})
			}
		}
	}
	var idx [][]int
	for _, cc := range topo.ConnectedComponents(ug) {
		ids := make([]int, len(cc))
		for k, node := range cc {
			ids[k] = int(node.ID())
		}
		sort.Ints(ids)
		idx = append(idx, ids)
	}
	sort.Slice(idx, func(a, b int) bool { return idx[a][0] < idx[b][0] })
	for _, ids := range idx {
		names := make([]string, len(ids))
		for k, id := range ids {
			names[k] = g.chambers[id]
		}
		comps = append(comps, names)
	}
	return
}
