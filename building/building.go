package building

import (
	"errors"
	"fmt"
	"time"

	"github.com/notargets/gobuildings/group"
	"github.com/notargets/gobuildings/types"
	"github.com/notargets/gobuildings/utils"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"
)

type Chamber struct {
	Index     int // Position in the chamber list
	Name      string
	WDistance types.Word // Canonical Weyl distance from the fundamental chamber
	Gallery   []string   // Minimal gallery from the fundamental chamber
	Roots     []float64  // Root group values read from the name
	Height    float64
	Vertices  [NumVertexTypes]*Vertex
	Panels    [NumVertexTypes]*Panel
	processed bool
}

type Vertex struct {
	ID        int
	Type      int // Type j vertex is fixed by every generator other than s_j
	WDistance types.Word
	Chambers  []*Chamber
	Position  r3.Vec
}

// Panel is the face of type j of a chamber, spanned by its two vertices of the other types
type Panel struct {
	Key       types.PanelKey
	Type      int
	WDistance types.Word
	Chambers  []*Chamber
}

type Building struct {
	Context  *group.Context
	Graph    *group.ChamberGraph
	Geometry Geometry
	Chambers []*Chamber
	Vertices []*Vertex
	Panels   []*Panel
	// Distance is the gallery distance of every chamber from the fundamental chamber
	Distance map[string]int
	layers   map[string][]*Chamber
	panels   map[types.PanelKey]*Panel
	logger   *zap.Logger
}

/*
Build resolves Weyl distances, assigns heights, shares vertices and panels between adjacent chambers and places
every vertex. The context must have been generated, its graph is used as is.
*/
func Build(gc *group.Context, geo Geometry) (b *Building, err error) {
	var (
		start = time.Now()
		g     = gc.Graph()
	)
	if g == nil || g.Len() == 0 {
		err = fmt.Errorf("building requires a generated chamber graph")
		return
	}
	if err = geo.Validate(gc.Rank); err != nil {
		return
	}
	b = &Building{
		Context:  gc,
		Graph:    g,
		Geometry: geo,
		Chambers: make([]*Chamber, g.Len()),
		layers:   make(map[string][]*Chamber),
		panels:   make(map[types.PanelKey]*Panel),
		logger:   gc.Logger,
	}
	for i, name := range g.Chambers() {
		b.Chambers[i] = &Chamber{Index: i, Name: name, Roots: types.RootCoordinates(name, gc.Dim)}
	}
	if err = b.resolveDistances(); err != nil {
		return nil, err
	}
	b.logger.Debug("weyl distances resolved", zap.Duration("elapsed", time.Since(start)))
	b.assignHeights()
	b.shareVertices()
	b.sharePanels()
	if err = b.placeVertices(); err != nil {
		return nil, err
	}
	b.logger.Info("building embedded",
		zap.Int("chambers", len(b.Chambers)),
		zap.Int("vertices", len(b.Vertices)),
		zap.Int("panels", len(b.Panels)),
		zap.Duration("elapsed", time.Since(start)))
	return
}

// Fundamental is the chamber "I B", always first in the chamber list
func (b *Building) Fundamental() *Chamber { return b.Chambers[0] }

func (b *Building) Chamber(name string) (c *Chamber, ok bool) {
	var i int
	if i, ok = b.Graph.Index(name); ok {
		c = b.Chambers[i]
	}
	return
}

// Layer returns the chambers at Weyl distance w, in chamber list order
func (b *Building) Layer(w types.Word) []*Chamber { return b.layers[w.String()] }

/*
resolveDistances labels every chamber with its Weyl distance: the word of a minimal gallery from the fundamental
chamber, replaced by the Weyl group element with the same matrix. One search from the fundamental chamber serves
every target.
*/
func (b *Building) resolveDistances() (err error) {
	var (
		src = b.Graph.Name(0)
		raw types.Word
	)
	if b.Distance, err = Distances(b.Graph, src, ""); err != nil {
		return
	}
	for _, c := range b.Chambers {
		if raw, c.Gallery, err = PathWord(b.Distance, b.Graph, c.Name); err != nil {
			return
		}
		if c.WDistance, err = b.Context.Canonical(raw); err != nil {
			if !errors.Is(err, group.ErrWordNotInGroup) {
				return
			}
			b.logger.Warn("non-canonical Weyl distance",
				zap.String("chamber", c.Name), zap.Stringer("word", raw))
			c.WDistance, err = raw, nil
		}
		key := c.WDistance.String()
		b.layers[key] = append(b.layers[key], c)
	}
	return
}

// shorter reports whether w is a strictly shorter word than than
func shorter(w, than types.Word) bool { return w.Len() < than.Len() }

func (b *Building) checkPositions() (err error) {
	for _, v := range b.Vertices {
		if utils.IsNan(v.Position) {
			err = fmt.Errorf("%w: vertex %d of type %d at %q", ErrNaNPosition, v.ID, v.Type, v.WDistance)
			return
		}
	}
	return
}
