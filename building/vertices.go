package building

import (
	"go.uber.org/zap"

	"github.com/notargets/gobuildings/types"
)

func (b *Building) newVertex(t int, c *Chamber) {
	v := &Vertex{
		ID:        len(b.Vertices),
		Type:      t,
		WDistance: c.WDistance,
		Chambers:  []*Chamber{c},
	}
	b.Vertices = append(b.Vertices, v)
	c.Vertices[t] = v
}

func (b *Building) shareVertex(t int, c, from *Chamber) {
	v := from.Vertices[t]
	c.Vertices[t] = v
	v.Chambers = append(v.Chambers, c)
	if shorter(c.WDistance, v.WDistance) {
		v.WDistance = c.WDistance
	}
}

/*
shareVertices visits chambers in list order. An s_j neighbor visited earlier shares the two vertices whose types
differ from j; the first such neighbor supplying a type wins. Types nobody supplies get new vertices.
*/
func (b *Building) shareVertices() {
	var (
		seen = make([]bool, len(b.Chambers))
	)
	for t := 0; t < NumVertexTypes; t++ {
		b.newVertex(t, b.Fundamental())
	}
	seen[0] = true
	for _, c := range b.Chambers[1:] {
		var set [NumVertexTypes]bool
		seen[c.Index] = true
		for _, nb := range b.Graph.NeighborsOf(c.Index) {
			if !seen[nb.Index] {
				continue
			}
			for _, t := range []int{(nb.Type + 1) % NumVertexTypes, (nb.Type + 2) % NumVertexTypes} {
				if !set[t] {
					b.shareVertex(t, c, b.Chambers[nb.Index])
					set[t] = true
				}
			}
			if set[0] && set[1] && set[2] {
				break
			}
		}
		for t := 0; t < NumVertexTypes; t++ {
			if !set[t] {
				b.newVertex(t, c)
			}
		}
	}
}

// sharePanels keys the type j panel of each chamber by its two other vertices
func (b *Building) sharePanels() {
	for _, c := range b.Chambers {
		for j := 0; j < NumVertexTypes; j++ {
			v1, v2 := c.Vertices[(j+1)%NumVertexTypes], c.Vertices[(j+2)%NumVertexTypes]
			key := types.NewPanelKey([2]int{v1.ID, v2.ID})
			p, ok := b.panels[key]
			if !ok {
				p = &Panel{Key: key, Type: j, WDistance: c.WDistance}
				b.panels[key] = p
				b.Panels = append(b.Panels, p)
			}
			p.Chambers = append(p.Chambers, c)
			if shorter(c.WDistance, p.WDistance) {
				p.WDistance = c.WDistance
			}
			c.Panels[j] = p
		}
	}
}

/*
placeVertices gives fundamental vertices their configured coordinates. Any other vertex is the fundamental vertex
of its type reflected through its Weyl distance, then lifted by the position function using the last chamber of
that layer containing it and the layer's greatest height.
*/
func (b *Building) placeVertices() (err error) {
	var (
		geo  = b.Geometry
		fund = b.Fundamental()
	)
	for _, v := range b.Vertices {
		if fund.Vertices[v.Type] == v {
			v.Position = geo.Fundamental[v.Type]
			continue
		}
		var (
			layer = b.Layer(v.WDistance)
			owner *Chamber
		)
		for _, c := range layer {
			if c.Vertices[v.Type] == v {
				owner = c
			}
		}
		if owner == nil {
			owner = v.Chambers[0]
			b.logger.Warn("vertex has no chamber in its own layer",
				zap.Int("vertex", v.ID), zap.Stringer("word", v.WDistance))
		}
		p, skipped := geo.Reflect(geo.Fundamental[v.Type], v.WDistance)
		for _, l := range skipped {
			b.logger.Warn("Unparseable-Generator-Index", zap.String("letter", string(l)))
		}
		v.Position = geo.Position(owner.Height, MaxHeight(layer), p)
	}
	return b.checkPositions()
}
