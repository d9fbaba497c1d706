package types

import (
	"fmt"
	"math"
)

/*
PanelKey identifies a panel by the indices of its two vertices. The pair is stored in ascending order, so a panel
reached from either of its chambers maps to the same key.
*/
type PanelKey uint64

func NewPanelKey(verts [2]int) (packed PanelKey) {
	var (
		limit = math.MaxUint32
	)
	for _, vert := range verts {
		if vert < 0 || vert > limit {
			panic(fmt.Errorf("unable to pack two vertex indices into a uint64, have %d and %d as inputs",
				verts[0], verts[1]))
		}
	}
	var i1, i2 int
	if verts[0] <= verts[1] {
		i1, i2 = verts[0], verts[1]
	} else {
		i1, i2 = verts[1], verts[0]
	}
	packed = PanelKey(i1 + i2<<32)
	return
}

func (pk PanelKey) Vertices() (verts [2]int) {
	var (
		hi = pk >> 32
	)
	verts[1] = int(hi)
	verts[0] = int(pk - hi*(1<<32))
	return
}

func (pk PanelKey) String() string {
	verts := pk.Vertices()
	return fmt.Sprintf("(%d,%d)", verts[0], verts[1])
}
