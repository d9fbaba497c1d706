package building

import (
	"fmt"
	"math"

	"github.com/notargets/gobuildings/types"
	"github.com/notargets/gobuildings/utils"
	"gonum.org/v1/gonum/spatial/r3"
)

// NumVertexTypes is the number of vertex slots of every chamber. Rank 2 chambers keep the origin as a third vertex.
const NumVertexTypes = 3

// PositionFunc places a reflected fundamental vertex p for a chamber of height h in a layer whose highest chamber
// has height maxH.
type PositionFunc func(h, maxH float64, p r3.Vec) r3.Vec

// PosA2 fans the layer out along y, centered on the fundamental apartment
func PosA2(h, maxH float64, p r3.Vec) r3.Vec {
	return r3.Add(p, r3.Vec{Y: (h - 1) - (maxH-1)/2})
}

// PosA3 scales the reflected point by the height
func PosA3(h, maxH float64, p r3.Vec) r3.Vec {
	return r3.Scale(h, p)
}

// Geometry is the root system used to embed a building
type Geometry struct {
	Roots       []r3.Vec // Simple roots, one per generator
	Affine      []bool   // Reflect in root.x = -|root|^2 instead of root.x = 0
	Fundamental []r3.Vec // Fundamental chamber vertex per vertex type
	Position    PositionFunc
}

func NewGeometry(ct types.CoxeterType) (geo Geometry, err error) {
	var (
		s3 = math.Sqrt(3)
		s2 = math.Sqrt(2)
		s6 = math.Sqrt(6)
	)
	switch ct {
	case types.SphA2:
		geo = Geometry{
			Roots:       []r3.Vec{{X: s3 / 2, Z: -0.5}, {Z: 1}},
			Affine:      []bool{false, false},
			Fundamental: []r3.Vec{{X: 1}, {X: 0.5, Z: s3 / 2}, {}},
			Position:    PosA2,
		}
	case types.AffA2:
		geo = Geometry{
			Roots:       []r3.Vec{{X: s3 / 2, Z: -0.5}, {Z: 1}, {X: -s3 / 2, Z: -0.5}},
			Affine:      []bool{false, false, true},
			Fundamental: []r3.Vec{{X: 1}, {X: 0.5, Z: s3 / 2}, {}},
			Position:    PosA2,
		}
	case types.SphA3:
		geo = Geometry{
			Roots:       []r3.Vec{{Y: 1}, {Y: -0.5, Z: -s3 / 2}, {X: math.Sqrt(2. / 3.), Z: s3 / 3}},
			Affine:      []bool{false, false, false},
			Fundamental: []r3.Vec{{X: 1. / 3., Y: s6 / 3, Z: -s2 / 3}, {X: s3 / 3, Z: -s6 / 3}, {X: 1}},
			Position:    PosA3,
		}
	default:
		err = fmt.Errorf("%w: no geometry for %v", ErrGeometryMismatch, ct)
	}
	return
}

// Validate checks the geometry against the rank of a Coxeter type
func (geo Geometry) Validate(rank int) (err error) {
	switch {
	case len(geo.Roots) != rank:
		err = fmt.Errorf("%w: %d roots for rank %d", ErrGeometryMismatch, len(geo.Roots), rank)
	case len(geo.Affine) != rank:
		err = fmt.Errorf("%w: %d affine flags for rank %d", ErrGeometryMismatch, len(geo.Affine), rank)
	case len(geo.Fundamental) != NumVertexTypes:
		err = fmt.Errorf("%w: %d fundamental vertices, want %d",
			ErrGeometryMismatch, len(geo.Fundamental), NumVertexTypes)
	case geo.Position == nil:
		err = fmt.Errorf("%w: no position function", ErrGeometryMismatch)
	case utils.IsNan(geo.Roots) || utils.IsNan(geo.Fundamental):
		err = fmt.Errorf("%w: NaN coordinate", ErrGeometryMismatch)
	}
	return
}

// reflectLetter mirrors p in the hyperplane of one simple reflection
func (geo Geometry) reflectLetter(p r3.Vec, l types.Letter) (q r3.Vec, ok bool) {
	if l.IsIdentity() {
		return p, true
	}
	i, err := l.ReflectionIndex()
	if err != nil || i < 0 || i >= len(geo.Roots) {
		return p, false
	}
	if i < len(geo.Affine) && geo.Affine[i] {
		return utils.ReflectAffine(p, geo.Roots[i]), true
	}
	return utils.ReflectLinear(p, geo.Roots[i]), true
}

// Reflect applies the reflections of w to p from right to left: the tail of the word acts first, then the head.
// Letters that do not name a simple reflection leave the point unchanged and are returned in skipped.
func (geo Geometry) Reflect(p r3.Vec, w types.Word) (q r3.Vec, skipped []types.Letter) {
	var ok bool
	switch len(w) {
	case 0:
		return p, nil
	case 1:
		if q, ok = geo.reflectLetter(p, w[0]); !ok {
			skipped = append(skipped, w[0])
		}
		return
	}
	q, skipped = geo.Reflect(p, w[1:])
	if q, ok = geo.reflectLetter(q, w[0]); !ok {
		skipped = append(skipped, w[0])
	}
	return
}
