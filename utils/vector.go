package utils

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ReflectLinear mirrors p in the hyperplane through the origin orthogonal to
// root: p - 2(root.p)root.
func ReflectLinear(p, root r3.Vec) r3.Vec {
	return r3.Sub(p, r3.Scale(2*r3.Dot(root, p), root))
}

// ReflectAffine mirrors p in the hyperplane root.x = -|root|^2, i.e.
// p - 2(root.(p+root))root. For a unit root this is the plane shifted one unit
// against the root direction.
func ReflectAffine(p, root r3.Vec) r3.Vec {
	return r3.Sub(p, r3.Scale(2*r3.Dot(root, r3.Add(p, root)), root))
}

func NewVec3(c [3]float64) r3.Vec {
	return r3.Vec{X: c[0], Y: c[1], Z: c[2]}
}

func Vec3Close(a, b r3.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) < tol &&
		math.Abs(a.Y-b.Y) < tol &&
		math.Abs(a.Z-b.Z) < tol
}
