package types

import "strings"

// CoxeterType enumerates the supported building families
type CoxeterType uint8

const (
	SphA2 CoxeterType = iota // Spherical rank 2, order 6
	AffA2                    // Affine rank 3, truncated by radius
	SphA3                    // Spherical rank 3, order 24
)

func (ct CoxeterType) String() string {
	names := map[CoxeterType]string{
		SphA2: "SphA2",
		AffA2: "AffA2",
		SphA3: "SphA3",
	}
	if name, ok := names[ct]; ok {
		return name
	}
	return "Unknown"
}

// IsAffine is true for the infinite families, whose Weyl group is truncated
func (ct CoxeterType) IsAffine() bool { return ct == AffA2 }

// CoxeterNameMap maps lowercase preset names to their type
var CoxeterNameMap = map[string]CoxeterType{
	"spha2": SphA2,
	"a2":    SphA2,
	"affa2": AffA2,
	"a~2":   AffA2,
	"spha3": SphA3,
	"a3":    SphA3,
}

// ParseCoxeterType matches a preset name, ignoring case and surrounding space
func ParseCoxeterType(name string) (ct CoxeterType, ok bool) {
	ct, ok = CoxeterNameMap[strings.ToLower(strings.TrimSpace(name))]
	return
}

// CoxeterTypes lists every supported type in declaration order
func CoxeterTypes() []CoxeterType {
	return []CoxeterType{SphA2, AffA2, SphA3}
}
