package InputParameters

import (
	"fmt"
	"io"
	"os"

	"github.com/ghodss/yaml"
	"github.com/notargets/gobuildings/building"
	"github.com/notargets/gobuildings/group"
	"github.com/notargets/gobuildings/types"
	"github.com/notargets/gobuildings/utils"
	"gonum.org/v1/gonum/spatial/r3"
)

// Parameters obtained from the YAML input file
type BuildingParameters struct {
	Title                  string       `yaml:"Title"`
	Preset                 string       `yaml:"Preset"` // SphA2, AffA2 or SphA3
	Radius                 int          `yaml:"Radius"` // Maximal word length, affine presets only
	ResidueCharacteristic  int          `yaml:"ResidueCharacteristic"`
	FieldCharacteristic    int          `yaml:"FieldCharacteristic"`
	Thin                   bool         `yaml:"Thin"` // Single apartment, trivial root groups
	ParallelDegree         int          `yaml:"ParallelDegree"`
	Roots                  [][3]float64 `yaml:"Roots"` // Optional geometry overrides follow
	FundamentalCoordinates [][3]float64 `yaml:"FundamentalCoordinates"`
	AffineRoots            []bool       `yaml:"AffineRoots"`
}

func (bp *BuildingParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, bp)
}

// ReadFile parses and validates a parameter file
func ReadFile(fileName string) (bp *BuildingParameters, err error) {
	var data []byte
	if data, err = os.ReadFile(fileName); err != nil {
		return
	}
	bp = &BuildingParameters{}
	if err = bp.Parse(data); err != nil {
		err = fmt.Errorf("parsing %s: %w", fileName, err)
		return
	}
	err = bp.Validate()
	return
}

func (bp *BuildingParameters) CoxeterType() (ct types.CoxeterType, err error) {
	var ok bool
	if ct, ok = types.ParseCoxeterType(bp.Preset); !ok {
		err = fmt.Errorf("%w: %q", group.ErrUnknownPreset, bp.Preset)
	}
	return
}

// Validate checks the preset name, the residue characteristic and the length of every geometry override
func (bp *BuildingParameters) Validate() (err error) {
	var (
		ct types.CoxeterType
		p  group.Preset
	)
	if ct, err = bp.CoxeterType(); err != nil {
		return
	}
	if p, err = group.GetPreset(ct); err != nil {
		return
	}
	switch {
	case bp.ResidueCharacteristic != 0 && bp.ResidueCharacteristic != 2 && bp.ResidueCharacteristic != 5:
		err = fmt.Errorf("%w: have %d", group.ErrUnsupportedResidue, bp.ResidueCharacteristic)
	case bp.Radius < 0:
		err = fmt.Errorf("%w: %d", group.ErrBadRadius, bp.Radius)
	case len(bp.Roots) != 0 && len(bp.Roots) != p.Rank:
		err = fmt.Errorf("%w: %d roots for rank %d", building.ErrGeometryMismatch, len(bp.Roots), p.Rank)
	case len(bp.AffineRoots) != 0 && len(bp.AffineRoots) != p.Rank:
		err = fmt.Errorf("%w: %d affine flags for rank %d", building.ErrGeometryMismatch, len(bp.AffineRoots), p.Rank)
	case len(bp.FundamentalCoordinates) != 0 && len(bp.FundamentalCoordinates) != building.NumVertexTypes:
		err = fmt.Errorf("%w: %d fundamental coordinates, want %d",
			building.ErrGeometryMismatch, len(bp.FundamentalCoordinates), building.NumVertexTypes)
	}
	return
}

// Options translates the file into generation options. Unset values keep the library defaults.
func (bp *BuildingParameters) Options() (opts []group.Option) {
	if bp.Radius > 0 {
		opts = append(opts, group.WithRadius(bp.Radius))
	}
	if bp.ResidueCharacteristic != 0 {
		opts = append(opts, group.WithResidueCharacteristic(bp.ResidueCharacteristic))
	}
	if bp.FieldCharacteristic != 0 {
		opts = append(opts, group.WithFieldCharacteristic(bp.FieldCharacteristic))
	}
	if bp.ParallelDegree != 0 {
		opts = append(opts, group.WithParallelDegree(bp.ParallelDegree))
	}
	opts = append(opts, group.WithThin(bp.Thin))
	return
}

// Geometry is the preset geometry with any overrides from the file applied
func (bp *BuildingParameters) Geometry() (geo building.Geometry, err error) {
	var ct types.CoxeterType
	if ct, err = bp.CoxeterType(); err != nil {
		return
	}
	if geo, err = building.NewGeometry(ct); err != nil {
		return
	}
	if len(bp.Roots) != 0 {
		geo.Roots = toVecs(bp.Roots)
	}
	if len(bp.FundamentalCoordinates) != 0 {
		geo.Fundamental = toVecs(bp.FundamentalCoordinates)
	}
	if len(bp.AffineRoots) != 0 {
		geo.Affine = append([]bool{}, bp.AffineRoots...)
	}
	return
}

func toVecs(cs [][3]float64) (vs []r3.Vec) {
	vs = make([]r3.Vec, len(cs))
	for i, c := range cs {
		vs[i] = utils.NewVec3(c)
	}
	return
}

func (bp *BuildingParameters) Print() { bp.Fprint(os.Stdout) }

func (bp *BuildingParameters) Fprint(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", bp.Title)
	fmt.Fprintf(w, "[%s]\t\t\t= Preset\n", bp.Preset)
	fmt.Fprintf(w, "[%d]\t\t\t\t= Radius\n", bp.Radius)
	fmt.Fprintf(w, "[%d]\t\t\t\t= Residue Characteristic\n", bp.ResidueCharacteristic)
	fmt.Fprintf(w, "[%d]\t\t\t\t= Field Characteristic\n", bp.FieldCharacteristic)
	fmt.Fprintf(w, "[%v]\t\t\t= Thin\n", bp.Thin)
	if bp.ParallelDegree != 0 {
		fmt.Fprintf(w, "[%d]\t\t\t\t= Parallel Degree\n", bp.ParallelDegree)
	}
	for i, r := range bp.Roots {
		fmt.Fprintf(w, "Roots[%d] = %v\n", i, r)
	}
	for i, c := range bp.FundamentalCoordinates {
		fmt.Fprintf(w, "FundamentalCoordinates[%d] = %v\n", i, c)
	}
	if len(bp.AffineRoots) != 0 {
		fmt.Fprintf(w, "AffineRoots = %v\n", bp.AffineRoots)
	}
}
