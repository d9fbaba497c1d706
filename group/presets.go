package group

import (
	"fmt"

	"github.com/notargets/gobuildings/types"
	"github.com/notargets/gobuildings/utils"
	"gonum.org/v1/gonum/mat"
)

// Preset is the closed description of one building family.
type Preset struct {
	Type     types.CoxeterType
	Dim      int // Size of the matrices
	Rank     int // Number of simple reflections
	OrderW   int // Order of the Weyl group, zero when it is infinite
	TestForm *TestForm
	// Reflections returns the simple reflection matrices for a residue characteristic
	Reflections func(resChar int) []*mat.Dense
}

var presets = map[types.CoxeterType]Preset{
	types.SphA2: {
		Type: types.SphA2, Dim: 3, Rank: 2, OrderW: 6,
		TestForm: A2,
		Reflections: func(resChar int) []*mat.Dense {
			return []*mat.Dense{
				utils.NewDenseRows([][]float64{
					{0, 1, 0},
					{1, 0, 0},
					{0, 0, 1},
				}),
				utils.NewDenseRows([][]float64{
					{1, 0, 0},
					{0, 0, 1},
					{0, 1, 0},
				}),
			}
		},
	},
	types.AffA2: {
		Type: types.AffA2, Dim: 3, Rank: 3,
		TestForm: A2,
		Reflections: func(resChar int) []*mat.Dense {
			p := float64(resChar)
			return []*mat.Dense{
				utils.NewDenseRows([][]float64{
					{0, 1, 0},
					{1, 0, 0},
					{0, 0, 1},
				}),
				utils.NewDenseRows([][]float64{
					{1, 0, 0},
					{0, 0, 1},
					{0, 1, 0},
				}),
				utils.NewDenseRows([][]float64{
					{0, 0, 1 / p},
					{0, 1, 0},
					{p, 0, 0},
				}),
			}
		},
	},
	types.SphA3: {
		Type: types.SphA3, Dim: 4, Rank: 3, OrderW: 24,
		TestForm: A3,
		Reflections: func(resChar int) []*mat.Dense {
			return []*mat.Dense{
				utils.NewDenseRows([][]float64{
					{0, 1, 0, 0},
					{1, 0, 0, 0},
					{0, 0, 1, 0},
					{0, 0, 0, 1},
				}),
				utils.NewDenseRows([][]float64{
					{1, 0, 0, 0},
					{0, 0, 1, 0},
					{0, 1, 0, 0},
					{0, 0, 0, 1},
				}),
				utils.NewDenseRows([][]float64{
					{1, 0, 0, 0},
					{0, 1, 0, 0},
					{0, 0, 0, 1},
					{0, 0, 1, 0},
				}),
			}
		},
	},
}

func GetPreset(ct types.CoxeterType) (p Preset, err error) {
	var ok bool
	if p, ok = presets[ct]; !ok {
		err = fmt.Errorf("%w: %v", ErrUnknownPreset, ct)
	}
	return
}

func (p Preset) IsAffine() bool { return p.OrderW == 0 }

func (p Preset) String() string {
	order := fmt.Sprintf("%d", p.OrderW)
	if p.IsAffine() {
		order = "infinite"
	}
	return fmt.Sprintf("%-6s dim=%d rank=%d |W|=%s test form=%s",
		p.Type, p.Dim, p.Rank, order, p.TestForm.Name)
}
