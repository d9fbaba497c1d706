package InputParameters

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/notargets/gobuildings/building"
	"github.com/notargets/gobuildings/group"
	"github.com/notargets/gobuildings/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

var affineInput = []byte(`
Title: "Affine A2 over Q2"
Preset: AffA2
Radius: 2
ResidueCharacteristic: 2
ParallelDegree: 4
AffineRoots: [false, false, true]
FundamentalCoordinates:
  - [1, 0, 0]
  - [0.5, 0, 0.8660254037844386]
  - [0, 0, 0]
`)

func TestParse(t *testing.T) {
	{
		bp := &BuildingParameters{}
		require.NoError(t, bp.Parse(affineInput))
		assert.Equal(t, "Affine A2 over Q2", bp.Title)
		assert.Equal(t, 2, bp.Radius)
		assert.Equal(t, 4, bp.ParallelDegree)
		assert.Equal(t, []bool{false, false, true}, bp.AffineRoots)
		require.NoError(t, bp.Validate())
		ct, err := bp.CoxeterType()
		require.NoError(t, err)
		assert.Equal(t, types.AffA2, ct)
		geo, err := bp.Geometry()
		require.NoError(t, err)
		assert.Equal(t, r3.Vec{X: 0.5, Z: 0.8660254037844386}, geo.Fundamental[1])
		assert.Len(t, geo.Roots, 3)
		var buf bytes.Buffer
		bp.Fprint(&buf)
		assert.Contains(t, buf.String(), "[AffA2]")
	}
	{ // Options drive a context
		bp := &BuildingParameters{Preset: "SphA2", Thin: true}
		require.NoError(t, bp.Validate())
		ct, _ := bp.CoxeterType()
		gc, err := group.NewContext(ct, bp.Options()...)
		require.NoError(t, err)
		assert.True(t, gc.Thin)
		assert.Equal(t, group.DefaultRadius, gc.Radius)
	}
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		bp   BuildingParameters
		want error
	}{
		{BuildingParameters{Preset: "C3"}, group.ErrUnknownPreset},
		{BuildingParameters{Preset: "SphA2", ResidueCharacteristic: 3}, group.ErrUnsupportedResidue},
		{BuildingParameters{Preset: "AffA2", Radius: -2}, group.ErrBadRadius},
		{BuildingParameters{Preset: "SphA2", Roots: [][3]float64{{1, 0, 0}}}, building.ErrGeometryMismatch},
		{BuildingParameters{Preset: "SphA3", AffineRoots: []bool{true}}, building.ErrGeometryMismatch},
		{BuildingParameters{Preset: "SphA3", FundamentalCoordinates: [][3]float64{{1, 0, 0}}},
			building.ErrGeometryMismatch},
	} {
		err := tc.bp.Validate()
		assert.True(t, errors.Is(err, tc.want), "%v: %v", tc.bp.Preset, err)
	}
}

func TestReadFile(t *testing.T) {
	var (
		dir  = t.TempDir()
		good = filepath.Join(dir, "affine.yaml")
		bad  = filepath.Join(dir, "bad.yaml")
	)
	require.NoError(t, os.WriteFile(good, affineInput, 0644))
	require.NoError(t, os.WriteFile(bad, []byte("Preset: G2\n"), 0644))
	bp, err := ReadFile(good)
	require.NoError(t, err)
	assert.Equal(t, "AffA2", bp.Preset)
	_, err = ReadFile(bad)
	assert.True(t, errors.Is(err, group.ErrUnknownPreset))
	_, err = ReadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
