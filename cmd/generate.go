/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/notargets/gobuildings/InputParameters"
	"github.com/notargets/gobuildings/building"
	"github.com/notargets/gobuildings/group"
	"github.com/notargets/gobuildings/types"
	"github.com/notargets/gobuildings/utils"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Generate struct {
	InputFile  string
	OutDir     string
	ProfileDir string
	Radius     int // Overrides the input file when non zero
	Parallel   int
}

// GenerateCmd represents the generate command
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a building from a parameter file",
	Long: `
Generates the chambers of the building described by the input file, resolves their Weyl distances and embeds the
vertices. With --out the chamber, vertex, panel, graph and Weyl group listings are written to that directory.

gobuildings generate -I params.yaml --out ./out`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			gen    = &Generate{}
			logger *zap.Logger
		)
		gen.InputFile, _ = cmd.Flags().GetString("inputParametersFile")
		gen.OutDir, _ = cmd.Flags().GetString("out")
		gen.ProfileDir, _ = cmd.Flags().GetString("profile")
		if cmd.Flags().Changed("radius") {
			gen.Radius, _ = cmd.Flags().GetInt("radius")
		}
		if cmd.Flags().Changed("parallel") {
			gen.Parallel, _ = cmd.Flags().GetInt("parallel")
		}
		if logger, err = newLogger(); err != nil {
			return
		}
		defer func() { _ = logger.Sync() }()
		if gen.ProfileDir != "" {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(gen.ProfileDir), profile.Quiet).Stop()
		}
		_, err = RunGenerate(gen, os.Stdout, logger)
		return
	},
}

func init() {
	rootCmd.AddCommand(GenerateCmd)
	GenerateCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file for input parameters like:\n\t- Preset\n\t- Radius\n\t- ResidueCharacteristic")
	GenerateCmd.Flags().IntP("radius", "r", group.DefaultRadius, "maximal word length of the affine Weyl group")
	GenerateCmd.Flags().IntP("parallel", "p", 0, "number of goroutines building the chamber graph, 0 uses every CPU")
	GenerateCmd.Flags().StringP("out", "o", "", "directory for the chamber, vertex, panel, graph and Weyl listings")
	GenerateCmd.Flags().String("profile", "", "directory for a CPU profile")
	_ = viper.BindPFlag("radius", GenerateCmd.Flags().Lookup("radius"))
	_ = viper.BindPFlag("parallel", GenerateCmd.Flags().Lookup("parallel"))
}

/*
RunGenerate reads the input file, generates the chamber graph, builds the embedding and prints a summary to w.
Flag values override the file; values left unset in both come from the config file or environment.
*/
func RunGenerate(gen *Generate, w io.Writer, logger *zap.Logger) (b *building.Building, err error) {
	var (
		bp    *InputParameters.BuildingParameters
		ct    types.CoxeterType
		gc    *group.Context
		g     *group.ChamberGraph
		geo   building.Geometry
		start = time.Now()
	)
	if bp, err = processInput(gen); err != nil {
		return
	}
	bp.Fprint(w)
	if ct, err = bp.CoxeterType(); err != nil {
		return
	}
	opts := append(bp.Options(), group.WithLogger(logger))
	if gc, err = group.NewContext(ct, opts...); err != nil {
		return
	}
	if g, err = gc.Generate(); err != nil {
		return
	}
	if geo, err = bp.Geometry(); err != nil {
		return
	}
	if b, err = building.Build(gc, geo); err != nil {
		return
	}
	fmt.Fprintf(w, "|W| = %d\n", len(gc.W()))
	fmt.Fprintf(w, "Chambers = %d, Edges = %d, Components = %d\n", g.Len(), g.EdgeCount()/2, len(g.Components()))
	fmt.Fprintf(w, "Vertices = %d, Panels = %d\n", len(b.Vertices), len(b.Panels))
	fmt.Fprintf(w, "Elapsed = %v, %s\n", time.Since(start), utils.GetMemUsage())
	if gen.OutDir != "" {
		err = writeListings(b, gen.OutDir)
	}
	return
}

func processInput(gen *Generate) (bp *InputParameters.BuildingParameters, err error) {
	if gen.InputFile == "" {
		err = fmt.Errorf("an input parameters file is required, for example:\n%s", exampleFile)
		return
	}
	if bp, err = InputParameters.ReadFile(gen.InputFile); err != nil {
		return
	}
	switch {
	case gen.Radius != 0:
		bp.Radius = gen.Radius
	case bp.Radius == 0:
		bp.Radius = viper.GetInt("radius")
	}
	switch {
	case gen.Parallel != 0:
		bp.ParallelDegree = gen.Parallel
	case bp.ParallelDegree == 0:
		bp.ParallelDegree = viper.GetInt("parallel")
	}
	return
}

var listings = []struct {
	file  string
	write func(b *building.Building, w io.Writer) error
}{
	{"weyl.txt", (*building.Building).WriteWeyl},
	{"chambers.txt", (*building.Building).WriteChambers},
	{"graph.txt", (*building.Building).WriteGraph},
	{"vertices.txt", (*building.Building).WriteVertices},
	{"panels.txt", (*building.Building).WritePanels},
}

func writeListings(b *building.Building, dir string) (err error) {
	if err = os.MkdirAll(dir, 0755); err != nil {
		return
	}
	for _, l := range listings {
		var f *os.File
		if f, err = os.Create(filepath.Join(dir, l.file)); err != nil {
			return
		}
		err = l.write(b, f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return
		}
	}
	return
}

var exampleFile = `
########################################
Title: "Spherical A2 over Q_2"
Preset: SphA2
ResidueCharacteristic: 2
Thin: false
########################################
`
