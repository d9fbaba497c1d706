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

	"github.com/notargets/gobuildings/group"
	"github.com/notargets/gobuildings/types"
	"github.com/spf13/cobra"
)

// PresetsCmd lists the group presets
var PresetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the supported Coxeter types",
	RunE: func(cmd *cobra.Command, args []string) error {
		return ListPresets(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(PresetsCmd)
}

func ListPresets(w io.Writer) (err error) {
	var p group.Preset
	for _, ct := range types.CoxeterTypes() {
		if p, err = group.GetPreset(ct); err != nil {
			return
		}
		fmt.Fprintln(w, p.String())
	}
	return
}
