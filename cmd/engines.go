/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

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
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/valpere/simpletran/internal/config"
)

var enginesScope string

var enginesCmd = &cobra.Command{
	Use:   "engines",
	Short: "List registered engines and the engine selected per scope",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		labels := make(map[string]string)
		for _, o := range config.Options(config.PathAIEngine) {
			labels[o.Value] = o.Label
		}

		selected, err := a.provider.AIEngine(cmd.Context(), config.Scope(enginesScope))
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ENGINE\tNAME\tSELECTED")
		for _, name := range a.registry.Engines() {
			mark := ""
			if name == selected {
				mark = "*"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", name, labels[name], mark)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(enginesCmd)

	enginesCmd.Flags().StringVar(&enginesScope, "scope", "", "Store scope to show the selected engine for")
}
