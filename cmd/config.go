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

var (
	configScope  string
	configReveal bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read and manage settings",
	Long: `Read resolved settings and manage SQLite overrides.

Paths use the admin layout, for example deepl/api_key or general/ai_engine.
--scope selects a store layer; without it the default layer is used.
Secret paths are encrypted with crypt.key before they are stored.`,
}

var configGetCmd = &cobra.Command{
	Use:   "get <path>",
	Short: "Print the resolved value of a setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		path := args[0]
		scope := config.Scope(configScope)
		var value string
		if config.IsSecret(path) && configReveal {
			value, err = a.provider.Secret(cmd.Context(), path, scope)
		} else {
			value, err = a.provider.String(cmd.Context(), path, scope)
			if err == nil && config.IsSecret(path) && value != "" {
				value = "******"
			}
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <path> <value>",
	Short: "Store a setting override",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, value := args[0], args[1]
		if err := config.ValidateValue(path, value); err != nil {
			return err
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()
		if err := requireDB(a); err != nil {
			return err
		}

		if config.IsSecret(path) && value != "" {
			if a.box == nil {
				return fmt.Errorf("crypt.key is required to store %s", path)
			}
			if value, err = a.box.Encrypt(value); err != nil {
				return fmt.Errorf("failed to encrypt %s: %w", path, err)
			}
		}

		if err := a.db.Set(cmd.Context(), config.Scope(configScope), path, value); err != nil {
			return fmt.Errorf("failed to store %s: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s for %s\n", path, scopeLabel(configScope))
		return nil
	},
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <path>",
	Short: "Remove a setting override",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()
		if err := requireDB(a); err != nil {
			return err
		}

		removed, err := a.db.Unset(cmd.Context(), config.Scope(configScope), args[0])
		if err != nil {
			return fmt.Errorf("failed to remove %s: %w", args[0], err)
		}
		if !removed {
			fmt.Fprintf(cmd.OutOrStdout(), "No override for %s in %s\n", args[0], scopeLabel(configScope))
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from %s\n", args[0], scopeLabel(configScope))
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list [prefix]",
	Short: "List stored overrides",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()
		if err := requireDB(a); err != nil {
			return err
		}

		prefix := ""
		if len(args) == 1 {
			prefix = args[0]
		}
		entries, err := a.db.List(cmd.Context(), prefix)
		if err != nil {
			return fmt.Errorf("failed to list settings: %w", err)
		}
		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No stored settings.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SCOPE\tPATH\tVALUE\tUPDATED")
		for _, e := range entries {
			value := e.Value
			if config.IsSecret(e.Path) && value != "" {
				value = "******"
			} else {
				value = truncate(value, 40)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				scopeLabel(string(e.Scope)), e.Path, value, e.UpdatedAt.Format("2006-01-02 15:04"))
		}
		return w.Flush()
	},
}

var configOptionsCmd = &cobra.Command{
	Use:   "options <path>",
	Short: "Show the allowed values of a setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := config.Options(args[0])
		if len(opts) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "%s accepts any value.\n", args[0])
			return nil
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "VALUE\tLABEL")
		for _, o := range opts {
			fmt.Fprintf(w, "%q\t%s\n", o.Value, o.Label)
		}
		return w.Flush()
	},
}

// truncate shortens s to at most n runes, ending in "..." when cut.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func scopeLabel(scope string) string {
	if scope == "" {
		return "default"
	}
	return "store " + scope
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.PersistentFlags().StringVar(&configScope, "scope", "", "Store scope (empty for the default layer)")
	configGetCmd.Flags().BoolVar(&configReveal, "reveal", false, "Print decrypted secrets")

	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configOptionsCmd)
}
