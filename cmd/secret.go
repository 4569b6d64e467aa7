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

	"github.com/spf13/cobra"

	"github.com/valpere/simpletran/internal/crypt"
)

var secretCmd = &cobra.Command{
	Use:   "secret",
	Short: "Generate keys and encrypt API keys for the config file",
}

var secretKeygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Print a new crypt.key",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := crypt.GenerateKey()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), key)
		return nil
	},
}

var secretEncryptCmd = &cobra.Command{
	Use:   "encrypt <plaintext>",
	Short: "Encrypt a value with crypt.key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		box, err := loadBox()
		if err != nil {
			return err
		}
		if box == nil {
			return fmt.Errorf("crypt.key (or SIMPLETRAN_CRYPT_KEY) is required")
		}
		out, err := box.Encrypt(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(secretCmd)

	secretCmd.AddCommand(secretKeygenCmd)
	secretCmd.AddCommand(secretEncryptCmd)
}
