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
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/valpere/simpletran/internal/config"
	"github.com/valpere/simpletran/internal/translator"
)

var (
	text       string
	inputFile  string
	targetLang string
	storeID    string
	rawOutput  bool
)

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Translate text with the configured engine",
	Long: `Translate text with the engine selected by general/ai_engine.

  --language L  translate into L using the default scope's engine and options
  --store S     translate with the source, target and engine configured for store S

Examples:
  simpletran translate --text 'Hello world' --language es
  simpletran translate --input description.html --store 1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input := text
		if input == "" && inputFile != "" {
			b, err := os.ReadFile(inputFile)
			if err != nil {
				return fmt.Errorf("failed to read input file: %w", err)
			}
			input = string(b)
		}
		if strings.TrimSpace(input) == "" {
			return fmt.Errorf("either --text or --input is required")
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		req := translator.Request{Text: input, Scope: config.Scope(storeID), TargetLang: targetLang}
		reqLog := logger.With(zap.String("request_id", uuid.NewString()))
		reqLog.Info("Translation request", zap.String("scope", storeID), zap.String("target_lang", targetLang))

		out, err := a.dispatcher.Do(cmd.Context(), req)
		if err != nil {
			reqLog.Error("Translation failed", zap.Error(err))
			return err
		}

		if rawOutput {
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Original Text: %s\n", input)
		fmt.Fprintf(cmd.OutOrStdout(), "Translated Text: %s\n", out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&text, "text", "t", "", "Text to translate")
	translateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "File with the text to translate")
	translateCmd.Flags().StringVarP(&targetLang, "language", "l", "", "Target language code (e.g., es, fr, DE)")
	translateCmd.Flags().StringVarP(&storeID, "store", "s", "", "Store scope whose settings drive the translation")
	translateCmd.Flags().BoolVar(&rawOutput, "raw", false, "Print only the translation")

	translateCmd.MarkFlagsMutuallyExclusive("text", "input")
	translateCmd.MarkFlagsMutuallyExclusive("language", "store")
	translateCmd.MarkFlagsOneRequired("language", "store")
}
