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
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/valpere/textskill/internal/skill"
)

var (
	testArgs     string
	testArgsFile string
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Run the skill once with the given arguments",
	Long: `Run the skill once with the given JSON arguments and print the result.

Without --args or --args-file the manifest's sample arguments are used:
  ` + skill.TestArgs + `

The command exits non-zero when the result is not successful.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if testArgs != "" && testArgsFile != "" {
			return fmt.Errorf("--args and --args-file cannot be used together")
		}

		raw := []byte(testArgs)
		if testArgsFile != "" {
			data, err := os.ReadFile(testArgsFile)
			if err != nil {
				return fmt.Errorf("failed to read args file: %w", err)
			}
			raw = data
		} else if testArgs == "" {
			raw = []byte(skill.TestArgs)
		}

		res := skill.NewHandler(newLogger(cmd)).Handle(raw)

		var buf bytes.Buffer
		if err := skill.Emit(&buf, res); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), buf.String()); err != nil {
			return err
		}

		if !res.Success {
			return fmt.Errorf("skill test failed: %s", *res.Error)
		}
		return nil
	},
}

func init() {
	testCmd.Flags().StringVar(&testArgs, "args", "", "JSON arguments passed to the skill")
	testCmd.Flags().StringVar(&testArgsFile, "args-file", "", "file containing the JSON arguments")
	rootCmd.AddCommand(testCmd)
}
