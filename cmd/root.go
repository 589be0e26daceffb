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
	"os"

	"github.com/spf13/cobra"

	"github.com/valpere/textskill/internal/skill"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "text-transform",
	Short: "Text transform skill",
	Long: `A skill that transforms text. It reads one JSON object from stdin,
applies the requested transform and writes one JSON result to stdout.

Input:  {"text": "hello world", "transform": "uppercase"}
Output: {"success": true, "output": "HELLO WORLD", "error": null}

Supported transforms: uppercase, lowercase, reverse, title

The process exits 0 whenever a result was written; a failed transform is
reported through "success": false and the "error" field.`,
	Version:      version,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		h := skill.NewHandler(newLogger(cmd))
		return h.Run(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
