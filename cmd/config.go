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
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/valpere/textskill/internal/logging"
)

// envPrefix namespaces the environment overrides, e.g. TEXT_TRANSFORM_LOG_LEVEL.
const envPrefix = "TEXT_TRANSFORM"

func init() {
	rootCmd.PersistentFlags().String("log-level", "warn", "stderr log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "text", "stderr log format: text or json")

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log-format", rootCmd.PersistentFlags().Lookup("log-format"))
}

// newLogger builds the stderr logger from flags and environment.
func newLogger(cmd *cobra.Command) *slog.Logger {
	return logging.New(viper.GetString("log-level"), viper.GetString("log-format"), cmd.ErrOrStderr())
}
