/*
Copyright © 2025 Honoka Toda, Shinya Ishitobi

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
	"go.uber.org/zap"

	"github.com/goatx/resultsgen/internal/config"
	"github.com/goatx/resultsgen/internal/logging"
)

var (
	// Set during PersistentPreRunE.
	cfg    *config.Config
	logger = zap.NewNop()

	// Persistent flags
	cfgFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "resultsgen",
	Short: "Generate union result types for HTTP endpoints",
	Long: `resultsgen emits the Results2 … ResultsN union types of the results package
together with a test suite that exercises every arity.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		loaded, configPath, err := config.LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			loaded.Log.Level = logLevel
		}

		l, err := logging.NewLogger(logging.Config{
			Component:   cmd.Name(),
			Level:       loaded.Log.Level,
			Development: loaded.Log.Development,
			Output:      cmd.ErrOrStderr(),
		})
		if err != nil {
			return err
		}

		cfg, logger = loaded, l
		if configPath != "" {
			logger.Debug("loaded config", zap.String("path", configPath))
		}
		return nil
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		_ = logger.Sync()
	},
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: auto-discover resultsgen.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "minimum log level (debug, info, warn, error)")
}
