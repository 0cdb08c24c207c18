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
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goatx/resultsgen/internal/config"
	"github.com/goatx/resultsgen/internal/generator"
	"github.com/goatx/resultsgen/internal/genfs"
	"github.com/goatx/resultsgen/internal/load"
)

const (
	defaultClassFile = "results_gen.go"
	defaultTestFile  = "results_gen_test.go"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [CLASS_FILE TEST_FILE]",
	Short: "Generate the union types and their tests",
	Long: `Render the Results2 … ResultsN union types and the matching test suite.
Without arguments the files are written to results_gen.go and results_gen_test.go in the
working directory; otherwise pass both target paths. Both files are rendered in memory
first, so nothing is written when generation fails.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return errors.WithHint(
				errors.Wrapf(config.ErrInvalidConfig, "expected 0 or 2 arguments, got %d", len(args)),
				"pass both CLASS_FILE and TEST_FILE, or neither to use the defaults",
			)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		classPath, testPath := defaultClassFile, defaultTestFile
		if len(args) == 2 {
			classPath, testPath = args[0], args[1]
		}

		if err := applyGenerateFlags(cmd, cfg); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		opts := generator.Options{
			PackageName: resolvePackage(cfg, filepath.Dir(classPath)),
			MaxArity:    cfg.MaxArity,
		}

		var post []genfs.FileMapper
		if cfg.Format {
			post = append(post, genfs.FormatGo)
		}

		logger.Info("generating files",
			zap.String("package", opts.PackageName),
			zap.Int("max_arity", opts.MaxArity),
		)
		gfs, err := generator.Files(opts, classPath, testPath, post...)
		if err != nil {
			return err
		}

		if err := gfs.Write(cmd.Context(), ""); err != nil {
			return err
		}
		if err := gfs.VerifyWritten(""); err != nil {
			return err
		}

		for _, f := range gfs.Files() {
			logger.Info("wrote file", zap.String("path", f.Path), zap.Int("bytes", len(f.Data)))
		}
		logger.Debug("generation complete", zap.Int("files", gfs.Len()))
		return nil
	},
}

func applyGenerateFlags(cmd *cobra.Command, c *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("max-arity") {
		n, err := flags.GetInt("max-arity")
		if err != nil {
			return err
		}
		c.MaxArity = n
	}
	if flags.Changed("package") {
		name, err := flags.GetString("package")
		if err != nil {
			return err
		}
		c.Package = name
	}
	if flags.Changed("format") {
		format, err := flags.GetBool("format")
		if err != nil {
			return err
		}
		c.Format = format
	}
	return nil
}

// resolvePackage picks the configured package, then the package already in
// dir, then the default.
func resolvePackage(c *config.Config, dir string) string {
	if c.Package != "" {
		return c.Package
	}

	name, err := load.PackageName(dir)
	if err != nil {
		logger.Debug("falling back to default package",
			zap.String("dir", dir),
			zap.String("package", generator.DefaultPackage),
			zap.Error(err),
		)
		return generator.DefaultPackage
	}
	logger.Debug("resolved package", zap.String("dir", dir), zap.String("package", name))
	return name
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().Int("max-arity", config.DefaultMaxArity, "highest union arity to generate (1-20)")
	generateCmd.Flags().String("package", "", "package clause of the outputs (default: package of the output directory)")
	generateCmd.Flags().Bool("format", true, "format the outputs with goimports")
}
