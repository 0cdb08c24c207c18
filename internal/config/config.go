// Package config loads resultsgen settings from flags, the environment and an
// optional resultsgen.yaml.
package config

import (
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/goatx/resultsgen/internal/generator"
	"github.com/goatx/resultsgen/internal/wording"
)

const (
	envPrefix    = "RESULTSGEN"
	maxWalkDepth = 25

	// DefaultMaxArity is the highest arity generated when none is configured.
	DefaultMaxArity = generator.DefaultMaxArity
)

var configNames = []string{"resultsgen.yaml", "resultsgen.yml"}

// ErrInvalidConfig is returned when the loaded configuration cannot drive a
// generation run.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the resultsgen configuration.
type Config struct {
	// MaxArity is the highest union arity generated.
	MaxArity int `mapstructure:"max_arity"`

	// Package overrides the package clause of the outputs. Empty means the
	// package already present in the output directory.
	Package string `mapstructure:"package"`

	// Format runs the outputs through the Go formatter before writing.
	Format bool `mapstructure:"format"`

	Log LogConfig `mapstructure:"log"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// LoadConfig discovers and loads configuration with precedence
// env > config file > defaults. Flags are applied by the caller on top.
//
// Returns the loaded config and the path of the config file, empty if none
// was found.
func LoadConfig(explicitConfigPath string) (*Config, string, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath, err := findConfigFile(explicitConfigPath)
	if err != nil {
		return nil, "", err
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, configPath, errors.Wrapf(err, "reading config file %s", configPath)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, configPath, errors.Wrap(err, "unmarshaling config")
	}

	return &cfg, configPath, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("max_arity", DefaultMaxArity)
	v.SetDefault("package", "")
	v.SetDefault("format", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
}

// findConfigFile returns explicitPath if it exists. Otherwise it walks up
// from the working directory looking for resultsgen.yaml or resultsgen.yml,
// stopping at a .git entry or after maxWalkDepth levels.
func findConfigFile(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", errors.WithHint(
				errors.Wrapf(ErrInvalidConfig, "config file not found: %s", explicitPath),
				"omit --config to auto-discover resultsgen.yaml",
			)
		}
		return explicitPath, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "getting cwd")
	}

	dir := cwd
	for range maxWalkDepth {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", nil
}

// Validate reports whether c can drive a generation run.
func (c *Config) Validate() error {
	if c.MaxArity < 1 || c.MaxArity > wording.MaxValue {
		return errors.WithHint(
			errors.Wrapf(ErrInvalidConfig, "max_arity %d is outside [1, %d]", c.MaxArity, wording.MaxValue),
			"set max_arity in resultsgen.yaml, RESULTSGEN_MAX_ARITY or --max-arity",
		)
	}
	if c.Package != "" && !token.IsIdentifier(c.Package) {
		return errors.Wrapf(ErrInvalidConfig, "package %q is not a valid Go identifier", c.Package)
	}
	return nil
}
