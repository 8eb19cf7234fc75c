package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	mdwerrors "github.com/msto63/precalc/foundation/core/errors"
	mdwlog "github.com/msto63/precalc/foundation/core/log"
	"github.com/msto63/precalc/foundation/utils/mathx"
)

// Supported file formats
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// EnvConfigPath names the variable LoadFromEnv reads the config path from
const EnvConfigPath = "PRECALC_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General    GeneralConfig    `toml:"general" yaml:"general"`
	Calculator CalculatorConfig `toml:"calculator" yaml:"calculator"`

	// Source is the file the configuration was read from, empty for defaults
	Source string `toml:"-" yaml:"-"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name" env:"PRECALC_NAME"`
	LogLevel  string `toml:"log_level" yaml:"log_level" env:"PRECALC_LOG_LEVEL"`
	LogFormat string `toml:"log_format" yaml:"log_format" env:"PRECALC_LOG_FORMAT"`
}

// CalculatorConfig holds the settings handed to every mathx.Calculator
type CalculatorConfig struct {
	Precision           int  `toml:"precision" yaml:"precision" env:"PRECALC_PRECISION"`
	FractionDigits      int  `toml:"fraction_digits" yaml:"fraction_digits" env:"PRECALC_FRACTION_DIGITS"`
	EnableCheckBoundary bool `toml:"enable_check_boundary" yaml:"enable_check_boundary" env:"PRECALC_CHECK_BOUNDARY"`
}

// Default returns the configuration used when no file is found
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			Name:      "precalc",
			LogLevel:  "warn",
			LogFormat: "text",
		},
		Calculator: CalculatorConfig{
			Precision:      mathx.DefaultPrecision,
			FractionDigits: mathx.DefaultFractionDigits,
		},
	}
}

// DetectFormat derives the file format from the path extension
func DetectFormat(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", mdwerrors.InvalidFormat(mdwerrors.ModuleConfig, path, "a .toml, .yaml or .yml file")
	}
}

// Load loads configuration from a TOML or YAML file. Keys missing from the
// file keep their default values.
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, mdwerrors.ConfigNotFound(path)
	}

	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, mdwerrors.OperationFailed(mdwerrors.ModuleConfig, "read", err)
	}

	cfg := Default()
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, mdwerrors.ConfigParseFailed(path, format, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, mdwerrors.ConfigParseFailed(path, format, err)
		}
	}
	cfg.Source = path

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by PRECALC_CONFIG, or the first default
// location that exists, and overlays PRECALC_* variables. Without any file
// it starts from Default.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		for _, p := range DefaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	cfg := Default()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPaths lists the locations LoadFromEnv tries in order
func DefaultPaths() []string {
	paths := []string{
		"./configs/precalc.toml",
		"./precalc.toml",
		"./precalc.yaml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "precalc", "config.toml"))
	}
	return paths
}

// ApplyEnv overlays PRECALC_* environment variables onto cfg. Unset
// variables leave the current values alone.
func ApplyEnv(cfg *Config) error {
	return applyEnv(cfg, env.Options{})
}

func applyEnv(cfg *Config, opts env.Options) error {
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return mdwerrors.ConfigParseFailed("environment", "env", err)
	}
	cfg.applyDefaults()
	return nil
}

// applyDefaults fills settings that were set to empty strings
func (c *Config) applyDefaults() {
	if c.General.Name == "" {
		c.General.Name = "precalc"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}
	if c.Calculator.Precision == 0 {
		c.Calculator.Precision = mathx.DefaultPrecision
	}
}

// Validate checks the log settings and the calculator ranges
func (c *Config) Validate() error {
	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return mdwerrors.ConfigInvalid(
			mdwerrors.InvalidInput(mdwerrors.ModuleConfig, "validate", c.General.LogLevel, "trace, debug, info, warn, error or fatal"))
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return mdwerrors.ConfigInvalid(
			mdwerrors.InvalidInput(mdwerrors.ModuleConfig, "validate", c.General.LogFormat, "json, text or logfmt"))
	}
	if err := c.MathxConfig().Validate(); err != nil {
		return mdwerrors.ConfigInvalid(err)
	}
	return nil
}

// MathxConfig converts the calculator section into a mathx.Config
func (c *Config) MathxConfig() mathx.Config {
	return mathx.Config{
		Precision:           c.Calculator.Precision,
		FractionDigits:      c.Calculator.FractionDigits,
		EnableCheckBoundary: c.Calculator.EnableCheckBoundary,
	}
}

// Marshal renders the configuration as TOML or YAML
func (c *Config) Marshal(format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return nil, mdwerrors.OperationFailed(mdwerrors.ModuleConfig, "marshal", err)
		}
		return buf.Bytes(), nil
	case FormatYAML, "yml":
		data, err := yaml.Marshal(c)
		if err != nil {
			return nil, mdwerrors.OperationFailed(mdwerrors.ModuleConfig, "marshal", err)
		}
		return data, nil
	default:
		return nil, mdwerrors.InvalidFormat(mdwerrors.ModuleConfig, format, "toml or yaml")
	}
}
