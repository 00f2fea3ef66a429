// Package config loads clex presets from TOML or YAML files.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ltungv/clex/internal/token"
)

// EnvVar names the environment variable that points at a config file.
const EnvVar = "CLEX_CONFIG"

// Format of a configuration file
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota
	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Config holds the session presets
type Config struct {
	// Format is the fmt verb used to print results, e.g. "%g" or "%.4f".
	Format    string             `toml:"format" yaml:"format"`
	ShowAST   bool               `toml:"show_ast" yaml:"show_ast"`
	LogLevel  string             `toml:"log_level" yaml:"log_level"`
	Variables map[string]float64 `toml:"variables" yaml:"variables"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a file, picking the format from its
// extension.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Parse(content, DetectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes content in the given format, applies defaults and validates
// the result.
func Parse(content []byte, format Format) (*Config, error) {
	var cfg Config
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("TOML parse error: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Discover loads the file named by CLEX_CONFIG, or else the first config
// found in the default locations. It returns the defaults when there is
// none.
func Discover() (*Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}
	for _, path := range defaultPaths() {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return Default(), nil
}

func defaultPaths() []string {
	paths := []string{"./clex.toml", "./clex.yaml", "./clex.yml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths,
			filepath.Join(dir, "clex", "config.toml"),
			filepath.Join(dir, "clex", "config.yaml"),
		)
	}
	return paths
}

// DetectFormat determines the configuration format from file extension
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Format == "" {
		c.Format = "%g"
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	if c.Variables == nil {
		c.Variables = make(map[string]float64)
	}
}

// Validate checks that the format renders a number and that every variable
// can be referenced from an expression.
func (c *Config) Validate() error {
	if out := fmt.Sprintf(c.Format, 1.5); strings.Contains(out, "%!") {
		return fmt.Errorf("invalid format %q: %s", c.Format, out)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	for name := range c.Variables {
		if err := ValidateName(name); err != nil {
			return err
		}
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Define parses a "name=value" binding and stores it in Variables.
func (c *Config) Define(binding string) error {
	name, raw, ok := strings.Cut(binding, "=")
	if !ok {
		return fmt.Errorf("invalid definition %q: expect name=value", binding)
	}
	name = strings.TrimSpace(name)
	if err := ValidateName(name); err != nil {
		return err
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fmt.Errorf("invalid value for %q: %w", name, err)
	}
	if c.Variables == nil {
		c.Variables = make(map[string]float64)
	}
	c.Variables[name] = value
	return nil
}

// ValidateName reports whether name can be used as a variable: it must look
// like an identifier and must not be a function name.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("invalid variable name: empty")
	}
	for i, r := range name {
		if !(unicode.IsLetter(r) || r == '_' || i > 0 && unicode.IsDigit(r)) {
			return fmt.Errorf("invalid variable name %q", name)
		}
	}
	if _, reserved := token.Keywords[name]; reserved {
		return fmt.Errorf("invalid variable name %q: reserved function name", name)
	}
	return nil
}
