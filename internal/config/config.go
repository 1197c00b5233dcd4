package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sghaida/solid/demo"
)

// Config drives cmd/solid.
//
// Principles selects examples by short code (srp, ocp, lsp, isp, dip); empty
// means all. Approach is "wrong", "right" or "all".
type Config struct {
	Env        string   `yaml:"env"`
	LogLevel   string   `yaml:"log_level"`
	LogFormat  string   `yaml:"log_format"`
	Principles []string `yaml:"principles"`
	Approach   string   `yaml:"approach"`
}

const (
	FormatJSON   = "json"
	FormatPretty = "pretty"

	ApproachAll = "all"
)

// LoadFromEnv is ReadEnv followed by Validate.
func LoadFromEnv() (Config, error) {
	return validated(ReadEnv(), nil)
}

// LoadFile is ReadFile followed by Validate.
func LoadFile(path string) (Config, error) {
	return validated(ReadFile(path))
}

// ReadEnv reads SOLID_* variables and applies defaults without validating, so
// callers can override fields before calling Validate.
func ReadEnv() Config {
	cfg := Config{
		Env:        os.Getenv("SOLID_ENV"),
		LogLevel:   os.Getenv("SOLID_LOG_LEVEL"),
		LogFormat:  os.Getenv("SOLID_LOG_FORMAT"),
		Principles: SplitList(os.Getenv("SOLID_PRINCIPLES")),
		Approach:   os.Getenv("SOLID_APPROACH"),
	}
	cfg.applyDefaults()
	return cfg
}

// ReadFile decodes a YAML config file and applies defaults without validating.
func ReadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config file: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func validated(cfg Config, err error) (Config, error) {
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Env == "" {
		c.Env = "local"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = FormatJSON
	}
	if c.Approach == "" {
		c.Approach = ApproachAll
	}
}

// Validate checks the enumerated fields.
func (c Config) Validate() error {
	if c.LogFormat != FormatJSON && c.LogFormat != FormatPretty {
		return fmt.Errorf("log_format must be %q or %q, got %q", FormatJSON, FormatPretty, c.LogFormat)
	}
	if _, err := c.SelectedPrinciples(); err != nil {
		return err
	}
	if _, err := c.SelectedApproaches(); err != nil {
		return err
	}
	return nil
}

// SelectedPrinciples parses Principles. Nil means all.
func (c Config) SelectedPrinciples() ([]demo.Principle, error) {
	var out []demo.Principle
	for _, s := range c.Principles {
		p, err := demo.ParsePrinciple(s)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// SelectedApproaches parses Approach. Nil means all.
func (c Config) SelectedApproaches() ([]demo.Approach, error) {
	if c.Approach == "" || strings.EqualFold(c.Approach, ApproachAll) {
		return nil, nil
	}
	a, err := demo.ParseApproach(c.Approach)
	if err != nil {
		return nil, err
	}
	return []demo.Approach{a}, nil
}

// SplitList splits a comma separated flag or env value, dropping blanks.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
