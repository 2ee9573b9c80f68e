package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvTabWidth = "VEDIT_TAB_WIDTH"
	EnvVcur     = "VEDIT_VCUR"
	EnvLogLevel = "VEDIT_LOG_LEVEL"
)

// fileConfig is the on-disk shape. Pointer fields distinguish unset keys
// from zero values.
type fileConfig struct {
	Theme       string            `toml:"theme" yaml:"theme"`
	TabWidth    *int              `toml:"tab_width" yaml:"tab_width"`
	Vcur        *string           `toml:"vcur" yaml:"vcur"`
	LineNumbers *bool             `toml:"line_numbers" yaml:"line_numbers"`
	LogLevel    string            `toml:"log_level" yaml:"log_level"`
	LogFile     *string           `toml:"log_file" yaml:"log_file"`
	SyntaxMap   map[string]string `toml:"syntax_map" yaml:"syntax_map"`
	AI          *aiConfig         `toml:"ai" yaml:"ai"`
}

type aiConfig struct {
	DefaultModel string        `toml:"default_model" yaml:"default_model"`
	Models       []modelConfig `toml:"models" yaml:"models"`
}

type modelConfig struct {
	ID        string `toml:"id" yaml:"id"`
	Provider  string `toml:"provider" yaml:"provider"`
	Endpoint  string `toml:"endpoint" yaml:"endpoint"`
	Model     string `toml:"model" yaml:"model"`
	APIKeyEnv string `toml:"api_key_env" yaml:"api_key_env"`
}

// Load reads the configuration at path, applies environment overrides and
// validates the result. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	default:
		fc, err := decode(path, data)
		if err != nil {
			return nil, err
		}
		if err := fc.apply(cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode parses data as TOML or YAML according to the path's extension.
func decode(path string, data []byte) (*fileConfig, error) {
	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", "":
		if err := toml.Unmarshal(data, &fc); err != nil {
			pe := &ParseError{Path: path, Message: err.Error(), Err: err}
			var de *toml.DecodeError
			if errors.As(err, &de) {
				pe.Line, pe.Column = de.Position()
			}
			return nil, pe
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	return &fc, nil
}

// apply overlays the set keys of fc onto cfg.
func (fc *fileConfig) apply(cfg *Config) error {
	if fc.Theme != "" {
		cfg.Theme = fc.Theme
	}
	if fc.TabWidth != nil {
		cfg.TabWidth = *fc.TabWidth
	}
	if fc.Vcur != nil {
		on, err := parseSwitch("vcur", *fc.Vcur)
		if err != nil {
			return err
		}
		cfg.VirtualCursor = on
	}
	if fc.LineNumbers != nil {
		cfg.ShowLineNumbers = *fc.LineNumbers
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.LogFile != nil {
		cfg.LogFile = *fc.LogFile
	}
	for ext, name := range fc.SyntaxMap {
		cfg.SyntaxMap[strings.TrimPrefix(ext, ".")] = name
	}

	if fc.AI != nil {
		cfg.Rewrite.DefaultModel = fc.AI.DefaultModel
		for _, m := range fc.AI.Models {
			provider := strings.ToLower(m.Provider)
			if provider == "" {
				provider = ProviderAnythingLLM
			}
			cfg.Rewrite.Models = append(cfg.Rewrite.Models, Model{
				ID:        m.ID,
				Provider:  provider,
				Endpoint:  m.Endpoint,
				Name:      m.Model,
				APIKeyEnv: m.APIKeyEnv,
			})
		}
	}
	return nil
}

// applyEnv applies the VEDIT_* overrides.
func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvTabWidth); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return &ValidationError{Setting: EnvTabWidth, Value: v, Message: "not an integer"}
		}
		cfg.TabWidth = n
	}
	if v, ok := os.LookupEnv(EnvVcur); ok {
		on, err := parseSwitch(EnvVcur, v)
		if err != nil {
			return err
		}
		cfg.VirtualCursor = on
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.LogLevel = strings.TrimSpace(v)
	}
	return nil
}

// parseSwitch accepts "on"/"off" and the usual boolean spellings.
func parseSwitch(setting, v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, &ValidationError{Setting: setting, Value: v, Message: `must be "on" or "off"`}
}
