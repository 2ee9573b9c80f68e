package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/vedit/internal/logging"
)

// Rewrite providers understood by the rewrite package.
const (
	ProviderAnythingLLM = "anythingllm"
	ProviderOpenAI      = "openai"
	ProviderAnthropic   = "anthropic"
)

// Defaults.
const (
	DefaultTheme    = "base16-ocean.dark"
	DefaultTabWidth = 4
	DefaultLogLevel = "info"
	DefaultLogFile  = "log/vedit.log"
	MaxTabWidth     = 16
)

// Config holds every vedit setting.
type Config struct {
	Theme           string
	TabWidth        int
	VirtualCursor   bool
	ShowLineNumbers bool
	LogLevel        string
	LogFile         string

	// SyntaxMap maps file extensions to syntax names.
	SyntaxMap map[string]string

	Rewrite Rewrite
}

// Rewrite configures the text rewrite collaborators.
type Rewrite struct {
	DefaultModel string
	Models       []Model
}

// Model is one configured rewrite endpoint.
type Model struct {
	ID       string
	Provider string
	Endpoint string

	// Name is the provider's model identifier, used by the SDK providers.
	Name string

	// APIKeyEnv names the environment variable holding the key. A value
	// starting with "Bearer " is used verbatim.
	APIKeyEnv string
}

// APIKey resolves the model's key from the environment.
func (m Model) APIKey() string {
	if strings.HasPrefix(m.APIKeyEnv, "Bearer ") {
		return strings.TrimPrefix(m.APIKeyEnv, "Bearer ")
	}
	if m.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(m.APIKeyEnv)
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Theme:         DefaultTheme,
		TabWidth:      DefaultTabWidth,
		VirtualCursor: true,
		LogLevel:      DefaultLogLevel,
		LogFile:       DefaultLogFile,
		SyntaxMap:     make(map[string]string),
	}
}

// DefaultPath returns ~/.vedit.toml, or ".vedit.toml" when the home
// directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".vedit.toml"
	}
	return filepath.Join(home, ".vedit.toml")
}

// Validate checks every setting.
func (c *Config) Validate() error {
	if c.TabWidth < 1 || c.TabWidth > MaxTabWidth {
		return &ValidationError{
			Setting: "tab_width",
			Value:   c.TabWidth,
			Message: fmt.Sprintf("must be between 1 and %d", MaxTabWidth),
		}
	}
	if _, ok := logging.ParseLevel(c.LogLevel); !ok {
		return &ValidationError{
			Setting: "log_level",
			Value:   c.LogLevel,
			Message: "must be debug, info, warn or error",
		}
	}

	seen := make(map[string]bool, len(c.Rewrite.Models))
	for _, m := range c.Rewrite.Models {
		if m.ID == "" {
			return &ValidationError{Setting: "ai.models.id", Value: `""`, Message: "must not be empty"}
		}
		if seen[m.ID] {
			return &ValidationError{Setting: "ai.models.id", Value: m.ID, Message: "duplicate id"}
		}
		seen[m.ID] = true

		switch m.Provider {
		case ProviderAnythingLLM, ProviderOpenAI, ProviderAnthropic:
		default:
			return &ValidationError{Setting: "ai.models.provider", Value: m.Provider, Message: "unknown provider"}
		}
		if m.Provider == ProviderAnythingLLM && m.Endpoint == "" {
			return &ValidationError{Setting: "ai.models.endpoint", Value: m.ID, Message: "required for anythingllm"}
		}
	}
	if c.Rewrite.DefaultModel != "" && !seen[c.Rewrite.DefaultModel] {
		return &ValidationError{Setting: "ai.default_model", Value: c.Rewrite.DefaultModel, Message: "no such model"}
	}
	return nil
}

// Model returns the model with id, or the default model when id is empty.
func (c *Config) Model(id string) (Model, error) {
	if id == "" {
		id = c.Rewrite.DefaultModel
	}
	for _, m := range c.Rewrite.Models {
		if m.ID == id {
			return m, nil
		}
	}
	return Model{}, fmt.Errorf("%w: %q", ErrModelNotFound, id)
}

// SyntaxFor returns the syntax name mapped to path's extension.
func (c *Config) SyntaxFor(path string) (string, bool) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", false
	}
	name, ok := c.SyntaxMap[ext]
	return name, ok
}
