package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"finsight/pkg/core/llm"
)

// Server holds process-level settings resolved from FINSIGHT_* environment
// variables.
type Server struct {
	Addr       string        `envconfig:"ADDR" default:":8080"`
	SessionTTL time.Duration `envconfig:"SESSION_TTL" default:"2h"`
}

func LoadServer() (Server, error) {
	var c Server
	err := envconfig.Process("finsight", &c)
	return c, err
}

// Model selects the generative model used by both AI surfaces.
type Model struct {
	Provider    string  `yaml:"provider"`
	Name        string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
}

// LoadModel reads config/models.yaml. A missing or broken file falls back to
// the defaults rather than failing startup; the non-AI features must stay
// usable regardless of AI configuration.
func LoadModel(path string) Model {
	cfg := Model{Provider: "gemini", Name: llm.DefaultModel}

	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("model config not found, using defaults", slog.String("path", path))
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		slog.Warn("model config unreadable, using defaults",
			slog.String("path", path), slog.String("error", err.Error()))
		return Model{Provider: "gemini", Name: llm.DefaultModel}
	}

	if cfg.Provider == "" {
		cfg.Provider = "gemini"
	}
	if cfg.Name == "" {
		cfg.Name = llm.DefaultModel
	}
	return cfg
}
