package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Env is the process environment RoriChat reads at startup.
type Env struct {
	Home            string `env:"RORICODE_HOME"`
	LogLevel        string `env:"RORICODE_LOG_LEVEL" envDefault:"info"`
	AnthropicEnable string `env:"RORICODE_ANTHROPIC_ENABLE" envDefault:"N"`
	Locale          string `env:"RORICODE_LOCALE"`
	Lang            string `env:"LANG"`
}

// LoadEnv reads an optional .env file from the working directory and then
// parses the environment. Variables already set win over the file.
func LoadEnv() (Env, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Env{}, fmt.Errorf("load .env: %w", err)
	}

	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env config: %w", err)
	}

	e.Home = strings.TrimSpace(e.Home)
	if e.Home == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Env{}, fmt.Errorf("resolve home directory: %w", err)
		}
		e.Home = home
	}

	return e, nil
}

// Dir is the directory holding every RoriChat file.
func (e Env) Dir() string {
	return filepath.Join(e.Home, ".roricode")
}

func (e Env) ConfigPath() string {
	return filepath.Join(e.Dir(), "config.json")
}

func (e Env) CatalogPath() string {
	return filepath.Join(e.Dir(), "models.yaml")
}

func (e Env) LogPath() string {
	return filepath.Join(e.Dir(), "roricode.log")
}

// AnthropicEnabled reports whether Anthropic models are offered in the model picker.
func (e Env) AnthropicEnabled() bool {
	return strings.EqualFold(strings.TrimSpace(e.AnthropicEnable), "Y")
}

// PreferredLocale prefers RORICODE_LOCALE over LANG.
func (e Env) PreferredLocale() string {
	if e.Locale != "" {
		return e.Locale
	}
	return e.Lang
}
