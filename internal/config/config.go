package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Server holds process-level settings, loaded from the environment.
type Server struct {
	Addr         string `env:"CODEEMPIRE_ADDR" envDefault:":8080"`
	DataDir      string `env:"CODEEMPIRE_DATA_DIR" envDefault:"data"`
	CatalogPath  string `env:"CODEEMPIRE_CATALOG"`
	PersistSaves bool   `env:"CODEEMPIRE_PERSIST" envDefault:"true"`
	CookieSecure bool   `env:"CODEEMPIRE_COOKIE_SECURE"`
	DevStatic    bool   `env:"CODEEMPIRE_DEV_STATIC"`
}

// ServerFromEnv parses server settings from environment variables.
func ServerFromEnv() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// CatalogFile is the YAML shape for overriding the built-in content set.
// Only purchasable entries and themes can be overridden; achievements and
// special events are code, not data.
type CatalogFile struct {
	Version  string         `yaml:"version"`
	Upgrades []CatalogEntry `yaml:"upgrades"`
	Assets   []CatalogEntry `yaml:"assets"`
	Themes   []CatalogTheme `yaml:"themes"`
}

type CatalogEntry struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	BaseCost    float64 `yaml:"base_cost"`
	Effect      float64 `yaml:"effect"`
	MaxLevel    int     `yaml:"max_level"`
	Tier        int     `yaml:"tier"`
	Icon        string  `yaml:"icon"`
}

type CatalogTheme struct {
	Threshold   float64 `yaml:"threshold"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	CSS         string  `yaml:"css"`
}

// LoadCatalogFile reads a catalog override file.
func LoadCatalogFile(path string) (*CatalogFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cf CatalogFile
	if err := yaml.Unmarshal(b, &cf); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	return &cf, nil
}
