package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Catalog CatalogConfig `yaml:"catalog"`
	Search  SearchConfig  `yaml:"search"`
}

type HTTPConfig struct {
	Address string `yaml:"address"`
}

// CatalogConfig points at the static data tables. Empty paths mean the
// embedded tables are used.
type CatalogConfig struct {
	AirportsPath string `yaml:"airports_path"`
	FlightsPath  string `yaml:"flights_path"`
}

type SearchConfig struct {
	ResultsCacheTTLSeconds int `yaml:"results_cache_ttl_seconds"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.HTTP.Address == "" {
		cfg.HTTP.Address = ":8080"
	}
	if cfg.Search.ResultsCacheTTLSeconds == 0 {
		cfg.Search.ResultsCacheTTLSeconds = 300
	}

	return &cfg, nil
}
