package config

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// fileConfig mirrors Config; only keys present in the file override the
// defaults, so every field stays optional.
type fileConfig struct {
	DefaultApplicationID string `toml:"default_application_id"`
	GraphURL             string `toml:"graph_url"`
	GraphURLBase         string `toml:"graph_url_base"`
	RESTURLBase          string `toml:"rest_url_base"`
	UserAgent            string `toml:"user_agent"`
}

// LoadFile reads a TOML configuration file and applies it over protocol
// defaults.
func LoadFile(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var fc fileConfig
	if err := toml.Unmarshal(b, &fc); err != nil {
		return nil, err
	}

	cfg := New()
	if fc.DefaultApplicationID != "" {
		cfg.DefaultApplicationID = fc.DefaultApplicationID
	}
	if fc.GraphURL != "" {
		cfg.GraphURL = fc.GraphURL
	}
	if fc.GraphURLBase != "" {
		cfg.GraphURLBase = fc.GraphURLBase
	}
	if fc.RESTURLBase != "" {
		cfg.RESTURLBase = fc.RESTURLBase
	}
	if fc.UserAgent != "" {
		cfg.UserAgent = fc.UserAgent
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
