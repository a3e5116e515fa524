package config

import (
	"github.com/joho/godotenv"
)

// Environment variable names recognized by FromEnv.
const (
	EnvAppID        = "SOCIALGRID_APP_ID"
	EnvGraphURL     = "SOCIALGRID_GRAPH_URL"
	EnvGraphURLBase = "SOCIALGRID_GRAPH_URL_BASE"
	EnvRESTURLBase  = "SOCIALGRID_REST_URL_BASE"
	EnvUserAgent    = "SOCIALGRID_USER_AGENT"
)

// FromEnv builds a Config from environment variables, starting from
// protocol defaults. A .env file in the working directory is loaded
// first when present; its absence is not an error since every variable
// is optional.
func FromEnv() (*Config, error) {
	_ = godotenv.Load()

	cfg := New()
	cfg.DefaultApplicationID = envOr(EnvAppID, cfg.DefaultApplicationID)
	cfg.GraphURL = envOr(EnvGraphURL, cfg.GraphURL)
	cfg.GraphURLBase = envOr(EnvGraphURLBase, cfg.GraphURLBase)
	cfg.RESTURLBase = envOr(EnvRESTURLBase, cfg.RESTURLBase)
	cfg.UserAgent = envOr(EnvUserAgent, cfg.UserAgent)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
