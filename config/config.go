// Package config holds process-wide SDK configuration. The default
// instance follows an init-once/read-many contract: populate it during
// startup (SetDefaultApplicationID or FromEnv) and treat it as
// read-only afterwards; encode calls never mutate it.
package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/socialgrid/socialgrid-go/protocol"
)

// Config carries the settings an encoder needs beyond the request list
// itself. Zero values are filled with protocol defaults by New.
type Config struct {
	// DefaultApplicationID authenticates sessionless batches. A batch
	// with no open session and no default application id cannot be
	// encoded.
	DefaultApplicationID string `toml:"default_application_id"`

	// GraphURL is the fixed API root every multi-request call posts to.
	GraphURL string `toml:"graph_url"`

	// GraphURLBase prefixes graph paths for single-request URLs.
	GraphURLBase string `toml:"graph_url_base"`

	// RESTURLBase prefixes REST method names for single-request URLs.
	RESTURLBase string `toml:"rest_url_base"`

	// UserAgent is sent on every outbound request.
	UserAgent string `toml:"user_agent"`
}

// New returns a Config populated with protocol defaults and no default
// application id.
func New() *Config {
	return &Config{
		GraphURL:     protocol.GraphURL,
		GraphURLBase: protocol.GraphURLBase,
		RESTURLBase:  protocol.RESTURLBase,
		UserAgent:    protocol.UserAgent(),
	}
}

// Validate reports configurations that cannot produce well-formed URLs.
func (c *Config) Validate() error {
	if c.GraphURL == "" {
		return fmt.Errorf("config: graph_url is required")
	}
	if !strings.HasSuffix(c.GraphURLBase, "/") {
		return fmt.Errorf("config: graph_url_base must end with '/', got %q", c.GraphURLBase)
	}
	if !strings.HasSuffix(c.RESTURLBase, "/") {
		return fmt.Errorf("config: rest_url_base must end with '/', got %q", c.RESTURLBase)
	}
	return nil
}

var (
	defaultCfg  *Config
	defaultOnce sync.Once
	defaultMu   sync.RWMutex
)

// Default returns the process-wide configuration instance.
func Default() *Config {
	defaultOnce.Do(func() {
		defaultCfg = New()
	})
	return defaultCfg
}

// SetDefaultApplicationID sets the application id used for sessionless
// batches on the process-wide configuration. Call it once at startup.
func SetDefaultApplicationID(id string) {
	cfg := Default()
	defaultMu.Lock()
	cfg.DefaultApplicationID = id
	defaultMu.Unlock()
}

// DefaultApplicationID returns the process-wide default application id.
func DefaultApplicationID() string {
	cfg := Default()
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return cfg.DefaultApplicationID
}

// envOr returns the value of the environment variable key, or fallback
// when unset or empty.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
