// Package config holds runtime settings for the cupid CLI and the overlay
// logic that populates them from defaults, environment, JSON and flags.
package config

import "time"

// Config holds runtime settings for the cupid CLI.
//
// Fields:
//   - BackendURL: base URL of the College Cupid REST backend.
//   - ClientID: Microsoft OAuth application (client) id.
//   - Authority: Microsoft identity authority URL.
//   - RedirectURI: where the identity provider redirects after login; the
//     client listens on this address for the callback.
//   - DataDir: directory for the session database and identity key. Empty
//     means "resolve under the user config dir at startup".
//   - RequestTimeout: per-request timeout for backend calls.
type Config struct {
	BackendURL     string
	ClientID       string
	Authority      string
	RedirectURI    string
	DataDir        string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with the documented defaults.
func (c *Config) LoadDefaults() {
	c.BackendURL = "http://localhost:5000"
	c.ClientID = ""
	c.Authority = "https://login.microsoftonline.com/common"
	c.RedirectURI = "http://localhost:3000"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including .env), a JSON file (if -c/-config is given) and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
