package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first if present; real environment
// variables win over .env entries (godotenv.Load never overrides).
//
// Recognized variables:
//
//	CUPID_BACKEND_URL      backend base URL
//	CUPID_CLIENT_ID        Microsoft OAuth client id
//	CUPID_AUTHORITY        Microsoft authority URL
//	CUPID_REDIRECT_URI     OAuth redirect URI / callback listen address
//	CUPID_DATA_DIR         session database and key directory
//	CUPID_REQUEST_TIMEOUT  backend request timeout in seconds
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("CUPID_BACKEND_URL"); v != "" {
		cfg.BackendURL = v
	}
	if v := os.Getenv("CUPID_CLIENT_ID"); v != "" {
		cfg.ClientID = v
	}
	if v := os.Getenv("CUPID_AUTHORITY"); v != "" {
		cfg.Authority = v
	}
	if v := os.Getenv("CUPID_REDIRECT_URI"); v != "" {
		cfg.RedirectURI = v
	}
	if v := os.Getenv("CUPID_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("CUPID_REQUEST_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
}
