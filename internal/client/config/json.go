package config

import (
	"encoding/json"
	"os"
	"time"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Timeout values
// are plain integer seconds; after parsing they are copied into the runtime
// Config (which uses time.Duration).
type JsonConfig struct {
	BackendURL         string `json:"backend_url"`
	ClientID           string `json:"client_id"`
	Authority          string `json:"authority"`
	RedirectURI        string `json:"redirect_uri"`
	DataDir            string `json:"data_dir"`
	RequestTimeoutSecs int    `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c/-config flags; when neither is given,
// nothing is loaded. Read or unmarshal errors panic (caller should recover
// if desired). Empty fields in the file leave the current value untouched.
//
// Intended usage is: defaults -> env -> parseJson -> parseFlags, where later
// stages override earlier ones.
func parseJson(cfg *Config) {
	path := jsonConfigPath()
	if path == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BackendURL != "" {
		cfg.BackendURL = jc.BackendURL
	}
	if jc.ClientID != "" {
		cfg.ClientID = jc.ClientID
	}
	if jc.Authority != "" {
		cfg.Authority = jc.Authority
	}
	if jc.RedirectURI != "" {
		cfg.RedirectURI = jc.RedirectURI
	}
	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.RequestTimeoutSecs > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSecs) * time.Second
	}
}
