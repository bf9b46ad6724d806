package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/collegecupid/cupid-cli/internal/cryptox"
)

const identityFileName = "identity.json"

type identityFile struct {
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey"`
}

// loadOrCreateIdentity returns the public key of this machine's chat
// identity, generating and persisting a fresh keypair on first use. The
// private half never leaves dataDir.
func loadOrCreateIdentity(dataDir string) (string, error) {
	path := filepath.Join(dataDir, identityFileName)

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var f identityFile
		if err := json.Unmarshal(data, &f); err != nil {
			return "", fmt.Errorf("parse %s: %w", path, err)
		}
		if f.PublicKey == "" {
			return "", fmt.Errorf("identity file %s has no public key", path)
		}
		return f.PublicKey, nil

	case errors.Is(err, fs.ErrNotExist):
		id, err := cryptox.NewIdentity()
		if err != nil {
			return "", err
		}
		data, err := json.MarshalIndent(identityFile{
			PublicKey:  id.PublicKey,
			PrivateKey: id.PrivateKey,
		}, "", "  ")
		if err != nil {
			return "", err
		}
		if err := os.WriteFile(path, data, 0o600); err != nil {
			return "", fmt.Errorf("write %s: %w", path, err)
		}
		return id.PublicKey, nil

	default:
		return "", err
	}
}
