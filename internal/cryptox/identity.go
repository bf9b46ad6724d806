// Package cryptox generates the client's chat identity keypair. The public
// half goes into the profile; the private half stays on this machine.
package cryptox

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/nacl/box"
)

// Identity is an X25519 keypair, hex encoded.
type Identity struct {
	PublicKey  string
	PrivateKey string
}

// NewIdentity generates a fresh keypair.
func NewIdentity() (Identity, error) {
	pub, priv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return Identity{}, fmt.Errorf("generate keypair: %w", err)
	}
	return Identity{
		PublicKey:  hex.EncodeToString(pub[:]),
		PrivateKey: hex.EncodeToString(priv[:]),
	}, nil
}
