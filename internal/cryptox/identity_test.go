package cryptox

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIdentity(t *testing.T) {
	id, err := NewIdentity()
	require.NoError(t, err)

	pub, err := hex.DecodeString(id.PublicKey)
	require.NoError(t, err)
	assert.Len(t, pub, 32)

	priv, err := hex.DecodeString(id.PrivateKey)
	require.NoError(t, err)
	assert.Len(t, priv, 32)

	assert.NotEqual(t, id.PublicKey, id.PrivateKey)
}

func TestNewIdentity_Unique(t *testing.T) {
	a, err := NewIdentity()
	require.NoError(t, err)
	b, err := NewIdentity()
	require.NoError(t, err)

	assert.NotEqual(t, a.PublicKey, b.PublicKey)
}
