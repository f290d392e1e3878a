package crypto

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/secrets"
)

func TestLoadKey_FromHex(t *testing.T) {
	key, err := LoadKey(context.Background(), testKeyHex, "")
	require.NoError(t, err)

	expected, _ := hex.DecodeString(testKeyHex)
	assert.Equal(t, expected, key)
}

func TestLoadKey_FromHex_Invalid(t *testing.T) {
	tests := []string{
		"",
		"abcd",
		testKeyHex + "00",
	}

	for _, material := range tests {
		_, err := LoadKey(context.Background(), material, "")
		assert.ErrorIs(t, err, ErrInvalidKey)
	}
}

func TestLoadKey_FromKeeper(t *testing.T) {
	ctx := context.Background()

	// localsecrets keeper with a fixed keeper key; the cert key travels wrapped.
	keeperURI := "base64key://smGbjm71Nxd1Ig5FS0wj9SlbzAIrnolCz9bQQ6uAhl4="
	keeper, err := secrets.OpenKeeper(ctx, keeperURI)
	require.NoError(t, err)
	defer keeper.Close()

	certKey, _ := hex.DecodeString(testKeyHex)
	wrapped, err := keeper.Encrypt(ctx, certKey)
	require.NoError(t, err)

	key, err := LoadKey(ctx, base64.StdEncoding.EncodeToString(wrapped), keeperURI)
	require.NoError(t, err)
	assert.Equal(t, certKey, key)
}

func TestLoadKey_FromKeeper_BadWrappedBlob(t *testing.T) {
	keeperURI := "base64key://smGbjm71Nxd1Ig5FS0wj9SlbzAIrnolCz9bQQ6uAhl4="

	_, err := LoadKey(context.Background(), "not-base64!!!", keeperURI)
	assert.ErrorIs(t, err, ErrInvalidKey)
}
