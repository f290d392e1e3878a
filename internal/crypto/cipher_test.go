package crypto

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/fiscalhub/fiscalhub/internal/errors"
)

const testKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func newTestCipher(t *testing.T) *Cipher {
	t.Helper()
	c, err := NewCipherFromHex(testKeyHex)
	require.NoError(t, err)
	return c
}

func TestNewCipherFromHex(t *testing.T) {
	t.Run("valid 64-char hex key", func(t *testing.T) {
		c, err := NewCipherFromHex(testKeyHex)
		assert.NoError(t, err)
		assert.NotNil(t, c)
	})

	t.Run("key too short", func(t *testing.T) {
		_, err := NewCipherFromHex("abcd")
		assert.ErrorIs(t, err, ErrInvalidKey)
	})

	t.Run("key too long", func(t *testing.T) {
		_, err := NewCipherFromHex(testKeyHex + "00")
		assert.ErrorIs(t, err, ErrInvalidKey)
	})

	t.Run("non-hex characters", func(t *testing.T) {
		_, err := NewCipherFromHex(strings.Repeat("zz", 32))
		assert.ErrorIs(t, err, ErrInvalidKey)
	})

	t.Run("empty key", func(t *testing.T) {
		_, err := NewCipherFromHex("")
		assert.ErrorIs(t, err, ErrInvalidKey)
	})
}

func TestCipher_RoundTrip(t *testing.T) {
	c := newTestCipher(t)

	plaintexts := []string{
		"certificate-passphrase",
		"Senha123!@#",
		"açúcar e café",
		strings.Repeat("x", 4096),
		"\x00\x01\x02binary\xff",
	}

	for _, plaintext := range plaintexts {
		envelope, err := c.EncryptString(plaintext)
		require.NoError(t, err)

		decrypted, err := c.DecryptString(envelope)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	}
}

func TestCipher_EnvelopeFormat(t *testing.T) {
	c := newTestCipher(t)

	envelope, err := c.EncryptString("secret")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(envelope, "enc:v1:"))

	parts := strings.Split(envelope, ":")
	require.Len(t, parts, 5)

	nonce, err := base64.StdEncoding.DecodeString(parts[2])
	require.NoError(t, err)
	assert.Len(t, nonce, 12)

	tag, err := base64.StdEncoding.DecodeString(parts[3])
	require.NoError(t, err)
	assert.Len(t, tag, 16)

	_, err = base64.StdEncoding.DecodeString(parts[4])
	assert.NoError(t, err)
}

func TestCipher_NonceUniqueness(t *testing.T) {
	c := newTestCipher(t)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		envelope, err := c.EncryptString("same plaintext")
		require.NoError(t, err)
		assert.False(t, seen[envelope], "two encryptions produced an identical envelope")
		seen[envelope] = true
	}
}

func TestCipher_DecryptWithWrongKey(t *testing.T) {
	c := newTestCipher(t)

	envelope, err := c.EncryptString("secret")
	require.NoError(t, err)

	other, err := NewCipherFromHex(strings.Repeat("ab", 32))
	require.NoError(t, err)

	_, err = other.DecryptString(envelope)
	assert.ErrorIs(t, err, ErrDecryptFailed)
}

func TestCipher_DecryptTruncatedEnvelope(t *testing.T) {
	c := newTestCipher(t)

	envelope, err := c.EncryptString("secret value long enough to truncate")
	require.NoError(t, err)

	// Truncating any field by one character must fail closed.
	parts := strings.Split(envelope, ":")
	require.Len(t, parts, 5)

	for i := 2; i < 5; i++ {
		mutated := make([]string, len(parts))
		copy(mutated, parts)
		mutated[i] = mutated[i][:len(mutated[i])-1]

		_, err := c.DecryptString(strings.Join(mutated, ":"))
		assert.Error(t, err, "field %d truncated", i)
		assert.True(t, apperrors.Is(err, apperrors.ErrInternal))
	}
}

func TestCipher_DecryptMalformedEnvelope(t *testing.T) {
	c := newTestCipher(t)

	malformed := []string{
		"enc:v1:",
		"enc:v1:only-one-field",
		"enc:v1:a:b",
		"enc:v1:::",
		"enc:v1:!!!:!!!:!!!",
	}

	for _, envelope := range malformed {
		_, err := c.DecryptString(envelope)
		assert.ErrorIs(t, err, ErrDecryptFailed, "envelope %q", envelope)
	}
}

func TestCipher_DecryptTamperedCiphertext(t *testing.T) {
	c := newTestCipher(t)

	envelope, err := c.EncryptString("secret")
	require.NoError(t, err)

	parts := strings.Split(envelope, ":")
	data, err := base64.StdEncoding.DecodeString(parts[4])
	require.NoError(t, err)
	data[0] ^= 0xff
	parts[4] = base64.StdEncoding.EncodeToString(data)

	_, err = c.DecryptString(strings.Join(parts, ":"))
	assert.ErrorIs(t, err, ErrDecryptFailed)
}

func TestCipher_LegacyPlaintextPassthrough(t *testing.T) {
	c := newTestCipher(t)

	// Values written before encryption was introduced come back unchanged.
	legacy := []string{
		"plain-old-password",
		"",
		"enc:v2:not-our-version",
		"encoded-but-not-prefixed",
	}

	for _, value := range legacy {
		got, err := c.DecryptString(value)
		assert.NoError(t, err)
		assert.Equal(t, value, got)
	}
}
