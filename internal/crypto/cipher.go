package crypto

import (
	"encoding/base64"
	"encoding/hex"
	"strings"

	apperrors "github.com/fiscalhub/fiscalhub/internal/errors"
)

// envelopePrefix is the literal version tag that opens every encrypted value.
const envelopePrefix = "enc:v1:"

// Errors returned by the cipher. Both wrap ErrInternal: a bad key is an
// operator misconfiguration and a failed decrypt means corrupt or tampered
// stored data; neither is the caller's fault.
var (
	// ErrInvalidKey indicates the configured encryption key is not
	// a 64-character hexadecimal string.
	ErrInvalidKey = apperrors.Wrap(apperrors.ErrInternal, "encryption key must be 64 hexadecimal characters")

	// ErrDecryptFailed indicates the stored envelope is malformed, truncated,
	// or failed authentication.
	ErrDecryptFailed = apperrors.Wrap(apperrors.ErrInternal, "failed to decrypt secret")
)

// Cipher encrypts and decrypts string secrets as versioned envelopes:
//
//	enc:v1:<base64 nonce>:<base64 tag>:<base64 ciphertext>
//
// Decrypt passes through values without the version prefix unchanged. This is
// a migration shim for plaintext secrets written before encryption was
// introduced, not a fallback for new data.
type Cipher struct {
	aead *aesGCM
}

// NewCipher creates a Cipher from a raw 32-byte key.
func NewCipher(key []byte) (*Cipher, error) {
	aead, err := newAESGCM(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{aead: aead}, nil
}

// NewCipherFromHex creates a Cipher from a 64-character hexadecimal key,
// the format the key is supplied in via configuration.
func NewCipherFromHex(keyHex string) (*Cipher, error) {
	if len(keyHex) != 64 {
		return nil, ErrInvalidKey
	}
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, ErrInvalidKey
	}
	return NewCipher(key)
}

// EncryptString encrypts the value into an envelope string. A fresh nonce is
// generated per call, so two encryptions of the same value never collide.
func (c *Cipher) EncryptString(value string) (string, error) {
	ciphertext, tag, nonce, err := c.aead.seal([]byte(value))
	if err != nil {
		return "", err
	}

	return envelopePrefix +
		base64.StdEncoding.EncodeToString(nonce) + ":" +
		base64.StdEncoding.EncodeToString(tag) + ":" +
		base64.StdEncoding.EncodeToString(ciphertext), nil
}

// DecryptString decrypts an envelope string back into the original value.
// Values lacking the version prefix are returned as-is (legacy plaintext).
func (c *Cipher) DecryptString(value string) (string, error) {
	if !strings.HasPrefix(value, envelopePrefix) {
		return value, nil
	}

	parts := strings.Split(value, ":")
	// "enc", "v1", nonce, tag, data
	if len(parts) != 5 || parts[2] == "" || parts[3] == "" || parts[4] == "" {
		return "", ErrDecryptFailed
	}

	nonce, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil {
		return "", ErrDecryptFailed
	}
	tag, err := base64.StdEncoding.DecodeString(parts[3])
	if err != nil {
		return "", ErrDecryptFailed
	}
	ciphertext, err := base64.StdEncoding.DecodeString(parts[4])
	if err != nil {
		return "", ErrDecryptFailed
	}

	plaintext, err := c.aead.open(ciphertext, tag, nonce)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}
