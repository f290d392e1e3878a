// Package crypto implements authenticated encryption for at-rest secrets.
//
// Certificate passphrases are stored as versioned envelopes produced by
// AES-256-GCM with a random 12-byte nonce per encryption. The envelope keeps
// the authentication tag as a separate field so the stored format stays
// compatible with values written by earlier releases of the system.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"

	apperrors "github.com/fiscalhub/fiscalhub/internal/errors"
)

const (
	// keySize is the AES-256 key length in bytes.
	keySize = 32

	// nonceSize is the GCM nonce length in bytes.
	nonceSize = 12

	// tagSize is the GCM authentication tag length in bytes.
	tagSize = 16
)

// aesGCM wraps an AES-256-GCM AEAD instance. It is stateless and safe for
// concurrent use; each Seal call generates a fresh nonce.
type aesGCM struct {
	aead cipher.AEAD
}

// newAESGCM creates an AES-256-GCM cipher from a 32-byte key.
func newAESGCM(key []byte) (*aesGCM, error) {
	if len(key) != keySize {
		return nil, ErrInvalidKey
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create AES cipher")
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create GCM")
	}

	return &aesGCM{aead: aead}, nil
}

// seal encrypts plaintext and returns the ciphertext, the detached
// authentication tag, and the freshly generated nonce.
func (a *aesGCM) seal(plaintext []byte) (ciphertext, tag, nonce []byte, err error) {
	nonce = make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, nil, apperrors.Wrap(err, "failed to generate nonce")
	}

	sealed := a.aead.Seal(nil, nonce, plaintext, nil)

	// Go appends the tag to the ciphertext; the envelope stores it separately.
	split := len(sealed) - tagSize
	return sealed[:split], sealed[split:], nonce, nil
}

// open verifies the tag and decrypts the ciphertext. It fails closed: no
// plaintext is ever returned when authentication fails.
func (a *aesGCM) open(ciphertext, tag, nonce []byte) ([]byte, error) {
	if len(nonce) != nonceSize || len(tag) != tagSize {
		return nil, ErrDecryptFailed
	}

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := a.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, ErrDecryptFailed
	}
	return plaintext, nil
}
