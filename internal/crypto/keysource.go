package crypto

import (
	"context"
	"encoding/base64"
	"encoding/hex"

	"gocloud.dev/secrets"

	apperrors "github.com/fiscalhub/fiscalhub/internal/errors"

	// Register KMS provider drivers for keeper URIs.
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// LoadKey resolves the certificate encryption key from configuration.
//
// When kmsKeyURI is empty, keyMaterial is the key itself as 64 hexadecimal
// characters. When kmsKeyURI is set, keyMaterial is a base64-encoded wrapped
// key blob that is unwrapped through the gocloud.dev keeper at that URI
// (e.g. "hashivault://cert-key", "base64key://..."). Either way the result
// must be exactly 32 bytes.
func LoadKey(ctx context.Context, keyMaterial, kmsKeyURI string) ([]byte, error) {
	if kmsKeyURI == "" {
		if len(keyMaterial) != 64 {
			return nil, ErrInvalidKey
		}
		key, err := hex.DecodeString(keyMaterial)
		if err != nil {
			return nil, ErrInvalidKey
		}
		return key, nil
	}

	keeper, err := secrets.OpenKeeper(ctx, kmsKeyURI)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to open KMS keeper")
	}
	defer keeper.Close()

	wrapped, err := base64.StdEncoding.DecodeString(keyMaterial)
	if err != nil {
		return nil, ErrInvalidKey
	}

	key, err := keeper.Decrypt(ctx, wrapped)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to unwrap encryption key")
	}
	if len(key) != keySize {
		return nil, ErrInvalidKey
	}
	return key, nil
}
