package vault

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/pkg/errors"
)

// encryptSecret encrypts plaintext with AES-256-GCM under the derived key
// and a fresh 96-bit nonce. No associated data.
func encryptSecret(key []byte, nonce []byte, plaintext []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	return aead.Seal(nil, nonce, plaintext, nil), nil
}

// decryptSecret decrypts and authenticates ciphertext. Returns ErrCrypto
// when the tag does not verify; no plaintext bytes are ever returned on
// authentication failure.
func decryptSecret(key []byte, nonce []byte, ciphertext []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, errors.Wrap(ErrCrypto, err.Error())
	}

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(ErrCrypto, err.Error())
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Wrap(ErrCrypto, err.Error())
	}

	return aead, nil
}
