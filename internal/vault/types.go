package vault

import "github.com/pkg/errors"

const (
	// SaltSize is the Argon2 salt length in bytes
	SaltSize = 16
	// NonceSize is the AES-GCM nonce length in bytes (96 bits)
	NonceSize = 12
	// SecretSize is the raw private key length in bytes
	SecretSize = 32
	// TagSize is the GCM authentication tag length appended to the ciphertext
	TagSize = 16
)

// EncryptedKeyRecord is the decoded form of one persisted key record
type EncryptedKeyRecord struct {
	Salt       []byte
	Nonce      []byte
	Ciphertext []byte
}

// Sentinel errors used by the call boundary to map failures to status codes
var (
	// ErrNotFound indicates no record exists for the identifier
	ErrNotFound = errors.New("key record not found")

	// ErrExists indicates a record already exists for the identifier
	ErrExists = errors.New("key record already exists")

	// ErrInvalidIdentifier indicates the identifier is empty or would escape
	// the record directory
	ErrInvalidIdentifier = errors.New("invalid key identifier")

	// ErrCrypto indicates key derivation or authenticated decryption failed.
	// Wrong password and corrupted ciphertext are deliberately
	// indistinguishable.
	ErrCrypto = errors.New("cryptographic operation failed")

	// ErrFormat indicates a persisted record could not be parsed
	ErrFormat = errors.New("malformed key record")

	// ErrStoragePath indicates the record directory could not be resolved or
	// created
	ErrStoragePath = errors.New("key storage path unavailable")
)
