package vault

import (
	"context"
	"crypto/ecdsa"
	"crypto/rand"
	"io"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/juliaos/evm-signer/internal/util"
	"github.com/pkg/errors"
)

// Service provides encrypted storage of 32-byte signing secrets, one per
// identifier, protected by a password-derived key
type Service interface {
	// StoreNewKey generates a fresh secret, encrypts it under the password
	// and persists it. Fails with ErrExists if the identifier already has a
	// record.
	StoreNewKey(ctx context.Context, identifier string, password string) error

	// LoadSecret loads and decrypts the secret for the identifier.
	// WARNING: the caller must zero the returned bytes after use.
	LoadSecret(ctx context.Context, identifier string, password string) ([]byte, error)

	// Address derives the EVM address controlled by the stored secret
	Address(ctx context.Context, identifier string, password string) (string, error)
}

type service struct {
	storage *Storage
}

// NewService creates a new vault Service
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(storage *Storage) (Service, error) {
	if storage == nil {
		return nil, errors.New("storage is required")
	}

	return &service{storage: storage}, nil
}

// StoreNewKey generates, encrypts and persists a fresh secret
func (s *service) StoreNewKey(ctx context.Context, identifier string, password string) error {
	log := util.LogFromContext(ctx)

	key, err := crypto.GenerateKey()
	if err != nil {
		return errors.Wrap(ErrCrypto, err.Error())
	}

	secret := crypto.FromECDSA(key)
	defer Zeroize(secret)

	record, err := encryptRecord(secret, password)
	if err != nil {
		return err
	}

	data, err := serializeRecord(record)
	if err != nil {
		return err
	}

	if err := s.storage.WriteExclusive(identifier, data); err != nil {
		return err
	}

	log.Info().Str("identifier", identifier).Msg("Stored new encrypted key")

	return nil
}

// LoadSecret loads, authenticates and decrypts the secret for the identifier
func (s *service) LoadSecret(ctx context.Context, identifier string, password string) ([]byte, error) {
	log := util.LogFromContext(ctx)

	data, err := s.storage.Read(identifier)
	if err != nil {
		return nil, err
	}

	record, err := deserializeRecord(data)
	if err != nil {
		return nil, err
	}

	key := deriveKey(password, record.Salt)
	defer Zeroize(key)

	secret, err := decryptSecret(key, record.Nonce, record.Ciphertext)
	if err != nil {
		log.Debug().Str("identifier", identifier).Msg("Failed to decrypt key record")
		return nil, err
	}

	if len(secret) != SecretSize {
		Zeroize(secret)
		return nil, errors.Wrapf(ErrCrypto, "decrypted secret is %d bytes, expected %d", len(secret), SecretSize)
	}

	return secret, nil
}

// Address derives the EVM address of the stored secret
func (s *service) Address(ctx context.Context, identifier string, password string) (string, error) {
	secret, err := s.LoadSecret(ctx, identifier, password)
	if err != nil {
		return "", err
	}
	defer Zeroize(secret)

	ecdsaPrivateKey, err := crypto.ToECDSA(secret)
	if err != nil {
		return "", errors.Wrap(ErrCrypto, err.Error())
	}

	publicKey, ok := ecdsaPrivateKey.Public().(*ecdsa.PublicKey)
	if !ok {
		return "", errors.New("failed to cast public key to ECDSA")
	}

	return crypto.PubkeyToAddress(*publicKey).Hex(), nil
}

// encryptRecord encrypts a secret under a fresh salt and nonce drawn from
// the system's cryptographically secure random source
func encryptRecord(secret []byte, password string) (*EncryptedKeyRecord, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, errors.Wrap(ErrCrypto, err.Error())
	}

	key := deriveKey(password, salt)
	defer Zeroize(key)

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, errors.Wrap(ErrCrypto, err.Error())
	}

	ciphertext, err := encryptSecret(key, nonce, secret)
	if err != nil {
		return nil, err
	}

	return &EncryptedKeyRecord{
		Salt:       salt,
		Nonce:      nonce,
		Ciphertext: ciphertext,
	}, nil
}

// Zeroize clears sensitive bytes in place
func Zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
