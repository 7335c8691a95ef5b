package bridge

import (
	"context"
	"unicode/utf8"

	"github.com/juliaos/evm-signer/internal/config"
	"github.com/juliaos/evm-signer/internal/signer"
	"github.com/juliaos/evm-signer/internal/vault"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Bridge orchestrates the vault and signer behind a status-code call
// surface. Each call is synchronous and self-contained: it either fully
// succeeds or returns a negative status with the caller's buffer untouched.
type Bridge struct {
	config config.Server
	vault  vault.Service
	signer signer.Service
}

// New wires a Bridge from the given configuration
func New(cfg config.Server) (*Bridge, error) {
	baseDir := vault.DefaultBaseDir
	if cfg.Keystore.Dir != "" {
		baseDir = vault.FixedBaseDir(cfg.Keystore.Dir)
	}

	vaultService, err := vault.NewService(vault.NewStorage(baseDir))
	if err != nil {
		return nil, errors.Wrap(err, "failed to init vault service")
	}

	signerService, err := signer.NewService(vaultService)
	if err != nil {
		return nil, errors.Wrap(err, "failed to init signer service")
	}

	return NewWithServices(cfg, vaultService, signerService), nil
}

// NewWithServices wires a Bridge from preconstructed services
func NewWithServices(cfg config.Server, vaultService vault.Service, signerService signer.Service) *Bridge {
	return &Bridge{
		config: cfg,
		vault:  vaultService,
		signer: signerService,
	}
}

// HealthCheck is a constant liveness probe with no state access
func (b *Bridge) HealthCheck() int {
	log.Debug().Msg("Signer bridge is alive and reachable")
	return StatusOK
}

// StoreNewKey generates a fresh secret, encrypts it under the password and
// persists it under the identifier. Never overwrites an existing record.
func (b *Bridge) StoreNewKey(identifier string, password string) (status int) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("Panic contained in StoreNewKey")
			status = StatusInternalFault
		}
	}()

	if !utf8.ValidString(identifier) {
		log.Error().Msg("Key identifier is not valid UTF-8")
		return StatusStoreBadIdentifier
	}
	if !utf8.ValidString(password) {
		log.Error().Msg("Master password is not valid UTF-8")
		return StatusStoreBadPassword
	}

	if err := b.vault.StoreNewKey(context.Background(), identifier, password); err != nil {
		log.Error().Err(err).Str("identifier", identifier).Msg("Failed to store new key")
		return storeStatusFromError(err)
	}

	return StatusOK
}

// SignTransaction loads and decrypts the secret for the identifier,
// assembles and signs a legacy transaction, and writes the "0x"-prefixed
// hex encoding plus a NUL terminator into out. Returns the number of hex
// bytes written on success.
func (b *Bridge) SignTransaction(
	identifier string,
	to string,
	valueHex string,
	dataHex string,
	nonce uint64,
	gasPriceHex string,
	gasLimit uint64,
	chainID uint64,
	out []byte,
) (status int) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("Panic contained in SignTransaction")
			status = StatusInternalFault
		}
	}()

	if !utf8.ValidString(identifier) || !utf8.ValidString(to) ||
		!utf8.ValidString(valueHex) || !utf8.ValidString(dataHex) ||
		!utf8.ValidString(gasPriceHex) {
		log.Error().Msg("Sign input is not valid UTF-8")
		return StatusBadInput
	}

	password := b.config.Keystore.Password
	if password == "" {
		log.Error().Msgf("Master password env var %q not set", config.KeystorePasswordEnvKey)
		return StatusKeyFailure
	}

	res, err := b.signer.SignEVMTransaction(context.Background(), &signer.SignEVMRequest{
		Identifier:  identifier,
		Password:    password,
		To:          to,
		ValueHex:    valueHex,
		DataHex:     dataHex,
		Nonce:       nonce,
		GasPriceHex: gasPriceHex,
		GasLimit:    gasLimit,
		ChainID:     chainID,
	})
	if err != nil {
		log.Error().Err(err).Str("identifier", identifier).Msg("Failed to sign transaction")
		return signStatusFromError(err)
	}

	written, err := newBoundedWriter(out).writeString(res.SignedTxHex)
	if err != nil {
		log.Error().Err(err).Msg("Output buffer too small for signed transaction")
		return StatusBufferTooSmall
	}

	return written
}

// storeStatusFromError maps vault errors to store status codes
func storeStatusFromError(err error) int {
	switch {
	case errors.Is(err, vault.ErrInvalidIdentifier):
		return StatusStoreBadIdentifier
	case errors.Is(err, vault.ErrCrypto):
		return StatusStoreEncryptFailure
	case errors.Is(err, vault.ErrFormat):
		return StatusStoreSerializeFailure
	case errors.Is(err, vault.ErrStoragePath):
		return StatusStorePathFailure
	case errors.Is(err, vault.ErrExists):
		return StatusStoreExists
	default:
		return StatusStoreWriteFailure
	}
}

// signStatusFromError maps pipeline errors to sign status codes
func signStatusFromError(err error) int {
	var inputErr *signer.InputError

	switch {
	case errors.As(err, &inputErr):
		return StatusBadInput
	case errors.Is(err, vault.ErrInvalidIdentifier):
		return StatusBadInput
	case errors.Is(err, signer.ErrSign):
		return StatusSignFailure
	default:
		// Load, derive, decrypt and key validity failures collapse into one
		// outcome so the status leaks nothing about which step rejected.
		return StatusKeyFailure
	}
}
