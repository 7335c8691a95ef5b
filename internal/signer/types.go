package signer

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

// Service provides transaction signing backed by vault-stored keys
type Service interface {
	// SignEVMTransaction signs a legacy EVM transaction with the key stored
	// under req.Identifier
	SignEVMTransaction(ctx context.Context, req *SignEVMRequest) (*SignEVMResponse, error)
}

// SignEVMRequest represents a request to sign a legacy EVM transaction.
// Hex fields accept an optional "0x" prefix.
type SignEVMRequest struct {
	Identifier  string // Key identifier addressing the stored secret
	Password    string // Master password unlocking the stored secret
	To          string // Recipient address (hex, 20 bytes)
	ValueHex    string // Amount in wei (hex integer)
	DataHex     string // Transaction payload (hex bytes, may be empty)
	Nonce       uint64 // Transaction nonce
	GasPriceHex string // Gas price in wei (hex integer)
	GasLimit    uint64 // Gas limit
	ChainID     uint64 // Chain ID bound into the signature (EIP-155)
}

// SignEVMResponse represents a signed legacy EVM transaction
type SignEVMResponse struct {
	RawTransaction []byte // RLP-encoded signed transaction
	SignedTxHex    string // "0x"-prefixed hex of RawTransaction
	TxHash         string // Transaction hash (hex string with 0x prefix)
}

// InputError indicates a caller-supplied field failed to decode or
// range-check. No partial transaction is ever constructed from a failure.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

// Sentinel errors for status mapping at the call boundary
var (
	// ErrKey indicates the decrypted bytes do not form a valid secp256k1
	// scalar
	ErrKey = errors.New("invalid signing key")

	// ErrSign indicates signature computation or encoding failed
	ErrSign = errors.New("transaction signing failed")
)
