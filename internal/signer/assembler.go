package signer

import (
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

const (
	addressLength = 20
	// maxIntegerBits bounds value and gasPrice to the 256-bit word size of
	// the EVM
	maxIntegerBits = 256
)

// buildLegacyTx validates and converts the raw request fields into an
// unsigned legacy transaction. Any decode failure returns an InputError
// naming the failed field.
func buildLegacyTx(req *SignEVMRequest) (*types.Transaction, error) {
	toBytes, err := hex.DecodeString(strip0x(req.To))
	if err != nil {
		return nil, &InputError{Field: "to", Reason: "not valid hex"}
	}
	if len(toBytes) != addressLength {
		return nil, &InputError{Field: "to", Reason: "address must decode to exactly 20 bytes"}
	}
	to := common.BytesToAddress(toBytes)

	value, ok := new(big.Int).SetString(strip0x(req.ValueHex), 16)
	if !ok || value.Sign() < 0 {
		return nil, &InputError{Field: "value", Reason: "not a valid unsigned hex integer"}
	}
	if value.BitLen() > maxIntegerBits {
		return nil, &InputError{Field: "value", Reason: "exceeds 256 bits"}
	}

	var data []byte
	if trimmed := strip0x(req.DataHex); trimmed != "" {
		data, err = hex.DecodeString(trimmed)
		if err != nil {
			return nil, &InputError{Field: "data", Reason: "not valid hex"}
		}
	}

	gasPrice, ok := new(big.Int).SetString(strip0x(req.GasPriceHex), 16)
	if !ok || gasPrice.Sign() < 0 {
		return nil, &InputError{Field: "gasPrice", Reason: "not a valid unsigned hex integer"}
	}
	if gasPrice.BitLen() > maxIntegerBits {
		return nil, &InputError{Field: "gasPrice", Reason: "exceeds 256 bits"}
	}

	return types.NewTx(&types.LegacyTx{
		Nonce:    req.Nonce,
		GasPrice: gasPrice,
		Gas:      req.GasLimit,
		To:       &to,
		Value:    value,
		Data:     data,
	}), nil
}

func strip0x(s string) string {
	return strings.TrimPrefix(s, "0x")
}
