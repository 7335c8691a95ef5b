package signer

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() *SignEVMRequest {
	return &SignEVMRequest{
		To:          "0x000102030405060708090a0b0c0d0e0f10111213",
		ValueHex:    "0xde0b6b3a7640000",
		DataHex:     "0xdeadbeef",
		Nonce:       7,
		GasPriceHex: "0x3b9aca00",
		GasLimit:    21000,
		ChainID:     1,
	}
}

func TestBuildLegacyTx(t *testing.T) {
	tx, err := buildLegacyTx(validRequest())
	require.NoError(t, err)

	assert.Equal(t, uint64(7), tx.Nonce())
	assert.Equal(t, uint64(21000), tx.Gas())
	assert.Equal(t, common.HexToAddress("0x000102030405060708090a0b0c0d0e0f10111213"), *tx.To())
	assert.Equal(t, big.NewInt(1000000000000000000), tx.Value())
	assert.Equal(t, big.NewInt(1000000000), tx.GasPrice())
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, tx.Data())
}

func TestBuildLegacyTxPrefixOptional(t *testing.T) {
	req := validRequest()
	req.To = "000102030405060708090a0b0c0d0e0f10111213"
	req.ValueHex = "de0b6b3a7640000"
	req.GasPriceHex = "3b9aca00"
	req.DataHex = "deadbeef"

	tx, err := buildLegacyTx(req)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1000000000000000000), tx.Value())
}

func TestBuildLegacyTxMaxValue(t *testing.T) {
	req := validRequest()
	req.ValueHex = "0x" + strings.Repeat("f", 64)

	tx, err := buildLegacyTx(req)
	require.NoError(t, err)
	assert.Equal(t, 256, tx.Value().BitLen())
}

func TestBuildLegacyTxEmptyData(t *testing.T) {
	req := validRequest()
	req.DataHex = ""

	tx, err := buildLegacyTx(req)
	require.NoError(t, err)
	assert.Empty(t, tx.Data())
}

func TestBuildLegacyTxInvalidFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SignEVMRequest)
		field  string
	}{
		{"non-hex value", func(r *SignEVMRequest) { r.ValueHex = "xyz" }, "value"},
		{"empty value", func(r *SignEVMRequest) { r.ValueHex = "" }, "value"},
		{"negative value", func(r *SignEVMRequest) { r.ValueHex = "-1" }, "value"},
		{"short address", func(r *SignEVMRequest) { r.To = "0x0011" }, "to"},
		{"long address", func(r *SignEVMRequest) { r.To = "0x000102030405060708090a0b0c0d0e0f1011121314" }, "to"},
		{"non-hex address", func(r *SignEVMRequest) { r.To = "0xzz0102030405060708090a0b0c0d0e0f10111213" }, "to"},
		{"non-hex data", func(r *SignEVMRequest) { r.DataHex = "0xgg" }, "data"},
		{"non-hex gas price", func(r *SignEVMRequest) { r.GasPriceHex = "not-hex" }, "gasPrice"},
		{"empty gas price", func(r *SignEVMRequest) { r.GasPriceHex = "" }, "gasPrice"},
		{"value wider than 256 bits", func(r *SignEVMRequest) { r.ValueHex = "0x1" + strings.Repeat("0", 64) }, "value"},
		{"gas price wider than 256 bits", func(r *SignEVMRequest) { r.GasPriceHex = "0x" + strings.Repeat("f", 65) }, "gasPrice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			tx, err := buildLegacyTx(req)
			require.Error(t, err)
			assert.Nil(t, tx)

			var inputErr *InputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, tt.field, inputErr.Field)
		})
	}
}
