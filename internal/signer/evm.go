package signer

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// signLegacyTransaction signs a legacy transaction with EIP-155 replay
// protection, binding the chain id into the signature. Synchronous, no I/O.
func (s *service) signLegacyTransaction(_ context.Context, req *SignEVMRequest, privateKey []byte) (*SignEVMResponse, error) {
	ecdsaPrivateKey, err := crypto.ToECDSA(privateKey)
	if err != nil {
		return nil, errors.Wrap(ErrKey, err.Error())
	}

	//nolint:varnamelen // tx is a common abbreviation for transaction
	tx, err := buildLegacyTx(req)
	if err != nil {
		return nil, err
	}

	eip155Signer := types.NewEIP155Signer(new(big.Int).SetUint64(req.ChainID))
	signedTx, err := types.SignTx(tx, eip155Signer, ecdsaPrivateKey)
	if err != nil {
		return nil, errors.Wrap(ErrSign, err.Error())
	}

	// Encode transaction to RLP
	txBytes, err := signedTx.MarshalBinary()
	if err != nil {
		return nil, errors.Wrap(ErrSign, err.Error())
	}

	return &SignEVMResponse{
		RawTransaction: txBytes,
		SignedTxHex:    hexutil.Encode(txBytes),
		TxHash:         signedTx.Hash().Hex(),
	}, nil
}
