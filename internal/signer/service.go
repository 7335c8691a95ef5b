package signer

import (
	"context"

	"github.com/juliaos/evm-signer/internal/util"
	"github.com/juliaos/evm-signer/internal/vault"
	"github.com/pkg/errors"
)

type service struct {
	vault vault.Service
}

// NewService creates a new SignerService
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(vaultService vault.Service) (Service, error) {
	if vaultService == nil {
		return nil, errors.New("vault service is required")
	}

	return &service{vault: vaultService}, nil
}

// SignEVMTransaction signs a legacy EVM transaction with the stored key
func (s *service) SignEVMTransaction(ctx context.Context, req *SignEVMRequest) (*SignEVMResponse, error) {
	log := util.LogFromContext(ctx)

	privateKey, err := s.vault.LoadSecret(ctx, req.Identifier, req.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load signing secret")
	}

	// Clear private key after use
	defer vault.Zeroize(privateKey)

	res, err := s.signLegacyTransaction(ctx, req, privateKey)
	if err != nil {
		log.Debug().Str("identifier", req.Identifier).Msg("Failed to sign transaction")
		return nil, err
	}

	return res, nil
}
