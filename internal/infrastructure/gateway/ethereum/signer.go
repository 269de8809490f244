// Package ethereum implements the wallet and chain gateways on top of a
// local private key and a JSON-RPC endpoint.
package ethereum

import (
	"context"
	"crypto/ecdsa"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/mizusawah/hatlink/internal/domain/model"
)

// LocalSigner signs with an in-process private key.
type LocalSigner struct {
	key      *ecdsa.PrivateKey
	identity model.Identity
}

// NewLocalSigner creates a signer from a hex-encoded private key
func NewLocalSigner(hexKey string) (*LocalSigner, error) {
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	addr := crypto.PubkeyToAddress(key.PublicKey)
	identity, err := model.NewIdentity(addr.Hex())
	if err != nil {
		return nil, err
	}
	return &LocalSigner{key: key, identity: identity}, nil
}

// Address returns the identity derived from the key
func (s *LocalSigner) Address() model.Identity {
	return s.identity
}

// SignMessage signs the message with the personal-message prefix so the
// signature matches what browser wallets produce for the same text.
func (s *LocalSigner) SignMessage(_ context.Context, message string) ([]byte, error) {
	sig, err := crypto.Sign(accounts.TextHash([]byte(message)), s.key)
	if err != nil {
		return nil, fmt.Errorf("sign message: %w", err)
	}
	// recovery ID convention used by wallets
	sig[64] += 27
	return sig, nil
}
