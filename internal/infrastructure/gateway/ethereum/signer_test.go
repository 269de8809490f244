package ethereum

import (
	"context"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKeyHex = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

func TestNewLocalSignerRejectsBadKey(t *testing.T) {
	_, err := NewLocalSigner("not-a-key")
	assert.Error(t, err)
}

func TestLocalSignerAddressIsNormalized(t *testing.T) {
	signer, err := NewLocalSigner(testKeyHex)
	require.NoError(t, err)

	key, err := crypto.HexToECDSA(testKeyHex)
	require.NoError(t, err)
	expected := strings.ToLower(crypto.PubkeyToAddress(key.PublicKey).Hex())

	assert.Equal(t, expected, signer.Address().String())
	assert.False(t, signer.Address().IsZero())
}

func TestSignMessageRecoversSigner(t *testing.T) {
	signer, err := NewLocalSigner(testKeyHex)
	require.NoError(t, err)

	message := "Please sign this message"
	sig, err := signer.SignMessage(context.Background(), message)
	require.NoError(t, err)
	require.Len(t, sig, 65)
	assert.Contains(t, []byte{27, 28}, sig[64])

	// recover the address from the wallet-convention signature
	recoverable := make([]byte, 65)
	copy(recoverable, sig)
	recoverable[64] -= 27
	pub, err := crypto.SigToPub(accounts.TextHash([]byte(message)), recoverable)
	require.NoError(t, err)
	assert.Equal(t, signer.Address().String(), strings.ToLower(crypto.PubkeyToAddress(*pub).Hex()))

	// sanity: signatures are hex-encodable for the wire
	assert.True(t, strings.HasPrefix(hexutil.Encode(sig), "0x"))
}
