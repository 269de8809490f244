package ethereum

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/mizusawah/hatlink/internal/app"
)

// changeHatDetailsABI is the single protocol function the wizard calls
const changeHatDetailsABI = `[{
	"name": "changeHatDetails",
	"type": "function",
	"stateMutability": "nonpayable",
	"inputs": [
		{"name": "_hatId", "type": "uint256"},
		{"name": "_newDetails", "type": "string"}
	],
	"outputs": []
}]`

// ChainClient submits hat mutations through a JSON-RPC endpoint and waits
// for inclusion.
type ChainClient struct {
	client   *ethclient.Client
	key      *ecdsa.PrivateKey
	chainID  *big.Int
	contract common.Address
	parsed   abi.ABI
}

// NewChainClient dials the RPC endpoint and prepares the protocol ABI
func NewChainClient(rpcURL string, hexKey string, chainID int64, contractAddr string) (*ChainClient, error) {
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	if !common.IsHexAddress(contractAddr) {
		return nil, fmt.Errorf("invalid contract address: %s", contractAddr)
	}
	parsed, err := abi.JSON(strings.NewReader(changeHatDetailsABI))
	if err != nil {
		return nil, fmt.Errorf("parse ABI: %w", err)
	}
	client, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, fmt.Errorf("dial rpc: %w", err)
	}
	return &ChainClient{
		client:   client,
		key:      key,
		chainID:  big.NewInt(chainID),
		contract: common.HexToAddress(contractAddr),
		parsed:   parsed,
	}, nil
}

// Close releases the underlying RPC connection
func (c *ChainClient) Close() {
	c.client.Close()
}

// ChangeHatDetails repoints the hat's metadata URI on chain and blocks
// until the transaction is mined.
func (c *ChainClient) ChangeHatDetails(ctx context.Context, hatID *big.Int, newDetails string) error {
	data, err := c.parsed.Pack("changeHatDetails", hatID, newDetails)
	if err != nil {
		return fmt.Errorf("encode call: %w", err)
	}

	from := crypto.PubkeyToAddress(c.key.PublicKey)
	nonce, err := c.client.PendingNonceAt(ctx, from)
	if err != nil {
		return fmt.Errorf("fetch nonce: %w", err)
	}
	gasPrice, err := c.client.SuggestGasPrice(ctx)
	if err != nil {
		return fmt.Errorf("suggest gas price: %w", err)
	}
	gasLimit, err := c.client.EstimateGas(ctx, ethereum.CallMsg{
		From: from,
		To:   &c.contract,
		Data: data,
	})
	if err != nil {
		return fmt.Errorf("estimate gas: %w", err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &c.contract,
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     data,
	})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(c.chainID), c.key)
	if err != nil {
		return fmt.Errorf("sign transaction: %w", err)
	}
	if err := c.client.SendTransaction(ctx, signed); err != nil {
		return fmt.Errorf("send transaction: %w", err)
	}

	app.GetLogger().Info("submitted changeHatDetails tx %s", signed.Hash().Hex())

	receipt, err := bind.WaitMined(ctx, c.client, signed)
	if err != nil {
		return fmt.Errorf("wait for transaction %s: %w", signed.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("transaction %s reverted", signed.Hash().Hex())
	}
	return nil
}
