package ethereum

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/gabapcia/transferwatch/internal/pkg/types"
	"github.com/gabapcia/transferwatch/internal/transferwatch"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

type (
	// blockResponse is the subset of eth_getBlockByNumber, requested without
	// full transactions, that the watcher needs.
	blockResponse struct {
		Number       types.Hex     `json:"number"`
		Hash         common.Hash   `json:"hash"`
		Transactions []common.Hash `json:"transactions"`
	}

	// transactionResponse is the subset of eth_getTransactionByHash that the
	// watcher needs. To is null for contract creations.
	transactionResponse struct {
		Hash  common.Hash     `json:"hash"`
		From  common.Address  `json:"from"`
		To    *common.Address `json:"to"`
		Value *hexutil.Big    `json:"value"`
	}
)

// toBlock converts the response into a transferwatch.Block.
func (b blockResponse) toBlock() transferwatch.Block {
	hashes := make([]string, len(b.Transactions))
	for i, h := range b.Transactions {
		hashes[i] = h.Hex()
	}

	return transferwatch.Block{
		Height:       b.Number,
		Hash:         b.Hash.Hex(),
		Transactions: hashes,
	}
}

// toTransaction converts the response into a transferwatch.Transaction.
// Addresses are rendered in their checksummed form.
func (t transactionResponse) toTransaction() transferwatch.Transaction {
	tx := transferwatch.Transaction{
		Hash:  t.Hash.Hex(),
		From:  t.From.Hex(),
		Value: new(big.Int),
	}

	if t.To != nil {
		to := t.To.Hex()
		tx.To = &to
	}

	if t.Value != nil {
		tx.Value = t.Value.ToInt()
	}

	return tx
}

// LatestBlockHeight implements transferwatch.Blockchain.
func (c *client) LatestBlockHeight(ctx context.Context) (types.Hex, error) {
	const method = "eth_blockNumber"

	data, err := c.conn.Fetch(ctx, method)
	if err != nil {
		return "", transportError(method, err)
	}

	var height types.Hex
	if err := json.Unmarshal(data, &height); err != nil {
		return "", transportError(method, err)
	}

	return height, nil
}

// FetchBlock implements transferwatch.Blockchain.
func (c *client) FetchBlock(ctx context.Context, height types.Hex) (transferwatch.Block, error) {
	const method = "eth_getBlockByNumber"

	data, err := c.conn.Fetch(ctx, method, height, false)
	if err != nil {
		return transferwatch.Block{}, transportError(method, err)
	}

	if isNull(data) {
		return transferwatch.Block{}, fmt.Errorf("%w: %s", transferwatch.ErrBlockNotFound, height)
	}

	var block blockResponse
	if err := json.Unmarshal(data, &block); err != nil {
		return transferwatch.Block{}, transportError(method, err)
	}

	return block.toBlock(), nil
}

// FetchTransaction implements transferwatch.Blockchain.
func (c *client) FetchTransaction(ctx context.Context, hash string) (transferwatch.Transaction, error) {
	const method = "eth_getTransactionByHash"

	data, err := c.conn.Fetch(ctx, method, hash)
	if err != nil {
		return transferwatch.Transaction{}, transportError(method, err)
	}

	if isNull(data) {
		return transferwatch.Transaction{}, fmt.Errorf("%w: %s", transferwatch.ErrTransactionNotFound, hash)
	}

	var tx transactionResponse
	if err := json.Unmarshal(data, &tx); err != nil {
		return transferwatch.Transaction{}, transportError(method, err)
	}

	return tx.toTransaction(), nil
}
