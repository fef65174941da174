// Package transferwatch reports value transfers above a threshold. It scans
// the most recent finalized block once and then follows the stream of
// pending transactions until the stream ends or the caller cancels.
package transferwatch

import (
	"fmt"
	"math/big"

	"github.com/gabapcia/transferwatch/internal/pkg/types"

	"github.com/shopspring/decimal"
)

// Block is a finalized block reduced to what the scanner needs: its
// identity and the ordered hashes of the transactions it contains.
type Block struct {
	Height       types.Hex // block number
	Hash         string    // block hash
	Transactions []string  // transaction hashes, in block order
}

// Transaction is a resolved transaction.
type Transaction struct {
	Hash  string   // transaction hash
	From  string   // sender address
	To    *string  // recipient address, nil for contract creation
	Value *big.Int // transferred amount in wei
}

// Transfer is a transaction that met the threshold, ready to be emitted.
type Transfer struct {
	Hash  string          `json:"hash"`  // transaction hash
	From  string          `json:"from"`  // sender address
	To    string          `json:"to"`    // recipient address
	Value decimal.Decimal `json:"value"` // amount in ether, trailing zeros stripped
}

// String renders the transfer as a single report line.
func (t Transfer) String() string {
	return fmt.Sprintf("%s -> %s | %s", t.From, t.To, t.Value.String())
}
