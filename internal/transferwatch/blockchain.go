package transferwatch

import (
	"context"
	"errors"

	"github.com/gabapcia/transferwatch/internal/pkg/types"
)

var (
	// ErrTransport wraps every failure to reach or decode a response from the
	// chain data service.
	ErrTransport = errors.New("chain data service request failed")

	// ErrBlockNotFound is returned when a block height has no block.
	ErrBlockNotFound = errors.New("block not found")

	// ErrTransactionNotFound is returned when a transaction hash cannot be
	// resolved.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInconsistentBlock is returned by the snapshot scan when a finalized
	// block lists a transaction that the service cannot resolve.
	ErrInconsistentBlock = errors.New("block lists an unresolvable transaction")
)

// Subscription is a live, non-restartable stream of pending transaction
// hashes.
type Subscription interface {
	// Hashes delivers transaction hashes in arrival order. It is closed when
	// the upstream ends cleanly.
	Hashes() <-chan string

	// Err delivers at most one error, when the upstream fails.
	Err() <-chan error

	// Unsubscribe releases the subscription. It is safe to call more than
	// once and from any goroutine.
	Unsubscribe()
}

// Blockchain is the chain data service used by the watcher.
type Blockchain interface {
	// LatestBlockHeight returns the height of the most recent block.
	LatestBlockHeight(ctx context.Context) (types.Hex, error)

	// FetchBlock returns the block at height, or ErrBlockNotFound.
	FetchBlock(ctx context.Context, height types.Hex) (Block, error)

	// FetchTransaction resolves a transaction hash, or returns
	// ErrTransactionNotFound.
	FetchTransaction(ctx context.Context, hash string) (Transaction, error)

	// SubscribePending opens a subscription to pending transaction hashes.
	SubscribePending(ctx context.Context) (Subscription, error)
}
