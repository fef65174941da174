package transferwatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/transferwatch/internal/pkg/logger"
	"github.com/gabapcia/transferwatch/internal/pkg/x/cancellation"
)

// nextPending waits for the next hash of sub.
//
// It returns ok == false when the wait ended without a hash: the stream was
// closed, sig was cancelled, or ctx is done. err is set only when the
// upstream failed.
func nextPending(ctx context.Context, sub Subscription, sig *cancellation.Signal) (hash string, ok bool, err error) {
	select {
	case <-ctx.Done():
		return "", false, nil
	case <-sig.Done():
		return "", false, nil
	case err, open := <-sub.Err():
		if !open || err == nil {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: pending subscription: %w", ErrTransport, err)
	case hash, ok := <-sub.Hashes():
		return hash, ok, nil
	}
}

// watchPending consumes sub until it is exhausted, sig is cancelled, or a
// fatal error occurs. The subscription is always released on return.
//
// The flag is polled once per received hash, before resolving it, so a
// resolution already in flight when cancellation is requested completes
// and is reported. Pending transactions that cannot be found are skipped:
// the node may not have indexed them yet, or they left the mempool.
func (s *service) watchPending(ctx context.Context, sub Subscription, sig *cancellation.Signal) (Completion, error) {
	defer sub.Unsubscribe()

	for {
		hash, ok, err := nextPending(ctx, sub, sig)
		if err != nil {
			return StreamUnknown, err
		}

		if sig.IsCancelled() || ctx.Err() != nil {
			return StreamCancelled, nil
		}

		if !ok {
			logger.Info(ctx, "pending transaction stream closed")
			return StreamExhausted, nil
		}

		tx, err := s.resolve(ctx, hash)
		if errors.Is(err, ErrTransactionNotFound) {
			logger.Debug(ctx, "pending transaction not found, skipping", "transaction.hash", hash)
			s.metrics.skipped.Add(ctx, 1)
			continue
		}

		if err != nil {
			if ctx.Err() != nil {
				return StreamCancelled, nil
			}
			return StreamUnknown, err
		}

		s.report(ctx, tx)
	}
}
