package transferwatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/transferwatch/internal/pkg/logger"
	"github.com/gabapcia/transferwatch/internal/pkg/resilience/retry"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// fetchLatestBlock returns the most recent block. Transport failures are
// retried with the configured policy; a missing block is not.
func (s *service) fetchLatestBlock(ctx context.Context) (Block, error) {
	var block Block
	err := s.retry.Execute(ctx, func() error {
		height, err := s.chain.LatestBlockHeight(ctx)
		if err != nil {
			return err
		}

		block, err = s.chain.FetchBlock(ctx, height)
		if errors.Is(err, ErrBlockNotFound) {
			return retry.Unrecoverable(fmt.Errorf("latest block %s: %w", height, err))
		}
		return err
	})

	return block, err
}

// resolve fetches the full transaction behind hash.
func (s *service) resolve(ctx context.Context, hash string) (Transaction, error) {
	ctx, span := s.tracer.Start(ctx, "transferwatch.resolve", trace.WithAttributes(
		attribute.String("transaction.hash", hash),
	))
	defer span.End()

	tx, err := s.chain.FetchTransaction(ctx, hash)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Transaction{}, err
	}

	s.metrics.resolved.Add(ctx, 1)
	return tx, nil
}

// report runs the filter on tx and emits the resulting transfer, if any.
// Emission failures are logged and never abort the pipeline.
func (s *service) report(ctx context.Context, tx Transaction) {
	transfer, ok := Report(tx, s.threshold)
	if !ok {
		return
	}

	s.metrics.reported.Add(ctx, 1)
	if err := s.sink.Emit(ctx, transfer); err != nil {
		logger.Error(ctx, "failed to emit transfer",
			"transfer.hash", transfer.Hash,
			"error", err,
		)
	}
}

// scanBlock resolves and reports every transaction of block in block order.
//
// A transaction that cannot be found means the block and the service
// disagree, so the scan stops at the first one with ErrInconsistentBlock.
// Any other resolution error is returned as is.
func (s *service) scanBlock(ctx context.Context, block Block) error {
	ctx, span := s.tracer.Start(ctx, "transferwatch.scanBlock", trace.WithAttributes(
		attribute.String("block.height", block.Height.String()),
		attribute.Int("block.transactions", len(block.Transactions)),
	))
	defer span.End()

	for _, hash := range block.Transactions {
		tx, err := s.resolve(ctx, hash)
		if errors.Is(err, ErrTransactionNotFound) {
			err = fmt.Errorf("%w: block %s, transaction %s: %w", ErrInconsistentBlock, block.Height, hash, err)
		}

		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return err
		}

		s.report(ctx, tx)
	}

	return nil
}

// scanLatestBlock is the snapshot phase: it fetches the latest block and
// scans it once.
func (s *service) scanLatestBlock(ctx context.Context) error {
	block, err := s.fetchLatestBlock(ctx)
	if err != nil {
		return err
	}

	logger.Info(ctx, "scanning latest block",
		"block.height", block.Height.Int(),
		"block.hash", block.Hash,
		"block.transactions", len(block.Transactions),
	)

	return s.scanBlock(ctx, block)
}
