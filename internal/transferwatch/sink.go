package transferwatch

import (
	"context"
	"errors"

	"github.com/gabapcia/transferwatch/internal/pkg/logger"
)

// Sink receives every transfer that met the threshold.
type Sink interface {
	Emit(ctx context.Context, transfer Transfer) error
}

// LogSink writes transfers as info-level log lines. It is the default sink.
type LogSink struct{}

// Compile-time check to ensure LogSink implements the Sink interface.
var _ Sink = LogSink{}

// Emit implements Sink.
func (LogSink) Emit(ctx context.Context, transfer Transfer) error {
	logger.Info(ctx, transfer.String(),
		"transfer.hash", transfer.Hash,
		"transfer.from", transfer.From,
		"transfer.to", transfer.To,
		"transfer.value", transfer.Value.String(),
	)
	return nil
}

// MultiSink emits to each sink in order. A failing sink does not stop the
// others; all failures are joined into the returned error.
type MultiSink []Sink

// Compile-time check to ensure MultiSink implements the Sink interface.
var _ Sink = MultiSink(nil)

// Emit implements Sink.
func (m MultiSink) Emit(ctx context.Context, transfer Transfer) error {
	var errs []error
	for _, s := range m {
		if err := s.Emit(ctx, transfer); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
