package transferwatch

import (
	"context"

	"github.com/gabapcia/transferwatch/internal/pkg/logger"
	"github.com/gabapcia/transferwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/transferwatch/internal/pkg/x/cancellation"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName identifies the spans and metrics emitted by this package.
const instrumentationName = "github.com/gabapcia/transferwatch/internal/transferwatch"

// Completion describes how a successful run ended.
type Completion int

const (
	// StreamUnknown accompanies every non-nil error: the run did not complete.
	StreamUnknown Completion = iota

	// StreamExhausted means the pending transaction stream was closed upstream.
	StreamExhausted

	// StreamCancelled means the run stopped after observing cancellation.
	StreamCancelled
)

// String implements fmt.Stringer.
func (c Completion) String() string {
	switch c {
	case StreamExhausted:
		return "stream exhausted"
	case StreamCancelled:
		return "stream cancelled"
	case StreamUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// Service runs the transfer watch pipeline.
type Service interface {
	// Run scans the latest block, then follows pending transactions until the
	// stream ends, sig is cancelled, or a fatal error occurs. Cancellation is
	// reported as StreamCancelled with a nil error. A non-nil error always
	// comes with StreamUnknown.
	Run(ctx context.Context, sig *cancellation.Signal) (Completion, error)
}

// service is the default implementation of Service.
type service struct {
	chain     Blockchain
	threshold decimal.Decimal
	sink      Sink
	retry     retry.Retry

	tracer  trace.Tracer
	metrics metrics
}

// Compile-time check to ensure *service implements the Service interface.
var _ Service = (*service)(nil)

// Run implements Service.
func (s *service) Run(ctx context.Context, sig *cancellation.Signal) (Completion, error) {
	logger.Debug(ctx, "starting transfer watch", "threshold", s.threshold.String())

	if err := s.scanLatestBlock(ctx); err != nil {
		return StreamUnknown, err
	}

	if sig.IsCancelled() {
		return StreamCancelled, nil
	}

	sub, err := s.chain.SubscribePending(ctx)
	if err != nil {
		return StreamUnknown, err
	}

	logger.Info(ctx, "subscribed to pending transactions")
	return s.watchPending(ctx, sub, sig)
}

// config holds the optional collaborators of the service.
type config struct {
	sink  Sink
	retry retry.Retry
}

// Option customizes the service built by New.
type Option func(*config)

// New builds a Service watching chain for transfers of at least threshold
// ether.
//
// Parameters:
//   - chain: The chain data service used to fetch the latest block, resolve
//     transactions and subscribe to pending ones.
//   - threshold: Minimum value, in ether, a transfer must carry to be reported.
//   - opts: Optional collaborators. By default transfers go to LogSink and
//     snapshot fetches are attempted once.
//
// Returns:
//   - *service: A ready-to-run Service. Spans and counters are recorded
//     through the global OpenTelemetry providers.
func New(chain Blockchain, threshold decimal.Decimal, opts ...Option) *service {
	cfg := config{
		sink:  LogSink{},
		retry: retry.New(retry.WithAttempts(1)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		chain:     chain,
		threshold: threshold,
		sink:      cfg.sink,
		retry:     cfg.retry,
		tracer:    otel.Tracer(instrumentationName),
		metrics:   newMetrics(otel.Meter(instrumentationName)),
	}
}

// WithSink replaces the default LogSink.
func WithSink(sink Sink) Option {
	return func(c *config) {
		c.sink = sink
	}
}

// WithRetry sets the retry policy used when fetching the snapshot block.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}
