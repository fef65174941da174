package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gabapcia/transferwatch/internal/config"
	"github.com/gabapcia/transferwatch/internal/handlers/cli"
	"github.com/gabapcia/transferwatch/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/transferwatch/internal/infra/sink/kafka"
	"github.com/gabapcia/transferwatch/internal/infra/sink/redis"
	"github.com/gabapcia/transferwatch/internal/pkg/logger"
	"github.com/gabapcia/transferwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/transferwatch/internal/pkg/telemetry"
	"github.com/gabapcia/transferwatch/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/transferwatch/internal/transferwatch"

	"github.com/shopspring/decimal"
)

var version = "dev"

func main() {
	os.Exit(run(context.Background()))
}

func run(ctx context.Context) int {
	cfg, err := config.Load()
	if err != nil {
		_ = logger.Init()
		logger.Error(ctx, "failed to load config", "error", err)
		return 1
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			_ = logger.Init()
			logger.Error(ctx, "failed to init telemetry", "error", err)
			return 1
		}
		defer func() { _ = shutdown(context.Background()) }()
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		return 1
	}
	defer func() { _ = logger.Sync() }()

	logger.Info(ctx, "started", "version", version)

	conn := jsonrpc.NewClient(cfg.RPC.HTTPURL,
		jsonrpc.WithTimeout(cfg.RPC.Timeout),
		jsonrpc.WithRetryMax(cfg.RPC.RetryMax),
	)
	chain := ethereum.NewClient(conn, ethereum.DialWebsocket(cfg.RPC.WSURL))

	r := retry.New(retry.WithAttempts(cfg.SnapshotRetryAttempts))

	newService := func(ctx context.Context, threshold decimal.Decimal) (transferwatch.Service, func(), error) {
		sinks, release, err := newSinks(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}

		svc := transferwatch.New(chain, threshold,
			transferwatch.WithSink(sinks),
			transferwatch.WithRetry(r),
		)
		return svc, release, nil
	}

	if err := cli.Run(ctx, version, newService); err != nil {
		logger.Error(ctx, "transferwatch failed", "error", err)
		return 1
	}

	return 0
}

// newSinks builds the log sink plus the Redis and Kafka sinks enabled in cfg.
// release closes every sink that was opened.
func newSinks(ctx context.Context, cfg config.Config) (transferwatch.MultiSink, func(), error) {
	sinks := transferwatch.MultiSink{transferwatch.LogSink{}}
	var closers []func() error

	release := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				logger.Warn(ctx, "failed to close sink", "error", err)
			}
		}
	}

	if cfg.Redis.Enabled() {
		s, err := redis.NewSink(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.Stream)
		if err != nil {
			return nil, nil, fmt.Errorf("connect redis sink: %w", err)
		}

		sinks = append(sinks, s)
		closers = append(closers, s.Close)
	}

	if cfg.Kafka.Enabled() {
		s, err := kafka.NewSink(cfg.Kafka.Brokers, cfg.Kafka.Topic, nil)
		if err != nil {
			release()
			return nil, nil, fmt.Errorf("connect kafka sink: %w", err)
		}

		sinks = append(sinks, s)
		closers = append(closers, s.Close)
	}

	return sinks, release, nil
}
