// Package cli is the command-line entry point of transferwatch. It parses
// the minimum value argument and runs the watch pipeline under a lifecycle
// controller fed by SIGINT and SIGTERM.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gabapcia/transferwatch/internal/lifecycle"
	"github.com/gabapcia/transferwatch/internal/pkg/logger"
	"github.com/gabapcia/transferwatch/internal/pkg/x/cancellation"
	"github.com/gabapcia/transferwatch/internal/transferwatch"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v3"
)

// ErrInvalidThreshold is returned when the minimum value argument is missing
// or is not a decimal number. It is raised before any network work.
var ErrInvalidThreshold = errors.New("invalid minimum value")

// ServiceFactory builds the watch service for a parsed threshold. It is only
// called once the arguments are valid, so it is the place to open network
// resources. release frees them and is called after the pipeline stopped.
type ServiceFactory func(ctx context.Context, threshold decimal.Decimal) (svc transferwatch.Service, release func(), err error)

// shutdownGrace bounds how long an interrupted pipeline may take to observe
// the signal before the service's resources are released.
var shutdownGrace = 10 * time.Second

// interruptSource returns the channel operator interrupts arrive on and a
// function that stops delivery.
type interruptSource func() (<-chan os.Signal, func())

// osInterrupts relays SIGINT and SIGTERM.
func osInterrupts() (<-chan os.Signal, func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	return quit, func() { signal.Stop(quit) }
}

// Run executes the transferwatch command with the process arguments.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - version: Build version reported by --version.
//   - newService: Factory invoked with the parsed <min-value> to build the
//     watch pipeline and the resources it depends on.
//
// Returns:
//   - error: ErrInvalidThreshold when the argument is missing or malformed,
//     the factory error, or the fatal error that stopped the pipeline. An
//     operator interrupt is not an error.
//
// The command listens for SIGINT and SIGTERM while the pipeline runs and
// turns the first one into a cooperative shutdown.
func Run(ctx context.Context, version string, newService ServiceFactory) error {
	return rootCommand(version, newService, osInterrupts).Run(ctx, os.Args)
}

func rootCommand(version string, newService ServiceFactory, interrupts interruptSource) *cli.Command {
	return &cli.Command{
		Name:        "transferwatch",
		Version:     version,
		Usage:       "Report Ethereum transfers at or above a minimum value",
		ArgsUsage:   "<min-value>",
		Description: "Scans the latest block, then follows pending transactions and reports every transfer whose value in ether is at least <min-value>. Stops on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			threshold, err := parseThreshold(c.Args())
			if err != nil {
				return err
			}

			logger.Info(ctx, "watching transfers", "min_value", threshold.String())

			svc, release, err := newService(ctx, threshold)
			if err != nil {
				return err
			}
			defer release()

			quit, stop := interrupts()
			defer stop()

			return watch(ctx, lifecycle.New(quit), svc)
		},
	}
}

// parseThreshold reads the single <min-value> argument as an exact decimal.
func parseThreshold(args cli.Args) (decimal.Decimal, error) {
	if args.Len() != 1 {
		return decimal.Zero, fmt.Errorf("%w: expected exactly one <min-value> argument, got %d", ErrInvalidThreshold, args.Len())
	}

	raw := strings.TrimSpace(args.First())
	threshold, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q: %w", ErrInvalidThreshold, raw, err)
	}

	return threshold, nil
}

// watch runs svc under ctrl and logs how the run ended. When an interrupt
// wins the race it waits up to shutdownGrace for svc to return, so that no
// emission is still in flight once the caller releases the sinks.
func watch(ctx context.Context, ctrl *lifecycle.Controller, svc transferwatch.Service) error {
	var completion transferwatch.Completion
	outcome, err := ctrl.Run(ctx, func(ctx context.Context, sig *cancellation.Signal) error {
		var err error
		completion, err = svc.Run(ctx, sig)
		return err
	})
	if err != nil {
		return err
	}

	if outcome == cancellation.Cancelled {
		graceCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownGrace)
		defer cancel()

		if err := ctrl.Wait(graceCtx); err != nil {
			logger.Warn(ctx, "pipeline did not stop within the grace period", "grace", shutdownGrace.String())
			return nil
		}

		logger.Debug(ctx, "pipeline stopped after interrupt")
		return nil
	}

	if completion == transferwatch.StreamCancelled {
		logger.Debug(ctx, "pipeline stopped after cancellation")
	} else {
		logger.Debug(ctx, "all jobs completed")
	}

	return nil
}
