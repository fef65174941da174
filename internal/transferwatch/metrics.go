package transferwatch

import (
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

type metrics struct {
	resolved metric.Int64Counter // transactions resolved from either phase
	skipped  metric.Int64Counter // pending transactions that could not be resolved
	reported metric.Int64Counter // transfers that met the threshold
}

// int64Counter creates a counter, falling back to a no-op one when the meter
// rejects the definition.
func int64Counter(meter metric.Meter, name, description string) metric.Int64Counter {
	c, err := meter.Int64Counter(name, metric.WithDescription(description))
	if err != nil {
		return noop.Int64Counter{}
	}
	return c
}

func newMetrics(meter metric.Meter) metrics {
	return metrics{
		resolved: int64Counter(meter, "transferwatch.transactions.resolved", "Transactions resolved to full detail."),
		skipped:  int64Counter(meter, "transferwatch.transactions.skipped", "Pending transactions skipped because they could not be found."),
		reported: int64Counter(meter, "transferwatch.transfers.reported", "Transfers at or above the threshold."),
	}
}
