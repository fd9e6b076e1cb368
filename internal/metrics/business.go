package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Operation outcomes used as the status label.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// BusinessMetrics records the outcome of use case operations.
type BusinessMetrics interface {
	// RecordOperation counts one operation, e.g. domain "payment", operation "tokenize".
	RecordOperation(ctx context.Context, domain, operation, status string)

	// RecordDuration observes how long an operation took, in seconds.
	RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string)

	// RecordRejection counts an operation refused for reason, e.g. "card_expired".
	// Reasons are recorded here even when the caller is only told the input was invalid.
	RecordRejection(ctx context.Context, domain, operation, reason string)
}

type businessMetrics struct {
	operations metric.Int64Counter
	durations  metric.Float64Histogram
	rejections metric.Int64Counter
}

// NewBusinessMetrics creates the <namespace>_operations_total,
// <namespace>_operation_duration_seconds and <namespace>_rejections_total instruments.
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (BusinessMetrics, error) {
	meter := meterProvider.Meter(namespace)

	operations, err := meter.Int64Counter(
		namespace+"_operations_total",
		metric.WithDescription("Total number of business operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	durations, err := meter.Float64Histogram(
		namespace+"_operation_duration_seconds",
		metric.WithDescription("Duration of business operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	rejections, err := meter.Int64Counter(
		namespace+"_rejections_total",
		metric.WithDescription("Business operations rejected on input, by reason"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create rejection counter: %w", err)
	}

	return &businessMetrics{
		operations: operations,
		durations:  durations,
		rejections: rejections,
	}, nil
}

func (b *businessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	b.operations.Add(ctx, 1, withLabels(domain, operation, attribute.String("status", status)))
}

func (b *businessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	b.durations.Record(ctx, duration.Seconds(), withLabels(domain, operation, attribute.String("status", status)))
}

func (b *businessMetrics) RecordRejection(ctx context.Context, domain, operation, reason string) {
	b.rejections.Add(ctx, 1, withLabels(domain, operation, attribute.String("reason", reason)))
}

func withLabels(domain, operation string, extra attribute.KeyValue) metric.MeasurementOption {
	return metric.WithAttributes(
		attribute.String("domain", domain),
		attribute.String("operation", operation),
		extra,
	)
}

// NoOpBusinessMetrics discards everything. Used when metrics are disabled.
type NoOpBusinessMetrics struct{}

// NewNoOpBusinessMetrics creates a no-op BusinessMetrics implementation.
func NewNoOpBusinessMetrics() BusinessMetrics {
	return &NoOpBusinessMetrics{}
}

func (n *NoOpBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {}

func (n *NoOpBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
}

func (n *NoOpBusinessMetrics) RecordRejection(ctx context.Context, domain, operation, reason string) {}
