package converter

import (
	"context"
	"fmt"
	"time"

	"unitconv/pkg/domain"
	"unitconv/pkg/metrics"
	"unitconv/pkg/serrors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// instrumented decorates a Converter with conversion metrics.
type instrumented struct {
	Converter

	conversions metric.Int64Counter
	duration    metric.Float64Histogram
}

// WithMetrics wraps c so that every Convert call is counted by category and
// outcome, and timed.
func WithMetrics(c Converter, meter metric.Meter) (Converter, error) {
	conversions, err := meter.Int64Counter("unitconv.conversions",
		metric.WithDescription("Number of conversions by category and outcome"))
	if err != nil {
		return nil, fmt.Errorf("could not create conversions counter: %w", err)
	}

	duration, err := meter.Float64Histogram("unitconv.conversion.duration",
		metric.WithDescription("Time spent converting a single value"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create conversion duration histogram: %w", err)
	}

	return &instrumented{
		Converter:   c,
		conversions: conversions,
		duration:    duration,
	}, nil
}

// Convert delegates to the wrapped converter and records the outcome.
func (i *instrumented) Convert(req domain.ConversionRequest) (*domain.ConversionResult, error) {
	start := time.Now()
	res, err := i.Converter.Convert(req)
	elapsed := time.Since(start).Seconds()

	// failed requests may carry arbitrary user text, keep label cardinality bounded
	category := "unknown"
	if res != nil {
		category = string(res.Category.ID)
	}
	attrs := metric.WithAttributes(
		attribute.String("category", category),
		attribute.String("outcome", Outcome(err)),
	)

	ctx := context.Background()
	i.conversions.Add(ctx, 1, attrs)
	i.duration.Record(ctx, elapsed, attrs)

	return res, err //nolint: wrapcheck
}

// Outcome classifies a conversion error for metrics and logs: "ok" for nil,
// the semantic kind name otherwise.
func Outcome(err error) string {
	if err == nil {
		return "ok"
	}
	if k := serrors.KindOf(err); k != nil {
		return k.Error()
	}

	return serrors.ErrInternal.Error()
}
