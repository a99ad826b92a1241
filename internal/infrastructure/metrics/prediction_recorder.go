package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/bibbank/creditrisk/internal/domain/valueobject"
)

const meterName = "github.com/bibbank/creditrisk"

// PredictionRecorder implements port.PredictionRecorder with otel instruments.
type PredictionRecorder struct {
	predictions metric.Int64Counter
	rejections  metric.Int64Counter
	probability metric.Float64Histogram
}

// NewPredictionRecorder registers the prediction instruments on provider.
func NewPredictionRecorder(provider metric.MeterProvider) (*PredictionRecorder, error) {
	meter := provider.Meter(meterName)

	predictions, err := meter.Int64Counter("credit_risk_predictions_total",
		metric.WithDescription("Predictions served, by risk tier."),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create predictions counter: %w", err)
	}

	rejections, err := meter.Int64Counter("credit_risk_rejections_total",
		metric.WithDescription("Prediction requests that produced no result, by reason."),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create rejections counter: %w", err)
	}

	probability, err := meter.Float64Histogram("credit_risk_default_probability",
		metric.WithDescription("Predicted probability of default."),
		metric.WithExplicitBucketBoundaries(0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create probability histogram: %w", err)
	}

	return &PredictionRecorder{
		predictions: predictions,
		rejections:  rejections,
		probability: probability,
	}, nil
}

func (r *PredictionRecorder) RecordPrediction(ctx context.Context, tier valueobject.RiskTier, probability float64) {
	attrs := metric.WithAttributes(attribute.String("risk_tier", tier.String()))
	r.predictions.Add(ctx, 1, attrs)
	r.probability.Record(ctx, probability, attrs)
}

func (r *PredictionRecorder) RecordRejection(ctx context.Context, reason string) {
	r.rejections.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}
