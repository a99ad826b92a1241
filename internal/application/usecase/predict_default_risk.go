package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bibbank/creditrisk/internal/application/dto"
	"github.com/bibbank/creditrisk/internal/domain/model"
	"github.com/bibbank/creditrisk/internal/domain/port"
	"github.com/bibbank/creditrisk/internal/domain/service"
	"github.com/bibbank/creditrisk/internal/domain/valueobject"
)

const tracerName = "github.com/bibbank/creditrisk/internal/application/usecase"

// Rejection reasons reported to the PredictionRecorder.
const (
	RejectionInvalidInput = "invalid_input"
	RejectionScoring      = "scoring_failed"
)

// PredictDefaultRisk is the use case for scoring one customer's application form.
type PredictDefaultRisk struct {
	encoder    *service.FeatureEncoder
	classifier *service.RiskClassifier
	recorder   port.PredictionRecorder
	tracer     trace.Tracer
}

// NewPredictDefaultRisk creates a new PredictDefaultRisk use case.
// A nil recorder disables prediction metrics.
func NewPredictDefaultRisk(
	encoder *service.FeatureEncoder,
	classifier *service.RiskClassifier,
	recorder port.PredictionRecorder,
) *PredictDefaultRisk {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &PredictDefaultRisk{
		encoder:    encoder,
		classifier: classifier,
		recorder:   recorder,
		tracer:     otel.Tracer(tracerName),
	}
}

// Execute validates the form, encodes it, scores it and tiers the probability.
func (uc *PredictDefaultRisk) Execute(ctx context.Context, req dto.PredictRequest) (dto.PredictionResponse, error) {
	ctx, span := uc.tracer.Start(ctx, "PredictDefaultRisk")
	defer span.End()

	// 1. Validate at the boundary.
	profile, err := model.NewCustomerProfile(req.ToParams())
	if err != nil {
		uc.recorder.RecordRejection(ctx, RejectionInvalidInput)
		span.SetStatus(otelcodes.Error, "invalid input")
		return dto.PredictionResponse{}, fmt.Errorf("failed to validate profile: %w", err)
	}

	// 2. Derive the feature vector.
	features := uc.encoder.Encode(profile)

	// 3. Score and tier.
	assessment, err := uc.classifier.Classify(ctx, features)
	if err != nil {
		reason := RejectionScoring
		if errors.Is(err, model.ErrInvalidInput) {
			reason = RejectionInvalidInput
		}
		uc.recorder.RecordRejection(ctx, reason)
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, reason)
		return dto.PredictionResponse{}, fmt.Errorf("failed to classify profile: %w", err)
	}

	// 4. Build the immutable result.
	prediction, err := model.NewPrediction(
		assessment.Tier,
		assessment.Probability,
		service.SexMarriageCode(profile.Sex(), profile.Marriage()),
		profile.Summary(),
	)
	if err != nil {
		span.RecordError(err)
		return dto.PredictionResponse{}, fmt.Errorf("failed to create prediction: %w", err)
	}

	uc.recorder.RecordPrediction(ctx, prediction.Tier(), prediction.Probability())
	span.SetAttributes(
		attribute.String("credit_risk.tier", prediction.Tier().String()),
		attribute.Float64("credit_risk.probability", prediction.Probability()),
	)

	return dto.FromModel(prediction), nil
}

type noopRecorder struct{}

func (noopRecorder) RecordPrediction(context.Context, valueobject.RiskTier, float64) {}
func (noopRecorder) RecordRejection(context.Context, string)                         {}
