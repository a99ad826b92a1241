package ml

import (
	"context"
	"log/slog"

	"github.com/bibbank/creditrisk/internal/domain/model"
)

// StubModel implements port.ScoringModel with a fixed probability.
// Used for development and tests when no trained artifact is available.
type StubModel struct {
	logger      *slog.Logger
	probability float64
}

// NewStubModel creates a stub model that always answers probability.
func NewStubModel(logger *slog.Logger, probability float64) *StubModel {
	if logger == nil {
		logger = slog.Default()
	}
	return &StubModel{logger: logger, probability: probability}
}

// Score returns the configured probability after checking the feature layout.
func (s *StubModel) Score(ctx context.Context, features model.FeatureVector) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := features.Conforms(model.FeatureNames); err != nil {
		return 0, err
	}

	s.logger.DebugContext(ctx, "stub model prediction requested",
		slog.Int("feature_count", features.Len()),
		slog.Float64("probability", s.probability),
	)

	return s.probability, nil
}
