package port

import (
	"context"

	"github.com/bibbank/creditrisk/internal/domain/model"
	"github.com/bibbank/creditrisk/internal/domain/valueobject"
)

// ScoringModel is the port to the pre-trained default classifier.
type ScoringModel interface {
	// Score returns the probability, in [0, 1], that the customer defaults.
	Score(ctx context.Context, features model.FeatureVector) (probability float64, err error)
}

// PredictionRecorder receives the outcome of every prediction request for
// operational metrics. Implementations must be safe for concurrent use.
type PredictionRecorder interface {
	RecordPrediction(ctx context.Context, tier valueobject.RiskTier, probability float64)
	RecordRejection(ctx context.Context, reason string)
}
