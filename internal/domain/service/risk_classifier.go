package service

import (
	"context"
	"fmt"
	"math"

	"github.com/bibbank/creditrisk/internal/domain/model"
	"github.com/bibbank/creditrisk/internal/domain/port"
	"github.com/bibbank/creditrisk/internal/domain/valueobject"
)

// Assessment is the classified output of one model invocation.
type Assessment struct {
	Tier        valueobject.RiskTier
	Probability float64
}

// RiskClassifier obtains a default probability from the scoring model and
// maps it onto a risk tier.
type RiskClassifier struct {
	model      port.ScoringModel
	thresholds valueobject.Thresholds
}

// NewRiskClassifier wires the loaded model and tier thresholds.
func NewRiskClassifier(m port.ScoringModel, thresholds valueobject.Thresholds) (*RiskClassifier, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: no scoring model configured", model.ErrModelUnavailable)
	}
	if err := thresholds.Validate(); err != nil {
		return nil, fmt.Errorf("invalid risk thresholds: %w", err)
	}
	return &RiskClassifier{model: m, thresholds: thresholds}, nil
}

// Thresholds returns the configured tier boundaries.
func (c *RiskClassifier) Thresholds() valueobject.Thresholds {
	return c.thresholds
}

// Classify scores the vector and tiers the resulting probability.
func (c *RiskClassifier) Classify(ctx context.Context, features model.FeatureVector) (Assessment, error) {
	probability, err := c.model.Score(ctx, features)
	if err != nil {
		return Assessment{}, fmt.Errorf("scoring features: %w", err)
	}
	if math.IsNaN(probability) || probability < 0 || probability > 1 {
		return Assessment{}, fmt.Errorf("model returned probability %v outside [0, 1]", probability)
	}

	return Assessment{
		Tier:        c.thresholds.Classify(probability),
		Probability: probability,
	}, nil
}
