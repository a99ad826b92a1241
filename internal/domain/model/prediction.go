package model

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/bibbank/creditrisk/internal/domain/valueobject"
)

// Prediction is the immutable outcome of scoring one CustomerProfile.
// It lives only for the duration of the request that produced it.
type Prediction struct {
	predictedAt time.Time
	tier        valueobject.RiskTier
	summary     InputSummary
	probability float64
	seMa        int
	id          uuid.UUID
}

// NewPrediction builds a prediction from a classified probability.
func NewPrediction(tier valueobject.RiskTier, probability float64, seMa int, summary InputSummary) (*Prediction, error) {
	if tier.IsZero() {
		return nil, fmt.Errorf("risk tier is required")
	}
	if math.IsNaN(probability) || probability < 0 || probability > 1 {
		return nil, fmt.Errorf("probability must be between 0 and 1, got %v", probability)
	}

	return &Prediction{
		id:          uuid.New(),
		tier:        tier,
		probability: probability,
		seMa:        seMa,
		summary:     summary,
		predictedAt: time.Now().UTC(),
	}, nil
}

// FormatProbability renders p as a percentage with two decimals, e.g. 0.05 -> "5.00%".
func FormatProbability(p float64) string {
	return fmt.Sprintf("%.2f%%", p*100)
}

// FormattedProbability renders the default probability for display.
func (p *Prediction) FormattedProbability() string {
	return FormatProbability(p.probability)
}

// --- Accessors ---

func (p *Prediction) ID() uuid.UUID              { return p.id }
func (p *Prediction) Tier() valueobject.RiskTier { return p.tier }
func (p *Prediction) Probability() float64       { return p.probability }
func (p *Prediction) SexMarriageCode() int       { return p.seMa }
func (p *Prediction) Summary() InputSummary      { return p.summary }
func (p *Prediction) PredictedAt() time.Time     { return p.predictedAt }
