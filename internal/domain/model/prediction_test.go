package model_test

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/creditrisk/internal/domain/model"
	"github.com/bibbank/creditrisk/internal/domain/valueobject"
)

func TestNewPrediction(t *testing.T) {
	t.Run("creates an identified prediction", func(t *testing.T) {
		p, err := model.NewPrediction(valueobject.RiskTierLow, 0.05, 1, model.InputSummary{Sex: "Male"})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, p.ID())
		assert.Equal(t, valueobject.RiskTierLow, p.Tier())
		assert.InDelta(t, 0.05, p.Probability(), 1e-12)
		assert.Equal(t, 1, p.SexMarriageCode())
		assert.Equal(t, "Male", p.Summary().Sex)
		assert.False(t, p.PredictedAt().IsZero())
	})

	t.Run("rejects missing tier", func(t *testing.T) {
		_, err := model.NewPrediction(valueobject.RiskTier{}, 0.5, 1, model.InputSummary{})
		require.Error(t, err)
	})

	t.Run("rejects probabilities outside the unit interval", func(t *testing.T) {
		for _, p := range []float64{-0.01, 1.01, math.NaN(), math.Inf(1)} {
			_, err := model.NewPrediction(valueobject.RiskTierHigh, p, 1, model.InputSummary{})
			assert.Error(t, err, "probability %v", p)
		}
	})
}

func TestFormatProbability(t *testing.T) {
	tests := []struct {
		want string
		p    float64
	}{
		{"5.00%", 0.05},
		{"0.00%", 0},
		{"30.00%", 0.30},
		{"49.99%", 0.4999},
		{"75.00%", 0.75},
		{"100.00%", 1},
		{"12.35%", 0.123456},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, model.FormatProbability(tt.p))
		})
	}
}
