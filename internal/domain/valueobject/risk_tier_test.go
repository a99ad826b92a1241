package valueobject_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/creditrisk/internal/domain/valueobject"
)

func TestThresholds_Classify(t *testing.T) {
	thresholds := valueobject.DefaultThresholds()

	tests := []struct {
		name        string
		expected    valueobject.RiskTier
		probability float64
	}{
		{name: "0.00 is LOW", expected: valueobject.RiskTierLow, probability: 0},
		{name: "0.05 is LOW", expected: valueobject.RiskTierLow, probability: 0.05},
		{name: "0.29 is LOW", expected: valueobject.RiskTierLow, probability: 0.29},
		{name: "0.2999 is LOW", expected: valueobject.RiskTierLow, probability: 0.2999},
		{name: "0.30 is MEDIUM", expected: valueobject.RiskTierMedium, probability: 0.30},
		{name: "0.49 is MEDIUM", expected: valueobject.RiskTierMedium, probability: 0.49},
		{name: "0.50 is HIGH", expected: valueobject.RiskTierHigh, probability: 0.50},
		{name: "0.75 is HIGH", expected: valueobject.RiskTierHigh, probability: 0.75},
		{name: "1.00 is HIGH", expected: valueobject.RiskTierHigh, probability: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := thresholds.Classify(tt.probability)
			assert.Equal(t, tt.expected, result, "probability %v", tt.probability)
		})
	}
}

func TestThresholds_Validate(t *testing.T) {
	tests := []struct {
		name       string
		thresholds valueobject.Thresholds
		wantErr    bool
	}{
		{name: "defaults", thresholds: valueobject.DefaultThresholds()},
		{name: "full range", thresholds: valueobject.Thresholds{Medium: 0, High: 1}},
		{name: "inverted", thresholds: valueobject.Thresholds{Medium: 0.6, High: 0.4}, wantErr: true},
		{name: "equal", thresholds: valueobject.Thresholds{Medium: 0.5, High: 0.5}, wantErr: true},
		{name: "negative", thresholds: valueobject.Thresholds{Medium: -0.1, High: 0.5}, wantErr: true},
		{name: "above one", thresholds: valueobject.Thresholds{Medium: 0.3, High: 1.2}, wantErr: true},
		{name: "NaN", thresholds: valueobject.Thresholds{Medium: math.NaN(), High: 0.5}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.thresholds.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestRiskTier_FromString(t *testing.T) {
	tests := []struct {
		input    string
		expected valueobject.RiskTier
		wantErr  bool
	}{
		{"LOW", valueobject.RiskTierLow, false},
		{"MEDIUM", valueobject.RiskTierMedium, false},
		{"HIGH", valueobject.RiskTierHigh, false},
		{"CRITICAL", valueobject.RiskTier{}, true},
		{"", valueobject.RiskTier{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := valueobject.RiskTierFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestRiskTier_Text(t *testing.T) {
	assert.Equal(t, "Low Risk of Default", valueobject.RiskTierLow.Headline())
	assert.Equal(t, "Medium Risk of Default", valueobject.RiskTierMedium.Headline())
	assert.Equal(t, "High Risk of Default", valueobject.RiskTierHigh.Headline())
	assert.Contains(t, valueobject.RiskTierHigh.Note(), "strong indicators")
	assert.Empty(t, valueobject.RiskTier{}.Note())
}

func TestRiskTier_IsZero(t *testing.T) {
	var zero valueobject.RiskTier
	assert.True(t, zero.IsZero())
	assert.False(t, valueobject.RiskTierLow.IsZero())
}
