package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/creditrisk/internal/domain/model"
	"github.com/bibbank/creditrisk/internal/domain/service"
	"github.com/bibbank/creditrisk/internal/domain/valueobject"
)

func amounts(vals ...float64) []decimal.Decimal {
	out := make([]decimal.Decimal, 0, len(vals))
	for _, v := range vals {
		out = append(out, decimal.NewFromFloat(v))
	}
	return out
}

func newProfile(t *testing.T, sex, marriage int) *model.CustomerProfile {
	t.Helper()
	p, err := model.NewCustomerProfile(model.ProfileParams{
		LimitBal:  decimal.NewFromInt(50_000),
		Age:       41,
		Sex:       sex,
		Education: 3,
		Marriage:  marriage,
		PayStatus: []int{-1, 0, 1, 2, -2, 8},
		BillAmt:   amounts(1000, -200.5, 3000, 4000, 5000, 6000),
		PayAmt:    amounts(10, 20, 30, 40, 50, 60.25),
	})
	require.NoError(t, err)
	return p
}

func TestSexMarriageCode(t *testing.T) {
	tests := []struct {
		sex      int
		marriage int
		want     int
	}{
		{sex: 1, marriage: 1, want: 1},
		{sex: 1, marriage: 2, want: 2},
		{sex: 1, marriage: 3, want: 3},
		{sex: 2, marriage: 1, want: 4},
		{sex: 2, marriage: 2, want: 5},
		{sex: 2, marriage: 3, want: 6},
		{sex: 1, marriage: 0, want: 6},
		{sex: 2, marriage: 0, want: 6},
	}

	for _, tt := range tests {
		sex, err := valueobject.SexFromCode(tt.sex)
		require.NoError(t, err)
		marriage, err := valueobject.MarriageFromCode(tt.marriage)
		require.NoError(t, err)

		assert.Equal(t, tt.want, service.SexMarriageCode(sex, marriage),
			"sex=%d marriage=%d", tt.sex, tt.marriage)
	}
}

func TestSexMarriageCode_UnsetValuesFallBack(t *testing.T) {
	assert.Equal(t, service.SexMarriageOther, service.SexMarriageCode(valueobject.Sex{}, valueobject.MarriageMarried))
}

func TestFeatureEncoder_Encode(t *testing.T) {
	enc := service.NewFeatureEncoder()

	v := enc.Encode(newProfile(t, 1, 1))

	require.Equal(t, len(model.FeatureNames), v.Len())
	assert.Equal(t, model.FeatureNames, v.Names())
	assert.Equal(t, []float64{
		50_000, 3, 1,
		-1, 0, 1, 2, -2, 8,
		1000, -200.5, 3000, 4000, 5000, 6000,
		10, 20, 30, 40, 50, 60.25,
		1,
	}, v.Values())
	require.NoError(t, v.Conforms(model.FeatureNames))
}

func TestFeatureEncoder_CompositeCodeScenarios(t *testing.T) {
	enc := service.NewFeatureEncoder()

	tests := []struct {
		name     string
		sex      int
		marriage int
		want     float64
	}{
		{"male married", 1, 1, 1},
		{"female others collapses", 2, 3, 6},
		{"male unspecified collapses", 1, 0, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := enc.Encode(newProfile(t, tt.sex, tt.marriage))
			seMa, ok := v.Value("SE_MA")
			require.True(t, ok)
			assert.Equal(t, tt.want, seMa)

			marriage, ok := v.Value("MARRIAGE")
			require.True(t, ok)
			assert.Equal(t, float64(tt.marriage), marriage)
		})
	}
}

func TestFeatureEncoder_Idempotent(t *testing.T) {
	enc := service.NewFeatureEncoder()
	p := newProfile(t, 2, 2)

	first := enc.Encode(p)
	second := enc.Encode(p)

	assert.True(t, first.Equal(second))
	assert.Equal(t, first.Values(), second.Values())
}
