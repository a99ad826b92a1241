package model_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/creditrisk/internal/domain/model"
	"github.com/bibbank/creditrisk/internal/domain/valueobject"
)

func amounts(vals ...int64) []decimal.Decimal {
	out := make([]decimal.Decimal, 0, len(vals))
	for _, v := range vals {
		out = append(out, decimal.NewFromInt(v))
	}
	return out
}

func validParams() model.ProfileParams {
	return model.ProfileParams{
		LimitBal:  decimal.NewFromInt(20_000),
		Age:       30,
		Sex:       1,
		Education: 2,
		Marriage:  1,
		PayStatus: []int{0, 0, 0, 0, 0, 0},
		BillAmt:   amounts(0, 0, 0, 0, 0, 0),
		PayAmt:    amounts(0, 0, 0, 0, 0, 0),
	}
}

func TestNewCustomerProfile(t *testing.T) {
	t.Run("accepts a valid profile", func(t *testing.T) {
		p, err := model.NewCustomerProfile(validParams())
		require.NoError(t, err)
		assert.True(t, p.LimitBal().Equal(decimal.NewFromInt(20_000)))
		assert.Equal(t, 30, p.Age())
		assert.Equal(t, valueobject.SexMale, p.Sex())
		assert.Equal(t, 2, p.Education().Code())
		assert.Equal(t, 1, p.Marriage().Code())
	})

	t.Run("accepts inclusive bounds", func(t *testing.T) {
		params := validParams()
		params.LimitBal = decimal.NewFromInt(model.LimitBalMax)
		params.Age = model.AgeMax
		params.PayStatus = []int{-2, 8, -2, 8, -1, 0}
		params.BillAmt = amounts(-1_000_000, 2_000_000, 0, 0, 0, 0)
		params.PayAmt = amounts(0, 2_500_000, 0, 0, 0, 0)

		_, err := model.NewCustomerProfile(params)
		require.NoError(t, err)
	})

	t.Run("rejects out of domain values with every field listed", func(t *testing.T) {
		params := validParams()
		params.LimitBal = decimal.NewFromInt(-1)
		params.Age = 17
		params.Sex = 3
		params.Education = 5
		params.Marriage = 4
		params.PayStatus = []int{9, 0, 0, 0, 0, -3}
		params.BillAmt = amounts(0, 0, 2_000_001, 0, 0, 0)
		params.PayAmt = amounts(0, 0, 0, 0, 0, -5)

		_, err := model.NewCustomerProfile(params)
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrInvalidInput))

		fields := make([]string, 0)
		for _, f := range model.FieldErrors(err) {
			fields = append(fields, f.Field)
		}
		assert.ElementsMatch(t, []string{
			"limit_bal", "age", "sex", "education", "marriage",
			"pay_0", "pay_6", "bill_amt3", "pay_amt6",
		}, fields)
	})

	t.Run("rejects wrong period counts", func(t *testing.T) {
		params := validParams()
		params.PayStatus = []int{0, 0}
		params.BillAmt = nil
		params.PayAmt = amounts(1, 2, 3, 4, 5, 6, 7)

		_, err := model.NewCustomerProfile(params)
		require.ErrorIs(t, err, model.ErrInvalidInput)
		assert.Len(t, model.FieldErrors(err), 3)
		assert.Contains(t, err.Error(), "pay_status: expected 6 values, got 2")
	})
}

func TestCustomerProfile_Totals(t *testing.T) {
	tests := []struct {
		name         string
		bills        []decimal.Decimal
		payments     []decimal.Decimal
		wantBill     string
		wantPayments string
	}{
		{
			name:         "zeros",
			bills:        amounts(0, 0, 0, 0, 0, 0),
			payments:     amounts(0, 0, 0, 0, 0, 0),
			wantBill:     "0",
			wantPayments: "0",
		},
		{
			name:         "positive amounts",
			bills:        amounts(1000, 2000, 3000, 4000, 5000, 6000),
			payments:     amounts(100, 200, 300, 400, 500, 600),
			wantBill:     "21000",
			wantPayments: "2100",
		},
		{
			name:         "negative balances offset",
			bills:        amounts(-1_000_000, 500, -250, 2_000_000, 0, -1),
			payments:     amounts(2_500_000, 0, 0, 0, 0, 1),
			wantBill:     "1000249",
			wantPayments: "2500001",
		},
		{
			name: "fractional amounts stay exact",
			bills: []decimal.Decimal{
				decimal.RequireFromString("0.1"), decimal.RequireFromString("0.2"), decimal.RequireFromString("-0.3"),
				decimal.RequireFromString("10.55"), decimal.Zero, decimal.Zero,
			},
			payments: []decimal.Decimal{
				decimal.RequireFromString("0.01"), decimal.RequireFromString("0.02"), decimal.Zero,
				decimal.Zero, decimal.Zero, decimal.RequireFromString("99.97"),
			},
			wantBill:     "10.55",
			wantPayments: "100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validParams()
			params.BillAmt = tt.bills
			params.PayAmt = tt.payments
			p, err := model.NewCustomerProfile(params)
			require.NoError(t, err)

			assert.Equal(t, tt.wantBill, p.TotalBill().String())
			assert.Equal(t, tt.wantPayments, p.TotalPayment().String())
		})
	}
}

func TestCustomerProfile_Summary(t *testing.T) {
	params := validParams()
	params.Sex = 2
	params.Education = 0
	params.Marriage = 2
	params.BillAmt = amounts(10, 20, 30, 40, 50, 60)
	params.PayAmt = amounts(1, 1, 1, 1, 1, 1)

	p, err := model.NewCustomerProfile(params)
	require.NoError(t, err)

	s := p.Summary()
	assert.True(t, s.CreditLimit.Equal(decimal.NewFromInt(20_000)))
	assert.True(t, s.TotalBill.Equal(decimal.NewFromInt(210)))
	assert.True(t, s.TotalPayment.Equal(decimal.NewFromInt(6)))
	assert.Equal(t, "Female", s.Sex)
	assert.Equal(t, "Unknown", s.Education)
	assert.Equal(t, "Single", s.Marriage)
}

func TestCustomerProfile_AccessorsReturnCopies(t *testing.T) {
	p, err := model.NewCustomerProfile(validParams())
	require.NoError(t, err)

	status := p.PayStatus()
	status[0] = 8
	assert.Equal(t, 0, p.PayStatus()[0])
}
