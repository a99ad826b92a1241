package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bibbank/creditrisk/internal/domain/model"
)

// PredictRequest is the input DTO carrying one customer's application form.
type PredictRequest struct {
	LimitBal  decimal.Decimal   `json:"limit_bal" yaml:"limit_bal"`
	PayStatus []int             `json:"pay_status" yaml:"pay_status"`
	BillAmt   []decimal.Decimal `json:"bill_amt" yaml:"bill_amt"`
	PayAmt    []decimal.Decimal `json:"pay_amt" yaml:"pay_amt"`
	Age       int               `json:"age" yaml:"age"`
	Sex       int               `json:"sex" yaml:"sex"`
	Education int               `json:"education" yaml:"education"`
	Marriage  int               `json:"marriage" yaml:"marriage"`
}

// DefaultPredictRequest returns the form as it is first presented.
func DefaultPredictRequest() PredictRequest {
	zeros := func() []decimal.Decimal {
		out := make([]decimal.Decimal, model.Periods)
		for i := range out {
			out[i] = decimal.Zero
		}
		return out
	}
	return PredictRequest{
		LimitBal:  decimal.NewFromInt(model.DefaultLimitBal),
		Age:       model.DefaultAge,
		Sex:       1,
		Education: 0,
		Marriage:  0,
		PayStatus: make([]int, model.Periods),
		BillAmt:   zeros(),
		PayAmt:    zeros(),
	}
}

// ToParams maps the request onto the domain constructor input.
func (r PredictRequest) ToParams() model.ProfileParams {
	return model.ProfileParams{
		LimitBal:  r.LimitBal,
		Age:       r.Age,
		Sex:       r.Sex,
		Education: r.Education,
		Marriage:  r.Marriage,
		PayStatus: r.PayStatus,
		BillAmt:   r.BillAmt,
		PayAmt:    r.PayAmt,
	}
}

// InputSummary is the output DTO describing the submitted profile.
type InputSummary struct {
	CreditLimit  decimal.Decimal `json:"credit_limit" yaml:"credit_limit"`
	TotalBill    decimal.Decimal `json:"total_bill" yaml:"total_bill"`
	TotalPayment decimal.Decimal `json:"total_payment" yaml:"total_payment"`
	Sex          string          `json:"sex" yaml:"sex"`
	Education    string          `json:"education" yaml:"education"`
	Marriage     string          `json:"marriage" yaml:"marriage"`
}

// SummaryFromModel maps a domain summary to the DTO.
func SummaryFromModel(s model.InputSummary) InputSummary {
	return InputSummary{
		CreditLimit:  s.CreditLimit,
		TotalBill:    s.TotalBill,
		TotalPayment: s.TotalPayment,
		Sex:          s.Sex,
		Education:    s.Education,
		Marriage:     s.Marriage,
	}
}

// PredictionResponse is the output DTO returned after scoring.
type PredictionResponse struct {
	PredictedAt        time.Time    `json:"predicted_at" yaml:"predicted_at"`
	Summary            InputSummary `json:"summary" yaml:"summary"`
	RiskTier           string       `json:"risk_tier" yaml:"risk_tier"`
	Headline           string       `json:"headline" yaml:"headline"`
	Note               string       `json:"note" yaml:"note"`
	ProbabilityDisplay string       `json:"probability_display" yaml:"probability_display"`
	Probability        float64      `json:"probability" yaml:"probability"`
	SexMarriageCode    int          `json:"se_ma" yaml:"se_ma"`
	ID                 uuid.UUID    `json:"id" yaml:"id"`
}

// FromModel maps a domain prediction to the response DTO.
func FromModel(p *model.Prediction) PredictionResponse {
	return PredictionResponse{
		ID:                 p.ID(),
		RiskTier:           p.Tier().String(),
		Headline:           p.Tier().Headline(),
		Note:               p.Tier().Note(),
		Probability:        p.Probability(),
		ProbabilityDisplay: p.FormattedProbability(),
		SexMarriageCode:    p.SexMarriageCode(),
		Summary:            SummaryFromModel(p.Summary()),
		PredictedAt:        p.PredictedAt(),
	}
}

// FormResponse lists every application form input.
type FormResponse struct {
	Fields []model.FieldSpec `json:"fields" yaml:"fields"`
}
