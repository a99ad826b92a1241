package grpc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bibbank/creditrisk/internal/application/dto"
	"github.com/bibbank/creditrisk/internal/application/usecase"
	"github.com/bibbank/creditrisk/internal/domain/model"
)

// Compile-time assertion that CreditRiskHandler implements CreditRiskServiceServer.
var _ CreditRiskServiceServer = (*CreditRiskHandler)(nil)

// CreditRiskHandler implements the gRPC CreditRiskServiceServer interface.
type CreditRiskHandler struct {
	UnimplementedCreditRiskServiceServer
	predict   *usecase.PredictDefaultRisk
	summarize *usecase.SummarizeProfile
	form      *usecase.DescribeForm
	logger    *slog.Logger
}

// NewCreditRiskHandler creates a new gRPC handler.
func NewCreditRiskHandler(
	predict *usecase.PredictDefaultRisk,
	summarize *usecase.SummarizeProfile,
	form *usecase.DescribeForm,
	logger *slog.Logger,
) *CreditRiskHandler {
	return &CreditRiskHandler{
		predict:   predict,
		summarize: summarize,
		form:      form,
		logger:    logger,
	}
}

// Proto-aligned request/response message types.

// ProfileMsg represents the proto CustomerProfile message. Amounts are decimal strings.
type ProfileMsg struct {
	LimitBal  string   `json:"limit_bal"`
	Age       int32    `json:"age"`
	Sex       int32    `json:"sex"`
	Education int32    `json:"education"`
	Marriage  int32    `json:"marriage"`
	PayStatus []int32  `json:"pay_status"`
	BillAmt   []string `json:"bill_amt"`
	PayAmt    []string `json:"pay_amt"`
}

// SummaryMsg represents the proto InputSummary message.
type SummaryMsg struct {
	CreditLimit  string `json:"credit_limit"`
	TotalBill    string `json:"total_bill"`
	TotalPayment string `json:"total_payment"`
	Sex          string `json:"sex"`
	Education    string `json:"education"`
	Marriage     string `json:"marriage"`
}

// PredictionMsg represents the proto Prediction message.
type PredictionMsg struct {
	ID                 string      `json:"id"`
	RiskTier           string      `json:"risk_tier"`
	Headline           string      `json:"headline"`
	Note               string      `json:"note"`
	Probability        float64     `json:"probability"`
	ProbabilityDisplay string      `json:"probability_display"`
	SeMa               int32       `json:"se_ma"`
	Summary            *SummaryMsg `json:"summary"`
	PredictedAt        string      `json:"predicted_at"`
}

// FieldOptionMsg represents the proto FieldOption message.
type FieldOptionMsg struct {
	Value int32  `json:"value"`
	Label string `json:"label"`
}

// FieldMsg represents the proto FormField message.
type FieldMsg struct {
	Name    string           `json:"name"`
	Label   string           `json:"label"`
	Group   string           `json:"group"`
	Kind    string           `json:"kind"`
	Min     float64          `json:"min"`
	Max     float64          `json:"max"`
	Default float64          `json:"default"`
	Step    float64          `json:"step,omitempty"`
	Options []FieldOptionMsg `json:"options,omitempty"`
}

// PredictDefaultRiskRequest represents the proto PredictDefaultRiskRequest message.
type PredictDefaultRiskRequest struct {
	Profile *ProfileMsg `json:"profile"`
}

// PredictDefaultRiskResponse represents the proto PredictDefaultRiskResponse message.
type PredictDefaultRiskResponse struct {
	Prediction *PredictionMsg `json:"prediction"`
}

// SummarizeProfileRequest represents the proto SummarizeProfileRequest message.
type SummarizeProfileRequest struct {
	Profile *ProfileMsg `json:"profile"`
}

// SummarizeProfileResponse represents the proto SummarizeProfileResponse message.
type SummarizeProfileResponse struct {
	Summary *SummaryMsg `json:"summary"`
}

// DescribeFormRequest represents the proto DescribeFormRequest message.
type DescribeFormRequest struct{}

// DescribeFormResponse represents the proto DescribeFormResponse message.
type DescribeFormResponse struct {
	Fields []FieldMsg `json:"fields"`
}

// PredictDefaultRisk handles a scoring request.
func (h *CreditRiskHandler) PredictDefaultRisk(ctx context.Context, req *PredictDefaultRiskRequest) (*PredictDefaultRiskResponse, error) {
	if req == nil || req.Profile == nil {
		return nil, status.Error(codes.InvalidArgument, "profile is required")
	}

	in, err := profileFromMsg(req.Profile)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	result, err := h.predict.Execute(ctx, in)
	if err != nil {
		return nil, h.toStatus(err, "failed to predict default risk")
	}

	h.logger.Info("default risk predicted",
		slog.String("prediction_id", result.ID.String()),
		slog.String("risk_tier", result.RiskTier),
	)

	return &PredictDefaultRiskResponse{Prediction: predictionToMsg(result)}, nil
}

// SummarizeProfile handles an input summary request.
func (h *CreditRiskHandler) SummarizeProfile(ctx context.Context, req *SummarizeProfileRequest) (*SummarizeProfileResponse, error) {
	if req == nil || req.Profile == nil {
		return nil, status.Error(codes.InvalidArgument, "profile is required")
	}

	in, err := profileFromMsg(req.Profile)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	summary, err := h.summarize.Execute(ctx, in)
	if err != nil {
		return nil, h.toStatus(err, "failed to summarize profile")
	}

	return &SummarizeProfileResponse{Summary: summaryToMsg(summary)}, nil
}

// DescribeForm lists the form inputs.
func (h *CreditRiskHandler) DescribeForm(_ context.Context, _ *DescribeFormRequest) (*DescribeFormResponse, error) {
	form := h.form.Execute()
	fields := make([]FieldMsg, 0, len(form.Fields))
	for _, f := range form.Fields {
		msg := FieldMsg{
			Name:    f.Name,
			Label:   f.Label,
			Group:   f.Group,
			Kind:    f.Kind,
			Min:     f.Min,
			Max:     f.Max,
			Default: f.Default,
			Step:    f.Step,
		}
		for _, o := range f.Options {
			msg.Options = append(msg.Options, FieldOptionMsg{Value: int32(o.Value), Label: o.Label})
		}
		fields = append(fields, msg)
	}
	return &DescribeFormResponse{Fields: fields}, nil
}

// toStatus maps use case errors onto gRPC status codes.
func (h *CreditRiskHandler) toStatus(err error, msg string) error {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		if fields := model.FieldErrors(err); len(fields) > 0 {
			parts := make([]string, 0, len(fields))
			for _, f := range fields {
				parts = append(parts, f.Error())
			}
			return status.Error(codes.InvalidArgument, strings.Join(parts, "; "))
		}
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request cancelled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	case errors.Is(err, model.ErrModelUnavailable):
		h.logger.Error(msg, slog.String("error", err.Error()))
		return status.Error(codes.Unavailable, "model unavailable")
	default:
		h.logger.Error(msg, slog.String("error", err.Error()))
		return status.Error(codes.Internal, "internal error")
	}
}

func profileFromMsg(p *ProfileMsg) (dto.PredictRequest, error) {
	limitBal, err := parseAmount("limit_bal", p.LimitBal)
	if err != nil {
		return dto.PredictRequest{}, err
	}
	billAmt, err := parseAmounts("bill_amt", p.BillAmt)
	if err != nil {
		return dto.PredictRequest{}, err
	}
	payAmt, err := parseAmounts("pay_amt", p.PayAmt)
	if err != nil {
		return dto.PredictRequest{}, err
	}

	payStatus := make([]int, len(p.PayStatus))
	for i, s := range p.PayStatus {
		payStatus[i] = int(s)
	}

	return dto.PredictRequest{
		LimitBal:  limitBal,
		Age:       int(p.Age),
		Sex:       int(p.Sex),
		Education: int(p.Education),
		Marriage:  int(p.Marriage),
		PayStatus: payStatus,
		BillAmt:   billAmt,
		PayAmt:    payAmt,
	}, nil
}

func parseAmount(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid %s: %q is not a decimal amount", field, s)
	}
	return d, nil
}

func parseAmounts(field string, values []string) ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, len(values))
	for i, s := range values {
		d, err := parseAmount(fmt.Sprintf("%s%d", field, i+1), s)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

// ProfileToMsg converts a request DTO into its wire form. Integer inputs that
// do not fit the 32-bit wire fields are rejected instead of truncated.
func ProfileToMsg(r dto.PredictRequest) (*ProfileMsg, error) {
	verr := &model.ValidationError{}
	narrow := func(field string, v int) int32 {
		if v < math.MinInt32 || v > math.MaxInt32 {
			verr.Fields = append(verr.Fields, model.FieldError{
				Field:  field,
				Reason: fmt.Sprintf("%d does not fit a 32-bit integer", v),
			})
			return 0
		}
		return int32(v)
	}

	msg := &ProfileMsg{
		LimitBal:  r.LimitBal.String(),
		Age:       narrow("age", r.Age),
		Sex:       narrow("sex", r.Sex),
		Education: narrow("education", r.Education),
		Marriage:  narrow("marriage", r.Marriage),
	}
	for i, s := range r.PayStatus {
		name := fmt.Sprintf("pay_status[%d]", i)
		if i < len(model.PayStatusFields) {
			name = model.PayStatusFields[i]
		}
		msg.PayStatus = append(msg.PayStatus, narrow(name, s))
	}
	if len(verr.Fields) > 0 {
		return nil, verr
	}
	for _, a := range r.BillAmt {
		msg.BillAmt = append(msg.BillAmt, a.String())
	}
	for _, a := range r.PayAmt {
		msg.PayAmt = append(msg.PayAmt, a.String())
	}
	return msg, nil
}

func summaryToMsg(s dto.InputSummary) *SummaryMsg {
	return &SummaryMsg{
		CreditLimit:  s.CreditLimit.String(),
		TotalBill:    s.TotalBill.String(),
		TotalPayment: s.TotalPayment.String(),
		Sex:          s.Sex,
		Education:    s.Education,
		Marriage:     s.Marriage,
	}
}

func predictionToMsg(p dto.PredictionResponse) *PredictionMsg {
	return &PredictionMsg{
		ID:                 p.ID.String(),
		RiskTier:           p.RiskTier,
		Headline:           p.Headline,
		Note:               p.Note,
		Probability:        p.Probability,
		ProbabilityDisplay: p.ProbabilityDisplay,
		SeMa:               int32(p.SexMarriageCode),
		Summary:            summaryToMsg(p.Summary),
		PredictedAt:        p.PredictedAt.UTC().Format(time.RFC3339Nano),
	}
}
