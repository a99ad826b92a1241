package grpc

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/bibbank/creditrisk/internal/application/dto"
	"github.com/bibbank/creditrisk/internal/domain/model"
	"github.com/bibbank/creditrisk/internal/domain/valueobject"
)

// ClientOptions configures a connection to a remote CreditRiskService.
type ClientOptions struct {
	Creds credentials.TransportCredentials // nil dials without TLS
	Token string                           // bearer token sent on every call
}

// Client calls CreditRiskService with the JSON codec.
type Client struct {
	conn  *grpc.ClientConn
	token string
}

// Dial connects to the service at addr.
func Dial(addr string, opts ClientOptions) (*Client, error) {
	creds := opts.Creds
	if creds == nil {
		creds = insecure.NewCredentials()
	}
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("dial credit risk service at %s: %w", addr, err)
	}
	return &Client{conn: conn, token: opts.Token}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// PredictDefaultRisk scores req remotely.
func (c *Client) PredictDefaultRisk(ctx context.Context, req dto.PredictRequest) (*PredictionMsg, error) {
	profile, err := ProfileToMsg(req)
	if err != nil {
		return nil, err
	}
	var resp PredictDefaultRiskResponse
	if err := c.invoke(ctx, MethodPredictDefaultRisk, &PredictDefaultRiskRequest{Profile: profile}, &resp); err != nil {
		return nil, err
	}
	return resp.Prediction, nil
}

// SummarizeProfile summarizes req remotely.
func (c *Client) SummarizeProfile(ctx context.Context, req dto.PredictRequest) (*SummaryMsg, error) {
	profile, err := ProfileToMsg(req)
	if err != nil {
		return nil, err
	}
	var resp SummarizeProfileResponse
	if err := c.invoke(ctx, MethodSummarizeProfile, &SummarizeProfileRequest{Profile: profile}, &resp); err != nil {
		return nil, err
	}
	return resp.Summary, nil
}

// DescribeForm fetches the form description.
func (c *Client) DescribeForm(ctx context.Context) ([]FieldMsg, error) {
	var resp DescribeFormResponse
	if err := c.invoke(ctx, MethodDescribeForm, &DescribeFormRequest{}, &resp); err != nil {
		return nil, err
	}
	return resp.Fields, nil
}

func (c *Client) invoke(ctx context.Context, method string, req, resp interface{}) error {
	if c.token != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+c.token)
	}
	return c.conn.Invoke(ctx, method, req, resp, jsonCallOption())
}

// SummaryFromMsg converts a wire summary back into the DTO.
func SummaryFromMsg(m *SummaryMsg) (dto.InputSummary, error) {
	if m == nil {
		return dto.InputSummary{}, fmt.Errorf("summary missing from response")
	}
	limit, err := parseAmount("credit_limit", m.CreditLimit)
	if err != nil {
		return dto.InputSummary{}, err
	}
	bill, err := parseAmount("total_bill", m.TotalBill)
	if err != nil {
		return dto.InputSummary{}, err
	}
	paid, err := parseAmount("total_payment", m.TotalPayment)
	if err != nil {
		return dto.InputSummary{}, err
	}
	return dto.InputSummary{
		CreditLimit:  limit,
		TotalBill:    bill,
		TotalPayment: paid,
		Sex:          m.Sex,
		Education:    m.Education,
		Marriage:     m.Marriage,
	}, nil
}

// PredictionFromMsg converts a wire prediction back into the DTO.
func PredictionFromMsg(m *PredictionMsg) (dto.PredictionResponse, error) {
	if m == nil {
		return dto.PredictionResponse{}, fmt.Errorf("prediction missing from response")
	}
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return dto.PredictionResponse{}, fmt.Errorf("invalid prediction id %q: %w", m.ID, err)
	}
	at, err := time.Parse(time.RFC3339Nano, m.PredictedAt)
	if err != nil {
		return dto.PredictionResponse{}, fmt.Errorf("invalid predicted_at %q: %w", m.PredictedAt, err)
	}
	tier, err := valueobject.RiskTierFromString(m.RiskTier)
	if err != nil {
		return dto.PredictionResponse{}, err
	}
	summary, err := SummaryFromMsg(m.Summary)
	if err != nil {
		return dto.PredictionResponse{}, err
	}
	return dto.PredictionResponse{
		ID:                 id,
		RiskTier:           tier.String(),
		Headline:           m.Headline,
		Note:               m.Note,
		Probability:        m.Probability,
		ProbabilityDisplay: m.ProbabilityDisplay,
		SexMarriageCode:    int(m.SeMa),
		Summary:            summary,
		PredictedAt:        at,
	}, nil
}

// FieldsFromMsg converts wire form fields back into domain field specs.
func FieldsFromMsg(msgs []FieldMsg) []model.FieldSpec {
	fields := make([]model.FieldSpec, 0, len(msgs))
	for _, m := range msgs {
		f := model.FieldSpec{
			Name:    m.Name,
			Label:   m.Label,
			Group:   m.Group,
			Kind:    m.Kind,
			Min:     m.Min,
			Max:     m.Max,
			Default: m.Default,
			Step:    m.Step,
		}
		for _, o := range m.Options {
			f.Options = append(f.Options, model.FieldOption{Value: int(o.Value), Label: o.Label})
		}
		fields = append(fields, f)
	}
	return fields
}
