package grpc

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/bibbank/creditrisk/internal/application/usecase"
	"github.com/bibbank/creditrisk/internal/domain/model"
	"github.com/bibbank/creditrisk/internal/domain/port"
	"github.com/bibbank/creditrisk/internal/domain/service"
	"github.com/bibbank/creditrisk/internal/domain/valueobject"
	"github.com/bibbank/creditrisk/internal/infrastructure/ml"
	"github.com/bibbank/creditrisk/pkg/auth"
)

// --- Mock implementations ---

type failingModel struct {
	err error
}

func (m failingModel) Score(context.Context, model.FeatureVector) (float64, error) {
	return 0, m.err
}

// --- Helpers ---

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func buildTestHandler(t *testing.T, scorer port.ScoringModel) *CreditRiskHandler {
	t.Helper()
	classifier, err := service.NewRiskClassifier(scorer, valueobject.DefaultThresholds())
	require.NoError(t, err)
	return NewCreditRiskHandler(
		usecase.NewPredictDefaultRisk(service.NewFeatureEncoder(), classifier, nil),
		usecase.NewSummarizeProfile(),
		usecase.NewDescribeForm(),
		testLogger(),
	)
}

func validProfileMsg() *ProfileMsg {
	return &ProfileMsg{
		LimitBal:  "20000",
		Age:       30,
		Sex:       1,
		Education: 2,
		Marriage:  1,
		PayStatus: []int32{0, 0, 0, 0, 0, 0},
		BillAmt:   []string{"1000", "900", "800", "700", "600", "500"},
		PayAmt:    []string{"100", "100", "100", "100", "100", "100"},
	}
}

// --- Tests ---

func TestPredictDefaultRisk_Success(t *testing.T) {
	h := buildTestHandler(t, ml.NewStubModel(testLogger(), 0.05))

	resp, err := h.PredictDefaultRisk(context.Background(), &PredictDefaultRiskRequest{Profile: validProfileMsg()})

	require.NoError(t, err)
	require.NotNil(t, resp.Prediction)
	assert.Equal(t, "LOW", resp.Prediction.RiskTier)
	assert.Equal(t, "5.00%", resp.Prediction.ProbabilityDisplay)
	assert.Equal(t, int32(1), resp.Prediction.SeMa)
	assert.Equal(t, "4500", resp.Prediction.Summary.TotalBill)
	assert.Equal(t, "600", resp.Prediction.Summary.TotalPayment)
	_, err = uuid.Parse(resp.Prediction.ID)
	assert.NoError(t, err)
	_, err = time.Parse(time.RFC3339Nano, resp.Prediction.PredictedAt)
	assert.NoError(t, err)
}

func TestPredictDefaultRisk_Errors(t *testing.T) {
	tests := []struct {
		name    string
		scorer  port.ScoringModel
		profile func() *ProfileMsg
		want    codes.Code
		message string
	}{
		{
			name:    "missing profile",
			scorer:  ml.NewStubModel(testLogger(), 0.05),
			profile: func() *ProfileMsg { return nil },
			want:    codes.InvalidArgument,
		},
		{
			name:   "malformed amount",
			scorer: ml.NewStubModel(testLogger(), 0.05),
			profile: func() *ProfileMsg {
				p := validProfileMsg()
				p.BillAmt[2] = "lots"
				return p
			},
			want:    codes.InvalidArgument,
			message: "bill_amt3",
		},
		{
			name:   "out of range age",
			scorer: ml.NewStubModel(testLogger(), 0.05),
			profile: func() *ProfileMsg {
				p := validProfileMsg()
				p.Age = 101
				return p
			},
			want:    codes.InvalidArgument,
			message: "age",
		},
		{
			name:   "short history",
			scorer: ml.NewStubModel(testLogger(), 0.05),
			profile: func() *ProfileMsg {
				p := validProfileMsg()
				p.PayStatus = p.PayStatus[:5]
				return p
			},
			want:    codes.InvalidArgument,
			message: "pay_status",
		},
		{
			name:    "model failure",
			scorer:  failingModel{err: fmt.Errorf("backend crashed")},
			profile: validProfileMsg,
			want:    codes.Internal,
		},
		{
			name:    "model unavailable",
			scorer:  failingModel{err: model.ErrModelUnavailable},
			profile: validProfileMsg,
			want:    codes.Unavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := buildTestHandler(t, tt.scorer)

			_, err := h.PredictDefaultRisk(context.Background(), &PredictDefaultRiskRequest{Profile: tt.profile()})

			require.Error(t, err)
			st, ok := status.FromError(err)
			require.True(t, ok)
			assert.Equal(t, tt.want, st.Code())
			if tt.message != "" {
				assert.Contains(t, st.Message(), tt.message)
			}
		})
	}
}

func TestSummarizeProfile(t *testing.T) {
	h := buildTestHandler(t, ml.NewStubModel(testLogger(), 0.05))

	resp, err := h.SummarizeProfile(context.Background(), &SummarizeProfileRequest{Profile: validProfileMsg()})

	require.NoError(t, err)
	assert.Equal(t, "20000", resp.Summary.CreditLimit)
	assert.Equal(t, "Male", resp.Summary.Sex)
	assert.Equal(t, "University", resp.Summary.Education)
	assert.Equal(t, "Married", resp.Summary.Marriage)

	_, err = h.SummarizeProfile(context.Background(), nil)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestDescribeForm(t *testing.T) {
	h := buildTestHandler(t, ml.NewStubModel(testLogger(), 0.05))

	resp, err := h.DescribeForm(context.Background(), &DescribeFormRequest{})

	require.NoError(t, err)
	require.Len(t, resp.Fields, len(model.FormFields()))
	assert.Equal(t, "limit_bal", resp.Fields[0].Name)
	for _, f := range resp.Fields {
		if f.Name == "sex" {
			assert.Len(t, f.Options, 2)
		}
	}
}

func TestServer_EndToEnd(t *testing.T) {
	jwtSvc, err := auth.NewJWTService(auth.JWTConfig{Secret: "grpc-test-secret", Issuer: "bib-test", Expiration: time.Minute})
	require.NoError(t, err)

	srv, err := NewServer(buildTestHandler(t, ml.NewStubModel(testLogger(), 0.75)), testLogger(), ServerOptions{JWT: jwtSvc})
	require.NoError(t, err)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = srv.ServeListener(lis) }()
	t.Cleanup(srv.GracefulStop)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t.Run("health check needs no token", func(t *testing.T) {
		client, err := Dial(lis.Addr().String(), ClientOptions{})
		require.NoError(t, err)
		defer client.Close()

		resp, err := healthpb.NewHealthClient(client.conn).Check(ctx, &healthpb.HealthCheckRequest{Service: HealthServiceName})
		require.NoError(t, err)
		assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)
	})

	t.Run("prediction without token is rejected", func(t *testing.T) {
		client, err := Dial(lis.Addr().String(), ClientOptions{})
		require.NoError(t, err)
		defer client.Close()

		_, err = client.PredictDefaultRisk(ctx, defaultRequest())
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("prediction with token", func(t *testing.T) {
		token, err := jwtSvc.GenerateToken(uuid.New(), []string{auth.RoleAPIClient})
		require.NoError(t, err)
		client, err := Dial(lis.Addr().String(), ClientOptions{Token: token})
		require.NoError(t, err)
		defer client.Close()

		prediction, err := client.PredictDefaultRisk(ctx, defaultRequest())
		require.NoError(t, err)
		assert.Equal(t, "HIGH", prediction.RiskTier)
		assert.Equal(t, "75.00%", prediction.ProbabilityDisplay)

		summary, err := client.SummarizeProfile(ctx, defaultRequest())
		require.NoError(t, err)
		assert.Equal(t, "20000", summary.CreditLimit)

		fields, err := client.DescribeForm(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, fields)
	})
}
