package cli

import (
	"context"
	"fmt"
	"log/slog"

	urfave "github.com/urfave/cli/v3"
	"google.golang.org/grpc/credentials"

	"github.com/bibbank/creditrisk/internal/application/dto"
	"github.com/bibbank/creditrisk/internal/application/usecase"
	"github.com/bibbank/creditrisk/internal/domain/model"
	"github.com/bibbank/creditrisk/internal/domain/service"
	"github.com/bibbank/creditrisk/internal/domain/valueobject"
	"github.com/bibbank/creditrisk/internal/infrastructure/ml"
	grpcpresentation "github.com/bibbank/creditrisk/internal/presentation/grpc"
	"github.com/bibbank/creditrisk/pkg/tlsutil"
)

// backend answers the three form operations either in-process or over gRPC.
type backend interface {
	Predict(ctx context.Context, req dto.PredictRequest) (dto.PredictionResponse, error)
	Summarize(ctx context.Context, req dto.PredictRequest) (dto.InputSummary, error)
	Form(ctx context.Context) ([]model.FieldSpec, error)
	Close() error
}

func newBackend(cmd *urfave.Command) (backend, error) {
	if addr := cmd.String(serverFlag); addr != "" {
		return newRemoteBackend(cmd, addr)
	}
	return &localBackend{
		modelPath: cmd.String(modelFlag),
		thresholds: valueobject.Thresholds{
			Medium: cmd.Float64(mediumThresholdFlag),
			High:   cmd.Float64(highThresholdFlag),
		},
	}, nil
}

// localBackend loads the model only when a prediction is requested.
type localBackend struct {
	modelPath  string
	thresholds valueobject.Thresholds
}

func (b *localBackend) Predict(ctx context.Context, req dto.PredictRequest) (dto.PredictionResponse, error) {
	if _, err := model.NewCustomerProfile(req.ToParams()); err != nil {
		return dto.PredictionResponse{}, fmt.Errorf("failed to validate profile: %w", err)
	}

	m, err := ml.LoadModel(b.modelPath)
	if err != nil {
		return dto.PredictionResponse{}, err
	}
	slog.Debug("model loaded", "path", b.modelPath, "kind", m.Kind(), "version", m.Version())

	classifier, err := service.NewRiskClassifier(m, b.thresholds)
	if err != nil {
		return dto.PredictionResponse{}, err
	}
	return usecase.NewPredictDefaultRisk(service.NewFeatureEncoder(), classifier, nil).Execute(ctx, req)
}

func (b *localBackend) Summarize(ctx context.Context, req dto.PredictRequest) (dto.InputSummary, error) {
	return usecase.NewSummarizeProfile().Execute(ctx, req)
}

func (b *localBackend) Form(context.Context) ([]model.FieldSpec, error) {
	return usecase.NewDescribeForm().Execute().Fields, nil
}

func (b *localBackend) Close() error { return nil }

type remoteBackend struct {
	client *grpcpresentation.Client
}

func newRemoteBackend(cmd *urfave.Command, addr string) (*remoteBackend, error) {
	var creds credentials.TransportCredentials
	if ca := cmd.String(caFlag); ca != "" {
		c, err := tlsutil.ClientTLSConfig(ca, cmd.String(serverNameFlag))
		if err != nil {
			return nil, fmt.Errorf("loading CA certificate: %w", err)
		}
		creds = c
	}

	client, err := grpcpresentation.Dial(addr, grpcpresentation.ClientOptions{
		Creds: creds,
		Token: cmd.String(tokenFlag),
	})
	if err != nil {
		return nil, err
	}
	slog.Debug("using remote scoring service", "addr", addr, "tls", creds != nil)
	return &remoteBackend{client: client}, nil
}

func (b *remoteBackend) Predict(ctx context.Context, req dto.PredictRequest) (dto.PredictionResponse, error) {
	msg, err := b.client.PredictDefaultRisk(ctx, req)
	if err != nil {
		return dto.PredictionResponse{}, err
	}
	return grpcpresentation.PredictionFromMsg(msg)
}

func (b *remoteBackend) Summarize(ctx context.Context, req dto.PredictRequest) (dto.InputSummary, error) {
	msg, err := b.client.SummarizeProfile(ctx, req)
	if err != nil {
		return dto.InputSummary{}, err
	}
	return grpcpresentation.SummaryFromMsg(msg)
}

func (b *remoteBackend) Form(ctx context.Context) ([]model.FieldSpec, error) {
	msgs, err := b.client.DescribeForm(ctx)
	if err != nil {
		return nil, err
	}
	return grpcpresentation.FieldsFromMsg(msgs), nil
}

func (b *remoteBackend) Close() error { return b.client.Close() }
