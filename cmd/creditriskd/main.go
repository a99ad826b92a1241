package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/bibbank/creditrisk/internal/application/dto"
	"github.com/bibbank/creditrisk/internal/application/usecase"
	"github.com/bibbank/creditrisk/internal/domain/model"
	"github.com/bibbank/creditrisk/internal/domain/port"
	"github.com/bibbank/creditrisk/internal/domain/service"
	"github.com/bibbank/creditrisk/internal/infrastructure/config"
	"github.com/bibbank/creditrisk/internal/infrastructure/metrics"
	"github.com/bibbank/creditrisk/internal/infrastructure/ml"
	grpcpresentation "github.com/bibbank/creditrisk/internal/presentation/grpc"
	"github.com/bibbank/creditrisk/internal/presentation/rest"
	"github.com/bibbank/creditrisk/pkg/auth"
	"github.com/bibbank/creditrisk/pkg/observability"
)

func main() {
	if err := run(); err != nil {
		slog.Error("credit-risk-service failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()

	logger := observability.InitLogger(observability.LogConfig{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: cfg.ServiceName,
	})

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Info("starting credit-risk-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
		"environment", cfg.Environment,
	)

	// Initialize tracing.
	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfig{
		ServiceName: cfg.ServiceName,
		Endpoint:    cfg.OTLPEndpoint,
		Insecure:    true,
	})
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
		shutdownTracing = func(context.Context) error { return nil }
	}

	// Initialize metrics.
	m, err := observability.InitMetrics(observability.MetricsConfig{ServiceName: cfg.ServiceName})
	if err != nil {
		return fmt.Errorf("failed to initialize metrics: %w", err)
	}
	recorder, err := metrics.NewPredictionRecorder(m.Provider)
	if err != nil {
		return fmt.Errorf("failed to create prediction recorder: %w", err)
	}

	// Load the classifier once; it is shared read-only by every request.
	scoringModel, err := loadModel(cfg, logger)
	if err != nil {
		return err
	}

	// Wire domain services.
	encoder := service.NewFeatureEncoder()
	classifier, err := service.NewRiskClassifier(scoringModel, cfg.Thresholds())
	if err != nil {
		return fmt.Errorf("failed to create risk classifier: %w", err)
	}

	// Wire use cases.
	predictUC := usecase.NewPredictDefaultRisk(encoder, classifier, recorder)
	summarizeUC := usecase.NewSummarizeProfile()
	formUC := usecase.NewDescribeForm()

	jwtSvc, err := newJWTService(cfg)
	if err != nil {
		return err
	}
	if jwtSvc == nil {
		logger.Warn("JWT_SECRET and JWT_PUBLIC_KEY_FILE unset, authentication disabled")
	}

	// gRPC server.
	grpcHandler := grpcpresentation.NewCreditRiskHandler(predictUC, summarizeUC, formUC, logger)
	grpcServer, err := grpcpresentation.NewServer(grpcHandler, logger, grpcpresentation.ServerOptions{
		JWT:         jwtSvc,
		TLSCertFile: cfg.TLSCertFile,
		TLSKeyFile:  cfg.TLSKeyFile,
		Reflection:  cfg.Reflection,
	})
	if err != nil {
		return fmt.Errorf("failed to create gRPC server: %w", err)
	}

	// HTTP server.
	healthHandler := rest.NewHealthHandler(cfg.ServiceName, logger, map[string]rest.ReadinessCheck{
		"model": modelProbe(encoder, classifier),
	})
	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	}
	router := rest.NewRouter(rest.RouterConfig{
		Health:     healthHandler,
		Prediction: rest.NewPredictionHandler(predictUC, summarizeUC, formUC, logger),
		Metrics:    m.Handler,
		JWT:        jwtSvc,
		Limiter:    limiter,
		Logger:     logger,
	})

	httpServer := &http.Server{
		Addr:         cfg.HTTPAddress(),
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := grpcServer.Serve(cfg.GRPCAddress()); err != nil {
			return fmt.Errorf("gRPC server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("HTTP server starting", "address", cfg.HTTPAddress())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down credit-risk-service")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer shutdownCancel()

		grpcServer.GracefulStop()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", "error", err)
		}
		if err := m.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics shutdown error", "error", err)
		}
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Error("tracing shutdown error", "error", err)
		}
		return nil
	})

	logger.Info("credit-risk-service started",
		"grpc_address", cfg.GRPCAddress(),
		"http_address", cfg.HTTPAddress(),
	)

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("credit-risk-service stopped")
	return nil
}

func loadModel(cfg *config.Config, logger *slog.Logger) (port.ScoringModel, error) {
	if cfg.ModelStub {
		logger.Warn("MODEL_STUB enabled, every profile scores the same probability",
			"probability", cfg.StubProbability,
		)
		return ml.NewStubModel(logger, cfg.StubProbability), nil
	}

	loaded, err := ml.LoadModel(cfg.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load model: %w", err)
	}
	logger.Info("model loaded",
		"path", cfg.ModelPath,
		"kind", loaded.Kind(),
		"version", loaded.Version(),
	)
	return loaded, nil
}

func newJWTService(cfg *config.Config) (*auth.JWTService, error) {
	if !cfg.AuthEnabled() {
		return nil, nil
	}

	jwtCfg := auth.JWTConfig{Secret: cfg.JWTSecret, Issuer: cfg.JWTIssuer}
	if cfg.JWTKeyFile != "" {
		pem, err := auth.LoadKeyFromFile(cfg.JWTKeyFile)
		if err != nil {
			return nil, err
		}
		jwtCfg.PublicKeyPEM = string(pem)
	}

	svc, err := auth.NewJWTService(jwtCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}
	return svc, nil
}

// modelProbe scores the default form so /readyz fails when the model cannot answer.
func modelProbe(encoder *service.FeatureEncoder, classifier *service.RiskClassifier) rest.ReadinessCheck {
	return func() error {
		profile, err := model.NewCustomerProfile(dto.DefaultPredictRequest().ToParams())
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_, err = classifier.Classify(ctx, encoder.Encode(profile))
		return err
	}
}
