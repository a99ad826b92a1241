package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/bibbank/creditrisk/internal/domain/valueobject"
)

// Config holds all configuration for the credit risk service.
type Config struct {
	GRPCPort     string
	HTTPPort     string
	ModelPath    string
	Environment  string
	LogLevel     string
	LogFormat    string
	JWTSecret    string
	JWTKeyFile   string
	JWTIssuer    string
	TLSCertFile  string
	TLSKeyFile   string
	OTLPEndpoint string
	ServiceName  string

	MediumThreshold float64
	HighThreshold   float64
	StubProbability float64
	RateLimit       float64
	RateBurst       int
	ModelStub       bool
	Reflection      bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		GRPCPort:        getEnv("GRPC_PORT", "8091"),
		HTTPPort:        getEnv("HTTP_PORT", "9091"),
		ModelPath:       getEnv("MODEL_PATH", "models/credit_default_rf.json"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		JWTKeyFile:      getEnv("JWT_PUBLIC_KEY_FILE", ""),
		JWTIssuer:       getEnv("JWT_ISSUER", "bib-identity"),
		TLSCertFile:     getEnv("GRPC_TLS_CERT_FILE", ""),
		TLSKeyFile:      getEnv("GRPC_TLS_KEY_FILE", ""),
		OTLPEndpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		ServiceName:     "credit-risk-service",
		MediumThreshold: getEnvFloat("RISK_MEDIUM_THRESHOLD", valueobject.DefaultMediumThreshold),
		HighThreshold:   getEnvFloat("RISK_HIGH_THRESHOLD", valueobject.DefaultHighThreshold),
		StubProbability: getEnvFloat("MODEL_STUB_PROBABILITY", 0.05),
		ModelStub:       getEnvBool("MODEL_STUB", false),
		RateLimit:       getEnvFloat("HTTP_RATE_LIMIT", 0),
		RateBurst:       getEnvInt("HTTP_RATE_BURST", 20),
		Reflection:      getEnvBool("GRPC_REFLECTION", false),
	}
}

// Validate reports configuration that would prevent the service from starting.
func (c *Config) Validate() error {
	var errs []error
	if c.ModelStub {
		if c.Environment == "production" {
			errs = append(errs, errors.New("MODEL_STUB is not allowed in production"))
		}
		if math.IsNaN(c.StubProbability) || c.StubProbability < 0 || c.StubProbability > 1 {
			errs = append(errs, errors.New("MODEL_STUB_PROBABILITY must be within [0, 1]"))
		}
	} else if c.ModelPath == "" {
		errs = append(errs, errors.New("MODEL_PATH is required"))
	}
	if err := c.Thresholds().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("RISK_*_THRESHOLD: %w", err))
	}
	if (c.TLSCertFile == "") != (c.TLSKeyFile == "") {
		errs = append(errs, errors.New("GRPC_TLS_CERT_FILE and GRPC_TLS_KEY_FILE must be set together"))
	}
	if c.RateLimit < 0 {
		errs = append(errs, errors.New("HTTP_RATE_LIMIT must not be negative"))
	}
	if c.RateLimit > 0 && c.RateBurst < 1 {
		errs = append(errs, errors.New("HTTP_RATE_BURST must be at least 1 when rate limiting is enabled"))
	}
	return errors.Join(errs...)
}

// Thresholds returns the configured tier boundaries.
func (c *Config) Thresholds() valueobject.Thresholds {
	return valueobject.Thresholds{Medium: c.MediumThreshold, High: c.HighThreshold}
}

// AuthEnabled reports whether bearer tokens are required.
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != "" || c.JWTKeyFile != ""
}

// TLSEnabled reports whether the gRPC listener serves TLS.
func (c *Config) TLSEnabled() bool {
	return c.TLSCertFile != "" && c.TLSKeyFile != ""
}

// GRPCAddress returns the full gRPC listen address.
func (c *Config) GRPCAddress() string {
	return fmt.Sprintf(":%s", c.GRPCPort)
}

// HTTPAddress returns the full HTTP listen address.
func (c *Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.HTTPPort)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
