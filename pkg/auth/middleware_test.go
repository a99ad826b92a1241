package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestUnaryAuthInterceptor(t *testing.T) {
	svc := newTestJWTService(t, time.Minute)
	token, err := svc.GenerateToken(uuid.New(), []string{RoleAPIClient})
	require.NoError(t, err)
	viewer, err := svc.GenerateToken(uuid.New(), []string{"viewer"})
	require.NoError(t, err)

	interceptor := UnaryAuthInterceptor(svc, ScoringRoles, "/grpc.health.v1.Health/Check")
	handler := func(ctx context.Context, _ interface{}) (interface{}, error) {
		_, ok := ClaimsFromContext(ctx)
		return ok, nil
	}
	call := func(ctx context.Context, method string) (interface{}, error) {
		return interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: method}, handler)
	}
	withToken := func(tok string) context.Context {
		return metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer "+tok))
	}

	t.Run("skipped method", func(t *testing.T) {
		resp, err := call(context.Background(), "/grpc.health.v1.Health/Check")
		require.NoError(t, err)
		assert.Equal(t, false, resp)
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := call(context.Background(), "/creditrisk.v1.CreditRiskService/PredictDefaultRisk")
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("valid token attaches claims", func(t *testing.T) {
		resp, err := call(withToken(token), "/creditrisk.v1.CreditRiskService/PredictDefaultRisk")
		require.NoError(t, err)
		assert.Equal(t, true, resp)
	})

	t.Run("role missing", func(t *testing.T) {
		_, err := call(withToken(viewer), "/creditrisk.v1.CreditRiskService/PredictDefaultRisk")
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})
}

func TestHTTPMiddleware(t *testing.T) {
	svc := newTestJWTService(t, time.Minute)
	token, err := svc.GenerateToken(uuid.New(), []string{RoleCreditAnalyst})
	require.NoError(t, err)
	viewer, err := svc.GenerateToken(uuid.New(), []string{"viewer"})
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ClaimsFromContext(r.Context()); ok {
			w.Header().Set("X-Authenticated", "yes")
		}
		w.WriteHeader(http.StatusNoContent)
	})
	h := HTTPMiddleware(svc, ScoringRoles, "/healthz")(next)

	tests := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{"skipped path", "/healthz", "", http.StatusNoContent},
		{"missing token", "/api/v1/predictions", "", http.StatusUnauthorized},
		{"bad token", "/api/v1/predictions", "Bearer nope", http.StatusUnauthorized},
		{"wrong role", "/api/v1/predictions", "Bearer " + viewer, http.StatusForbidden},
		{"valid token", "/api/v1/predictions", "Bearer " + token, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}

	t.Run("claims reach the handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/predictions", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, "yes", rec.Header().Get("X-Authenticated"))
	})
}
