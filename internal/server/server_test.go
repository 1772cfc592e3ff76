package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestServer_Health(t *testing.T) {
	tests := []struct {
		name           string
		health         HealthChecker
		expectedStatus int
	}{
		{name: "no checker", health: nil, expectedStatus: http.StatusOK},
		{name: "reachable", health: pingFunc(func(context.Context) error { return nil }), expectedStatus: http.StatusOK},
		{
			name:           "unreachable",
			health:         pingFunc(func(context.Context) error { return errors.New("refused") }),
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New("127.0.0.1:0", tc.health, "release", nil)

			resp := httptest.NewRecorder()
			s.Engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))
			require.Equal(t, tc.expectedStatus, resp.Code)
		})
	}
}

func TestServer_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "gamestats_test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	s := New("127.0.0.1:0", nil, "release", reg)

	resp := httptest.NewRecorder()
	s.Engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), "gamestats_test_total 1")
}
