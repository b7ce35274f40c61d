package service

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsEndpointOutput(t *testing.T) {
	metrics := NewMetricsService()
	metrics.ObserveHTTPRequest(http.MethodGet, "/api/classes", http.StatusOK, 5*time.Millisecond)

	_, err := metrics.ObserveAICall(func() (string, error) {
		return "", errors.New("boom")
	})
	require.Error(t, err)

	w := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `http_requests_total{method="GET",path="/api/classes",status="200"} 1`)
	assert.Contains(t, body, "assistant_call_failures_total 1")
}

func TestObserveAICallNilService(t *testing.T) {
	var metrics *MetricsService

	reply, err := metrics.ObserveAICall(func() (string, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", reply)
}
