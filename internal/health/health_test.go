package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth_NoCheckers(t *testing.T) {
	m := NewManager("v1.0.0")
	resp := m.Health(context.Background(), false)

	assert.Equal(t, StatusHealthy, resp.Status)
	assert.Equal(t, "v1.0.0", resp.Version)
	assert.Nil(t, resp.Checks)
}

func TestHealth_VerboseAggregatesCheckers(t *testing.T) {
	m := NewManager("v1.0.0")
	m.RegisterChecker(NewStaticChecker("ok", CheckResult{Status: StatusHealthy}))
	m.RegisterChecker(NewStaticChecker("bad", CheckResult{Status: StatusUnhealthy, Error: "down"}))

	resp := m.Health(context.Background(), true)
	assert.Equal(t, StatusUnhealthy, resp.Status)
	require.Len(t, resp.Checks, 2)
	assert.Equal(t, StatusUnhealthy, resp.Checks["bad"].Status)
}

func TestReady_FailingCheckerFlipsReady(t *testing.T) {
	m := NewManager("v1.0.0")
	m.RegisterChecker(NewStaticChecker("dispatcher", CheckResult{Status: StatusHealthy}))
	resp := m.Ready(context.Background(), false)
	assert.True(t, resp.Ready)

	m.RegisterChecker(NewStaticChecker("broken", CheckResult{Status: StatusUnhealthy}))
	resp = m.Ready(context.Background(), false)
	assert.False(t, resp.Ready)
	assert.Equal(t, StatusUnhealthy, resp.Status)
}

func TestServeHealth_Always200(t *testing.T) {
	m := NewManager("v1.0.0")
	m.RegisterChecker(NewStaticChecker("bad", CheckResult{Status: StatusUnhealthy}))

	req := httptest.NewRequest(http.MethodGet, "/healthz?verbose=true", nil)
	rec := httptest.NewRecorder()
	m.ServeHealth(rec, req)

	// Liveness stays 200 even with failing components.
	assert.Equal(t, http.StatusOK, rec.Code)

	var body HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, StatusUnhealthy, body.Status)
}

func TestServeReady_503WhenNotReady(t *testing.T) {
	m := NewManager("v1.0.0")
	m.RegisterChecker(NewStaticChecker("bad", CheckResult{Status: StatusUnhealthy}))

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()
	m.ServeReady(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
