package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rtavil/salespipe/internal/logging"
	"github.com/rtavil/salespipe/pkg/adapters/memory"
	"github.com/rtavil/salespipe/pkg/observability"
	"github.com/rtavil/salespipe/pkg/session"
	"github.com/rtavil/salespipe/pkg/tools"
	"github.com/rtavil/salespipe/pkg/workflow"
)

func newTestApp() *app {
	store := session.New(memory.NewStore())
	registry := prometheus.NewRegistry()
	recorder := observability.NewRecorder(registry)
	pipeline := workflow.New(store,
		tools.NewResearcher(tools.WithSeed(1)),
		tools.NewGenerator(),
		workflow.WithRecorder(recorder),
	)
	return &app{
		logger:   logging.NewNop(),
		store:    store,
		pipeline: pipeline,
		registry: registry,
	}
}

func TestRouter_Run(t *testing.T) {
	router := newRouter(newTestApp())

	req := httptest.NewRequest(http.MethodPost, "/run",
		strings.NewReader(`{"company": "Acme Corp", "contact": "Alice"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result workflow.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.NotEmpty(t, result.SessionID)
	assert.Equal(t, "Acme Corp", result.Research.CompanyName)
	assert.NotEmpty(t, result.Outreach.Outreach.Email)
}

func TestRouter_RunRejectsBadBody(t *testing.T) {
	router := newRouter(newTestApp())

	req := httptest.NewRequest(http.MethodPost, "/run", strings.NewReader(`{"company": ""}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_SessionsAndMetrics(t *testing.T) {
	a := newTestApp()
	router := newRouter(a)

	// Run once so there is a session and some metrics.
	req := httptest.NewRequest(http.MethodPost, "/run",
		strings.NewReader(`{"company": "Acme Corp", "contact": "Alice"}`))
	router.ServeHTTP(httptest.NewRecorder(), req)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sessions", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var sessions []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sessions))
	assert.Len(t, sessions, 1)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "salespipe_tool_calls_total")
}
