package testutil

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/charlesng35/marketadmin/internal/api"
	"github.com/charlesng35/marketadmin/internal/app"
	sharedtestutil "github.com/charlesng35/marketadmin/internal/database/testutil"
	"github.com/charlesng35/marketadmin/internal/monitoring"
	"github.com/charlesng35/marketadmin/internal/monitoring/checks"
	"github.com/charlesng35/marketadmin/internal/notifications"
	"github.com/charlesng35/marketadmin/pkg/response"
)

// Env encapsulates a fully-wired API instance backed by a seeded in-memory database.
type Env struct {
	T      *testing.T
	DB     *gorm.DB
	Hub    *notifications.Hub
	Router *gin.Engine
}

// Config returns the configuration handler tests run with.
func Config() *app.Config {
	cfg := &app.Config{}
	cfg.Server.Port = 8000
	cfg.Monitoring.Prometheus.Enabled = true
	cfg.Monitoring.Prometheus.Endpoint = "/metrics"
	cfg.Monitoring.Health.Enabled = true
	cfg.Features.Notifications.Enabled = true
	cfg.Features.Notifications.Broadcast = true
	cfg.Marketplace.Fees.PlatformPercent = 5
	cfg.Marketplace.Fees.TransactionFee = 50
	return cfg
}

// NewEnv provisions a fresh handler test environment with migrations and seed data applied.
func NewEnv(t *testing.T) *Env {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db := sharedtestutil.MustOpenTestDB(t, sharedtestutil.WithSeedData())
	hub := notifications.NewHub()

	health := monitoring.NewHealthManager()
	health.RegisterLiveness(checks.Database(db, 0))
	health.RegisterReadiness(checks.Database(db, 0))

	router, err := api.NewRouter(api.Dependencies{
		DB:     db,
		Config: Config(),
		Hub:    hub,
		Health: health,
	})
	require.NoError(t, err)

	return &Env{T: t, DB: db, Hub: hub, Router: router}
}

// APIResponse represents the canonical API envelope returned by handlers.
type APIResponse struct {
	Success bool                `json:"success"`
	Data    json.RawMessage     `json:"data"`
	Error   *response.ErrorInfo `json:"error"`
	Meta    *response.Meta      `json:"meta"`
}

// DecodeResponse parses the standard API response object from a recorder.
func DecodeResponse(t *testing.T, w *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

// DecodeInto unmarshals the data payload into the provided destination.
func DecodeInto[T any](t *testing.T, raw json.RawMessage, dest *T) {
	t.Helper()
	if dest == nil {
		t.Fatal("destination must not be nil")
	}
	require.NoError(t, json.Unmarshal(raw, dest))
}

// Request executes an HTTP request against the test router. Non-nil bodies are JSON encoded;
// a string body is sent verbatim.
func (e *Env) Request(method, path string, body any) *httptest.ResponseRecorder {
	e.T.Helper()

	var reader *bytes.Reader
	switch v := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(v))
	default:
		payload, err := json.Marshal(v)
		require.NoError(e.T, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, req)
	return w
}

// MustSucceed executes the request, asserts the status and decodes the data payload into dest.
func MustSucceed[T any](e *Env, status int, method, path string, body any, dest *T) APIResponse {
	e.T.Helper()

	w := e.Request(method, path, body)
	require.Equal(e.T, status, w.Code, w.Body.String())

	resp := DecodeResponse(e.T, w)
	require.True(e.T, resp.Success, w.Body.String())
	if dest != nil {
		DecodeInto(e.T, resp.Data, dest)
	}
	return resp
}

// MustFail executes the request and asserts the status and error code.
func MustFail(e *Env, status int, code, method, path string, body any) APIResponse {
	e.T.Helper()

	w := e.Request(method, path, body)
	require.Equal(e.T, status, w.Code, w.Body.String())

	resp := DecodeResponse(e.T, w)
	require.False(e.T, resp.Success)
	require.NotNil(e.T, resp.Error)
	require.Equal(e.T, code, resp.Error.Code)
	return resp
}
