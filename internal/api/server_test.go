package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/advanced-computing/bouncing-penguin/infrastructure/renderer/gochart"
	"github.com/advanced-computing/bouncing-penguin/internal/cache"
	"github.com/advanced-computing/bouncing-penguin/internal/config"
	"github.com/advanced-computing/bouncing-penguin/internal/domain"
	"github.com/advanced-computing/bouncing-penguin/internal/usecases/dashboarding/mocks"
	"github.com/advanced-computing/bouncing-penguin/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newHandler(t *testing.T) (http.Handler, *mocks.MockDashboard) {
	t.Helper()

	ctrl := gomock.NewController(t)
	dashboard := mocks.NewMockDashboard(ctrl)
	cfg := &config.Config{
		Cors: config.Cors{AllowedOrigins: []string{"http://localhost:3000"}},
	}

	h, err := NewHandler(cfg, dashboard, gochart.New(), cache.New[*domain.Table](time.Hour), nil)
	require.NoError(t, err)
	return h, dashboard
}

func TestNewHandler_Healthcheck(t *testing.T) {
	h, _ := newHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	req.Header.Set(log.CorrelationIDHeader, "c0ffee00-0000-4000-8000-000000000001")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "c0ffee00-0000-4000-8000-000000000001", rec.Header().Get(log.CorrelationIDHeader))
}

func TestNewHandler_NotFound(t *testing.T) {
	h, _ := newHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "route not found")
	assert.NotEmpty(t, rec.Header().Get(log.CorrelationIDHeader))
}

func TestNewHandler_Preflight(t *testing.T) {
	h, _ := newHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/v1/ridership", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewHandler_MetricsAfterRequest(t *testing.T) {
	h, dashboard := newHandler(t)
	dashboard.EXPECT().Landing().Return(domain.LandingPage{Title: "MTA Ridership Recovery Dashboard"})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/landing", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `ridership_dashboard_http_requests_total{method="GET",path="/v1/landing",status="200"}`)
}

func TestNewHandler_WarmWithoutWarmer(t *testing.T) {
	h, _ := newHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cache/warm", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
