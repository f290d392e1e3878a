package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	provider, err := NewProvider("fiscalhub")
	require.NoError(t, err)
	require.NotNil(t, provider)
	assert.NotNil(t, provider.MeterProvider())
	assert.NotNil(t, provider.Handler())

	assert.NoError(t, provider.Shutdown(context.Background()))
}

func TestBusinessMetrics_Record(t *testing.T) {
	provider, err := NewProvider("fiscalhub")
	require.NoError(t, err)
	defer provider.Shutdown(context.Background())

	business, err := NewBusinessMetrics(provider.MeterProvider(), "fiscalhub")
	require.NoError(t, err)

	ctx := context.Background()
	business.RecordOperation(ctx, "auth", "sign_in", "success")
	business.RecordDuration(ctx, "auth", "sign_in", 25*time.Millisecond, "success")

	// Metrics must show up in the Prometheus exposition output.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	provider.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fiscalhub_operations_total")
}

func TestHTTPMetricsMiddleware(t *testing.T) {
	provider, err := NewProvider("fiscalhub")
	require.NoError(t, err)
	defer provider.Shutdown(context.Background())

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), "fiscalhub"))
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	metricsRec := httptest.NewRecorder()
	provider.Handler().ServeHTTP(metricsRec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, metricsRec.Body.String(), "fiscalhub_http_requests_total")
}

func TestNoopBusinessMetrics(t *testing.T) {
	business := NoopBusinessMetrics()
	// Must not panic.
	business.RecordOperation(context.Background(), "auth", "sign_in", "success")
	business.RecordDuration(context.Background(), "auth", "sign_in", time.Second, "error")
}
