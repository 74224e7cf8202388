package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"weather-app/pkg/metrics"
)

func TestRequestLoggerCountsRequests(t *testing.T) {
	collector := metrics.NewCollectorWith("test", prometheus.NewRegistry())
	e := echo.New()
	SetupRequestLogger(e, collector)
	e.GET("/weather", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/health", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	for _, path := range []string{"/weather", "/weather", "/health"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Header().Get(echo.HeaderXRequestID) == "" {
			t.Errorf("%s: missing request id", path)
		}
	}

	var m dto.Metric
	if err := collector.APIRequestsTotal.WithLabelValues("/weather", "GET", "200").Write(&m); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := m.GetCounter().GetValue(); got != 2 {
		t.Errorf("requests = %v, want 2", got)
	}

	m.Reset()
	if err := collector.APIRequestsTotal.WithLabelValues("/health", "GET", "200").Write(&m); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := m.GetCounter().GetValue(); got != 0 {
		t.Errorf("health requests = %v, want 0", got)
	}
}
