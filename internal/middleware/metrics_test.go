package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newMetricsServer(t *testing.T, connections func() int) (*echo.Echo, *Metrics, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg, connections)
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/api/v1/expenses/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.DELETE("/api/v1/expenses/:id", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusForbidden, "nope")
	})
	return e, m, reg
}

func TestMetrics_CountsByRouteTemplate(t *testing.T) {
	e, m, _ := newMetricsServer(t, nil)

	for _, id := range []string{"a", "b", "c"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/expenses/"+id, nil))
	}

	got := testutil.ToFloat64(m.requestCount.WithLabelValues("200", http.MethodGet, "/api/v1/expenses/:id"))
	if got != 3 {
		t.Errorf("requests_total = %v, want 3", got)
	}
}

func TestMetrics_RecordsHTTPErrorCode(t *testing.T) {
	e, m, _ := newMetricsServer(t, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/expenses/a", nil))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("Expected status 403, got %d", rec.Code)
	}
	got := testutil.ToFloat64(m.requestCount.WithLabelValues("403", http.MethodDelete, "/api/v1/expenses/:id"))
	if got != 1 {
		t.Errorf("requests_total = %v, want 1", got)
	}
}

func TestMetrics_WebsocketGauge(t *testing.T) {
	open := 4
	_, _, reg := newMetricsServer(t, func() int { return open })

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}

	var found bool
	for _, f := range families {
		if f.GetName() != "cointrack_websocket_connections" {
			continue
		}
		found = true
		if v := f.GetMetric()[0].GetGauge().GetValue(); v != 4 {
			t.Errorf("websocket_connections = %v, want 4", v)
		}
	}
	if !found {
		t.Error("websocket_connections gauge not registered")
	}
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewMetrics(reg, nil); err != nil {
		t.Fatalf("first NewMetrics() error = %v", err)
	}
	if _, err := NewMetrics(reg, nil); err == nil {
		t.Error("Expected an error registering the same collectors twice")
	}
}
