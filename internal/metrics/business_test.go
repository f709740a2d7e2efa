package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertMetricLine checks the Prometheus output for a metric with the given
// name, partial label pattern, and value. A regex keeps the check stable
// against the extra OTel scope labels the exporter injects.
func assertMetricLine(t *testing.T, output, name, labels, value string) {
	t.Helper()
	pattern := name + `\{[^}]*` + labels + `[^}]*\} ` + value
	assert.Regexp(t, pattern, output)
}

func scrapeMetrics(t *testing.T, provider *Provider) string {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	provider.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	return string(body)
}

func TestNewBusinessMetrics(t *testing.T) {
	t.Run("Success_CreateBusinessMetrics", func(t *testing.T) {
		provider, err := NewProvider("settings")
		require.NoError(t, err)

		bm, err := NewBusinessMetrics(provider.MeterProvider(), "settings")

		require.NoError(t, err)
		assert.NotNil(t, bm)
	})
}

func TestBusinessMetrics_RecordOperation(t *testing.T) {
	provider, err := NewProvider("settings")
	require.NoError(t, err)

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "settings")
	require.NoError(t, err)

	t.Run("Success_CountsOperationsWithLabels", func(t *testing.T) {
		bm.RecordOperation(context.Background(), "services", "service_register", "success")
		bm.RecordOperation(context.Background(), "services", "service_register", "success")
		bm.RecordOperation(context.Background(), "settings", "setting_get", "error")

		output := scrapeMetrics(t, provider)
		assertMetricLine(t, output, "settings_operations_total", `operation="service_register"`, "2")
		assertMetricLine(t, output, "settings_operations_total", `status="error"`, "1")
	})
}

func TestBusinessMetrics_RecordDuration(t *testing.T) {
	provider, err := NewProvider("settings")
	require.NoError(t, err)

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "settings")
	require.NoError(t, err)

	t.Run("Success_RecordsDurationHistogram", func(t *testing.T) {
		bm.RecordDuration(context.Background(), "settings", "setting_get", 42*time.Millisecond, "success")

		output := scrapeMetrics(t, provider)
		assert.Contains(t, output, "settings_operation_duration_seconds")
	})
}

func TestNoOpBusinessMetrics(t *testing.T) {
	t.Run("Success_DoesNothing", func(t *testing.T) {
		bm := NewNoOpBusinessMetrics()

		bm.RecordOperation(context.Background(), "services", "service_register", "success")
		bm.RecordDuration(context.Background(), "services", "service_register", time.Second, "success")
	})
}
