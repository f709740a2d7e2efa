package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	t.Run("Success_CreateProvider", func(t *testing.T) {
		provider, err := NewProvider("settings")

		require.NoError(t, err)
		assert.NotNil(t, provider)
		assert.NotNil(t, provider.MeterProvider())

		assert.NoError(t, provider.Shutdown(context.Background()))
	})
}

func TestProvider_Handler(t *testing.T) {
	t.Run("Success_ServeExpositionFormat", func(t *testing.T) {
		provider, err := NewProvider("settings")
		require.NoError(t, err)
		defer func() {
			assert.NoError(t, provider.Shutdown(context.Background()))
		}()

		bm, err := NewBusinessMetrics(provider.MeterProvider(), "settings")
		require.NoError(t, err)
		bm.RecordOperation(context.Background(), "services", "service_register", "success")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		provider.Handler().ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		body, err := io.ReadAll(w.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "settings_operations_total")
	})
}

func TestProvider_Shutdown(t *testing.T) {
	t.Run("Success_Shutdown", func(t *testing.T) {
		provider, err := NewProvider("settings")
		require.NoError(t, err)

		assert.NoError(t, provider.Shutdown(context.Background()))
	})
}
