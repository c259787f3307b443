package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/besttime-service/internal/config"
)

func TestClient_GetCurrent(t *testing.T) {
	logger := zap.NewNop()

	t.Run("successful request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "test_key", r.URL.Query().Get("appid"))
			assert.Equal(t, "metric", r.URL.Query().Get("units"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"main": {"temp": 28.5, "humidity": 74},
				"weather": [{"main": "Clouds", "description": "scattered clouds"}],
				"wind": {"speed": 3.6}
			}`))
		}))
		defer server.Close()

		cfg := &config.WeatherConfig{
			BaseURL: server.URL,
			APIKey:  "test_key",
			Timeout: 5 * time.Second,
		}

		client := NewWeatherClient(cfg, logger)

		current, err := client.GetCurrent(context.Background(), 15.2993, 74.1240)
		require.NoError(t, err)
		require.NotNil(t, current)
		assert.Equal(t, 28.5, current.Temperature)
		assert.Equal(t, 74, current.Humidity)
		assert.Equal(t, "Clouds", current.Condition)
		assert.Equal(t, "scattered clouds", current.Description)
		assert.Equal(t, 3.6, current.WindSpeed)
	})

	t.Run("empty weather array", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"main": {"temp": 10.0, "humidity": 50}, "weather": [], "wind": {"speed": 1.0}}`))
		}))
		defer server.Close()

		cfg := &config.WeatherConfig{
			BaseURL: server.URL,
			APIKey:  "test_key",
			Timeout: 5 * time.Second,
		}

		client := NewWeatherClient(cfg, logger)

		current, err := client.GetCurrent(context.Background(), 48.85, 2.35)
		require.NoError(t, err)
		require.NotNil(t, current)
		assert.Equal(t, 10.0, current.Temperature)
		assert.Empty(t, current.Condition)
	})

	t.Run("api error response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"cod":401,"message":"Invalid API key"}`))
		}))
		defer server.Close()

		cfg := &config.WeatherConfig{
			BaseURL: server.URL,
			APIKey:  "bad_key",
			Timeout: 5 * time.Second,
		}

		client := NewWeatherClient(cfg, logger)

		current, err := client.GetCurrent(context.Background(), 15.3, 74.1)
		assert.Error(t, err)
		assert.Nil(t, current)
		assert.Contains(t, err.Error(), "weather API error")
	})
}
