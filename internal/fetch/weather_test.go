package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waveguard/risk-engine/internal/models"
)

const sampleWeather = `{
  "main": {"pressure": 1008, "temp": 27.3, "humidity": 82},
  "wind": {"speed": 12.4, "deg": 215},
  "visibility": 8000
}`

var testPoint = models.GeoPoint{Latitude: 13.08, Longitude: 80.27}

func TestWeatherFetch_MapsFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		w.Write([]byte(sampleWeather))
	}))
	defer srv.Close()

	client := NewWeatherClient(srv.URL, "test-key", 5*time.Second, false)
	got, err := client.Fetch(context.Background(), testPoint)
	require.NoError(t, err)

	assert.Equal(t, 1008.0, got.PressureHPa)
	assert.Equal(t, 12.4, got.WindSpeedMS)
	assert.Equal(t, 215.0, got.WindDirectionDeg)
	assert.Equal(t, 27.3, got.TemperatureC)
	assert.Equal(t, 82.0, got.HumidityPct)
	assert.Equal(t, 8.0, got.VisibilityKM) // meters to km
	assert.False(t, got.Synthetic)
}

func TestWeatherFetch_MissingFieldsDefault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"main": {"pressure": 1013, "temp": 20, "humidity": 50}}`))
	}))
	defer srv.Close()

	client := NewWeatherClient(srv.URL, "test-key", 5*time.Second, false)
	got, err := client.Fetch(context.Background(), testPoint)
	require.NoError(t, err)

	assert.Equal(t, 0.0, got.WindSpeedMS)
	assert.Equal(t, 10.0, got.VisibilityKM) // default 10000 m
}

func TestWeatherFetch_FailureWithoutFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewWeatherClient(srv.URL, "bad-key", 5*time.Second, false)
	_, err := client.Fetch(context.Background(), testPoint)

	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, ReasonUpstream, fe.Reason)
	assert.Equal(t, http.StatusUnauthorized, fe.Status)
	assert.Equal(t, "openweather", fe.Source)
}

func TestWeatherFetch_SyntheticFallbackIsFlagged(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewWeatherClient(srv.URL, "test-key", 5*time.Second, true)
	got, err := client.Fetch(context.Background(), testPoint)
	require.NoError(t, err)

	assert.True(t, got.Synthetic)
	assert.Equal(t, string(ReasonUpstream), got.FallbackReason)

	// Generated values stay inside the documented ranges.
	assert.GreaterOrEqual(t, got.PressureHPa, 993.0)
	assert.Less(t, got.PressureHPa, 1033.0)
	assert.GreaterOrEqual(t, got.WindSpeedMS, 0.0)
	assert.Less(t, got.WindSpeedMS, 30.0)
	assert.GreaterOrEqual(t, got.WindDirectionDeg, 0.0)
	assert.Less(t, got.WindDirectionDeg, 360.0)
	assert.GreaterOrEqual(t, got.HumidityPct, 60.0)
	assert.Less(t, got.HumidityPct, 90.0)
}

func TestWeatherFetch_RealDataNeverFlagged(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleWeather))
	}))
	defer srv.Close()

	// Fallback enabled, but the upstream answers: no synthetic flag.
	client := NewWeatherClient(srv.URL, "test-key", 5*time.Second, true)
	got, err := client.Fetch(context.Background(), testPoint)
	require.NoError(t, err)
	assert.False(t, got.Synthetic)
	assert.Empty(t, got.FallbackReason)
}

func TestWeatherFetch_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewWeatherClient(srv.URL, "test-key", 20*time.Millisecond, false)
	_, err := client.Fetch(context.Background(), testPoint)

	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, ReasonTimeout, fe.Reason)
}
