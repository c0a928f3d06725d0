package mlclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waveguard/risk-engine/internal/models"
)

var testEvent = models.SeismicEvent{
	ID:        "us7000test1",
	Magnitude: 7.2,
	DepthKM:   25,
	Location:  models.GeoPoint{Latitude: 38.0, Longitude: 142.0},
}

func TestPredictTsunami_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/tsunami/predict-simple", r.URL.Path)

		var req map[string]float64
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 7.2, req["magnitude"])
		assert.Equal(t, 25.0, req["depth"])

		w.Write([]byte(`{
			"status": "success",
			"tsunami_prediction": {"will_generate_tsunami": true, "probability": 0.86}
		}`))
	}))
	defer srv.Close()

	client := New(srv.URL, 5*time.Second)
	got, err := client.PredictTsunami(context.Background(), testEvent)
	require.NoError(t, err)

	assert.True(t, got.WillGenerateTsunami)
	require.NotNil(t, got.Probability)
	assert.Equal(t, 0.86, *got.Probability)
}

func TestPredictTsunami_NullProbability(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"status": "success",
			"tsunami_prediction": {"will_generate_tsunami": false, "probability": null}
		}`))
	}))
	defer srv.Close()

	client := New(srv.URL, 5*time.Second)
	got, err := client.PredictTsunami(context.Background(), testEvent)
	require.NoError(t, err)

	assert.False(t, got.WillGenerateTsunami)
	assert.Nil(t, got.Probability)
}

func TestPredictTsunami_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "error"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, 5*time.Second)
	_, err := client.PredictTsunami(context.Background(), testEvent)
	assert.Error(t, err)
}

func TestPredictTsunami_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := New(srv.URL, 5*time.Second)
	_, err := client.PredictTsunami(context.Background(), testEvent)
	assert.Error(t, err)
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.Write([]byte(`{"status": "healthy"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := New(srv.URL, 5*time.Second)
	assert.NoError(t, client.Health(context.Background()))

	bad := New(srv.URL+"/missing", 5*time.Second)
	assert.Error(t, bad.Health(context.Background()))
}
