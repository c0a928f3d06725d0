// Package mlclient talks to the external tsunami model service. The
// service is an optional collaborator: callers fall back to a local
// heuristic when it is absent or unreachable.
package mlclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/waveguard/risk-engine/internal/models"
)

type predictRequest struct {
	Magnitude float64 `json:"magnitude"`
	Depth     float64 `json:"depth"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type predictResponse struct {
	Status            string `json:"status"`
	TsunamiPrediction struct {
		WillGenerateTsunami bool     `json:"will_generate_tsunami"`
		Probability         *float64 `json:"probability"`
	} `json:"tsunami_prediction"`
}

// Client is the HTTP client for the tsunami model service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

func New(baseURL string, timeout time.Duration) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "tsunami-model",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		breaker:    cb,
	}
}

// PredictTsunami asks the model service whether the event will
// generate a tsunami. Any transport or decode failure is returned to
// the caller so it can fall back to the heuristic.
func (c *Client) PredictTsunami(ctx context.Context, event models.SeismicEvent) (models.TsunamiPrediction, error) {
	result, err := c.breaker.Execute(func() (any, error) {
		return c.predict(ctx, event)
	})
	if err != nil {
		return models.TsunamiPrediction{}, err
	}
	return result.(models.TsunamiPrediction), nil
}

func (c *Client) predict(ctx context.Context, event models.SeismicEvent) (models.TsunamiPrediction, error) {
	body, err := json.Marshal(predictRequest{
		Magnitude: event.Magnitude,
		Depth:     event.DepthKM,
		Latitude:  event.Location.Latitude,
		Longitude: event.Location.Longitude,
	})
	if err != nil {
		return models.TsunamiPrediction{}, fmt.Errorf("mlclient: failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/api/tsunami/predict-simple", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return models.TsunamiPrediction{}, fmt.Errorf("mlclient: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.TsunamiPrediction{}, fmt.Errorf("mlclient: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.TsunamiPrediction{}, fmt.Errorf("mlclient: unexpected status %d", resp.StatusCode)
	}

	var data predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return models.TsunamiPrediction{}, fmt.Errorf("mlclient: failed to decode response: %w", err)
	}
	if data.Status != "success" {
		return models.TsunamiPrediction{}, fmt.Errorf("mlclient: prediction failed with status %q", data.Status)
	}

	return models.TsunamiPrediction{
		WillGenerateTsunami: data.TsunamiPrediction.WillGenerateTsunami,
		Probability:         data.TsunamiPrediction.Probability,
	}, nil
}

// Health checks model service connectivity.
func (c *Client) Health(ctx context.Context) error {
	url := fmt.Sprintf("%s/health", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("mlclient: failed to create health request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("mlclient: health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("mlclient: health check returned status %d", resp.StatusCode)
	}

	return nil
}
