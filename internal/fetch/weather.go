package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/waveguard/risk-engine/internal/models"
)

type openWeatherResponse struct {
	Main struct {
		Pressure float64 `json:"pressure"` // hPa
		Temp     float64 `json:"temp"`     // Celsius with units=metric
		Humidity float64 `json:"humidity"` // percent
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"` // m/s
		Deg   float64 `json:"deg"`
	} `json:"wind"`
	Visibility float64 `json:"visibility"` // meters, may be absent
}

// WeatherClient fetches one current-conditions snapshot per call from
// the OpenWeatherMap current weather API.
type WeatherClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker

	// syntheticFallback substitutes a generated in-range snapshot on
	// upstream failure instead of returning the typed error. The
	// substitution is always flagged on the snapshot itself.
	syntheticFallback bool
}

func NewWeatherClient(baseURL, apiKey string, timeout time.Duration, syntheticFallback bool) *WeatherClient {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &WeatherClient{
		baseURL:           baseURL,
		apiKey:            apiKey,
		client:            &http.Client{Timeout: timeout},
		breaker:           cb,
		syntheticFallback: syntheticFallback,
	}
}

// Fetch retrieves the current weather snapshot for a point. On
// upstream failure it returns either a flagged synthetic snapshot
// (when fallback is enabled) or the typed *Error.
func (c *WeatherClient) Fetch(ctx context.Context, point models.GeoPoint) (models.WeatherSnapshot, error) {
	result, err := c.breaker.Execute(func() (any, error) {
		return c.fetch(ctx, point)
	})
	if err != nil {
		var fe *Error
		if !errors.As(err, &fe) {
			fe = transportError("openweather", err)
		}
		if c.syntheticFallback {
			return syntheticSnapshot(fe.Reason), nil
		}
		return models.WeatherSnapshot{}, fe
	}

	return result.(models.WeatherSnapshot), nil
}

func (c *WeatherClient) fetch(ctx context.Context, point models.GeoPoint) (models.WeatherSnapshot, error) {
	values := url.Values{}
	values.Set("lat", fmt.Sprintf("%f", point.Latitude))
	values.Set("lon", fmt.Sprintf("%f", point.Longitude))
	values.Set("appid", c.apiKey)
	values.Set("units", "metric")
	u := fmt.Sprintf("%s/weather?%s", c.baseURL, values.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return models.WeatherSnapshot{}, fmt.Errorf("error creating request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return models.WeatherSnapshot{}, transportError("openweather", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.WeatherSnapshot{}, upstreamError("openweather", resp.StatusCode)
	}

	var data openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return models.WeatherSnapshot{}, transportError("openweather", fmt.Errorf("error decoding resp.Body: %w", err))
	}

	visibilityM := data.Visibility
	if visibilityM == 0 {
		visibilityM = 10000
	}

	return models.WeatherSnapshot{
		PressureHPa:      data.Main.Pressure,
		WindSpeedMS:      data.Wind.Speed,
		WindDirectionDeg: data.Wind.Deg,
		TemperatureC:     data.Main.Temp,
		HumidityPct:      data.Main.Humidity,
		VisibilityKM:     visibilityM / 1000,
	}, nil
}

// syntheticSnapshot generates a plausible in-range snapshot. The only
// randomness in the engine lives here, and every snapshot it produces
// is flagged as synthetic with the upstream failure reason attached.
func syntheticSnapshot(reason Reason) models.WeatherSnapshot {
	return models.WeatherSnapshot{
		PressureHPa:      993 + rand.Float64()*40,  // 993-1033 hPa
		WindSpeedMS:      rand.Float64() * 30,      // 0-30 m/s
		WindDirectionDeg: rand.Float64() * 360,
		TemperatureC:     25 + rand.Float64()*10,
		HumidityPct:      60 + rand.Float64()*30,
		VisibilityKM:     10 + rand.Float64()*15,
		Synthetic:        true,
		FallbackReason:   string(reason),
	}
}
