package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/waveguard/risk-engine/internal/models"
)

// FeedSelector is an enumerated choice of time window + minimum
// magnitude for requesting seismic events.
type FeedSelector string

const (
	FeedPastHourM45  FeedSelector = "past_hour_m45"
	FeedPastDayM45   FeedSelector = "past_day_m45"
	FeedPastHourM25  FeedSelector = "past_hour_m25"
	FeedPastDayAll   FeedSelector = "past_day_all"
	FeedPastWeekM45  FeedSelector = "past_week_m45"
	FeedPastMonthM45 FeedSelector = "past_month_m45"
)

// DefaultFeed is used when the caller does not name a feed.
const DefaultFeed = FeedPastDayM45

// feedPaths maps each selector to its USGS summary feed file.
var feedPaths = map[FeedSelector]string{
	FeedPastHourM45:  "4.5_hour.geojson",
	FeedPastDayM45:   "4.5_day.geojson",
	FeedPastHourM25:  "2.5_hour.geojson",
	FeedPastDayAll:   "all_day.geojson",
	FeedPastWeekM45:  "4.5_week.geojson",
	FeedPastMonthM45: "4.5_month.geojson",
}

// ParseFeedSelector validates a caller-supplied feed name. An empty
// string selects DefaultFeed.
func ParseFeedSelector(s string) (FeedSelector, bool) {
	if s == "" {
		return DefaultFeed, true
	}
	sel := FeedSelector(s)
	if _, ok := feedPaths[sel]; !ok {
		return "", false
	}
	return sel, true
}

type usgsResponse struct {
	Features []usgsFeature `json:"features"`
}

type usgsFeature struct {
	ID         string         `json:"id"`
	Properties usgsProperties `json:"properties"`
	Geometry   usgsGeometry   `json:"geometry"`
}
type usgsProperties struct {
	Mag     float64 `json:"mag"`
	Place   string  `json:"place"`
	Time    int64   `json:"time"` // unix millis
	Tsunami int     `json:"tsunami"`
}
type usgsGeometry struct {
	Coordinates []float64 `json:"coordinates"` // [lon, lat, depth]
}

// SeismicClient fetches bounded-time-window seismic events from the
// USGS summary feeds.
type SeismicClient struct {
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
}

func NewSeismicClient(baseURL string, timeout time.Duration) *SeismicClient {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "usgs",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &SeismicClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		breaker: cb,
	}
}

// Fetch retrieves the events of the selected feed. On failure it
// returns a typed *Error; it never maps a failed call to an empty
// event list.
func (c *SeismicClient) Fetch(ctx context.Context, selector FeedSelector) ([]models.SeismicEvent, error) {
	path, ok := feedPaths[selector]
	if !ok {
		return nil, fmt.Errorf("unknown feed selector: %q", selector)
	}
	url := fmt.Sprintf("%s/%s", c.baseURL, path)

	result, err := c.breaker.Execute(func() (any, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("error creating request: %w", err)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, transportError("usgs", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, upstreamError("usgs", resp.StatusCode)
		}

		var data usgsResponse
		if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
			return nil, transportError("usgs", fmt.Errorf("error decoding resp.Body: %w", err))
		}
		return decodeEvents(data), nil
	})
	if err != nil {
		var fe *Error
		if errors.As(err, &fe) {
			return nil, fe
		}
		return nil, transportError("usgs", err)
	}

	return result.([]models.SeismicEvent), nil
}

func decodeEvents(data usgsResponse) []models.SeismicEvent {
	events := make([]models.SeismicEvent, 0, len(data.Features))
	for _, f := range data.Features {
		if len(f.Geometry.Coordinates) < 3 {
			continue
		}
		events = append(events, models.SeismicEvent{
			ID:        f.ID,
			Magnitude: f.Properties.Mag,
			DepthKM:   f.Geometry.Coordinates[2],
			Location: models.GeoPoint{
				Latitude:  f.Geometry.Coordinates[1],
				Longitude: f.Geometry.Coordinates[0],
			},
			Place:       f.Properties.Place,
			OccurredAt:  time.UnixMilli(f.Properties.Time),
			TsunamiFlag: f.Properties.Tsunami,
		})
	}
	return events
}
