package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `{
  "features": [
    {
      "id": "us7000test1",
      "properties": {
        "mag": 7.2,
        "place": "120 km E of Sendai, Japan",
        "time": 1735689600000,
        "tsunami": 1
      },
      "geometry": {"coordinates": [142.0, 38.0, 25.0]}
    },
    {
      "id": "us7000test2",
      "properties": {
        "mag": 4.6,
        "place": "near the coast of Chile",
        "time": 1735693200000,
        "tsunami": 0
      },
      "geometry": {"coordinates": [-72.5, -33.0, 110.0]}
    },
    {
      "id": "malformed",
      "properties": {"mag": 5.0, "place": "no depth", "time": 0, "tsunami": 0},
      "geometry": {"coordinates": [10.0, 20.0]}
    }
  ]
}`

func TestSeismicFetch_DecodesFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	client := NewSeismicClient(srv.URL, 5*time.Second)
	events, err := client.Fetch(context.Background(), FeedPastDayM45)
	require.NoError(t, err)

	// The record without a depth coordinate is skipped.
	require.Len(t, events, 2)

	first := events[0]
	assert.Equal(t, "us7000test1", first.ID)
	assert.Equal(t, 7.2, first.Magnitude)
	assert.Equal(t, 25.0, first.DepthKM)
	assert.Equal(t, 38.0, first.Location.Latitude)
	assert.Equal(t, 142.0, first.Location.Longitude)
	assert.Equal(t, "120 km E of Sendai, Japan", first.Place)
	assert.Equal(t, 1, first.TsunamiFlag)
	assert.Equal(t, time.UnixMilli(1735689600000), first.OccurredAt)
}

func TestSeismicFetch_FeedSelectorPaths(t *testing.T) {
	var requested string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = r.URL.Path
		w.Write([]byte(`{"features": []}`))
	}))
	defer srv.Close()

	client := NewSeismicClient(srv.URL, 5*time.Second)

	tests := []struct {
		selector FeedSelector
		wantPath string
	}{
		{FeedPastHourM45, "/4.5_hour.geojson"},
		{FeedPastDayM45, "/4.5_day.geojson"},
		{FeedPastHourM25, "/2.5_hour.geojson"},
		{FeedPastDayAll, "/all_day.geojson"},
		{FeedPastWeekM45, "/4.5_week.geojson"},
		{FeedPastMonthM45, "/4.5_month.geojson"},
	}

	for _, tt := range tests {
		_, err := client.Fetch(context.Background(), tt.selector)
		require.NoError(t, err)
		assert.Equal(t, tt.wantPath, requested)
	}
}

func TestSeismicFetch_EmptyFeedIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"features": []}`))
	}))
	defer srv.Close()

	client := NewSeismicClient(srv.URL, 5*time.Second)
	events, err := client.Fetch(context.Background(), FeedPastDayM45)

	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestSeismicFetch_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewSeismicClient(srv.URL, 5*time.Second)
	_, err := client.Fetch(context.Background(), FeedPastDayM45)

	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, ReasonUpstream, fe.Reason)
	assert.Equal(t, http.StatusServiceUnavailable, fe.Status)
	assert.Equal(t, "usgs", fe.Source)
}

func TestSeismicFetch_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewSeismicClient(srv.URL, 20*time.Millisecond)
	_, err := client.Fetch(context.Background(), FeedPastDayM45)

	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, ReasonTimeout, fe.Reason)
}

func TestSeismicFetch_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // immediately, so the port refuses connections

	client := NewSeismicClient(srv.URL, 5*time.Second)
	_, err := client.Fetch(context.Background(), FeedPastDayM45)

	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, ReasonNetwork, fe.Reason)
}

func TestSeismicFetch_UnknownSelector(t *testing.T) {
	client := NewSeismicClient("http://localhost", time.Second)
	_, err := client.Fetch(context.Background(), FeedSelector("bogus"))
	assert.Error(t, err)
}

func TestParseFeedSelector(t *testing.T) {
	sel, ok := ParseFeedSelector("")
	assert.True(t, ok)
	assert.Equal(t, DefaultFeed, sel)

	sel, ok = ParseFeedSelector("past_week_m45")
	assert.True(t, ok)
	assert.Equal(t, FeedPastWeekM45, sel)

	_, ok = ParseFeedSelector("past_year_m45")
	assert.False(t, ok)
}
