package models

import "time"

// SeismicEvent is one earthquake record from the seismic feed.
// Never mutated after fetch.
type SeismicEvent struct {
	ID          string    `json:"id"` // Unique ID from source (e.g., "us7000abcd")
	Magnitude   float64   `json:"magnitude"`
	DepthKM     float64   `json:"depth_km"`
	Location    GeoPoint  `json:"location"`
	Place       string    `json:"place"`
	OccurredAt  time.Time `json:"occurred_at"`
	TsunamiFlag int       `json:"tsunami_flag"` // 0 or 1, as reported by the feed
}

// TsunamiPrediction is the output of the external tsunami model
// service for a single event. Probability is nil when the model did
// not report one.
type TsunamiPrediction struct {
	WillGenerateTsunami bool
	Probability         *float64
}
