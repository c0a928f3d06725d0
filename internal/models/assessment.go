package models

import "time"

// MapDisplay is the presentation hint attached to classified results
// so map layers only format, never reclassify.
type MapDisplay struct {
	Color   string `json:"color"`
	RadiusM int    `json:"radius_m"`
}

// TsunamiEventAssessment is the per-event verdict. Derived, recomputed
// each call, never persisted.
type TsunamiEventAssessment struct {
	Event              SeismicEvent `json:"event"`
	TsunamiPrediction  bool         `json:"tsunami_prediction"`
	TsunamiProbability float64      `json:"tsunami_probability"`
	UserRisk           RiskZone     `json:"user_risk"`
	DistanceKM         float64      `json:"distance_km"`
	Reasoning          string       `json:"reasoning"`
	Display            MapDisplay   `json:"display"`
}

// FeedMetadata describes the seismic feed a tsunami assessment was
// built from.
type FeedMetadata struct {
	FeedType    string    `json:"feed_type"`
	Source      string    `json:"source"`
	EventCount  int       `json:"event_count"`
	RetrievedAt time.Time `json:"retrieved_at"`
}

// OverallTsunamiAssessment is the aggregated tsunami verdict for one
// assessment location.
type OverallTsunamiAssessment struct {
	Location        GeoPoint                 `json:"location"`
	Events          []TsunamiEventAssessment `json:"events"`
	HighestRisk     *TsunamiEventAssessment  `json:"highest_risk"` // nil only when Events is empty
	OverallStatus   OverallStatus            `json:"overall_status"`
	Recommendations []string                 `json:"recommendations"`
	FeedMetadata    FeedMetadata             `json:"feed_metadata"`
	Timestamp       time.Time                `json:"timestamp"`
}

// CycloneRiskFactors is the human-readable narrative explaining which
// numeric band each weather input fell in.
type CycloneRiskFactors struct {
	PressureFactor     string `json:"pressure_factor"`
	WindFactor         string `json:"wind_factor"`
	CombinedAssessment string `json:"combined_assessment"`
}

// CycloneAssessment is the cyclone-formation verdict for one location.
type CycloneAssessment struct {
	Location             GeoPoint           `json:"location"`
	Address              string             `json:"address,omitempty"`
	Weather              WeatherSnapshot    `json:"weather"`
	Prediction           bool               `json:"prediction"`
	RiskLevel            CycloneRiskLevel   `json:"risk_level"`
	Confidence           float64            `json:"confidence"`
	PredictedWindSpeedMS float64            `json:"predicted_wind_speed_ms"`
	RiskFactors          CycloneRiskFactors `json:"risk_factors"`
	Recommendations      []string           `json:"recommendations"`
	MonitoringAdvice     []string           `json:"monitoring_advice"`
	Display              MapDisplay         `json:"display"`
	DataSource           string             `json:"data_source"`
	Timestamp            time.Time          `json:"timestamp"`
}
