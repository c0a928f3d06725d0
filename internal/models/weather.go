package models

// WeatherSnapshot is one current-conditions observation for a point.
// Fetched fresh per assessment call; not cached across calls.
//
// Synthetic is true only when the snapshot was generated locally
// because the upstream source was unreachable and the caller opted in
// to fallback data. FallbackReason then carries the fetch failure
// reason so consumers can surface degraded confidence.
type WeatherSnapshot struct {
	PressureHPa      float64 `json:"pressure_hpa"`
	WindSpeedMS      float64 `json:"wind_speed_ms"`
	WindDirectionDeg float64 `json:"wind_direction_deg"`
	TemperatureC     float64 `json:"temperature_c"`
	HumidityPct      float64 `json:"humidity_pct"`
	VisibilityKM     float64 `json:"visibility_km"`
	Synthetic        bool    `json:"is_synthetic"`
	FallbackReason   string  `json:"fallback_reason,omitempty"`
}
