package risk

import (
	"fmt"
	"math"

	"github.com/waveguard/risk-engine/internal/models"
)

// CycloneResult is the location-independent part of a cyclone
// assessment derived purely from one weather snapshot.
type CycloneResult struct {
	Prediction           bool
	RiskLevel            models.CycloneRiskLevel
	Confidence           float64
	PredictedWindSpeedMS float64
	RiskFactors          models.CycloneRiskFactors
}

// cycloneBand is one (predicate, outcome) row. Bands are evaluated
// most-severe-first and the first match wins. Pressure comparisons
// are strict (< max), wind comparisons strict (> min).
type cycloneBand struct {
	maxPressureHPa float64
	minWindMS      float64
	level          models.CycloneRiskLevel
	confidence     float64
	windMultiplier float64
	windFloorMS    float64
}

var cycloneBands = []cycloneBand{
	{980, 25, models.CycloneRiskExtreme, 0.90, 1.5, 30},
	{990, 20, models.CycloneRiskHigh, 0.85, 1.3, 25},
	{995, 15, models.CycloneRiskModerate, 0.75, 1.2, 18},
	{1005, 10, models.CycloneRiskLow, 0.60, 1.1, 12},
}

const defaultCycloneConfidence = 0.70

// ClassifyCyclone derives cyclone-formation risk from a weather
// snapshot. Pure function; identical snapshots yield identical
// results.
func ClassifyCyclone(weather models.WeatherSnapshot) CycloneResult {
	result := CycloneResult{
		RiskLevel:            models.CycloneRiskNone,
		Confidence:           defaultCycloneConfidence,
		PredictedWindSpeedMS: weather.WindSpeedMS,
	}

	for _, band := range cycloneBands {
		if weather.PressureHPa < band.maxPressureHPa && weather.WindSpeedMS > band.minWindMS {
			result.Prediction = true
			result.RiskLevel = band.level
			result.Confidence = band.confidence
			result.PredictedWindSpeedMS = math.Max(weather.WindSpeedMS*band.windMultiplier, band.windFloorMS)
			break
		}
	}

	result.RiskFactors = models.CycloneRiskFactors{
		PressureFactor:     pressureFactor(weather.PressureHPa),
		WindFactor:         windFactor(weather.WindSpeedMS),
		CombinedAssessment: combinedAssessment(result.Prediction),
	}

	return result
}

// pressureFactor describes the pressure reading independently of the
// overall band.
func pressureFactor(pressure float64) string {
	switch {
	case pressure < 980:
		return fmt.Sprintf("Extremely low pressure (%.0f hPa) - Strong cyclone formation indicator", pressure)
	case pressure < 990:
		return fmt.Sprintf("Very low pressure (%.0f hPa) - Significant cyclone development risk", pressure)
	case pressure < 995:
		return fmt.Sprintf("Low pressure (%.0f hPa) - Moderate cyclone formation potential", pressure)
	case pressure < 1005:
		return fmt.Sprintf("Below normal pressure (%.0f hPa) - Mild atmospheric instability", pressure)
	default:
		return fmt.Sprintf("Normal pressure (%.0f hPa) - Stable atmospheric conditions", pressure)
	}
}

func windFactor(windSpeed float64) string {
	switch {
	case windSpeed > 25:
		return fmt.Sprintf("Very high winds (%.1f m/s) - Conducive to rapid cyclone intensification", windSpeed)
	case windSpeed > 20:
		return fmt.Sprintf("High winds (%.1f m/s) - Favorable for cyclone development", windSpeed)
	case windSpeed > 15:
		return fmt.Sprintf("Elevated winds (%.1f m/s) - Some potential for system organization", windSpeed)
	case windSpeed > 10:
		return fmt.Sprintf("Moderate winds (%.1f m/s) - Limited cyclone formation potential", windSpeed)
	default:
		return fmt.Sprintf("Light winds (%.1f m/s) - Minimal cyclone development risk", windSpeed)
	}
}

func combinedAssessment(prediction bool) string {
	if prediction {
		return "Current atmospheric conditions favor cyclone formation. The combination of low pressure and elevated winds creates an environment conducive to tropical system development."
	}
	return "Current atmospheric conditions are not conducive to cyclone formation. Pressure and wind patterns indicate stable weather conditions."
}
