// Package risk holds the pure classification and aggregation logic:
// per-event tsunami exposure, cyclone-formation bands, and the
// reduction of many event verdicts into one overall status.
package risk

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/waveguard/risk-engine/internal/geo"
	"github.com/waveguard/risk-engine/internal/models"
)

// Predictor is the external tsunami model collaborator. A nil
// Predictor (or a failing one) means the heuristic decides.
type Predictor interface {
	PredictTsunami(ctx context.Context, event models.SeismicEvent) (models.TsunamiPrediction, error)
}

// Exposure bands, evaluated nearest-first. Distances are inclusive:
// exactly 100 km is still high risk.
var exposureBands = []struct {
	maxDistanceKM float64
	zone          models.RiskZone
}{
	{100, models.RiskZoneHigh},
	{500, models.RiskZoneMedium},
	{1000, models.RiskZoneLow},
}

// Heuristic gates, used when no model prediction is available.
const (
	heuristicMinMagnitude   = 6.5
	heuristicMaxDepthKM     = 70
	heuristicMajorMagnitude = 7.5
	probabilityFloorMag     = 6.0
	probabilityCeilMag      = 9.0
)

// TsunamiClassifier derives a per-event tsunami assessment. It holds
// no mutable state; with a nil predictor Classify is a pure function
// of (event, location).
type TsunamiClassifier struct {
	predictor Predictor
}

func NewTsunamiClassifier(predictor Predictor) *TsunamiClassifier {
	return &TsunamiClassifier{predictor: predictor}
}

// Classify scores one seismic event against the assessment location.
func (c *TsunamiClassifier) Classify(ctx context.Context, event models.SeismicEvent, location models.GeoPoint) models.TsunamiEventAssessment {
	distanceKM := geo.Distance(location, event.Location)

	prediction, probability := c.predict(ctx, event)
	zone := ExposureZone(prediction, distanceKM)

	return models.TsunamiEventAssessment{
		Event:              event,
		TsunamiPrediction:  prediction,
		TsunamiProbability: probability,
		UserRisk:           zone,
		DistanceKM:         distanceKM,
		Reasoning: fmt.Sprintf("M%.1f earthquake at %.0f km depth, %.0f km from assessment point",
			event.Magnitude, event.DepthKM, distanceKM),
		Display: TsunamiDisplay(zone),
	}
}

func (c *TsunamiClassifier) predict(ctx context.Context, event models.SeismicEvent) (bool, float64) {
	if c.predictor != nil {
		p, err := c.predictor.PredictTsunami(ctx, event)
		if err == nil {
			if p.Probability != nil {
				return p.WillGenerateTsunami, clamp01(*p.Probability)
			}
			return p.WillGenerateTsunami, heuristicProbability(event.Magnitude)
		}
		slog.Warn("model prediction unavailable, using heuristic", "event_id", event.ID, "error", err)
	}
	return heuristicPrediction(event), heuristicProbability(event.Magnitude)
}

// heuristicPrediction is the hand-built stand-in for the trained
// model: shallow, strong quakes with either a feed tsunami flag or
// major magnitude.
func heuristicPrediction(event models.SeismicEvent) bool {
	return event.Magnitude >= heuristicMinMagnitude &&
		event.DepthKM <= heuristicMaxDepthKM &&
		(event.TsunamiFlag == 1 || event.Magnitude >= heuristicMajorMagnitude)
}

// heuristicProbability scales linearly with magnitude over
// [6.0, 9.0], clamped to [0, 1].
func heuristicProbability(magnitude float64) float64 {
	return clamp01((magnitude - probabilityFloorMag) / (probabilityCeilMag - probabilityFloorMag))
}

// ExposureZone maps prediction + distance to a risk zone. Without a
// prediction the zone is always NoRisk regardless of distance.
func ExposureZone(prediction bool, distanceKM float64) models.RiskZone {
	if !prediction {
		return models.RiskZoneNone
	}
	for _, band := range exposureBands {
		if distanceKM <= band.maxDistanceKM {
			return band.zone
		}
	}
	return models.RiskZoneNone
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
