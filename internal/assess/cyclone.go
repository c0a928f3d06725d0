package assess

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/waveguard/risk-engine/internal/fetch"
	"github.com/waveguard/risk-engine/internal/models"
	"github.com/waveguard/risk-engine/internal/observability"
	"github.com/waveguard/risk-engine/internal/risk"
)

const weatherSource = "OpenWeatherMap Current Weather API"

// WeatherFetcher retrieves one current-conditions snapshot.
type WeatherFetcher interface {
	Fetch(ctx context.Context, point models.GeoPoint) (models.WeatherSnapshot, error)
}

// CycloneAssessor builds one CycloneAssessment per call.
type CycloneAssessor struct {
	fetcher WeatherFetcher
	clock   clockwork.Clock
	metrics *observability.Metrics
}

func NewCycloneAssessor(fetcher WeatherFetcher, clock clockwork.Clock, metrics *observability.Metrics) *CycloneAssessor {
	return &CycloneAssessor{
		fetcher: fetcher,
		clock:   clock,
		metrics: metrics,
	}
}

// Assess fetches the weather snapshot and classifies it. A snapshot
// flagged synthetic passes through with its flag intact so callers
// can surface degraded confidence.
func (a *CycloneAssessor) Assess(ctx context.Context, location models.GeoPoint, address string) (*models.CycloneAssessment, error) {
	timer := a.clock.Now()

	weather, err := a.fetcher.Fetch(ctx, location)
	if err != nil {
		var fe *fetch.Error
		if a.metrics != nil && errors.As(err, &fe) {
			a.metrics.FetchFailures.WithLabelValues(fe.Source, string(fe.Reason)).Inc()
		}
		return nil, err
	}

	dataSource := weatherSource
	if weather.Synthetic {
		dataSource = "Synthetic fallback (upstream unreachable)"
		if a.metrics != nil {
			a.metrics.SyntheticFallbacks.Inc()
		}
		slog.Warn("serving synthetic weather snapshot", "reason", weather.FallbackReason)
	}

	classified := risk.ClassifyCyclone(weather)

	result := &models.CycloneAssessment{
		Location:             location,
		Address:              address,
		Weather:              weather,
		Prediction:           classified.Prediction,
		RiskLevel:            classified.RiskLevel,
		Confidence:           classified.Confidence,
		PredictedWindSpeedMS: classified.PredictedWindSpeedMS,
		RiskFactors:          classified.RiskFactors,
		Recommendations:      risk.CycloneRecommendations(classified.RiskLevel),
		MonitoringAdvice:     risk.CycloneMonitoringAdvice(classified.RiskLevel),
		Display:              risk.CycloneDisplay(classified.RiskLevel),
		DataSource:           dataSource,
		Timestamp:            a.clock.Now().UTC(),
	}

	if a.metrics != nil {
		a.metrics.Assessments.WithLabelValues("cyclone", string(classified.RiskLevel)).Inc()
		a.metrics.AssessmentDuration.WithLabelValues("cyclone").Observe(a.clock.Since(timer).Seconds())
	}

	slog.Info("cyclone assessment complete",
		"risk_level", classified.RiskLevel, "synthetic", weather.Synthetic)

	return result, nil
}
