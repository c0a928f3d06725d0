// Package assess orchestrates one request-scoped assessment: fetch,
// classify, aggregate, package. It holds no cross-request state, so
// concurrent assessments need no coordination; cancellation of the
// request context abandons all in-flight work.
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
	"github.com/waveguard/risk-engine/internal/worker"
)

const seismicSource = "USGS Earthquake Hazards Program"

// SeismicFetcher retrieves the events of a feed selector.
type SeismicFetcher interface {
	Fetch(ctx context.Context, selector fetch.FeedSelector) ([]models.SeismicEvent, error)
}

// TsunamiAssessor builds one OverallTsunamiAssessment per call.
type TsunamiAssessor struct {
	fetcher    SeismicFetcher
	classifier *risk.TsunamiClassifier
	workers    int
	clock      clockwork.Clock
	metrics    *observability.Metrics
}

func NewTsunamiAssessor(fetcher SeismicFetcher, classifier *risk.TsunamiClassifier, workers int, clock clockwork.Clock, metrics *observability.Metrics) *TsunamiAssessor {
	if workers < 1 {
		workers = 1
	}
	return &TsunamiAssessor{
		fetcher:    fetcher,
		classifier: classifier,
		workers:    workers,
		clock:      clock,
		metrics:    metrics,
	}
}

// Assess fetches the selected feed, classifies every event through a
// bounded worker pool, and reduces the results to one verdict.
// Results are gathered by index, so output order matches feed order
// regardless of worker scheduling.
func (a *TsunamiAssessor) Assess(ctx context.Context, location models.GeoPoint, selector fetch.FeedSelector) (*models.OverallTsunamiAssessment, error) {
	timer := a.clock.Now()

	events, err := a.fetcher.Fetch(ctx, selector)
	if err != nil {
		a.recordFetchFailure(err)
		return nil, err
	}

	assessments := a.classifyAll(ctx, events, location)

	status := risk.OverallStatus(assessments)
	result := &models.OverallTsunamiAssessment{
		Location:        location,
		Events:          assessments,
		HighestRisk:     risk.HighestRisk(assessments),
		OverallStatus:   status,
		Recommendations: risk.TsunamiRecommendations(status),
		FeedMetadata: models.FeedMetadata{
			FeedType:    string(selector),
			Source:      seismicSource,
			EventCount:  len(events),
			RetrievedAt: a.clock.Now().UTC(),
		},
		Timestamp: a.clock.Now().UTC(),
	}

	if a.metrics != nil {
		a.metrics.Assessments.WithLabelValues("tsunami", string(status)).Inc()
		a.metrics.AssessmentDuration.WithLabelValues("tsunami").Observe(a.clock.Since(timer).Seconds())
	}

	slog.Info("tsunami assessment complete",
		"feed", selector, "events", len(events), "status", status)

	return result, nil
}

type classifyJob struct {
	index int
	event models.SeismicEvent
}

func (a *TsunamiAssessor) classifyAll(ctx context.Context, events []models.SeismicEvent, location models.GeoPoint) []models.TsunamiEventAssessment {
	results := make([]models.TsunamiEventAssessment, len(events))

	// Each job writes a distinct index, so no locking is needed.
	processor := func(ctx context.Context, job worker.Job) error {
		j := job.(classifyJob)
		results[j.index] = a.classifier.Classify(ctx, j.event, location)
		return nil
	}

	pool := worker.NewPool(a.workers, len(events), processor)
	pool.Start(ctx)
	for i, ev := range events {
		if err := pool.Submit(ctx, classifyJob{index: i, event: ev}); err != nil {
			break
		}
	}
	pool.Stop()

	return results
}

func (a *TsunamiAssessor) recordFetchFailure(err error) {
	var fe *fetch.Error
	if a.metrics != nil && errors.As(err, &fe) {
		a.metrics.FetchFailures.WithLabelValues(fe.Source, string(fe.Reason)).Inc()
	}
}
