package risk

import "github.com/waveguard/risk-engine/internal/models"

// OverallStatus reduces per-event risk zones to the single worst-case
// status. AllClear when there are no events or every event is NoRisk.
func OverallStatus(events []models.TsunamiEventAssessment) models.OverallStatus {
	maxZone := models.RiskZoneNone
	for _, e := range events {
		if e.UserRisk.Rank() > maxZone.Rank() {
			maxZone = e.UserRisk
		}
	}

	switch maxZone {
	case models.RiskZoneHigh:
		return models.StatusHighAlert
	case models.RiskZoneMedium:
		return models.StatusElevatedAlert
	case models.RiskZoneLow:
		return models.StatusAdvisory
	default:
		return models.StatusAllClear
	}
}

// HighestRisk selects the event assessment with the maximum risk
// zone. Ties break to the smallest distance, then the largest
// magnitude. Nil only for an empty list.
func HighestRisk(events []models.TsunamiEventAssessment) *models.TsunamiEventAssessment {
	if len(events) == 0 {
		return nil
	}

	best := 0
	for i := 1; i < len(events); i++ {
		if outranks(events[i], events[best]) {
			best = i
		}
	}
	return &events[best]
}

func outranks(a, b models.TsunamiEventAssessment) bool {
	if a.UserRisk.Rank() != b.UserRisk.Rank() {
		return a.UserRisk.Rank() > b.UserRisk.Rank()
	}
	if a.DistanceKM != b.DistanceKM {
		return a.DistanceKM < b.DistanceKM
	}
	return a.Event.Magnitude > b.Event.Magnitude
}

// Baseline advisories appended to every recommendation list.
var baselineRecommendations = []string{
	"Monitor local weather updates and warnings",
	"Stay informed about evacuation routes in your area",
}

var tsunamiRecommendations = map[models.OverallStatus][]string{
	models.StatusHighAlert: {
		"IMMEDIATE: Move to higher ground away from the coast",
		"Follow official tsunami warnings and evacuation orders",
		"Do not return to coastal areas until authorities declare them safe",
		"Keep emergency supplies and communication devices ready",
	},
	models.StatusElevatedAlert: {
		"Prepare to move inland or to higher ground on short notice",
		"Review your evacuation route and family emergency plan",
		"Keep emergency supplies accessible",
		"Follow official advisories closely",
	},
	models.StatusAdvisory: {
		"Stay alert for updated tsunami advisories",
		"Avoid beaches and low-lying coastal areas until conditions clear",
		"Verify your emergency kit is stocked",
	},
	models.StatusAllClear: {
		"No tsunami threat detected from recent seismic activity",
	},
}

// TsunamiRecommendations returns the fixed action list for an overall
// status, with the baseline advisories appended.
func TsunamiRecommendations(status models.OverallStatus) []string {
	return withBaseline(tsunamiRecommendations[status])
}

var cycloneRecommendations = map[models.CycloneRiskLevel][]string{
	models.CycloneRiskExtreme: {
		"IMMEDIATE: Prepare for hurricane/typhoon conditions",
		"Secure all outdoor items and board up windows",
		"Stock emergency supplies for at least 7 days",
		"Review evacuation plans and routes immediately",
		"Monitor emergency broadcasts continuously",
	},
	models.CycloneRiskHigh: {
		"Prepare for severe tropical storm conditions",
		"Secure outdoor furniture and equipment",
		"Stock emergency supplies for 3-5 days",
		"Review emergency plans with family",
		"Monitor weather forecasts closely",
	},
	models.CycloneRiskModerate: {
		"Prepare for possible tropical storm conditions",
		"Check and secure loose outdoor items",
		"Stock basic emergency supplies",
		"Stay updated on weather developments",
	},
	models.CycloneRiskLow: {
		"Monitor weather conditions for changes",
		"Ensure emergency kit is ready",
	},
}

// CycloneRecommendations returns the fixed action list for a cyclone
// risk level, with the baseline advisories appended.
func CycloneRecommendations(level models.CycloneRiskLevel) []string {
	return withBaseline(cycloneRecommendations[level])
}

var baselineMonitoringAdvice = []string{
	"Check weather updates every 6 hours",
	"Monitor official meteorological services",
}

var cycloneMonitoringAdvice = map[models.CycloneRiskLevel][]string{
	models.CycloneRiskExtreme: {
		"Monitor conditions every 30 minutes",
		"Follow emergency management broadcasts",
		"Track official hurricane/typhoon warnings",
		"Watch for rapid intensification updates",
	},
	models.CycloneRiskHigh: {
		"Monitor conditions every 2 hours",
		"Watch for tropical storm warnings",
		"Track storm development patterns",
	},
	models.CycloneRiskModerate: {
		"Monitor conditions every 4 hours",
		"Watch for weather advisories",
		"Track atmospheric pressure trends",
	},
}

// CycloneMonitoringAdvice returns the monitoring cadence list for a
// cyclone risk level, with the baseline advice appended.
func CycloneMonitoringAdvice(level models.CycloneRiskLevel) []string {
	specific := cycloneMonitoringAdvice[level]
	out := make([]string, 0, len(specific)+len(baselineMonitoringAdvice))
	out = append(out, specific...)
	out = append(out, baselineMonitoringAdvice...)
	return out
}

func withBaseline(specific []string) []string {
	out := make([]string, 0, len(specific)+len(baselineRecommendations))
	out = append(out, specific...)
	out = append(out, baselineRecommendations...)
	return out
}
