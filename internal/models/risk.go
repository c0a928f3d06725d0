package models

// RiskZone is the tsunami-exposure classification of a user location
// relative to one seismic event.
type RiskZone string

const (
	RiskZoneNone   RiskZone = "no_risk"
	RiskZoneLow    RiskZone = "low_risk"
	RiskZoneMedium RiskZone = "medium_risk"
	RiskZoneHigh   RiskZone = "high_risk"
)

// Rank gives the total order NoRisk < LowRisk < MediumRisk < HighRisk.
func (z RiskZone) Rank() int {
	switch z {
	case RiskZoneLow:
		return 1
	case RiskZoneMedium:
		return 2
	case RiskZoneHigh:
		return 3
	default:
		return 0
	}
}

// CycloneRiskLevel classifies current weather conditions'
// cyclone-formation potential.
type CycloneRiskLevel string

const (
	CycloneRiskNone     CycloneRiskLevel = "no_risk"
	CycloneRiskLow      CycloneRiskLevel = "low_risk"
	CycloneRiskModerate CycloneRiskLevel = "moderate_risk"
	CycloneRiskHigh     CycloneRiskLevel = "high_risk"
	CycloneRiskExtreme  CycloneRiskLevel = "extreme_risk"
)

func (l CycloneRiskLevel) Rank() int {
	switch l {
	case CycloneRiskLow:
		return 1
	case CycloneRiskModerate:
		return 2
	case CycloneRiskHigh:
		return 3
	case CycloneRiskExtreme:
		return 4
	default:
		return 0
	}
}

// OverallStatus is the single worst-case exposure label summarizing
// all analyzed seismic events for a location.
type OverallStatus string

const (
	StatusAllClear      OverallStatus = "all_clear"
	StatusAdvisory      OverallStatus = "advisory"
	StatusElevatedAlert OverallStatus = "elevated_alert"
	StatusHighAlert     OverallStatus = "high_alert"
)
