package risk

import "github.com/waveguard/risk-engine/internal/models"

// Display mappings live here so every map layer renders the same
// color and radius for a given classification instead of each view
// reclassifying on its own.

var tsunamiDisplay = map[models.RiskZone]models.MapDisplay{
	models.RiskZoneHigh:   {Color: "#ff0000", RadiusM: 50000},
	models.RiskZoneMedium: {Color: "#ff8800", RadiusM: 100000},
	models.RiskZoneLow:    {Color: "#ffff00", RadiusM: 200000},
	models.RiskZoneNone:   {Color: "#00ff00", RadiusM: 25000},
}

func TsunamiDisplay(zone models.RiskZone) models.MapDisplay {
	if d, ok := tsunamiDisplay[zone]; ok {
		return d
	}
	return tsunamiDisplay[models.RiskZoneNone]
}

var cycloneDisplay = map[models.CycloneRiskLevel]models.MapDisplay{
	models.CycloneRiskExtreme:  {Color: "#991b1b", RadiusM: 150000},
	models.CycloneRiskHigh:     {Color: "#ef4444", RadiusM: 100000},
	models.CycloneRiskModerate: {Color: "#f59e0b", RadiusM: 75000},
	models.CycloneRiskLow:      {Color: "#22c55e", RadiusM: 50000},
	models.CycloneRiskNone:     {Color: "#6b7280", RadiusM: 25000},
}

func CycloneDisplay(level models.CycloneRiskLevel) models.MapDisplay {
	if d, ok := cycloneDisplay[level]; ok {
		return d
	}
	return cycloneDisplay[models.CycloneRiskNone]
}
