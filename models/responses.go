package models

import "time"

// DashboardStats is the aggregate view rendered by the dashboard page.
type DashboardStats struct {
	// TotalThreats is the number of records ever analyzed.
	TotalThreats int64 `json:"totalThreats"`

	// AvgRisk is the arithmetic mean of risk scores across all records,
	// rounded to the nearest integer. Zero when no records exist.
	AvgRisk int `json:"avgRisk"`

	// CriticalThreats counts records whose severity is exactly "Critical".
	CriticalThreats int64 `json:"criticalThreats"`

	// RecentThreats holds the risk trajectory of the 10 most recent records
	// in chronological (oldest-to-newest) order for charting.
	RecentThreats []RiskPoint `json:"recentThreats"`
}

// RiskPoint is a single point on the dashboard's recent-risk chart.
type RiskPoint struct {
	RiskScore int       `json:"risk_score"`
	Timestamp time.Time `json:"timestamp"`
}
