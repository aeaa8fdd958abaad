package models

import "time"

// Severity labels assigned by the analysis provider. The set is closed by
// convention only; stored records keep whatever label the provider returned.
const (
	SeverityLow      = "Low"
	SeverityMedium   = "Medium"
	SeverityHigh     = "High"
	SeverityCritical = "Critical"
)

// Content types accepted for analysis submissions.
const (
	ThreatTypeURL   = "URL"
	ThreatTypeEmail = "Email"
)

// Threat is one immutable audit record of an analyzed item and its verdict.
// Records are append-only: no update or delete operation exists anywhere in
// the system, and they persist indefinitely.
type Threat struct {
	// ID is the server-assigned identifier, monotonically increasing with
	// insertion order.
	ID int64 `json:"id"`

	// Type is the content category of the analyzed item ("URL" or "Email").
	Type string `json:"type"`

	// Content is the raw analyzed text. Unbounded length.
	Content string `json:"content"`

	// RiskScore is the provider's 0-100 risk estimate. The range is not
	// enforced on insert.
	RiskScore int `json:"risk_score"`

	// Severity is the provider's risk tier label (see Severity* constants).
	Severity string `json:"severity"`

	// Intent is the provider's free-text intent classification.
	Intent string `json:"intent"`

	// Verdict is the provider's free-text recommendation.
	Verdict string `json:"verdict"`

	// Timestamp is the server-assigned creation time, monotonic
	// non-decreasing with ID.
	Timestamp time.Time `json:"timestamp"`
}

// TableName returns the name of the database table
// associated with the Threat model.
func (t Threat) TableName() string {
	return "threats"
}
