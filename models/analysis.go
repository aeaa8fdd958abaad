package models

// AnalysisResult is the structured verdict returned by the external threat
// analysis provider. The server treats it as opaque: numeric ranges and enum
// membership are stored as received, without validation.
type AnalysisResult struct {
	RiskScore            int      `json:"risk_score"`
	Severity             string   `json:"severity"`
	Intent               string   `json:"intent"`
	ManipulationPatterns []string `json:"manipulation_patterns"`
	PatternsFound        []string `json:"patterns_found"`
	Recommendation       string   `json:"recommendation"`
	Confidence           int      `json:"confidence"`
	Verdict              string   `json:"verdict"`
}

// ThreatRecord converts the provider verdict for the given submission into
// the persistable audit-record form.
func (a AnalysisResult) ThreatRecord(contentType, content string) Threat {
	return Threat{
		Type:      contentType,
		Content:   content,
		RiskScore: a.RiskScore,
		Severity:  a.Severity,
		Intent:    a.Intent,
		Verdict:   a.Verdict,
	}
}
