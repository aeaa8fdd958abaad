package models

// LoginResponse carries the freshly issued session token back to the caller.
// The presentation layer stores it locally and presents it as a bearer
// credential on every protected call.
type LoginResponse struct {
	Token string `json:"token"`
}

// AnalyzeRequest is the payload of an analysis submission: a content type
// ("URL" or "Email") and the raw text to triage.
type AnalyzeRequest struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// SubmitResponse acknowledges a persisted threat record.
type SubmitResponse struct {
	Success bool `json:"success"`
}
