package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/sentinelmind/shield/internal/config"
	"github.com/sentinelmind/shield/internal/logger"
	"github.com/sentinelmind/shield/internal/utils"
	"github.com/sentinelmind/shield/models"
)

// analyzeRequest is the wire form of a submission to the analysis provider.
type analyzeRequest struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

type httpThreatAnalyzer struct {
	client *utils.HTTPClient

	apiKey string

	logger *logger.Logger
}

// NewHTTPThreatAnalyzer constructs an HTTP/REST implementation of
// [ThreatAnalyzer]. It normalises and validates the base URL from
// cfg.BaseURL and configures the underlying HTTP client with the resolved
// base URL and request timeout. When cfg.APIKey is non-empty it is attached
// to every request as a bearer token.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPThreatAnalyzer(cfg config.Analyzer, logger *logger.Logger) (ThreatAnalyzer, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid analyzer base url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &httpThreatAnalyzer{client: client, apiKey: cfg.APIKey, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Analyze implements [ThreatAnalyzer]. It POSTs {type, content} to the
// provider's /analyze endpoint and decodes the structured verdict from the
// response body. Transport failures map to [ErrProviderUnavailable]; non-2xx
// statuses and undecodable bodies map to [ErrProviderResponseInvalid].
func (h *httpThreatAnalyzer) Analyze(ctx context.Context, contentType, content string) (models.AnalysisResult, error) {
	request := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(analyzeRequest{Type: contentType, Content: content})
	if h.apiKey != "" {
		request.SetAuthToken(h.apiKey)
	}

	resp, err := request.Post("/analyze")
	if err != nil {
		return models.AnalysisResult{}, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}
	if !resp.IsSuccess() {
		body := strings.TrimSpace(string(resp.Body()))
		return models.AnalysisResult{}, fmt.Errorf("%w: http %d: %s", ErrProviderResponseInvalid, resp.StatusCode(), body)
	}

	var result models.AnalysisResult
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return models.AnalysisResult{}, fmt.Errorf("%w: decoding verdict: %w", ErrProviderResponseInvalid, err)
	}

	return result, nil
}
