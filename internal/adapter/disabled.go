package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/sentinelmind/shield/internal/config"
	"github.com/sentinelmind/shield/internal/logger"
	"github.com/sentinelmind/shield/models"
)

// disabledThreatAnalyzer stands in when no provider is configured. Every call
// fails with [ErrProviderUnavailable], which the transport layer reports as
// 502, while the rest of the API keeps working.
type disabledThreatAnalyzer struct{}

func (disabledThreatAnalyzer) Analyze(_ context.Context, _, _ string) (models.AnalysisResult, error) {
	return models.AnalysisResult{}, fmt.Errorf("%w: no provider configured", ErrProviderUnavailable)
}

// NewThreatAnalyzer returns the HTTP provider adapter when cfg.BaseURL is set
// and the disabled stand-in otherwise. The analysis provider is an optional
// dependency: the server must come up without it.
func NewThreatAnalyzer(cfg config.Analyzer, logger *logger.Logger) (ThreatAnalyzer, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		logger.Warn().Msg("no analysis provider configured, analysis requests will be rejected")
		return disabledThreatAnalyzer{}, nil
	}

	return NewHTTPThreatAnalyzer(cfg, logger)
}
