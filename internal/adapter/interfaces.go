// Package adapter provides transport-layer abstractions for communicating with
// the external threat analysis provider.
//
// The primary abstraction is [ThreatAnalyzer], which decouples the service
// layer from the provider's wire protocol. The package ships an HTTP/REST
// implementation ([NewHTTPThreatAnalyzer]) built on resty.
//
// Error values defined in errors.go are mapped from transport failures and
// non-2xx responses so that callers can use [errors.Is] for provider-agnostic
// error handling (e.g. [ErrProviderUnavailable] when the provider cannot be
// reached).
package adapter

import (
	"context"

	"github.com/sentinelmind/shield/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/threat_analyzer_mock.go -package=mock

// ThreatAnalyzer defines the call-out to the external analysis provider.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ThreatAnalyzer interface {
	// Analyze submits the given content for analysis and returns the
	// provider's structured verdict. The verdict is returned as received:
	// numeric ranges and enum values are not validated here.
	Analyze(ctx context.Context, contentType, content string) (models.AnalysisResult, error)
}
