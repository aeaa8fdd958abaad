package adapter

import "errors"

var (
	ErrProviderUnavailable     = errors.New("analysis provider unavailable")
	ErrProviderResponseInvalid = errors.New("analysis provider returned invalid response")
)
