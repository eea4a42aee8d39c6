package attendant

import (
	"time"

	"ai-attendant-widget/internal/pkg/logger"
	"ai-attendant-widget/pkg/store"
)

type Options struct {
	BaseURL      string
	Timeout      time.Duration
	MockFallback bool
	MockDelay    time.Duration
}

// NewClient returns the HTTP client, wrapped in Fallback when mock answers are enabled.
func NewClient(opts Options, leads LeadSource, ids *store.IDGenerator, log logger.ILogger) Client {
	httpClient := NewHTTPClient(opts.BaseURL, opts.Timeout, leads)
	if !opts.MockFallback {
		return httpClient
	}
	return NewFallback(httpClient, opts.MockDelay, ids, log)
}
