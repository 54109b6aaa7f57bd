package docs

import (
	"net/http"

	"github.com/uabrc/rcdocs-mcp/internal/config"
)

// Service answers documentation lookups against the remote source
// repository and the upstream search API. It holds no mutable state besides
// its immutable settings, so concurrent use needs no coordination.
type Service struct {
	settings *config.DocsSettings
	client   *http.Client
}

// NewService creates a documentation service from immutable settings.
func NewService(settings *config.DocsSettings) *Service {
	return &Service{
		settings: settings,
		// Every call re-fetches from the source of truth; connections are
		// not pooled across invocations.
		client: &http.Client{
			Timeout: settings.RequestTimeout,
			Transport: &http.Transport{
				DisableKeepAlives: true,
			},
		},
	}
}

// Settings returns the service settings.
func (s *Service) Settings() *config.DocsSettings {
	return s.settings
}
