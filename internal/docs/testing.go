package docs

import (
	"time"

	"github.com/uabrc/rcdocs-mcp/internal/config"
)

// NewFixtureSettings returns documentation settings pointing at fixture
// hosts. Empty base URLs keep the corresponding defaults, which is fine for
// tests that never reach the network.
func NewFixtureSettings(rawBaseURL, apiBaseURL string) *config.DocsSettings {
	return &config.DocsSettings{
		Repo:           "uabrc/uabrc.github.io",
		SourceHost:     "github.com",
		APIBaseURL:     apiBaseURL,
		RawBaseURL:     rawBaseURL,
		SiteBaseURL:    "https://docs.rc.uab.edu",
		PortalBaseURL:  "https://rc.uab.edu",
		RootFolder:     "docs",
		Extension:      ".md",
		Branches:       []string{"main", "master"},
		RequestTimeout: 5 * time.Second,
		MaxResults:     5,
		TokenEnvVar:    "RCDOCS_TEST_TOKEN",
		UserAgent:      "uab-rc-docs-mcp/test",
	}
}
