package app

import "github.com/spf13/pflag"

// RegisterFlags registers all CLI flags on the given FlagSet
func RegisterFlags(flags *pflag.FlagSet) {
	flags.StringP("transport", "t", "", "Transport type: stdio or sse")
	flags.StringP("host", "H", "", "Host for SSE transport")
	flags.IntP("port", "p", 0, "Port for SSE transport")
	flags.StringP("auth-type", "a", "", "Authentication type: none, basic, or apikey")
	flags.StringP("auth-basic-username", "u", "", "Basic auth username")
	flags.StringP("auth-basic-password", "P", "", "Basic auth password")
	flags.StringSliceP("auth-api-keys", "k", nil, "API keys (comma-separated)")

	flags.String("docs-repo", "", "Documentation source repository (owner/name)")
	flags.String("docs-site-base-url", "", "Public documentation site base URL")
	flags.String("docs-raw-base-url", "", "Raw file content host base URL")
	flags.String("docs-api-base-url", "", "Search API base URL override")
	flags.StringSlice("docs-branches", nil, "Branch candidates in preference order (comma-separated)")
	flags.Duration("docs-request-timeout", 0, "Per-request timeout for outbound calls")
	flags.Int("docs-max-results", 0, "Default search result cap (1-10)")
}
