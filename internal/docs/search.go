package docs

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
)

// Search result cap bounds. The upstream code-search API serves at most 10
// results per documentation query; requests outside the range are clamped.
const (
	minResultCap = 1
	maxResultCap = 10
)

// Entry is a search hit mapped into public-facing display fields.
type Entry struct {
	// Title is the source file name of the hit.
	Title string

	// PublicURL is the page location on the documentation site.
	PublicURL string

	// RepositoryURL is the hit's file URL on the source host.
	RepositoryURL string

	// SourcePath is the repository-relative path of the source file.
	SourcePath string
}

// Search issues a single code-search request scoped to the documentation
// repository and maps the hits into documentation entries, preserving the
// upstream ranking order. The result cap is clamped to [1, 10] and enforced
// again on output in case the upstream over-returns.
//
// An optional bearer credential is read from the configured environment
// variable on every call; its absence degrades to anonymous rate limits.
// Exactly one upstream attempt is made, never a retry. Zero hits yield an
// empty slice, not an error.
func (s *Service) Search(ctx context.Context, query string, maxResults int) ([]Entry, int, error) {
	resultCap := clampResultCap(maxResults)

	client, err := s.searchClient(ctx)
	if err != nil {
		return nil, 0, &TranslationError{Err: err}
	}

	scoped := fmt.Sprintf("%s repo:%s", query, s.settings.Repo)
	opts := &gh.SearchOptions{
		ListOptions: gh.ListOptions{PerPage: resultCap},
	}

	result, _, err := client.Search.Code(ctx, scoped, opts)
	if err != nil {
		return nil, 0, classifySearchError(err)
	}

	hits := result.CodeResults
	if len(hits) > resultCap {
		hits = hits[:resultCap]
	}

	entries := make([]Entry, 0, len(hits))
	for _, hit := range hits {
		path := hit.GetPath()
		entries = append(entries, Entry{
			Title:         hit.GetName(),
			PublicURL:     PageURL(s.settings, path),
			RepositoryURL: hit.GetHTMLURL(),
			SourcePath:    path,
		})
	}

	return entries, result.GetTotal(), nil
}

// clampResultCap bounds the requested result cap to [minResultCap, maxResultCap].
func clampResultCap(n int) int {
	if n < minResultCap {
		return minResultCap
	}
	if n > maxResultCap {
		return maxResultCap
	}
	return n
}

// searchClient builds a GitHub client for a single search call. The bearer
// credential is sourced from the execution environment here, once per call.
func (s *Service) searchClient(ctx context.Context) (*gh.Client, error) {
	httpClient := &http.Client{Timeout: s.settings.RequestTimeout}

	if token := os.Getenv(s.settings.TokenEnvVar); token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(ctx, ts)
		httpClient.Timeout = s.settings.RequestTimeout
	}

	client := gh.NewClient(httpClient)
	client.UserAgent = s.settings.UserAgent

	if s.settings.APIBaseURL != "" {
		base, err := url.Parse(strings.TrimSuffix(s.settings.APIBaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("parse search API base URL: %w", err)
		}
		client.BaseURL = base
	}

	return client, nil
}

// classifySearchError maps upstream search failures onto the lookup error
// taxonomy: credential rejection, quota exhaustion, or a generic
// translation failure.
func classifySearchError(err error) error {
	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return &RateLimitedError{Err: err}
	}

	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return &RateLimitedError{Err: err}
	}

	var respErr *gh.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		switch respErr.Response.StatusCode {
		case http.StatusUnauthorized:
			return &AuthError{Err: err}
		case http.StatusForbidden, http.StatusTooManyRequests:
			return &RateLimitedError{Err: err}
		}
	}

	return &TranslationError{Err: err}
}
