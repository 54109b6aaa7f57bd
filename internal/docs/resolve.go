package docs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// ResolveContent fetches the content behind a canonical repository path,
// trying each configured branch candidate in order. The first candidate that
// answers with a plain-text body wins and no further candidates are
// attempted. Transient failures (network errors, timeouts, non-success
// statuses) advance to the next candidate; exhaustion yields a
// NotFoundError carrying the last failure.
//
// A successful response with a structured payload fails immediately with
// ErrUnexpectedContentType without trying further branches.
func (s *Service) ResolveContent(ctx context.Context, canonicalPath string) (string, error) {
	var lastErr error

	for _, branch := range s.settings.Branches {
		rawURL := s.rawContentURL(branch, canonicalPath)
		slog.Info("Fetching documentation page", "branch", branch, "url", rawURL)

		body, contentType, err := s.fetchRaw(ctx, rawURL)
		if err != nil {
			slog.Warn("Branch candidate failed", "branch", branch, "path", canonicalPath, "error", err)
			lastErr = err
			continue
		}

		if isStructuredPayload(contentType) {
			return "", fmt.Errorf("%w: got %q from %s", ErrUnexpectedContentType, contentType, rawURL)
		}

		return body, nil
	}

	return "", &NotFoundError{Path: canonicalPath, LastErr: lastErr}
}

// rawContentURL builds the revision-specific fetch address for a branch.
func (s *Service) rawContentURL(branch, canonicalPath string) string {
	base := strings.TrimSuffix(s.settings.RawBaseURL, "/")
	return fmt.Sprintf("%s/%s/%s/%s", base, s.settings.Repo, branch, canonicalPath)
}

// fetchRaw issues a single GET and returns the body and content type.
// Non-2xx statuses are reported as errors.
func (s *Service) fetchRaw(ctx context.Context, rawURL string) (body, contentType string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", s.settings.UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", "", fmt.Errorf("fetch %s: unexpected status %d", rawURL, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", fmt.Errorf("read body from %s: %w", rawURL, err)
	}

	return string(data), resp.Header.Get("Content-Type"), nil
}

// isStructuredPayload reports whether the content type denotes a structured
// document rather than the plain text the raw content host is expected to
// serve.
func isStructuredPayload(contentType string) bool {
	return strings.Contains(contentType, "application/json")
}
