package docs

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/uabrc/rcdocs-mcp/internal/config"
)

// NormalizePath converts an arbitrary page identifier into the canonical
// repository-relative path used for content resolution. Accepted inputs are
// repository file URLs on the configured source host, rooted or unrooted
// relative paths, with or without the canonical extension.
//
// The result always carries the root folder prefix and the canonical
// extension and never a leading slash. NormalizePath is idempotent: feeding
// a canonical path back in returns it unchanged.
func NormalizePath(cfg *config.DocsSettings, identifier string) (string, error) {
	p := strings.TrimSpace(identifier)
	if p == "" {
		return "", fmt.Errorf("%w: empty identifier", ErrInvalidReference)
	}

	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		extracted, err := pathFromBlobURL(cfg, p)
		if err != nil {
			return "", err
		}
		p = extracted
	}

	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidReference)
	}

	prefix := strings.Trim(cfg.RootFolder, "/")
	if !strings.HasPrefix(p, prefix+"/") {
		p = prefix + "/" + p
	}
	if !strings.HasSuffix(p, cfg.Extension) {
		p += cfg.Extension
	}

	return p, nil
}

// pathFromBlobURL extracts the repository file path following the
// "/blob/<revision>/" segment of a source-host file URL.
func pathFromBlobURL(cfg *config.DocsSettings, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidReference, rawURL)
	}

	if u.Host != cfg.SourceHost {
		return "", fmt.Errorf("%w: %s is not hosted on %s", ErrInvalidReference, rawURL, cfg.SourceHost)
	}

	_, after, found := strings.Cut(u.Path, "/blob/")
	if !found {
		return "", fmt.Errorf("%w: no /blob/<revision>/ segment in %s", ErrInvalidReference, rawURL)
	}

	// after holds "<revision>/<file path>"
	_, p, found := strings.Cut(after, "/")
	if !found || p == "" {
		return "", fmt.Errorf("%w: no file path after revision in %s", ErrInvalidReference, rawURL)
	}

	return p, nil
}
