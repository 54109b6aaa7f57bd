package docs

import (
	"strings"

	"github.com/uabrc/rcdocs-mcp/internal/config"
)

// indexFileToken is the file name used for section index pages in the
// repository. It never appears in public site URLs.
const indexFileToken = "README"

// CleanPath converts a repository-relative source path into the path segment
// used on the public documentation site. The transformation order matters:
// drop a trailing canonical extension, remove index-file segments, strip one
// leading root-folder segment, strip a trailing slash.
//
// CleanPath is idempotent on its own output, so callers may pass either a
// raw repository path or one that was already cleaned.
func CleanPath(cfg *config.DocsSettings, p string) string {
	p = strings.TrimSuffix(p, cfg.Extension)
	p = dropIndexSegments(p)

	prefix := strings.Trim(cfg.RootFolder, "/")
	if p == prefix {
		p = ""
	} else {
		p = strings.TrimPrefix(p, prefix+"/")
	}

	return strings.TrimSuffix(p, "/")
}

// PageURL composes the public documentation URL for a repository-relative
// source path.
func PageURL(cfg *config.DocsSettings, p string) string {
	base := strings.TrimSuffix(cfg.SiteBaseURL, "/")
	cleaned := CleanPath(cfg, p)
	if cleaned == "" {
		return base
	}
	return base + "/" + cleaned
}

// dropIndexSegments removes path segments that exactly match the index file
// token. Matching whole segments only keeps unrelated components that merely
// contain the token (e.g. "README_archive") intact.
func dropIndexSegments(p string) string {
	segments := strings.Split(p, "/")
	kept := segments[:0]
	for _, seg := range segments {
		if seg == indexFileToken {
			continue
		}
		kept = append(kept, seg)
	}
	return strings.Join(kept, "/")
}
