package docs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPageHandler_EmptyPath(t *testing.T) {
	handler := NewPageHandler(NewService(NewFixtureSettings("", "")))

	result, _, err := handler.Handle(context.Background(), nil, PageArgument{PagePath: ""})
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if !result.IsError {
		t.Error("Expected error result for empty path")
	}
	if got := resultText(t, result); got != "Page path cannot be empty" {
		t.Errorf("Unexpected message: %q", got)
	}
}

func TestPageHandler_InvalidReference(t *testing.T) {
	handler := NewPageHandler(NewService(NewFixtureSettings("", "")))

	result, _, err := handler.Handle(context.Background(), nil, PageArgument{
		PagePath: "https://gitlab.com/uabrc/uabrc.github.io/blob/main/docs/page.md",
	})
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if !result.IsError {
		t.Fatal("Expected error result for out-of-domain URL")
	}
	if got := resultText(t, result); !strings.Contains(got, "invalid page reference") {
		t.Errorf("Unexpected message: %q", got)
	}
}

func TestPageHandler_RetrievesPage(t *testing.T) {
	fixture := newRawHostFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("# Slurm Tutorial\n\nSubmit jobs with sbatch."))
	})
	handler := NewPageHandler(NewService(NewFixtureSettings(fixture.server.URL, "")))

	result, _, err := handler.Handle(context.Background(), nil, PageArgument{
		PagePath: "cheaha/slurm/slurm_tutorial",
	})
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if result.IsError {
		t.Fatalf("Unexpected error result: %s", resultText(t, result))
	}

	text := resultText(t, result)
	for _, want := range []string{
		"# Documentation Page: docs/cheaha/slurm/slurm_tutorial.md",
		"**URL:** https://docs.rc.uab.edu/cheaha/slurm/slurm_tutorial",
		"Submit jobs with sbatch.",
		"**Source:** UAB Research Computing Documentation",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected result to contain %q, got:\n%s", want, text)
		}
	}

	paths := fixture.requestedPaths()
	if len(paths) != 1 {
		t.Fatalf("Expected one raw content request, got %d", len(paths))
	}
	if want := "/uabrc/uabrc.github.io/main/docs/cheaha/slurm/slurm_tutorial.md"; paths[0] != want {
		t.Errorf("Expected request path %q, got %q", want, paths[0])
	}
}

func TestPageHandler_FallbackBranch(t *testing.T) {
	fixture := newRawHostFixture(t, nil)
	fixture.handler = func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/main/") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("legacy branch content"))
	}
	handler := NewPageHandler(NewService(NewFixtureSettings(fixture.server.URL, "")))

	result, _, err := handler.Handle(context.Background(), nil, PageArgument{PagePath: "help/support"})
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if result.IsError {
		t.Fatalf("Expected fallback success, got error result: %s", resultText(t, result))
	}
	if got := resultText(t, result); !strings.Contains(got, "legacy branch content") {
		t.Errorf("Expected fallback content, got:\n%s", got)
	}
}

func TestPageHandler_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(http.NotFound))
	t.Cleanup(server.Close)
	handler := NewPageHandler(NewService(NewFixtureSettings(server.URL, "")))

	result, _, err := handler.Handle(context.Background(), nil, PageArgument{PagePath: "missing/page"})
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if !result.IsError {
		t.Fatal("Expected error result for missing page")
	}

	text := resultText(t, result)
	if !strings.Contains(text, "The file may not exist at path: docs/missing/page.md") {
		t.Errorf("Expected not-found guidance with canonical path, got: %q", text)
	}
}

func TestPageHandler_BlobURLReference(t *testing.T) {
	fixture := newRawHostFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("content"))
	})
	handler := NewPageHandler(NewService(NewFixtureSettings(fixture.server.URL, "")))

	result, _, err := handler.Handle(context.Background(), nil, PageArgument{
		PagePath: "https://github.com/uabrc/uabrc.github.io/blob/main/docs/cheaha/tutorial.md",
	})
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if result.IsError {
		t.Fatalf("Unexpected error result: %s", resultText(t, result))
	}
	if got := resultText(t, result); !strings.Contains(got, "# Documentation Page: docs/cheaha/tutorial.md") {
		t.Errorf("Expected blob URL to normalize to canonical path, got:\n%s", got)
	}
}
