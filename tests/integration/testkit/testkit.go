package testkit

import (
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/uabrc/rcdocs-mcp/internal/app"
)

// Service represents a test service that can be started and stopped
type Service interface {
	Start() (map[string]any, error)
	Stop() error
	GetName() string
}

// TestEnvContext provides access to properties collected during environment startup
type TestEnvContext interface {
	GetProperties() map[string]any
	GetProperty(name string) (any, bool)
}

// TestEnv manages the lifecycle of test services
type TestEnv interface {
	Start() (map[string]any, error)
	Stop() error
	GetContext() TestEnvContext
}

type testEnvContextImpl struct {
	properties map[string]any
}

func (c *testEnvContextImpl) GetProperties() map[string]any {
	return c.properties
}

func (c *testEnvContextImpl) GetProperty(name string) (any, bool) {
	val, ok := c.properties[name]
	return val, ok
}

type testEnvImpl struct {
	services []Service
	context  *testEnvContextImpl
}

// NewTestEnv creates a new test environment with the given services
func NewTestEnv(services ...Service) TestEnv {
	return &testEnvImpl{
		services: services,
		context:  &testEnvContextImpl{properties: make(map[string]any)},
	}
}

func (e *testEnvImpl) Start() (map[string]any, error) {
	for _, s := range e.services {
		props, err := s.Start()
		if err != nil {
			return nil, err
		}
		for k, v := range props {
			e.context.properties[k] = v
		}
	}
	return e.context.properties, nil
}

func (e *testEnvImpl) Stop() error {
	var lastErr error
	// Stop in reverse order
	for i := len(e.services) - 1; i >= 0; i-- {
		if err := e.services[i].Stop(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

func (e *testEnvImpl) GetContext() TestEnvContext {
	return e.context
}

// RawContentService serves documentation page content the way a raw file
// host does. Pages are keyed by "branch/path" relative to the repository.
type RawContentService struct {
	Repo   string
	Pages  map[string]string
	server *httptest.Server
}

// NewRawContentService creates a raw content fixture for the given repository
func NewRawContentService(repo string, pages map[string]string) *RawContentService {
	return &RawContentService{Repo: repo, Pages: pages}
}

func (s *RawContentService) Start() (map[string]any, error) {
	prefix := "/" + s.Repo + "/"
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key, found := strings.CutPrefix(r.URL.Path, prefix)
		if !found {
			http.NotFound(w, r)
			return
		}
		content, ok := s.Pages[key]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(content))
	}))
	return map[string]any{"raw_base_url": s.server.URL}, nil
}

func (s *RawContentService) Stop() error {
	if s.server != nil {
		s.server.Close()
	}
	return nil
}

func (s *RawContentService) GetName() string {
	return "raw-content"
}

// SearchAPIService serves a canned code-search response at /search/code
type SearchAPIService struct {
	Body   string
	server *httptest.Server
}

// NewSearchAPIService creates a search API fixture answering with the given JSON body
func NewSearchAPIService(body string) *SearchAPIService {
	return &SearchAPIService{Body: body}
}

func (s *SearchAPIService) Start() (map[string]any, error) {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/code" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(s.Body))
	}))
	return map[string]any{"api_base_url": s.server.URL}, nil
}

func (s *SearchAPIService) Stop() error {
	if s.server != nil {
		s.server.Close()
	}
	return nil
}

func (s *SearchAPIService) GetName() string {
	return "search-api"
}

// GetFreePort returns a free port from the kernel
func GetFreePort() (int, error) {
	return getFreePortWithAddr("localhost:0")
}

// MustGetFreePort returns a free port or fails the test
func MustGetFreePort(t testing.TB) int {
	t.Helper()
	port, err := GetFreePort()
	if err != nil {
		t.Fatalf("Failed to get free port: %v", err)
	}
	return port
}

func getFreePortWithAddr(addrStr string) (int, error) {
	addr, err := net.ResolveTCPAddr("tcp", addrStr)
	if err != nil {
		return 0, err
	}

	l, err := net.ListenTCP("tcp", addr)
	if err != nil {
		return 0, err
	}
	defer func() { _ = l.Close() }()
	return l.Addr().(*net.TCPAddr).Port, nil
}

// FlagOptions configures NewTestFlags
type FlagOptions struct {
	Port          int    // Uses free port if 0
	Transport     string // Defaults to "sse"
	AuthType      string // Defaults to "none"
	Host          string // Defaults to "localhost"
	DocsRawBase   string // Optional raw content host override
	DocsAPIBase   string // Optional search API override
	DocsRepo      string // Optional repository override
	DocsBranches  string // Optional comma-separated branch list
	DocsTimeout   string // Optional request timeout
	DocsMaxResult int    // Optional default result cap
}

// NewTestFlags creates a configured pflag.FlagSet for testing
func NewTestFlags(t testing.TB, opts *FlagOptions) *pflag.FlagSet {
	t.Helper()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	app.RegisterFlags(flags)

	port := 0
	transport := "sse"
	authType := "none"
	host := "localhost"

	if opts != nil {
		if opts.Port != 0 {
			port = opts.Port
		}
		if opts.Transport != "" {
			transport = opts.Transport
		}
		if opts.AuthType != "" {
			authType = opts.AuthType
		}
		if opts.Host != "" {
			host = opts.Host
		}
	}

	if port == 0 {
		port = MustGetFreePort(t)
	}

	_ = flags.Set("port", fmt.Sprintf("%d", port))
	_ = flags.Set("transport", transport)
	_ = flags.Set("auth-type", authType)
	_ = flags.Set("host", host)

	if opts != nil {
		if opts.DocsRawBase != "" {
			_ = flags.Set("docs-raw-base-url", opts.DocsRawBase)
		}
		if opts.DocsAPIBase != "" {
			_ = flags.Set("docs-api-base-url", opts.DocsAPIBase)
		}
		if opts.DocsRepo != "" {
			_ = flags.Set("docs-repo", opts.DocsRepo)
		}
		if opts.DocsBranches != "" {
			_ = flags.Set("docs-branches", opts.DocsBranches)
		}
		if opts.DocsTimeout != "" {
			_ = flags.Set("docs-request-timeout", opts.DocsTimeout)
		}
		if opts.DocsMaxResult != 0 {
			_ = flags.Set("docs-max-results", fmt.Sprintf("%d", opts.DocsMaxResult))
		}
	}

	return flags
}
