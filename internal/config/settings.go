package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Auth type constants
const (
	AuthTypeNone   = "none"
	AuthTypeBasic  = "basic"
	AuthTypeAPIKey = "apikey"
)

// AuthSettings configuration for authentication
type AuthSettings struct {
	Type    string            `mapstructure:"type"` // AuthTypeNone, AuthTypeBasic, or AuthTypeAPIKey
	Basic   BasicAuthSettings `mapstructure:"basic"`
	APIKeys []string          `mapstructure:"api_keys"`
}

// BasicAuthSettings configuration for basic auth
type BasicAuthSettings struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// DocsSettings configuration for the documentation source repository and the
// public documentation site derived from it.
type DocsSettings struct {
	// Repo is the GitHub repository holding the documentation source,
	// in "owner/name" form.
	Repo string `mapstructure:"repo"`

	// SourceHost is the host on which repository file URLs live. Page
	// references on any other host are rejected.
	SourceHost string `mapstructure:"source_host"`

	// APIBaseURL overrides the GitHub API base URL. Empty means the
	// public API. Used to point search at a fixture server in tests.
	APIBaseURL string `mapstructure:"api_base_url"`

	// RawBaseURL is the raw file content host.
	RawBaseURL string `mapstructure:"raw_base_url"`

	// SiteBaseURL is the public documentation site.
	SiteBaseURL string `mapstructure:"site_base_url"`

	// PortalBaseURL is the cluster access portal, referenced by the
	// informational tools.
	PortalBaseURL string `mapstructure:"portal_base_url"`

	// RootFolder is the repository subdirectory under which all
	// documentation source files live.
	RootFolder string `mapstructure:"root_folder"`

	// Extension is the canonical source file extension, including the dot.
	Extension string `mapstructure:"extension"`

	// Branches are the revision candidates tried during content
	// resolution, in preference order.
	Branches []string `mapstructure:"branches"`

	// RequestTimeout bounds every outbound request.
	RequestTimeout time.Duration `mapstructure:"request_timeout"`

	// MaxResults is the default search result cap when the caller does
	// not ask for one. The hard cap is 10 regardless.
	MaxResults int `mapstructure:"max_results"`

	// TokenEnvVar names the environment variable holding the optional
	// GitHub search credential. Read per search call, never stored.
	TokenEnvVar string `mapstructure:"token_env_var"`

	// UserAgent is sent on every outbound request.
	UserAgent string `mapstructure:"user_agent"`
}

// Settings application settings
type Settings struct {
	Transport string       `mapstructure:"transport"`
	Host      string       `mapstructure:"host"`
	Port      int          `mapstructure:"port"`
	Auth      AuthSettings `mapstructure:"auth"`
	Docs      DocsSettings `mapstructure:"docs"`
}

// LoadSettings loads settings from environment variables and optional .env file
func LoadSettings() (*Settings, error) {
	return LoadSettingsWithFlags(nil)
}

// LoadSettingsWithFlags loads settings with optional CLI flag overrides.
// Priority: CLI flags > environment variables > .env file > defaults.
// If flags is nil, only env vars and defaults are used.
func LoadSettingsWithFlags(flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()

	// Default values
	v.SetDefault("transport", "stdio")
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", 8080)
	v.SetDefault("auth.type", AuthTypeNone)

	// Docs defaults
	v.SetDefault("docs.repo", "uabrc/uabrc.github.io")
	v.SetDefault("docs.source_host", "github.com")
	v.SetDefault("docs.api_base_url", "")
	v.SetDefault("docs.raw_base_url", "https://raw.githubusercontent.com")
	v.SetDefault("docs.site_base_url", "https://docs.rc.uab.edu")
	v.SetDefault("docs.portal_base_url", "https://rc.uab.edu")
	v.SetDefault("docs.root_folder", "docs")
	v.SetDefault("docs.extension", ".md")
	v.SetDefault("docs.branches", []string{"main", "master"})
	v.SetDefault("docs.request_timeout", 30*time.Second)
	v.SetDefault("docs.max_results", 5)
	v.SetDefault("docs.token_env_var", "GITHUB_TOKEN")
	v.SetDefault("docs.user_agent", "uab-rc-docs-mcp/1.0")

	// Environment variables
	v.SetEnvPrefix("RCDOCS_MCP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind specific env vars for nested config
	_ = v.BindEnv("auth.type", "RCDOCS_MCP_AUTH_TYPE")
	_ = v.BindEnv("auth.basic.username", "RCDOCS_MCP_AUTH_BASIC_USERNAME")
	_ = v.BindEnv("auth.basic.password", "RCDOCS_MCP_AUTH_BASIC_PASSWORD")
	_ = v.BindEnv("auth.api_keys", "RCDOCS_MCP_AUTH_API_KEYS")

	// Docs env var bindings
	_ = v.BindEnv("docs.repo", "RCDOCS_MCP_DOCS_REPO")
	_ = v.BindEnv("docs.source_host", "RCDOCS_MCP_DOCS_SOURCE_HOST")
	_ = v.BindEnv("docs.api_base_url", "RCDOCS_MCP_DOCS_API_BASE_URL")
	_ = v.BindEnv("docs.raw_base_url", "RCDOCS_MCP_DOCS_RAW_BASE_URL")
	_ = v.BindEnv("docs.site_base_url", "RCDOCS_MCP_DOCS_SITE_BASE_URL")
	_ = v.BindEnv("docs.portal_base_url", "RCDOCS_MCP_DOCS_PORTAL_BASE_URL")
	_ = v.BindEnv("docs.root_folder", "RCDOCS_MCP_DOCS_ROOT_FOLDER")
	_ = v.BindEnv("docs.extension", "RCDOCS_MCP_DOCS_EXTENSION")
	_ = v.BindEnv("docs.branches", "RCDOCS_MCP_DOCS_BRANCHES")
	_ = v.BindEnv("docs.request_timeout", "RCDOCS_MCP_DOCS_REQUEST_TIMEOUT")
	_ = v.BindEnv("docs.max_results", "RCDOCS_MCP_DOCS_MAX_RESULTS")
	_ = v.BindEnv("docs.token_env_var", "RCDOCS_MCP_DOCS_TOKEN_ENV_VAR")
	_ = v.BindEnv("docs.user_agent", "RCDOCS_MCP_DOCS_USER_AGENT")

	// Bind CLI flags if provided (highest priority)
	if flags != nil {
		_ = v.BindPFlag("transport", flags.Lookup("transport"))
		_ = v.BindPFlag("host", flags.Lookup("host"))
		_ = v.BindPFlag("port", flags.Lookup("port"))
		_ = v.BindPFlag("auth.type", flags.Lookup("auth-type"))
		_ = v.BindPFlag("auth.basic.username", flags.Lookup("auth-basic-username"))
		_ = v.BindPFlag("auth.basic.password", flags.Lookup("auth-basic-password"))
		_ = v.BindPFlag("auth.api_keys", flags.Lookup("auth-api-keys"))

		// Docs CLI flags
		_ = v.BindPFlag("docs.repo", flags.Lookup("docs-repo"))
		_ = v.BindPFlag("docs.site_base_url", flags.Lookup("docs-site-base-url"))
		_ = v.BindPFlag("docs.raw_base_url", flags.Lookup("docs-raw-base-url"))
		_ = v.BindPFlag("docs.api_base_url", flags.Lookup("docs-api-base-url"))
		_ = v.BindPFlag("docs.branches", flags.Lookup("docs-branches"))
		_ = v.BindPFlag("docs.request_timeout", flags.Lookup("docs-request-timeout"))
		_ = v.BindPFlag("docs.max_results", flags.Lookup("docs-max-results"))
	}

	// Helper to look for .env file
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // Ignore error if .env doesn't exist

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, err
	}

	// Handle explicit parsing of API keys if provided via env var as comma-separated string
	apiKeysEnv := os.Getenv("RCDOCS_MCP_AUTH_API_KEYS")
	if apiKeysEnv != "" {
		if len(settings.Auth.APIKeys) == 0 || (len(settings.Auth.APIKeys) == 1 && strings.Contains(settings.Auth.APIKeys[0], ",")) {
			settings.Auth.APIKeys = strings.Split(apiKeysEnv, ",")
		}
	}

	// Trim spaces from API keys
	for i := range settings.Auth.APIKeys {
		settings.Auth.APIKeys[i] = strings.TrimSpace(settings.Auth.APIKeys[i])
	}

	// Handle explicit parsing of branches if provided via env var as comma-separated string
	branchesEnv := os.Getenv("RCDOCS_MCP_DOCS_BRANCHES")
	if branchesEnv != "" {
		if len(settings.Docs.Branches) == 0 || (len(settings.Docs.Branches) == 1 && strings.Contains(settings.Docs.Branches[0], ",")) {
			settings.Docs.Branches = strings.Split(branchesEnv, ",")
		}
	}

	// Trim spaces from branch names
	for i := range settings.Docs.Branches {
		settings.Docs.Branches[i] = strings.TrimSpace(settings.Docs.Branches[i])
	}

	// Filter out empty branch names
	settings.Docs.Branches = filterEmptyStrings(settings.Docs.Branches)

	return &settings, nil
}

// filterEmptyStrings removes empty strings from a slice
func filterEmptyStrings(s []string) []string {
	var result []string
	for _, str := range s {
		if str != "" {
			result = append(result, str)
		}
	}
	return result
}

// ValidateSettings checks for conflicting configurations.
// Returns an error if the settings contain mutually exclusive or incomplete config.
func ValidateSettings(s *Settings) error {
	// Validate transport type
	switch s.Transport {
	case "stdio", "sse":
		// valid
	default:
		return errors.New("transport must be 'stdio' or 'sse', got: " + s.Transport)
	}

	hasBasicCreds := s.Auth.Basic.Username != "" || s.Auth.Basic.Password != ""
	hasAPIKeys := len(s.Auth.APIKeys) > 0

	switch s.Auth.Type {
	case AuthTypeNone, "":
		if hasBasicCreds || hasAPIKeys {
			return errors.New("auth-type 'none' is incompatible with auth credentials")
		}
	case AuthTypeBasic:
		if hasAPIKeys {
			return errors.New("auth-type 'basic' is mutually exclusive with auth-api-keys")
		}
		if s.Auth.Basic.Username == "" || s.Auth.Basic.Password == "" {
			return errors.New("auth-type 'basic' requires both username and password")
		}
	case AuthTypeAPIKey:
		if hasBasicCreds {
			return errors.New("auth-type 'apikey' is mutually exclusive with basic auth credentials")
		}
		if !hasAPIKeys {
			return errors.New("auth-type 'apikey' requires at least one API key")
		}
	default:
		return errors.New("unknown auth-type: " + s.Auth.Type)
	}

	// Validate docs settings
	if err := validateDocsSettings(&s.Docs); err != nil {
		return err
	}

	return nil
}

// validateDocsSettings validates the documentation source configuration
func validateDocsSettings(d *DocsSettings) error {
	if d.Repo == "" {
		return errors.New("docs-repo cannot be empty")
	}

	parts := strings.Split(d.Repo, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return fmt.Errorf("docs-repo must have the form owner/name, got: %s", d.Repo)
	}

	if d.SourceHost == "" {
		return errors.New("docs source host cannot be empty")
	}

	if d.RawBaseURL == "" {
		return errors.New("docs raw content base URL cannot be empty")
	}

	if d.SiteBaseURL == "" {
		return errors.New("docs site base URL cannot be empty")
	}

	if d.RootFolder == "" {
		return errors.New("docs root folder cannot be empty")
	}

	if !strings.HasPrefix(d.Extension, ".") {
		return fmt.Errorf("docs extension must start with a dot, got: %s", d.Extension)
	}

	if len(d.Branches) == 0 {
		return errors.New("docs-branches requires at least one branch name")
	}

	if d.RequestTimeout <= 0 {
		return errors.New("docs-request-timeout must be positive")
	}

	if d.MaxResults < 1 || d.MaxResults > 10 {
		return errors.New("docs-max-results must be between 1 and 10")
	}

	return nil
}
