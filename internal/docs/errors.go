package docs

import (
	"errors"
	"fmt"
)

// Documentation lookup errors.
var (
	// ErrInvalidReference indicates a malformed or out-of-domain page identifier.
	ErrInvalidReference = errors.New("docs: invalid page reference")

	// ErrUnexpectedContentType indicates the raw content host answered with a
	// structured payload where plain text was expected. This points at a
	// resolver misconfiguration rather than a missing revision, so it is
	// never absorbed by branch fallback.
	ErrUnexpectedContentType = errors.New("docs: unexpected content type from raw content host")
)

// NotFoundError indicates that every branch candidate was attempted and none
// yielded the page. LastErr carries the final candidate's failure for
// diagnostics.
type NotFoundError struct {
	Path    string
	LastErr error
}

func (e *NotFoundError) Error() string {
	if e.LastErr != nil {
		return fmt.Sprintf("docs: page not found on any branch: %s (last attempt: %v)", e.Path, e.LastErr)
	}
	return fmt.Sprintf("docs: page not found on any branch: %s", e.Path)
}

func (e *NotFoundError) Unwrap() error { return e.LastErr }

// AuthError indicates the search credential was rejected by the upstream API.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("docs: search authentication failed: %v", e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// RateLimitedError indicates the upstream search quota is exhausted.
type RateLimitedError struct {
	Err error
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("docs: search rate limit exceeded: %v", e.Err)
}

func (e *RateLimitedError) Unwrap() error { return e.Err }

// TranslationError wraps any other search transport or response failure.
type TranslationError struct {
	Err error
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("docs: search failed: %v", e.Err)
}

func (e *TranslationError) Unwrap() error { return e.Err }

// IsInvalidReference checks if the error indicates a malformed page identifier.
func IsInvalidReference(err error) bool {
	return errors.Is(err, ErrInvalidReference)
}

// IsNotFound checks if the error indicates the page was not found on any branch.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}

// IsAuthFailure checks if the error indicates a rejected search credential.
func IsAuthFailure(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// IsRateLimited checks if the error indicates search quota exhaustion.
func IsRateLimited(err error) bool {
	var rateErr *RateLimitedError
	return errors.As(err, &rateErr)
}
