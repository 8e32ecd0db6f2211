package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies a provider failure.
type ErrorKind string

const (
	// ErrorKindConfiguration means no usable provider was configured for the search.
	ErrorKindConfiguration ErrorKind = "configuration"
	// ErrorKindNetwork covers transport failures and per-call timeouts.
	ErrorKindNetwork ErrorKind = "network"
	// ErrorKindHTTPStatus is a non-2xx response from the provider.
	ErrorKindHTTPStatus ErrorKind = "http_status"
	// ErrorKindParse means the top-level response envelope could not be decoded.
	ErrorKindParse ErrorKind = "parse"
)

// ErrUpstream is the sentinel all provider request failures unwrap to.
var ErrUpstream = errors.New("upstream provider request failed")

const maxErrorBodyPreview = 400

// ProviderError carries a structured, provider-scoped failure. Provider-level
// errors never abort a search; the aggregator collects them alongside whatever
// records the other providers returned.
type ProviderError struct {
	Provider   string    `json:"provider"`
	Kind       ErrorKind `json:"kind"`
	StatusCode int       `json:"status_code,omitempty"`
	Message    string    `json:"message"`
	Cause      error     `json:"-"`
}

func (e *ProviderError) Error() string {
	parts := []string{fmt.Sprintf("%s: %s error", e.Provider, e.Kind)}
	if e.StatusCode > 0 {
		parts = append(parts, fmt.Sprintf("status=%d", e.StatusCode))
	}
	if msg := compactPreview(e.Message); msg != "" {
		parts = append(parts, msg)
	}
	if e.Cause != nil {
		parts = append(parts, fmt.Sprintf("cause=%v", e.Cause))
	}
	return strings.Join(parts, "; ")
}

func (e *ProviderError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return ErrUpstream
}

// NewConfigurationError reports a search attempted with no providers configured.
func NewConfigurationError(message string) *ProviderError {
	return &ProviderError{
		Provider: "Configuration",
		Kind:     ErrorKindConfiguration,
		Message:  message,
	}
}

// NewHTTPStatusError reports a non-2xx upstream response, keeping a compact
// preview of the body for diagnostics.
func NewHTTPStatusError(provider string, statusCode int, body []byte) *ProviderError {
	return &ProviderError{
		Provider:   provider,
		Kind:       ErrorKindHTTPStatus,
		StatusCode: statusCode,
		Message:    compactPreview(string(body)),
	}
}

// AsProviderError extracts a *ProviderError from err, wrapping unknown errors
// as network failures tagged with the provider's name.
func AsProviderError(provider string, err error) *ProviderError {
	var provErr *ProviderError
	if errors.As(err, &provErr) {
		return provErr
	}
	return &ProviderError{
		Provider: provider,
		Kind:     ErrorKindNetwork,
		Message:  err.Error(),
		Cause:    err,
	}
}

func compactPreview(body string) string {
	body = strings.Join(strings.Fields(strings.TrimSpace(body)), " ")
	if len(body) > maxErrorBodyPreview {
		return body[:maxErrorBodyPreview] + "..."
	}
	return body
}
