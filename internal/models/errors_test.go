package models

import (
	"errors"
	"strings"
	"testing"
)

func TestProviderErrorString(t *testing.T) {
	err := &ProviderError{
		Provider:   "Yelp",
		Kind:       ErrorKindHTTPStatus,
		StatusCode: 429,
		Message:    "too many requests",
	}

	got := err.Error()
	for _, want := range []string{"Yelp", "http_status", "status=429", "too many requests"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in error string %q", want, got)
		}
	}
}

func TestProviderErrorUnwrapsToSentinel(t *testing.T) {
	err := &ProviderError{Provider: "GooglePlaces", Kind: ErrorKindHTTPStatus, Message: "denied"}

	if !errors.Is(err, ErrUpstream) {
		t.Fatal("causeless provider errors must unwrap to ErrUpstream")
	}

	cause := errors.New("connection reset")
	wrapped := &ProviderError{Provider: "Yelp", Kind: ErrorKindNetwork, Cause: cause}
	if !errors.Is(wrapped, cause) {
		t.Fatal("provider errors with a cause must unwrap to it")
	}
}

func TestAsProviderErrorPassthrough(t *testing.T) {
	original := &ProviderError{Provider: "Yelp", Kind: ErrorKindParse, Message: "bad json"}

	got := AsProviderError("GooglePlaces", original)
	if got != original {
		t.Fatal("existing provider errors must pass through unchanged")
	}
}

func TestAsProviderErrorWrapsUnknown(t *testing.T) {
	got := AsProviderError("GooglePlaces", errors.New("dial tcp: timeout"))

	if got.Provider != "GooglePlaces" {
		t.Errorf("expected provider name attached, got %q", got.Provider)
	}
	if got.Kind != ErrorKindNetwork {
		t.Errorf("unknown errors fold into the network kind, got %s", got.Kind)
	}
}

func TestHTTPStatusErrorCompactsBody(t *testing.T) {
	body := strings.Repeat("x ", 400)
	err := NewHTTPStatusError("Yelp", 500, []byte(body))

	if len(err.Message) > maxErrorBodyPreview+3 {
		t.Errorf("body preview must be bounded, got %d chars", len(err.Message))
	}
	if err.StatusCode != 500 {
		t.Errorf("expected status 500, got %d", err.StatusCode)
	}
}
