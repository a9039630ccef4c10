package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestUpstreamError_Message(t *testing.T) {
	err := &UpstreamError{Status: 429, Body: `{"error":"rate limited"}`}
	want := `upstream responded 429: {"error":"rate limited"}`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestUpstreamError_UnwrapsThroughWrapping(t *testing.T) {
	inner := &UpstreamError{Status: 502, Body: "gateway timeout"}
	wrapped := fmt.Errorf("exchange code: %w", inner)

	var upstream *UpstreamError
	if !errors.As(wrapped, &upstream) {
		t.Fatal("expected errors.As to find the UpstreamError")
	}
	if upstream.Status != 502 {
		t.Errorf("expected status 502, got %d", upstream.Status)
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	sentinels := []error{
		ErrMissingParameter,
		ErrInvalidState,
		ErrUnauthorized,
		ErrForbiddenCSRF,
		ErrValidation,
		ErrNotFound,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("expected %v and %v to be distinct", a, b)
			}
		}
	}
}

func TestWrappedValidationError(t *testing.T) {
	err := fmt.Errorf("%w: `content` is required", ErrValidation)
	if !errors.Is(err, ErrValidation) {
		t.Error("expected the wrapped error to match ErrValidation")
	}
}
