package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing record or list entry.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput signals a rejected tool or SDK argument.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotInitialized signals a search or record call before the Attio client was wired.
	ErrNotInitialized = errors.New("attio client not initialized")
	// ErrFieldCollision signals multiple payload keys mapping to one canonical attribute.
	ErrFieldCollision = errors.New("field collision")
	// ErrRateLimited signals a 429 from the Attio API.
	ErrRateLimited = errors.New("rate limited")
	// ErrProvider signals a non-2xx response from the Attio API.
	ErrProvider = errors.New("provider error")
)

// ProviderError wraps ErrProvider with the HTTP status and the error payload
// Attio returned. It is propagated unmodified to callers: the core performs
// no retry or error translation on provider failures.
type ProviderError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *ProviderError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s (status %d, code %s)", ErrProvider.Error(), e.Message, e.StatusCode, e.Code)
	}
	return fmt.Sprintf("%s: %s (status %d)", ErrProvider.Error(), e.Message, e.StatusCode)
}

func (e *ProviderError) Unwrap() error {
	if e.StatusCode == 429 {
		return ErrRateLimited
	}
	return ErrProvider
}

// NewProviderError creates a provider error from an Attio API response.
func NewProviderError(status int, code, message string) error {
	return &ProviderError{StatusCode: status, Code: code, Message: message}
}
