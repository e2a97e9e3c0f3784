// Package errors provides the standardized error taxonomy for the
// travel-query pipeline. Every failure class maps to a user-facing
// degradation, never to a crash.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeNoIntentDetected   ErrorCode = "NO_INTENT_DETECTED"
	ErrCodeNoActionableIntent ErrorCode = "NO_ACTIONABLE_INTENT"

	ErrCodePlaceNotFound   ErrorCode = "PLACE_NOT_FOUND"
	ErrCodeGeocodingFailed ErrorCode = "GEOCODING_FAILED"

	ErrCodeWeatherUnavailable ErrorCode = "WEATHER_UNAVAILABLE"
	ErrCodePlacesUnavailable  ErrorCode = "PLACES_UNAVAILABLE"
	ErrCodeProviderTimeout    ErrorCode = "PROVIDER_TIMEOUT"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewNoIntentDetectedError marks an utterance with no usable place.
func NewNoIntentDetectedError(utterance string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNoIntentDetected,
		Message:   "No place could be extracted from the utterance",
		Details:   utterance,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewPlaceNotFoundError marks a place the geocoder could not resolve.
func NewPlaceNotFoundError(place string) *StandardError {
	return &StandardError{
		Code:      ErrCodePlaceNotFound,
		Message:   "Geocoding provider returned no match",
		Details:   fmt.Sprintf("place: %s", place),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewGeocodingFailedError wraps a transport-level geocoding failure.
func NewGeocodingFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeGeocodingFailed,
		Message:   "Geocoding provider error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewWeatherUnavailableError wraps a weather lookup failure.
func NewWeatherUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeWeatherUnavailable,
		Message:   "Weather provider error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewPlacesUnavailableError wraps an attractions lookup failure.
func NewPlacesUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodePlacesUnavailable,
		Message:   "Places provider error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewProviderTimeoutError marks a lookup that exceeded its deadline.
func NewProviderTimeoutError(provider string) *StandardError {
	return &StandardError{
		Code:      ErrCodeProviderTimeout,
		Message:   fmt.Sprintf("Provider '%s' timeout", provider),
		Details:   "lookup exceeded its configured deadline",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// IsUserFacing reports whether the code describes a normal end state of
// a query rather than an infrastructure fault.
func IsUserFacing(code ErrorCode) bool {
	switch code {
	case ErrCodeNoIntentDetected, ErrCodeNoActionableIntent, ErrCodePlaceNotFound:
		return true
	default:
		return false
	}
}
