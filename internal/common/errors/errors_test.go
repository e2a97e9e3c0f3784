// internal/common/errors/errors_test.go
package errors

import (
	goerrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	cause := goerrors.New("connection refused")

	tests := []struct {
		name      string
		err       *StandardError
		code      ErrorCode
		retryable bool
	}{
		{
			name:      "no intent detected",
			err:       NewNoIntentDetectedError("hmm not sure yet"),
			code:      ErrCodeNoIntentDetected,
			retryable: false,
		},
		{
			name:      "place not found",
			err:       NewPlaceNotFoundError("Nowhereville"),
			code:      ErrCodePlaceNotFound,
			retryable: false,
		},
		{
			name:      "geocoding failed",
			err:       NewGeocodingFailedError(cause),
			code:      ErrCodeGeocodingFailed,
			retryable: true,
		},
		{
			name:      "weather unavailable",
			err:       NewWeatherUnavailableError(cause),
			code:      ErrCodeWeatherUnavailable,
			retryable: true,
		},
		{
			name:      "places unavailable",
			err:       NewPlacesUnavailableError(cause),
			code:      ErrCodePlacesUnavailable,
			retryable: true,
		},
		{
			name:      "provider timeout",
			err:       NewProviderTimeoutError("weather"),
			code:      ErrCodeProviderTimeout,
			retryable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.retryable, tt.err.Retryable)
			assert.NotEmpty(t, tt.err.Message)
			assert.False(t, tt.err.Timestamp.IsZero())
		})
	}
}

func TestConstructors_Details(t *testing.T) {
	assert.Contains(t, NewPlaceNotFoundError("Nowhereville").Details, "Nowhereville")
	assert.Contains(t, NewNoIntentDetectedError("hmm").Details, "hmm")
	assert.Contains(t, NewGeocodingFailedError(goerrors.New("boom")).Details, "boom")
	assert.Contains(t, NewProviderTimeoutError("places").Message, "places")
}

func TestStandardError_Error(t *testing.T) {
	err := NewPlaceNotFoundError("Nowhereville")
	assert.Contains(t, err.Error(), string(ErrCodePlaceNotFound))
	assert.Contains(t, err.Error(), err.Message)
}

func TestIsUserFacing(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want bool
	}{
		{ErrCodeNoIntentDetected, true},
		{ErrCodeNoActionableIntent, true},
		{ErrCodePlaceNotFound, true},
		{ErrCodeGeocodingFailed, false},
		{ErrCodeWeatherUnavailable, false},
		{ErrCodePlacesUnavailable, false},
		{ErrCodeProviderTimeout, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsUserFacing(tt.code), "code %s", tt.code)
	}
}
