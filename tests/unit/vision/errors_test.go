package vision_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"billscan/internal/config"
	"billscan/internal/port"
	"billscan/internal/vision"
	"billscan/mocks"
)

func TestNewRateLimitError_Defaults(t *testing.T) {
	err := vision.NewRateLimitError("gemini", errors.New("429"), 0)

	assert.Equal(t, 60*time.Second, err.RetryAfter)
	assert.Equal(t, "gemini", err.Provider)
}

func TestNewRateLimitError_ExplicitRetryAfter(t *testing.T) {
	err := vision.NewRateLimitError("openai", errors.New("429"), 15)

	assert.Equal(t, 15*time.Second, err.RetryAfter)
}

func TestRateLimitError_Unwrap(t *testing.T) {
	inner := errors.New("too many requests")
	err := vision.NewRateLimitError("claude", inner, 5)

	assert.ErrorIs(t, err, inner)
}

func TestParseRetryAfterHeader(t *testing.T) {
	assert.Equal(t, 0, vision.ParseRetryAfterHeader(""))
	assert.Equal(t, 0, vision.ParseRetryAfterHeader("Wed, 21 Oct 2015 07:28:00 GMT"))
	assert.Equal(t, 42, vision.ParseRetryAfterHeader("42"))
}

func TestFactory_UnknownProvider(t *testing.T) {
	_, err := vision.NewModel(&config.VisionProviderConfig{Provider: "does-not-exist"})

	assert.ErrorContains(t, err, "unknown vision provider")
}

func TestFactory_RegisteredProvider(t *testing.T) {
	vision.RegisterProvider("stub", func(cfg *config.VisionProviderConfig) (port.VisionModel, error) {
		return new(mocks.MockVisionModel), nil
	})

	model, err := vision.NewModel(&config.VisionProviderConfig{Provider: "stub"})

	assert.NoError(t, err)
	assert.NotNil(t, model)
}
