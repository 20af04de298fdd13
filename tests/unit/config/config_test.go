package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billscan/internal/config"
	"billscan/internal/domain"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, int64(10), cfg.Upload.MaxFileSizeMB)
	assert.Equal(t, "gemini", cfg.Vision.Provider)
	assert.Equal(t, 120, cfg.Vision.TimeoutSecs)
	assert.Equal(t, config.ScoringModeLocal, cfg.Legitimacy.Mode)
	assert.Equal(t, 500, cfg.Legitimacy.MinDimension)
	assert.NotEmpty(t, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BILLSCAN_SERVER_PORT", ":9999")
	t.Setenv("BILLSCAN_VISION_PROVIDER", "openai")
	t.Setenv("BILLSCAN_VISION_API_KEY", "sk-from-env")
	t.Setenv("BILLSCAN_LEGITIMACY_MODE", "model")
	t.Setenv("BILLSCAN_LEGITIMACY_MIN_DIMENSION", "800")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Server.Port)
	assert.Equal(t, "openai", cfg.Vision.Provider)
	assert.Equal(t, "sk-from-env", cfg.Vision.APIKey)
	assert.Equal(t, config.ScoringModeModel, cfg.Legitimacy.Mode)
	assert.Equal(t, 800, cfg.Legitimacy.MinDimension)
}

func TestLoad_PlatformPortFallback(t *testing.T) {
	t.Setenv("PORT", "7777")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, ":7777", cfg.Server.Port)
}

func TestLoad_GeminiAPIKeyFallback(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "gk-fallback")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "gk-fallback", cfg.Vision.APIKey)
}

func TestLoad_InvalidScoringMode(t *testing.T) {
	t.Setenv("BILLSCAN_LEGITIMACY_MODE", "vibes")

	_, err := config.Load()

	assert.ErrorContains(t, err, "invalid legitimacy mode")
}

func TestVisionConfig_PrimaryConfig_LegacyFallback(t *testing.T) {
	cfg := config.VisionConfig{
		Provider:     "gemini",
		APIKey:       "gk-legacy",
		DefaultModel: "gemini-2.0-flash",
		TimeoutSecs:  30,
	}

	primary := cfg.PrimaryConfig()

	assert.Equal(t, "gemini", primary.Provider)
	assert.Equal(t, "gk-legacy", primary.APIKey)
	assert.Equal(t, "gemini-2.0-flash", primary.DefaultModel)
	assert.Equal(t, 30, primary.TimeoutSecs)
}

func TestVisionConfig_PrimaryConfig_ExplicitPrimary(t *testing.T) {
	cfg := config.VisionConfig{
		Provider: "legacy-should-be-ignored",
		Primary: config.VisionProviderConfig{
			Provider: "claude",
			APIKey:   "sk-primary",
		},
	}

	primary := cfg.PrimaryConfig()

	assert.Equal(t, "claude", primary.Provider)
	assert.Equal(t, "sk-primary", primary.APIKey)
}

func TestVisionConfig_SecondaryConfig_NotConfigured(t *testing.T) {
	cfg := config.VisionConfig{
		Provider: "gemini",
		APIKey:   "gk-test",
	}

	assert.Nil(t, cfg.SecondaryConfig())
}

func TestVisionConfig_SecondaryConfig_Configured(t *testing.T) {
	cfg := config.VisionConfig{
		Primary: config.VisionProviderConfig{
			Provider: "gemini",
			APIKey:   "gk",
		},
		Secondary: config.VisionProviderConfig{
			Provider: "openai",
			APIKey:   "sk",
		},
	}

	secondary := cfg.SecondaryConfig()

	require.NotNil(t, secondary)
	assert.Equal(t, "openai", secondary.Provider)
}

func TestVisionConfig_Validate_MissingKey(t *testing.T) {
	cfg := config.VisionConfig{Provider: "gemini"}

	err := cfg.Validate()

	assert.ErrorIs(t, err, domain.ErrMissingAPIKey)
}

func TestVisionConfig_Validate_MissingSecondaryKey(t *testing.T) {
	cfg := config.VisionConfig{
		Primary:   config.VisionProviderConfig{Provider: "gemini", APIKey: "gk"},
		Secondary: config.VisionProviderConfig{Provider: "openai"},
	}

	err := cfg.Validate()

	assert.ErrorIs(t, err, domain.ErrMissingAPIKey)
}

func TestVisionConfig_Validate_OK(t *testing.T) {
	cfg := config.VisionConfig{Provider: "gemini", APIKey: "gk"}

	assert.NoError(t, cfg.Validate())
}
