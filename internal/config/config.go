package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"billscan/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Log        LogConfig
	CORS       CORSConfig
	Upload     UploadConfig
	Vision     VisionConfig
	Legitimacy LegitimacyConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// UploadConfig holds inbound file upload limits.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// VisionProviderConfig holds settings for a single vision-model provider.
type VisionProviderConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// VisionConfig holds vision-model settings with optional secondary provider
// fallback.
type VisionConfig struct {
	// Legacy flat fields (backwards-compatible)
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`

	// Multi-provider fields
	Primary   VisionProviderConfig `mapstructure:"primary"`
	Secondary VisionProviderConfig `mapstructure:"secondary"`
}

// PrimaryConfig returns the primary provider config, falling back to the
// legacy flat fields.
func (v *VisionConfig) PrimaryConfig() *VisionProviderConfig {
	if v.Primary.Provider != "" {
		return &v.Primary
	}
	return &VisionProviderConfig{
		Provider:     v.Provider,
		APIKey:       v.APIKey,
		DefaultModel: v.DefaultModel,
		TimeoutSecs:  v.TimeoutSecs,
	}
}

// SecondaryConfig returns the secondary provider config, or nil if not configured.
func (v *VisionConfig) SecondaryConfig() *VisionProviderConfig {
	if v.Secondary.Provider != "" {
		return &v.Secondary
	}
	return nil
}

// Validate checks that every configured provider carries a credential.
// The service refuses to start without one.
func (v *VisionConfig) Validate() error {
	primary := v.PrimaryConfig()
	if primary.APIKey == "" {
		return fmt.Errorf("vision provider %q: %w", primary.Provider, domain.ErrMissingAPIKey)
	}
	if secondary := v.SecondaryConfig(); secondary != nil && secondary.APIKey == "" {
		return fmt.Errorf("vision provider %q: %w", secondary.Provider, domain.ErrMissingAPIKey)
	}
	return nil
}

// ScoringMode selects how the legitimacy score is produced.
type ScoringMode string

const (
	// ScoringModeLocal recomputes the score from extracted fields and image
	// metrics. The score is a verifiable function of the inputs.
	ScoringModeLocal ScoringMode = "local"
	// ScoringModeModel trusts the score the model embeds in its own output.
	ScoringModeModel ScoringMode = "model"
)

// LegitimacyConfig holds legitimacy scoring settings.
type LegitimacyConfig struct {
	Mode         ScoringMode `mapstructure:"mode"`
	MinDimension int         `mapstructure:"min_dimension"`
}

// Load reads configuration from environment variables with the BILLSCAN_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BILLSCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 10)

	// Vision defaults (legacy flat)
	v.SetDefault("vision.provider", "gemini")
	v.SetDefault("vision.api_key", "")
	v.SetDefault("vision.default_model", "")
	v.SetDefault("vision.timeout_secs", 120)

	// Vision primary/secondary defaults
	v.SetDefault("vision.primary.provider", "")
	v.SetDefault("vision.primary.api_key", "")
	v.SetDefault("vision.primary.default_model", "")
	v.SetDefault("vision.primary.timeout_secs", 120)
	v.SetDefault("vision.secondary.provider", "")
	v.SetDefault("vision.secondary.api_key", "")
	v.SetDefault("vision.secondary.default_model", "")
	v.SetDefault("vision.secondary.timeout_secs", 120)

	// Legitimacy defaults
	v.SetDefault("legitimacy.mode", string(ScoringModeLocal))
	v.SetDefault("legitimacy.min_dimension", 500)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                    "BILLSCAN_SERVER_PORT",
		"server.read_timeout":            "BILLSCAN_SERVER_READ_TIMEOUT",
		"server.write_timeout":           "BILLSCAN_SERVER_WRITE_TIMEOUT",
		"server.environment":             "BILLSCAN_SERVER_ENVIRONMENT",
		"log.level":                      "BILLSCAN_LOG_LEVEL",
		"log.format":                     "BILLSCAN_LOG_FORMAT",
		"cors.allowed_origins":           "BILLSCAN_CORS_ALLOWED_ORIGINS",
		"upload.max_file_size_mb":        "BILLSCAN_UPLOAD_MAX_FILE_SIZE_MB",
		"vision.provider":                "BILLSCAN_VISION_PROVIDER",
		"vision.api_key":                 "BILLSCAN_VISION_API_KEY",
		"vision.default_model":           "BILLSCAN_VISION_DEFAULT_MODEL",
		"vision.timeout_secs":            "BILLSCAN_VISION_TIMEOUT_SECS",
		"vision.primary.provider":        "BILLSCAN_VISION_PRIMARY_PROVIDER",
		"vision.primary.api_key":         "BILLSCAN_VISION_PRIMARY_API_KEY",
		"vision.primary.default_model":   "BILLSCAN_VISION_PRIMARY_DEFAULT_MODEL",
		"vision.primary.timeout_secs":    "BILLSCAN_VISION_PRIMARY_TIMEOUT_SECS",
		"vision.secondary.provider":      "BILLSCAN_VISION_SECONDARY_PROVIDER",
		"vision.secondary.api_key":       "BILLSCAN_VISION_SECONDARY_API_KEY",
		"vision.secondary.default_model": "BILLSCAN_VISION_SECONDARY_DEFAULT_MODEL",
		"vision.secondary.timeout_secs":  "BILLSCAN_VISION_SECONDARY_TIMEOUT_SECS",
		"legitimacy.mode":                "BILLSCAN_LEGITIMACY_MODE",
		"legitimacy.min_dimension":       "BILLSCAN_LEGITIMACY_MIN_DIMENSION",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if BILLSCAN_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("BILLSCAN_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
	}

	cfg.Vision = VisionConfig{
		Provider:     v.GetString("vision.provider"),
		APIKey:       v.GetString("vision.api_key"),
		DefaultModel: v.GetString("vision.default_model"),
		TimeoutSecs:  v.GetInt("vision.timeout_secs"),
		Primary: VisionProviderConfig{
			Provider:     v.GetString("vision.primary.provider"),
			APIKey:       v.GetString("vision.primary.api_key"),
			DefaultModel: v.GetString("vision.primary.default_model"),
			TimeoutSecs:  v.GetInt("vision.primary.timeout_secs"),
		},
		Secondary: VisionProviderConfig{
			Provider:     v.GetString("vision.secondary.provider"),
			APIKey:       v.GetString("vision.secondary.api_key"),
			DefaultModel: v.GetString("vision.secondary.default_model"),
			TimeoutSecs:  v.GetInt("vision.secondary.timeout_secs"),
		},
	}

	// The conventional GEMINI_API_KEY variable works as a fallback credential
	// when the flat gemini provider has no explicit key.
	if cfg.Vision.APIKey == "" && cfg.Vision.Provider == "gemini" && cfg.Vision.Primary.Provider == "" {
		cfg.Vision.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	cfg.Legitimacy = LegitimacyConfig{
		Mode:         ScoringMode(v.GetString("legitimacy.mode")),
		MinDimension: v.GetInt("legitimacy.min_dimension"),
	}
	if cfg.Legitimacy.Mode != ScoringModeLocal && cfg.Legitimacy.Mode != ScoringModeModel {
		return nil, fmt.Errorf("invalid legitimacy mode: %q (allowed: local, model)", cfg.Legitimacy.Mode)
	}

	return cfg, nil
}
