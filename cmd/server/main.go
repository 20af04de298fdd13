package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"billscan/internal/config"
	"billscan/internal/handler"
	"billscan/internal/legitimacy"
	"billscan/internal/port"
	"billscan/internal/router"
	"billscan/internal/service"
	"billscan/internal/vision"
	"billscan/internal/vision/claude"
	"billscan/internal/vision/gemini"
	"billscan/internal/vision/openai"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Missing credentials abort startup; there is no lazy client construction.
	if err := cfg.Vision.Validate(); err != nil {
		return err
	}

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	registerProviders()

	model, err := buildVisionModel(&cfg.Vision)
	if err != nil {
		return fmt.Errorf("failed to initialize vision model: %w", err)
	}

	scorer := legitimacy.NewScorer(cfg.Legitimacy.MinDimension)
	billSvc := service.NewBillService(model, scorer, cfg.Legitimacy.Mode)

	healthH := handler.NewHealthHandler()
	billH := handler.NewBillHandler(billSvc, cfg.Upload.MaxFileSizeMB)

	r := router.Setup(healthH, billH, cfg.CORS.AllowedOrigins)

	log.Printf("Server starting on %s (provider=%s, scoring=%s)",
		cfg.Server.Port, cfg.Vision.PrimaryConfig().Provider, cfg.Legitimacy.Mode)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func registerProviders() {
	vision.RegisterProvider("gemini", func(cfg *config.VisionProviderConfig) (port.VisionModel, error) {
		return gemini.NewModel(cfg), nil
	})
	vision.RegisterProvider("openai", func(cfg *config.VisionProviderConfig) (port.VisionModel, error) {
		return openai.NewModel(cfg), nil
	})
	vision.RegisterProvider("claude", func(cfg *config.VisionProviderConfig) (port.VisionModel, error) {
		return claude.NewModel(cfg), nil
	})
}

// buildVisionModel constructs the shared model handle, wrapping primary and
// secondary providers in a fallback chain when a secondary is configured.
func buildVisionModel(cfg *config.VisionConfig) (port.VisionModel, error) {
	primaryCfg := cfg.PrimaryConfig()
	primary, err := vision.NewModel(primaryCfg)
	if err != nil {
		return nil, err
	}

	secondaryCfg := cfg.SecondaryConfig()
	if secondaryCfg == nil {
		return primary, nil
	}

	secondary, err := vision.NewModel(secondaryCfg)
	if err != nil {
		return nil, err
	}

	return vision.NewFallbackModel(
		[]port.VisionModel{primary, secondary},
		[]string{primaryCfg.Provider, secondaryCfg.Provider},
	), nil
}
