// Package imaging reads physical metadata from encoded image bytes.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"billscan/internal/domain"
)

// ReadMetrics decodes the image header and returns its pixel dimensions
// without decoding pixel data. Supported formats are JPEG and PNG.
func ReadMetrics(data []byte) (domain.ImageMetrics, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return domain.ImageMetrics{}, fmt.Errorf("decoding image config: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return domain.ImageMetrics{}, fmt.Errorf("invalid image dimensions: %dx%d", cfg.Width, cfg.Height)
	}
	return domain.ImageMetrics{Width: cfg.Width, Height: cfg.Height}, nil
}
