package imaging_test

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billscan/internal/imaging"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func jpegBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h)), nil))
	return buf.Bytes()
}

func TestReadMetrics_PNG(t *testing.T) {
	metrics, err := imaging.ReadMetrics(pngBytes(t, 1000, 750))

	require.NoError(t, err)
	assert.Equal(t, 1000, metrics.Width)
	assert.Equal(t, 750, metrics.Height)
}

func TestReadMetrics_JPEG(t *testing.T) {
	metrics, err := imaging.ReadMetrics(jpegBytes(t, 640, 480))

	require.NoError(t, err)
	assert.Equal(t, 640, metrics.Width)
	assert.Equal(t, 480, metrics.Height)
}

func TestReadMetrics_GarbageBytes(t *testing.T) {
	_, err := imaging.ReadMetrics([]byte("definitely not an image"))

	assert.Error(t, err)
}

func TestReadMetrics_Empty(t *testing.T) {
	_, err := imaging.ReadMetrics(nil)

	assert.Error(t, err)
}
