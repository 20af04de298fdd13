package handler

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"billscan/internal/domain"
	"billscan/internal/imaging"
	"billscan/internal/service"
)

// BillHandler handles the bill processing endpoint.
type BillHandler struct {
	billService  service.BillService
	maxFileBytes int64
}

// NewBillHandler creates a new BillHandler. maxFileSizeMB bounds the accepted
// upload size; zero disables the check.
func NewBillHandler(billService service.BillService, maxFileSizeMB int64) *BillHandler {
	return &BillHandler{
		billService:  billService,
		maxFileBytes: maxFileSizeMB * 1024 * 1024,
	}
}

// Process handles POST /process-bill. Request validation failures map to 4xx;
// pipeline outcomes — success or failure variant — are always returned with
// status 200 and distinguished by body shape.
func (h *BillHandler) Process(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		HandleError(c, domain.ErrMissingFile)
		return
	}
	defer func() { _ = file.Close() }()

	if header.Filename == "" {
		HandleError(c, domain.ErrEmptyFileName)
		return
	}

	contentType, ok := contentTypeForFilename(header.Filename)
	if !ok {
		HandleError(c, domain.ErrUnsupportedFileType)
		return
	}

	if h.maxFileBytes > 0 && header.Size > h.maxFileBytes {
		HandleError(c, domain.ErrFileTooLarge)
		return
	}

	imageBytes, err := io.ReadAll(file)
	if err != nil {
		HandleError(c, domain.ErrInvalidImage)
		return
	}

	metrics, err := imaging.ReadMetrics(imageBytes)
	if err != nil {
		HandleError(c, domain.ErrInvalidImage)
		return
	}

	result := h.billService.Process(c.Request.Context(), service.ProcessInput{
		ImageBytes:  imageBytes,
		ContentType: contentType,
		Metrics:     metrics,
	})

	if result.Failed() {
		c.JSON(http.StatusOK, result.Failure)
		return
	}
	c.JSON(http.StatusOK, result.Record)
}

// contentTypeForFilename maps an accepted file extension to the MIME type
// sent to the vision model. Extension matching is case-insensitive.
func contentTypeForFilename(filename string) (string, bool) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg", true
	case ".png":
		return "image/png", true
	default:
		return "", false
	}
}
