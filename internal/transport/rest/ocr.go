package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wordsnap-backend/internal/domain"
	"github.com/heartmarshall/wordsnap-backend/internal/service/ocr"
)

type ocrService interface {
	Extract(ctx context.Context, input ocr.ExtractInput) (*ocr.ExtractResult, error)
	ExtractBatch(ctx context.Context, inputs []ocr.ExtractInput) (*ocr.ExtractResult, error)
}

// OCRHandler serves the scan endpoint.
type OCRHandler struct {
	svc     ocrService
	log     *slog.Logger
	maxBody int64
}

// NewOCRHandler creates an OCRHandler. maxBody caps the request body size.
func NewOCRHandler(svc ocrService, logger *slog.Logger, maxBody int64) *OCRHandler {
	return &OCRHandler{svc: svc, log: logger.With("handler", "ocr"), maxBody: maxBody}
}

type imagePayload struct {
	Data      string `json:"data"`
	MediaType string `json:"media_type"`
}

type ocrRequest struct {
	Image  *imagePayload  `json:"image"`
	Images []imagePayload `json:"images"`
}

type ocrResponse struct {
	Words    []domain.WordEntry `json:"words"`
	Sets     []domain.WordSet   `json:"sets"`
	Dropped  int                `json:"dropped"`
	Degraded bool               `json:"degraded"`
}

// Extract handles POST /api/ocr. A single page goes in "image", several pages
// in "images". Model failures still answer 200 with an empty word list.
func (h *OCRHandler) Extract(w http.ResponseWriter, r *http.Request) {
	if h.maxBody > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
	}

	var req ocrRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var (
		result *ocr.ExtractResult
		err    error
	)
	switch {
	case req.Image != nil && len(req.Images) > 0:
		writeError(w, http.StatusBadRequest, "send either image or images, not both")
		return
	case req.Image != nil:
		result, err = h.svc.Extract(r.Context(), ocr.ExtractInput{
			Data:      req.Image.Data,
			MediaType: req.Image.MediaType,
		})
	case len(req.Images) > 0:
		inputs := make([]ocr.ExtractInput, len(req.Images))
		for i, img := range req.Images {
			inputs[i] = ocr.ExtractInput{Data: img.Data, MediaType: img.MediaType}
		}
		result, err = h.svc.ExtractBatch(r.Context(), inputs)
	default:
		writeError(w, http.StatusBadRequest, "No image provided")
		return
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ocrResponse{
		Words:    result.Words,
		Sets:     result.Sets,
		Dropped:  result.Dropped,
		Degraded: result.Degraded,
	})
}
