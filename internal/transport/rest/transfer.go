package rest

import (
	"fmt"
	"io"
	"net/http"

	"github.com/heartmarshall/wordsnap-backend/internal/service/library"
)

type importErrorResponse struct {
	Index  int    `json:"index"`
	Name   string `json:"name,omitempty"`
	Reason string `json:"reason"`
}

type importResponse struct {
	Imported     int                   `json:"imported"`
	Skipped      int                   `json:"skipped"`
	SkippedWords int                   `json:"skippedWords"`
	Removed      int                   `json:"removed"`
	Errors       []importErrorResponse `json:"errors"`
}

// Export handles GET /api/export. The body is the export file itself.
func (h *LibraryHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.Export(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	filename := fmt.Sprintf("wordsnap-%s.json", h.now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data) //nolint:errcheck
}

// Import handles POST /api/import?mode=merge|replace. The body is an export file.
func (h *LibraryHandler) Import(w http.ResponseWriter, r *http.Request) {
	mode, err := library.ParseImportMode(r.URL.Query().Get("mode"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if h.maxImportBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxImportBytes)
	}
	data, err := io.ReadAll(r.Body)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.Import(r.Context(), data, mode)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := importResponse{
		Imported:     result.Imported,
		Skipped:      result.Skipped,
		SkippedWords: result.SkippedWords,
		Removed:      result.Removed,
		Errors:       make([]importErrorResponse, len(result.Errors)),
	}
	for i, e := range result.Errors {
		resp.Errors[i] = importErrorResponse{Index: e.Index, Name: e.Name, Reason: e.Reason}
	}
	writeJSON(w, http.StatusOK, resp)
}
