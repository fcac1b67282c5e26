package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wordsnap-backend/internal/config"
	"github.com/heartmarshall/wordsnap-backend/internal/transport/middleware"
	"github.com/heartmarshall/wordsnap-backend/internal/transport/rest"
)

// Handlers bundles the HTTP handlers served by the router.
type Handlers struct {
	OCR     *rest.OCRHandler
	Library *rest.LibraryHandler
	Health  *rest.HealthHandler
}

// NewRouter mounts every route and wraps the mux in the common middleware.
// The scan endpoint is rate limited; library routes require a device ID.
func NewRouter(logger *slog.Logger, cfg *config.Config, h Handlers, limiter *middleware.RateLimiter) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	scan := limiter.Limit(cfg.RateLimit.OCRPerMinute)
	mux.Handle("POST /api/ocr", scan(http.HandlerFunc(h.OCR.Extract)))

	device := func(fn http.HandlerFunc) http.Handler { return middleware.Device(fn) }
	mux.Handle("GET /api/sets", device(h.Library.ListSets))
	mux.Handle("POST /api/sets", device(h.Library.SaveSet))
	mux.Handle("GET /api/sets/{id}", device(h.Library.GetSet))
	mux.Handle("PATCH /api/sets/{id}", device(h.Library.RenameSet))
	mux.Handle("DELETE /api/sets/{id}", device(h.Library.DeleteSet))
	mux.Handle("POST /api/sets/{id}/words/{position}/known", device(h.Library.ToggleKnown))
	mux.Handle("POST /api/sets/{id}/reset", device(h.Library.ResetProgress))
	mux.Handle("GET /api/export", device(h.Library.Export))
	mux.Handle("POST /api/import", device(h.Library.Import))

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(mux)
}

// ocrBodyLimit is the largest scan request worth reading: a full batch of
// maximum-size images in base64 plus room for the JSON around them.
func ocrBodyLimit(cfg config.OCRConfig) int64 {
	perImage := (cfg.MaxImageBytes + 2) / 3 * 4
	pages := int64(max(cfg.MaxBatchImages, 1))
	return perImage*pages + 64<<10
}
