// Package ocr turns photographed word lists into grouped study sets.
package ocr

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/wordsnap-backend/internal/config"
	"github.com/heartmarshall/wordsnap-backend/internal/domain"
	"github.com/heartmarshall/wordsnap-backend/internal/wordset"
)

type extractor interface {
	ExtractText(ctx context.Context, img domain.ScanImage) (string, error)
}

type scanArchive interface {
	PutScan(ctx context.Context, data []byte, mediaType string) (string, error)
}

// Service runs the scan pipeline: validate, archive, extract, normalize, group.
type Service struct {
	extractor extractor
	archive   scanArchive
	labeler   wordset.Labeler
	cfg       config.OCRConfig
	log       *slog.Logger
}

// Option configures optional collaborators of the Service.
type Option func(*Service)

// WithArchive stores every accepted scan in the archive before extraction.
func WithArchive(a scanArchive) Option {
	return func(s *Service) { s.archive = a }
}

// NewService creates a new OCR service.
func NewService(log *slog.Logger, cfg config.OCRConfig, extractor extractor, opts ...Option) *Service {
	s := &Service{
		extractor: extractor,
		labeler: wordset.Labeler{
			NumberFormat: cfg.SetLabelFormat,
			MiscLabel:    cfg.MiscLabel,
		},
		cfg: cfg,
		log: log.With("service", "ocr"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
