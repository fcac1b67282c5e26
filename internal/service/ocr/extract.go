package ocr

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/wordsnap-backend/internal/domain"
	"github.com/heartmarshall/wordsnap-backend/internal/extraction"
)

const previewRunes = 200

// page is the per-image outcome before grouping.
type page struct {
	entries  []domain.WordEntry
	dropped  int
	degraded bool
	scanKey  string
}

// Extract reads one page. Upstream and payload failures degrade to an empty
// result instead of an error; only invalid input and a cancelled caller
// context are returned as errors.
func (s *Service) Extract(ctx context.Context, input ExtractInput) (*ExtractResult, error) {
	img, errs := s.prepare(input, "image")
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	p := s.readPage(ctx, img)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return s.assemble([]page{p}), nil
}

// ExtractBatch reads several pages concurrently and merges their entries in
// input order before grouping, so a set spanning two pages ends up whole.
func (s *Service) ExtractBatch(ctx context.Context, inputs []ExtractInput) (*ExtractResult, error) {
	if len(inputs) == 0 {
		return nil, domain.NewValidationError("images", "required")
	}
	if len(inputs) > s.cfg.MaxBatchImages {
		return nil, domain.NewValidationError("images", fmt.Sprintf("max %d images", s.cfg.MaxBatchImages))
	}

	images := make([]domain.ScanImage, len(inputs))
	var errs []domain.FieldError
	for i, in := range inputs {
		img, fieldErrs := s.prepare(in, fmt.Sprintf("images[%d]", i))
		errs = append(errs, fieldErrs...)
		images[i] = img
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	pages := make([]page, len(images))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(s.cfg.BatchConcurrency, 1))
	for i, img := range images {
		g.Go(func() error {
			pages[i] = s.readPage(gctx, img)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "batch extracted", slog.Int("pages", len(pages)))

	return s.assemble(pages), nil
}

// readPage archives and extracts one validated image.
func (s *Service) readPage(ctx context.Context, img domain.ScanImage) page {
	var p page

	if s.archive != nil {
		key, err := s.archive.PutScan(ctx, img.Raw, img.MediaType)
		if err != nil {
			s.log.WarnContext(ctx, "scan archive failed", slog.String("error", err.Error()))
		} else {
			p.scanKey = key
		}
	}

	callCtx := ctx
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	raw, err := s.extractor.ExtractText(callCtx, img)
	if err != nil {
		if ctx.Err() == nil {
			s.log.ErrorContext(ctx, "extraction failed",
				slog.String("media_type", img.MediaType),
				slog.Int("bytes", len(img.Raw)),
				slog.Bool("timeout", errors.Is(err, context.DeadlineExceeded)),
				slog.String("error", err.Error()),
			)
		}
		p.degraded = true
		p.entries = []domain.WordEntry{}
		return p
	}

	res, err := extraction.Parse(raw)
	if err != nil {
		s.log.WarnContext(ctx, "extraction payload malformed",
			slog.String("preview", preview(raw)),
			slog.String("error", err.Error()),
		)
		p.degraded = true
	}
	if res.Dropped > 0 {
		s.log.InfoContext(ctx, "extraction entries dropped",
			slog.Int("total", res.Total),
			slog.Int("dropped", res.Dropped),
		)
	}

	p.entries = res.Entries
	p.dropped = res.Dropped
	return p
}

func (s *Service) assemble(pages []page) *ExtractResult {
	result := &ExtractResult{Words: []domain.WordEntry{}}
	for _, p := range pages {
		result.Words = append(result.Words, p.entries...)
		result.Dropped += p.dropped
		result.Degraded = result.Degraded || p.degraded
		if p.scanKey != "" {
			result.ScanKeys = append(result.ScanKeys, p.scanKey)
		}
	}
	result.Sets = s.labeler.Group(result.Words)
	return result
}

func preview(s string) string {
	r := []rune(s)
	if len(r) <= previewRunes {
		return s
	}
	return string(r[:previewRunes]) + "…"
}
