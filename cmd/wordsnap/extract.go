package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordsnap-backend/internal/adapter/blobstore"
	"github.com/heartmarshall/wordsnap-backend/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/wordsnap-backend/internal/config"
	"github.com/heartmarshall/wordsnap-backend/internal/domain"
	"github.com/heartmarshall/wordsnap-backend/internal/service/ocr"
)

// extractOutput mirrors the body of POST /api/ocr.
type extractOutput struct {
	Words    []domain.WordEntry `json:"words"`
	Sets     []domain.WordSet   `json:"sets"`
	Dropped  int                `json:"dropped"`
	Degraded bool               `json:"degraded"`
	ScanKeys []string           `json:"scanKeys,omitempty"`
}

func toExtractOutput(res *ocr.ExtractResult) extractOutput {
	return extractOutput{
		Words:    res.Words,
		Sets:     res.Sets,
		Dropped:  res.Dropped,
		Degraded: res.Degraded,
		ScanKeys: res.ScanKeys,
	}
}

func extractCmd() *cobra.Command {
	var archive bool

	cmd := &cobra.Command{
		Use:   "extract <image>...",
		Short: "Extract and group the words on one or more photographed pages",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := make([]ocr.ExtractInput, 0, len(args))
			for _, p := range args {
				data, err := os.ReadFile(p)
				if err != nil {
					return err
				}
				img := domain.NewScanImage(mediaTypeOfFile(p), data)
				inputs = append(inputs, ocr.ExtractInput{Data: img.Data, MediaType: img.MediaType})
			}

			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			svc, err := newOCRService(cmd.Context(), cfg, logger, archive)
			if err != nil {
				return err
			}

			res, err := svc.ExtractBatch(cmd.Context(), inputs)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), toExtractOutput(res))
		},
	}

	cmd.Flags().BoolVar(&archive, "archive", false, "store the pages in the scan archive")
	return cmd
}

func rescanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rescan <key>...",
		Short: "Run extraction again on archived scans",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			if !cfg.Storage.Enabled() {
				return fmt.Errorf("rescan: storage.endpoint is not configured")
			}

			store, err := blobstore.New(cfg.Storage, logger)
			if err != nil {
				return err
			}

			inputs := make([]ocr.ExtractInput, 0, len(args))
			for _, key := range args {
				img, err := store.GetScan(cmd.Context(), key)
				if err != nil {
					return err
				}
				inputs = append(inputs, ocr.ExtractInput{Data: img.Data, MediaType: img.MediaType})
			}

			svc, err := newOCRService(cmd.Context(), cfg, logger, false)
			if err != nil {
				return err
			}

			res, err := svc.ExtractBatch(cmd.Context(), inputs)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), toExtractOutput(res))
		},
	}
}

func newOCRService(ctx context.Context, cfg *config.Config, logger *slog.Logger, archive bool) (*ocr.Service, error) {
	if err := cfg.LLM.Validate(); err != nil {
		return nil, fmt.Errorf("llm: %w", err)
	}

	var opts []ocr.Option
	if archive {
		if !cfg.Storage.Enabled() {
			return nil, fmt.Errorf("--archive: storage.endpoint is not configured")
		}
		store, err := blobstore.New(cfg.Storage, logger)
		if err != nil {
			return nil, err
		}
		if err := store.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		opts = append(opts, ocr.WithArchive(store))
	}

	return ocr.NewService(logger, cfg.OCR, anthropic.NewClient(cfg.LLM, logger), opts...), nil
}

// mediaTypeOfFile maps a file extension to an image media type. Unknown
// extensions fall through to the service's default.
func mediaTypeOfFile(p string) string {
	ext := strings.ToLower(filepath.Ext(p))
	if ext == ".jpeg" {
		ext = ".jpg"
	}
	mt := blobstore.MediaTypeOf("f" + ext)
	if mt == "application/octet-stream" {
		return ""
	}
	return mt
}
