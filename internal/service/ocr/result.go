package ocr

import "github.com/heartmarshall/wordsnap-backend/internal/domain"

// ExtractResult is the outcome of one scan request.
type ExtractResult struct {
	// Words are the normalized entries in model order. Never nil.
	Words []domain.WordEntry
	// Sets are Words grouped by set number. Never nil.
	Sets []domain.WordSet
	// Dropped counts array elements rejected by the normalizer.
	Dropped int
	// Degraded is set when the model call or its payload failed and the
	// result is empty for that reason rather than because the page was empty.
	Degraded bool
	// ScanKeys are the archive keys of the stored pages, if archiving is on.
	ScanKeys []string
}
