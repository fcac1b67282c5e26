package library

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordsnap-backend/internal/domain"
)

// Export renders the device's library as an indented JSON file, oldest set first.
func (s *Service) Export(ctx context.Context) ([]byte, error) {
	owner, err := deviceID(ctx)
	if err != nil {
		return nil, err
	}

	sets, err := s.sets.ListFull(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list sets for export: %w", err)
	}

	file := make([]FileSet, len(sets))
	for i, set := range sets {
		file[i] = toFileSet(set)
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}

	s.log.InfoContext(ctx, "library exported",
		slog.String("device_id", owner.String()),
		slog.Int("sets", len(sets)),
	)

	return data, nil
}

// Import loads an export file. Invalid sets and words are skipped and
// reported; a replace import deletes the library in the same transaction.
func (s *Service) Import(ctx context.Context, data []byte, mode ImportMode) (*ImportResult, error) {
	owner, err := deviceID(ctx)
	if err != nil {
		return nil, err
	}

	if s.cfg.MaxImportBytes > 0 && int64(len(data)) > s.cfg.MaxImportBytes {
		return nil, domain.NewValidationError("file", fmt.Sprintf("file exceeds %d bytes", s.cfg.MaxImportBytes))
	}
	if mode != ImportMerge && mode != ImportReplace {
		return nil, domain.NewValidationError("mode", fmt.Sprintf("unknown import mode %q", mode))
	}

	items, err := decodeFile(data)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Errors: []ImportError{}}
	now := s.now()
	var sets []*domain.SavedSet

	for i, raw := range items {
		var fs FileSet
		if err := json.Unmarshal(raw, &fs); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, ImportError{Index: i, Reason: "not a set object"})
			continue
		}

		name, words, dropped, reason := fromFileSet(fs, s.cfg.MaxWordsPerSet)
		result.SkippedWords += dropped
		if reason != "" {
			result.Skipped++
			result.Errors = append(result.Errors, ImportError{Index: i, Name: fs.Name, Reason: reason})
			continue
		}

		created := createdAt(fs.CreatedAt, now)
		sets = append(sets, &domain.SavedSet{
			ID:        uuid.New(),
			OwnerID:   owner,
			Name:      name,
			CreatedAt: created,
			UpdatedAt: now,
			Words:     words,
		})
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.sets.LockOwner(ctx, owner); err != nil {
			return err
		}

		existing := 0
		if mode == ImportReplace {
			removed, err := s.sets.DeleteAll(ctx, owner)
			if err != nil {
				return fmt.Errorf("clear library: %w", err)
			}
			result.Removed = removed
		} else {
			n, err := s.sets.Count(ctx, owner)
			if err != nil {
				return fmt.Errorf("count sets: %w", err)
			}
			existing = n
		}

		if existing+len(sets) > s.cfg.MaxSetsPerDevice {
			return domain.NewValidationError("file", fmt.Sprintf("import would exceed %d sets", s.cfg.MaxSetsPerDevice))
		}

		for _, set := range sets {
			if err := s.sets.Create(ctx, set); err != nil {
				return fmt.Errorf("create set %q: %w", set.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("import: %w", err)
	}

	result.Imported = len(sets)

	s.log.InfoContext(ctx, "library imported",
		slog.String("device_id", owner.String()),
		slog.String("mode", string(mode)),
		slog.Int("imported", result.Imported),
		slog.Int("skipped", result.Skipped),
		slog.Int("skipped_words", result.SkippedWords),
		slog.Int("removed", result.Removed),
	)

	return result, nil
}
