package library

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordsnap-backend/internal/domain"
)

// SaveSet stores a new set for the device. Every word starts unknown.
func (s *Service) SaveSet(ctx context.Context, input SaveSetInput) (*domain.SavedSet, error) {
	owner, err := deviceID(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if len(input.Words) > s.cfg.MaxWordsPerSet {
		return nil, domain.NewValidationError("words", fmt.Sprintf("max %d words", s.cfg.MaxWordsPerSet))
	}

	now := s.now()
	set := &domain.SavedSet{
		ID:        uuid.New(),
		OwnerID:   owner,
		Name:      domain.CleanText(input.Name),
		CreatedAt: now,
		UpdatedAt: now,
		Words:     toSavedWords(input.Words),
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.sets.LockOwner(ctx, owner); err != nil {
			return err
		}
		count, err := s.sets.Count(ctx, owner)
		if err != nil {
			return fmt.Errorf("count sets: %w", err)
		}
		if count >= s.cfg.MaxSetsPerDevice {
			return domain.NewValidationError("sets", fmt.Sprintf("library is full (max %d sets)", s.cfg.MaxSetsPerDevice))
		}
		return s.sets.Create(ctx, set)
	})
	if err != nil {
		return nil, fmt.Errorf("save set: %w", err)
	}

	s.log.InfoContext(ctx, "set saved",
		slog.String("device_id", owner.String()),
		slog.String("set_id", set.ID.String()),
		slog.Int("words", len(set.Words)),
	)

	return set, nil
}

// ListSets returns the device's set summaries, newest first.
func (s *Service) ListSets(ctx context.Context) ([]domain.SetSummary, error) {
	owner, err := deviceID(ctx)
	if err != nil {
		return nil, err
	}

	sets, err := s.sets.List(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}
	return sets, nil
}

// GetSet returns one set with its words.
func (s *Service) GetSet(ctx context.Context, setID uuid.UUID) (*domain.SavedSet, error) {
	owner, err := deviceID(ctx)
	if err != nil {
		return nil, err
	}

	set, err := s.sets.GetByID(ctx, owner, setID)
	if err != nil {
		return nil, fmt.Errorf("get set: %w", err)
	}
	return set, nil
}

// RenameSet changes a set's name and returns the updated set.
func (s *Service) RenameSet(ctx context.Context, input RenameSetInput) (*domain.SavedSet, error) {
	owner, err := deviceID(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.sets.Rename(ctx, owner, input.SetID, domain.CleanText(input.Name), s.now()); err != nil {
		return nil, fmt.Errorf("rename set: %w", err)
	}

	set, err := s.sets.GetByID(ctx, owner, input.SetID)
	if err != nil {
		return nil, fmt.Errorf("get set: %w", err)
	}
	return set, nil
}

// DeleteSet removes a set and its words.
func (s *Service) DeleteSet(ctx context.Context, setID uuid.UUID) error {
	owner, err := deviceID(ctx)
	if err != nil {
		return err
	}

	if err := s.sets.Delete(ctx, owner, setID); err != nil {
		return fmt.Errorf("delete set: %w", err)
	}

	s.log.InfoContext(ctx, "set deleted",
		slog.String("device_id", owner.String()),
		slog.String("set_id", setID.String()),
	)
	return nil
}

// ToggleKnown flips the known flag of one word.
func (s *Service) ToggleKnown(ctx context.Context, input ToggleKnownInput) (*domain.SavedWord, error) {
	owner, err := deviceID(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	word, err := s.sets.ToggleKnown(ctx, owner, input.SetID, input.Position)
	if err != nil {
		return nil, fmt.Errorf("toggle known: %w", err)
	}
	return word, nil
}

// ResetProgress marks every word of the set unknown and returns how many changed.
func (s *Service) ResetProgress(ctx context.Context, setID uuid.UUID) (int, error) {
	owner, err := deviceID(ctx)
	if err != nil {
		return 0, err
	}

	n, err := s.sets.ResetKnown(ctx, owner, setID)
	if err != nil {
		return 0, fmt.Errorf("reset progress: %w", err)
	}
	return n, nil
}
