// Package library manages the saved study sets of a device.
package library

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordsnap-backend/internal/config"
	"github.com/heartmarshall/wordsnap-backend/internal/domain"
	"github.com/heartmarshall/wordsnap-backend/pkg/ctxutil"
)

type setRepo interface {
	Create(ctx context.Context, set *domain.SavedSet) error
	GetByID(ctx context.Context, ownerID, setID uuid.UUID) (*domain.SavedSet, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.SetSummary, error)
	ListFull(ctx context.Context, ownerID uuid.UUID) ([]domain.SavedSet, error)
	Count(ctx context.Context, ownerID uuid.UUID) (int, error)
	LockOwner(ctx context.Context, ownerID uuid.UUID) error
	Rename(ctx context.Context, ownerID, setID uuid.UUID, name string, now time.Time) error
	Delete(ctx context.Context, ownerID, setID uuid.UUID) error
	DeleteAll(ctx context.Context, ownerID uuid.UUID) (int, error)
	ToggleKnown(ctx context.Context, ownerID, setID uuid.UUID, position int) (*domain.SavedWord, error)
	ResetKnown(ctx context.Context, ownerID, setID uuid.UUID) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides saved set operations scoped to the calling device.
type Service struct {
	sets setRepo
	tx   txManager
	cfg  config.LibraryConfig
	log  *slog.Logger
	now  func() time.Time
}

// NewService creates a new library service.
func NewService(log *slog.Logger, cfg config.LibraryConfig, sets setRepo, tx txManager) *Service {
	return &Service{
		sets: sets,
		tx:   tx,
		cfg:  cfg,
		log:  log.With("service", "library"),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func deviceID(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctxutil.DeviceIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return id, nil
}
