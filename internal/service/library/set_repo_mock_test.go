package library

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordsnap-backend/internal/domain"
)

var _ setRepo = &setRepoMock{}

type setRepoMock struct {
	CountFunc       func(ctx context.Context, ownerID uuid.UUID) (int, error)
	CreateFunc      func(ctx context.Context, set *domain.SavedSet) error
	DeleteFunc      func(ctx context.Context, ownerID uuid.UUID, setID uuid.UUID) error
	DeleteAllFunc   func(ctx context.Context, ownerID uuid.UUID) (int, error)
	GetByIDFunc     func(ctx context.Context, ownerID uuid.UUID, setID uuid.UUID) (*domain.SavedSet, error)
	ListFunc        func(ctx context.Context, ownerID uuid.UUID) ([]domain.SetSummary, error)
	ListFullFunc    func(ctx context.Context, ownerID uuid.UUID) ([]domain.SavedSet, error)
	LockOwnerFunc   func(ctx context.Context, ownerID uuid.UUID) error
	RenameFunc      func(ctx context.Context, ownerID uuid.UUID, setID uuid.UUID, name string, now time.Time) error
	ResetKnownFunc  func(ctx context.Context, ownerID uuid.UUID, setID uuid.UUID) (int, error)
	ToggleKnownFunc func(ctx context.Context, ownerID uuid.UUID, setID uuid.UUID, position int) (*domain.SavedWord, error)

	calls struct {
		Count []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			Set *domain.SavedSet
		}
		Delete []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			SetID   uuid.UUID
		}
		DeleteAll []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		GetByID []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			SetID   uuid.UUID
		}
		List []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		ListFull []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		LockOwner []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		Rename []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			SetID   uuid.UUID
			Name    string
			Now     time.Time
		}
		ResetKnown []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			SetID   uuid.UUID
		}
		ToggleKnown []struct {
			Ctx      context.Context
			OwnerID  uuid.UUID
			SetID    uuid.UUID
			Position int
		}
	}
	lockCount       sync.RWMutex
	lockCreate      sync.RWMutex
	lockDelete      sync.RWMutex
	lockDeleteAll   sync.RWMutex
	lockGetByID     sync.RWMutex
	lockList        sync.RWMutex
	lockListFull    sync.RWMutex
	lockLockOwner   sync.RWMutex
	lockRename      sync.RWMutex
	lockResetKnown  sync.RWMutex
	lockToggleKnown sync.RWMutex
}

func (mock *setRepoMock) Count(ctx context.Context, ownerID uuid.UUID) (int, error) {
	if mock.CountFunc == nil {
		panic("setRepoMock.CountFunc: method is nil but setRepo.Count was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, ownerID)
}

func (mock *setRepoMock) CountCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *setRepoMock) Create(ctx context.Context, set *domain.SavedSet) error {
	if mock.CreateFunc == nil {
		panic("setRepoMock.CreateFunc: method is nil but setRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Set *domain.SavedSet
	}{Ctx: ctx, Set: set}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, set)
}

func (mock *setRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Set *domain.SavedSet
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *setRepoMock) Delete(ctx context.Context, ownerID uuid.UUID, setID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("setRepoMock.DeleteFunc: method is nil but setRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		SetID   uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, SetID: setID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, ownerID, setID)
}

func (mock *setRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	SetID   uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *setRepoMock) DeleteAll(ctx context.Context, ownerID uuid.UUID) (int, error) {
	if mock.DeleteAllFunc == nil {
		panic("setRepoMock.DeleteAllFunc: method is nil but setRepo.DeleteAll was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockDeleteAll.Lock()
	mock.calls.DeleteAll = append(mock.calls.DeleteAll, callInfo)
	mock.lockDeleteAll.Unlock()
	return mock.DeleteAllFunc(ctx, ownerID)
}

func (mock *setRepoMock) DeleteAllCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockDeleteAll.RLock()
	calls := mock.calls.DeleteAll
	mock.lockDeleteAll.RUnlock()
	return calls
}

func (mock *setRepoMock) GetByID(ctx context.Context, ownerID uuid.UUID, setID uuid.UUID) (*domain.SavedSet, error) {
	if mock.GetByIDFunc == nil {
		panic("setRepoMock.GetByIDFunc: method is nil but setRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		SetID   uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, SetID: setID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, ownerID, setID)
}

func (mock *setRepoMock) GetByIDCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	SetID   uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *setRepoMock) List(ctx context.Context, ownerID uuid.UUID) ([]domain.SetSummary, error) {
	if mock.ListFunc == nil {
		panic("setRepoMock.ListFunc: method is nil but setRepo.List was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, ownerID)
}

func (mock *setRepoMock) ListCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *setRepoMock) ListFull(ctx context.Context, ownerID uuid.UUID) ([]domain.SavedSet, error) {
	if mock.ListFullFunc == nil {
		panic("setRepoMock.ListFullFunc: method is nil but setRepo.ListFull was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockListFull.Lock()
	mock.calls.ListFull = append(mock.calls.ListFull, callInfo)
	mock.lockListFull.Unlock()
	return mock.ListFullFunc(ctx, ownerID)
}

func (mock *setRepoMock) ListFullCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockListFull.RLock()
	calls := mock.calls.ListFull
	mock.lockListFull.RUnlock()
	return calls
}

func (mock *setRepoMock) LockOwner(ctx context.Context, ownerID uuid.UUID) error {
	if mock.LockOwnerFunc == nil {
		panic("setRepoMock.LockOwnerFunc: method is nil but setRepo.LockOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockLockOwner.Lock()
	mock.calls.LockOwner = append(mock.calls.LockOwner, callInfo)
	mock.lockLockOwner.Unlock()
	return mock.LockOwnerFunc(ctx, ownerID)
}

func (mock *setRepoMock) LockOwnerCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockLockOwner.RLock()
	calls := mock.calls.LockOwner
	mock.lockLockOwner.RUnlock()
	return calls
}

func (mock *setRepoMock) Rename(ctx context.Context, ownerID uuid.UUID, setID uuid.UUID, name string, now time.Time) error {
	if mock.RenameFunc == nil {
		panic("setRepoMock.RenameFunc: method is nil but setRepo.Rename was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		SetID   uuid.UUID
		Name    string
		Now     time.Time
	}{Ctx: ctx, OwnerID: ownerID, SetID: setID, Name: name, Now: now}
	mock.lockRename.Lock()
	mock.calls.Rename = append(mock.calls.Rename, callInfo)
	mock.lockRename.Unlock()
	return mock.RenameFunc(ctx, ownerID, setID, name, now)
}

func (mock *setRepoMock) RenameCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	SetID   uuid.UUID
	Name    string
	Now     time.Time
} {
	mock.lockRename.RLock()
	calls := mock.calls.Rename
	mock.lockRename.RUnlock()
	return calls
}

func (mock *setRepoMock) ResetKnown(ctx context.Context, ownerID uuid.UUID, setID uuid.UUID) (int, error) {
	if mock.ResetKnownFunc == nil {
		panic("setRepoMock.ResetKnownFunc: method is nil but setRepo.ResetKnown was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		SetID   uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, SetID: setID}
	mock.lockResetKnown.Lock()
	mock.calls.ResetKnown = append(mock.calls.ResetKnown, callInfo)
	mock.lockResetKnown.Unlock()
	return mock.ResetKnownFunc(ctx, ownerID, setID)
}

func (mock *setRepoMock) ResetKnownCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	SetID   uuid.UUID
} {
	mock.lockResetKnown.RLock()
	calls := mock.calls.ResetKnown
	mock.lockResetKnown.RUnlock()
	return calls
}

func (mock *setRepoMock) ToggleKnown(ctx context.Context, ownerID uuid.UUID, setID uuid.UUID, position int) (*domain.SavedWord, error) {
	if mock.ToggleKnownFunc == nil {
		panic("setRepoMock.ToggleKnownFunc: method is nil but setRepo.ToggleKnown was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		OwnerID  uuid.UUID
		SetID    uuid.UUID
		Position int
	}{Ctx: ctx, OwnerID: ownerID, SetID: setID, Position: position}
	mock.lockToggleKnown.Lock()
	mock.calls.ToggleKnown = append(mock.calls.ToggleKnown, callInfo)
	mock.lockToggleKnown.Unlock()
	return mock.ToggleKnownFunc(ctx, ownerID, setID, position)
}

func (mock *setRepoMock) ToggleKnownCalls() []struct {
	Ctx      context.Context
	OwnerID  uuid.UUID
	SetID    uuid.UUID
	Position int
} {
	mock.lockToggleKnown.RLock()
	calls := mock.calls.ToggleKnown
	mock.lockToggleKnown.RUnlock()
	return calls
}
