package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordsnap-backend/internal/domain"
	"github.com/heartmarshall/wordsnap-backend/internal/service/library"
)

var _ libraryService = &libraryServiceMock{}

type libraryServiceMock struct {
	DeleteSetFunc     func(ctx context.Context, setID uuid.UUID) error
	ExportFunc        func(ctx context.Context) ([]byte, error)
	GetSetFunc        func(ctx context.Context, setID uuid.UUID) (*domain.SavedSet, error)
	ImportFunc        func(ctx context.Context, data []byte, mode library.ImportMode) (*library.ImportResult, error)
	ListSetsFunc      func(ctx context.Context) ([]domain.SetSummary, error)
	RenameSetFunc     func(ctx context.Context, input library.RenameSetInput) (*domain.SavedSet, error)
	ResetProgressFunc func(ctx context.Context, setID uuid.UUID) (int, error)
	SaveSetFunc       func(ctx context.Context, input library.SaveSetInput) (*domain.SavedSet, error)
	ToggleKnownFunc   func(ctx context.Context, input library.ToggleKnownInput) (*domain.SavedWord, error)

	calls struct {
		DeleteSet []struct {
			Ctx   context.Context
			SetID uuid.UUID
		}
		Export []struct {
			Ctx context.Context
		}
		GetSet []struct {
			Ctx   context.Context
			SetID uuid.UUID
		}
		Import []struct {
			Ctx  context.Context
			Data []byte
			Mode library.ImportMode
		}
		ListSets []struct {
			Ctx context.Context
		}
		RenameSet []struct {
			Ctx   context.Context
			Input library.RenameSetInput
		}
		ResetProgress []struct {
			Ctx   context.Context
			SetID uuid.UUID
		}
		SaveSet []struct {
			Ctx   context.Context
			Input library.SaveSetInput
		}
		ToggleKnown []struct {
			Ctx   context.Context
			Input library.ToggleKnownInput
		}
	}
	lockDeleteSet     sync.RWMutex
	lockExport        sync.RWMutex
	lockGetSet        sync.RWMutex
	lockImport        sync.RWMutex
	lockListSets      sync.RWMutex
	lockRenameSet     sync.RWMutex
	lockResetProgress sync.RWMutex
	lockSaveSet       sync.RWMutex
	lockToggleKnown   sync.RWMutex
}

func (mock *libraryServiceMock) DeleteSet(ctx context.Context, setID uuid.UUID) error {
	if mock.DeleteSetFunc == nil {
		panic("libraryServiceMock.DeleteSetFunc: method is nil but libraryService.DeleteSet was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		SetID uuid.UUID
	}{Ctx: ctx, SetID: setID}
	mock.lockDeleteSet.Lock()
	mock.calls.DeleteSet = append(mock.calls.DeleteSet, callInfo)
	mock.lockDeleteSet.Unlock()
	return mock.DeleteSetFunc(ctx, setID)
}

func (mock *libraryServiceMock) DeleteSetCalls() []struct {
	Ctx   context.Context
	SetID uuid.UUID
} {
	mock.lockDeleteSet.RLock()
	calls := mock.calls.DeleteSet
	mock.lockDeleteSet.RUnlock()
	return calls
}

func (mock *libraryServiceMock) Export(ctx context.Context) ([]byte, error) {
	if mock.ExportFunc == nil {
		panic("libraryServiceMock.ExportFunc: method is nil but libraryService.Export was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockExport.Lock()
	mock.calls.Export = append(mock.calls.Export, callInfo)
	mock.lockExport.Unlock()
	return mock.ExportFunc(ctx)
}

func (mock *libraryServiceMock) ExportCalls() []struct {
	Ctx context.Context
} {
	mock.lockExport.RLock()
	calls := mock.calls.Export
	mock.lockExport.RUnlock()
	return calls
}

func (mock *libraryServiceMock) GetSet(ctx context.Context, setID uuid.UUID) (*domain.SavedSet, error) {
	if mock.GetSetFunc == nil {
		panic("libraryServiceMock.GetSetFunc: method is nil but libraryService.GetSet was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		SetID uuid.UUID
	}{Ctx: ctx, SetID: setID}
	mock.lockGetSet.Lock()
	mock.calls.GetSet = append(mock.calls.GetSet, callInfo)
	mock.lockGetSet.Unlock()
	return mock.GetSetFunc(ctx, setID)
}

func (mock *libraryServiceMock) GetSetCalls() []struct {
	Ctx   context.Context
	SetID uuid.UUID
} {
	mock.lockGetSet.RLock()
	calls := mock.calls.GetSet
	mock.lockGetSet.RUnlock()
	return calls
}

func (mock *libraryServiceMock) Import(ctx context.Context, data []byte, mode library.ImportMode) (*library.ImportResult, error) {
	if mock.ImportFunc == nil {
		panic("libraryServiceMock.ImportFunc: method is nil but libraryService.Import was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Data []byte
		Mode library.ImportMode
	}{Ctx: ctx, Data: data, Mode: mode}
	mock.lockImport.Lock()
	mock.calls.Import = append(mock.calls.Import, callInfo)
	mock.lockImport.Unlock()
	return mock.ImportFunc(ctx, data, mode)
}

func (mock *libraryServiceMock) ImportCalls() []struct {
	Ctx  context.Context
	Data []byte
	Mode library.ImportMode
} {
	mock.lockImport.RLock()
	calls := mock.calls.Import
	mock.lockImport.RUnlock()
	return calls
}

func (mock *libraryServiceMock) ListSets(ctx context.Context) ([]domain.SetSummary, error) {
	if mock.ListSetsFunc == nil {
		panic("libraryServiceMock.ListSetsFunc: method is nil but libraryService.ListSets was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListSets.Lock()
	mock.calls.ListSets = append(mock.calls.ListSets, callInfo)
	mock.lockListSets.Unlock()
	return mock.ListSetsFunc(ctx)
}

func (mock *libraryServiceMock) ListSetsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListSets.RLock()
	calls := mock.calls.ListSets
	mock.lockListSets.RUnlock()
	return calls
}

func (mock *libraryServiceMock) RenameSet(ctx context.Context, input library.RenameSetInput) (*domain.SavedSet, error) {
	if mock.RenameSetFunc == nil {
		panic("libraryServiceMock.RenameSetFunc: method is nil but libraryService.RenameSet was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input library.RenameSetInput
	}{Ctx: ctx, Input: input}
	mock.lockRenameSet.Lock()
	mock.calls.RenameSet = append(mock.calls.RenameSet, callInfo)
	mock.lockRenameSet.Unlock()
	return mock.RenameSetFunc(ctx, input)
}

func (mock *libraryServiceMock) RenameSetCalls() []struct {
	Ctx   context.Context
	Input library.RenameSetInput
} {
	mock.lockRenameSet.RLock()
	calls := mock.calls.RenameSet
	mock.lockRenameSet.RUnlock()
	return calls
}

func (mock *libraryServiceMock) ResetProgress(ctx context.Context, setID uuid.UUID) (int, error) {
	if mock.ResetProgressFunc == nil {
		panic("libraryServiceMock.ResetProgressFunc: method is nil but libraryService.ResetProgress was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		SetID uuid.UUID
	}{Ctx: ctx, SetID: setID}
	mock.lockResetProgress.Lock()
	mock.calls.ResetProgress = append(mock.calls.ResetProgress, callInfo)
	mock.lockResetProgress.Unlock()
	return mock.ResetProgressFunc(ctx, setID)
}

func (mock *libraryServiceMock) ResetProgressCalls() []struct {
	Ctx   context.Context
	SetID uuid.UUID
} {
	mock.lockResetProgress.RLock()
	calls := mock.calls.ResetProgress
	mock.lockResetProgress.RUnlock()
	return calls
}

func (mock *libraryServiceMock) SaveSet(ctx context.Context, input library.SaveSetInput) (*domain.SavedSet, error) {
	if mock.SaveSetFunc == nil {
		panic("libraryServiceMock.SaveSetFunc: method is nil but libraryService.SaveSet was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input library.SaveSetInput
	}{Ctx: ctx, Input: input}
	mock.lockSaveSet.Lock()
	mock.calls.SaveSet = append(mock.calls.SaveSet, callInfo)
	mock.lockSaveSet.Unlock()
	return mock.SaveSetFunc(ctx, input)
}

func (mock *libraryServiceMock) SaveSetCalls() []struct {
	Ctx   context.Context
	Input library.SaveSetInput
} {
	mock.lockSaveSet.RLock()
	calls := mock.calls.SaveSet
	mock.lockSaveSet.RUnlock()
	return calls
}

func (mock *libraryServiceMock) ToggleKnown(ctx context.Context, input library.ToggleKnownInput) (*domain.SavedWord, error) {
	if mock.ToggleKnownFunc == nil {
		panic("libraryServiceMock.ToggleKnownFunc: method is nil but libraryService.ToggleKnown was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input library.ToggleKnownInput
	}{Ctx: ctx, Input: input}
	mock.lockToggleKnown.Lock()
	mock.calls.ToggleKnown = append(mock.calls.ToggleKnown, callInfo)
	mock.lockToggleKnown.Unlock()
	return mock.ToggleKnownFunc(ctx, input)
}

func (mock *libraryServiceMock) ToggleKnownCalls() []struct {
	Ctx   context.Context
	Input library.ToggleKnownInput
} {
	mock.lockToggleKnown.RLock()
	calls := mock.calls.ToggleKnown
	mock.lockToggleKnown.RUnlock()
	return calls
}
