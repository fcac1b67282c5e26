package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/wordsnap-backend/internal/service/ocr"
)

var _ ocrService = &ocrServiceMock{}

type ocrServiceMock struct {
	ExtractFunc      func(ctx context.Context, input ocr.ExtractInput) (*ocr.ExtractResult, error)
	ExtractBatchFunc func(ctx context.Context, inputs []ocr.ExtractInput) (*ocr.ExtractResult, error)

	calls struct {
		Extract []struct {
			Ctx   context.Context
			Input ocr.ExtractInput
		}
		ExtractBatch []struct {
			Ctx    context.Context
			Inputs []ocr.ExtractInput
		}
	}
	lockExtract      sync.RWMutex
	lockExtractBatch sync.RWMutex
}

func (mock *ocrServiceMock) Extract(ctx context.Context, input ocr.ExtractInput) (*ocr.ExtractResult, error) {
	if mock.ExtractFunc == nil {
		panic("ocrServiceMock.ExtractFunc: method is nil but ocrService.Extract was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input ocr.ExtractInput
	}{Ctx: ctx, Input: input}
	mock.lockExtract.Lock()
	mock.calls.Extract = append(mock.calls.Extract, callInfo)
	mock.lockExtract.Unlock()
	return mock.ExtractFunc(ctx, input)
}

func (mock *ocrServiceMock) ExtractCalls() []struct {
	Ctx   context.Context
	Input ocr.ExtractInput
} {
	mock.lockExtract.RLock()
	calls := mock.calls.Extract
	mock.lockExtract.RUnlock()
	return calls
}

func (mock *ocrServiceMock) ExtractBatch(ctx context.Context, inputs []ocr.ExtractInput) (*ocr.ExtractResult, error) {
	if mock.ExtractBatchFunc == nil {
		panic("ocrServiceMock.ExtractBatchFunc: method is nil but ocrService.ExtractBatch was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Inputs []ocr.ExtractInput
	}{Ctx: ctx, Inputs: inputs}
	mock.lockExtractBatch.Lock()
	mock.calls.ExtractBatch = append(mock.calls.ExtractBatch, callInfo)
	mock.lockExtractBatch.Unlock()
	return mock.ExtractBatchFunc(ctx, inputs)
}

func (mock *ocrServiceMock) ExtractBatchCalls() []struct {
	Ctx    context.Context
	Inputs []ocr.ExtractInput
} {
	mock.lockExtractBatch.RLock()
	calls := mock.calls.ExtractBatch
	mock.lockExtractBatch.RUnlock()
	return calls
}
