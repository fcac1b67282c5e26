package ocr

import (
	"context"
	"sync"

	"github.com/heartmarshall/wordsnap-backend/internal/domain"
)

var _ extractor = &extractorMock{}

type extractorMock struct {
	ExtractTextFunc func(ctx context.Context, img domain.ScanImage) (string, error)

	calls struct {
		ExtractText []struct {
			Ctx context.Context
			Img domain.ScanImage
		}
	}
	lockExtractText sync.RWMutex
}

func (mock *extractorMock) ExtractText(ctx context.Context, img domain.ScanImage) (string, error) {
	if mock.ExtractTextFunc == nil {
		panic("extractorMock.ExtractTextFunc: method is nil but extractor.ExtractText was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Img domain.ScanImage
	}{Ctx: ctx, Img: img}
	mock.lockExtractText.Lock()
	mock.calls.ExtractText = append(mock.calls.ExtractText, callInfo)
	mock.lockExtractText.Unlock()
	return mock.ExtractTextFunc(ctx, img)
}

func (mock *extractorMock) ExtractTextCalls() []struct {
	Ctx context.Context
	Img domain.ScanImage
} {
	mock.lockExtractText.RLock()
	calls := mock.calls.ExtractText
	mock.lockExtractText.RUnlock()
	return calls
}
