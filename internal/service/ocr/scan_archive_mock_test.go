package ocr

import (
	"context"
	"sync"
)

var _ scanArchive = &scanArchiveMock{}

type scanArchiveMock struct {
	PutScanFunc func(ctx context.Context, data []byte, mediaType string) (string, error)

	calls struct {
		PutScan []struct {
			Ctx       context.Context
			Data      []byte
			MediaType string
		}
	}
	lockPutScan sync.RWMutex
}

func (mock *scanArchiveMock) PutScan(ctx context.Context, data []byte, mediaType string) (string, error) {
	if mock.PutScanFunc == nil {
		panic("scanArchiveMock.PutScanFunc: method is nil but scanArchive.PutScan was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Data      []byte
		MediaType string
	}{Ctx: ctx, Data: data, MediaType: mediaType}
	mock.lockPutScan.Lock()
	mock.calls.PutScan = append(mock.calls.PutScan, callInfo)
	mock.lockPutScan.Unlock()
	return mock.PutScanFunc(ctx, data, mediaType)
}

func (mock *scanArchiveMock) PutScanCalls() []struct {
	Ctx       context.Context
	Data      []byte
	MediaType string
} {
	mock.lockPutScan.RLock()
	calls := mock.calls.PutScan
	mock.lockPutScan.RUnlock()
	return calls
}
