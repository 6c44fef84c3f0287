package invoice

import (
	"context"
	"sync"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

var _ numberAuthority = &numberAuthorityMock{}

type numberAuthorityMock struct {
	AllocateFunc func(ctx context.Context) (string, *domain.Settings, error)
	ReclaimFunc  func(ctx context.Context, number string) (bool, error)

	calls struct {
		Allocate []struct {
			Ctx context.Context
		}
		Reclaim []struct {
			Ctx    context.Context
			Number string
		}
	}
	lockAllocate sync.RWMutex
	lockReclaim  sync.RWMutex
}

func (mock *numberAuthorityMock) Allocate(ctx context.Context) (string, *domain.Settings, error) {
	if mock.AllocateFunc == nil {
		panic("numberAuthorityMock.AllocateFunc: method is nil but numberAuthority.Allocate was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockAllocate.Lock()
	mock.calls.Allocate = append(mock.calls.Allocate, callInfo)
	mock.lockAllocate.Unlock()
	return mock.AllocateFunc(ctx)
}

func (mock *numberAuthorityMock) AllocateCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockAllocate.RLock()
	calls = mock.calls.Allocate
	mock.lockAllocate.RUnlock()
	return calls
}

func (mock *numberAuthorityMock) Reclaim(ctx context.Context, number string) (bool, error) {
	if mock.ReclaimFunc == nil {
		panic("numberAuthorityMock.ReclaimFunc: method is nil but numberAuthority.Reclaim was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Number string
	}{
		Ctx:    ctx,
		Number: number,
	}
	mock.lockReclaim.Lock()
	mock.calls.Reclaim = append(mock.calls.Reclaim, callInfo)
	mock.lockReclaim.Unlock()
	return mock.ReclaimFunc(ctx, number)
}

func (mock *numberAuthorityMock) ReclaimCalls() []struct {
	Ctx    context.Context
	Number string
} {
	var calls []struct {
		Ctx    context.Context
		Number string
	}
	mock.lockReclaim.RLock()
	calls = mock.calls.Reclaim
	mock.lockReclaim.RUnlock()
	return calls
}
