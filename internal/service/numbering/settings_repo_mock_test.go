package numbering

import (
	"context"
	"sync"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

var _ settingsRepo = &settingsRepoMock{}

type settingsRepoMock struct {
	EnsureExistsFunc       func(ctx context.Context) error
	GetForUpdateFunc       func(ctx context.Context) (*domain.Settings, error)
	IncrementCounterFunc   func(ctx context.Context) (*domain.Settings, error)
	DecrementCounterIfFunc func(ctx context.Context, expected int) (bool, error)
	SetCounterFunc         func(ctx context.Context, value int) error

	calls struct {
		EnsureExists []struct {
			Ctx context.Context
		}
		GetForUpdate []struct {
			Ctx context.Context
		}
		IncrementCounter []struct {
			Ctx context.Context
		}
		DecrementCounterIf []struct {
			Ctx      context.Context
			Expected int
		}
		SetCounter []struct {
			Ctx   context.Context
			Value int
		}
	}
	lockEnsureExists       sync.RWMutex
	lockGetForUpdate       sync.RWMutex
	lockIncrementCounter   sync.RWMutex
	lockDecrementCounterIf sync.RWMutex
	lockSetCounter         sync.RWMutex
}

func (mock *settingsRepoMock) EnsureExists(ctx context.Context) error {
	if mock.EnsureExistsFunc == nil {
		panic("settingsRepoMock.EnsureExistsFunc: method is nil but settingsRepo.EnsureExists was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockEnsureExists.Lock()
	mock.calls.EnsureExists = append(mock.calls.EnsureExists, callInfo)
	mock.lockEnsureExists.Unlock()
	return mock.EnsureExistsFunc(ctx)
}

func (mock *settingsRepoMock) EnsureExistsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockEnsureExists.RLock()
	calls = mock.calls.EnsureExists
	mock.lockEnsureExists.RUnlock()
	return calls
}

func (mock *settingsRepoMock) GetForUpdate(ctx context.Context) (*domain.Settings, error) {
	if mock.GetForUpdateFunc == nil {
		panic("settingsRepoMock.GetForUpdateFunc: method is nil but settingsRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx)
}

func (mock *settingsRepoMock) GetForUpdateCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockGetForUpdate.RLock()
	calls = mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *settingsRepoMock) IncrementCounter(ctx context.Context) (*domain.Settings, error) {
	if mock.IncrementCounterFunc == nil {
		panic("settingsRepoMock.IncrementCounterFunc: method is nil but settingsRepo.IncrementCounter was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockIncrementCounter.Lock()
	mock.calls.IncrementCounter = append(mock.calls.IncrementCounter, callInfo)
	mock.lockIncrementCounter.Unlock()
	return mock.IncrementCounterFunc(ctx)
}

func (mock *settingsRepoMock) IncrementCounterCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockIncrementCounter.RLock()
	calls = mock.calls.IncrementCounter
	mock.lockIncrementCounter.RUnlock()
	return calls
}

func (mock *settingsRepoMock) DecrementCounterIf(ctx context.Context, expected int) (bool, error) {
	if mock.DecrementCounterIfFunc == nil {
		panic("settingsRepoMock.DecrementCounterIfFunc: method is nil but settingsRepo.DecrementCounterIf was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Expected int
	}{
		Ctx:      ctx,
		Expected: expected,
	}
	mock.lockDecrementCounterIf.Lock()
	mock.calls.DecrementCounterIf = append(mock.calls.DecrementCounterIf, callInfo)
	mock.lockDecrementCounterIf.Unlock()
	return mock.DecrementCounterIfFunc(ctx, expected)
}

func (mock *settingsRepoMock) DecrementCounterIfCalls() []struct {
	Ctx      context.Context
	Expected int
} {
	var calls []struct {
		Ctx      context.Context
		Expected int
	}
	mock.lockDecrementCounterIf.RLock()
	calls = mock.calls.DecrementCounterIf
	mock.lockDecrementCounterIf.RUnlock()
	return calls
}

func (mock *settingsRepoMock) SetCounter(ctx context.Context, value int) error {
	if mock.SetCounterFunc == nil {
		panic("settingsRepoMock.SetCounterFunc: method is nil but settingsRepo.SetCounter was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Value int
	}{
		Ctx:   ctx,
		Value: value,
	}
	mock.lockSetCounter.Lock()
	mock.calls.SetCounter = append(mock.calls.SetCounter, callInfo)
	mock.lockSetCounter.Unlock()
	return mock.SetCounterFunc(ctx, value)
}

func (mock *settingsRepoMock) SetCounterCalls() []struct {
	Ctx   context.Context
	Value int
} {
	var calls []struct {
		Ctx   context.Context
		Value int
	}
	mock.lockSetCounter.RLock()
	calls = mock.calls.SetCounter
	mock.lockSetCounter.RUnlock()
	return calls
}
