package numbering

import (
	"context"
	"sync"
)

var _ invoiceRepo = &invoiceRepoMock{}

type invoiceRepoMock struct {
	NumbersWithPrefixFunc func(ctx context.Context, prefix string) ([]string, error)

	calls struct {
		NumbersWithPrefix []struct {
			Ctx    context.Context
			Prefix string
		}
	}
	lockNumbersWithPrefix sync.RWMutex
}

func (mock *invoiceRepoMock) NumbersWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	if mock.NumbersWithPrefixFunc == nil {
		panic("invoiceRepoMock.NumbersWithPrefixFunc: method is nil but invoiceRepo.NumbersWithPrefix was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Prefix string
	}{
		Ctx:    ctx,
		Prefix: prefix,
	}
	mock.lockNumbersWithPrefix.Lock()
	mock.calls.NumbersWithPrefix = append(mock.calls.NumbersWithPrefix, callInfo)
	mock.lockNumbersWithPrefix.Unlock()
	return mock.NumbersWithPrefixFunc(ctx, prefix)
}

func (mock *invoiceRepoMock) NumbersWithPrefixCalls() []struct {
	Ctx    context.Context
	Prefix string
} {
	var calls []struct {
		Ctx    context.Context
		Prefix string
	}
	mock.lockNumbersWithPrefix.RLock()
	calls = mock.calls.NumbersWithPrefix
	mock.lockNumbersWithPrefix.RUnlock()
	return calls
}
