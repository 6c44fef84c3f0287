package invoice

import (
	"context"
	"sync"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

var _ stockLedger = &stockLedgerMock{}

type stockLedgerMock struct {
	ApplyFunc func(ctx context.Context, adj domain.StockAdjustment) (*domain.Product, *domain.StockMovement, error)

	calls struct {
		Apply []struct {
			Ctx context.Context
			Adj domain.StockAdjustment
		}
	}
	lockApply sync.RWMutex
}

func (mock *stockLedgerMock) Apply(ctx context.Context, adj domain.StockAdjustment) (*domain.Product, *domain.StockMovement, error) {
	if mock.ApplyFunc == nil {
		panic("stockLedgerMock.ApplyFunc: method is nil but stockLedger.Apply was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Adj domain.StockAdjustment
	}{
		Ctx: ctx,
		Adj: adj,
	}
	mock.lockApply.Lock()
	mock.calls.Apply = append(mock.calls.Apply, callInfo)
	mock.lockApply.Unlock()
	return mock.ApplyFunc(ctx, adj)
}

func (mock *stockLedgerMock) ApplyCalls() []struct {
	Ctx context.Context
	Adj domain.StockAdjustment
} {
	var calls []struct {
		Ctx context.Context
		Adj domain.StockAdjustment
	}
	mock.lockApply.RLock()
	calls = mock.calls.Apply
	mock.lockApply.RUnlock()
	return calls
}
