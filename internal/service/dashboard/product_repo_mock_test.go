package dashboard

import (
	"context"
	"sync"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

var _ productRepo = &productRepoMock{}

type productRepoMock struct {
	LowestStockFunc func(ctx context.Context, limit int) ([]domain.Product, error)

	calls struct {
		LowestStock []struct {
			Ctx   context.Context
			Limit int
		}
	}
	lockLowestStock sync.RWMutex
}

func (mock *productRepoMock) LowestStock(ctx context.Context, limit int) ([]domain.Product, error) {
	if mock.LowestStockFunc == nil {
		panic("productRepoMock.LowestStockFunc: method is nil but productRepo.LowestStock was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{
		Ctx:   ctx,
		Limit: limit,
	}
	mock.lockLowestStock.Lock()
	mock.calls.LowestStock = append(mock.calls.LowestStock, callInfo)
	mock.lockLowestStock.Unlock()
	return mock.LowestStockFunc(ctx, limit)
}

func (mock *productRepoMock) LowestStockCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	var calls []struct {
		Ctx   context.Context
		Limit int
	}
	mock.lockLowestStock.RLock()
	calls = mock.calls.LowestStock
	mock.lockLowestStock.RUnlock()
	return calls
}
