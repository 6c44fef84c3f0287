package stock

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

var _ productRepo = &productRepoMock{}

type productRepoMock struct {
	AddStockFunc func(ctx context.Context, id uuid.UUID, delta int) (*domain.Product, bool, error)
	GetByIDFunc  func(ctx context.Context, id uuid.UUID) (*domain.Product, error)

	calls struct {
		AddStock []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Delta int
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockAddStock sync.RWMutex
	lockGetByID  sync.RWMutex
}

func (mock *productRepoMock) AddStock(ctx context.Context, id uuid.UUID, delta int) (*domain.Product, bool, error) {
	if mock.AddStockFunc == nil {
		panic("productRepoMock.AddStockFunc: method is nil but productRepo.AddStock was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Delta int
	}{
		Ctx:   ctx,
		ID:    id,
		Delta: delta,
	}
	mock.lockAddStock.Lock()
	mock.calls.AddStock = append(mock.calls.AddStock, callInfo)
	mock.lockAddStock.Unlock()
	return mock.AddStockFunc(ctx, id, delta)
}

func (mock *productRepoMock) AddStockCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Delta int
} {
	var calls []struct {
		Ctx   context.Context
		ID    uuid.UUID
		Delta int
	}
	mock.lockAddStock.RLock()
	calls = mock.calls.AddStock
	mock.lockAddStock.RUnlock()
	return calls
}

func (mock *productRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	if mock.GetByIDFunc == nil {
		panic("productRepoMock.GetByIDFunc: method is nil but productRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *productRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
