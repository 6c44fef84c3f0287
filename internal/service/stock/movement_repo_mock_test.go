package stock

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

var _ movementRepo = &movementRepoMock{}

type movementRepoMock struct {
	AppendFunc        func(ctx context.Context, adj domain.StockAdjustment) (*domain.StockMovement, error)
	ListByProductFunc func(ctx context.Context, productID uuid.UUID, limit int) ([]domain.StockMovement, error)
	SumByProductFunc  func(ctx context.Context, productID uuid.UUID) (int, error)

	calls struct {
		Append []struct {
			Ctx context.Context
			Adj domain.StockAdjustment
		}
		ListByProduct []struct {
			Ctx       context.Context
			ProductID uuid.UUID
			Limit     int
		}
		SumByProduct []struct {
			Ctx       context.Context
			ProductID uuid.UUID
		}
	}
	lockAppend        sync.RWMutex
	lockListByProduct sync.RWMutex
	lockSumByProduct  sync.RWMutex
}

func (mock *movementRepoMock) Append(ctx context.Context, adj domain.StockAdjustment) (*domain.StockMovement, error) {
	if mock.AppendFunc == nil {
		panic("movementRepoMock.AppendFunc: method is nil but movementRepo.Append was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Adj domain.StockAdjustment
	}{
		Ctx: ctx,
		Adj: adj,
	}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, adj)
}

func (mock *movementRepoMock) AppendCalls() []struct {
	Ctx context.Context
	Adj domain.StockAdjustment
} {
	var calls []struct {
		Ctx context.Context
		Adj domain.StockAdjustment
	}
	mock.lockAppend.RLock()
	calls = mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *movementRepoMock) ListByProduct(ctx context.Context, productID uuid.UUID, limit int) ([]domain.StockMovement, error) {
	if mock.ListByProductFunc == nil {
		panic("movementRepoMock.ListByProductFunc: method is nil but movementRepo.ListByProduct was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProductID uuid.UUID
		Limit     int
	}{
		Ctx:       ctx,
		ProductID: productID,
		Limit:     limit,
	}
	mock.lockListByProduct.Lock()
	mock.calls.ListByProduct = append(mock.calls.ListByProduct, callInfo)
	mock.lockListByProduct.Unlock()
	return mock.ListByProductFunc(ctx, productID, limit)
}

func (mock *movementRepoMock) ListByProductCalls() []struct {
	Ctx       context.Context
	ProductID uuid.UUID
	Limit     int
} {
	var calls []struct {
		Ctx       context.Context
		ProductID uuid.UUID
		Limit     int
	}
	mock.lockListByProduct.RLock()
	calls = mock.calls.ListByProduct
	mock.lockListByProduct.RUnlock()
	return calls
}

func (mock *movementRepoMock) SumByProduct(ctx context.Context, productID uuid.UUID) (int, error) {
	if mock.SumByProductFunc == nil {
		panic("movementRepoMock.SumByProductFunc: method is nil but movementRepo.SumByProduct was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProductID uuid.UUID
	}{
		Ctx:       ctx,
		ProductID: productID,
	}
	mock.lockSumByProduct.Lock()
	mock.calls.SumByProduct = append(mock.calls.SumByProduct, callInfo)
	mock.lockSumByProduct.Unlock()
	return mock.SumByProductFunc(ctx, productID)
}

func (mock *movementRepoMock) SumByProductCalls() []struct {
	Ctx       context.Context
	ProductID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		ProductID uuid.UUID
	}
	mock.lockSumByProduct.RLock()
	calls = mock.calls.SumByProduct
	mock.lockSumByProduct.RUnlock()
	return calls
}
