package dashboard

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
)

var _ statsRepo = &statsRepoMock{}

type statsRepoMock struct {
	CountProductsFunc     func(ctx context.Context) (int, error)
	CountLowStockFunc     func(ctx context.Context) (int, error)
	CountCustomersFunc    func(ctx context.Context) (int, error)
	CountOpenInvoicesFunc func(ctx context.Context) (int, error)
	RevenueFunc           func(ctx context.Context) (decimal.Decimal, error)

	calls struct {
		CountProducts []struct {
			Ctx context.Context
		}
		CountLowStock []struct {
			Ctx context.Context
		}
		CountCustomers []struct {
			Ctx context.Context
		}
		CountOpenInvoices []struct {
			Ctx context.Context
		}
		Revenue []struct {
			Ctx context.Context
		}
	}
	lockCountProducts     sync.RWMutex
	lockCountLowStock     sync.RWMutex
	lockCountCustomers    sync.RWMutex
	lockCountOpenInvoices sync.RWMutex
	lockRevenue           sync.RWMutex
}

func (mock *statsRepoMock) CountProducts(ctx context.Context) (int, error) {
	if mock.CountProductsFunc == nil {
		panic("statsRepoMock.CountProductsFunc: method is nil but statsRepo.CountProducts was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCountProducts.Lock()
	mock.calls.CountProducts = append(mock.calls.CountProducts, callInfo)
	mock.lockCountProducts.Unlock()
	return mock.CountProductsFunc(ctx)
}

func (mock *statsRepoMock) CountProductsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockCountProducts.RLock()
	calls = mock.calls.CountProducts
	mock.lockCountProducts.RUnlock()
	return calls
}

func (mock *statsRepoMock) CountLowStock(ctx context.Context) (int, error) {
	if mock.CountLowStockFunc == nil {
		panic("statsRepoMock.CountLowStockFunc: method is nil but statsRepo.CountLowStock was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCountLowStock.Lock()
	mock.calls.CountLowStock = append(mock.calls.CountLowStock, callInfo)
	mock.lockCountLowStock.Unlock()
	return mock.CountLowStockFunc(ctx)
}

func (mock *statsRepoMock) CountLowStockCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockCountLowStock.RLock()
	calls = mock.calls.CountLowStock
	mock.lockCountLowStock.RUnlock()
	return calls
}

func (mock *statsRepoMock) CountCustomers(ctx context.Context) (int, error) {
	if mock.CountCustomersFunc == nil {
		panic("statsRepoMock.CountCustomersFunc: method is nil but statsRepo.CountCustomers was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCountCustomers.Lock()
	mock.calls.CountCustomers = append(mock.calls.CountCustomers, callInfo)
	mock.lockCountCustomers.Unlock()
	return mock.CountCustomersFunc(ctx)
}

func (mock *statsRepoMock) CountCustomersCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockCountCustomers.RLock()
	calls = mock.calls.CountCustomers
	mock.lockCountCustomers.RUnlock()
	return calls
}

func (mock *statsRepoMock) CountOpenInvoices(ctx context.Context) (int, error) {
	if mock.CountOpenInvoicesFunc == nil {
		panic("statsRepoMock.CountOpenInvoicesFunc: method is nil but statsRepo.CountOpenInvoices was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCountOpenInvoices.Lock()
	mock.calls.CountOpenInvoices = append(mock.calls.CountOpenInvoices, callInfo)
	mock.lockCountOpenInvoices.Unlock()
	return mock.CountOpenInvoicesFunc(ctx)
}

func (mock *statsRepoMock) CountOpenInvoicesCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockCountOpenInvoices.RLock()
	calls = mock.calls.CountOpenInvoices
	mock.lockCountOpenInvoices.RUnlock()
	return calls
}

func (mock *statsRepoMock) Revenue(ctx context.Context) (decimal.Decimal, error) {
	if mock.RevenueFunc == nil {
		panic("statsRepoMock.RevenueFunc: method is nil but statsRepo.Revenue was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockRevenue.Lock()
	mock.calls.Revenue = append(mock.calls.Revenue, callInfo)
	mock.lockRevenue.Unlock()
	return mock.RevenueFunc(ctx)
}

func (mock *statsRepoMock) RevenueCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockRevenue.RLock()
	calls = mock.calls.Revenue
	mock.lockRevenue.RUnlock()
	return calls
}
