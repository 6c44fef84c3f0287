package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/franken-backoffice/internal/domain"
	"github.com/heartmarshall/franken-backoffice/internal/service/customer"
)

var _ customerService = &customerServiceMock{}

type customerServiceMock struct {
	CreateCustomerFunc func(ctx context.Context, input customer.CreateCustomerInput) (*domain.Customer, error)
	UpdateCustomerFunc func(ctx context.Context, input customer.UpdateCustomerInput) (*domain.Customer, error)
	DeleteCustomerFunc func(ctx context.Context, id uuid.UUID) error
	GetCustomerFunc    func(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	ListCustomersFunc  func(ctx context.Context, input customer.ListCustomersInput) ([]domain.Customer, error)

	calls struct {
		CreateCustomer []struct {
			Ctx   context.Context
			Input customer.CreateCustomerInput
		}
		UpdateCustomer []struct {
			Ctx   context.Context
			Input customer.UpdateCustomerInput
		}
		DeleteCustomer []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetCustomer []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListCustomers []struct {
			Ctx   context.Context
			Input customer.ListCustomersInput
		}
	}
	lockCreateCustomer sync.RWMutex
	lockUpdateCustomer sync.RWMutex
	lockDeleteCustomer sync.RWMutex
	lockGetCustomer    sync.RWMutex
	lockListCustomers  sync.RWMutex
}

func (mock *customerServiceMock) CreateCustomer(ctx context.Context, input customer.CreateCustomerInput) (*domain.Customer, error) {
	if mock.CreateCustomerFunc == nil {
		panic("customerServiceMock.CreateCustomerFunc: method is nil but customerService.CreateCustomer was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input customer.CreateCustomerInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateCustomer.Lock()
	mock.calls.CreateCustomer = append(mock.calls.CreateCustomer, callInfo)
	mock.lockCreateCustomer.Unlock()
	return mock.CreateCustomerFunc(ctx, input)
}

func (mock *customerServiceMock) CreateCustomerCalls() []struct {
	Ctx   context.Context
	Input customer.CreateCustomerInput
} {
	var calls []struct {
		Ctx   context.Context
		Input customer.CreateCustomerInput
	}
	mock.lockCreateCustomer.RLock()
	calls = mock.calls.CreateCustomer
	mock.lockCreateCustomer.RUnlock()
	return calls
}

func (mock *customerServiceMock) UpdateCustomer(ctx context.Context, input customer.UpdateCustomerInput) (*domain.Customer, error) {
	if mock.UpdateCustomerFunc == nil {
		panic("customerServiceMock.UpdateCustomerFunc: method is nil but customerService.UpdateCustomer was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input customer.UpdateCustomerInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateCustomer.Lock()
	mock.calls.UpdateCustomer = append(mock.calls.UpdateCustomer, callInfo)
	mock.lockUpdateCustomer.Unlock()
	return mock.UpdateCustomerFunc(ctx, input)
}

func (mock *customerServiceMock) UpdateCustomerCalls() []struct {
	Ctx   context.Context
	Input customer.UpdateCustomerInput
} {
	var calls []struct {
		Ctx   context.Context
		Input customer.UpdateCustomerInput
	}
	mock.lockUpdateCustomer.RLock()
	calls = mock.calls.UpdateCustomer
	mock.lockUpdateCustomer.RUnlock()
	return calls
}

func (mock *customerServiceMock) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteCustomerFunc == nil {
		panic("customerServiceMock.DeleteCustomerFunc: method is nil but customerService.DeleteCustomer was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDeleteCustomer.Lock()
	mock.calls.DeleteCustomer = append(mock.calls.DeleteCustomer, callInfo)
	mock.lockDeleteCustomer.Unlock()
	return mock.DeleteCustomerFunc(ctx, id)
}

func (mock *customerServiceMock) DeleteCustomerCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockDeleteCustomer.RLock()
	calls = mock.calls.DeleteCustomer
	mock.lockDeleteCustomer.RUnlock()
	return calls
}

func (mock *customerServiceMock) GetCustomer(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	if mock.GetCustomerFunc == nil {
		panic("customerServiceMock.GetCustomerFunc: method is nil but customerService.GetCustomer was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetCustomer.Lock()
	mock.calls.GetCustomer = append(mock.calls.GetCustomer, callInfo)
	mock.lockGetCustomer.Unlock()
	return mock.GetCustomerFunc(ctx, id)
}

func (mock *customerServiceMock) GetCustomerCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetCustomer.RLock()
	calls = mock.calls.GetCustomer
	mock.lockGetCustomer.RUnlock()
	return calls
}

func (mock *customerServiceMock) ListCustomers(ctx context.Context, input customer.ListCustomersInput) ([]domain.Customer, error) {
	if mock.ListCustomersFunc == nil {
		panic("customerServiceMock.ListCustomersFunc: method is nil but customerService.ListCustomers was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input customer.ListCustomersInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockListCustomers.Lock()
	mock.calls.ListCustomers = append(mock.calls.ListCustomers, callInfo)
	mock.lockListCustomers.Unlock()
	return mock.ListCustomersFunc(ctx, input)
}

func (mock *customerServiceMock) ListCustomersCalls() []struct {
	Ctx   context.Context
	Input customer.ListCustomersInput
} {
	var calls []struct {
		Ctx   context.Context
		Input customer.ListCustomersInput
	}
	mock.lockListCustomers.RLock()
	calls = mock.calls.ListCustomers
	mock.lockListCustomers.RUnlock()
	return calls
}
