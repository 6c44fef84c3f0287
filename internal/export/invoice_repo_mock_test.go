package export

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

var _ invoiceRepo = &invoiceRepoMock{}

type invoiceRepoMock struct {
	ListFunc              func(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error)
	ItemsByInvoiceIDsFunc func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]domain.InvoiceItem, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			Filter domain.InvoiceFilter
		}
		ItemsByInvoiceIDs []struct {
			Ctx context.Context
			Ids []uuid.UUID
		}
	}
	lockList              sync.RWMutex
	lockItemsByInvoiceIDs sync.RWMutex
}

func (mock *invoiceRepoMock) List(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error) {
	if mock.ListFunc == nil {
		panic("invoiceRepoMock.ListFunc: method is nil but invoiceRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.InvoiceFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *invoiceRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.InvoiceFilter
} {
	var calls []struct {
		Ctx    context.Context
		Filter domain.InvoiceFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *invoiceRepoMock) ItemsByInvoiceIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]domain.InvoiceItem, error) {
	if mock.ItemsByInvoiceIDsFunc == nil {
		panic("invoiceRepoMock.ItemsByInvoiceIDsFunc: method is nil but invoiceRepo.ItemsByInvoiceIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []uuid.UUID
	}{
		Ctx: ctx,
		Ids: ids,
	}
	mock.lockItemsByInvoiceIDs.Lock()
	mock.calls.ItemsByInvoiceIDs = append(mock.calls.ItemsByInvoiceIDs, callInfo)
	mock.lockItemsByInvoiceIDs.Unlock()
	return mock.ItemsByInvoiceIDsFunc(ctx, ids)
}

func (mock *invoiceRepoMock) ItemsByInvoiceIDsCalls() []struct {
	Ctx context.Context
	Ids []uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Ids []uuid.UUID
	}
	mock.lockItemsByInvoiceIDs.RLock()
	calls = mock.calls.ItemsByInvoiceIDs
	mock.lockItemsByInvoiceIDs.RUnlock()
	return calls
}
