package rest

import (
	"context"
	"io"
	"sync"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

var _ exportService = &exportServiceMock{}

type exportServiceMock struct {
	WriteInvoicesFunc func(ctx context.Context, filter domain.InvoiceFilter, w io.Writer) (int, error)

	calls struct {
		WriteInvoices []struct {
			Ctx    context.Context
			Filter domain.InvoiceFilter
			W      io.Writer
		}
	}
	lockWriteInvoices sync.RWMutex
}

func (mock *exportServiceMock) WriteInvoices(ctx context.Context, filter domain.InvoiceFilter, w io.Writer) (int, error) {
	if mock.WriteInvoicesFunc == nil {
		panic("exportServiceMock.WriteInvoicesFunc: method is nil but exportService.WriteInvoices was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.InvoiceFilter
		W      io.Writer
	}{
		Ctx:    ctx,
		Filter: filter,
		W:      w,
	}
	mock.lockWriteInvoices.Lock()
	mock.calls.WriteInvoices = append(mock.calls.WriteInvoices, callInfo)
	mock.lockWriteInvoices.Unlock()
	return mock.WriteInvoicesFunc(ctx, filter, w)
}

func (mock *exportServiceMock) WriteInvoicesCalls() []struct {
	Ctx    context.Context
	Filter domain.InvoiceFilter
	W      io.Writer
} {
	var calls []struct {
		Ctx    context.Context
		Filter domain.InvoiceFilter
		W      io.Writer
	}
	mock.lockWriteInvoices.RLock()
	calls = mock.calls.WriteInvoices
	mock.lockWriteInvoices.RUnlock()
	return calls
}
