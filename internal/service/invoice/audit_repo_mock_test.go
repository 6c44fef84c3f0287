package invoice

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

var _ auditRepo = &auditRepoMock{}

type auditRepoMock struct {
	AppendFunc        func(ctx context.Context, e domain.AuditEntry) error
	ListByInvoiceFunc func(ctx context.Context, invoiceID uuid.UUID) ([]domain.AuditEntry, error)

	calls struct {
		Append []struct {
			Ctx context.Context
			E   domain.AuditEntry
		}
		ListByInvoice []struct {
			Ctx       context.Context
			InvoiceID uuid.UUID
		}
	}
	lockAppend        sync.RWMutex
	lockListByInvoice sync.RWMutex
}

func (mock *auditRepoMock) Append(ctx context.Context, e domain.AuditEntry) error {
	if mock.AppendFunc == nil {
		panic("auditRepoMock.AppendFunc: method is nil but auditRepo.Append was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   domain.AuditEntry
	}{
		Ctx: ctx,
		E:   e,
	}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, e)
}

func (mock *auditRepoMock) AppendCalls() []struct {
	Ctx context.Context
	E   domain.AuditEntry
} {
	var calls []struct {
		Ctx context.Context
		E   domain.AuditEntry
	}
	mock.lockAppend.RLock()
	calls = mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *auditRepoMock) ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.AuditEntry, error) {
	if mock.ListByInvoiceFunc == nil {
		panic("auditRepoMock.ListByInvoiceFunc: method is nil but auditRepo.ListByInvoice was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		InvoiceID uuid.UUID
	}{
		Ctx:       ctx,
		InvoiceID: invoiceID,
	}
	mock.lockListByInvoice.Lock()
	mock.calls.ListByInvoice = append(mock.calls.ListByInvoice, callInfo)
	mock.lockListByInvoice.Unlock()
	return mock.ListByInvoiceFunc(ctx, invoiceID)
}

func (mock *auditRepoMock) ListByInvoiceCalls() []struct {
	Ctx       context.Context
	InvoiceID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		InvoiceID uuid.UUID
	}
	mock.lockListByInvoice.RLock()
	calls = mock.calls.ListByInvoice
	mock.lockListByInvoice.RUnlock()
	return calls
}
