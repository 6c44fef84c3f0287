package invoice

import (
	"sync"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

var _ documentRenderer = &documentRendererMock{}

type documentRendererMock struct {
	RenderFunc func(inv *domain.Invoice, customer *domain.Customer, settings *domain.Settings) ([]byte, error)

	calls struct {
		Render []struct {
			Inv      *domain.Invoice
			Customer *domain.Customer
			Settings *domain.Settings
		}
	}
	lockRender sync.RWMutex
}

func (mock *documentRendererMock) Render(inv *domain.Invoice, customer *domain.Customer, settings *domain.Settings) ([]byte, error) {
	if mock.RenderFunc == nil {
		panic("documentRendererMock.RenderFunc: method is nil but documentRenderer.Render was just called")
	}
	callInfo := struct {
		Inv      *domain.Invoice
		Customer *domain.Customer
		Settings *domain.Settings
	}{
		Inv:      inv,
		Customer: customer,
		Settings: settings,
	}
	mock.lockRender.Lock()
	mock.calls.Render = append(mock.calls.Render, callInfo)
	mock.lockRender.Unlock()
	return mock.RenderFunc(inv, customer, settings)
}

func (mock *documentRendererMock) RenderCalls() []struct {
	Inv      *domain.Invoice
	Customer *domain.Customer
	Settings *domain.Settings
} {
	var calls []struct {
		Inv      *domain.Invoice
		Customer *domain.Customer
		Settings *domain.Settings
	}
	mock.lockRender.RLock()
	calls = mock.calls.Render
	mock.lockRender.RUnlock()
	return calls
}
