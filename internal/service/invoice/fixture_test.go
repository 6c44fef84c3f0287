package invoice

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

//go:generate moq -out invoice_repo_mock_test.go -pkg invoice . invoiceRepo
//go:generate moq -out product_repo_mock_test.go -pkg invoice . productRepo
//go:generate moq -out customer_repo_mock_test.go -pkg invoice . customerRepo
//go:generate moq -out audit_repo_mock_test.go -pkg invoice . auditRepo
//go:generate moq -out settings_repo_mock_test.go -pkg invoice . settingsRepo
//go:generate moq -out stock_ledger_mock_test.go -pkg invoice . stockLedger
//go:generate moq -out number_authority_mock_test.go -pkg invoice . numberAuthority
//go:generate moq -out document_renderer_mock_test.go -pkg invoice . documentRenderer
//go:generate moq -out tx_manager_mock_test.go -pkg invoice . txManager

// fixture wires every mock to a small in-memory back office, so lifecycle
// tests can follow an invoice across several operations.
type fixture struct {
	t *testing.T

	invoices  *invoiceRepoMock
	products  *productRepoMock
	customers *customerRepoMock
	audit     *auditRepoMock
	settings  *settingsRepoMock
	stock     *stockLedgerMock
	numbers   *numberAuthorityMock
	renderer  *documentRendererMock
	tx        *txManagerMock

	mu        sync.Mutex
	stored    map[uuid.UUID]*domain.Invoice
	stockOf   map[uuid.UUID]*domain.Product
	customer  domain.Customer
	movements []domain.StockAdjustment
	auditLog  []domain.AuditEntry
	state     domain.Settings
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		t:       t,
		stored:  make(map[uuid.UUID]*domain.Invoice),
		stockOf: make(map[uuid.UUID]*domain.Product),
		customer: domain.Customer{
			ID: uuid.New(), Name: "Erika Mustermann", Street: "Hauptstr. 1",
			Zip: "10115", City: "Berlin", Country: domain.DefaultCountry,
		},
		state: domain.DefaultSettings(),
	}

	f.invoices = &invoiceRepoMock{
		CreateFunc: func(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			for _, other := range f.stored {
				if other.InvoiceNumber == inv.InvoiceNumber {
					return nil, fmt.Errorf("invoice %s: %w", inv.InvoiceNumber, domain.ErrAlreadyExists)
				}
			}
			cp := cloneInvoice(inv)
			cp.ID = uuid.New()
			cp.CreatedAt = time.Now()
			cp.Items = withIDs(cp.ID, cp.Items)
			f.stored[cp.ID] = cp
			return cloneInvoice(cp), nil
		},
		ReplaceItemsFunc: func(ctx context.Context, id uuid.UUID, items []domain.InvoiceItem) ([]domain.InvoiceItem, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			inv, err := f.find(id)
			if err != nil {
				return nil, err
			}
			inv.Items = withIDs(id, items)
			return slices.Clone(inv.Items), nil
		},
		UpdateTotalsFunc: func(ctx context.Context, id uuid.UUID, totals domain.Totals) (*domain.Invoice, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			inv, err := f.find(id)
			if err != nil {
				return nil, err
			}
			inv.ApplyTotals(totals)
			return cloneInvoice(inv), nil
		},
		UpdateDetailsFunc: func(ctx context.Context, id uuid.UUID, p domain.InvoiceDetailsParams) (*domain.Invoice, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			inv, err := f.find(id)
			if err != nil {
				return nil, err
			}
			inv.CustomerID = p.CustomerID
			inv.InvoiceDate = p.InvoiceDate
			inv.DeliveryDate = p.DeliveryDate
			inv.DueDate = p.DueDate
			inv.Discount = p.Discount
			inv.ShippingCost = p.ShippingCost
			inv.Notes = p.Notes
			inv.ApplyTotals(p.Totals)
			return cloneInvoice(inv), nil
		},
		SetStatusFunc: func(ctx context.Context, id uuid.UUID, from, to domain.InvoiceStatus) (*domain.Invoice, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			inv, err := f.find(id)
			if err != nil {
				return nil, err
			}
			if inv.Status != from {
				return nil, fmt.Errorf("invoice %s: %w", id, domain.ErrNotFound)
			}
			inv.Status = to
			out := cloneInvoice(inv)
			out.Items = nil
			return out, nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			if _, err := f.find(id); err != nil {
				return err
			}
			delete(f.stored, id)
			return nil
		},
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
			return f.get(id)
		},
		GetForUpdateFunc: func(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
			return f.get(id)
		},
		ListFunc: func(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			var out []domain.Invoice
			for _, inv := range f.stored {
				if filter.Status != nil && inv.Status != *filter.Status {
					continue
				}
				out = append(out, *cloneInvoice(inv))
			}
			return out, nil
		},
	}

	lookup := func(ctx context.Context, ids []uuid.UUID) ([]domain.Product, error) {
		f.mu.Lock()
		defer f.mu.Unlock()
		var out []domain.Product
		for _, id := range ids {
			if p, ok := f.stockOf[id]; ok {
				out = append(out, *p)
			}
		}
		return out, nil
	}
	f.products = &productRepoMock{GetByIDsFunc: lookup, LockByIDsFunc: lookup}

	f.customers = &customerRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
			if id != f.customer.ID {
				return nil, fmt.Errorf("customer %s: %w", id, domain.ErrNotFound)
			}
			c := f.customer
			return &c, nil
		},
	}

	f.audit = &auditRepoMock{
		AppendFunc: func(ctx context.Context, e domain.AuditEntry) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			e.ID = uuid.New()
			f.auditLog = append(f.auditLog, e)
			return nil
		},
		ListByInvoiceFunc: func(ctx context.Context, id uuid.UUID) ([]domain.AuditEntry, error) {
			return f.auditFor(id), nil
		},
	}

	f.settings = &settingsRepoMock{
		GetFunc: func(ctx context.Context) (*domain.Settings, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			s := f.state
			return &s, nil
		},
	}

	f.stock = &stockLedgerMock{
		ApplyFunc: func(ctx context.Context, adj domain.StockAdjustment) (*domain.Product, *domain.StockMovement, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			p, ok := f.stockOf[adj.ProductID]
			if !ok {
				return nil, nil, fmt.Errorf("product %s: %w", adj.ProductID, domain.ErrNotFound)
			}
			if p.StockCurrent+adj.Quantity < 0 {
				return nil, nil, &domain.InsufficientStockError{
					ProductID: p.ID, ProductName: p.Name, Available: p.StockCurrent, Needed: -adj.Quantity,
				}
			}
			p.StockCurrent += adj.Quantity
			f.movements = append(f.movements, adj)
			cp := *p
			return &cp, &domain.StockMovement{ProductID: p.ID, Quantity: adj.Quantity, Reason: adj.Reason, Reference: adj.Reference}, nil
		},
	}

	f.numbers = &numberAuthorityMock{
		AllocateFunc: func(ctx context.Context) (string, *domain.Settings, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.state.InvoiceCurrentNumber++
			s := f.state
			return s.CurrentInvoiceNumber(), &s, nil
		},
		ReclaimFunc: func(ctx context.Context, number string) (bool, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if f.state.InvoiceCurrentNumber == 0 || number != f.state.CurrentInvoiceNumber() {
				return false, nil
			}
			f.state.InvoiceCurrentNumber--
			return true, nil
		},
	}

	f.renderer = &documentRendererMock{
		RenderFunc: func(inv *domain.Invoice, customer *domain.Customer, settings *domain.Settings) ([]byte, error) {
			return []byte("%PDF-1.3 " + inv.InvoiceNumber), nil
		},
	}

	f.tx = &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}

	return f
}

func (f *fixture) service() *Service {
	svc := NewService(slog.Default(), f.invoices, f.products, f.customers, f.audit,
		f.settings, f.stock, f.numbers, f.renderer, f.tx)
	svc.now = func() time.Time { return time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC) }
	return svc
}

// addProduct registers a product with the given stock.
func (f *fixture) addProduct(name string, stock int, price string) uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := uuid.New()
	f.stockOf[id] = &domain.Product{
		ID: id, Name: name, StockCurrent: stock, SellingPrice: decimal.RequireFromString(price),
	}
	return id
}

func (f *fixture) stockLevel(id uuid.UUID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stockOf[id].StockCurrent
}

func (f *fixture) auditFor(id uuid.UUID) []domain.AuditEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.AuditEntry
	for _, e := range f.auditLog {
		if e.InvoiceID == id {
			out = append(out, e)
		}
	}
	return out
}

func (f *fixture) find(id uuid.UUID) (*domain.Invoice, error) {
	inv, ok := f.stored[id]
	if !ok {
		return nil, fmt.Errorf("invoice %s: %w", id, domain.ErrNotFound)
	}
	return inv, nil
}

func (f *fixture) get(id uuid.UUID) (*domain.Invoice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	inv, err := f.find(id)
	if err != nil {
		return nil, err
	}
	return cloneInvoice(inv), nil
}

// createDraft creates a draft for the fixture customer with one line per product.
func (f *fixture) createDraft(svc *Service, lines map[uuid.UUID]int) *domain.Invoice {
	f.t.Helper()

	var items []ItemInput
	for id, qty := range lines {
		pid := id
		items = append(items, ItemInput{ProductID: &pid, Quantity: qty, UnitPrice: decimal.RequireFromString("9.90")})
	}
	inv, err := svc.CreateInvoice(context.Background(), CreateInvoiceInput{
		CustomerID: f.customer.ID,
		Items:      items,
	})
	if err != nil {
		f.t.Fatalf("create draft: %v", err)
	}
	return inv
}

func cloneInvoice(inv *domain.Invoice) *domain.Invoice {
	cp := *inv
	cp.Items = slices.Clone(inv.Items)
	cp.AuditLog = slices.Clone(inv.AuditLog)
	return &cp
}

func withIDs(invoiceID uuid.UUID, items []domain.InvoiceItem) []domain.InvoiceItem {
	out := slices.Clone(items)
	for i := range out {
		out[i].ID = uuid.New()
		out[i].InvoiceID = invoiceID
		out[i].Position = i + 1
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
