package rest

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

const dateLayout = "2006-01-02"

// Date is a calendar date encoded as "YYYY-MM-DD". RFC 3339 timestamps are
// accepted on input and truncated to their date.
type Date struct{ time.Time }

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string")
	}
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD")
	}
	d.Time = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return nil
}

func datePtr(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	return &Date{*t}
}

func (d *Date) timePtr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

type productResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	SKU           *string         `json:"sku"`
	Category      string          `json:"category"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	StockCurrent  int             `json:"stockCurrent"`
	StockMinimum  int             `json:"stockMinimum"`
	LowStock      bool            `json:"lowStock"`
	Location      *string         `json:"location"`
	Supplier      *string         `json:"supplier"`
	Notes         *string         `json:"notes"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func toProduct(p domain.Product) productResponse {
	return productResponse{
		ID:            p.ID,
		Name:          p.Name,
		SKU:           p.SKU,
		Category:      p.Category,
		PurchasePrice: p.PurchasePrice,
		SellingPrice:  p.SellingPrice,
		StockCurrent:  p.StockCurrent,
		StockMinimum:  p.StockMinimum,
		LowStock:      p.IsLowStock(),
		Location:      p.Location,
		Supplier:      p.Supplier,
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toProducts(list []domain.Product) []productResponse {
	out := make([]productResponse, len(list))
	for i, p := range list {
		out[i] = toProduct(p)
	}
	return out
}

type movementResponse struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
	Reason    string    `json:"reason"`
	Reference *string   `json:"reference"`
	CreatedAt time.Time `json:"createdAt"`
}

func toMovements(list []domain.StockMovement) []movementResponse {
	out := make([]movementResponse, len(list))
	for i, m := range list {
		out[i] = movementResponse{
			ID:        m.ID,
			ProductID: m.ProductID,
			Quantity:  m.Quantity,
			Reason:    m.Reason.String(),
			Reference: m.Reference,
			CreatedAt: m.CreatedAt,
		}
	}
	return out
}

type customerResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Company      *string   `json:"company"`
	DisplayName  string    `json:"displayName"`
	Street       string    `json:"street"`
	Zip          string    `json:"zip"`
	City         string    `json:"city"`
	Country      string    `json:"country"`
	Email        *string   `json:"email"`
	Phone        *string   `json:"phone"`
	TaxID        *string   `json:"taxId"`
	Notes        *string   `json:"notes"`
	InvoiceCount int       `json:"invoiceCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toCustomer(c domain.Customer) customerResponse {
	return customerResponse{
		ID:           c.ID,
		Name:         c.Name,
		Company:      c.Company,
		DisplayName:  c.DisplayName(),
		Street:       c.Street,
		Zip:          c.Zip,
		City:         c.City,
		Country:      c.Country,
		Email:        c.Email,
		Phone:        c.Phone,
		TaxID:        c.TaxID,
		Notes:        c.Notes,
		InvoiceCount: c.InvoiceCount,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

type itemResponse struct {
	ID          uuid.UUID       `json:"id"`
	Position    int             `json:"position"`
	ProductID   *uuid.UUID      `json:"productId"`
	Title       string          `json:"title"`
	Description *string         `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

type auditResponse struct {
	Action    string          `json:"action"`
	Field     *string         `json:"field"`
	OldValue  json.RawMessage `json:"oldValue,omitempty"`
	NewValue  json.RawMessage `json:"newValue,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

type invoiceResponse struct {
	ID            uuid.UUID       `json:"id"`
	InvoiceNumber string          `json:"invoiceNumber"`
	Status        string          `json:"status"`
	InvoiceDate   Date            `json:"invoiceDate"`
	DeliveryDate  *Date           `json:"deliveryDate"`
	DueDate       Date            `json:"dueDate"`
	CustomerID    uuid.UUID       `json:"customerId"`
	CustomerName  string          `json:"customerName,omitempty"`
	Discount      decimal.Decimal `json:"discount"`
	ShippingCost  decimal.Decimal `json:"shippingCost"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	VATRate       decimal.Decimal `json:"vatRate"`
	VATAmount     decimal.Decimal `json:"vatAmount"`
	Total         decimal.Decimal `json:"total"`
	Notes         *string         `json:"notes"`
	Items         []itemResponse  `json:"items,omitempty"`
	AuditLog      []auditResponse `json:"auditLog,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func toInvoice(inv *domain.Invoice) invoiceResponse {
	out := invoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		Status:        inv.Status.String(),
		InvoiceDate:   Date{inv.InvoiceDate},
		DeliveryDate:  datePtr(inv.DeliveryDate),
		DueDate:       Date{inv.DueDate},
		CustomerID:    inv.CustomerID,
		Discount:      inv.Discount,
		ShippingCost:  inv.ShippingCost,
		Subtotal:      inv.Subtotal,
		VATRate:       inv.VATRate,
		VATAmount:     inv.VATAmount,
		Total:         inv.Total,
		Notes:         inv.Notes,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
	for _, it := range inv.Items {
		out.Items = append(out.Items, itemResponse{
			ID:          it.ID,
			Position:    it.Position,
			ProductID:   it.ProductID,
			Title:       it.Title,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.LineTotal,
		})
	}
	for _, e := range inv.AuditLog {
		out.AuditLog = append(out.AuditLog, auditResponse{
			Action:    e.Action.String(),
			Field:     e.Field,
			OldValue:  e.OldValue,
			NewValue:  e.NewValue,
			CreatedAt: e.CreatedAt,
		})
	}
	return out
}

type settingsResponse struct {
	CompanyName          string          `json:"companyName"`
	OwnerName            string          `json:"ownerName"`
	Street               string          `json:"street"`
	Zip                  string          `json:"zip"`
	City                 string          `json:"city"`
	Country              string          `json:"country"`
	Phone                string          `json:"phone"`
	Email                string          `json:"email"`
	Website              string          `json:"website"`
	TaxNumber            string          `json:"taxNumber"`
	VATID                string          `json:"vatId"`
	BankName             string          `json:"bankName"`
	IBAN                 string          `json:"iban"`
	BIC                  string          `json:"bic"`
	InvoicePrefix        string          `json:"invoicePrefix"`
	InvoiceYear          int             `json:"invoiceYear"`
	InvoiceStartNumber   int             `json:"invoiceStartNumber"`
	InvoiceCurrentNumber int             `json:"invoiceCurrentNumber"`
	NextInvoiceNumber    string          `json:"nextInvoiceNumber"`
	DefaultDueDays       int             `json:"defaultDueDays"`
	VATEnabled           bool            `json:"vatEnabled"`
	DefaultVATRate       decimal.Decimal `json:"defaultVatRate"`
	PaymentTerms         *string         `json:"paymentTerms"`
	FooterText           *string         `json:"footerText"`
	UpdatedAt            time.Time       `json:"updatedAt"`
}

func toSettings(s *domain.Settings) settingsResponse {
	return settingsResponse{
		CompanyName:          s.CompanyName,
		OwnerName:            s.OwnerName,
		Street:               s.Street,
		Zip:                  s.Zip,
		City:                 s.City,
		Country:              s.Country,
		Phone:                s.Phone,
		Email:                s.Email,
		Website:              s.Website,
		TaxNumber:            s.TaxNumber,
		VATID:                s.VATID,
		BankName:             s.BankName,
		IBAN:                 s.IBAN,
		BIC:                  s.BIC,
		InvoicePrefix:        s.InvoicePrefix,
		InvoiceYear:          s.InvoiceYear,
		InvoiceStartNumber:   s.InvoiceStartNumber,
		InvoiceCurrentNumber: s.InvoiceCurrentNumber,
		NextInvoiceNumber:    s.NextInvoiceNumber(),
		DefaultDueDays:       s.DefaultDueDays,
		VATEnabled:           s.VATEnabled,
		DefaultVATRate:       s.DefaultVATRate,
		PaymentTerms:         s.PaymentTerms,
		FooterText:           s.FooterText,
		UpdatedAt:            s.UpdatedAt,
	}
}
