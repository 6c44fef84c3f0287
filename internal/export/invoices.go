// Package export writes invoice data to spreadsheets for the accountant.
package export

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

const (
	invoiceSheet = "Rechnungen"
	itemSheet    = "Positionen"
	pageSize     = 100
	dateFormat   = "dd.mm.yyyy"
	moneyFormat  = `#,##0.00 "€"`
)

type invoiceRepo interface {
	List(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error)
	ItemsByInvoiceIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]domain.InvoiceItem, error)
}

type customerRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Customer, error)
}

// Service builds invoice workbooks.
type Service struct {
	invoices  invoiceRepo
	customers customerRepo
	log       *slog.Logger
}

// NewService creates a new export service.
func NewService(log *slog.Logger, invoices invoiceRepo, customers customerRepo) *Service {
	return &Service{
		invoices:  invoices,
		customers: customers,
		log:       log.With("service", "export"),
	}
}

// WriteInvoices writes every invoice matching filter, ignoring its limit and
// offset, as an xlsx workbook with one sheet of invoices and one of items.
func (s *Service) WriteInvoices(ctx context.Context, filter domain.InvoiceFilter, w io.Writer) (int, error) {
	invoices, err := s.collect(ctx, filter)
	if err != nil {
		return 0, err
	}

	ids := make([]uuid.UUID, 0, len(invoices))
	customerIDs := make([]uuid.UUID, 0, len(invoices))
	seen := make(map[uuid.UUID]bool)
	for _, inv := range invoices {
		ids = append(ids, inv.ID)
		if !seen[inv.CustomerID] {
			seen[inv.CustomerID] = true
			customerIDs = append(customerIDs, inv.CustomerID)
		}
	}

	items, err := s.invoices.ItemsByInvoiceIDs(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("load items: %w", err)
	}
	list, err := s.customers.GetByIDs(ctx, customerIDs)
	if err != nil {
		return 0, fmt.Errorf("load customers: %w", err)
	}
	customers := make(map[uuid.UUID]domain.Customer, len(list))
	for _, c := range list {
		customers[c.ID] = c
	}

	f, err := buildWorkbook(invoices, items, customers)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return 0, fmt.Errorf("write workbook: %w", err)
	}

	s.log.InfoContext(ctx, "invoices exported", slog.Int("count", len(invoices)))
	return len(invoices), nil
}

func (s *Service) collect(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error) {
	filter.Limit = pageSize
	filter.Offset = 0

	var out []domain.Invoice
	for {
		page, err := s.invoices.List(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("list invoices: %w", err)
		}
		out = append(out, page...)
		if len(page) < pageSize {
			return out, nil
		}
		filter.Offset += pageSize
	}
}

func buildWorkbook(
	invoices []domain.Invoice,
	items map[uuid.UUID][]domain.InvoiceItem,
	customers map[uuid.UUID]domain.Customer,
) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", invoiceSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(itemSheet); err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}

	st, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	invoiceHeader := []string{
		"Nummer", "Status", "Rechnungsdatum", "Fällig", "Kunde", "Ort",
		"Rabatt", "Versand", "Zwischensumme", "MwSt. %", "MwSt.", "Gesamt",
	}
	if err := writeHeader(f, invoiceSheet, invoiceHeader, st.header); err != nil {
		return nil, err
	}
	for i, inv := range invoices {
		c := customers[inv.CustomerID]
		row := []any{
			inv.InvoiceNumber, inv.Status.String(), inv.InvoiceDate, inv.DueDate,
			c.DisplayName(), c.City,
			money(inv.Discount), money(inv.ShippingCost), money(inv.Subtotal),
			money(inv.VATRate), money(inv.VATAmount), money(inv.Total),
		}
		if err := writeRow(f, invoiceSheet, i+2, row); err != nil {
			return nil, err
		}
	}
	last := len(invoices) + 1
	if err := applyStyles(f, invoiceSheet, last, []colStyle{{"C", "D", st.date}, {"G", "I", st.money}, {"K", "L", st.money}}); err != nil {
		return nil, err
	}

	itemHeader := []string{"Rechnung", "Pos.", "Titel", "Menge", "Einzelpreis", "Gesamt"}
	if err := writeHeader(f, itemSheet, itemHeader, st.header); err != nil {
		return nil, err
	}
	r := 2
	for _, inv := range invoices {
		for _, it := range items[inv.ID] {
			row := []any{inv.InvoiceNumber, it.Position, it.Title, it.Quantity, money(it.UnitPrice), money(it.LineTotal)}
			if err := writeRow(f, itemSheet, r, row); err != nil {
				return nil, err
			}
			r++
		}
	}
	if err := applyStyles(f, itemSheet, r-1, []colStyle{{"E", "F", st.money}}); err != nil {
		return nil, err
	}

	_ = f.SetColWidth(invoiceSheet, "A", "A", 16)
	_ = f.SetColWidth(invoiceSheet, "E", "E", 30)
	_ = f.SetColWidth(itemSheet, "C", "C", 40)
	return f, nil
}

type styles struct {
	header, date, money int
}

type colStyle struct {
	from, to string
	style    int
}

func newStyles(f *excelize.File) (styles, error) {
	var (
		st  styles
		err error
	)
	if st.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"7C3AED"}},
	}); err != nil {
		return st, fmt.Errorf("header style: %w", err)
	}
	if st.date, err = f.NewStyle(&excelize.Style{CustomNumFmt: ptr(dateFormat)}); err != nil {
		return st, fmt.Errorf("date style: %w", err)
	}
	if st.money, err = f.NewStyle(&excelize.Style{CustomNumFmt: ptr(moneyFormat)}); err != nil {
		return st, fmt.Errorf("money style: %w", err)
	}
	return st, nil
}

func writeHeader(f *excelize.File, sheet string, titles []string, style int) error {
	row := make([]any, len(titles))
	for i, t := range titles {
		row[i] = t
	}
	if err := writeRow(f, sheet, 1, row); err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(len(titles), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", end, style); err != nil {
		return fmt.Errorf("style header: %w", err)
	}
	return f.SetPanes(sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}

func applyStyles(f *excelize.File, sheet string, lastRow int, cols []colStyle) error {
	if lastRow < 2 {
		return nil
	}
	for _, c := range cols {
		if err := f.SetCellStyle(sheet, fmt.Sprintf("%s2", c.from), fmt.Sprintf("%s%d", c.to, lastRow), c.style); err != nil {
			return fmt.Errorf("style %s: %w", sheet, err)
		}
	}
	return nil
}

// money converts to float64 for the spreadsheet; amounts are already exact to the cent.
func money(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func ptr[T any](v T) *T { return &v }
