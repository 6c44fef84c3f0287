// Package pdf renders invoices as printable A4 documents.
package pdf

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

const (
	marginX    = 20.0
	tableStart = 100.0
	rowHeight  = 8.0
)

var (
	primary = [3]int{124, 58, 237}
	text    = [3]int{31, 41, 55}
	muted   = [3]int{107, 114, 128}
	border  = [3]int{229, 231, 235}
)

// SmallBusinessNote is printed instead of a VAT line when no VAT is charged.
const SmallBusinessNote = "Gemäß § 19 UStG wird keine Umsatzsteuer berechnet."

// Renderer draws invoices with fpdf core fonts.
type Renderer struct {
	log *slog.Logger
}

// NewRenderer creates a PDF renderer.
func NewRenderer(log *slog.Logger) *Renderer {
	return &Renderer{log: log.With("component", "pdf")}
}

// Render returns the PDF bytes for an invoice. The stored totals are printed;
// if they no longer match the items a warning is logged.
func (r *Renderer) Render(inv *domain.Invoice, customer *domain.Customer, settings *domain.Settings) ([]byte, error) {
	if inv == nil || customer == nil || settings == nil {
		return nil, fmt.Errorf("render: invoice, customer and settings are required")
	}

	if derived := inv.RecalculateTotals(); !derived.Equal(inv.StoredTotals()) {
		r.log.Warn("stored totals differ from items",
			slog.String("invoice_id", inv.ID.String()),
			slog.String("stored_total", inv.Total.StringFixed(2)),
			slog.String("derived_total", derived.Total.StringFixed(2)),
		)
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle("Rechnung "+inv.InvoiceNumber, true)
	doc.SetAuthor(settings.CompanyName, true)
	doc.SetMargins(marginX, 20, marginX)
	doc.SetAutoPageBreak(true, 25)

	d := &drawer{pdf: doc, tr: doc.UnicodeTranslatorFromDescriptor("")}
	d.pageW, _ = doc.GetPageSize()

	doc.SetFooterFunc(func() { d.footer(settings) })
	doc.AddPage()

	d.header(inv, settings)
	d.dates(inv)
	d.address(customer)
	y := d.items(inv.Items)
	y = d.totals(inv, y)
	y = d.payment(settings, y)
	d.notes(inv, settings, y)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

type drawer struct {
	pdf   *fpdf.Fpdf
	tr    func(string) string
	pageW float64
}

func (d *drawer) color(c [3]int) { d.pdf.SetTextColor(c[0], c[1], c[2]) }

func (d *drawer) font(style string, size float64) { d.pdf.SetFont("Helvetica", style, size) }

func (d *drawer) left(x, y float64, s string) { d.pdf.Text(x, y, d.tr(s)) }

func (d *drawer) right(x, y float64, s string) {
	s = d.tr(s)
	d.pdf.Text(x-d.pdf.GetStringWidth(s), y, s)
}

func (d *drawer) header(inv *domain.Invoice, st *domain.Settings) {
	name := st.CompanyName
	if name == "" {
		name = st.OwnerName
	}

	d.font("B", 20)
	d.color(primary)
	d.left(marginX, 25, name)

	d.font("", 10)
	d.color(muted)
	y := 35.0
	for _, line := range []string{
		st.Street,
		strings.TrimSpace(st.Zip + " " + st.City),
		prefixed("E-Mail: ", st.Email),
		prefixed("Tel: ", st.Phone),
		st.Website,
	} {
		if line == "" {
			continue
		}
		d.left(marginX, y, line)
		y += 5
	}

	d.font("B", 24)
	d.color(text)
	d.right(d.pageW-marginX, 25, "RECHNUNG")
	d.font("", 11)
	d.color(muted)
	d.right(d.pageW-marginX, 35, "Nr. "+inv.InvoiceNumber)
}

func (d *drawer) dates(inv *domain.Invoice) {
	const top = 55.0
	x := d.pageW - 85
	d.pdf.SetFillColor(248, 250, 252)
	d.pdf.RoundedRect(x, top, 65, 30, 3, "1234", "F")

	delivery := "-"
	if inv.DeliveryDate != nil {
		delivery = formatDate(*inv.DeliveryDate)
	}
	rows := [][2]string{
		{"Rechnungsdatum:", formatDate(inv.InvoiceDate)},
		{"Lieferdatum:", delivery},
		{"Fällig bis:", formatDate(inv.DueDate)},
	}
	d.font("", 9)
	for i, row := range rows {
		y := top + 8 + float64(i)*8
		d.color(muted)
		d.left(x+5, y, row[0])
		d.color(text)
		d.right(d.pageW-25, y, row[1])
	}
}

func (d *drawer) address(c *domain.Customer) {
	d.font("", 9)
	d.color(muted)
	d.left(marginX, 55, "Rechnungsadresse:")

	y := 63.0
	d.color(text)
	if c.Company != nil && *c.Company != "" {
		d.font("B", 11)
		d.left(marginX, y, *c.Company)
		y += 5
	}
	d.font("", 11)
	for _, line := range []string{c.Name, c.Street, c.Zip + " " + c.City, c.Country} {
		d.left(marginX, y, line)
		y += 5
	}
}

var columns = []struct {
	title string
	width float64
	align string
}{
	{"Beschreibung", 90, "L"},
	{"Menge", 25, "C"},
	{"Einzelpreis", 35, "R"},
	{"Gesamt", 20, "R"},
}

func (d *drawer) items(items []domain.InvoiceItem) float64 {
	p := d.pdf
	p.SetXY(marginX, tableStart)
	p.SetFillColor(primary[0], primary[1], primary[2])
	p.SetDrawColor(border[0], border[1], border[2])
	p.SetLineWidth(0.1)
	d.font("B", 10)
	p.SetTextColor(255, 255, 255)
	for _, col := range columns {
		p.CellFormat(col.width, rowHeight, d.tr(col.title), "", 0, col.align, true, 0, "")
	}
	p.Ln(-1)

	d.font("", 10)
	d.color(text)
	for _, it := range items {
		total := it.LineTotal
		if total.IsZero() {
			total = domain.LineAmount{Quantity: it.Quantity, UnitPrice: it.UnitPrice}.Total()
		}
		cells := []string{it.Title, fmt.Sprint(it.Quantity), FormatEUR(it.UnitPrice), FormatEUR(total)}
		p.SetX(marginX)
		for i, col := range columns {
			p.CellFormat(col.width, rowHeight, d.tr(cells[i]), "B", 0, col.align, false, 0, "")
		}
		p.Ln(-1)
		if it.Description != nil && *it.Description != "" {
			p.SetX(marginX)
			d.font("I", 8)
			d.color(muted)
			p.MultiCell(columns[0].width, 4, d.tr(*it.Description), "", "L", false)
			d.font("", 10)
			d.color(text)
		}
	}
	return p.GetY()
}

func (d *drawer) totals(inv *domain.Invoice, y float64) float64 {
	labelX := d.pageW - 75
	valueX := d.pageW - marginX
	y += 15

	line := func(label, value string) {
		d.font("", 10)
		d.color(muted)
		d.left(labelX, y, label)
		d.color(text)
		d.right(valueX, y, value)
		y += 7
	}

	if inv.Discount.IsPositive() {
		line("Rabatt:", "-"+FormatEUR(inv.Discount))
	}
	if inv.ShippingCost.IsPositive() {
		line("Versandkosten:", FormatEUR(inv.ShippingCost))
	}
	line("Zwischensumme:", FormatEUR(inv.Subtotal))
	if inv.VATRate.IsPositive() {
		line(fmt.Sprintf("MwSt. (%s%%):", formatRate(inv.VATRate)), FormatEUR(inv.VATAmount))
	}

	y += 3
	d.pdf.SetFillColor(primary[0], primary[1], primary[2])
	d.pdf.RoundedRect(d.pageW-90, y-5, 70, 12, 2, "1234", "F")
	d.font("B", 12)
	d.pdf.SetTextColor(255, 255, 255)
	d.left(d.pageW-85, y+3, "Gesamtbetrag:")
	d.right(d.pageW-25, y+3, FormatEUR(inv.Total))

	if !inv.VATRate.IsPositive() {
		y += 20
		d.font("I", 9)
		d.color(muted)
		d.left(marginX, y, SmallBusinessNote)
		y += 7
	}
	return y
}

func (d *drawer) payment(st *domain.Settings, y float64) float64 {
	y += 15
	d.font("B", 10)
	d.color(text)
	d.left(marginX, y, "Zahlungsinformationen")
	y += 7

	d.font("", 9)
	if st.PaymentTerms != nil && *st.PaymentTerms != "" {
		d.left(marginX, y, *st.PaymentTerms)
		y += 5
	}
	for _, line := range []string{
		prefixed("Bank: ", st.BankName),
		prefixed("IBAN: ", st.IBAN),
		prefixed("BIC: ", st.BIC),
	} {
		if line == "" {
			continue
		}
		d.left(marginX, y, line)
		y += 5
	}
	return y
}

func (d *drawer) notes(inv *domain.Invoice, st *domain.Settings, y float64) {
	var blocks []string
	if inv.Notes != nil && *inv.Notes != "" {
		blocks = append(blocks, *inv.Notes)
	}
	if st.FooterText != nil && *st.FooterText != "" {
		blocks = append(blocks, *st.FooterText)
	}
	if len(blocks) == 0 {
		return
	}

	y += 10
	d.font("B", 10)
	d.color(text)
	d.left(marginX, y, "Anmerkungen")
	d.pdf.SetXY(marginX, y+3)
	d.font("", 9)
	for _, b := range blocks {
		d.pdf.MultiCell(d.pageW-2*marginX, 5, d.tr(b), "", "L", false)
	}
}

func (d *drawer) footer(st *domain.Settings) {
	parts := []string{st.CompanyName}
	if st.TaxNumber != "" {
		parts = append(parts, "Steuernr.: "+st.TaxNumber)
	}
	if st.VATID != "" {
		parts = append(parts, "USt-IdNr.: "+st.VATID)
	}
	d.pdf.SetY(-15)
	d.font("", 8)
	d.color(muted)
	d.pdf.CellFormat(0, 5, d.tr(strings.Join(parts, " | ")), "", 0, "C", false, 0, "")
}

func prefixed(prefix, value string) string {
	if value == "" {
		return ""
	}
	return prefix + value
}

func formatDate(t time.Time) string { return t.Format("02.01.2006") }

func formatRate(r decimal.Decimal) string {
	return strings.Replace(r.String(), ".", ",", 1)
}

// FormatEUR formats an amount the German way, e.g. "1.234,50 €".
func FormatEUR(amount decimal.Decimal) string {
	s := amount.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}
	return sign + b.String() + "," + frac + " €"
}
