package domain

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "DRAFT"
	InvoiceStatusSent      InvoiceStatus = "SENT"
	InvoiceStatusPaid      InvoiceStatus = "PAID"
	InvoiceStatusCancelled InvoiceStatus = "CANCELLED"
)

func (s InvoiceStatus) String() string { return string(s) }

func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusCancelled:
		return true
	}
	return false
}

// IsOpen reports whether the invoice still awaits payment or finalization.
func (s InvoiceStatus) IsOpen() bool {
	return s == InvoiceStatusDraft || s == InvoiceStatusSent
}

// InvoiceEvent is an intent that moves an invoice between statuses.
type InvoiceEvent string

const (
	InvoiceEventFinalize InvoiceEvent = "FINALIZE"
	InvoiceEventMarkPaid InvoiceEvent = "MARK_PAID"
	InvoiceEventCancel   InvoiceEvent = "CANCEL"
)

func (e InvoiceEvent) String() string { return string(e) }

// StockReason tags every stock movement.
type StockReason string

const (
	StockReasonPurchase   StockReason = "PURCHASE"
	StockReasonSale       StockReason = "SALE"
	StockReasonCorrection StockReason = "CORRECTION"
	StockReasonReversal   StockReason = "REVERSAL"
	StockReasonStockTake  StockReason = "STOCK_TAKE"
)

func (r StockReason) String() string { return string(r) }

func (r StockReason) IsValid() bool {
	switch r {
	case StockReasonPurchase, StockReasonSale, StockReasonCorrection, StockReasonReversal, StockReasonStockTake:
		return true
	}
	return false
}

// IsManual reports whether the reason may be used for user-initiated adjustments.
// Sale and Reversal are produced only by the invoice lifecycle.
func (r StockReason) IsManual() bool {
	switch r {
	case StockReasonPurchase, StockReasonCorrection, StockReasonStockTake:
		return true
	}
	return false
}

// AuditAction tags invoice audit log entries.
type AuditAction string

const (
	AuditActionCreated       AuditAction = "CREATED"
	AuditActionStatusChanged AuditAction = "STATUS_CHANGED"
	AuditActionUpdated       AuditAction = "UPDATED"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreated, AuditActionStatusChanged, AuditActionUpdated:
		return true
	}
	return false
}

// UserRole is the access role of a back-office user.
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleStaff UserRole = "staff"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	return r == UserRoleAdmin || r == UserRoleStaff
}
