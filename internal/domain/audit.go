package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AuditEntry is an immutable record of something that happened to an invoice.
// OldValue and NewValue are JSON snapshots.
type AuditEntry struct {
	ID        uuid.UUID
	InvoiceID uuid.UUID
	Action    AuditAction
	Field     *string
	OldValue  json.RawMessage
	NewValue  json.RawMessage
	CreatedAt time.Time
}

// NewCreatedEvent records the creation of an invoice.
func NewCreatedEvent(inv *Invoice) AuditEntry {
	return AuditEntry{
		InvoiceID: inv.ID,
		Action:    AuditActionCreated,
		NewValue: snapshot(map[string]any{
			"invoiceNumber": inv.InvoiceNumber,
			"status":        inv.Status,
			"total":         inv.Total.StringFixed(2),
		}),
	}
}

// NewStatusChangedEvent records a lifecycle transition.
func NewStatusChangedEvent(invoiceID uuid.UUID, from, to InvoiceStatus) AuditEntry {
	field := "status"
	return AuditEntry{
		InvoiceID: invoiceID,
		Action:    AuditActionStatusChanged,
		Field:     &field,
		OldValue:  snapshot(from),
		NewValue:  snapshot(to),
	}
}

// NewUpdatedEvent records an edit of a draft; field names what was edited.
func NewUpdatedEvent(invoiceID uuid.UUID, field string, oldValue, newValue any) AuditEntry {
	return AuditEntry{
		InvoiceID: invoiceID,
		Action:    AuditActionUpdated,
		Field:     &field,
		OldValue:  snapshot(oldValue),
		NewValue:  snapshot(newValue),
	}
}

func snapshot(v any) json.RawMessage {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return json.RawMessage(`null`)
	}
	return b
}
