package domain

// Transition returns the status an invoice moves to when event is applied to from.
// Draft and Cancelled never connect: a draft is deleted, not cancelled, and no
// transition ever leads back to Draft.
func Transition(from InvoiceStatus, event InvoiceEvent) (InvoiceStatus, error) {
	switch event {
	case InvoiceEventFinalize:
		if from == InvoiceStatusDraft {
			return InvoiceStatusSent, nil
		}
		return "", transitionErr(from, event, "only draft invoices can be finalized")

	case InvoiceEventMarkPaid:
		if from == InvoiceStatusSent {
			return InvoiceStatusPaid, nil
		}
		return "", transitionErr(from, event, "only sent invoices can be marked paid")

	case InvoiceEventCancel:
		switch from {
		case InvoiceStatusSent, InvoiceStatusPaid:
			return InvoiceStatusCancelled, nil
		case InvoiceStatusCancelled:
			return "", transitionErr(from, event, "invoice is already cancelled")
		case InvoiceStatusDraft:
			return "", transitionErr(from, event, "drafts cannot be cancelled, delete instead")
		}
		return "", transitionErr(from, event, "unknown invoice status "+string(from))
	}

	return "", transitionErr(from, event, "unknown invoice event "+string(event))
}

// EnsureDraft fails unless status is Draft; msg describes the rejected operation.
func EnsureDraft(status InvoiceStatus, msg string) error {
	if status != InvoiceStatusDraft {
		return &TransitionError{From: status, Message: msg}
	}
	return nil
}

func transitionErr(from InvoiceStatus, event InvoiceEvent, msg string) error {
	return &TransitionError{From: from, Event: event, Message: msg}
}
