package params

import (
	"time"

	"github.com/google/uuid"
)

// LineItemParams is an unsaved invoice line as submitted by a caller.
type LineItemParams struct {
	Description string
	Quantity    float64
	UnitPrice   float64
}

// CreateInvoiceParams contains parameters for creating an invoice
type CreateInvoiceParams struct {
	UserID           uuid.UUID
	RecipientEmail   string
	RecipientName    string
	RecipientAddress string
	ListingID        *uuid.UUID
	Type             string
	Title            string
	Description      string
	IssueDate        *time.Time
	DueDate          *time.Time
	Items            []LineItemParams
	TaxRate          float64
	Notes            string
	Reference        string
}

// UpdateInvoiceParams replaces the editable fields of an un-issued draft.
type UpdateInvoiceParams struct {
	UserID           uuid.UUID
	InvoiceID        uuid.UUID
	RecipientEmail   string
	RecipientName    string
	RecipientAddress string
	Type             string
	Title            string
	Description      string
	IssueDate        *time.Time
	DueDate          *time.Time
	Items            []LineItemParams
	TaxRate          float64
	Reference        string
}

// PreviewInvoiceParams computes totals for an unsaved ledger.
type PreviewInvoiceParams struct {
	Items   []LineItemParams
	TaxRate float64
}

// SendInvoiceParams contains parameters for delivering an invoice
type SendInvoiceParams struct {
	UserID    uuid.UUID
	InvoiceID uuid.UUID
	Message   string
}

// ListInvoicesParams contains pagination for listing a user's invoices
type ListInvoicesParams struct {
	UserID uuid.UUID
	Limit  int32
	Offset int32
}
