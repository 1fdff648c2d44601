package requests

import (
	"time"
)

// CreateInvoiceRequest represents the request to create an invoice.
// Field rules are enforced by the service so every failing field is reported at once.
type CreateInvoiceRequest struct {
	RecipientEmail   string                   `json:"recipient_email"`
	RecipientName    string                   `json:"recipient_name,omitempty"`
	RecipientAddress string                   `json:"recipient_address,omitempty"`
	ListingID        *string                  `json:"listing_id,omitempty"`
	Type             string                   `json:"type"`
	Title            string                   `json:"title"`
	Description      string                   `json:"description,omitempty"`
	IssueDate        *time.Time               `json:"issue_date,omitempty"`
	DueDate          *time.Time               `json:"due_date,omitempty"`
	Items            []InvoiceLineItemRequest `json:"items"`
	TaxRate          float64                  `json:"tax_rate"`
	Notes            string                   `json:"notes,omitempty"`
	Reference        string                   `json:"reference,omitempty"`
}

// UpdateInvoiceRequest replaces the editable fields of a draft invoice
type UpdateInvoiceRequest struct {
	RecipientEmail   string                   `json:"recipient_email"`
	RecipientName    string                   `json:"recipient_name,omitempty"`
	RecipientAddress string                   `json:"recipient_address,omitempty"`
	Type             string                   `json:"type"`
	Title            string                   `json:"title"`
	Description      string                   `json:"description,omitempty"`
	IssueDate        *time.Time               `json:"issue_date,omitempty"`
	DueDate          *time.Time               `json:"due_date,omitempty"`
	Items            []InvoiceLineItemRequest `json:"items"`
	TaxRate          float64                  `json:"tax_rate"`
	Reference        string                   `json:"reference,omitempty"`
}

// InvoiceLineItemRequest represents a line item in an invoice request
type InvoiceLineItemRequest struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// PreviewInvoiceRequest computes totals without persisting anything
type PreviewInvoiceRequest struct {
	Items   []InvoiceLineItemRequest `json:"items" binding:"required,min=1"`
	TaxRate float64                  `json:"tax_rate" binding:"gte=0,lte=100"`
}

// SendInvoiceRequest represents the request to send an invoice
type SendInvoiceRequest struct {
	Message string `json:"message,omitempty" binding:"max=5000"`
}

// AppendNotesRequest adds a note to an invoice, issued or not
type AppendNotesRequest struct {
	Notes string `json:"notes" binding:"required,max=5000"`
}
