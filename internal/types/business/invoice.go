package business

import (
	"time"

	"github.com/google/uuid"
)

// LineItem is a single invoice line. Amount is always Quantity * UnitPrice.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
}

// Totals holds the derived money values of a set of line items.
type Totals struct {
	Subtotal  float64 `json:"subtotal"`
	TaxAmount float64 `json:"tax_amount"`
	Total     float64 `json:"total"`
}

// Invoice is the service-level view of a persisted invoice and its items.
type Invoice struct {
	ID               uuid.UUID  `json:"id"`
	UserID           uuid.UUID  `json:"user_id"`
	InvoiceNumber    string     `json:"invoice_number"`
	RecipientEmail   string     `json:"recipient_email"`
	RecipientName    string     `json:"recipient_name,omitempty"`
	RecipientAddress string     `json:"recipient_address,omitempty"`
	ListingID        *uuid.UUID `json:"listing_id,omitempty"`
	Type             string     `json:"type"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	Items            []LineItem `json:"items"`
	TaxRate          float64    `json:"tax_rate"`
	Totals           Totals     `json:"totals"`
	Status           string     `json:"status"`
	IssueDate        time.Time  `json:"issue_date"`
	DueDate          time.Time  `json:"due_date"`
	Notes            string     `json:"notes,omitempty"`
	Reference        string     `json:"reference,omitempty"`
	PdfURL           string     `json:"pdf_url,omitempty"`
	PaymentURL       string     `json:"payment_url,omitempty"`
	SentAt           *time.Time `json:"sent_at,omitempty"`
	PaidAt           *time.Time `json:"paid_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// IsIssued reports whether a rendered artifact exists. Issued invoices only accept notes and resends.
func (i Invoice) IsIssued() bool {
	return i.PdfURL != ""
}

// InvoiceTotals is the read-only totals projection of a stored invoice.
type InvoiceTotals struct {
	InvoiceID     uuid.UUID  `json:"invoice_id,omitempty"`
	InvoiceNumber string     `json:"invoice_number,omitempty"`
	Items         []LineItem `json:"items"`
	TaxRate       float64    `json:"tax_rate"`
	Totals
}

// SendResult reports the outcome of a successful delivery.
type SendResult struct {
	Success   bool   `json:"success"`
	MessageID string `json:"message_id,omitempty"`
	Status    string `json:"status"`
	Resent    bool   `json:"resent"`
	PdfURL    string `json:"pdf_url"`
}
