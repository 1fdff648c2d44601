package responses

import (
	"time"
)

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID               string                    `json:"id"`
	InvoiceNumber    string                    `json:"invoice_number"`
	Status           string                    `json:"status"`
	Type             string                    `json:"type"`
	Title            string                    `json:"title"`
	Description      string                    `json:"description,omitempty"`
	RecipientEmail   string                    `json:"recipient_email"`
	RecipientName    string                    `json:"recipient_name,omitempty"`
	RecipientAddress string                    `json:"recipient_address,omitempty"`
	ListingID        string                    `json:"listing_id,omitempty"`
	IssueDate        time.Time                 `json:"issue_date"`
	DueDate          time.Time                 `json:"due_date"`
	Items            []InvoiceLineItemResponse `json:"items"`
	TaxRate          float64                   `json:"tax_rate"`
	Amount           float64                   `json:"amount"`
	TaxAmount        float64                   `json:"tax_amount"`
	TotalAmount      float64                   `json:"total_amount"`
	Notes            string                    `json:"notes,omitempty"`
	Reference        string                    `json:"reference,omitempty"`
	PdfURL           string                    `json:"pdf_url,omitempty"`
	PaymentURL       string                    `json:"payment_url,omitempty"`
	Issued           bool                      `json:"issued"`
	SentAt           *time.Time                `json:"sent_at,omitempty"`
	PaidAt           *time.Time                `json:"paid_at,omitempty"`
	CreatedAt        time.Time                 `json:"created_at"`
	UpdatedAt        time.Time                 `json:"updated_at"`
}

// InvoiceLineItemResponse represents a line item in API responses
type InvoiceLineItemResponse struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
}

// InvoiceTotalsResponse is the totals projection. Display strings are rounded to 2 decimals.
type InvoiceTotalsResponse struct {
	InvoiceID        string                    `json:"invoice_id,omitempty"`
	InvoiceNumber    string                    `json:"invoice_number,omitempty"`
	Items            []InvoiceLineItemResponse `json:"items"`
	TaxRate          float64                   `json:"tax_rate"`
	Subtotal         float64                   `json:"subtotal"`
	TaxAmount        float64                   `json:"tax_amount"`
	Total            float64                   `json:"total"`
	SubtotalDisplay  string                    `json:"subtotal_display"`
	TaxAmountDisplay string                    `json:"tax_amount_display"`
	TotalDisplay     string                    `json:"total_display"`
}

// SendInvoiceResponse represents the result of sending an invoice
type SendInvoiceResponse struct {
	Success   bool   `json:"success"`
	Status    string `json:"status"`
	Resent    bool   `json:"resent"`
	PdfURL    string `json:"pdf_url"`
	MessageID string `json:"message_id,omitempty"`
}

// DownloadArtifactResponse carries the artifact location
type DownloadArtifactResponse struct {
	URL string `json:"url"`
}

// ListInvoicesResponse represents a paginated invoice list
type ListInvoicesResponse struct {
	Data       []InvoiceResponse `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

// Pagination describes the page returned in list responses
type Pagination struct {
	Page       int32 `json:"page"`
	Limit      int32 `json:"limit"`
	TotalItems int64 `json:"total_items"`
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// FieldError is a single invalid field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse lists every invalid field of a request
type ValidationErrorResponse struct {
	Error  string       `json:"error"`
	Fields []FieldError `json:"fields"`
}
